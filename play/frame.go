package play

import (
	"time"

	"github.com/srlehn/termview/pixel"
)

// Frame is one resized still of an animation.
type Frame struct {
	Grid *pixel.Grid
	// Duration <= 0 means the frame brings no display duration of its own.
	Duration time.Duration
}

// FrameSet is played in order. It must not be empty.
type FrameSet []Frame

type Mode uint8

const (
	Looping Mode = iota
	PlayOnce
	StaticFirstFrameOnly
)

func (m Mode) String() string {
	switch m {
	case Looping:
		return `looping`
	case PlayOnce:
		return `once`
	case StaticFirstFrameOnly:
		return `static`
	default:
		return `unknown`
	}
}

type Phase uint8

const (
	Idle Phase = iota
	Playing
	Stopped
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return `idle`
	case Playing:
		return `playing`
	case Stopped:
		return `stopped`
	default:
		return `unknown`
	}
}

// State lives for the playback of one file. Only the Player changes it.
type State struct {
	Mode      Mode
	Cancelled bool
	phase     Phase
}

func NewState(mode Mode) *State { return &State{Mode: mode} }

func (s *State) Phase() Phase {
	if s == nil {
		return Idle
	}
	return s.phase
}
