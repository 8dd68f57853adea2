package consts

import (
	"errors"
	"time"
)

var (
	ErrNilReceiver = errors.New(`nil receiver`)
	ErrNilParam    = errors.New(`nil parameter`)
	ErrNoFrames    = errors.New(`animation without frames`)
	ErrStopped     = errors.New(`playback already stopped`)
	ErrUnknownSize = errors.New(`terminal size unknown`)

	ErrHandoffClosed       = errors.New(`interrupt handoff closed`)
	ErrAlreadyAcknowledged = errors.New(`stop request already acknowledged`)
)

const (
	// fallback terminal size in cells
	DefaultCols = 100
	DefaultRows = 40

	DefaultFrameDelay     = 40 * time.Millisecond
	DefaultInterruptGrace = time.Second
)
