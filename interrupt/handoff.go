// Package interrupt hands an asynchronous interrupt over to the playback
// loop and restores the terminal once the loop let go of it.
package interrupt

import (
	"context"
	"sync"

	"github.com/srlehn/termview/internal/consts"
	"github.com/srlehn/termview/internal/errors"
	"github.com/srlehn/termview/play"
)

// Handoff is a two-way, one-shot handshake: the interrupt side requests a
// stop, the playback loop answers at its next frame boundary.
type Handoff struct {
	stop   chan struct{}
	ack    chan struct{}
	mu     sync.Mutex
	acked  bool
	closed bool
}

var _ play.Canceller = (*Handoff)(nil)

func NewHandoff() *Handoff {
	return &Handoff{
		stop: make(chan struct{}, 1),
		ack:  make(chan struct{}),
	}
}

// RequestStop never blocks. Repeated requests before the loop picked up
// the first one collapse into one.
func (h *Handoff) RequestStop() error {
	if h == nil {
		return errors.NilReceiver()
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return errors.New(consts.ErrHandoffClosed)
	}
	select {
	case h.stop <- struct{}{}:
	default:
	}
	return nil
}

// StopRequested delivers a pending stop request once.
func (h *Handoff) StopRequested() <-chan struct{} {
	if h == nil {
		return nil
	}
	return h.stop
}

func (h *Handoff) Acknowledge() error {
	if h == nil {
		return errors.NilReceiver()
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	switch {
	case h.closed:
		return errors.New(consts.ErrHandoffClosed)
	case h.acked:
		return errors.New(consts.ErrAlreadyAcknowledged)
	}
	h.acked = true
	close(h.ack)
	return nil
}

func (h *Handoff) WaitAck(ctx context.Context) error {
	if h == nil {
		return errors.NilReceiver()
	}
	select {
	case <-h.ack:
		return nil
	case <-ctx.Done():
		return errors.New(ctx.Err())
	}
}

// Close breaks the handoff, both sides get ErrHandoffClosed from then on.
func (h *Handoff) Close() error {
	if h == nil {
		return nil
	}
	h.mu.Lock()
	h.closed = true
	h.mu.Unlock()
	return nil
}
