package render

import (
	"io"

	"github.com/srlehn/termview/internal/errors"
)

// Sink is the terminal output stream. Once the reading side of the stream
// went away (broken pipe) it swallows all further writes.
type Sink struct {
	w      io.Writer
	broken bool
}

var _ io.StringWriter = (*Sink)(nil)

// NewSink wraps w. An existing *Sink is returned unchanged.
func NewSink(w io.Writer) *Sink {
	if s, ok := w.(*Sink); ok {
		return s
	}
	return &Sink{w: w}
}

func (s *Sink) Write(p []byte) (int, error) {
	if s == nil || s.w == nil {
		return 0, errors.NilReceiver()
	}
	if s.broken {
		return len(p), nil
	}
	n, err := s.w.Write(p)
	if errors.IsBrokenPipe(err) {
		s.broken = true
		return len(p), nil
	}
	return n, err
}

func (s *Sink) WriteString(str string) (int, error) { return s.Write([]byte(str)) }

// Broken reports whether a write hit a broken pipe.
func (s *Sink) Broken() bool { return s != nil && s.broken }
