package comm

import (
	"context"
	"io"
	"sync"

	"github.com/golang/glog"
)

// FeedbackHandler is called when a feedback frame is received.
type FeedbackHandler interface {
	HandleFeedback(context.Context, *CoreSensors)
}

// HandleFeedbackFunc is func type of FeedbackHandler.
type HandleFeedbackFunc func(context.Context, *CoreSensors)

// HandleFeedback implements FeedbackHandler.
func (f HandleFeedbackFunc) HandleFeedback(ctx context.Context, s *CoreSensors) {
	f(ctx, s)
}

// Stream exchanges frames with the base firmware over a raw link.
type Stream struct {
	ReadWriter io.ReadWriter
	Handler    FeedbackHandler

	sendLock sync.Mutex
	parser   Parser
}

// NewStream creates a Stream.
func NewStream(rw io.ReadWriter) *Stream {
	return &Stream{ReadWriter: rw}
}

// Send encodes and writes one drive command frame.
func (s *Stream) Send(cmd *BaseControl) error {
	return s.SendFrame(&Frame{Payload: cmd.Encode()})
}

// SendFrame writes an arbitrary frame.
func (s *Stream) SendFrame(f *Frame) error {
	if len(f.Payload) > MaxPayloadLen {
		return ErrPayloadTooLarge
	}
	s.sendLock.Lock()
	defer s.sendLock.Unlock()
	_, err := f.WriteTo(s.ReadWriter)
	return err
}

// Run reads the link and dispatches feedback until the context is
// canceled or the link fails.
func (s *Stream) Run(ctx context.Context) error {
	dataCh, errCh := make(chan []byte), make(chan error, 1)
	subCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go s.readLoop(subCtx, dataCh, errCh)
	for {
		select {
		case data := <-dataCh:
			s.consume(ctx, data)
		case err := <-errCh:
			return err
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (s *Stream) consume(ctx context.Context, data []byte) {
	for _, b := range data {
		f := s.parser.Parse(b)
		if f == nil {
			continue
		}
		sensors, err := DecodeCoreSensors(f.Payload)
		if err != nil {
			glog.V(2).Infof("feedback frame ignored: %v", err)
			continue
		}
		if h := s.Handler; h != nil {
			h.HandleFeedback(ctx, sensors)
		}
	}
}

func (s *Stream) readLoop(ctx context.Context, dataCh chan []byte, errCh chan error) {
	for {
		buf := make([]byte, 256)
		n, err := s.ReadWriter.Read(buf)
		if n > 0 {
			select {
			case dataCh <- buf[:n]:
			case <-ctx.Done():
				return
			}
		}
		if err != nil {
			errCh <- err
			return
		}
		select {
		case <-ctx.Done():
			return
		default:
		}
	}
}
