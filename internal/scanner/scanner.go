// Package scanner defines the capability seam between the application and
// a platform camera/barcode-decoding integration, and drives one scanning
// session against it. The core never knows which decoding library sits
// behind the Stream interface.
package scanner

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"

	"github.com/franciscocavallaro/asado-counter/internal/models"
)

// Stream is the contract a camera/decoder integration must satisfy.
// Decodes emits every decoded string the camera produces, including codes
// that resolve to nothing. Stop must be safe to call more than once.
type Stream interface {
	Start(ctx context.Context) error
	Decodes() <-chan string
	Stop() error
}

// Lookup resolves a decoded barcode to a mapping, nil on miss
type Lookup func(code string) (*models.BarcodeMapping, error)

// Suggestion is the pre-filled cut entry a successful scan produces
type Suggestion struct {
	Barcode  string
	CutName  string
	WeightKg decimal.Decimal
	Brand    *string
}

// Session owns the camera stream for the lifetime of one scanning dialog.
// The stream is started by Run and stopped on scan success, on Close, and
// when the context is cancelled. Stop failures are swallowed: the camera
// is best-effort released, never surfaced.
type Session struct {
	stream Stream
	lookup Lookup

	stopOnce    sync.Once
	suggestions chan Suggestion
	errs        chan error
}

// NewSession creates a session over the given stream and lookup
func NewSession(stream Stream, lookup Lookup) *Session {
	return &Session{
		stream:      stream,
		lookup:      lookup,
		suggestions: make(chan Suggestion, 1),
		errs:        make(chan error, 1),
	}
}

// Run starts the camera stream and begins consuming decodes. It returns
// the suggestion channel; the channel is closed when the session ends.
func (s *Session) Run(ctx context.Context) (<-chan Suggestion, error) {
	if err := s.stream.Start(ctx); err != nil {
		return nil, err
	}
	go s.consume(ctx)
	return s.suggestions, nil
}

// Errs reports transient lookup failures. The session keeps scanning
// after emitting one; callers may surface them as "try again".
func (s *Session) Errs() <-chan error {
	return s.errs
}

// Close releases the camera stream. It is idempotent and never fails.
func (s *Session) Close() {
	s.release()
}

func (s *Session) release() {
	s.stopOnce.Do(func() {
		if err := s.stream.Stop(); err != nil {
			log.WithError(err).Debug("camera stop failed")
		}
	})
}

func (s *Session) consume(ctx context.Context) {
	defer close(s.suggestions)
	defer s.release()

	for {
		select {
		case <-ctx.Done():
			return
		case code, ok := <-s.stream.Decodes():
			if !ok {
				return
			}
			mapping, err := s.lookup(code)
			if err != nil {
				select {
				case s.errs <- err:
				default:
				}
				continue
			}
			if mapping == nil {
				// Decode noise: codes the user hasn't registered are
				// expected, keep scanning
				continue
			}
			s.suggestions <- Suggestion{
				Barcode:  mapping.Barcode,
				CutName:  mapping.CutName,
				WeightKg: mapping.DefaultWeightKg,
				Brand:    mapping.Brand,
			}
			return
		}
	}
}
