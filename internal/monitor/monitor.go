package monitor

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/danmuck/cbusctl/internal/observability"
	"github.com/danmuck/cbusctl/internal/protocol"
	"github.com/danmuck/cbusctl/internal/protocol/frame"
	"github.com/danmuck/cbusctl/internal/transport"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var ErrNotConnected = errors.New("monitor: not connected")

const defaultIdleWait = 10 * time.Millisecond

// Event is one frame taken off the bus. Err is set when the frame failed to
// decode; Message is then the zero value.
type Event struct {
	Raw     string
	Message protocol.Message
	Err     error
	At      time.Time
}

type Handler func(Event)

type Config struct {
	Open    transport.Opener
	Backoff transport.BackoffConfig
	Handler Handler
	Logger  *zerolog.Logger
	// IdleWait is slept after an empty read so ports without a read timeout do not spin.
	IdleWait time.Duration
	Rand     *rand.Rand
}

// Service keeps one connection open and feeds every frame it reads to the handler.
type Service struct {
	cfg    Config
	logger zerolog.Logger

	mu        sync.Mutex
	conn      *transport.Conn
	connected atomic.Bool
}

func New(cfg Config) *Service {
	logger := log.Logger
	if cfg.Logger != nil {
		logger = *cfg.Logger
	}
	if cfg.IdleWait <= 0 {
		cfg.IdleWait = defaultIdleWait
	}
	if cfg.Rand == nil {
		cfg.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Service{cfg: cfg, logger: logger.With().Str("component", "monitor").Logger()}
}

func (s *Service) Connected() bool {
	return s.connected.Load()
}

// Run connects, reads until the link drops, and reconnects with backoff.
// It returns nil when ctx is cancelled, or an error once the backoff gives up.
func (s *Service) Run(ctx context.Context) error {
	if s.cfg.Open == nil {
		return fmt.Errorf("%w: no opener configured", transport.ErrConnectionError)
	}
	failures := 0
	for {
		if ctx.Err() != nil {
			return nil
		}
		port, err := s.cfg.Open()
		if err != nil {
			failures++
			observability.RecordTransportError("open")
			if s.cfg.Backoff.Exhausted(failures + 1) {
				return fmt.Errorf("monitor: giving up after %d attempts: %w", failures, err)
			}
			delay := transport.NextBackoffDelay(s.cfg.Backoff, failures, s.cfg.Rand)
			s.logger.Warn().Err(err).Int("attempt", failures).Dur("retry_in", delay).Msg("open_failed")
			if !sleep(ctx, delay) {
				return nil
			}
			continue
		}
		failures = 0

		conn := transport.NewConn(port)
		s.attach(conn)
		s.logger.Info().Msg("connected")
		err = s.readLoop(ctx, conn)
		s.detach()
		if cerr := conn.Close(); cerr != nil {
			s.logger.Debug().Err(cerr).Msg("close_failed")
		}
		if ctx.Err() != nil {
			return nil
		}

		kind := "error"
		if errors.Is(err, transport.ErrConnectionLost) {
			kind = "lost"
		}
		observability.RecordTransportError(kind)
		delay := transport.NextBackoffDelay(s.cfg.Backoff, 1, s.cfg.Rand)
		s.logger.Warn().Err(err).Dur("retry_in", delay).Msg("connection_dropped")
		if !sleep(ctx, delay) {
			return nil
		}
	}
}

func (s *Service) readLoop(ctx context.Context, conn *transport.Conn) error {
	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-ctx.Done():
			// Unblocks a Read that has no timeout.
			conn.Close()
		case <-stop:
		}
	}()

	for {
		if ctx.Err() != nil {
			return nil
		}
		frames, n, err := conn.ReadFrames()
		observability.RecordRead(n, len(frames))
		for _, raw := range frames {
			s.dispatch(raw)
		}
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
		if n == 0 && !sleep(ctx, s.cfg.IdleWait) {
			return nil
		}
	}
}

// dispatch decodes raw on its own so one bad frame cannot affect its neighbours.
func (s *Service) dispatch(raw string) {
	ev := Event{Raw: raw, At: time.Now()}
	msg, err := protocol.DecodeFrame(raw)
	if err != nil {
		kind := protocol.ErrorKind(err)
		observability.RecordDecodeFailure(kind)
		s.logger.Debug().Err(err).Str("raw", raw).Str("kind", kind).Msg("decode_failed")
		ev.Err = err
	} else {
		observability.RecordDecoded(msg.Mnemonic, msg.Outcome.String())
		if msg.Outcome != protocol.OutcomeComplete {
			s.logger.Debug().Str("raw", raw).Str("opcode", msg.Mnemonic).Stringer("outcome", msg.Outcome).Msg("decode_partial")
		}
		ev.Message = msg
	}
	if s.cfg.Handler != nil {
		s.cfg.Handler(ev)
	}
}

// Send writes a complete encoded frame to the current connection.
func (s *Service) Send(raw string) error {
	f, err := frame.Parse(raw)
	if err != nil {
		return err
	}
	s.mu.Lock()
	conn := s.conn
	s.mu.Unlock()
	if conn == nil {
		return ErrNotConnected
	}
	if err := conn.Send(raw); err != nil {
		return err
	}
	observability.RecordFrameSent(mnemonicOf(f.Body))
	return nil
}

func mnemonicOf(body string) string {
	msg, err := protocol.DecodeBody(body)
	if err != nil {
		return protocol.MnemonicUnknown
	}
	return msg.Mnemonic
}

func (s *Service) attach(conn *transport.Conn) {
	s.mu.Lock()
	s.conn = conn
	s.mu.Unlock()
	s.connected.Store(true)
}

func (s *Service) detach() {
	s.connected.Store(false)
	s.mu.Lock()
	s.conn = nil
	s.mu.Unlock()
}

func sleep(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
