package transport

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/danmuck/cbusctl/internal/protocol/frame"
)

// Port is the byte-oriented adapter a Conn drives. A Read returning (0, nil)
// means no data arrived before the port's read timeout.
type Port interface {
	io.ReadWriteCloser
}

const DefaultReadBuffer = 256

// Conn owns the tokenizer for one physical connection. ReadFrames and Pending
// must be driven by a single goroutine. Send and Close may be called from any.
type Conn struct {
	port Port
	tok  frame.Tokenizer
	buf  []byte

	writeMu sync.Mutex
	closeMu sync.Mutex
	closed  bool
}

func NewConn(port Port) *Conn {
	return &Conn{port: port, buf: make([]byte, DefaultReadBuffer)}
}

// ReadFrames performs one read and returns the frames it completed.
// An empty result with a nil error means no data was available.
func (c *Conn) ReadFrames() ([]string, int, error) {
	if c.isClosed() {
		return nil, 0, ErrClosed
	}
	n, err := c.port.Read(c.buf)
	var frames []string
	if n > 0 {
		frames = c.tok.Feed(c.buf[:n])
	}
	if err != nil {
		return frames, n, classify("read", err)
	}
	return frames, n, nil
}

// Send writes one encoded frame. Partial writes are reported as errors.
func (c *Conn) Send(raw string) error {
	if c.isClosed() {
		return ErrClosed
	}
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	n, err := io.WriteString(c.port, raw)
	if err != nil {
		return classify("write", err)
	}
	if n != len(raw) {
		return fmt.Errorf("%w: short write %d/%d", ErrConnectionError, n, len(raw))
	}
	return nil
}

// Pending is the length of the unterminated partial frame.
func (c *Conn) Pending() int {
	return c.tok.Pending()
}

func (c *Conn) Close() error {
	c.closeMu.Lock()
	if c.closed {
		c.closeMu.Unlock()
		return nil
	}
	c.closed = true
	c.closeMu.Unlock()
	if err := c.port.Close(); err != nil {
		return classify("close", err)
	}
	return nil
}

func (c *Conn) isClosed() bool {
	c.closeMu.Lock()
	defer c.closeMu.Unlock()
	return c.closed
}

func classify(op string, err error) error {
	switch {
	case errors.Is(err, ErrConnectionLost), errors.Is(err, ErrConnectionError):
		return err
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF), errors.Is(err, io.ErrClosedPipe):
		return fmt.Errorf("%w: %s: %v", ErrConnectionLost, op, err)
	default:
		return fmt.Errorf("%w: %s: %v", ErrConnectionError, op, err)
	}
}
