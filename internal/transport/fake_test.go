package transport

import (
	"bytes"
	"io"
	"sync"
)

type readResult struct {
	data string
	err  error
}

// fakePort replays scripted reads and records writes.
type fakePort struct {
	mu      sync.Mutex
	reads   []readResult
	written bytes.Buffer
	writeFn func(p []byte) (int, error)
	closed  bool
}

func newFakePort(reads ...readResult) *fakePort {
	return &fakePort{reads: reads}
}

func (p *fakePort) Read(buf []byte) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.reads) == 0 {
		return 0, io.EOF
	}
	next := p.reads[0]
	p.reads = p.reads[1:]
	n := copy(buf, next.data)
	return n, next.err
}

func (p *fakePort) Write(buf []byte) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.writeFn != nil {
		return p.writeFn(buf)
	}
	return p.written.Write(buf)
}

func (p *fakePort) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closed = true
	return nil
}
