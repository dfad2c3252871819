// Package pipe provides an in-process, single-writer/single-reader byte
// channel for handing data between goroutines.
//
// Unlike io.Pipe, which rendezvouses each write with a read, a Pipe buffers
// sent bytes internally. The producer can finish and be joined before the
// consumer starts draining; every byte sent before CloseSend remains
// receivable afterwards, in FIFO order.
//
// # Thread Safety
//
// A Pipe is designed for exactly one producer goroutine calling Send and one
// consumer goroutine calling Receive. The two may run concurrently; multiple
// concurrent producers or consumers on the same Pipe are not supported.
package pipe

import (
	"io"
	"sync"
)

// Pipe is an unbounded in-process FIFO byte channel.
//
// The zero value is not usable; create instances with New.
type Pipe struct {
	mu   sync.Mutex
	cond *sync.Cond

	buf        []byte
	sendClosed bool
	closed     bool
}

// New creates an empty, open Pipe.
func New() *Pipe {
	p := &Pipe{}
	p.cond = sync.NewCond(&p.mu)
	return p
}

// Send enqueues all of data, atomically with respect to other Send calls.
// The data is copied; the caller may reuse the slice immediately.
//
// Send returns io.ErrClosedPipe if the send side has been closed.
// Sending an empty slice is a no-op and always succeeds on an open pipe.
func (p *Pipe) Send(data []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed || p.sendClosed {
		return io.ErrClosedPipe
	}
	if len(data) == 0 {
		return nil
	}

	p.buf = append(p.buf, data...)
	p.cond.Signal()
	return nil
}

// Receive blocks until at least one byte is buffered or the send side is
// closed, then copies up to len(buf) bytes and returns the count copied.
// It may return fewer bytes than requested even if more will arrive later;
// it never waits for the buffer to fill.
//
// Receive returns (0, io.EOF) once the pipe is closed and drained.
// A zero-length buf returns (0, nil) immediately.
func (p *Pipe) Receive(buf []byte) (int, error) {
	if len(buf) == 0 {
		return 0, nil
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	for len(p.buf) == 0 {
		if p.closed || p.sendClosed {
			return 0, io.EOF
		}
		p.cond.Wait()
	}

	n := copy(buf, p.buf)
	p.buf = p.buf[n:]
	if len(p.buf) == 0 {
		// Drop the backing array so a long-drained pipe does not pin a
		// large allocation.
		p.buf = nil
	}
	return n, nil
}

// CloseSend marks the send side closed. Buffered bytes remain receivable;
// once drained, Receive returns io.EOF. CloseSend is idempotent.
func (p *Pipe) CloseSend() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.sendClosed = true
	p.cond.Broadcast()
	return nil
}

// Close tears the pipe down: buffered bytes are discarded, a blocked Receive
// is unblocked with io.EOF, and subsequent Sends fail. Close is idempotent.
func (p *Pipe) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.closed = true
	p.sendClosed = true
	p.buf = nil
	p.cond.Broadcast()
	return nil
}

// Write implements io.Writer in terms of Send, so a Pipe can be the target
// of io.Copy and friends.
func (p *Pipe) Write(b []byte) (int, error) {
	if err := p.Send(b); err != nil {
		return 0, err
	}
	return len(b), nil
}

// Read implements io.Reader in terms of Receive.
func (p *Pipe) Read(b []byte) (int, error) {
	return p.Receive(b)
}

// Compile-time interface checks.
var (
	_ io.Reader = (*Pipe)(nil)
	_ io.Writer = (*Pipe)(nil)
	_ io.Closer = (*Pipe)(nil)
)
