package pipe_test

import (
	"bytes"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/DroidSky/bazel/pipe"
)

// TestPipe_SingleGoroutine verifies FIFO reassembly with mismatched send and
// receive chunk sizes on a single goroutine.
func TestPipe_SingleGoroutine(t *testing.T) {
	p := pipe.New()
	defer func() { _ = p.Close() }()

	buffer := make([]byte, 50)

	require.NoError(t, p.Send([]byte("hello")))

	n, err := p.Receive(buffer[:3])
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	require.NoError(t, p.Send([]byte(" world")))

	n, err = p.Receive(buffer[3:8])
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	n, err = p.Receive(buffer[8:48])
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	assert.Equal(t, "hello world", string(buffer[:11]))
}

// TestPipe_WriterFinishesFirst verifies buffered bytes survive the producer
// goroutine: the writer sends everything and is joined before the reader
// drains a single byte.
func TestPipe_WriterFinishesFirst(t *testing.T) {
	p := pipe.New()
	defer func() { _ = p.Close() }()

	var g errgroup.Group
	g.Go(func() error {
		if err := p.Send([]byte("hello")); err != nil {
			return err
		}
		return p.Send([]byte(" world"))
	})

	// Wait for all data to be fully written to the pipe.
	require.NoError(t, g.Wait())

	buffer := make([]byte, 50)

	n, err := p.Receive(buffer[:3])
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	n, err = p.Receive(buffer[3:8])
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	n, err = p.Receive(buffer[8:48])
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	assert.Equal(t, "hello world", string(buffer[:11]))
}

// TestPipe_ConcurrentProducerConsumer verifies FIFO order is preserved while
// producer and consumer run concurrently.
func TestPipe_ConcurrentProducerConsumer(t *testing.T) {
	p := pipe.New()

	chunks := [][]byte{
		[]byte("the quick "),
		[]byte("brown fox "),
		[]byte("jumps over "),
		[]byte("the lazy dog"),
	}
	var want bytes.Buffer
	for _, c := range chunks {
		want.Write(c)
	}

	var g errgroup.Group
	g.Go(func() error {
		for _, c := range chunks {
			if err := p.Send(c); err != nil {
				return err
			}
		}
		return p.CloseSend()
	})

	var got bytes.Buffer
	buf := make([]byte, 7) // deliberately misaligned with chunk sizes
	for {
		n, err := p.Receive(buf)
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		require.Positive(t, n, "Receive must return at least one byte")
		got.Write(buf[:n])
	}

	require.NoError(t, g.Wait())
	assert.Equal(t, want.String(), got.String())
}

// TestPipe_ReceiveBlocksUntilData verifies Receive suspends the caller until
// a byte arrives rather than returning an empty result.
func TestPipe_ReceiveBlocksUntilData(t *testing.T) {
	p := pipe.New()
	defer func() { _ = p.Close() }()

	var g errgroup.Group
	g.Go(func() error {
		time.Sleep(20 * time.Millisecond)
		return p.Send([]byte("x"))
	})

	buf := make([]byte, 4)
	n, err := p.Receive(buf)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, byte('x'), buf[0])

	require.NoError(t, g.Wait())
}

// TestPipe_CloseSendThenDrain verifies io.EOF only surfaces after the buffer
// is fully drained.
func TestPipe_CloseSendThenDrain(t *testing.T) {
	p := pipe.New()

	require.NoError(t, p.Send([]byte("abc")))
	require.NoError(t, p.CloseSend())

	buf := make([]byte, 2)

	n, err := p.Receive(buf)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, "ab", string(buf[:n]))

	n, err = p.Receive(buf)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, "c", string(buf[:n]))

	n, err = p.Receive(buf)
	assert.Equal(t, 0, n)
	assert.ErrorIs(t, err, io.EOF)
}

// TestPipe_SendAfterClose verifies Sends fail once either close path ran.
func TestPipe_SendAfterClose(t *testing.T) {
	t.Run("CloseSend", func(t *testing.T) {
		p := pipe.New()
		require.NoError(t, p.CloseSend())
		assert.ErrorIs(t, p.Send([]byte("late")), io.ErrClosedPipe)
	})

	t.Run("Close", func(t *testing.T) {
		p := pipe.New()
		require.NoError(t, p.Close())
		assert.ErrorIs(t, p.Send([]byte("late")), io.ErrClosedPipe)
	})
}

// TestPipe_CloseUnblocksReceive verifies a blocked Receive is released by
// Close instead of hanging forever.
func TestPipe_CloseUnblocksReceive(t *testing.T) {
	p := pipe.New()

	var g errgroup.Group
	g.Go(func() error {
		time.Sleep(20 * time.Millisecond)
		return p.Close()
	})

	buf := make([]byte, 4)
	n, err := p.Receive(buf)
	assert.Equal(t, 0, n)
	assert.ErrorIs(t, err, io.EOF)

	require.NoError(t, g.Wait())
}

// TestPipe_CloseDiscardsBuffer verifies Close (unlike CloseSend) drops
// undelivered bytes.
func TestPipe_CloseDiscardsBuffer(t *testing.T) {
	p := pipe.New()
	require.NoError(t, p.Send([]byte("doomed")))
	require.NoError(t, p.Close())

	buf := make([]byte, 16)
	n, err := p.Receive(buf)
	assert.Equal(t, 0, n)
	assert.ErrorIs(t, err, io.EOF)
}

// TestPipe_CloseIdempotent verifies both close paths tolerate repeat calls.
func TestPipe_CloseIdempotent(t *testing.T) {
	p := pipe.New()
	require.NoError(t, p.CloseSend())
	require.NoError(t, p.CloseSend())
	require.NoError(t, p.Close())
	require.NoError(t, p.Close())
}

// TestPipe_ZeroLengthReceive verifies a zero-length buffer never blocks.
func TestPipe_ZeroLengthReceive(t *testing.T) {
	p := pipe.New()
	defer func() { _ = p.Close() }()

	n, err := p.Receive(nil)
	assert.Equal(t, 0, n)
	assert.NoError(t, err)
}

// TestPipe_IOCopy verifies the io.Reader/io.Writer adapters compose with
// the stdlib io machinery.
func TestPipe_IOCopy(t *testing.T) {
	p := pipe.New()

	var g errgroup.Group
	g.Go(func() error {
		if _, err := io.Copy(p, bytes.NewReader([]byte("streamed through io.Copy"))); err != nil {
			return err
		}
		return p.CloseSend()
	})

	var out bytes.Buffer
	_, err := io.Copy(&out, p)
	require.NoError(t, err)
	require.NoError(t, g.Wait())

	assert.Equal(t, "streamed through io.Copy", out.String())
}
