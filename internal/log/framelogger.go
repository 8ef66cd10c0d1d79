package log

import (
	"bytes"
	"fmt"
	"io"
	"sync"
	"time"
)

// FrameLogger handles raw sensor frame logging with optional file output.
type FrameLogger interface {
	Log(frame []byte)
}

// frameLogger implements FrameLogger with thread-safe logging.
type frameLogger struct {
	w  io.Writer
	mu sync.Mutex
}

// NewFrame creates a new FrameLogger. If writer is nil, returns a no-op logger.
func NewFrame(w io.Writer) FrameLogger {
	return &frameLogger{w: w}
}

// Log emits a single-line raw frame log with timestamp and hex dump.
func (r *frameLogger) Log(frame []byte) {
	if len(frame) == 0 {
		return
	}
	if r.w == nil {
		return
	}

	var hexbuf bytes.Buffer
	const hexdigits = "0123456789abcdef"
	for i, b := range frame {
		if i > 0 {
			hexbuf.WriteByte(' ')
		}
		hexbuf.WriteByte(hexdigits[b>>4])
		hexbuf.WriteByte(hexdigits[b&0x0f])
	}

	line := fmt.Sprintf("%s frame: %d bytes, hex: %s\n",
		time.Now().Format("2006/01/02 15:04:05"),
		len(frame),
		hexbuf.String())

	r.mu.Lock()
	_, _ = r.w.Write([]byte(line))
	r.mu.Unlock()
}
