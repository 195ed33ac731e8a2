package konsole

import (
	"bytes"
	"sync"
)

// LineWriter is an io.Writer that hands each complete line to a LevelWriter.
// Partial lines are buffered until their terminator arrives or Flush is
// called. Lines are written while holding the session lock, so they never
// land in the middle of a progress bar render.
//
//	cmd.Stderr = konsole.NewLineWriter(k, k.Defaults().Warn)
type LineWriter struct {
	k     *Konsole
	write LevelWriter

	mu  sync.Mutex
	buf []byte
}

// NewLineWriter creates a LineWriter. A nil write uses the session's info
// writer.
func NewLineWriter(k *Konsole, write LevelWriter) *LineWriter {
	if write == nil {
		write = k.s.defaults.Info
	}
	return &LineWriter{k: k, write: write}
}

// Write implements io.Writer.
func (lw *LineWriter) Write(p []byte) (int, error) {
	lw.mu.Lock()
	defer lw.mu.Unlock()

	lw.buf = append(lw.buf, p...)
	for {
		idx := bytes.IndexByte(lw.buf, '\n')
		if idx < 0 {
			break
		}
		line := bytes.TrimSuffix(lw.buf[:idx], []byte{'\r'})
		lw.emit(string(line))
		lw.buf = lw.buf[idx+1:]
	}
	return len(p), nil
}

// Flush writes any buffered partial line.
func (lw *LineWriter) Flush() {
	lw.mu.Lock()
	defer lw.mu.Unlock()

	if len(lw.buf) > 0 {
		lw.emit(string(lw.buf))
		lw.buf = nil
	}
}

func (lw *LineWriter) emit(line string) {
	lw.k.Lock()
	defer lw.k.Unlock()
	lw.write(lw.k, line)
}
