package shell

import (
	"bytes"
	"strings"
	"sync"
)

// accumulator collects every byte the device has sent since the last clear.
// The ingest loop appends, operations extract responses by marker. Appends
// close the current wake channel so a blocked extraction can re-check the
// buffer instead of polling.
type accumulator struct {
	mu   sync.Mutex
	buf  []byte
	wake chan struct{}
}

func newAccumulator() *accumulator {
	return &accumulator{wake: make(chan struct{})}
}

// append adds data to the buffer and wakes waiting readers.
func (a *accumulator) append(data []byte) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.buf = append(a.buf, data...)
	close(a.wake)
	a.wake = make(chan struct{})
}

// pending returns a channel that is closed by the next append. Callers grab
// it before checking the buffer so an append between the check and the wait
// cannot be missed.
func (a *accumulator) pending() <-chan struct{} {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.wake
}

// extract looks for marker in the buffer. On a match it returns the text
// before the marker with surrounding whitespace trimmed and consumes the
// buffer through the marker's end, so consecutive extractions walk the
// stream in order. ok is false when the marker has not arrived yet.
func (a *accumulator) extract(marker string) (text string, ok bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	idx := bytes.Index(a.buf, []byte(marker))
	if idx < 0 {
		return "", false
	}

	text = strings.TrimSpace(string(a.buf[:idx]))
	rest := a.buf[idx+len(marker):]
	a.buf = append(a.buf[:0], rest...)
	return text, true
}

// snapshot returns a copy of the buffered bytes.
func (a *accumulator) snapshot() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return string(a.buf)
}

// clear discards the buffer.
func (a *accumulator) clear() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.buf = a.buf[:0]
}
