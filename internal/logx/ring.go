package logx

import (
	"bytes"
	"strings"
	"sync"
)

// Ring is an io.Writer that keeps the most recent complete log lines in
// memory. The event log region renders from it.
type Ring struct {
	mu      sync.Mutex
	lines   []string
	start   int
	count   int
	partial bytes.Buffer
}

// NewRing creates a ring holding at most capacity lines. Capacity below 1 is raised to 1.
func NewRing(capacity int) *Ring {
	if capacity < 1 {
		capacity = 1
	}
	return &Ring{lines: make([]string, capacity)}
}

// Write implements io.Writer. Bytes after the last newline are held until
// the line is completed by a later Write.
func (r *Ring) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.partial.Write(p)
	for {
		data := r.partial.Bytes()
		idx := bytes.IndexByte(data, '\n')
		if idx < 0 {
			break
		}
		line := strings.TrimRight(string(data[:idx]), "\r")
		r.partial.Next(idx + 1)
		r.push(line)
	}
	return len(p), nil
}

// push must be called with r.mu held.
func (r *Ring) push(line string) {
	capacity := len(r.lines)
	if r.count < capacity {
		r.lines[(r.start+r.count)%capacity] = line
		r.count++
		return
	}
	r.lines[r.start] = line
	r.start = (r.start + 1) % capacity
}

// Lines returns the buffered lines, oldest first.
func (r *Ring) Lines() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, r.count)
	for i := 0; i < r.count; i++ {
		out[i] = r.lines[(r.start+i)%len(r.lines)]
	}
	return out
}

// Len returns the number of buffered lines.
func (r *Ring) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.count
}
