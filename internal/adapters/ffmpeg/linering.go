package ffmpeg

import (
	"bytes"
	"sync"
)

// LineRing keeps the last lines written to it. Both '\n' and '\r' end a
// line, so carriage-return progress updates count as lines. Partial lines are
// held until their terminator arrives or Lines is called. It is safe for
// concurrent use.
type LineRing struct {
	mu      sync.Mutex
	lines   []string
	head    int
	count   int
	partial bytes.Buffer
}

// NewLineRing creates a LineRing holding up to capacity lines.
func NewLineRing(capacity int) *LineRing {
	if capacity < 1 {
		capacity = DefaultTailLines
	}
	return &LineRing{lines: make([]string, capacity)}
}

// Write implements io.Writer.
func (r *LineRing) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.partial.Write(p)
	for {
		i := bytes.IndexAny(r.partial.Bytes(), "\r\n")
		if i < 0 {
			break
		}
		line := string(bytes.TrimRight(r.partial.Next(i+1), "\r\n"))
		r.push(line)
	}
	return len(p), nil
}

func (r *LineRing) push(line string) {
	if line == "" {
		return
	}
	r.lines[r.head] = line
	r.head = (r.head + 1) % len(r.lines)
	if r.count < len(r.lines) {
		r.count++
	}
}

// Lines returns the retained lines, oldest first, including any trailing
// partial line.
func (r *LineRing) Lines() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]string, 0, r.count+1)
	start := (r.head - r.count + len(r.lines)) % len(r.lines)
	for i := range r.count {
		out = append(out, r.lines[(start+i)%len(r.lines)])
	}
	if r.partial.Len() > 0 {
		out = append(out, r.partial.String())
	}
	return out
}
