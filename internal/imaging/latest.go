package imaging

import "sync"

// Latest is the process-wide single-slot register holding the filename of
// the most recently pushed artifact. It starts unset, is overwritten (never
// appended) by each successful push, and is never cleared. Not persisted;
// resets on process restart. Concurrent pushes race and the last write wins.
type Latest struct {
	mu       sync.RWMutex
	filename string
	set      bool
}

// Set records the most recent artifact filename.
func (l *Latest) Set(filename string) {
	l.mu.Lock()
	l.filename = filename
	l.set = true
	l.mu.Unlock()
}

// Get returns the registered filename, or false if nothing has been pushed
// since process start.
func (l *Latest) Get() (string, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.filename, l.set
}
