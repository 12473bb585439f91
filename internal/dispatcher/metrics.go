package dispatcher

import "sync"

// Stats counts phases run and callbacks invoked per phase.
type Stats struct {
	mu     sync.RWMutex
	phases map[Phase]uint64
	calls  map[Phase]uint64
}

// NewStats creates an empty counter set.
func NewStats() *Stats {
	return &Stats{
		phases: make(map[Phase]uint64),
		calls:  make(map[Phase]uint64),
	}
}

func (s *Stats) recordPhase(p Phase) {
	s.mu.Lock()
	s.phases[p]++
	s.mu.Unlock()
}

func (s *Stats) recordCall(p Phase) {
	s.mu.Lock()
	s.calls[p]++
	s.mu.Unlock()
}

// Phases returns how many times phase p was dispatched.
func (s *Stats) Phases(p Phase) uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.phases[p]
}

// Calls returns how many callbacks ran for phase p.
func (s *Stats) Calls(p Phase) uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.calls[p]
}

// Snapshot returns phase-name keyed dispatch counts, suitable for logging.
func (s *Stats) Snapshot() map[string]uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]uint64, len(s.phases))
	for p, n := range s.phases {
		out[p.String()] = n
	}
	return out
}
