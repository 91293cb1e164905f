// Package directions holds the instruction list shared between the map
// adapter, which fills it after a route fetch, and the root view, which
// reads it.
package directions

type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusReady
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusReady:
		return "ready"
	case StatusFailed:
		return "failed"
	}
	return "unknown"
}

// State is not safe for concurrent use. All writes must happen on the UI
// goroutine.
type State struct {
	instructions []string
	status       Status
	err          error
}

func NewState() *State {
	return &State{}
}

// Instructions returns a copy of the current instruction list.
func (s *State) Instructions() []string {
	out := make([]string, len(s.instructions))
	copy(out, s.instructions)
	return out
}

func (s *State) Len() int       { return len(s.instructions) }
func (s *State) Empty() bool    { return len(s.instructions) == 0 }
func (s *State) Status() Status { return s.status }
func (s *State) Err() error     { return s.err }

func (s *State) MarkLoading() {
	s.status = StatusLoading
	s.err = nil
}

// Replace drops empty strings and stores the rest in order.
func (s *State) Replace(instructions []string) {
	kept := make([]string, 0, len(instructions))
	for _, in := range instructions {
		if in != "" {
			kept = append(kept, in)
		}
	}
	s.instructions = kept
	s.status = StatusReady
	s.err = nil
}

// Fail records err without touching the instruction list.
func (s *State) Fail(err error) {
	s.status = StatusFailed
	s.err = err
}
