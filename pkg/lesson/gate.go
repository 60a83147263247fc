package lesson

// CompletedSet holds the lesson IDs a learner has completed.
type CompletedSet map[string]struct{}

func NewCompletedSet(ids ...string) CompletedSet {
	s := make(CompletedSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

func (s CompletedSet) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// IDs returns the members in no particular order.
func (s CompletedSet) IDs() []string {
	out := make([]string, 0, len(s))
	for id := range s {
		out = append(out, id)
	}
	return out
}

// CanAdvance reports whether cur has been completed.
func CanAdvance(cur Lesson, completed CompletedSet) bool {
	return completed.Has(cur.ID())
}

// Gate withholds forward navigation from a signed-in learner until the
// current lesson is complete. Guests are never gated because nothing can be
// recorded for them.
type Gate struct {
	Principal Principal
	Completed CompletedSet
}

func (g Gate) Allows(cur Lesson) bool {
	if !g.Principal.Authenticated() {
		return true
	}
	return CanAdvance(cur, g.Completed)
}
