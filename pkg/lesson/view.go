package lesson

// View is everything a reader page needs for one lesson.
type View struct {
	Lesson     Lesson  `json:"lesson"`
	Previous   *Lesson `json:"previous,omitempty"`
	Next       *Lesson `json:"next,omitempty"`
	Completed  bool    `json:"completed"`
	CanAdvance bool    `json:"can_advance"`
	// Locked is set when a next lesson exists but the gate withholds it.
	Locked bool `json:"locked"`
}

// BuildView resolves slug against c and applies the gate for p.
func BuildView(c Catalog, slug string, p Principal, completed CompletedSet) (View, error) {
	cur, err := c.Resolve(slug)
	if err != nil {
		return View{}, err
	}
	gate := Gate{Principal: p, Completed: completed}
	v := View{
		Lesson:     cur,
		Completed:  p.Authenticated() && completed.Has(cur.ID()),
		CanAdvance: gate.Allows(cur),
	}
	if prev, ok := c.Previous(cur); ok {
		v.Previous = &prev
	}
	if next, ok := c.Next(cur); ok {
		if v.CanAdvance {
			v.Next = &next
		} else {
			v.Locked = true
		}
	}
	return v, nil
}

// Entry is a catalog row annotated with the learner's completion badge.
type Entry struct {
	Lesson    Lesson `json:"lesson"`
	Completed bool   `json:"completed"`
}

// Annotate pairs each lesson with its completion flag.
func Annotate(c Catalog, completed CompletedSet) []Entry {
	out := make([]Entry, 0, len(c))
	for _, l := range c {
		out = append(out, Entry{Lesson: l, Completed: completed.Has(l.ID())})
	}
	return out
}
