package lesson

import "sort"

// Catalog is the ordered list of lessons visible to learners.
type Catalog []Lesson

// NewCatalog copies lessons into a catalog sorted by order.
func NewCatalog(lessons []Lesson) Catalog {
	c := make(Catalog, len(lessons))
	copy(c, lessons)
	sort.SliceStable(c, func(i, j int) bool { return c[i].Order < c[j].Order })
	return c
}

// Resolve returns the first lesson whose slug equals slug exactly.
func (c Catalog) Resolve(slug string) (Lesson, error) {
	for _, l := range c {
		if l.Slug == slug {
			return l, nil
		}
	}
	return Lesson{}, ErrNotFound
}

// ByOrder returns the lesson at the given position.
func (c Catalog) ByOrder(order int) (Lesson, bool) {
	for _, l := range c {
		if l.Order == order {
			return l, true
		}
	}
	return Lesson{}, false
}

// Previous is the lesson ordered exactly one before cur.
func (c Catalog) Previous(cur Lesson) (Lesson, bool) {
	return c.ByOrder(cur.Order - 1)
}

// Next is the lesson ordered exactly one after cur.
func (c Catalog) Next(cur Lesson) (Lesson, bool) {
	return c.ByOrder(cur.Order + 1)
}
