package lesson

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleCatalog() Catalog {
	return NewCatalog([]Lesson{
		{Order: 2, Slug: "in-christ", Title: "In Christ"},
		{Order: 1, Slug: "repentance-and-salvation", Title: "Repentance and Salvation"},
		{Order: 3, Slug: "water-baptism", Title: "Water Baptism"},
	})
}

func TestNewCatalogSortsByOrder(t *testing.T) {
	c := sampleCatalog()
	require.Len(t, c, 3)
	for i, l := range c {
		assert.Equal(t, i+1, l.Order)
	}
}

func TestResolve(t *testing.T) {
	c := sampleCatalog()

	got, err := c.Resolve("water-baptism")
	require.NoError(t, err)
	assert.Equal(t, 3, got.Order)

	_, err = c.Resolve("Water-Baptism")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = c.Resolve("")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = Catalog(nil).Resolve("water-baptism")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestResolveReturnsFirstMatch(t *testing.T) {
	c := NewCatalog([]Lesson{
		{Order: 1, Slug: "dup", Title: "first"},
		{Order: 2, Slug: "dup", Title: "second"},
	})
	got, err := c.Resolve("dup")
	require.NoError(t, err)
	assert.Equal(t, "first", got.Title)
}

func TestPreviousNext(t *testing.T) {
	c := sampleCatalog()
	first, _ := c.ByOrder(1)
	last, _ := c.ByOrder(3)

	_, ok := c.Previous(first)
	assert.False(t, ok)
	next, ok := c.Next(first)
	require.True(t, ok)
	assert.Equal(t, "in-christ", next.Slug)

	_, ok = c.Next(last)
	assert.False(t, ok)
	prev, ok := c.Previous(last)
	require.True(t, ok)
	assert.Equal(t, 2, prev.Order)
}

func TestPreviousNextWithGap(t *testing.T) {
	c := NewCatalog([]Lesson{{Order: 1, Slug: "a"}, {Order: 3, Slug: "c"}})
	a, _ := c.Resolve("a")
	_, ok := c.Next(a)
	assert.False(t, ok, "order gaps leave no neighbour")
}

func TestID(t *testing.T) {
	assert.Equal(t, "7", Lesson{Order: 7}.ID())
}

func TestCanAdvance(t *testing.T) {
	c := sampleCatalog()
	l1, _ := c.ByOrder(1)
	l2, _ := c.ByOrder(2)
	done := NewCompletedSet("1")

	assert.True(t, CanAdvance(l1, done))
	assert.False(t, CanAdvance(l2, done))
	assert.False(t, CanAdvance(l1, nil))
}

func TestGate(t *testing.T) {
	l2 := Lesson{Order: 2}

	assert.True(t, Gate{Principal: Guest()}.Allows(l2), "guests are never gated")
	assert.False(t, Gate{Principal: Principal{UserID: "u1"}, Completed: NewCompletedSet("1")}.Allows(l2))
	assert.True(t, Gate{Principal: Principal{UserID: "u1"}, Completed: NewCompletedSet("1", "2")}.Allows(l2))
}

func TestBuildViewFirstLesson(t *testing.T) {
	c := NewCatalog([]Lesson{
		{Order: 1, Slug: "repentance-and-salvation"},
		{Order: 2, Slug: "in-christ"},
	})

	v, err := BuildView(c, "repentance-and-salvation", Guest(), nil)
	require.NoError(t, err)
	assert.Nil(t, v.Previous)
	require.NotNil(t, v.Next)
	assert.Equal(t, "in-christ", v.Next.Slug)
	assert.False(t, v.Locked)
	assert.False(t, v.Completed)
}

func TestBuildViewGatesSignedInLearner(t *testing.T) {
	c := NewCatalog([]Lesson{
		{Order: 1, Slug: "repentance-and-salvation"},
		{Order: 2, Slug: "in-christ"},
		{Order: 3, Slug: "water-baptism"},
	})
	user := Principal{UserID: "u1"}
	done := NewCompletedSet("1")

	v1, err := BuildView(c, "repentance-and-salvation", user, done)
	require.NoError(t, err)
	assert.True(t, v1.Completed)
	assert.True(t, v1.CanAdvance)
	require.NotNil(t, v1.Next)

	v2, err := BuildView(c, v1.Next.Slug, user, done)
	require.NoError(t, err)
	assert.False(t, v2.Completed)
	assert.False(t, v2.CanAdvance)
	assert.True(t, v2.Locked)
	assert.Nil(t, v2.Next)
	require.NotNil(t, v2.Previous)
	assert.Equal(t, 1, v2.Previous.Order)
}

func TestBuildViewLastLessonIsNeverLocked(t *testing.T) {
	c := sampleCatalog()
	v, err := BuildView(c, "water-baptism", Principal{UserID: "u1"}, nil)
	require.NoError(t, err)
	assert.False(t, v.CanAdvance)
	assert.False(t, v.Locked)
	assert.Nil(t, v.Next)
}

func TestBuildViewUnknownSlug(t *testing.T) {
	_, err := BuildView(sampleCatalog(), "nope", Guest(), nil)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAnnotate(t *testing.T) {
	entries := Annotate(sampleCatalog(), NewCompletedSet("1", "3"))
	require.Len(t, entries, 3)
	assert.True(t, entries[0].Completed)
	assert.False(t, entries[1].Completed)
	assert.True(t, entries[2].Completed)
}

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"The Word, Worship and Prayer":               "the-word-worship-and-prayer",
		"In Christ - What He did for us":             "in-christ-what-he-did-for-us",
		"Reasons to believe - Christian Apologetics": "reasons-to-believe-christian-apologetics",
		"  Fellowship!  ":                            "fellowship",
		"Lesson 10: Finances":                        "lesson-10-finances",
		"---":                                        "",
		"":                                           "",
	}
	for in, want := range cases {
		assert.Equal(t, want, Slugify(in), "Slugify(%q)", in)
	}
}
