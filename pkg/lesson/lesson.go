// Package lesson holds the course sequencing rules shared by the services:
// the ordered catalog, slug resolution, and the gate that keeps a signed-in
// learner from skipping ahead of the lesson they have not yet completed.
package lesson

import (
	"errors"
	"strconv"
)

var (
	ErrNotFound        = errors.New("lesson not found")
	ErrUnauthenticated = errors.New("authentication required")
)

// Lesson is one unit of course content. Order is the 1-based position in the
// course and doubles as the identifier completions are recorded against.
//
// Content is admin-authored HTML and is handed to clients verbatim; it is not
// sanitised anywhere in the system, so only trusted authors may write it.
type Lesson struct {
	Order       int    `json:"order" yaml:"order"`
	Slug        string `json:"slug" yaml:"slug"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Content     string `json:"content" yaml:"content"`
	ImageURL    string `json:"image_url,omitempty" yaml:"image_url,omitempty"`
	Published   bool   `json:"published" yaml:"published"`
}

// ID is the completion identifier of l: its order as a decimal string.
func (l Lesson) ID() string {
	return strconv.Itoa(l.Order)
}

// Principal is the identity a request acts for. The zero value is a guest.
type Principal struct {
	UserID string
}

func Guest() Principal { return Principal{} }

func (p Principal) Authenticated() bool { return p.UserID != "" }
