package catalog

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"

	"github.com/chooselife/strongfoundations/pkg/lesson"

	"gopkg.in/yaml.v3"
)

//go:embed lessons.yaml
var lessonsYAML []byte

type document struct {
	Lessons []lesson.Lesson `yaml:"lessons"`
}

// Static serves the course compiled into the binary.
type Static struct {
	catalog lesson.Catalog
}

func NewStatic() (*Static, error) {
	lessons, err := Fixture()
	if err != nil {
		return nil, err
	}
	return &Static{catalog: lesson.NewCatalog(lessons)}, nil
}

func (s *Static) Name() string { return SourceStatic }

func (s *Static) Load(ctx context.Context) (lesson.Catalog, error) {
	if err := ctx.Err(); err != nil {
		return lesson.Catalog{}, err
	}
	out := make(lesson.Catalog, len(s.catalog))
	copy(out, s.catalog)
	return out, nil
}

// Fixture decodes the embedded course. It doubles as the database seed.
func Fixture() ([]lesson.Lesson, error) {
	var doc document
	dec := yaml.NewDecoder(bytes.NewReader(lessonsYAML))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode embedded lessons: %w", err)
	}
	return doc.Lessons, nil
}
