// Package facts provides the subject/category pairs a quiz draws from.
package facts

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/samber/lo"
)

var (
	// ErrNoFacts is returned when a fact set has no entries.
	ErrNoFacts = errors.New("fact set is empty")
	// ErrUnknownCategory is returned when a fact names a category outside the vocabulary.
	ErrUnknownCategory = errors.New("category not in vocabulary")
	// ErrInvalidUTF8 is returned when a subject or category is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("fact is not valid UTF-8")
)

// Fact pairs a subject with the category it belongs to.
type Fact struct {
	Subject  string
	Category string
}

// Source is random-access reference data for a quiz.
type Source interface {
	Name() string
	Len() int
	At(i int) Fact
	Vocabulary() []string
}

// Set is an immutable, validated fact collection.
type Set struct {
	name       string
	facts      []Fact
	vocabulary []string
}

// New validates facts against vocabulary. A nil vocabulary is derived from the
// distinct categories of facts in first-seen order.
func New(name string, facts []Fact, vocabulary []string) (*Set, error) {
	if len(facts) == 0 {
		return nil, fmt.Errorf("%s: %w", name, ErrNoFacts)
	}
	for i, f := range facts {
		if f.Subject == "" || f.Category == "" {
			return nil, fmt.Errorf("%s: fact %d has an empty subject or category", name, i)
		}
		if !utf8.ValidString(f.Subject) || !utf8.ValidString(f.Category) {
			return nil, fmt.Errorf("%s: fact %d: %w", name, i, ErrInvalidUTF8)
		}
	}
	for i, c := range vocabulary {
		if !utf8.ValidString(c) {
			return nil, fmt.Errorf("%s: vocabulary entry %d: %w", name, i, ErrInvalidUTF8)
		}
	}
	if vocabulary == nil {
		vocabulary = lo.Uniq(lo.Map(facts, func(f Fact, _ int) string { return f.Category }))
	}
	known := lo.SliceToMap(vocabulary, func(c string) (string, struct{}) { return c, struct{}{} })
	for _, f := range facts {
		if _, ok := known[f.Category]; !ok {
			return nil, fmt.Errorf("%s: %w: %q (subject %q)", name, ErrUnknownCategory, f.Category, f.Subject)
		}
	}
	return &Set{
		name:       name,
		facts:      append([]Fact(nil), facts...),
		vocabulary: append([]string(nil), vocabulary...),
	}, nil
}

// Name identifies where the facts came from.
func (s *Set) Name() string { return s.name }

// Len returns the number of facts.
func (s *Set) Len() int { return len(s.facts) }

// At returns the i-th fact.
func (s *Set) At(i int) Fact { return s.facts[i] }

// Vocabulary returns the valid categories in order.
func (s *Set) Vocabulary() []string { return append([]string(nil), s.vocabulary...) }

// All returns a copy of every fact.
func (s *Set) All() []Fact { return append([]Fact(nil), s.facts...) }
