// Package review records missed answers for end-of-session review.
package review

import (
	"sort"
	"strings"

	"github.com/samber/lo"
)

// Ledger maps a category to the set of subjects missed in it.
type Ledger struct {
	misses map[string]map[string]struct{}
}

// NewLedger returns an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{misses: map[string]map[string]struct{}{}}
}

// RecordMiss notes that subject, which belongs to category, was answered wrong.
// Repeated misses on the same subject are kept once.
func (l *Ledger) RecordMiss(subject, category string) {
	l.getOrCreate(category)[subject] = struct{}{}
}

// Len returns the number of distinct missed subjects across categories.
func (l *Ledger) Len() int {
	n := 0
	for _, subjects := range l.misses {
		n += len(subjects)
	}
	return n
}

func (l *Ledger) getOrCreate(category string) map[string]struct{} {
	if l.misses == nil {
		l.misses = map[string]map[string]struct{}{}
	}
	subjects, ok := l.misses[category]
	if !ok {
		subjects = map[string]struct{}{}
		l.misses[category] = subjects
	}
	return subjects
}

// Section lists the missed subjects of one category.
type Section struct {
	Category string
	Subjects []string
}

// Report is a sorted snapshot of a ledger.
type Report struct {
	Sections []Section
}

// Report returns categories and their subjects in lexicographic order.
func (l *Ledger) Report() Report {
	categories := lo.Keys(l.misses)
	sort.Strings(categories)
	sections := make([]Section, 0, len(categories))
	for _, category := range categories {
		subjects := lo.Keys(l.misses[category])
		sort.Strings(subjects)
		sections = append(sections, Section{Category: category, Subjects: subjects})
	}
	return Report{Sections: sections}
}

// Empty reports whether there is nothing to review.
func (r Report) Empty() bool {
	return len(r.Sections) == 0
}

// String renders the report as an indented list.
func (r Report) String() string {
	if r.Empty() {
		return "No incorrect answers to remember for next time."
	}
	var b strings.Builder
	b.WriteString("Remember these for next time:")
	for _, section := range r.Sections {
		b.WriteString("\n  ")
		b.WriteString(section.Category)
		b.WriteString(":")
		for _, subject := range section.Subjects {
			b.WriteString("\n    - ")
			b.WriteString(subject)
		}
	}
	return b.String()
}
