// Package completion resolves partial input against a closed vocabulary.
package completion

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/tchap/go-patricia/v2/patricia"
)

var (
	// ErrEmptyVocabulary is returned when an engine is built without entries.
	ErrEmptyVocabulary = errors.New("vocabulary is empty")
	// ErrBlankEntry is returned when a vocabulary entry is the empty string.
	ErrBlankEntry = errors.New("vocabulary entry is empty")
	// ErrDuplicateEntry is returned when a vocabulary entry appears twice.
	ErrDuplicateEntry = errors.New("duplicate vocabulary entry")
	// ErrInvalidUTF8 is returned when a vocabulary entry is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("vocabulary entry is not valid UTF-8")
)

// Engine answers line editor completion requests. It keeps the candidate
// subset for the most recent text only, and is not safe for concurrent use.
type Engine struct {
	vocabulary []string
	index      *patricia.Trie

	lastText   string
	hasLast    bool
	candidates []string
}

// New builds an engine over vocabulary, preserving its order.
func New(vocabulary []string) (*Engine, error) {
	if len(vocabulary) == 0 {
		return nil, ErrEmptyVocabulary
	}
	trie := patricia.NewTrie()
	for i, entry := range vocabulary {
		if entry == "" {
			return nil, fmt.Errorf("entry %d: %w", i, ErrBlankEntry)
		}
		if !utf8.ValidString(entry) {
			return nil, fmt.Errorf("entry %d %q: %w", i, entry, ErrInvalidUTF8)
		}
		if !trie.Insert(patricia.Prefix(entry), i) {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateEntry, entry)
		}
	}
	return &Engine{
		vocabulary: append([]string(nil), vocabulary...),
		index:      trie,
	}, nil
}

// Complete returns the completion for text at the given request index.
// The bool is false when there is no (further) completion.
func (e *Engine) Complete(text string, index int) (string, bool) {
	candidates := e.lookup(text)
	if index != 0 || len(candidates) == 0 {
		return "", false
	}
	if len(candidates) == 1 {
		return candidates[0], true
	}
	prefix := LongestCommonPrefix(candidates)
	// text may end inside a rune the candidates encode differently.
	if !strings.HasPrefix(prefix, text) {
		return text, true
	}
	return prefix, true
}

// Matches returns the vocabulary entries that start with text, in vocabulary order.
func (e *Engine) Matches(text string) []string {
	return append([]string(nil), e.lookup(text)...)
}

// Vocabulary returns a copy of the engine's vocabulary.
func (e *Engine) Vocabulary() []string {
	return append([]string(nil), e.vocabulary...)
}

func (e *Engine) lookup(text string) []string {
	if e.hasLast && e.lastText == text {
		return e.candidates
	}
	e.lastText = text
	e.hasLast = true
	e.candidates = e.filter(text)
	return e.candidates
}

func (e *Engine) filter(text string) []string {
	if text == "" {
		return append([]string(nil), e.vocabulary...)
	}
	var positions []int
	// The visitor never returns an error.
	_ = e.index.VisitSubtree(patricia.Prefix(text), func(_ patricia.Prefix, item patricia.Item) error {
		positions = append(positions, item.(int))
		return nil
	})
	if len(positions) == 0 {
		return nil
	}
	sort.Ints(positions)
	out := make([]string, len(positions))
	for i, pos := range positions {
		out[i] = e.vocabulary[pos]
	}
	return out
}
