// Package quiz runs an interactive question/answer session.
package quiz

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/verte-zerg/muniquiz/internal/facts"
	"github.com/verte-zerg/muniquiz/internal/lineedit"
	"github.com/verte-zerg/muniquiz/internal/picker"
	"github.com/verte-zerg/muniquiz/internal/review"
	"github.com/verte-zerg/muniquiz/internal/score"
)

// OutputPrefix starts every line the session prints.
const OutputPrefix = ">>> "

// Options configures a Session.
type Options struct {
	Facts  facts.Source
	Reader lineedit.Reader
	Out    io.Writer
	Picker *picker.Picker
	Logger *log.Logger
	// Banner is printed once before the first question.
	Banner string
	// CategorySuffix follows the category in corrections, e.g. " County".
	CategorySuffix string
}

// Session draws facts, asks for their category and tracks the results.
type Session struct {
	opts   Options
	id     string
	score  score.Keeper
	ledger *review.Ledger
}

// New validates opts and returns a ready session.
func New(opts Options) (*Session, error) {
	if opts.Facts == nil || opts.Facts.Len() == 0 {
		return nil, facts.ErrNoFacts
	}
	if opts.Reader == nil {
		return nil, errors.New("quiz: no line reader")
	}
	if opts.Out == nil {
		opts.Out = io.Discard
	}
	if opts.Picker == nil {
		opts.Picker = picker.New()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	return &Session{
		opts:   opts,
		id:     uuid.NewString(),
		ledger: review.NewLedger(),
	}, nil
}

// Run asks questions until the reader is interrupted, exhausted or ctx is
// cancelled, then prints the review list and the score. Ending the session
// that way is not an error.
func (s *Session) Run(ctx context.Context) error {
	logger := s.opts.Logger.With("session", s.id, "facts", s.opts.Facts.Name())
	logger.Debug("session started")

	if s.opts.Banner != "" {
		if err := s.print(s.opts.Banner); err != nil {
			return err
		}
	}

	runErr := s.loop(ctx)
	if isStop(runErr) {
		runErr = nil
	}

	logger.Debug("session finished", "total", s.score.Total(), "correct", s.score.Correct(), "missed", s.ledger.Len())
	if err := s.report(); err != nil && runErr == nil {
		runErr = err
	}
	return runErr
}

func (s *Session) loop(ctx context.Context) error {
	for {
		fact := s.opts.Picker.Pick(s.opts.Facts)
		answer, err := s.opts.Reader.ReadLine(ctx, fact.Subject+": ")
		if err != nil {
			return err
		}
		if err := s.Answer(fact, answer); err != nil {
			return err
		}
	}
}

// Answer scores one answer for fact and prints a correction when it is wrong.
func (s *Session) Answer(fact facts.Fact, answer string) error {
	if answer == fact.Category {
		s.score.RecordCorrect()
		return nil
	}
	s.score.RecordIncorrect()
	s.ledger.RecordMiss(fact.Subject, fact.Category)
	return s.print(fmt.Sprintf("Incorrect. %s is in %s%s.", fact.Subject, fact.Category, s.opts.CategorySuffix))
}

func (s *Session) report() error {
	if _, err := fmt.Fprintln(s.opts.Out); err != nil {
		return err
	}
	if err := s.print(s.ledger.Report().String()); err != nil {
		return err
	}
	return s.print(s.score.Summary())
}

func (s *Session) print(text string) error {
	_, err := fmt.Fprintln(s.opts.Out, PrefixLines(text))
	return err
}

// Score returns the session's score keeper.
func (s *Session) Score() *score.Keeper {
	return &s.score
}

// Ledger returns the session's review ledger.
func (s *Session) Ledger() *review.Ledger {
	return s.ledger
}

// PrefixLines prepends OutputPrefix to every line of text.
func PrefixLines(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = OutputPrefix + line
	}
	return strings.Join(lines, "\n")
}

func isStop(err error) bool {
	return errors.Is(err, lineedit.ErrInterrupted) ||
		errors.Is(err, io.EOF) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded)
}
