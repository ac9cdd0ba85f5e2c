// Package score tracks per-session answer counts.
package score

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// Keeper accumulates correct and incorrect answers. Correct never exceeds Total.
type Keeper struct {
	total   int
	correct int
}

// RecordCorrect counts a correct answer.
func (k *Keeper) RecordCorrect() {
	k.total++
	k.correct++
}

// RecordIncorrect counts an incorrect answer.
func (k *Keeper) RecordIncorrect() {
	k.total++
}

// Total returns the number of answers recorded.
func (k *Keeper) Total() int {
	return k.total
}

// Correct returns the number of correct answers recorded.
func (k *Keeper) Correct() int {
	return k.correct
}

// Percent returns the share of correct answers in the 0-100 range.
// An empty session scores 100.
func (k *Keeper) Percent() float64 {
	if k.total == 0 {
		return 100
	}
	return float64(k.correct) / float64(k.total) * 100
}

// Summary formats the end-of-session score line.
func (k *Keeper) Summary() string {
	return fmt.Sprintf("You got %s municipalities correct out of %s. %.2f%%",
		humanize.Comma(int64(k.correct)),
		humanize.Comma(int64(k.total)),
		k.Percent(),
	)
}
