package review

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordMissDeduplicates(t *testing.T) {
	l := NewLedger()
	l.RecordMiss("Alpha", "X")
	l.RecordMiss("Beta", "X")
	l.RecordMiss("Alpha", "X")

	report := l.Report()
	require.Len(t, report.Sections, 1)
	assert.Equal(t, "X", report.Sections[0].Category)
	assert.Equal(t, []string{"Alpha", "Beta"}, report.Sections[0].Subjects)
	assert.Equal(t, 2, l.Len())
}

func TestReportSortsCategoriesAndSubjects(t *testing.T) {
	l := NewLedger()
	l.RecordMiss("Zeta", "Sussex")
	l.RecordMiss("Andover", "Sussex")
	l.RecordMiss("Ventnor City", "Atlantic")
	l.RecordMiss("Absecon", "Atlantic")

	report := l.Report()
	require.Len(t, report.Sections, 2)
	assert.Equal(t, Section{Category: "Atlantic", Subjects: []string{"Absecon", "Ventnor City"}}, report.Sections[0])
	assert.Equal(t, Section{Category: "Sussex", Subjects: []string{"Andover", "Zeta"}}, report.Sections[1])
}

func TestEmptyReport(t *testing.T) {
	report := NewLedger().Report()
	assert.True(t, report.Empty())
	assert.Equal(t, "No incorrect answers to remember for next time.", report.String())

	var zero Ledger
	assert.True(t, zero.Report().Empty())
	assert.Equal(t, 0, zero.Len())
}

func TestZeroLedgerRecords(t *testing.T) {
	var l Ledger
	l.RecordMiss("Alpha", "X")
	assert.Equal(t, 1, l.Len())
}

func TestReportString(t *testing.T) {
	l := NewLedger()
	l.RecordMiss("Hoboken", "Hudson")
	l.RecordMiss("Bayonne", "Hudson")
	l.RecordMiss("Cape May Point", "Cape May")

	want := "Remember these for next time:\n" +
		"  Cape May:\n" +
		"    - Cape May Point\n" +
		"  Hudson:\n" +
		"    - Bayonne\n" +
		"    - Hoboken"
	assert.Equal(t, want, l.Report().String())
}
