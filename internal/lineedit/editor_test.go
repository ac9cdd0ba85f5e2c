package lineedit

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/muniquiz/internal/completion"
)

func newTestModel(t *testing.T, cfg Config, vocabulary ...string) *lineModel {
	t.Helper()
	engine, err := completion.New(vocabulary)
	require.NoError(t, err)
	return newLineModel("Hoboken: ", engine, cfg)
}

func typeText(m *lineModel, text string) {
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
}

func pressTab(m *lineModel) {
	m.Update(tea.KeyMsg{Type: tea.KeyTab})
}

func TestTabCompletesUniqueMatch(t *testing.T) {
	m := newTestModel(t, DefaultConfig(), "Bergen", "Burlington", "Camden")
	typeText(m, "Be")
	pressTab(m)
	assert.Equal(t, "Bergen", m.input.Value())
	assert.Empty(t, m.listing)
}

func TestTabCompletesWholeBufferWithSpaces(t *testing.T) {
	m := newTestModel(t, DefaultConfig(), "Cape May", "Camden", "Cumberland")
	typeText(m, "Cap")
	pressTab(m)
	assert.Equal(t, "Cape May", m.input.Value())
}

func TestTabExtendsSharedPrefix(t *testing.T) {
	m := newTestModel(t, DefaultConfig(), "Hamilton Township", "Hamilton City")
	typeText(m, "Ha")
	pressTab(m)
	assert.Equal(t, "Hamilton ", m.input.Value())
}

func TestSecondTabListsAlternatives(t *testing.T) {
	m := newTestModel(t, DefaultConfig(), "Bergen", "Burlington", "Camden")
	typeText(m, "B")

	pressTab(m)
	assert.Equal(t, "B", m.input.Value())
	assert.Empty(t, m.listing, "first ambiguous tab only rings")

	pressTab(m)
	require.NotEmpty(t, m.listing)
	joined := strings.Join(m.listing, "\n")
	assert.Contains(t, joined, "Bergen")
	assert.Contains(t, joined, "Burlington")
	assert.NotContains(t, joined, "Camden")

	typeText(m, "u")
	assert.Empty(t, m.listing, "editing clears the listing")
}

func TestTabWithoutMatchKeepsBuffer(t *testing.T) {
	m := newTestModel(t, DefaultConfig(), "Bergen", "Camden")
	typeText(m, "Zz")
	pressTab(m)
	pressTab(m)
	assert.Equal(t, "Zz", m.input.Value())
	assert.Empty(t, m.listing)
}

func TestTabRespectsDelimiters(t *testing.T) {
	cfg := Config{Delimiters: " ", ListLimit: 10}
	m := newTestModel(t, cfg, "Bergen", "Camden")
	typeText(m, "near Ca")
	pressTab(m)
	assert.Equal(t, "near Camden", m.input.Value())
}

func TestListingIsTruncated(t *testing.T) {
	cfg := Config{Delimiters: DefaultDelimiters, ListLimit: 2}
	m := newTestModel(t, cfg, "Salem", "Somerset", "Sussex")
	typeText(m, "S")
	pressTab(m)
	pressTab(m)
	require.NotEmpty(t, m.listing)
	assert.Contains(t, m.listing[len(m.listing)-1], "... and 1 more")
}

func TestEnterSubmits(t *testing.T) {
	m := newTestModel(t, DefaultConfig(), "Hudson")
	typeText(m, "Hudson")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.True(t, m.done)
	assert.False(t, m.interrupted)
	assert.Equal(t, "Hoboken: Hudson\n", m.View())
}

func TestCtrlCInterrupts(t *testing.T) {
	m := newTestModel(t, DefaultConfig(), "Hudson")
	typeText(m, "Hud")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.True(t, m.interrupted)
}

func TestCtrlDInterruptsOnlyWhenEmpty(t *testing.T) {
	m := newTestModel(t, DefaultConfig(), "Hudson")
	typeText(m, "H")
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlD})
	assert.False(t, m.interrupted)

	m = newTestModel(t, DefaultConfig(), "Hudson")
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlD})
	assert.True(t, m.interrupted)
}
