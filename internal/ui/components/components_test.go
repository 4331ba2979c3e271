package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppliersRunInOrder(t *testing.T) {
	var calls []string
	text := NewText("x")
	text.AddAppliers(
		func(s lipgloss.Style, _ Theme) lipgloss.Style { calls = append(calls, "first"); return s },
		func(s lipgloss.Style, _ Theme) lipgloss.Style { calls = append(calls, "second"); return s },
	)

	_ = text.View()

	assert.Equal(t, []string{"first", "second"}, calls)
}

func TestAddAppliersDoesNotShareBackingArray(t *testing.T) {
	base := NewBaseComponent()
	base.SetAppliers(Bold())
	a := base
	b := base

	a.AddAppliers(Foreground(PaletteDanger))
	b.AddAppliers(Foreground(PaletteSuccess))

	require.Len(t, a.appliers, 2)
	require.Len(t, b.appliers, 2)
}

func TestCustomSpacingUsesMarginArgumentOrder(t *testing.T) {
	s := CustomSpacing(1, 2, 3, 4)

	assert.Equal(t, Spacing{Left: 1, Top: 2, Right: 3, Bottom: 4}, s)
	assert.Equal(t, 4, s.Horizontal())
	assert.Equal(t, 6, s.Vertical())
	assert.True(t, Spacing{}.IsZero())
}

func TestAlignmentPositions(t *testing.T) {
	assert.Equal(t, lipgloss.Center, AlignCenter.Horizontal())
	assert.Equal(t, lipgloss.Center, AlignCenter.Vertical())
	assert.Equal(t, lipgloss.Right, AlignRight.Horizontal())
	assert.Equal(t, lipgloss.Bottom, AlignBottom.Vertical())
	assert.Equal(t, lipgloss.Left, AlignNone.Horizontal())
	assert.False(t, AlignTop.HasHorizontal())
	assert.True(t, AlignTop.HasVertical())
}

func TestContainerDrawsTitleIntoBorder(t *testing.T) {
	box := NewContainer(NewText("body")).WithBorder(BorderVariantNormal).WithTitle("Group")
	box.SetSize(20, 0)

	out := box.View()
	lines := strings.Split(out, "\n")

	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "Group")
	assert.Equal(t, 20, lipgloss.Width(lines[0]))
	assert.Contains(t, lines[1], "body")
}

func TestContainerSizesResizableChild(t *testing.T) {
	divider := HorizontalDivider()
	box := NewContainer(divider).WithBorder(BorderVariantRounded).WithPadding(UniformSpacing(1))
	box.SetSize(30, 0)

	_ = box.View()

	assert.Equal(t, 26, divider.Width())
}

func TestDividerDefaultsToFortyCells(t *testing.T) {
	assert.Equal(t, 40, lipgloss.Width(HorizontalDivider().View()))
}

func TestAlertRendersIconMessageAndFooter(t *testing.T) {
	out := NewAlert("disk full").WithVariant(AlertVariantError).WithTitle("Error").WithFooter("[ Ok ]").View()

	lines := strings.Split(out, "\n")
	assert.Contains(t, lines[0], "Error")
	assert.Contains(t, out, "✖ disk full")
	assert.Contains(t, out, "[ Ok ]")
}

func TestAlertWithoutIcon(t *testing.T) {
	out := NewAlert("plain").WithIcon("").View()

	assert.Contains(t, out, "plain")
	assert.NotContains(t, out, "ℹ")
}

func TestButtonRow(t *testing.T) {
	out := ButtonRow(DefaultContext(), 1, "Yes", "Cancel")

	assert.Contains(t, out, "[ Yes ]")
	assert.Contains(t, out, "[ Cancel ]")
	assert.True(t, NewButton("x").WithActive(true).IsActive())
}
