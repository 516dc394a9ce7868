package toast

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jmylchreest/toastui/internal/icons"
	"github.com/jmylchreest/toastui/internal/overlay"
	"github.com/jmylchreest/toastui/internal/theme"
)

// Entry animation: cards rest after sliding in from the trailing edge.
const (
	slideDistance = 120
	slideDuration = 100 * time.Millisecond
)

// item is the live handle for one pushed notification. Items are owned
// exclusively by their List; an item never mutates the sequence itself, it is
// removed by the List when its dismiss message arrives. The seq generation is
// captured by the autohide timer so a fire after removal or replace is a
// no-op.
type item struct {
	n       Notification
	seq     uint64
	mounted time.Time // timer armed and animation started at push, never at render
}

// slideOffset returns how many cells the card is still offset toward the
// trailing edge at now. Zero once the entry animation has finished.
func (it *item) slideOffset(now time.Time) int {
	elapsed := now.Sub(it.mounted)
	if elapsed >= slideDuration {
		return 0
	}
	if elapsed < 0 {
		return slideDistance
	}
	f := float64(elapsed) / float64(slideDuration)
	f = f * (2 - f) // ease-out quadratic
	off := int(float64(slideDistance)*(1-f) + 0.5)
	if off < 0 {
		off = 0
	}
	return off
}

func (it *item) animating(now time.Time) bool {
	return now.Sub(it.mounted) < slideDuration
}

// view renders the card at the given total width.
func (it *item) view(th *theme.Theme, width int) string {
	role := it.n.Type.String()
	accent := th.Accent(role)

	glyph := icons.ForSeverity(role)
	if it.n.Icon != "" {
		glyph = icons.Lookup(it.n.Icon)
	}

	iconStyle := lipgloss.NewStyle().Foreground(accent)
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(th.Title)
	bodyStyle := lipgloss.NewStyle().Foreground(th.Body)
	closeStyle := lipgloss.NewStyle().Foreground(th.Muted)

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(th.Border).
		Padding(0, 1)

	// Border and padding frame the inner text area.
	inner := width - cardStyle.GetHorizontalFrameSize()
	if inner < 4 {
		inner = 4
	}

	iconCol := iconStyle.Render(glyph) + " "
	textWidth := inner - lipgloss.Width(iconCol)

	content := bodyStyle.Width(textWidth).Render(it.n.Content)
	var body string
	if it.n.Title != "" {
		title := ansi.Truncate(it.n.Title, textWidth, "…")
		body = titleStyle.Render(title) + "\n" + content
	} else {
		body = content
	}

	text := lipgloss.JoinHorizontal(lipgloss.Top, iconCol, body)

	// Close affordance in the top-right corner, only for sticky toasts.
	if !it.n.Autohide {
		text = padLines(text, inner)
		text = overlay.Composite(text, closeStyle.Render(icons.Lookup("close")), inner-1, 0)
	}

	// Style width excludes the border, so the rendered card totals width.
	return cardStyle.Width(width - cardStyle.GetBorderLeftSize() - cardStyle.GetBorderRightSize()).Render(text)
}

// padLines pads every line of a block to at least width cells.
func padLines(s string, width int) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		if pad := width - lipgloss.Width(l); pad > 0 {
			lines[i] = l + strings.Repeat(" ", pad)
		}
	}
	return strings.Join(lines, "\n")
}
