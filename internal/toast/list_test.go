package toast

import (
	"fmt"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// expire simulates the autohide timer firing for the live item with the
// given id, the way tea.Tick would deliver it.
func expire(t *testing.T, l *List, id string) {
	t.Helper()
	for _, it := range l.items {
		if it.n.ID == id {
			l.Update(dismissMsg{id: id, seq: it.seq})
			return
		}
	}
	t.Fatalf("no live item with id %q", id)
}

func TestNewList(t *testing.T) {
	l := NewList()
	assert.Equal(t, 0, l.Len())
	assert.Empty(t, l.View())
}

func TestList_Push(t *testing.T) {
	l := NewList()

	cmd := l.Push(New("hello"))
	require.NotNil(t, cmd)
	assert.Equal(t, 1, l.Len())

	ns := l.Notifications()
	require.Len(t, ns, 1)
	assert.Equal(t, "hello", ns[0].Content)
	assert.NotEmpty(t, ns[0].ID)
}

func TestList_PushAssignsIDFromGenerator(t *testing.T) {
	var next int
	l := NewList(WithIDGenerator(func() string {
		next++
		return fmt.Sprintf("gen-%d", next)
	}))

	// A literal value without an id gets one from the injected generator.
	l.Push(Notification{Content: "first"})
	l.Push(Notification{Content: "second"})

	ns := l.Notifications()
	require.Len(t, ns, 2)
	assert.Equal(t, "gen-1", ns[0].ID)
	assert.Equal(t, "gen-2", ns[1].ID)
}

func TestList_DedupReplace(t *testing.T) {
	l := NewList()

	l.Push(New("first").WithID("job"))
	firstSeq := l.items[0].seq

	l.Push(New("third distinct"))
	l.Push(New("second").WithID("job"))

	// Exactly one live item with the id, positioned as the most recent.
	require.Equal(t, 2, l.Len())
	ns := l.Notifications()
	assert.Equal(t, "job", ns[1].ID)
	assert.Equal(t, "second", ns[1].Content)

	// The replaced item's timer fires with its old generation: no effect.
	l.Update(dismissMsg{id: "job", seq: firstSeq})
	require.Equal(t, 2, l.Len())
	assert.Equal(t, "second", l.Notifications()[1].Content)
}

func TestList_BoundedWindow(t *testing.T) {
	l := NewList()

	for i := 0; i < 15; i++ {
		l.Push(New(fmt.Sprintf("item %02d", i)).
			WithID(fmt.Sprintf("id-%02d", i)).
			WithAutohide(false))
	}

	// All 15 stay in the backing sequence.
	assert.Equal(t, 15, l.Len())

	// The render window holds exactly the last 10, in recency order.
	win := l.Window()
	require.Len(t, win, 10)
	for i, n := range win {
		assert.Equal(t, fmt.Sprintf("id-%02d", i+5), n.ID)
	}

	view := l.View()
	assert.NotContains(t, view, "item 04")
	assert.Contains(t, view, "item 05")
	assert.Contains(t, view, "item 14")
}

func TestList_Autohide(t *testing.T) {
	l := NewList()

	cmd := l.Push(New("transient").WithID("gone-soon"))
	require.NotNil(t, cmd, "autohide push must arm a timer")
	assert.Equal(t, 1, l.Len())

	expire(t, l, "gone-soon")
	assert.Equal(t, 0, l.Len())
}

func TestList_AutohideStaleFireIsNoop(t *testing.T) {
	l := NewList()

	l.Push(New("transient").WithID("x"))
	seq := l.items[0].seq
	l.Dismiss("x")
	require.Equal(t, 0, l.Len())

	// The timer fires after the item is already gone.
	assert.NotPanics(t, func() {
		l.Update(dismissMsg{id: "x", seq: seq})
	})
	assert.Equal(t, 0, l.Len())
}

func TestList_ManualDismiss(t *testing.T) {
	l := NewList()

	l.Push(New("sticky").WithID("keep").WithAutohide(false))
	l.Push(New("other").WithID("other").WithAutohide(false))

	// Sticky toasts render the close affordance.
	assert.Contains(t, l.View(), "✕")

	l.Dismiss("keep")
	require.Equal(t, 1, l.Len())
	assert.Equal(t, "other", l.Notifications()[0].ID)

	// Dismissing again is idempotent.
	l.Dismiss("keep")
	assert.Equal(t, 1, l.Len())
}

func TestList_AutohideToastHasNoCloseAffordance(t *testing.T) {
	l := NewList()
	l.Push(New("transient"))
	assert.NotContains(t, l.View(), "✕")
}

func TestList_ClickAndDismiss(t *testing.T) {
	l := NewList()

	var calls int
	l.Push(New("clickable").WithID("c").WithOnClick(func() tea.Cmd {
		calls++
		return func() tea.Msg { return "clicked" }
	}))
	l.Push(New("bystander").WithID("b").WithAutohide(false))

	cmd := l.Click("c")
	require.NotNil(t, cmd)
	assert.Equal(t, "clicked", cmd())

	// Removes exactly the clicked toast, callback ran exactly once.
	assert.Equal(t, 1, calls)
	require.Equal(t, 1, l.Len())
	assert.Equal(t, "b", l.Notifications()[0].ID)
}

func TestList_ClickWithoutCallback(t *testing.T) {
	l := NewList()
	l.Push(New("plain").WithID("p"))

	// No click region without a callback: nothing happens.
	assert.Nil(t, l.Click("p"))
	assert.Equal(t, 1, l.Len())
}

func TestList_Clear(t *testing.T) {
	l := NewList()

	seqs := make(map[string]uint64)
	for i := 0; i < 5; i++ {
		id := fmt.Sprintf("n-%d", i)
		l.Push(New(id).WithID(id).WithAutohide(i%2 == 0))
		seqs[id] = l.items[len(l.items)-1].seq
	}
	require.Equal(t, 5, l.Len())

	l.Clear()
	assert.Equal(t, 0, l.Len())
	assert.Empty(t, l.View())

	// Pre-clear timers expiring later have no observable effect.
	for id, seq := range seqs {
		assert.NotPanics(t, func() {
			l.Update(dismissMsg{id: id, seq: seq})
		})
	}
	assert.Equal(t, 0, l.Len())

	// Clearing an empty list is a no-op.
	l.Clear()
	assert.Equal(t, 0, l.Len())
}

func TestList_ReplacedItemGetsFreshMount(t *testing.T) {
	l := NewList()

	l.Push(New("v1").WithID("again"))
	first := l.items[0]

	l.Push(New("v2").WithID("again"))
	second := l.items[0]

	// Replace constructs a brand-new handle; the old one is discarded.
	assert.NotEqual(t, first.seq, second.seq)
	assert.Equal(t, "v2", second.n.Content)
}

func TestList_Overlay(t *testing.T) {
	now := time.Now()
	l := NewList(WithClock(func() time.Time { return now }), WithWidth(20), WithMargins(1, 1))
	l.Update(tea.WindowSizeMsg{Width: 60, Height: 20})

	l.Push(New("overlaid toast"))
	now = now.Add(time.Second) // entry animation has rested

	base := strings.TrimRight(strings.Repeat(strings.Repeat(".", 60)+"\n", 20), "\n")
	out := l.Overlay(base)

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 20)
	// Top margin row untouched.
	assert.Equal(t, strings.Repeat(".", 60), lines[0])
	// Card content appears within the overlaid rows.
	assert.Contains(t, out, "overlaid toast")
}

func TestList_OverlayEmpty(t *testing.T) {
	l := NewList()
	base := "just the app"
	assert.Equal(t, base, l.Overlay(base))
}

func TestList_FrameMessagesStopWhenRested(t *testing.T) {
	base := time.Now()
	now := base
	l := NewList(WithClock(func() time.Time { return now }))

	cmd := l.Push(New("animated"))
	require.NotNil(t, cmd)

	// Mid-animation frames request another frame.
	l.framePending = false
	next := l.Update(frameMsg{at: base.Add(slideDuration / 2)})
	assert.NotNil(t, next)

	// Once the animation has rested, frames stop.
	l.framePending = false
	done := l.Update(frameMsg{at: base.Add(slideDuration * 2)})
	assert.Nil(t, done)
}

func TestItem_SlideOffset(t *testing.T) {
	base := time.Now()
	it := &item{n: New("x"), mounted: base}

	assert.Equal(t, slideDistance, it.slideOffset(base))
	assert.Equal(t, 0, it.slideOffset(base.Add(slideDuration)))

	// Monotonic decrease toward rest.
	prev := slideDistance
	for _, frac := range []float64{0.25, 0.5, 0.75, 1} {
		at := base.Add(time.Duration(float64(slideDuration) * frac))
		off := it.slideOffset(at)
		assert.LessOrEqual(t, off, prev)
		prev = off
	}
}
