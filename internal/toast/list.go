package toast

import (
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jmylchreest/toastui/internal/overlay"
	"github.com/jmylchreest/toastui/internal/theme"
)

const (
	// DefaultAutohideDelay is how long an autohide toast stays visible.
	DefaultAutohideDelay = 5 * time.Second

	// maxVisible bounds the render window. Older items beyond the window
	// stay in the backing sequence but are not drawn.
	maxVisible = 10

	frameInterval = time.Second / 60
)

// dismissMsg is the dismiss signal an item sends up to its List. It carries
// the generation captured when the timer was armed, so a fire after the item
// was removed or replaced matches nothing and is a no-op.
type dismissMsg struct {
	id  string
	seq uint64
}

// frameMsg drives the entry animation.
type frameMsg struct {
	at time.Time
}

// Option configures a List.
type Option func(*List)

// WithTheme sets the render theme.
func WithTheme(t *theme.Theme) Option {
	return func(l *List) { l.theme = t }
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(l *List) { l.logger = logger }
}

// WithDelay overrides the autohide delay.
func WithDelay(d time.Duration) Option {
	return func(l *List) {
		if d > 0 {
			l.delay = d
		}
	}
}

// WithWidth sets the card width in cells.
func WithWidth(w int) Option {
	return func(l *List) {
		if w > 0 {
			l.width = w
		}
	}
}

// WithMargins sets the insets from the right and top edges.
func WithMargins(x, y int) Option {
	return func(l *List) { l.marginX, l.marginY = x, y }
}

// WithGap sets the vertical gap between cards.
func WithGap(g int) Option {
	return func(l *List) {
		if g >= 0 {
			l.gap = g
		}
	}
}

// WithIDGenerator sets the id strategy used for notifications pushed without
// an id. Tests supply deterministic generators here.
func WithIDGenerator(gen IDGenerator) Option {
	return func(l *List) {
		if gen != nil {
			l.gen = gen
		}
	}
}

// WithClock sets the time source used for animation. Tests freeze it.
func WithClock(now func() time.Time) Option {
	return func(l *List) {
		if now != nil {
			l.now = now
		}
	}
}

// List owns an ordered collection of live toasts, oldest first. All mutation
// happens on the program's update loop through Push, Clear, Dismiss, Click,
// and the dismiss messages handled by Update, which keeps the one-item-per-id
// invariant consistent without locking.
type List struct {
	theme  *theme.Theme
	logger *slog.Logger
	gen    IDGenerator
	now    func() time.Time

	delay   time.Duration
	width   int
	marginX int
	marginY int
	gap     int

	items []*item
	seq   uint64

	surfaceW int
	surfaceH int

	framePending bool
}

// NewList creates an empty toast list.
func NewList(opts ...Option) *List {
	l := &List{
		theme:   theme.Default(),
		logger:  slog.Default(),
		gen:     NewULIDGenerator(),
		now:     time.Now,
		delay:   DefaultAutohideDelay,
		width:   40,
		marginX: 1,
		marginY: 1,
		gap:     1,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// SetTheme swaps the render theme, e.g. after a hot reload.
func (l *List) SetTheme(t *theme.Theme) {
	if t != nil {
		l.theme = t
	}
}

// Push inserts a notification, replacing any live toast with the same id.
// The replacement keeps the new item's position: it is appended at the end as
// the most recent. The returned command arms the autohide timer (at most once
// per item lifetime) and drives the entry animation; it must be handed to the
// program loop.
func (l *List) Push(n Notification) tea.Cmd {
	if n.ID == "" {
		n.ID = l.gen()
	}

	// Dedup by id. The removed item's pending timer keeps its old
	// generation and will no-op when it fires.
	l.removeByID(n.ID)

	l.seq++
	it := &item{n: n, seq: l.seq, mounted: l.now()}
	l.items = append(l.items, it)

	l.logger.Debug("pushed toast",
		"id", n.ID,
		"type", n.Type.String(),
		"autohide", n.Autohide,
		"live", len(l.items),
	)

	cmds := []tea.Cmd{l.frameCmd()}
	if n.Autohide {
		id, seq := n.ID, it.seq
		cmds = append(cmds, tea.Tick(l.delay, func(time.Time) tea.Msg {
			return dismissMsg{id: id, seq: seq}
		}))
	}
	return tea.Batch(cmds...)
}

// Clear drops all live toasts. Pending timers become stale and their fires
// are silent no-ops.
func (l *List) Clear() {
	if len(l.items) == 0 {
		return
	}
	l.logger.Debug("cleared toasts", "count", len(l.items))
	l.items = nil
}

// Dismiss removes the toast with the given id (the close affordance).
// Unknown ids are a no-op.
func (l *List) Dismiss(id string) {
	l.removeByID(id)
}

// Click activates the click region of the toast with the given id. If the
// toast has a click callback it is dismissed and the callback runs; the
// returned command carries the callback's follow-up. Toasts without a
// callback have no click region and are left untouched.
func (l *List) Click(id string) tea.Cmd {
	for i, it := range l.items {
		if it.n.ID != id {
			continue
		}
		if it.n.OnClick == nil {
			return nil
		}
		onClick := it.n.OnClick
		l.remove(i)
		return onClick()
	}
	return nil
}

// Update handles the list's own messages: timer expiries and animation
// frames. All other messages are ignored.
func (l *List) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		l.surfaceW = msg.Width
		l.surfaceH = msg.Height
		return nil

	case dismissMsg:
		// Match by id and generation at fire time, not position: the
		// sequence may have mutated since the timer was armed.
		for i, it := range l.items {
			if it.n.ID == msg.id && it.seq == msg.seq {
				l.logger.Debug("toast expired", "id", msg.id)
				l.remove(i)
				return nil
			}
		}
		return nil

	case frameMsg:
		l.framePending = false
		if l.animatingAt(msg.at) {
			return l.frameCmd()
		}
		return nil
	}
	return nil
}

// Len returns the number of live toasts, including those outside the render
// window.
func (l *List) Len() int {
	return len(l.items)
}

// Notifications returns a snapshot of the live toasts, oldest first.
func (l *List) Notifications() []Notification {
	out := make([]Notification, len(l.items))
	for i, it := range l.items {
		out[i] = it.n
	}
	return out
}

// Window returns the rendered window: the most recent maxVisible toasts in
// recency order, oldest of the window first.
func (l *List) Window() []Notification {
	vis := l.visible()
	out := make([]Notification, len(vis))
	for i, it := range vis {
		out[i] = it.n
	}
	return out
}

// View renders the toast stack as a standalone block, oldest first.
func (l *List) View() string {
	vis := l.visible()
	if len(vis) == 0 {
		return ""
	}

	blocks := make([]string, 0, len(vis)*2-1)
	for i, it := range vis {
		if i > 0 && l.gap > 0 {
			for g := 0; g < l.gap; g++ {
				blocks = append(blocks, "")
			}
		}
		blocks = append(blocks, it.view(l.theme, l.width))
	}
	return lipgloss.JoinVertical(lipgloss.Right, blocks...)
}

// Overlay composites the toast stack over the host view, anchored at a fixed
// inset from the top and right edges and clipped to the surface height.
// Cards still animating are drawn offset toward the trailing edge.
func (l *List) Overlay(base string) string {
	vis := l.visible()
	if len(vis) == 0 {
		return base
	}

	w := l.surfaceW
	if w <= 0 {
		w = lipgloss.Width(base)
	}

	now := l.now()
	y := l.marginY
	for _, it := range vis {
		card := it.view(l.theme, l.width)
		x := w - l.marginX - l.width + it.slideOffset(now)
		if x < 0 {
			x = 0
		}
		if x >= w {
			y += overlay.Height(card) + l.gap
			continue
		}
		card = overlay.ClipRight(card, w-x)
		base = overlay.Composite(base, card, x, y)
		y += overlay.Height(card) + l.gap
	}
	return base
}

// visible returns the trailing render window, oldest of the window first.
func (l *List) visible() []*item {
	if len(l.items) <= maxVisible {
		return l.items
	}
	return l.items[len(l.items)-maxVisible:]
}

func (l *List) remove(i int) {
	l.items = append(l.items[:i], l.items[i+1:]...)
}

func (l *List) removeByID(id string) bool {
	for i, it := range l.items {
		if it.n.ID == id {
			l.remove(i)
			return true
		}
	}
	return false
}

func (l *List) animatingAt(now time.Time) bool {
	for _, it := range l.items {
		if it.animating(now) {
			return true
		}
	}
	return false
}

// frameCmd schedules the next animation frame. At most one frame tick is in
// flight at a time.
func (l *List) frameCmd() tea.Cmd {
	if l.framePending {
		return nil
	}
	l.framePending = true
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg{at: t}
	})
}
