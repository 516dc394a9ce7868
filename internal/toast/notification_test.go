package toast

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	n := New("disk is almost full")

	assert.NotEmpty(t, n.ID)
	assert.Equal(t, TypeInfo, n.Type)
	assert.Equal(t, "disk is almost full", n.Content)
	assert.Empty(t, n.Title)
	assert.Empty(t, n.Icon)
	assert.True(t, n.Autohide)
	assert.Nil(t, n.OnClick)
}

func TestNew_UniqueIDs(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := New("x").ID
		require.False(t, seen[id], "duplicate id %q", id)
		seen[id] = true
	}
}

func TestSeverityConstructors(t *testing.T) {
	assert.Equal(t, TypeInfo, Info("a").Type)
	assert.Equal(t, TypeSuccess, Success("b").Type)
	assert.Equal(t, TypeWarning, Warning("c").Type)
	assert.Equal(t, TypeError, Error("d").Type)
}

func TestBuilderChain(t *testing.T) {
	clicked := func() tea.Cmd { return nil }

	n := New("body").
		WithID("stable").
		WithTitle("Heading").
		WithIcon("bell").
		WithType(TypeError).
		WithAutohide(false).
		WithOnClick(clicked)

	assert.Equal(t, "stable", n.ID)
	assert.Equal(t, "Heading", n.Title)
	assert.Equal(t, "bell", n.Icon)
	assert.Equal(t, TypeError, n.Type)
	assert.False(t, n.Autohide)
	assert.NotNil(t, n.OnClick)
}

func TestBuilderChainDoesNotMutateReceiver(t *testing.T) {
	base := New("body")
	modified := base.WithID("other").WithType(TypeWarning)

	assert.NotEqual(t, base.ID, modified.ID)
	assert.Equal(t, TypeInfo, base.Type)
}

func TestTypeString(t *testing.T) {
	tests := []struct {
		typ  Type
		want string
	}{
		{TypeInfo, "info"},
		{TypeSuccess, "success"},
		{TypeWarning, "warning"},
		{TypeError, "error"},
		{Type(99), "info"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.typ.String())
	}
}

func TestNewULIDGenerator(t *testing.T) {
	gen := NewULIDGenerator()
	a, b := gen(), gen()
	assert.Len(t, a, 26)
	assert.NotEqual(t, a, b)
}
