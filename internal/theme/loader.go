package theme

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// fileTheme is the on-disk YAML representation of a theme. All fields are
// optional; missing colors keep the default theme's values.
type fileTheme struct {
	Name       string `yaml:"name"`
	Border     string `yaml:"border"`
	Background string `yaml:"background"`
	Title      string `yaml:"title"`
	Body       string `yaml:"body"`
	Muted      string `yaml:"muted"`

	Accents map[string]string `yaml:"accents"`
}

// Load reads a theme from a YAML file. Fields not set in the file fall back
// to the default theme.
func Load(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme file: %w", err)
	}

	var ft fileTheme
	if err := yaml.Unmarshal(data, &ft); err != nil {
		return nil, fmt.Errorf("failed to parse theme file: %w", err)
	}

	t := Default()
	if ft.Name != "" {
		t.Name = ft.Name
	} else {
		t.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	setColor(&t.Border, ft.Border)
	setColor(&t.Background, ft.Background)
	setColor(&t.Title, ft.Title)
	setColor(&t.Body, ft.Body)
	setColor(&t.Muted, ft.Muted)

	for role, value := range ft.Accents {
		if value != "" {
			t.SetAccent(role, lipgloss.Color(value))
		}
	}

	return t, nil
}

func setColor(dst *lipgloss.Color, value string) {
	if value != "" {
		*dst = lipgloss.Color(value)
	}
}
