package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/pthm/prosecheck/internal/analyzer"
)

// Styles contains all lipgloss styles for terminal output
type Styles struct {
	enabled bool

	// Score styles, picked by ScoreStyle
	ScoreHigh lipgloss.Style
	ScoreMid  lipgloss.Style
	ScoreLow  lipgloss.Style

	Warning lipgloss.Style
	Success lipgloss.Style

	// Structural styles
	Header    lipgloss.Style
	Subheader lipgloss.Style
	Badge     lipgloss.Style
	Card      lipgloss.Style
	Muted     lipgloss.Style
	Separator lipgloss.Style

	// Text panes
	Original    lipgloss.Style
	Revised     lipgloss.Style
	Placeholder lipgloss.Style
	Message     lipgloss.Style

	// Icons (degraded to ASCII when not interactive)
	IconWarning string
	IconSuccess string
	IconBullet  string
	IconArrow   string

	glyphs map[analyzer.Glyph]string
}

// NewStyles creates a new Styles instance
// When enabled is false, styles return text unchanged (for non-TTY output)
func NewStyles(enabled bool) *Styles {
	s := &Styles{enabled: enabled}

	if enabled {
		s.ScoreHigh = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10")) // Green
		s.ScoreMid = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))  // Yellow
		s.ScoreLow = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))   // Red

		s.Warning = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
		s.Success = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))

		s.Header = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
		s.Subheader = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
		s.Badge = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("173")).Padding(0, 1)
		s.Card = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("8")).Padding(0, 1).Align(lipgloss.Center)
		s.Muted = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
		s.Separator = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

		s.Original = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Strikethrough(true)
		s.Revised = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
		s.Placeholder = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("8"))
		s.Message = lipgloss.NewStyle().Italic(true)

		s.IconWarning = "⚠"
		s.IconSuccess = "✓"
		s.IconBullet = "•"
		s.IconArrow = "→"

		s.glyphs = map[analyzer.Glyph]string{
			analyzer.GlyphStar:     "\U0001F31F",
			analyzer.GlyphThumbsUp: "\U0001F44D",
			analyzer.GlyphMuscle:   "\U0001F4AA",
			analyzer.GlyphSeedling: "\U0001F331",
		}
	} else {
		// No-op styles for non-TTY (plain text output)
		plain := lipgloss.NewStyle()
		s.ScoreHigh, s.ScoreMid, s.ScoreLow = plain, plain, plain
		s.Warning, s.Success = plain, plain
		s.Header, s.Subheader, s.Badge, s.Muted, s.Separator = plain, plain, plain, plain, plain
		s.Card = plain
		s.Original, s.Revised, s.Placeholder, s.Message = plain, plain, plain, plain

		// ASCII fallback icons
		s.IconWarning = "WARN:"
		s.IconSuccess = "OK:"
		s.IconBullet = "-"
		s.IconArrow = "->"

		s.glyphs = map[analyzer.Glyph]string{
			analyzer.GlyphStar:     "[*]",
			analyzer.GlyphThumbsUp: "[+]",
			analyzer.GlyphMuscle:   "[!]",
			analyzer.GlyphSeedling: "[~]",
		}
	}

	return s
}

// Enabled returns whether styling is enabled
func (s *Styles) Enabled() bool {
	return s.enabled
}

// Glyph renders a message glyph
func (s *Styles) Glyph(g analyzer.Glyph) string {
	if icon, ok := s.glyphs[g]; ok {
		return icon
	}
	return ""
}

// ScoreStyle colors a 0-10 score
func (s *Styles) ScoreStyle(score int) lipgloss.Style {
	switch {
	case score >= 8:
		return s.ScoreHigh
	case score >= 6:
		return s.ScoreMid
	default:
		return s.ScoreLow
	}
}
