package report

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme holds the lipgloss styles used to render a compliance report.
// It is passed explicitly instead of living in a shared color table.
type Theme struct {
	Header  lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Detail  lipgloss.Style
}

// DefaultTheme returns the standard terminal theme. Colors degrade
// automatically on non-TTY output.
func DefaultTheme() Theme {
	return Theme{
		Header:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13")),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		Error:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
		Detail:  lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	}
}

// Renderer formats reduced host statuses for the terminal. One renderer
// serves both reducers since they emit the same HostStatus shape.
type Renderer struct {
	theme Theme
}

// NewRenderer creates a renderer with the given theme.
func NewRenderer(theme Theme) *Renderer {
	return &Renderer{theme: theme}
}

// Render produces the human-readable report for one reduction pass.
func (r *Renderer) Render(title string, statuses []HostStatus) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(r.theme.Header.Render("=== 🛡️  " + title + " ==="))
	b.WriteString("\n\n")

	for _, hs := range statuses {
		switch hs.State {
		case StateUnreachable:
			b.WriteString(r.theme.Error.Render("❌ " + hs.Host + ": UNREACHABLE"))
			b.WriteString("\n")
		case StateFailed:
			b.WriteString(r.theme.Error.Render("❌ " + hs.Host + ": FAILED"))
			b.WriteString("\n")
		case StateCompliant:
			b.WriteString(r.theme.Success.Render("✅ " + hs.Host + ": OK (Compliant)"))
			b.WriteString("\n")
		case StateFixed:
			b.WriteString(r.theme.Success.Render("🔧 " + hs.Host + ": FIXED"))
			b.WriteString("\n")
			r.writeDetails(&b, r.theme.Detail, hs.Details)
			b.WriteString("\n")
		case StateDrifted:
			b.WriteString(r.theme.Error.Render("⚠️  " + hs.Host + ": DRIFT DETECTED"))
			b.WriteString("\n")
			r.writeDetails(&b, r.theme.Warning, hs.Details)
			b.WriteString("\n")
		}
	}

	return b.String()
}

// writeDetails writes detail lines indented by four spaces, preserving the
// indentation across embedded newlines.
func (r *Renderer) writeDetails(b *strings.Builder, style lipgloss.Style, details []string) {
	for _, d := range details {
		b.WriteString(style.Render(indent(d)))
		b.WriteString("\n")
	}
}

func indent(msg string) string {
	lines := strings.Split(msg, "\n")
	for i, l := range lines {
		lines[i] = "    " + l
	}
	return strings.Join(lines, "\n")
}
