// Package style holds the colors and icons shared by log and command output.
package style

import "github.com/charmbracelet/lipgloss"

// Colors.
var (
	Slate  = lipgloss.Color("#667085")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
)

// Success renders msg as a green check line.
func Success(msg string) string {
	return lipgloss.NewStyle().Foreground(Green).Render(Check + " " + msg)
}
