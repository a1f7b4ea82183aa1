package ui

import (
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines a color scheme for UI output.
// Each field contains an ANSI escape code for the corresponding color category.
type Theme struct {
	// Name is the identifier of the theme.
	Name string
	// Primary is the main accent color for important elements.
	Primary string
	// Secondary is used for less prominent elements.
	Secondary string
	// Success indicates indicators that did not fire.
	Success string
	// Warning is used for fired indicators.
	Warning string
	// Error indicates failures or data-quality problems.
	Error string
	// Bold is the escape code for bold text.
	Bold string
	// Reset clears all formatting.
	Reset string
}

// Tone selects the badge color for an outcome.
type Tone int

const (
	ToneSuccess Tone = iota
	ToneWarning
	ToneError
	ToneMuted
)

var (
	// DarkTheme is optimized for dark terminal backgrounds.
	DarkTheme = Theme{
		Name:      "dark",
		Primary:   "\033[38;5;39m",  // Bright blue
		Secondary: "\033[38;5;245m", // Grey
		Success:   "\033[38;5;82m",  // Bright green
		Warning:   "\033[38;5;220m", // Yellow
		Error:     "\033[38;5;196m", // Red
		Bold:      "\033[1m",
		Reset:     "\033[0m",
	}

	// NoColorTheme disables all color output.
	// Used when NO_COLOR is set or --no-color flag is provided.
	NoColorTheme = Theme{Name: "none"}

	currentTheme = DarkTheme
	themeMutex   sync.RWMutex
)

// badgeColors maps tones to lipgloss colors for the dark theme.
var badgeColors = map[Tone]lipgloss.Color{
	ToneSuccess: lipgloss.Color("#9ece6a"),
	ToneWarning: lipgloss.Color("#FFB347"),
	ToneError:   lipgloss.Color("#FF4444"),
	ToneMuted:   lipgloss.Color("#666666"),
}

// GetCurrentTheme returns the currently active theme in a thread-safe manner.
func GetCurrentTheme() Theme {
	themeMutex.RLock()
	defer themeMutex.RUnlock()
	return currentTheme
}

// SetCurrentTheme sets the currently active theme in a thread-safe manner.
// This is primarily used for testing purposes to restore state.
func SetCurrentTheme(t Theme) {
	themeMutex.Lock()
	defer themeMutex.Unlock()
	currentTheme = t
}

// InitTheme initializes the theme based on the noColor flag and environment.
// It respects the NO_COLOR environment variable (https://no-color.org/).
// If noColor is true or NO_COLOR is set, colors are disabled.
func InitTheme(noColor bool) {
	themeMutex.Lock()
	defer themeMutex.Unlock()

	if noColor {
		currentTheme = NoColorTheme
		return
	}
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		currentTheme = NoColorTheme
		return
	}
	currentTheme = DarkTheme
}

// Badge renders text as a bold, colored label. With colors disabled it
// returns text in square brackets.
func Badge(text string, tone Tone) string {
	if GetCurrentTheme().Name == NoColorTheme.Name {
		return "[" + text + "]"
	}
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(badgeColors[tone]).
		Padding(0, 1).
		Render(text)
}

// ColorPrimary returns the primary accent color escape code.
func ColorPrimary() string { return GetCurrentTheme().Primary }

// ColorSecondary returns the secondary color escape code.
func ColorSecondary() string { return GetCurrentTheme().Secondary }

// ColorRed returns the error color escape code.
func ColorRed() string { return GetCurrentTheme().Error }

// ColorBold returns the bold escape code.
func ColorBold() string { return GetCurrentTheme().Bold }

// ColorReset returns the reset escape code.
func ColorReset() string { return GetCurrentTheme().Reset }
