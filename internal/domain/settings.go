package domain

// App startup states
const (
	AppStateLoading = "loading"
	AppStateContent = "content"
	AppStateMain    = "main"
)

// Theme options
const (
	ThemeSystem = "system"
	ThemeLight  = "light"
	ThemeDark   = "dark"
)

// ValidTheme reports whether the value is a known theme.
func ValidTheme(theme string) bool {
	switch theme {
	case ThemeSystem, ThemeLight, ThemeDark:
		return true
	}
	return false
}
