package middleware

import (
	"context"
	"net/http"
)

const (
	ThemeCookie  = "theme_preference"
	DefaultTheme = "light"
)

const themeKey contextKey = "theme"

var validThemes = map[string]bool{
	"light":         true,
	"dark":          true,
	"high-contrast": true,
}

// ValidTheme reports whether theme is one of the supported themes.
func ValidTheme(theme string) bool {
	return validThemes[theme]
}

// ThemeMiddleware injects the user's theme preference into the request context
func ThemeMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		theme := DefaultTheme
		if cookie, err := r.Cookie(ThemeCookie); err == nil && ValidTheme(cookie.Value) {
			theme = cookie.Value
		}

		ctx := context.WithValue(r.Context(), themeKey, theme)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ThemeFromContext returns the theme set by ThemeMiddleware.
func ThemeFromContext(ctx context.Context) string {
	if theme, ok := ctx.Value(themeKey).(string); ok {
		return theme
	}
	return DefaultTheme
}
