package ui

import (
	"net/http"

	"flightroutes/explorer/internal/middleware"
	"flightroutes/explorer/internal/services"
)

// UIHandler serves the dashboard pages.
type UIHandler struct {
	Routes   *services.RoutesService
	RouteMap *services.RouteMapService
}

// NewUIHandler creates a new UI handler
func NewUIHandler(routes *services.RoutesService, routeMap *services.RouteMapService) *UIHandler {
	return &UIHandler{
		Routes:   routes,
		RouteMap: routeMap,
	}
}

// DashboardHandler renders the origin selector, map and summary panel.
func (h *UIHandler) DashboardHandler(w http.ResponseWriter, r *http.Request) {
	origins := h.Routes.Origins()

	selected := r.URL.Query().Get("origin")
	if selected == "" && len(origins) > 0 {
		selected = origins[0].Code
	}

	data := map[string]interface{}{
		"Title":    "Flight Routes Explorer",
		"Theme":    middleware.ThemeFromContext(r.Context()),
		"Origins":  origins,
		"Selected": selected,
	}
	RenderTemplate(w, "dashboard.html", data)
}

// SummaryHandler renders the five summary tables and the map legend for one
// origin. An origin without flights renders empty tables.
func (h *UIHandler) SummaryHandler(w http.ResponseWriter, r *http.Request) {
	origin := r.URL.Query().Get("origin")
	if origin == "" {
		http.Error(w, "origin is required", http.StatusBadRequest)
		return
	}

	summary, err := h.Routes.Summary(origin)
	if err != nil {
		http.Error(w, "Failed to compute summary", http.StatusInternalServerError)
		return
	}

	rm, err := h.RouteMap.BuildRouteMap(r.Context(), origin)
	if err != nil {
		http.Error(w, "Failed to build route map", http.StatusInternalServerError)
		return
	}

	data := map[string]interface{}{
		"Origin":   origin,
		"Summary":  summary,
		"Legend":   rm.Legend,
		"Placed":   len(rm.Placed()),
		"Unmapped": len(rm.Routes) - len(rm.Placed()),
	}
	RenderPartial(w, "partials/summary.html", data)
}

// SetThemeHandler handles theme changes via POST request
func (h *UIHandler) SetThemeHandler(w http.ResponseWriter, r *http.Request) {
	theme := r.FormValue("theme")
	if !middleware.ValidTheme(theme) {
		theme = middleware.DefaultTheme
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.ThemeCookie,
		Value:    theme,
		Path:     "/",
		MaxAge:   365 * 24 * 60 * 60,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"success": true, "theme": "` + theme + `"}`))
}
