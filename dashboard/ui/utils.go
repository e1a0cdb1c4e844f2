package ui

import (
	"embed"
	"html/template"
	"net/http"

	"flightroutes/explorer/internal/logging"
)

//go:embed templates
var templateFS embed.FS

// RenderTemplate renders a template with the base layout
func RenderTemplate(w http.ResponseWriter, templateName string, data map[string]interface{}) error {
	t, err := template.New("base.html").ParseFS(templateFS,
		"templates/layouts/base.html",
		"templates/"+templateName,
	)
	if err != nil {
		logging.Error("Template parse failed", "template", templateName, "error", err.Error())
		http.Error(w, "Error loading template", http.StatusInternalServerError)
		return err
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := t.Execute(w, data); err != nil {
		logging.Error("Template render failed", "template", templateName, "error", err.Error())
		http.Error(w, "Error rendering template", http.StatusInternalServerError)
		return err
	}

	return nil
}

// RenderPartial renders just the "content" block of a template (for HTMX responses)
func RenderPartial(w http.ResponseWriter, templateName string, data map[string]interface{}) error {
	t, err := template.New("partial").ParseFS(templateFS, "templates/"+templateName)
	if err != nil {
		logging.Error("Template parse failed", "template", templateName, "error", err.Error())
		http.Error(w, "Error loading template", http.StatusInternalServerError)
		return err
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := t.ExecuteTemplate(w, "content", data); err != nil {
		logging.Error("Template render failed", "template", templateName, "error", err.Error())
		http.Error(w, "Error rendering template", http.StatusInternalServerError)
		return err
	}

	return nil
}
