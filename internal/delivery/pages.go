package delivery

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/Vovarama1992/go-utils/logger"
)

//go:embed templates/*.html
var templateFS embed.FS

type PageHandler struct {
	tmpl *template.Template
	log  *logger.ZapLogger
}

func NewPageHandler(log *logger.ZapLogger) (*PageHandler, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &PageHandler{tmpl: tmpl, log: log}, nil
}

func (h *PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	h.render(w, "index.html")
}

func (h *PageHandler) Auth(w http.ResponseWriter, r *http.Request) {
	h.render(w, "auth.html")
}

func (h *PageHandler) Profile(w http.ResponseWriter, r *http.Request) {
	h.render(w, "profile.html")
}

func (h *PageHandler) render(w http.ResponseWriter, name string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.tmpl.ExecuteTemplate(w, name, nil); err != nil {
		h.log.Log(logger.LogEntry{
			Level:   "error",
			Message: "template render failed",
			Error:   err,
			Fields:  map[string]any{"template": name},
		})
	}
}
