// Package site renders the public portfolio page. The page is served with
// the active project list already bound; the admin panel and login modal
// ship as static markup driven by the JSON API.
package site

import (
	"embed"
	"html/template"
	"io/fs"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/elrefaeey/ahmedelrefaey/internal/models"
	"github.com/elrefaeey/ahmedelrefaey/internal/store"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

//go:embed static
var staticFS embed.FS

type Handler struct {
	store store.ProjectStore
	tmpl  *template.Template
}

func NewHandler(s store.ProjectStore) (*Handler, error) {
	tmpl, err := template.ParseFS(templatesFS, "templates/*.tmpl")
	if err != nil {
		return nil, err
	}
	return &Handler{store: s, tmpl: tmpl}, nil
}

// pageData is what the index template renders from.
type pageData struct {
	Lang     string
	Dir      string
	T        map[string]string
	Projects []models.Project
}

// Index serves the portfolio page. lang=ar flips the document direction and
// the static strings. A store failure renders the page without cards; the
// client-side refresh fills them in once the store recovers.
func (h *Handler) Index(c *gin.Context) {
	lang := c.Query("lang")
	if lang != "ar" {
		lang = "en"
	}
	dir := "ltr"
	if lang == "ar" {
		dir = "rtl"
	}

	projects, err := h.store.ListActive(c.Request.Context())
	if err != nil {
		log.Printf("Error fetching projects: %v", err)
		projects = nil
	}

	c.Status(http.StatusOK)
	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := h.tmpl.ExecuteTemplate(c.Writer, "index.html.tmpl", pageData{
		Lang:     lang,
		Dir:      dir,
		T:        Strings(lang),
		Projects: projects,
	}); err != nil {
		log.Printf("Error rendering page: %v", err)
	}
}

// StaticFS exposes the embedded JS/CSS for router registration.
func StaticFS() http.FileSystem {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}
