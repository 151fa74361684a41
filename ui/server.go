package ui

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"log"
	"net/http"
	"strings"

	"voyage/app"
	"voyage/internal/errors"

	"github.com/gin-gonic/gin"
)

//go:embed templates/*.html static/*
var embeddedFiles embed.FS

// Server represents the web server for the Titanic dashboard
type Server struct {
	router    *gin.Engine
	service   *app.InsightService
	templates *template.Template
}

// NewServer creates a new web server instance
func NewServer(service *app.InsightService) (*Server, error) {
	s := &Server{
		router:  gin.Default(),
		service: service,
	}

	funcMap := template.FuncMap{
		"pct": func(rate float64) string {
			return fmt.Sprintf("%.1f%%", rate*100)
		},
		"money": func(v float64) string {
			return fmt.Sprintf("£%.2f", v)
		},
		"num": func(v float64) string {
			return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.3f", v), "0"), ".")
		},
		"yesno": func(b bool) string {
			if b {
				return "yes"
			}
			return "no"
		},
	}

	templates, err := template.New("").Funcs(funcMap).ParseFS(embeddedFiles, "templates/*.html")
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse templates")
	}
	s.templates = templates

	s.setupRoutes()
	return s, nil
}

func (s *Server) setupRoutes() {
	s.router.GET("/", s.handleDashboard)
	s.router.GET("/healthz", s.handleHealth)

	staticFiles, err := fs.Sub(embeddedFiles, "static")
	if err == nil {
		s.router.StaticFS("/static", http.FS(staticFiles))
	}

	api := s.router.Group("/api")
	{
		api.GET("/report", s.handleReport)
		api.GET("/demographics", s.handleDemographics)
		api.GET("/families", s.handleFamilies)
		api.GET("/surname-families", s.handleSurnameFamilies)
		api.GET("/last-names", s.handleLastNames)
		api.GET("/age-division", s.handleAgeDivision)
		api.GET("/independence", s.handleIndependence)
	}
}

// Run starts the server on the given port
func (s *Server) Run(port string) error {
	log.Printf("[Server] Dashboard listening on :%s", port)
	return s.router.Run(":" + port)
}

// Router exposes the gin engine, mainly for handler tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

func (s *Server) renderTemplate(c *gin.Context, name string, data interface{}) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := s.templates.ExecuteTemplate(c.Writer, name, data); err != nil {
		log.Printf("[Server] Template %s failed: %v", name, err)
		c.String(http.StatusInternalServerError, "template error")
	}
}

// statusForError maps the dataset error taxonomy onto HTTP statuses.
func statusForError(err error) int {
	switch errors.GetCode(err) {
	case errors.CodeDataUnavailable:
		return http.StatusBadGateway
	case errors.CodeSchemaMismatch, errors.CodeEmptyInput:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
