package ui

import (
	"encoding/json"
	"html/template"
	"log"
	"net/http"
	"strconv"
	"time"

	"voyage/internal/analysis"

	"github.com/gin-gonic/gin"
)

// dashboardData is the view model behind the tabbed dashboard page.
type dashboardData struct {
	Title          string
	Intro          template.HTML
	Locator        string
	PassengerCount int
	GeneratedAt    string

	DemographicsCommentary template.HTML
	Demographics           []analysis.DemographicRow
	DemographicsChart      template.JS
	ClassIndependence      analysis.IndependenceResult
	SexIndependence        analysis.IndependenceResult

	FamiliesCommentary template.HTML
	FamilyGroups       []analysis.FamilyGroupRow
	SurnameFamilies    []analysis.SurnameFamilyRow
	LastNames          []analysis.NameCount
	FamilyChart        template.JS
	LastNamesChart     template.JS

	AgeDivisionCommentary template.HTML
	DivisionSurvival      []analysis.DivisionSurvivalRow
	AgeDivisionSample     []analysis.AgeDivisionRow
	AgeDivisionChart      template.JS
}

// ageDivisionSampleSize bounds the per-passenger preview table on the page;
// the full table stays available under /api/age-division.
const ageDivisionSampleSize = 20

func (s *Server) handleDashboard(c *gin.Context) {
	report, err := s.service.Report(c.Request.Context())
	if err != nil {
		log.Printf("[Dashboard] Report failed: %v", err)
		c.String(statusForError(err), "failed to build report: %v", err)
		return
	}

	sample := report.AgeDivision
	if len(sample) > ageDivisionSampleSize {
		sample = sample[:ageDivisionSampleSize]
	}

	data := dashboardData{
		Title:          "Titanic Data Exploration",
		Intro:          renderMarkdown(introMarkdown),
		Locator:        report.Locator,
		PassengerCount: report.PassengerCount,
		GeneratedAt:    report.GeneratedAt.Format(time.RFC3339),

		DemographicsCommentary: renderMarkdown(demographicsMarkdown),
		Demographics:           report.Demographics,
		DemographicsChart:      chartJSON(BuildDemographicsChart(report.Demographics)),
		ClassIndependence:      report.ClassIndependence,
		SexIndependence:        report.SexIndependence,

		FamiliesCommentary: renderMarkdown(familiesMarkdown),
		FamilyGroups:       report.FamilyGroups,
		SurnameFamilies:    report.SurnameFamilies,
		LastNames:          report.LastNames,
		FamilyChart:        chartJSON(BuildFamilyChart(report.FamilyGroups)),
		LastNamesChart:     chartJSON(BuildLastNamesChart(report.LastNames)),

		AgeDivisionCommentary: renderMarkdown(ageDivisionMarkdown),
		DivisionSurvival:      report.DivisionSurvival,
		AgeDivisionSample:     sample,
		AgeDivisionChart:      chartJSON(BuildAgeDivisionChart(report.DivisionSurvival)),
	}

	s.renderTemplate(c, "dashboard.html", data)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleReport(c *gin.Context) {
	report, err := s.service.Report(c.Request.Context())
	if err != nil {
		s.jsonError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

func (s *Server) handleDemographics(c *gin.Context) {
	report, err := s.service.Report(c.Request.Context())
	if err != nil {
		s.jsonError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"rows": report.Demographics})
}

func (s *Server) handleFamilies(c *gin.Context) {
	report, err := s.service.Report(c.Request.Context())
	if err != nil {
		s.jsonError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"rows": report.FamilyGroups})
}

func (s *Server) handleSurnameFamilies(c *gin.Context) {
	report, err := s.service.Report(c.Request.Context())
	if err != nil {
		s.jsonError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"rows": report.SurnameFamilies})
}

func (s *Server) handleLastNames(c *gin.Context) {
	report, err := s.service.Report(c.Request.Context())
	if err != nil {
		s.jsonError(c, err)
		return
	}

	rows := report.LastNames
	if topParam := c.Query("top"); topParam != "" {
		top, err := strconv.Atoi(topParam)
		if err != nil || top <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "top must be a positive integer"})
			return
		}
		if top < len(rows) {
			rows = rows[:top]
		}
	}
	c.JSON(http.StatusOK, gin.H{"rows": rows})
}

func (s *Server) handleAgeDivision(c *gin.Context) {
	report, err := s.service.Report(c.Request.Context())
	if err != nil {
		s.jsonError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"rows":     report.AgeDivision,
		"survival": report.DivisionSurvival,
	})
}

func (s *Server) handleIndependence(c *gin.Context) {
	report, err := s.service.Report(c.Request.Context())
	if err != nil {
		s.jsonError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"class": report.ClassIndependence,
		"sex":   report.SexIndependence,
	})
}

func (s *Server) jsonError(c *gin.Context, err error) {
	log.Printf("[API] Request failed: %v", err)
	c.JSON(statusForError(err), gin.H{"error": err.Error()})
}

// chartJSON marshals a chart config for inline embedding; a nil chart
// becomes the JS literal null.
func chartJSON(chart *ChartConfig) template.JS {
	data, err := json.Marshal(chart)
	if err != nil {
		return template.JS("null")
	}
	return template.JS(data)
}
