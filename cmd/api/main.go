package main

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"voyage/adapters/tabular"
	"voyage/app"
	"voyage/internal/config"
	"voyage/internal/errors"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
)

// API-only server: the same analysis tables as the dashboard, JSON only,
// no templates.

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

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[API] Failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, statusForError(err), map[string]string{"error": err.Error()})
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration failed: %v", err)
	}

	source := tabular.NewDataReader(cfg.Data.Locator)
	service := app.NewInsightService(source, nil)

	report := func(w http.ResponseWriter, r *http.Request) (*app.InsightReport, bool) {
		rep, err := service.Report(r.Context())
		if err != nil {
			writeError(w, err)
			return nil, false
		}
		return rep, true
	}

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Get("/api/report", func(w http.ResponseWriter, req *http.Request) {
		if rep, ok := report(w, req); ok {
			writeJSON(w, http.StatusOK, rep)
		}
	})
	r.Get("/api/demographics", func(w http.ResponseWriter, req *http.Request) {
		if rep, ok := report(w, req); ok {
			writeJSON(w, http.StatusOK, map[string]interface{}{"rows": rep.Demographics})
		}
	})
	r.Get("/api/families", func(w http.ResponseWriter, req *http.Request) {
		if rep, ok := report(w, req); ok {
			writeJSON(w, http.StatusOK, map[string]interface{}{"rows": rep.FamilyGroups})
		}
	})
	r.Get("/api/surname-families", func(w http.ResponseWriter, req *http.Request) {
		if rep, ok := report(w, req); ok {
			writeJSON(w, http.StatusOK, map[string]interface{}{"rows": rep.SurnameFamilies})
		}
	})
	r.Get("/api/last-names", func(w http.ResponseWriter, req *http.Request) {
		rep, ok := report(w, req)
		if !ok {
			return
		}
		rows := rep.LastNames
		if topParam := req.URL.Query().Get("top"); topParam != "" {
			top, err := strconv.Atoi(topParam)
			if err != nil || top <= 0 {
				writeJSON(w, http.StatusBadRequest, map[string]string{"error": "top must be a positive integer"})
				return
			}
			if top < len(rows) {
				rows = rows[:top]
			}
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{"rows": rows})
	})
	r.Get("/api/age-division", func(w http.ResponseWriter, req *http.Request) {
		if rep, ok := report(w, req); ok {
			writeJSON(w, http.StatusOK, map[string]interface{}{
				"rows":     rep.AgeDivision,
				"survival": rep.DivisionSurvival,
			})
		}
	})
	r.Get("/api/independence", func(w http.ResponseWriter, req *http.Request) {
		if rep, ok := report(w, req); ok {
			writeJSON(w, http.StatusOK, map[string]interface{}{
				"class": rep.ClassIndependence,
				"sex":   rep.SexIndependence,
			})
		}
	})

	// Fail fast before serving.
	if _, err := service.Report(context.Background()); err != nil {
		log.Fatalf("Initial dataset check failed: %v", err)
	}

	log.Printf("[API] Listening on :%s", cfg.Server.APIPort)
	if err := http.ListenAndServe(":"+cfg.Server.APIPort, r); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
