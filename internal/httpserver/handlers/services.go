package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/slatrack/internal/domain"
	"github.com/MrSnakeDoc/slatrack/internal/httpserver/deps"
	"github.com/MrSnakeDoc/slatrack/internal/registry"
)

// queryTimeLayout is the accepted format of from_dt / to_dt query params.
const queryTimeLayout = "2006-01-02 15:04:05"

const timeFormatHint = `use ISO 8601 for datetime objects: "YYYY-MM-DD HH:MM:SS"`

type serviceState struct {
	Name        string `json:"name"`
	Status      string `json:"status"`
	Description string `json:"description"`
}

func stateOf(svc *domain.Service) serviceState {
	return serviceState{
		Name:        svc.Name,
		Status:      string(svc.CurrentStatus()),
		Description: svc.Description,
	}
}

type statusEntry struct {
	Name      string `json:"name"`
	UpdatedAt string `json:"updated_at"`
}

type createRequest struct {
	Name        *string `json:"name"`
	Status      *string `json:"status"`
	Description *string `json:"description"`
}

type updateRequest struct {
	Name        *string `json:"name"`
	Status      *string `json:"status"`
	Description *string `json:"description"`
}

// CreateService handles POST /services: registers a service with its
// mandatory initial status.
func CreateService(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			badRequest(w, "invalid JSON body")
			return
		}
		if req.Name == nil || req.Status == nil || req.Description == nil {
			badRequest(w, "must include name, status and description")
			return
		}

		svc, err := d.Registry.Create(r.Context(), *req.Name, *req.Status, *req.Description)
		if err != nil {
			writeDomainError(w, d, err)
			return
		}

		writeJSON(w, http.StatusCreated, stateOf(svc))
	}
}

// ListServices handles GET /services: every service with its current status.
// Ordering is unspecified.
func ListServices(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		services, err := d.Registry.List(r.Context())
		if err != nil {
			writeDomainError(w, d, err)
			return
		}

		items := make([]serviceState, 0, len(services))
		for _, svc := range services {
			items = append(items, stateOf(svc))
		}

		writeJSON(w, http.StatusOK, map[string][]serviceState{"items": items})
	}
}

// GetStatusHistory handles GET /services/{id}: the full status history in
// chronological order, timestamps in ISO-8601 UTC with a trailing Z.
func GetStatusHistory(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		svc, err := d.Registry.Get(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			writeDomainError(w, d, err)
			return
		}

		history := make([]statusEntry, 0, len(svc.Statuses))
		for _, st := range svc.Statuses {
			history = append(history, statusEntry{
				Name:      string(st.Name),
				UpdatedAt: st.UpdatedAt.UTC().Format(time.RFC3339Nano),
			})
		}

		writeJSON(w, http.StatusOK, history)
	}
}

// UpdateService handles PUT /services/{id}: partial field updates, with a
// status change appending to the history.
func UpdateService(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req updateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			badRequest(w, "invalid JSON body")
			return
		}

		svc, err := d.Registry.Update(r.Context(), chi.URLParam(r, "id"), registry.Patch{
			Name:        req.Name,
			Status:      req.Status,
			Description: req.Description,
		})
		if err != nil {
			writeDomainError(w, d, err)
			return
		}

		writeJSON(w, http.StatusOK, stateOf(svc))
	}
}

type slaResponse struct {
	NotWorkingTime string `json:"not_working_time"`
	SLA            string `json:"sla"`
}

// GetSLA handles GET /services/{id}/sla?from_dt=...&to_dt=...: downtime and
// SLA percentage over the requested window.
func GetSLA(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		from, err := time.Parse(queryTimeLayout, r.URL.Query().Get("from_dt"))
		if err != nil {
			badRequest(w, timeFormatHint)
			return
		}
		to, err := time.Parse(queryTimeLayout, r.URL.Query().Get("to_dt"))
		if err != nil {
			badRequest(w, timeFormatHint)
			return
		}
		// Reject empty or inverted windows before dividing by their duration.
		if !from.Before(to) {
			badRequest(w, "from_dt must be before to_dt")
			return
		}

		report, err := d.Registry.SLA(r.Context(), chi.URLParam(r, "id"), from, to)
		if err != nil {
			writeDomainError(w, d, err)
			return
		}

		writeJSON(w, http.StatusOK, slaResponse{
			NotWorkingTime: report.FormatDowntime(),
			SLA:            report.FormatPercent(),
		})
	}
}
