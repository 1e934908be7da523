package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Mjmurray03/smart-deal-analyzer-sub001/internal/errs"
	"github.com/Mjmurray03/smart-deal-analyzer-sub001/internal/packages"
	"github.com/Mjmurray03/smart-deal-analyzer-sub001/model"
)

func (srv *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		srv.config.Logger.Errorf("failed to write response JSON: %v", err)
	}
}

// PingHandler reports storage health.
func (srv *Server) PingHandler(w http.ResponseWriter, r *http.Request) {
	if err := srv.storage.Ping(r.Context()); err != nil {
		srv.config.Logger.Errorf("storage ping failed: %v", err)
		http.Error(w, "storage unavailable", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}

// ListPackagesHandler returns the whole catalog, optionally filtered with
// the "type" query parameter.
func (srv *Server) ListPackagesHandler(w http.ResponseWriter, r *http.Request) {
	if t := r.URL.Query().Get("type"); t != "" {
		pt := model.PropertyType(t)
		if !model.ValidPropertyType(pt) {
			http.Error(w, errs.ErrInvalidPropertyType.Error(), http.StatusBadRequest)
			return
		}
		srv.writeJSON(w, http.StatusOK, packages.ByType(pt))
		return
	}
	srv.writeJSON(w, http.StatusOK, packages.All())
}

// PackagesByTypeHandler returns the packages for one property type.
func (srv *Server) PackagesByTypeHandler(w http.ResponseWriter, r *http.Request) {
	pt := model.PropertyType(chi.URLParam(r, "propertyType"))
	if !model.ValidPropertyType(pt) {
		http.Error(w, errs.ErrInvalidPropertyType.Error(), http.StatusBadRequest)
		return
	}
	srv.writeJSON(w, http.StatusOK, packages.ByType(pt))
}

// AnalyzeHandler runs one calculation request and stores the outcome.
// Validation failures come back as 422 with the structured result; only
// malformed JSON and unknown packages map to plain HTTP errors.
func (srv *Server) AnalyzeHandler(w http.ResponseWriter, r *http.Request) {
	if ct := r.Header.Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		http.Error(w, "unsupported content type", http.StatusUnsupportedMediaType)
		return
	}

	var req model.AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	result := srv.engine.Analyze(req.PackageID, req.PropertyType, req.Property)

	if result.Error != "" {
		status := http.StatusBadRequest
		if strings.HasPrefix(result.Error, errs.ErrPackageNotFound.Error()) {
			status = http.StatusNotFound
		}
		srv.writeJSON(w, status, result)
		return
	}

	if len(result.ValidationErrors) > 0 {
		srv.writeJSON(w, http.StatusUnprocessableEntity, result)
		return
	}

	analysis := &model.Analysis{
		ID:           uuid.New(),
		CreatedAt:    time.Now().UTC(),
		PackageID:    req.PackageID,
		PropertyType: req.PropertyType,
		Property:     req.Property,
		Result:       result,
	}
	if err := srv.storage.Save(r.Context(), analysis); err != nil {
		srv.config.Logger.Errorf("failed to save analysis [package=%s]: %v", req.PackageID, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	srv.writeJSON(w, http.StatusOK, analysis)
}

// ListAnalysesHandler returns recent stored analyses.
func (srv *Server) ListAnalysesHandler(w http.ResponseWriter, r *http.Request) {
	all, err := srv.storage.List(r.Context())
	if err != nil {
		srv.config.Logger.Errorf("failed to list analyses: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	srv.writeJSON(w, http.StatusOK, all)
}

func (srv *Server) analysisByID(w http.ResponseWriter, r *http.Request) *model.Analysis {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid analysis id", http.StatusBadRequest)
		return nil
	}

	analysis, err := srv.storage.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, errs.ErrAnalysisNotFound) {
			http.NotFound(w, r)
			return nil
		}
		srv.config.Logger.Errorf("failed to get analysis [id=%s]: %v", id, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return nil
	}
	return analysis
}

// GetAnalysisHandler returns one stored analysis.
func (srv *Server) GetAnalysisHandler(w http.ResponseWriter, r *http.Request) {
	if analysis := srv.analysisByID(w, r); analysis != nil {
		srv.writeJSON(w, http.StatusOK, analysis)
	}
}

// ExportAnalysisHandler returns the analysis as a JSON file download.
func (srv *Server) ExportAnalysisHandler(w http.ResponseWriter, r *http.Request) {
	analysis := srv.analysisByID(w, r)
	if analysis == nil {
		return
	}
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=analysis-%s.json", analysis.ID))
	srv.writeJSON(w, http.StatusOK, analysis)
}
