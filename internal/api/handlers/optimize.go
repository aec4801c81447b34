package handlers

import (
	"encoding/json"
	"errors"
	"facility-capacity-service/internal/api/dto"
	"facility-capacity-service/internal/domain"
	"facility-capacity-service/internal/ports"
	"facility-capacity-service/internal/services"
	"io"
	"log"
	"net/http"
)

// OptimizeHandler runs the configuration search and persists the result.
type OptimizeHandler struct {
	// Repo may be nil; the search still runs, results are just not kept.
	Repo ports.RunRepository
}

// Optimize validates the request, runs the grid search, and returns the
// ranked candidate configurations.
func (h *OptimizeHandler) Optimize(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.OptimizeRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	bounds := domain.SearchBounds{
		MinCellCapacity: req.Bounds.MinCellCapacity,
		MaxCellCapacity: req.Bounds.MaxCellCapacity,
		CapacityStep:    req.Bounds.CapacityStep,
		MinCellCount:    req.Bounds.MinCellCount,
		MaxCellCount:    req.Bounds.MaxCellCount,
		MaxLoadingDays:  req.Bounds.MaxLoadingDays,
	}
	if bounds.CapacityStep == 0 {
		bounds.CapacityStep = 100
	}
	if bounds.MinCellCount == 0 {
		bounds.MinCellCount = 2
	}
	if bounds.MaxCellCount == 0 {
		bounds.MaxCellCount = 12
	}

	svcReq := services.SearchRequest{
		Params:      facilityFromRequest(req.Facility),
		Policy:      policyFromRequest(req.Policy),
		Bounds:      bounds,
		HorizonDays: req.HorizonDays,
		MaxResults:  req.MaxResults,
	}

	candidates, err := services.SearchConfigurations(r.Context(), svcReq)
	switch {
	case errors.Is(err, services.ErrNoViableConfiguration):
		// A normal, reportable outcome: the caller should widen bounds.
		writeJSON(w, r, http.StatusOK, dto.OptimizeResponse{
			Viable:     false,
			Candidates: []dto.CandidateResponse{},
		})
		return
	case errors.Is(err, domain.ErrInvalidParameter):
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	case err != nil:
		log.Printf("search configurations failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	run := domain.NewOptimizationRun(svcReq.Params, bounds, svcReq.HorizonDays, candidates)

	// Persistence is best-effort: a storage failure must not discard a
	// finished search.
	if h.Repo != nil {
		if err := h.Repo.SaveRun(r.Context(), run); err != nil {
			log.Printf("save run %s failed: %v", run.RunID, err)
		}
	}

	res := dto.OptimizeResponse{
		RunID:      run.RunID.String(),
		Viable:     true,
		Candidates: make([]dto.CandidateResponse, 0, len(candidates)),
	}
	for _, c := range candidates {
		res.Candidates = append(res.Candidates, candidateResponse(c))
	}

	writeJSON(w, r, http.StatusOK, res)
}
