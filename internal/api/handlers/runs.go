package handlers

import (
	"facility-capacity-service/internal/api/dto"
	"facility-capacity-service/internal/ports"
	"log"
	"net/http"
	"strconv"
)

// RunHandler exposes read-only access to persisted optimization runs.
type RunHandler struct {
	Repo ports.RunRepository
}

func (h *RunHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	if h.Repo == nil {
		writeError(w, r, http.StatusServiceUnavailable, "run storage is not configured")
		return
	}

	limit := 20
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 100 {
			writeError(w, r, http.StatusBadRequest, "limit must be between 1 and 100")
			return
		}
		limit = n
	}

	runs, err := h.Repo.ListRuns(r.Context(), limit)
	if err != nil {
		log.Printf("list runs failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListRunsResponse{Runs: make([]dto.RunResponse, 0, len(runs))}
	for _, run := range runs {
		candidates := make([]dto.CandidateResponse, 0, len(run.Candidates))
		for _, c := range run.Candidates {
			candidates = append(candidates, candidateResponse(c))
		}

		res.Runs = append(res.Runs, dto.RunResponse{
			RunID:             run.RunID.String(),
			CreatedAt:         run.CreatedAt,
			DailyVolume:       run.Parameters.DailyIncomingVolume,
			EquipmentCapacity: run.Parameters.EquipmentCapacity,
			HorizonDays:       run.HorizonDays,
			Candidates:        candidates,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
