package handlers

import (
	"encoding/json"
	"errors"
	"facility-capacity-service/internal/api/dto"
	"facility-capacity-service/internal/domain"
	"facility-capacity-service/internal/services"
	"io"
	"log"
	"net/http"
	"time"
)

// ScheduleHandler produces the full day-by-day run for one chosen
// configuration.
type ScheduleHandler struct{}

func (h *ScheduleHandler) Schedule(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.ScheduleRequest

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

	start, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "start_date must be YYYY-MM-DD")
		return
	}

	days := req.Days
	if days == 0 {
		days = 90
	}
	if days < 1 || days > 365 {
		writeError(w, r, http.StatusBadRequest, "days must be between 1 and 365")
		return
	}

	records, err := services.BuildSchedule(
		facilityFromRequest(req.Facility),
		policyFromRequest(req.Policy),
		req.CellCapacity,
		req.CellCount,
		start,
		days,
	)
	switch {
	case errors.Is(err, domain.ErrInvalidParameter):
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	case err != nil:
		log.Printf("build schedule failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ScheduleResponse{
		CellCapacity: req.CellCapacity,
		CellCount:    req.CellCount,
		Days:         make([]dto.DayRecordResponse, 0, len(records)),
	}
	for _, rec := range records {
		cells := make([]dto.CellEntryResponse, 0, len(rec.Cells))
		for _, c := range rec.Cells {
			cells = append(cells, dto.CellEntryResponse{
				Cell:     c.CellNumber,
				Label:    c.Label,
				Loaded:   c.Loaded,
				Unloaded: c.Unloaded,
			})
		}

		res.Days = append(res.Days, dto.DayRecordResponse{
			Date:    rec.Date.Format("2006-01-02"),
			Day:     rec.DayName,
			Cells:   cells,
			In:      rec.VolumeIn,
			Out:     rec.VolumeOut,
			Backlog: rec.Backlog,
			CumIn:   rec.CumulativeIn,
			CumOut:  rec.CumulativeOut,
			Idle:    rec.Idle,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
