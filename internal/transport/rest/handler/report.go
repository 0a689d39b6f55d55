package handler

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"myvoice/internal/model"
	"myvoice/internal/service"
)

// ReportHandler handles report endpoints
type ReportHandler struct {
	reportSvc *service.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportSvc *service.ReportService) *ReportHandler {
	return &ReportHandler{reportSvc: reportSvc}
}

// Get handles GET /v1/reports
func (h *ReportHandler) Get(w http.ResponseWriter, r *http.Request) {
	filter, err := parseFilter(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	report, err := h.reportSvc.BuildReport(r.Context(), filter)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, report)
}

// GetQuestion handles GET /v1/reports/questions/{questionID}
func (h *ReportHandler) GetQuestion(w http.ResponseWriter, r *http.Request) {
	questionID := mux.Vars(r)["questionID"]

	filter, err := parseFilter(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	dist, err := h.reportSvc.QuestionBreakdown(r.Context(), questionID, filter)
	if errors.Is(err, model.ErrUnknownQuestion) {
		writeError(w, http.StatusNotFound, "question not found")
		return
	}
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dist)
}
