package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"myvoice/internal/model"
	"myvoice/internal/service"
)

// exportFilenameLayout names CSV downloads, e.g.
// survey_responses_20260825_143000.csv.
const exportFilenameLayout = "20060102_150405"

// ResponseHandler handles submission and raw-row endpoints.
type ResponseHandler struct {
	intakeSvc *service.IntakeService
	reportSvc *service.ReportService
}

// NewResponseHandler creates a new response handler.
func NewResponseHandler(intakeSvc *service.IntakeService, reportSvc *service.ReportService) *ResponseHandler {
	return &ResponseHandler{
		intakeSvc: intakeSvc,
		reportSvc: reportSvc,
	}
}

// SubmitResponseRequest is the request body for submitting a survey response.
type SubmitResponseRequest struct {
	SessionID     string            `json:"sessionId"`
	Answers       map[string]string `json:"answers"`
	CustomAnswers map[string]string `json:"customAnswers"`
}

// Submit handles POST /v1/responses
func (h *ResponseHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req SubmitResponseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	response := &model.SurveyResponse{
		SessionID:     req.SessionID,
		Answers:       req.Answers,
		CustomAnswers: req.CustomAnswers,
	}

	if err := h.intakeSvc.Submit(r.Context(), response); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"sessionId":   response.SessionID,
		"submittedAt": response.Timestamp,
	})
}

// List handles GET /v1/responses
func (h *ResponseHandler) List(w http.ResponseWriter, r *http.Request) {
	filter, err := parseFilter(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	rows, err := h.reportSvc.Rows(r.Context(), filter)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"total": len(rows),
		"rows":  rows,
	})
}

// Export handles GET /v1/responses/export
func (h *ResponseHandler) Export(w http.ResponseWriter, r *http.Request) {
	filter, err := parseFilter(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	// Buffer the document so storage errors can still produce a proper
	// status code. Exports stay small at survey scale.
	var buf bytes.Buffer
	if err := h.reportSvc.WriteCSV(r.Context(), &buf, filter); err != nil {
		writeServiceError(w, err)
		return
	}

	filename := fmt.Sprintf("survey_responses_%s.csv", time.Now().Format(exportFilenameLayout))
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	buf.WriteTo(w)
}
