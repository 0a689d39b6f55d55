package handler

import (
	"net/http"

	"myvoice/internal/model"
	"myvoice/internal/service"
)

// QuestionnaireHandler serves the static question catalog.
type QuestionnaireHandler struct {
	intakeSvc *service.IntakeService
}

// NewQuestionnaireHandler creates a new questionnaire handler.
func NewQuestionnaireHandler(intakeSvc *service.IntakeService) *QuestionnaireHandler {
	return &QuestionnaireHandler{intakeSvc: intakeSvc}
}

// QuestionnaireResponse is the question catalog plus a fresh session token
// for the form instance being rendered.
type QuestionnaireResponse struct {
	model.Questionnaire
	SessionID string `json:"sessionId"`
}

// Get handles GET /v1/questionnaire
func (h *QuestionnaireHandler) Get(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, QuestionnaireResponse{
		Questionnaire: h.intakeSvc.Questionnaire(),
		SessionID:     h.intakeSvc.NewSession(),
	})
}
