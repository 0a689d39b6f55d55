package rest

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"myvoice/internal/model"
	"myvoice/internal/repository"
	"myvoice/internal/service"
)

type memStore struct {
	records []model.SurveyResponse
	broken  bool
}

func (m *memStore) Insert(ctx context.Context, response *model.SurveyResponse) error {
	if m.broken {
		return repository.ErrUnavailable
	}
	m.records = append(m.records, *response)
	return nil
}

func (m *memStore) FindAll(ctx context.Context) ([]model.SurveyResponse, error) {
	if m.broken {
		return nil, repository.ErrUnavailable
	}
	out := make([]model.SurveyResponse, len(m.records))
	copy(out, m.records)
	return out, nil
}

func (m *memStore) Ping(ctx context.Context) error {
	if m.broken {
		return repository.ErrUnavailable
	}
	return nil
}

func testQuestionnaire() model.Questionnaire {
	choices := []model.Choice{
		{Code: model.ChoiceA, Text: "great"},
		{Code: model.ChoiceB, Text: "fine"},
		{Code: model.ChoiceC, Text: "poor"},
		{Code: model.ChoiceD, Text: "bad"},
	}
	return model.Questionnaire{
		Version: "test.1",
		Title:   "Test Survey",
		Questions: []model.Question{
			{ID: "Q1_First", Prompt: "First?", Choices: choices},
			{ID: "Q2_Second", Prompt: "Second?", Choices: choices},
		},
	}
}

func newTestRouter(store repository.ResponseStore) http.Handler {
	qn := testQuestionnaire()
	logger := zap.NewNop()
	return NewRouter(&Container{
		IntakeService: service.NewIntakeService(qn, store, nil, logger),
		ReportService: service.NewReportService(qn, store, nil, logger),
		Store:         store,
		CORS: CORSConfig{
			AllowedOrigins: "*",
			AllowedMethods: "GET, POST, OPTIONS",
			AllowedHeaders: "Content-Type",
		},
	})
}

func doJSON(t *testing.T, router http.Handler, method, target, body string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var decoded map[string]interface{}
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))
	}
	return rec, decoded
}

func TestHealthEndpoint(t *testing.T) {
	t.Run("reports storage up", func(t *testing.T) {
		rec, body := doJSON(t, newTestRouter(&memStore{}), "GET", "/health", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "ok", body["status"])
		assert.Equal(t, "up", body["storage"])
		assert.Equal(t, "disabled", body["cache"])
	})

	t.Run("stays 200 with storage down", func(t *testing.T) {
		rec, body := doJSON(t, newTestRouter(&memStore{broken: true}), "GET", "/health", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "down", body["storage"])
	})
}

func TestQuestionnaireEndpoint(t *testing.T) {
	rec, body := doJSON(t, newTestRouter(&memStore{}), "GET", "/v1/questionnaire", "")
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, "test.1", body["version"])
	assert.Len(t, body["questions"], 2)
	sessionID, _ := body["sessionId"].(string)
	assert.Len(t, sessionID, model.SessionIDLength)
}

func TestSubmitEndpoint(t *testing.T) {
	t.Run("valid submission returns 201", func(t *testing.T) {
		store := &memStore{}
		rec, body := doJSON(t, newTestRouter(store), "POST", "/v1/responses",
			`{"sessionId":"abc12345","answers":{"Q1_First":"A","Q2_Second":"C"}}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "abc12345", body["sessionId"])
		require.Len(t, store.records, 1)
	})

	t.Run("Other without text returns 400 naming the question", func(t *testing.T) {
		store := &memStore{}
		rec, body := doJSON(t, newTestRouter(store), "POST", "/v1/responses",
			`{"sessionId":"abc12345","answers":{"Q1_First":"Other","Q2_Second":"C"}}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		issues, ok := body["issues"].([]interface{})
		require.True(t, ok)
		require.Len(t, issues, 1)
		issue := issues[0].(map[string]interface{})
		assert.Equal(t, "Q1_First", issue["field"])
		assert.Empty(t, store.records)
	})

	t.Run("malformed body returns 400", func(t *testing.T) {
		rec, _ := doJSON(t, newTestRouter(&memStore{}), "POST", "/v1/responses", `{not json`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("degraded storage returns 503", func(t *testing.T) {
		rec, _ := doJSON(t, newTestRouter(&memStore{broken: true}), "POST", "/v1/responses",
			`{"sessionId":"abc12345","answers":{"Q1_First":"A","Q2_Second":"C"}}`)
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}

func TestListEndpoint(t *testing.T) {
	ts := time.Date(2026, 2, 5, 10, 0, 0, 0, time.UTC)
	store := &memStore{records: []model.SurveyResponse{
		{SessionID: "aaa11111", Timestamp: ts, Answers: map[string]string{"Q1_First": "A"}},
		{SessionID: "bbb22222", Timestamp: ts.AddDate(0, 0, 1), Answers: map[string]string{"Q1_First": "C"}},
	}}
	router := newTestRouter(store)

	t.Run("returns every row", func(t *testing.T) {
		rec, body := doJSON(t, router, "GET", "/v1/responses", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.EqualValues(t, 2, body["total"])
	})

	t.Run("session filter narrows the listing", func(t *testing.T) {
		rec, body := doJSON(t, router, "GET", "/v1/responses?session_id=aaa11111", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.EqualValues(t, 1, body["total"])
	})

	t.Run("bad date bound returns 400", func(t *testing.T) {
		rec, _ := doJSON(t, router, "GET", "/v1/responses?from=notadate", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("degraded storage returns 503", func(t *testing.T) {
		rec, _ := doJSON(t, newTestRouter(&memStore{broken: true}), "GET", "/v1/responses", "")
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}

func TestExportEndpoint(t *testing.T) {
	ts := time.Date(2026, 2, 5, 10, 0, 0, 0, time.UTC)
	store := &memStore{records: []model.SurveyResponse{
		{
			SessionID:     "aaa11111",
			Timestamp:     ts,
			Answers:       map[string]string{"Q1_First": "Other", "Q2_Second": "B"},
			CustomAnswers: map[string]string{"Q1_First": "my own words"},
		},
	}}

	req := httptest.NewRequest("GET", "/v1/responses/export", nil)
	rec := httptest.NewRecorder()
	newTestRouter(store).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "survey_responses_")

	parsed, err := csv.NewReader(rec.Body).ReadAll()
	require.NoError(t, err)
	require.Len(t, parsed, 2)
	assert.Equal(t, []string{"session_id", "timestamp", "Q1_First", "Q2_Second", "Q1_First_custom"}, parsed[0])
	assert.Equal(t, "my own words", parsed[1][4])
}

func TestReportEndpoint(t *testing.T) {
	t.Run("empty dataset reports noData", func(t *testing.T) {
		rec, body := doJSON(t, newTestRouter(&memStore{}), "GET", "/v1/reports", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, true, body["noData"])
	})

	t.Run("populated dataset carries aggregates", func(t *testing.T) {
		ts := time.Date(2026, 2, 5, 10, 0, 0, 0, time.UTC)
		store := &memStore{records: []model.SurveyResponse{
			{SessionID: "aaa11111", Timestamp: ts, Answers: map[string]string{"Q1_First": "A", "Q2_Second": "C"}},
		}}

		rec, body := doJSON(t, newTestRouter(store), "GET", "/v1/reports", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, false, body["noData"])

		overview := body["overview"].(map[string]interface{})
		assert.EqualValues(t, 1, overview["totalResponses"])
		assert.Len(t, body["distributions"], 2)
		assert.Len(t, body["concerns"], 2)
	})

	t.Run("degraded storage returns 503", func(t *testing.T) {
		rec, _ := doJSON(t, newTestRouter(&memStore{broken: true}), "GET", "/v1/reports", "")
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}

func TestQuestionReportEndpoint(t *testing.T) {
	ts := time.Date(2026, 2, 5, 10, 0, 0, 0, time.UTC)
	store := &memStore{records: []model.SurveyResponse{
		{SessionID: "aaa11111", Timestamp: ts, Answers: map[string]string{"Q1_First": "A", "Q2_Second": "C"}},
	}}
	router := newTestRouter(store)

	t.Run("known question", func(t *testing.T) {
		rec, body := doJSON(t, router, "GET", "/v1/reports/questions/Q1_First", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Q1_First", body["questionId"])
		assert.EqualValues(t, 1, body["answered"])
	})

	t.Run("unknown question returns 404", func(t *testing.T) {
		rec, _ := doJSON(t, router, "GET", "/v1/reports/questions/Q9_Nope", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestCORSPreflight(t *testing.T) {
	req := httptest.NewRequest("OPTIONS", "/v1/questionnaire", nil)
	rec := httptest.NewRecorder()
	newTestRouter(&memStore{}).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "GET, POST, OPTIONS", rec.Header().Get("Access-Control-Allow-Methods"))
}
