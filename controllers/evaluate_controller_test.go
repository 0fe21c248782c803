package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"ideanest/db"
	"ideanest/models"
	"ideanest/services"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type generatorFunc func(ctx context.Context, systemPrompt, userPrompt string) (string, error)

func (f generatorFunc) Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	return f(ctx, systemPrompt, userPrompt)
}

const modelEvaluationJSON = `{
  "problemStatement": "p",
  "existingSolutions": "e",
  "proposedSolution": "s",
  "marketPotential": "m",
  "swotAnalysis": {
    "strengths": ["a", "b", "c"],
    "weaknesses": ["a", "b", "c"],
    "opportunities": ["a", "b", "c"],
    "threats": ["a", "b", "c"]
  },
  "businessModel": "bm",
  "pros": ["a", "b", "c"],
  "cons": ["a", "b", "c"],
  "improvements": ["a", "b", "c"],
  "pitchSummary": "pitch",
  "scores": {"innovation": 8, "feasibility": 7, "scalability": 9}
}`

func newTestController(t *testing.T, generate generatorFunc) (*EvaluateController, *db.IdeaStore) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := db.NewIdeaStoreFromClient(client, time.Hour)

	return &EvaluateController{
		Service: services.NewEvaluationService(generate, zap.NewNop()),
		Ideas:   store,
		Logger:  zap.NewNop(),
	}, store
}

func newTestRouter(ec *EvaluateController) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/evaluate", ec.Evaluate)
	router.GET("/ideas/:id", ec.GetIdea)
	return router
}

func doJSON(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func longDescription() string {
	return strings.Repeat("a plant care assistant with moisture sensors ", 4)
}

func TestEvaluateRejectsMissingFields(t *testing.T) {
	ec, _ := newTestController(t, func(context.Context, string, string) (string, error) {
		t.Fatal("provider must not be called")
		return "", nil
	})
	router := newTestRouter(ec)

	w := doJSON(router, http.MethodPost, "/evaluate", `{"title": "PlantPal"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Title and description are required", decodeBody(t, w)["error"])
}

func TestEvaluateRejectsShortDescription(t *testing.T) {
	ec, _ := newTestController(t, func(context.Context, string, string) (string, error) {
		t.Fatal("provider must not be called")
		return "", nil
	})
	router := newTestRouter(ec)

	w := doJSON(router, http.MethodPost, "/evaluate", `{"title": "PlantPal", "description": "too short"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Description must be at least 150 characters", decodeBody(t, w)["error"])
}

func TestEvaluateSuccessPersistsAndResponds(t *testing.T) {
	ec, store := newTestController(t, func(context.Context, string, string) (string, error) {
		return modelEvaluationJSON, nil
	})
	router := newTestRouter(ec)

	body := `{"title": "PlantPal", "description": "` + longDescription() + `"}`
	w := doJSON(router, http.MethodPost, "/evaluate", body)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		IdeaID     string                `json:"ideaId"`
		Title      string                `json:"title"`
		Evaluation models.EvaluationData `json:"evaluation"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Regexp(t, `^idea_\d+_[a-z0-9]{9}$`, resp.IdeaID)
	assert.Equal(t, "PlantPal", resp.Title)
	assert.Equal(t, "pitch", resp.Evaluation.PitchSummary)

	record, err := store.Get(context.Background(), resp.IdeaID)
	require.NoError(t, err)
	assert.Equal(t, "PlantPal", record.Title)
	assert.Equal(t, "pitch", record.Evaluation.PitchSummary)
}

func TestEvaluateRelaysUpstreamStatus(t *testing.T) {
	ec, _ := newTestController(t, func(context.Context, string, string) (string, error) {
		return "", &services.UpstreamError{
			Status:  http.StatusTooManyRequests,
			Message: "OpenRouter API error: 429",
			Details: "rate limit exceeded",
		}
	})
	router := newTestRouter(ec)

	body := `{"title": "PlantPal", "description": "` + longDescription() + `"}`
	w := doJSON(router, http.MethodPost, "/evaluate", body)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	relayed := decodeBody(t, w)
	assert.Equal(t, "OpenRouter API error: 429", relayed["error"])
	assert.Equal(t, "rate limit exceeded", relayed["details"])
}

func TestEvaluateMapsModelGarbageTo500(t *testing.T) {
	ec, _ := newTestController(t, func(context.Context, string, string) (string, error) {
		return "not json", nil
	})
	router := newTestRouter(ec)

	body := `{"title": "PlantPal", "description": "` + longDescription() + `"}`
	w := doJSON(router, http.MethodPost, "/evaluate", body)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Internal server error during evaluation", decodeBody(t, w)["error"])
}

func TestGetIdeaNotFound(t *testing.T) {
	ec, _ := newTestController(t, func(context.Context, string, string) (string, error) {
		return modelEvaluationJSON, nil
	})
	router := newTestRouter(ec)

	w := doJSON(router, http.MethodGet, "/ideas/idea_000_missing00", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
