package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"ideanest/demodata"
	"ideanest/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// transportFunc adapts a function to the Doer interface.
type transportFunc func(*http.Request) (*http.Response, error)

func (f transportFunc) Do(req *http.Request) (*http.Response, error) {
	return f(req)
}

// countingTransport records calls and fails every request.
type countingTransport struct {
	calls int
}

func (c *countingTransport) Do(*http.Request) (*http.Response, error) {
	c.calls++
	return nil, errors.New("unexpected network call")
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

// newTestOrchestrator zeroes the simulated delays so tests run instantly.
func newTestOrchestrator(transport Doer) *Orchestrator {
	o := New("http://upstream.test", "anon-key")
	o.Transport = transport
	o.FallbackDelay = 0
	o.DemoDelay = 0
	o.RetryDelay = 0
	return o
}

// validDescription is exactly 150 characters long.
var validDescription = strings.Repeat("plant care reminders with soil sensors, ", 3) + strings.Repeat("x", 30)

func TestValidDescriptionLength(t *testing.T) {
	require.Len(t, validDescription, 150)
}

const liveEvaluationBody = `{
  "ideaId": "idea_1700000000000_abcdefghi",
  "title": "PlantPal",
  "evaluation": {
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
    "pitchSummary": "PlantPal in one hundred words",
    "scores": {"innovation": 8, "feasibility": 7, "scalability": 9}
  }
}`

func TestEvaluateLiveSuccess(t *testing.T) {
	var gotAuth string
	o := newTestOrchestrator(transportFunc(func(req *http.Request) (*http.Response, error) {
		gotAuth = req.Header.Get("Authorization")
		assert.Equal(t, "http://upstream.test/evaluate", req.URL.String())
		return jsonResponse(200, liveEvaluationBody), nil
	}))
	notifier := NewQueueNotifier(4)
	o.Notifier = notifier

	eval, mode := o.Evaluate(context.Background(), "PlantPal", validDescription)

	assert.Equal(t, ModeLive, mode)
	assert.Equal(t, ModeLive, o.Session.Mode())
	assert.Equal(t, "Bearer anon-key", gotAuth)

	// The remote result comes back unmodified: scores were already 0-10.
	assert.Equal(t, "PlantPal in one hundred words", eval.PitchSummary)
	assert.Equal(t, models.Scores{Innovation: 8, Feasibility: 7, Scalability: 9}, eval.Scores)

	n := <-notifier.Events()
	assert.Equal(t, LevelSuccess, n.Level)
	assert.Equal(t, "Evaluation complete!", n.Message)
}

func TestEvaluateNormalizesHundredScaleScores(t *testing.T) {
	body := strings.Replace(liveEvaluationBody,
		`"scores": {"innovation": 8, "feasibility": 7, "scalability": 9}`,
		`"scores": {"innovation": 85, "feasibility": 7, "scalability": 10}`, 1)
	o := newTestOrchestrator(transportFunc(func(*http.Request) (*http.Response, error) {
		return jsonResponse(200, body), nil
	}))

	eval, mode := o.Evaluate(context.Background(), "PlantPal", validDescription)

	assert.Equal(t, ModeLive, mode)
	assert.Equal(t, 8.5, eval.Scores.Innovation)
	assert.Equal(t, 7.0, eval.Scores.Feasibility)
	// Boundary: exactly 10 is not divided.
	assert.Equal(t, 10.0, eval.Scores.Scalability)
}

func TestEvaluateQuotaFallback(t *testing.T) {
	o := newTestOrchestrator(transportFunc(func(*http.Request) (*http.Response, error) {
		return jsonResponse(429, `{"error": "quota exceeded"}`), nil
	}))
	notifier := NewQueueNotifier(4)
	o.Notifier = notifier

	eval, mode := o.Evaluate(context.Background(), "PlantPal", validDescription)

	assert.Equal(t, ModeDemo, mode)
	assert.Equal(t, ModeDemo, o.Session.Mode())
	assert.NotEmpty(t, eval.PitchSummary)

	n := <-notifier.Events()
	assert.Equal(t, LevelSuccess, n.Level)
	assert.Equal(t, "Evaluation complete! (Demo Mode)", n.Message)
	assert.Equal(t, "Using AI-powered demo data due to API limits", n.Description)
	assert.Equal(t, 5*time.Second, n.Duration)
}

func TestEvaluateQuotaSignalInErrorText(t *testing.T) {
	// 500 status, but the error text marks it as a key problem.
	o := newTestOrchestrator(transportFunc(func(*http.Request) (*http.Response, error) {
		return jsonResponse(500, `{"error": "OpenRouter API key not configured"}`), nil
	}))

	_, mode := o.Evaluate(context.Background(), "PlantPal", validDescription)
	assert.Equal(t, ModeDemo, mode)
}

func TestEvaluateAuthFallback(t *testing.T) {
	o := newTestOrchestrator(transportFunc(func(*http.Request) (*http.Response, error) {
		return jsonResponse(401, `{"error": "unauthorized"}`), nil
	}))

	eval, mode := o.Evaluate(context.Background(), "PlantPal", validDescription)
	assert.Equal(t, ModeDemo, mode)
	assert.NotEmpty(t, eval.ProblemStatement)
}

func TestEvaluateMissingEvaluationField(t *testing.T) {
	o := newTestOrchestrator(transportFunc(func(*http.Request) (*http.Response, error) {
		return jsonResponse(200, `{}`), nil
	}))

	eval, mode := o.Evaluate(context.Background(), "PlantPal", validDescription)
	assert.Equal(t, ModeDemo, mode)
	assert.NotEmpty(t, eval.PitchSummary)
}

func TestEvaluateGenericServerErrorFallback(t *testing.T) {
	o := newTestOrchestrator(transportFunc(func(*http.Request) (*http.Response, error) {
		return jsonResponse(503, `{"error": "upstream unavailable"}`), nil
	}))

	_, mode := o.Evaluate(context.Background(), "PlantPal", validDescription)
	assert.Equal(t, ModeDemo, mode)
}

func TestEvaluateTransportErrorEndToEnd(t *testing.T) {
	o := newTestOrchestrator(transportFunc(func(*http.Request) (*http.Response, error) {
		return nil, fmt.Errorf("dial tcp: connection refused")
	}))
	o.FallbackDelay = 10 * time.Millisecond

	start := time.Now()
	eval, mode := o.Evaluate(context.Background(), "PlantPal", validDescription)
	elapsed := time.Since(start)

	assert.Equal(t, ModeDemo, mode)
	assert.Contains(t, eval.PitchSummary, "PlantPal")
	assert.GreaterOrEqual(t, elapsed, 10*time.Millisecond)
	assert.Less(t, elapsed, time.Second)

	// Fallback output matches the generator exactly.
	assert.Equal(t, demodata.GenerateEvaluation("PlantPal", validDescription), eval)
}

func TestEvaluateMalformedSuccessBody(t *testing.T) {
	o := newTestOrchestrator(transportFunc(func(*http.Request) (*http.Response, error) {
		return jsonResponse(200, `not json at all`), nil
	}))

	_, mode := o.Evaluate(context.Background(), "PlantPal", validDescription)
	assert.Equal(t, ModeDemo, mode)
}

func TestDemoModeSkipsNetworkForAnalyses(t *testing.T) {
	// First evaluation fails and flips the session to demo.
	o := newTestOrchestrator(transportFunc(func(*http.Request) (*http.Response, error) {
		return jsonResponse(429, `{"error": "quota exceeded"}`), nil
	}))
	_, mode := o.Evaluate(context.Background(), "PlantPal", validDescription)
	require.Equal(t, ModeDemo, mode)

	// From now on the transport must never be touched.
	counter := &countingTransport{}
	o.Transport = counter

	refinements := o.Refine(context.Background())
	competitors := o.Competitors(context.Background())
	strategy := o.MarketStrategy(context.Background())

	assert.Equal(t, 0, counter.calls)
	assert.Len(t, refinements.Refinements, 3)
	assert.NotEmpty(t, competitors.Competitors)
	assert.NotEmpty(t, strategy.MarketingChannels)
}

func TestAnalysisFailureDoesNotFlipSessionMode(t *testing.T) {
	o := newTestOrchestrator(transportFunc(func(req *http.Request) (*http.Response, error) {
		if strings.HasSuffix(req.URL.Path, "/evaluate") {
			return jsonResponse(200, liveEvaluationBody), nil
		}
		return nil, errors.New("connection reset")
	}))
	notifier := NewQueueNotifier(4)
	o.Notifier = notifier

	_, mode := o.Evaluate(context.Background(), "PlantPal", validDescription)
	require.Equal(t, ModeLive, mode)
	<-notifier.Events() // drain the evaluation notification

	refinements := o.Refine(context.Background())
	assert.Len(t, refinements.Refinements, 3)

	// One informational notification, and the session is still live.
	n := <-notifier.Events()
	assert.Equal(t, LevelInfo, n.Level)
	assert.Equal(t, "Using demo refinements", n.Message)
	assert.Equal(t, ModeLive, o.Session.Mode())
}

func TestAnalysisLiveSuccess(t *testing.T) {
	remote := `{"refinements": [{"title": "remote idea", "description": "d", "reasoning": "r"}]}`
	o := newTestOrchestrator(transportFunc(func(req *http.Request) (*http.Response, error) {
		if strings.HasSuffix(req.URL.Path, "/evaluate") {
			return jsonResponse(200, liveEvaluationBody), nil
		}
		assert.Equal(t, "/refine", req.URL.Path)
		return jsonResponse(200, remote), nil
	}))

	_, mode := o.Evaluate(context.Background(), "PlantPal", validDescription)
	require.Equal(t, ModeLive, mode)

	refinements := o.Refine(context.Background())
	require.Len(t, refinements.Refinements, 1)
	assert.Equal(t, "remote idea", refinements.Refinements[0].Title)
}

func TestAnalysisMalformedRemoteBodyFallsBack(t *testing.T) {
	o := newTestOrchestrator(transportFunc(func(req *http.Request) (*http.Response, error) {
		if strings.HasSuffix(req.URL.Path, "/evaluate") {
			return jsonResponse(200, liveEvaluationBody), nil
		}
		return jsonResponse(200, `{"competitors": []}`), nil
	}))

	_, mode := o.Evaluate(context.Background(), "PlantPal", validDescription)
	require.Equal(t, ModeLive, mode)

	competitors := o.Competitors(context.Background())
	assert.Equal(t, demodata.GenerateCompetitors("PlantPal"), competitors)
	assert.Equal(t, ModeLive, o.Session.Mode())
}

func TestStickyDemoSurvivesLaterLiveSuccess(t *testing.T) {
	failing := transportFunc(func(*http.Request) (*http.Response, error) {
		return jsonResponse(429, `{"error": "quota exceeded"}`), nil
	})
	o := newTestOrchestrator(failing)

	_, mode := o.Evaluate(context.Background(), "PlantPal", validDescription)
	require.Equal(t, ModeDemo, mode)

	// Even a later successful remote answer does not revert the session.
	o.Transport = transportFunc(func(*http.Request) (*http.Response, error) {
		return jsonResponse(200, liveEvaluationBody), nil
	})
	_, mode = o.Evaluate(context.Background(), "PlantPal", validDescription)
	assert.Equal(t, ModeDemo, mode)
	assert.Equal(t, ModeDemo, o.Session.Mode())
}

func TestSessionReset(t *testing.T) {
	o := newTestOrchestrator(transportFunc(func(*http.Request) (*http.Response, error) {
		return jsonResponse(429, `{"error": "quota exceeded"}`), nil
	}))

	_, _ = o.Evaluate(context.Background(), "PlantPal", validDescription)
	require.Equal(t, ModeDemo, o.Session.Mode())

	o.Session.Reset()
	assert.Equal(t, ModeUnset, o.Session.Mode())
	title, description := o.Session.Idea()
	assert.Empty(t, title)
	assert.Empty(t, description)
}

func TestQuotaClassification(t *testing.T) {
	tests := []struct {
		status  int
		errText string
		want    bool
	}{
		{429, "", true},
		{401, "", true},
		{500, "quota exceeded", true},
		{500, "insufficient_quota", true},
		{500, "rate limit reached", true},
		{500, "invalid API key", true},
		{500, "internal error", false},
		{400, "Description must be at least 150 characters", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, isQuotaFailure(tt.status, tt.errText),
			"status=%d errText=%q", tt.status, tt.errText)
	}
}

func TestQueueNotifierDropsWhenFull(t *testing.T) {
	q := NewQueueNotifier(1)
	q.Notify(Notification{Message: "first"})
	q.Notify(Notification{Message: "second"}) // dropped, must not block

	n := <-q.Events()
	assert.Equal(t, "first", n.Message)
	select {
	case n = <-q.Events():
		t.Fatalf("unexpected queued notification: %v", n)
	default:
	}
}
