// Package orchestrator drives evaluation requests against the remote service
// and transparently substitutes locally generated demo data whenever the live
// path fails. Its central contract: the user always gets an evaluation, and no
// failure on the live path ever surfaces as an error.
package orchestrator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"ideanest/demodata"
	"ideanest/metrics"
	"ideanest/models"

	"go.uber.org/zap"
)

// Doer abstracts the HTTP transport so tests can stub the remote service.
type Doer interface {
	Do(*http.Request) (*http.Response, error)
}

// Orchestrator issues evaluation and analysis requests for one user session.
type Orchestrator struct {
	BaseURL   string
	AnonKey   string
	Transport Doer
	Session   *Session
	Notifier  Notifier
	Logger    *zap.Logger

	// Simulated latency on the fallback paths, kept close to real round-trip
	// times so a fallback is not visibly instant.
	FallbackDelay time.Duration
	DemoDelay     time.Duration
	RetryDelay    time.Duration
}

// New builds an orchestrator with the production transport and the fixed
// fallback delays.
func New(baseURL, anonKey string) *Orchestrator {
	return &Orchestrator{
		BaseURL:       strings.TrimRight(baseURL, "/"),
		AnonKey:       anonKey,
		Transport:     &http.Client{},
		Session:       NewSession(),
		Notifier:      NopNotifier(),
		Logger:        zap.NewNop(),
		FallbackDelay: 2 * time.Second,
		DemoDelay:     1500 * time.Millisecond,
		RetryDelay:    time.Second,
	}
}

type evaluateResponse struct {
	IdeaID     string                 `json:"ideaId"`
	Title      string                 `json:"title"`
	Evaluation *models.EvaluationData `json:"evaluation"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details"`
}

// Evaluate sends exactly one request to the remote evaluation endpoint and
// classifies the outcome. On success it returns the remote result with
// normalized scores and marks the session live; on any classified failure it
// waits the fallback delay, switches the session to demo mode, and returns
// generated data. The caller is expected to have validated the description
// length; a short description rejected remotely is just another fallback
// trigger.
func (o *Orchestrator) Evaluate(ctx context.Context, title, description string) (models.EvaluationData, Mode) {
	o.Session.Begin(title, description)

	resp, body, err := o.post(ctx, "/evaluate", map[string]string{
		"title":       title,
		"description": description,
	})
	if err != nil {
		o.Logger.Warn("evaluation transport failure, switching to demo data", zap.Error(err))
		return o.fallbackEvaluation(ctx, title, description, reasonTransport)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var remoteErr errorResponse
		_ = json.Unmarshal(body, &remoteErr)

		reason := reasonUpstream
		if isQuotaFailure(resp.StatusCode, remoteErr.Error) {
			reason = reasonQuota
		}
		o.Logger.Warn("evaluation rejected by remote service",
			zap.Int("status", resp.StatusCode),
			zap.String("error", remoteErr.Error),
			zap.String("reason", string(reason)))
		return o.fallbackEvaluation(ctx, title, description, reason)
	}

	var parsed evaluateResponse
	if err := json.Unmarshal(body, &parsed); err != nil || parsed.Evaluation == nil {
		o.Logger.Warn("evaluation response missing evaluation field",
			zap.Error(err),
			zap.Int("bodyLen", len(body)))
		return o.fallbackEvaluation(ctx, title, description, reasonBadResponse)
	}

	eval := *parsed.Evaluation
	eval.Scores.Normalize()
	o.Session.markLive()
	metrics.EvaluationsTotal.WithLabelValues("live").Inc()
	o.Notifier.Notify(Notification{
		Level:    LevelSuccess,
		Message:  "Evaluation complete!",
		Duration: 3 * time.Second,
	})
	return eval, o.Session.Mode()
}

// fallbackEvaluation serves generated data after the fixed delay. It always
// succeeds: the generator is pure and total over any non-empty title.
func (o *Orchestrator) fallbackEvaluation(ctx context.Context, title, description string, reason fallbackReason) (models.EvaluationData, Mode) {
	o.wait(ctx, o.FallbackDelay)
	o.Session.markDemo()
	metrics.FallbacksTotal.WithLabelValues(string(reason)).Inc()
	metrics.EvaluationsTotal.WithLabelValues("demo").Inc()

	detail := "Using sample evaluation data"
	duration := 4 * time.Second
	if reason == reasonQuota {
		detail = "Using AI-powered demo data due to API limits"
		duration = 5 * time.Second
	}
	o.Notifier.Notify(Notification{
		Level:       LevelSuccess,
		Message:     "Evaluation complete! (Demo Mode)",
		Description: detail,
		Duration:    duration,
	})
	return demodata.GenerateEvaluation(title, description), ModeDemo
}

func (o *Orchestrator) post(ctx context.Context, path string, payload any) (*http.Response, []byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, o.BaseURL+path, bytes.NewBuffer(data))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", o.AnonKey))

	resp, err := o.Transport.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read response: %w", err)
	}
	return resp, body, nil
}

// wait sleeps for the given duration, returning early if the context is
// canceled. The caller proceeds to the generator either way: there is no
// cancellation of an in-flight fallback, only a shortened delay.
func (o *Orchestrator) wait(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
	case <-ctx.Done():
	}
}
