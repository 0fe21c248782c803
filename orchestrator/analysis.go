package orchestrator

import (
	"context"
	"encoding/json"
	"time"

	"ideanest/demodata"
	"ideanest/metrics"
	"ideanest/models"

	"go.uber.org/zap"
)

// The three auxiliary analyses share one contract: in demo mode they skip the
// network entirely; in live mode they attempt one request and fall back to
// generated data on any failure, without flipping the session mode. A broken
// competitor lookup is local to that feature, not a verdict on the session.

// Refine returns refinement suggestions for the session's idea.
func (o *Orchestrator) Refine(ctx context.Context) models.RefinementData {
	title, description := o.Session.Idea()

	if o.Session.Mode() == ModeDemo {
		o.wait(ctx, o.DemoDelay)
		metrics.AnalysisRequestsTotal.WithLabelValues(string(models.AnalysisRefinement), "demo").Inc()
		return demodata.GenerateRefinements(title)
	}

	resp, body, err := o.post(ctx, "/refine", map[string]string{
		"title":       title,
		"description": description,
	})
	if err == nil && resp.StatusCode >= 200 && resp.StatusCode < 300 {
		var data models.RefinementData
		if json.Unmarshal(body, &data) == nil && len(data.Refinements) > 0 {
			metrics.AnalysisRequestsTotal.WithLabelValues(string(models.AnalysisRefinement), "remote").Inc()
			return data
		}
	}

	o.Logger.Warn("refinement request failed, serving demo refinements", zap.Error(err))
	o.analysisFallback(ctx, models.AnalysisRefinement, "Using demo refinements")
	return demodata.GenerateRefinements(title)
}

// Competitors returns a competitive landscape for the session's idea.
func (o *Orchestrator) Competitors(ctx context.Context) models.CompetitorData {
	title, description := o.Session.Idea()

	if o.Session.Mode() == ModeDemo {
		o.wait(ctx, o.DemoDelay)
		metrics.AnalysisRequestsTotal.WithLabelValues(string(models.AnalysisCompetitors), "demo").Inc()
		return demodata.GenerateCompetitors(title)
	}

	resp, body, err := o.post(ctx, "/competitors", map[string]string{
		"title":       title,
		"description": description,
	})
	if err == nil && resp.StatusCode >= 200 && resp.StatusCode < 300 {
		var data models.CompetitorData
		if json.Unmarshal(body, &data) == nil && len(data.Competitors) > 0 {
			metrics.AnalysisRequestsTotal.WithLabelValues(string(models.AnalysisCompetitors), "remote").Inc()
			return data
		}
	}

	o.Logger.Warn("competitor analysis failed, serving demo competitors", zap.Error(err))
	o.analysisFallback(ctx, models.AnalysisCompetitors, "Using demo competitor analysis")
	return demodata.GenerateCompetitors(title)
}

// MarketStrategy returns a go-to-market plan for the session's idea.
func (o *Orchestrator) MarketStrategy(ctx context.Context) models.MarketStrategyData {
	title, description := o.Session.Idea()

	if o.Session.Mode() == ModeDemo {
		o.wait(ctx, o.DemoDelay)
		metrics.AnalysisRequestsTotal.WithLabelValues(string(models.AnalysisMarketStrategy), "demo").Inc()
		return demodata.GenerateMarketStrategy(title)
	}

	resp, body, err := o.post(ctx, "/market-strategy", map[string]string{
		"title":       title,
		"description": description,
	})
	if err == nil && resp.StatusCode >= 200 && resp.StatusCode < 300 {
		var data models.MarketStrategyData
		if json.Unmarshal(body, &data) == nil && data.TargetAudience.Primary != "" {
			metrics.AnalysisRequestsTotal.WithLabelValues(string(models.AnalysisMarketStrategy), "remote").Inc()
			return data
		}
	}

	o.Logger.Warn("market strategy request failed, serving demo strategy", zap.Error(err))
	o.analysisFallback(ctx, models.AnalysisMarketStrategy, "Using demo market strategy")
	return demodata.GenerateMarketStrategy(title)
}

// analysisFallback applies the short retry delay, emits the informational
// notification, and counts the fallback. The session mode is left untouched.
func (o *Orchestrator) analysisFallback(ctx context.Context, kind models.AnalysisType, message string) {
	o.wait(ctx, o.RetryDelay)
	metrics.AnalysisRequestsTotal.WithLabelValues(string(kind), "demo").Inc()
	o.Notifier.Notify(Notification{
		Level:    LevelInfo,
		Message:  message,
		Duration: 3 * time.Second,
	})
}
