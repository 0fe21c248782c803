package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"ideanest/models"

	"go.uber.org/zap"
)

// Refine asks for three concrete refinement directions.
func (s *EvaluationService) Refine(ctx context.Context, title, description string) (models.RefinementData, error) {
	var data models.RefinementData

	raw, err := s.provider.Generate(ctx, refinementSystemPrompt, ideaPrompt(title, description))
	if err != nil {
		return data, err
	}

	if err := json.Unmarshal([]byte(CleanModelOutput(raw)), &data); err != nil {
		s.logger.Warn("failed to parse refinements", zap.String("title", title), zap.Error(err))
		return data, fmt.Errorf("failed to parse refinement data: %w", err)
	}
	if len(data.Refinements) == 0 {
		return data, errors.New("model returned no refinements")
	}
	return data, nil
}

// Competitors asks for the competitive landscape around the idea.
func (s *EvaluationService) Competitors(ctx context.Context, title, description string) (models.CompetitorData, error) {
	var data models.CompetitorData

	raw, err := s.provider.Generate(ctx, competitorsSystemPrompt, ideaPrompt(title, description))
	if err != nil {
		return data, err
	}

	if err := json.Unmarshal([]byte(CleanModelOutput(raw)), &data); err != nil {
		s.logger.Warn("failed to parse competitors", zap.String("title", title), zap.Error(err))
		return data, fmt.Errorf("failed to parse competitor data: %w", err)
	}
	if len(data.Competitors) == 0 {
		return data, errors.New("model returned no competitors")
	}
	return data, nil
}

// MarketStrategy asks for a staged go-to-market plan.
func (s *EvaluationService) MarketStrategy(ctx context.Context, title, description string) (models.MarketStrategyData, error) {
	var data models.MarketStrategyData

	raw, err := s.provider.Generate(ctx, marketStrategySystemPrompt, ideaPrompt(title, description))
	if err != nil {
		return data, err
	}

	if err := json.Unmarshal([]byte(CleanModelOutput(raw)), &data); err != nil {
		s.logger.Warn("failed to parse market strategy", zap.String("title", title), zap.Error(err))
		return data, fmt.Errorf("failed to parse market strategy data: %w", err)
	}
	if data.TargetAudience.Primary == "" {
		return data, errors.New("model returned an empty market strategy")
	}
	return data, nil
}
