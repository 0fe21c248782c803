package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"ideanest/models"

	"github.com/xeipuuv/gojsonschema"
	"go.uber.org/zap"
)

// evaluationSchema is what a well-formed model answer must look like before
// it is relayed to clients. Scores are bounded at 100 because some models
// answer on a 0-100 scale; the display normalization happens downstream.
const evaluationSchema = `{
  "type": "object",
  "required": ["problemStatement", "existingSolutions", "proposedSolution", "marketPotential",
               "swotAnalysis", "businessModel", "pros", "cons", "improvements", "pitchSummary", "scores"],
  "properties": {
    "problemStatement": {"type": "string", "minLength": 1},
    "existingSolutions": {"type": "string", "minLength": 1},
    "proposedSolution": {"type": "string", "minLength": 1},
    "marketPotential": {"type": "string", "minLength": 1},
    "swotAnalysis": {
      "type": "object",
      "required": ["strengths", "weaknesses", "opportunities", "threats"],
      "properties": {
        "strengths": {"type": "array", "items": {"type": "string"}, "minItems": 3},
        "weaknesses": {"type": "array", "items": {"type": "string"}, "minItems": 3},
        "opportunities": {"type": "array", "items": {"type": "string"}, "minItems": 3},
        "threats": {"type": "array", "items": {"type": "string"}, "minItems": 3}
      }
    },
    "businessModel": {"type": "string", "minLength": 1},
    "pros": {"type": "array", "items": {"type": "string"}, "minItems": 3},
    "cons": {"type": "array", "items": {"type": "string"}, "minItems": 3},
    "improvements": {"type": "array", "items": {"type": "string"}, "minItems": 3},
    "pitchSummary": {"type": "string", "minLength": 1},
    "scores": {
      "type": "object",
      "required": ["innovation", "feasibility", "scalability"],
      "properties": {
        "innovation": {"type": "number", "minimum": 0, "maximum": 100},
        "feasibility": {"type": "number", "minimum": 0, "maximum": 100},
        "scalability": {"type": "number", "minimum": 0, "maximum": 100}
      }
    }
  }
}`

var evaluationSchemaLoader = gojsonschema.NewStringLoader(evaluationSchema)

// EvaluationService turns ideas into structured reports via the configured
// model provider.
type EvaluationService struct {
	provider TextGenerator
	logger   *zap.Logger
}

func NewEvaluationService(provider TextGenerator, logger *zap.Logger) *EvaluationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EvaluationService{provider: provider, logger: logger}
}

func ideaPrompt(title, description string) string {
	return fmt.Sprintf("Title: %s\n\nIdea Description: %s", title, description)
}

// Evaluate asks the provider for a full VC-style report and validates the
// answer against the evaluation schema before returning it.
func (s *EvaluationService) Evaluate(ctx context.Context, title, description string) (models.EvaluationData, error) {
	var eval models.EvaluationData

	raw, err := s.provider.Generate(ctx, evaluationSystemPrompt, ideaPrompt(title, description))
	if err != nil {
		return eval, err
	}

	cleaned := CleanModelOutput(raw)
	if err := validateEvaluationJSON(cleaned); err != nil {
		s.logger.Warn("model returned invalid evaluation",
			zap.String("title", title),
			zap.Error(err))
		return eval, fmt.Errorf("failed to parse evaluation data: %w", err)
	}

	if err := json.Unmarshal([]byte(cleaned), &eval); err != nil {
		return eval, fmt.Errorf("failed to parse evaluation data: %w", err)
	}

	s.logger.Info("evaluation successful", zap.String("title", title))
	return eval, nil
}

func validateEvaluationJSON(doc string) error {
	result, err := gojsonschema.Validate(evaluationSchemaLoader, gojsonschema.NewStringLoader(doc))
	if err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			msgs = append(msgs, e.String())
		}
		return fmt.Errorf("evaluation does not match expected shape: %s", strings.Join(msgs, "; "))
	}
	return nil
}
