package controllers

import (
	"errors"
	"net/http"

	"ideanest/metrics"
	"ideanest/models"
	"ideanest/services"
	"ideanest/structs"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AnalysisController serves the follow-up analyses on an already evaluated
// idea: refinements, competitor landscape, and go-to-market strategy.
type AnalysisController struct {
	Service *services.EvaluationService
	Logger  *zap.Logger
}

func (ac *AnalysisController) Refine(ctx *gin.Context) {
	ac.handle(ctx, models.AnalysisRefinement, func(c *gin.Context, req structs.AnalysisRequest) (any, error) {
		return ac.Service.Refine(c.Request.Context(), req.Title, req.Description)
	})
}

func (ac *AnalysisController) Competitors(ctx *gin.Context) {
	ac.handle(ctx, models.AnalysisCompetitors, func(c *gin.Context, req structs.AnalysisRequest) (any, error) {
		return ac.Service.Competitors(c.Request.Context(), req.Title, req.Description)
	})
}

func (ac *AnalysisController) MarketStrategy(ctx *gin.Context) {
	ac.handle(ctx, models.AnalysisMarketStrategy, func(c *gin.Context, req structs.AnalysisRequest) (any, error) {
		return ac.Service.MarketStrategy(c.Request.Context(), req.Title, req.Description)
	})
}

func (ac *AnalysisController) handle(ctx *gin.Context, kind models.AnalysisType, run func(*gin.Context, structs.AnalysisRequest) (any, error)) {
	var request structs.AnalysisRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Title and description are required"})
		return
	}

	result, err := run(ctx, request)
	if err != nil {
		var ue *services.UpstreamError
		if errors.As(err, &ue) {
			ctx.JSON(ue.Status, gin.H{"error": ue.Message, "details": ue.Details})
			return
		}
		ac.Logger.Error("analysis failed", zap.String("type", string(kind)), zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error during analysis"})
		return
	}

	metrics.AnalysisRequestsTotal.WithLabelValues(string(kind), "remote").Inc()
	ctx.JSON(http.StatusOK, result)
}
