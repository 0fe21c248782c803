package controllers

import (
	"errors"
	"net/http"
	"time"

	"ideanest/db"
	"ideanest/metrics"
	"ideanest/models"
	"ideanest/services"
	"ideanest/structs"
	"ideanest/utils"
	"ideanest/websocket"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const minDescriptionLength = 150

// EvaluateController handles idea evaluation and retrieval. Persistence and
// the activity feed are best effort: a dead store or an empty feed never
// fails a request that produced a valid evaluation.
type EvaluateController struct {
	Service *services.EvaluationService
	Ideas   *db.IdeaStore
	Feed    *websocket.ActivityFeed
	Logger  *zap.Logger
}

func (ec *EvaluateController) Evaluate(ctx *gin.Context) {
	var request structs.EvaluateRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Title and description are required"})
		return
	}

	if len(request.Description) < minDescriptionLength {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Description must be at least 150 characters"})
		return
	}

	ec.Feed.Broadcast(websocket.ActivityEvent{Type: "evaluation_started", Title: request.Title})

	evaluation, err := ec.Service.Evaluate(ctx.Request.Context(), request.Title, request.Description)
	if err != nil {
		var ue *services.UpstreamError
		if errors.As(err, &ue) {
			ec.Logger.Warn("model provider rejected evaluation",
				zap.Int("status", ue.Status),
				zap.String("message", ue.Message))
			ctx.JSON(ue.Status, gin.H{"error": ue.Message, "details": ue.Details})
			return
		}
		ec.Logger.Error("evaluation failed", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error during evaluation"})
		return
	}

	ideaId := utils.NewIdeaID()
	ec.Feed.Broadcast(websocket.ActivityEvent{Type: "evaluation_completed", IdeaID: ideaId, Title: request.Title})

	if ec.Ideas != nil {
		record := models.IdeaRecord{
			Title:       request.Title,
			Description: request.Description,
			Evaluation:  evaluation,
			CreatedAt:   time.Now().UTC(),
		}
		if err := ec.Ideas.Save(ctx.Request.Context(), ideaId, record); err != nil {
			ec.Logger.Warn("failed to persist idea", zap.String("ideaId", ideaId), zap.Error(err))
		} else {
			ec.Feed.Broadcast(websocket.ActivityEvent{Type: "evaluation_stored", IdeaID: ideaId, Title: request.Title})
		}
	}

	metrics.EvaluationsTotal.WithLabelValues("live").Inc()
	ctx.JSON(http.StatusOK, gin.H{
		"ideaId":     ideaId,
		"title":      request.Title,
		"evaluation": evaluation,
	})
}

func (ec *EvaluateController) GetIdea(ctx *gin.Context) {
	id := ctx.Param("id")

	record, err := ec.Ideas.Get(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, db.ErrIdeaNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Idea not found"})
			return
		}
		ec.Logger.Error("idea lookup failed", zap.String("ideaId", id), zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"ideaId":      id,
		"title":       record.Title,
		"description": record.Description,
		"evaluation":  record.Evaluation,
		"createdAt":   record.CreatedAt,
	})
}
