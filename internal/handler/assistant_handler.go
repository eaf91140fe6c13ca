package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"termsheet/internal/middleware"
	"termsheet/internal/service"
)

// AssistantRequest is the body of an assistant query.
type AssistantRequest struct {
	Query string `json:"query" binding:"required" example:"What does a 1x non-participating liquidation preference mean?"`
}

// AssistantResponse carries the assistant's answer.
type AssistantResponse struct {
	Answer string `json:"answer"`
}

// AssistantHandler handles the term-sheet assistant endpoint.
type AssistantHandler struct {
	assistantService service.AssistantService
}

// NewAssistantHandler creates a new AssistantHandler.
func NewAssistantHandler(assistantService service.AssistantService) *AssistantHandler {
	return &AssistantHandler{assistantService: assistantService}
}

// Ask handles POST /api/v1/assistant
// @Summary Ask the term-sheet assistant
// @Tags assistant
// @Accept json
// @Produce json
// @Param body body AssistantRequest true "Question"
// @Success 200 {object} APIResponse{data=AssistantResponse}
// @Failure 400 {object} APIResponse "Empty query"
// @Failure 502 {object} APIResponse "Completion API unavailable"
// @Security BearerAuth
// @Router /assistant [post]
func (h *AssistantHandler) Ask(c *gin.Context) {
	var req AssistantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "query is required")
		return
	}

	answer, err := h.assistantService.Ask(c.Request.Context(), req.Query)
	if err != nil {
		status, _, _ := MapDomainError(err)
		if status >= 500 {
			requestID, _ := c.Get(middleware.ContextKeyRequestID)
			log.Printf("[%s] handler.AssistantHandler.Ask: %v", requestID, err)
			RespondError(c, http.StatusBadGateway, "ASSISTANT_UNAVAILABLE", "the assistant could not answer right now")
			return
		}
		HandleError(c, err)
		return
	}
	RespondOK(c, AssistantResponse{Answer: answer})
}
