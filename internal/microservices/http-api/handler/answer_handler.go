package handler

import (
	"net/http"
	"strconv"

	"stackit/internal/microservices/http-api/dto"
	"stackit/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

type AnswerHandler struct {
	answerService service.AnswerService
	flagService   service.FlagService
}

func NewAnswerHandler(answerService service.AnswerService, flagService service.FlagService) *AnswerHandler {
	return &AnswerHandler{
		answerService: answerService,
		flagService:   flagService,
	}
}

func (h *AnswerHandler) RegisterRoutes(router gin.IRoutes) {
	router.POST("/answers", h.Create)
	router.POST("/answers/:id/vote", h.Vote)
	router.POST("/answers/:id/accept", h.Accept)
	router.PATCH("/answers/:id/flag", h.Flag)
}

// Create posts an answer; the question author gets notified
// POST /answers
func (h *AnswerHandler) Create(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req dto.CreateAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	answer, err := h.answerService.Post(ctx, userID, req.QuestionID, req.Content)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":   "Answer posted successfully",
		"answer_id": answer.ID,
	})
}

// Vote records an up or down vote
// POST /answers/:id/vote?vote=1
func (h *AnswerHandler) Vote(c *gin.Context) {
	vote, err := strconv.Atoi(c.Query("vote"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": service.ErrInvalidVote.Error()})
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.answerService.Vote(ctx, c.Param("id"), vote); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Vote recorded"})
}

// Accept marks an answer accepted
// POST /answers/:id/accept
func (h *AnswerHandler) Accept(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.answerService.Accept(ctx, userID, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Answer accepted"})
}

// Flag reports an answer
// PATCH /answers/:id/flag
func (h *AnswerHandler) Flag(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req dto.FlagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	answerID := c.Param("id")
	if err := h.flagService.FlagAnswer(ctx, userID, answerID, req.Reason); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Answer flagged successfully",
		"answer_id": answerID,
		"reason":    req.Reason,
	})
}
