package handler

import (
	"net/http"

	"stackit/internal/microservices/http-api/dto"
	"stackit/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

type QuestionHandler struct {
	questionService service.QuestionService
	flagService     service.FlagService
}

func NewQuestionHandler(questionService service.QuestionService, flagService service.FlagService) *QuestionHandler {
	return &QuestionHandler{
		questionService: questionService,
		flagService:     flagService,
	}
}

// RegisterRoutes registers question routes. Reads are public, writes go on the
// authenticated group.
func (h *QuestionHandler) RegisterRoutes(public, protected gin.IRoutes) {
	public.GET("/questions", h.List)
	public.GET("/questions/:id", h.GetByID)

	protected.POST("/questions", h.Create)
	protected.POST("/questions/:id/flag", h.Flag)
}

// Create posts a question authored by the caller
// POST /questions
func (h *QuestionHandler) Create(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req dto.CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	question, err := h.questionService.Create(ctx, userID, req.Title, req.Description, req.Tags)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.FromModelToQuestionResponse(question))
}

// List returns questions newest first
// GET /questions?tag=go
func (h *QuestionHandler) List(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	questions, err := h.questionService.List(ctx, c.Query("tag"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromModelsToQuestionList(questions))
}

// GetByID returns one question with its answers
// GET /questions/:id
func (h *QuestionHandler) GetByID(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	question, err := h.questionService.Get(ctx, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromModelToQuestionResponse(question))
}

// Flag reports a question
// POST /questions/:id/flag
func (h *QuestionHandler) Flag(c *gin.Context) {
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

	questionID := c.Param("id")
	if err := h.flagService.FlagQuestion(ctx, userID, questionID, req.Reason); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "Question flagged successfully",
		"question_id": questionID,
		"reason":      req.Reason,
	})
}
