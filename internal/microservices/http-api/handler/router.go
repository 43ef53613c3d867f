package handler

import (
	"log/slog"
	"net/http"

	"stackit/internal/microservices/http-api/middleware"
	"stackit/internal/microservices/http-api/service"
	"stackit/internal/microservices/websocket"

	"github.com/gin-gonic/gin"
)

// RouterDeps is everything the HTTP surface is built from.
type RouterDeps struct {
	Auth          service.AuthService
	Users         service.UserService
	Questions     service.QuestionService
	Answers       service.AnswerService
	Flags         service.FlagService
	Notifications service.NotificationService
	Registry      *websocket.Registry
	Limiter       middleware.Limiter
	CORSOrigins   []string
	Logger        *slog.Logger
}

func NewRouter(d RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	r.Use(middleware.CORS(d.CORSOrigins))

	// long-lived notification channel, not subject to the request budget
	r.GET("/ws/:user_id", websocket.WSHandler(d.Registry))

	r.GET("/check-conn", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message":               "API is alive",
			"notification_channels": d.Registry.Count(),
		})
	})

	api := r.Group("/")
	if d.Limiter != nil {
		api.Use(middleware.RateLimit(d.Limiter, d.Logger))
	}
	protected := api.Group("/", middleware.AuthMiddleware(d.Auth))

	NewAuthHandler(d.Auth).RegisterRoutes(api)
	NewUserHandler(d.Users).RegisterRoutes(api)
	NewQuestionHandler(d.Questions, d.Flags).RegisterRoutes(api, protected)
	NewAnswerHandler(d.Answers, d.Flags).RegisterRoutes(protected)
	NewNotificationHandler(d.Notifications).RegisterRoutes(protected)

	return r
}
