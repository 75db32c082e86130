package http

import (
	"net/http"

	"project_travelSafe/internal/entities"
	apperrors "project_travelSafe/internal/errors"
	"project_travelSafe/internal/infrastructure"
	"project_travelSafe/internal/logger"
	"project_travelSafe/internal/usecases"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	chatService *usecases.ChatService
	log         logger.Logger
}

func NewHandler(chatService *usecases.ChatService, log logger.Logger) *Handler {
	return &Handler{
		chatService: chatService,
		log:         log,
	}
}

func SetupRoutes(r *gin.Engine, chatService *usecases.ChatService, auth *usecases.AuthUsecase, stats *infrastructure.Stats, middleware *Middleware, log logger.Logger) {
	h := NewHandler(chatService, log)
	adminHandler := NewAdminHandler(stats)

	// Apply Security Middleware
	r.Use(SecurityHeaders())
	r.Use(RequestSizeLimiter(1 << 20)) // 1MB max request size
	r.Use(middleware.CORSMiddleware())

	// Public Routes
	api := r.Group("/api")
	{
		api.POST("/chat", middleware.RateLimitPerClient(5, 10), h.HandleChat)
		api.GET("/safety", h.GetSafetyFacts)
		api.GET("/hotels", h.GetHotels)
	}

	// Public Auth Routes
	if auth != nil {
		r.POST("/api/auth/login", func(c *gin.Context) {
			var loginReq struct {
				Username string `json:"username"`
				Password string `json:"password"`
			}
			if err := c.ShouldBindJSON(&loginReq); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
				return
			}
			token, err := auth.Login(loginReq.Username, loginReq.Password)
			if err != nil {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
				return
			}
			c.JSON(http.StatusOK, gin.H{"token": token})
		})

		// Admin-only Routes
		admin := r.Group("/api/admin")
		admin.Use(middleware.AuthRequired())
		{
			admin.GET("/stats", adminHandler.GetStats)
		}
	}
}

type chatRequest struct {
	Messages []entities.Message `json:"messages"`
	// Origin is the caller's "lat,lng"; when present the geo safety
	// path runs for detected destinations.
	Origin string `json:"origin"`
}

// HandleChat runs one chat turn. Safety-path failures still return
// 200 with safetyData null; model failures are a server error.
func (h *Handler) HandleChat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid messages format"})
		return
	}

	if len(req.Messages) > MaxHistoryMessages {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Too many messages"})
		return
	}
	for i := range req.Messages {
		req.Messages[i].Content = SanitizeString(req.Messages[i].Content)
		if !ValidateLength(req.Messages[i].Content, 0, MaxMessageLength) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Message too long"})
			return
		}
	}

	result, err := h.chatService.HandleTurn(c.Request.Context(), req.Messages, req.Origin, "web")
	if err != nil {
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid messages format"})
			return
		}
		h.log.WithError(err).Error("chat turn failed", nil)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to process request"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"response":    result.ResponseText,
		"segments":    usecases.FormatSegments(result.ResponseText),
		"safetyData":  result.SafetyData,
		"placeSafety": result.PlaceSafety,
		"routes":      result.Routes,
		"destination": result.Destination,
	})
}
