package handlers

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"vivaleve/internal/application/usecase"
	"vivaleve/internal/infrastructure/security"
)

// NewRouter wires the loopback API consumed by the local UI.
func NewRouter(h *Handler, tokens *security.TokenManager, session *usecase.Session, log *zap.Logger) *gin.Engine {
	r := gin.New()

	r.Use(Recovery(log))
	r.Use(RequestLogger(log))

	config := cors.DefaultConfig()
	config.AllowOrigins = []string{"http://localhost:3000", "http://127.0.0.1:3000"}
	config.AllowCredentials = true
	config.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	config.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	config.MaxAge = 12 * time.Hour
	r.Use(cors.New(config))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now(),
		})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", h.Register)
			auth.POST("/login", h.Login)
		}

		// Static reference data needs no session.
		api.GET("/catalog", h.Catalog)
		api.GET("/content", h.Content)

		user := api.Group("")
		user.Use(AuthMiddleware(tokens, session))
		{
			user.POST("/auth/logout", h.Logout)

			user.GET("/state", h.State)
			user.GET("/events", h.Events)

			user.POST("/xp", h.AwardXP)
			user.POST("/sections/:id/complete", h.CompleteSection)

			user.PUT("/water", h.SetWater)
			user.POST("/water/cups", h.AddCup)
			user.DELETE("/water/cups", h.RemoveCup)

			user.POST("/challenge", h.StartChallenge)
			user.POST("/challenge/logs", h.LogWeight)
			user.DELETE("/challenge/logs/:index", h.DeleteLog)
			user.DELETE("/challenge", h.ResetChallenge)

			user.POST("/shop/buy", h.BuyItem)
			user.POST("/shop/equip", h.EquipItem)

			user.PUT("/profile", h.UpdateProfile)
			user.POST("/onboarding", h.CompleteOnboarding)
			user.POST("/stats", h.UpdateStats)
		}
	}

	return r
}
