package server

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mkowalski/cycling-events-api/config"
	"github.com/mkowalski/cycling-events-api/internal/handlers"
	"github.com/mkowalski/cycling-events-api/internal/middleware"
	"github.com/mkowalski/cycling-events-api/internal/registry"
)

func Start() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %v", err)
	}

	db, err := config.InitDatabase(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %v", err)
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     corsOrigins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	setupRoutes(r, db)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	return r.Run(":" + port)
}

func corsOrigins() []string {
	raw := os.Getenv("CORS_ORIGINS")
	if raw == "" {
		return []string{"http://localhost:5173"}
	}
	origins := strings.Split(raw, ",")
	for i := range origins {
		origins[i] = strings.TrimSpace(origins[i])
	}
	return origins
}

func setupRoutes(r *gin.Engine, db *gorm.DB) {
	r.Use(middleware.DatabaseMiddleware(db))
	r.Use(middleware.RateLimiter())

	signupHandler := handlers.NewSignupHandler(registry.New(db))

	public := r.Group("/v1")
	{
		public.POST("/register", handlers.Register)
		public.POST("/login", handlers.Login)

		eventPublic := public.Group("/events")
		{
			eventPublic.GET("", handlers.ListEvents)
			eventPublic.GET("/:id", handlers.GetEvent)
			eventPublic.GET("/:id/participants", signupHandler.Participants)
		}
	}

	protected := r.Group("/v1")
	protected.Use(middleware.JWTAuthMiddleware())
	{
		eventProtected := protected.Group("/events")
		{
			eventProtected.POST("", handlers.CreateEvent)
			eventProtected.PUT("/:id", handlers.UpdateEvent)
			eventProtected.POST("/:id/signup", signupHandler.SignUp)
			eventProtected.POST("/:id/resignation", signupHandler.Resign)
		}

		protected.GET("/my-events", signupHandler.MyEvents)

		protected.GET("/profile", handlers.GetProfile)
		protected.PUT("/profile", handlers.UpdateProfile)

		bikeProtected := protected.Group("/bikes")
		{
			bikeProtected.POST("", handlers.CreateBike)
			bikeProtected.GET("/:id", handlers.GetBike)
			bikeProtected.PUT("/:id", handlers.UpdateBike)
		}
	}
}
