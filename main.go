package main

import (
	"log"
	"net/http"
	"os"

	"orgsite-cms/config"
	"orgsite-cms/handlers"
	"orgsite-cms/media"
	"orgsite-cms/middleware"
	"orgsite-cms/repositories"
	"orgsite-cms/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	// Initialize database
	db := config.InitDB()

	// Initialize upload storage
	uploadRoot := os.Getenv("UPLOAD_ROOT")
	if uploadRoot == "" {
		uploadRoot = "static"
	}
	mediaStore, err := media.NewStore(uploadRoot)
	if err != nil {
		log.Fatalf("Failed to prepare upload directories: %v", err)
	}

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	newsRepo := repositories.NewNewsRepository(db)
	commentRepo := repositories.NewCommentRepository(db)
	eventRepo := repositories.NewEventRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo)
	newsService := services.NewNewsService(newsRepo, commentRepo, mediaStore)
	eventService := services.NewEventService(eventRepo, mediaStore)
	searchService := services.NewSearchService(newsRepo, eventRepo)
	contactService := services.NewContactService(config.LoadMailConfig())

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	newsHandler := handlers.NewNewsHandler(newsService)
	eventHandler := handlers.NewEventHandler(eventService)
	searchHandler := handlers.NewSearchHandler(searchService)
	contactHandler := handlers.NewContactHandler(contactService)

	// Setup router
	router := gin.Default()

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	// Uploaded media
	router.Static("/uploads", uploadRoot+"/uploads")

	// API routes
	v1 := router.Group("/api/v1")
	{
		// Auth routes
		auth := v1.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
		}

		// Public routes
		public := v1.Group("/public")
		{
			public.GET("/news", newsHandler.GetNewsList)
			public.GET("/news/:id", newsHandler.GetNewsDetail)
			public.POST("/news/:id/comments", newsHandler.AddComment)
			public.GET("/events", eventHandler.GetEvents)
			public.GET("/events/:id", eventHandler.GetEvent)
			public.GET("/search", searchHandler.Search)
			public.POST("/contact", contactHandler.SubmitContact)
		}

		// Protected routes
		protected := v1.Group("/")
		protected.Use(middleware.AuthMiddleware())
		{
			// Profile
			protected.GET("/profile", authHandler.GetProfile)

			// Admin routes
			admin := protected.Group("/admin")
			admin.Use(middleware.RequireAdmin())
			{
				admin.POST("/register", authHandler.Register)

				news := admin.Group("/news")
				{
					news.POST("", newsHandler.CreateNews)
					news.PUT("/:id", newsHandler.UpdateNews)
					news.DELETE("/:id", newsHandler.DeleteNews)
					news.DELETE("/images/:id", newsHandler.DeleteNewsImage)
					news.DELETE("/videos/:id", newsHandler.DeleteNewsVideo)
				}

				admin.DELETE("/comments/:id", newsHandler.DeleteComment)

				events := admin.Group("/events")
				{
					events.POST("", eventHandler.CreateEvent)
					events.PUT("/:id", eventHandler.UpdateEvent)
					events.DELETE("/:id", eventHandler.DeleteEvent)
				}
			}
		}
	}

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	log.Fatal(http.ListenAndServe(":"+port, router))
}
