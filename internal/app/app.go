package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	controller "streamhub/internal/controller/http"
	"streamhub/internal/entity"
	"streamhub/internal/repo/persistent"
	"streamhub/internal/usecase"
	"streamhub/pkg/config"
	"streamhub/pkg/jwt"
	"streamhub/pkg/logger"
	"streamhub/pkg/metrics"
	"streamhub/pkg/middleware"
	"streamhub/pkg/queue"
	"streamhub/pkg/s3"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "streamhub/docs" // Swagger docs
)

// Run wires the repositories, usecases and handlers, starts the HTTP server
// and blocks until SIGINT/SIGTERM, then shuts everything down.
func Run(cfg *config.Config, log *logger.Logger, db *gorm.DB, s3Client *s3.Client, queueClient *queue.Client, redisClient *redis.Client) {
	jwtService := jwt.NewService(cfg.JWTSecret)

	// Initialize repositories
	actorRepo := persistent.NewActorRepository(db)
	directorRepo := persistent.NewDirectorRepository(db)
	genreRepo := persistent.NewGenreRepository(db)
	movieRepo := persistent.NewMovieRepository(db)
	seriesRepo := persistent.NewSeriesRepository(db)
	episodeRepo := persistent.NewEpisodeRepository(db)
	userRepo := persistent.NewUserRepository(db)
	subuserRepo := persistent.NewSubuserRepository(db)
	adminRepo := persistent.NewAdminRepository(db)
	watchRepo := persistent.NewWatchRepository(db)
	analyticsRepo := persistent.NewAnalyticsRepository(db)

	// Initialize use cases
	authUseCase := usecase.NewAuthUseCase(userRepo, jwtService, queueClient, log)
	userUseCase := usecase.NewUserUseCase(db, userRepo, adminRepo, queueClient, log)
	subuserUseCase := usecase.NewSubuserUseCase(db, userRepo, subuserRepo, jwtService, cfg.SubuserLimit, log)
	actorUseCase := usecase.NewActorUseCase(actorRepo, log)
	directorUseCase := usecase.NewDirectorUseCase(directorRepo, log)
	genreUseCase := usecase.NewGenreUseCase(genreRepo, log)
	movieUseCase := usecase.NewMovieUseCase(movieRepo, actorRepo, s3Client, log)
	seriesUseCase := usecase.NewSeriesUseCase(seriesRepo, episodeRepo, actorRepo, s3Client, log)
	watchUseCase := usecase.NewWatchUseCase(watchRepo, movieRepo, episodeRepo, log)
	analyticsUseCase := usecase.NewAnalyticsUseCase(analyticsRepo, redisClient, log)

	// Initialize HTTP handlers
	authHandler := controller.NewAuthHandler(authUseCase, log)
	userHandler := controller.NewUserHandler(userUseCase, log)
	subuserHandler := controller.NewSubuserHandler(subuserUseCase, log)
	actorHandler := controller.NewActorHandler(actorUseCase, log)
	directorHandler := controller.NewDirectorHandler(directorUseCase, log)
	genreHandler := controller.NewGenreHandler(genreUseCase, log)
	movieHandler := controller.NewMovieHandler(movieUseCase, log)
	seriesHandler := controller.NewSeriesHandler(seriesUseCase, log)
	watchHandler := controller.NewWatchHandler(watchUseCase, log)
	analyticsHandler := controller.NewAnalyticsHandler(analyticsUseCase, log)

	// Setup router
	r := gin.Default()
	r.Use(middleware.MetricsMiddleware())

	// CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:3000", "*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * 3600,
	}))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Prometheus metrics
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	// Public auth routes
	auth := r.Group("/api/v1/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/verify", authHandler.VerifyAccount)
		auth.POST("/login", authHandler.Login)
	}

	api := r.Group("/api/v1")
	api.Use(middleware.AuthMiddleware(jwtService))
	api.Use(middleware.RateLimitMiddleware(redisClient, cfg.RateLimitRequests, cfg.RateLimitWindow))

	api.GET("/auth/me", authHandler.Me)

	superOnly := middleware.RequireRole(string(entity.RoleSuperUser))
	viewers := middleware.RequireRole(string(entity.RoleRegularUser), string(entity.RoleSubUser))

	// Catalog reads are open to any authenticated role; writes are admin-only
	{
		api.GET("/actors", actorHandler.ListActors)
		api.GET("/actors/:id", actorHandler.GetActor)
		api.POST("/actors", superOnly, actorHandler.CreateActor)
		api.PUT("/actors/:id", superOnly, actorHandler.UpdateActor)
		api.DELETE("/actors/:id", superOnly, actorHandler.DeleteActor)

		api.GET("/directors", directorHandler.ListDirectors)
		api.GET("/directors/:id", directorHandler.GetDirector)
		api.POST("/directors", superOnly, directorHandler.CreateDirector)
		api.PUT("/directors/:id", superOnly, directorHandler.UpdateDirector)
		api.DELETE("/directors/:id", superOnly, directorHandler.DeleteDirector)

		api.GET("/genres", genreHandler.ListGenres)
		api.GET("/genres/:id", genreHandler.GetGenre)
		api.POST("/genres", superOnly, genreHandler.CreateGenre)
		api.PUT("/genres/:id", superOnly, genreHandler.RenameGenre)
		api.DELETE("/genres/:id", superOnly, genreHandler.DeleteGenre)

		api.GET("/movies", movieHandler.ListMovies)
		api.GET("/movies/:id", movieHandler.GetMovie)
		api.POST("/movies", superOnly, movieHandler.CreateMovie)
		api.PUT("/movies/:id", superOnly, movieHandler.UpdateMovie)
		api.DELETE("/movies/:id", superOnly, movieHandler.DeleteMovie)
		api.GET("/movies/:id/actors", actorHandler.MovieCast)
		api.POST("/movies/:id/actors/:actorID", superOnly, movieHandler.AddActor)
		api.DELETE("/movies/:id/actors/:actorID", superOnly, movieHandler.RemoveActor)
		api.POST("/movies/:id/poster", superOnly, movieHandler.UploadPoster)

		api.GET("/series", seriesHandler.ListSeries)
		api.GET("/series/:id", seriesHandler.GetSeries)
		api.POST("/series", superOnly, seriesHandler.CreateSeries)
		api.PUT("/series/:id", superOnly, seriesHandler.UpdateSeries)
		api.DELETE("/series/:id", superOnly, seriesHandler.DeleteSeries)
		api.GET("/series/:id/actors", actorHandler.SeriesCast)
		api.POST("/series/:id/actors/:actorID", superOnly, seriesHandler.AddActor)
		api.DELETE("/series/:id/actors/:actorID", superOnly, seriesHandler.RemoveActor)
		api.POST("/series/:id/poster", superOnly, seriesHandler.UploadPoster)

		api.GET("/series/:id/episodes", seriesHandler.ListEpisodes)
		api.POST("/series/:id/episodes", superOnly, seriesHandler.CreateEpisode)
		api.GET("/episodes", seriesHandler.SearchEpisodes)
		api.GET("/episodes/:id", seriesHandler.GetEpisode)
		api.PUT("/episodes/:id", superOnly, seriesHandler.RenameEpisode)
		api.DELETE("/episodes/:id", superOnly, seriesHandler.DeleteEpisode)
	}

	// Account administration
	{
		api.GET("/users", superOnly, userHandler.ListUsers)
		api.GET("/users/:id", superOnly, userHandler.GetUser)
		api.PUT("/users/:id", superOnly, userHandler.UpdateUser)
		api.DELETE("/users/:id", superOnly, userHandler.DeleteUser)
		api.PUT("/users/:id/active", superOnly, userHandler.SetActive)
		api.POST("/users/:id/promote", superOnly, userHandler.PromoteToAdmin)
		api.POST("/users/:id/demote", superOnly, userHandler.DemoteAdmin)
		api.GET("/admins", superOnly, userHandler.ListAdmins)
	}

	// Subuser profiles belong to the calling account
	{
		api.POST("/subusers", viewers, subuserHandler.CreateSubuser)
		api.GET("/subusers", viewers, subuserHandler.ListSubusers)
		api.GET("/subusers/by-name/:name", viewers, subuserHandler.GetSubuserByName)
		api.POST("/subusers/:id/token", middleware.RequireRole(string(entity.RoleRegularUser)), subuserHandler.SubuserToken)
		api.PUT("/subusers/:id", viewers, subuserHandler.RenameSubuser)
		api.DELETE("/subusers/:id", viewers, subuserHandler.DeleteSubuser)
	}

	// Watch history and ratings
	{
		api.POST("/watch/movies/:id", viewers, watchHandler.WatchMovie)
		api.POST("/watch/episodes/:id", viewers, watchHandler.WatchEpisode)
		api.GET("/watch/movies", viewers, watchHandler.MovieHistory)
		api.GET("/watch/episodes", viewers, watchHandler.EpisodeHistory)
	}

	// Analytics
	{
		api.GET("/analytics/movies/least-popular", analyticsHandler.LeastPopularMovies)
		api.GET("/analytics/movies/best-rated", analyticsHandler.BestRatedMovies)
		api.GET("/analytics/movies/worst-rated", analyticsHandler.WorstRatedMovies)
		api.GET("/analytics/movies/recommended", viewers, analyticsHandler.RecommendedMovies)
		api.GET("/analytics/series/least-popular", analyticsHandler.LeastPopularSeries)
		api.GET("/analytics/series/most-watched", analyticsHandler.MostWatchedSeries)
		api.GET("/analytics/series/best-rated", analyticsHandler.BestRatedSeries)
		api.GET("/analytics/series/worst-rated", analyticsHandler.WorstRatedSeries)
		api.GET("/analytics/series/recommended", viewers, analyticsHandler.RecommendedSeries)
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// Start server in a goroutine
	go func() {
		log.Info("streamhub starting on port %s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down streamhub...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Close database connection
	sqlDB, err := db.DB()
	if err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Error("Error closing database: %v", err)
		}
	}

	// Close Redis connection
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Error closing Redis: %v", err)
		}
	}

	// Close RabbitMQ connection
	if queueClient != nil {
		queueClient.Close()
	}

	// Shutdown server
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
		panic(err)
	}

	log.Info("streamhub exited")
}
