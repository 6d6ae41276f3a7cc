package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerfiles "github.com/swaggo/files"
	ginswagger "github.com/swaggo/gin-swagger"

	"github.com/rafabene/biblioteca-backend/docs"
	"github.com/rafabene/biblioteca-backend/internal/domain/guard"
	httphandlers "github.com/rafabene/biblioteca-backend/internal/handlers/http"
	"github.com/rafabene/biblioteca-backend/internal/handlers/middleware"
	"github.com/rafabene/biblioteca-backend/internal/handlers/ws"
	"github.com/rafabene/biblioteca-backend/internal/infrastructure/config"
	"github.com/rafabene/biblioteca-backend/internal/infrastructure/i18n"
	"github.com/rafabene/biblioteca-backend/internal/infrastructure/logging"
	"github.com/rafabene/biblioteca-backend/internal/infrastructure/persistence/postgres"
	"github.com/rafabene/biblioteca-backend/internal/services"
)

//	@title			Biblioteca Backend API
//	@version		1.0
//	@description	REST API for the library catalog
//	@BasePath		/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization

func main() {
	// Carregar variáveis do .env para o ambiente (útil em desenvolvimento;
	// em produção as variáveis já vêm do ambiente)
	_ = godotenv.Load()

	// Carregar configurações
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	// Inicializar logger
	logger := logging.NewSlogLogger(cfg.Logging.Level)
	logger.Info("starting biblioteca backend",
		"env", cfg.Env,
		"version", "dev",
	)

	// Conectar ao banco de dados
	db, err := postgres.NewDatabaseConnection(&cfg.Database, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		log.Fatal(err)
	}

	// Migrar schema
	if err := postgres.Migrate(db); err != nil {
		logger.Error("failed to migrate database", "error", err)
		log.Fatal(err)
	}

	// Inicializar i18n
	i18nService, err := i18n.NewService("./internal/infrastructure/i18n/locales", "en")
	if err != nil {
		logger.Error("failed to initialize i18n", "error", err)
		log.Fatal(err)
	}
	logger.Info("i18n initialized",
		"default_language", i18nService.GetDefaultLanguage(),
		"supported_languages", i18nService.GetSupportedLanguages(),
	)

	// Inicializar repositories
	roleRepo := postgres.NewRoleRepository(db)
	userRepo := postgres.NewUserRepository(db)
	authorRepo := postgres.NewAuthorRepository(db)
	genreRepo := postgres.NewGenreRepository(db)
	bookRepo := postgres.NewBookRepository(db)
	commentRepo := postgres.NewCommentRepository(db)
	shelfRepo := postgres.NewShelfRepository(db)
	uow := postgres.NewUnitOfWork(db)

	// Integrity Guard com os limites de configuração
	integrityGuard := guard.New(
		roleRepo, userRepo, authorRepo, genreRepo, bookRepo, commentRepo, shelfRepo,
		guard.Config{
			ShelfMaxBooks:    cfg.Catalog.ShelfMaxBooks,
			CommentMaxLength: cfg.Catalog.CommentMaxLength,
		},
	)

	// Hub de notificações websocket
	hub := ws.NewHub(logger)
	defer hub.Close()

	// Inicializar services
	tokenService, err := services.NewTokenService(cfg.JWT)
	if err != nil {
		logger.Error("failed to initialize token service", "error", err)
		log.Fatal(err)
	}

	roleService := services.NewRoleService(roleRepo, integrityGuard, uow, logger)
	userService := services.NewUserService(userRepo, integrityGuard, uow, logger)
	authorService := services.NewAuthorService(authorRepo, bookRepo, integrityGuard, uow, logger)
	genreService := services.NewGenreService(genreRepo, bookRepo, integrityGuard, uow, logger)
	bookService := services.NewBookService(bookRepo, integrityGuard, uow, logger)
	commentService := services.NewCommentService(commentRepo, integrityGuard, uow, hub, logger)
	shelfService := services.NewShelfService(shelfRepo, integrityGuard, uow, hub, logger)

	// Inicializar handlers
	roleHandler := httphandlers.NewRoleHandler(roleService)
	userHandler := httphandlers.NewUserHandler(userService)
	authHandler := httphandlers.NewAuthHandler(userService, tokenService)
	authorHandler := httphandlers.NewAuthorHandler(authorService)
	genreHandler := httphandlers.NewGenreHandler(genreService)
	bookHandler := httphandlers.NewBookHandler(bookService)
	commentHandler := httphandlers.NewCommentHandler(commentService)
	shelfHandler := httphandlers.NewShelfHandler(shelfService)

	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Setup Gin
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	// Middleware global para adicionar base URL ao contexto
	router.Use(func(c *gin.Context) {
		c.Set("base_url", cfg.Server.BaseURL)
		c.Next()
	})

	// Middleware i18n
	i18nMiddleware := middleware.NewI18nMiddleware(i18nService)
	router.Use(i18nMiddleware.DetectLanguage())

	// Middleware CORS
	corsConfig := cors.DefaultConfig()
	if cfg.CORS.AllowedOrigins == "" || cfg.CORS.AllowedOrigins == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = strings.Split(cfg.CORS.AllowedOrigins, ",")
	}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization", "Accept-Language")
	router.Use(cors.New(corsConfig))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"env":    cfg.Env,
		})
	})

	// Documentação Swagger
	docs.SwaggerInfo.Host = cfg.Server.Host + ":" + cfg.Server.Port
	router.GET("/swagger/*any", ginswagger.WrapHandler(swaggerfiles.Handler))

	// Notificações websocket
	router.GET("/ws/notifications", hub.Handle)

	// API routes
	v1 := router.Group("/api/v1")
	{
		// Auth
		auth := v1.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
			auth.GET("/me", authMiddleware.RequireAuth(), userHandler.GetCurrentUser)
		}

		// Roles
		roles := v1.Group("/roles")
		{
			roles.POST("", roleHandler.CreateRole)
			roles.GET("", roleHandler.ListRoles)
			roles.GET("/:id", roleHandler.GetRole)
			roles.PUT("/:id", roleHandler.UpdateRole)
			roles.DELETE("/:id", roleHandler.DeleteRole)
			roles.GET("/:id/users", userHandler.ListUsersByRole)
		}

		// Users
		users := v1.Group("/users")
		{
			users.POST("", userHandler.CreateUser)
			users.GET("", userHandler.ListUsers)
			users.GET("/:id", userHandler.GetUser)
			users.PUT("/:id", userHandler.UpdateUser)
			users.DELETE("/:id", userHandler.DeleteUser)
			users.GET("/:id/comments", commentHandler.ListCommentsByUser)
			users.GET("/:id/shelf", shelfHandler.ListShelfByUser)
			users.GET("/:id/shelf/:book_id", shelfHandler.GetShelfEntryByUserAndBook)
			users.PATCH("/:id/shelf/:book_id/read", shelfHandler.MarkAsRead)
			users.DELETE("/:id/shelf/:book_id", shelfHandler.DeleteByUserAndBook)
		}

		// Authors
		authors := v1.Group("/authors")
		{
			authors.POST("", authorHandler.CreateAuthor)
			authors.GET("", authorHandler.ListAuthors)
			authors.GET("/:id", authorHandler.GetAuthor)
			authors.PUT("/:id", authorHandler.UpdateAuthor)
			authors.DELETE("/:id", authorHandler.DeleteAuthor)
			authors.GET("/:id/books", bookHandler.ListBooksByAuthor)
		}

		// Genres
		genres := v1.Group("/genres")
		{
			genres.POST("", genreHandler.CreateGenre)
			genres.GET("", genreHandler.ListGenres)
			genres.GET("/:id", genreHandler.GetGenre)
			genres.PUT("/:id", genreHandler.UpdateGenre)
			genres.DELETE("/:id", genreHandler.DeleteGenre)
			genres.GET("/:id/books", bookHandler.ListBooksByGenre)
		}

		// Books
		books := v1.Group("/books")
		{
			books.POST("", bookHandler.CreateBook)
			books.GET("", bookHandler.ListBooks)
			books.GET("/:id", bookHandler.GetBook)
			books.PUT("/:id", bookHandler.UpdateBook)
			books.DELETE("/:id", bookHandler.DeleteBook)
			books.GET("/:id/comments", commentHandler.ListCommentsByBook)
			books.GET("/:id/shelf", shelfHandler.ListShelfByBook)
		}

		// Comments
		comments := v1.Group("/comments")
		{
			comments.POST("", commentHandler.CreateComment)
			comments.GET("", commentHandler.ListComments)
			comments.GET("/:id", commentHandler.GetComment)
			comments.PUT("/:id", commentHandler.UpdateComment)
			comments.DELETE("/:id", commentHandler.DeleteComment)
		}

		// Shelf
		shelf := v1.Group("/shelf")
		{
			shelf.POST("", shelfHandler.AddToShelf)
			shelf.GET("", shelfHandler.ListShelf)
			shelf.GET("/:id", shelfHandler.GetShelfEntry)
			shelf.PUT("/:id", shelfHandler.UpdateShelfEntry)
			shelf.DELETE("/:id", shelfHandler.DeleteShelfEntry)
		}
	}

	// HTTP Server
	srv := &http.Server{
		Addr:              cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	go func() {
		logger.Info("server starting",
			"host", cfg.Server.Host,
			"port", cfg.Server.Port,
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", "error", err)
			log.Fatal(err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}
