// main.go
package main

import (
	"context"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"

	"mapao-magazine/config"
	"mapao-magazine/controllers"
	"mapao-magazine/logger"
	"mapao-magazine/middleware"
	"mapao-magazine/services"
	"mapao-magazine/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Error.Fatalf("Failed to load configuration: %v", err)
	}
	logger.SetLogLevel(cfg.Env)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect the data gateway. A misconfigured or unreachable store is not
	// fatal: the site runs degraded and serves empty content.
	gw, err := store.New(context.Background(), store.Options{
		DatabaseURL:      cfg.DatabaseURL,
		StorageEndpoint:  cfg.StorageEndpoint,
		StorageAccessKey: cfg.StorageAccessKey,
		StorageSecretKey: cfg.StorageSecretKey,
		StorageBucket:    cfg.StorageBucket,
		StorageUseSSL:    cfg.StorageUseSSL,
	})
	if err != nil {
		logger.Error.Printf("Data gateway unavailable, serving empty content: %v", err)
		gw = store.Degraded()
	}
	defer gw.Close()

	mail := services.NewMailService(cfg)
	content := services.NewContentService(gw)

	router := setupRouter(cfg, gw, content, mail)

	logger.Info.Printf("Starting server on %s", cfg.Addr())
	if err := router.Run(cfg.Addr()); err != nil {
		logger.Error.Fatalf("Failed to run server: %v", err)
	}
}

// setupRouter wires sessions, templates, static assets, and every route.
func setupRouter(cfg *config.Config, gw store.Gateway, content services.ContentServiceInterface, mail services.MailServiceInterface) *gin.Engine {
	router := gin.Default()

	// Initialize session store
	sessionStore := cookie.NewStore([]byte(cfg.SecretKey))
	sessionStore.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   cfg.Env == "production",
		SameSite: http.SameSiteLaxMode,
	})
	router.Use(sessions.Sessions("mapao_session", sessionStore))

	// Load HTML templates and static assets
	router.LoadHTMLGlob("templates/*.html")
	router.Static("/static", "./static")
	router.StaticFile("/favicon.ico", "./static/favicon.ico")
	router.StaticFile("/robots.txt", "./static/robots.txt")
	router.StaticFile("/sitemap.xml", "./static/sitemap.xml")

	pages := controllers.NewPageController(content, gw)
	contact := controllers.NewContactController(mail)
	auth := controllers.NewAuthController(cfg)
	admin := controllers.NewAdminController(content, gw)

	// Health check
	router.GET("/health", controllers.Health)

	// Public routes
	router.GET("/", pages.Home)
	router.GET("/mapao", pages.Mapao)
	router.GET("/issue/:id", pages.IssueDetail)
	router.GET("/moments", pages.Moments)
	router.GET("/about", pages.About)
	router.GET("/awards", pages.Awards)
	router.GET("/awards/:year", pages.AwardsByYear)
	router.GET("/whos-who", pages.WhosWho)
	router.GET("/whos-who/:letter", pages.WhosWhoByLetter)
	router.GET("/contact", contact.ShowContactForm)
	router.POST("/contact", contact.SubmitContactForm)
	router.POST("/subscribe", contact.Subscribe)

	// Admin session routes
	router.GET("/admin/login", auth.ShowLoginPage)
	router.POST("/admin/login", auth.PerformLogin)
	router.GET("/admin/logout", auth.Logout)

	// Gated admin routes
	gated := router.Group("/admin", middleware.AdminRequired())
	{
		gated.GET("", admin.Dashboard)

		gated.GET("/issues", admin.ListIssues)
		gated.GET("/issues/new", admin.NewIssueForm)
		gated.POST("/issues/new", admin.CreateIssue)
		gated.GET("/issues/:id/edit", admin.EditIssueForm)
		gated.POST("/issues/:id/edit", admin.UpdateIssue)
		gated.GET("/issues/:id/delete", admin.DeleteIssue)

		gated.GET("/articles", admin.ListArticles)
		gated.GET("/articles/new", admin.NewArticleForm)
		gated.POST("/articles/new", admin.CreateArticle)
		gated.GET("/articles/:id/edit", admin.EditArticleForm)
		gated.POST("/articles/:id/edit", admin.UpdateArticle)
		gated.GET("/articles/:id/delete", admin.DeleteArticle)

		gated.GET("/moments", admin.ListMoments)
		gated.GET("/moments/new", admin.NewMomentForm)
		gated.POST("/moments/new", admin.CreateMoment)
		gated.GET("/moments/:id/edit", admin.EditMomentForm)
		gated.POST("/moments/:id/edit", admin.UpdateMoment)
		gated.GET("/moments/:id/delete", admin.DeleteMoment)
	}

	return router
}
