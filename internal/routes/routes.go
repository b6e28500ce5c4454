package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/PainelServices01/user-admin-GO/internal/audit"
	"github.com/PainelServices01/user-admin-GO/internal/auth"
	"github.com/PainelServices01/user-admin-GO/internal/cep"
	"github.com/PainelServices01/user-admin-GO/internal/config"
	"github.com/PainelServices01/user-admin-GO/internal/handlers"
	infraRepo "github.com/PainelServices01/user-admin-GO/internal/infra/repository"
	"github.com/PainelServices01/user-admin-GO/internal/middleware"
	ucUser "github.com/PainelServices01/user-admin-GO/internal/usecase/user"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	authManager := auth.NewManager(cfg.JWTSecret)

	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.SessionMiddleware(authManager))
	r.Use(middleware.GateMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	userRepo := infraRepo.NewUserGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	cepClient := cep.NewClient(cfg.ViaCEPBaseURL)

	// ======================================================
	// USE CASES — USERS
	// ======================================================
	listUsersUC := ucUser.NewListUsers(userRepo)
	getUserUC := ucUser.NewGetUser(userRepo)
	createUserUC := ucUser.NewCreateUser(userRepo, auditDispatcher)
	updateUserUC := ucUser.NewUpdateUser(userRepo, auditDispatcher)
	deleteUserUC := ucUser.NewDeleteUser(userRepo, auditDispatcher)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, authManager, auditDispatcher)
	meHandler := handlers.NewMeHandler(db)
	userHandler := handlers.NewUserHandler(
		listUsersUC,
		getUserUC,
		createUserUC,
		updateUserUC,
		deleteUserUC,
	)
	cepHandler := handlers.NewCEPHandler(cepClient)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)
	webHandler := handlers.NewWebHandler()

	// ======================================================
	// ROTAS WEB (HTML)
	// ======================================================
	r.GET("/", webHandler.Index)
	r.GET("/login", webHandler.LoginPage)
	r.GET("/register", webHandler.RegisterPage)
	r.GET("/dashboard", webHandler.Dashboard)
	r.GET("/admin", webHandler.AdminPanel)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/login", authHandler.Login)
		api.POST("/auth/logout", authHandler.Logout)

		api.GET("/me", meHandler.GetMe)

		// ------------------------------
		// USERS
		// ------------------------------
		api.POST("/users", userHandler.Create)
		api.GET("/users", userHandler.List)
		api.GET("/users/:id", userHandler.Get)
		api.PUT("/users/:id", userHandler.Update)
		api.DELETE("/users/:id", userHandler.Delete)

		// ------------------------------
		// CEP
		// ------------------------------
		api.GET("/cep", cepHandler.Lookup)

		// ------------------------------
		// AUDITORIA (admin)
		// ------------------------------
		api.GET("/audit-logs", auditLogsHandler.List)
	}
}
