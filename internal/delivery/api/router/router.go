// Package router registers the HTTP routes of the JSON API.
package router

import (
	"usermgmt/config"
	"usermgmt/internal/delivery/api/middleware"
	"usermgmt/internal/delivery/api/router/handler"
	"usermgmt/internal/domain/entity"
	"usermgmt/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	AccountHandler *handler.AccountHandler
	TaskHandler    *handler.TaskHandler
	AuthMiddleware *middleware.AuthMiddleware
	Metrics        *metrics.Metrics
	Config         *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	accountHandler *handler.AccountHandler
	taskHandler    *handler.TaskHandler
	authMiddleware *middleware.AuthMiddleware
	metrics        *metrics.Metrics
	config         *config.Config
}

func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		accountHandler: params.AccountHandler,
		taskHandler:    params.TaskHandler,
		authMiddleware: params.AuthMiddleware,
		metrics:        params.Metrics,
		config:         params.Config,
	}
}

// RegisterRoutes sets up the operational endpoints at the root and the API under http.basePath.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	if r.config.Metrics != nil && r.config.Metrics.Enabled && r.metrics != nil {
		e.GET(r.config.Metrics.Path, echo.WrapHandler(r.metrics.Handler()))
	}

	api := e.Group(r.config.HTTP.BasePath)

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/signup", r.authHandler.Signup)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.GET("/logout", r.authHandler.Logout, r.authMiddleware.Identify)
	}

	usersGroup := api.Group("/users")
	usersGroup.Use(r.authMiddleware.Authenticate)
	{
		usersGroup.GET("/me", r.accountHandler.GetMe)
		usersGroup.PUT("/updatedetails", r.accountHandler.UpdateDetails)
		usersGroup.PUT("/updatepassword", r.accountHandler.UpdatePassword)
	}

	adminGroup := usersGroup.Group("/admin")
	adminGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		adminGroup.GET("/users", r.accountHandler.ListUsers)
		adminGroup.PUT("/users/:id/status", r.accountHandler.SetUserStatus)
	}

	tasksGroup := api.Group("/tasks")
	tasksGroup.Use(r.authMiddleware.Authenticate)
	{
		tasksGroup.GET("", r.taskHandler.ListTasks)
		tasksGroup.POST("", r.taskHandler.CreateTask)

		owned := r.authMiddleware.RequireTaskOwner("id")
		tasksGroup.PUT("/:id", r.taskHandler.UpdateTask, owned)
		tasksGroup.DELETE("/:id", r.taskHandler.DeleteTask, owned)
	}
}
