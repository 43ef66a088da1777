package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"

	"github.com/homekeep/home-maintenance-api/internal/handler"
	"github.com/homekeep/home-maintenance-api/internal/middleware"
)

// RegisterRoutes wires every route of the API onto the provided Echo
// instance. Register and login are public; fetching a user and all task
// routes require a valid Bearer access token, enforced by the JWT
// middleware with the given signing secret.
func RegisterRoutes(e *echo.Echo, users *handler.UserHandler, tasks *handler.TaskHandler, jwtSecret string) {
	e.GET("/", handler.Home)

	u := e.Group("/api/users")
	u.POST("/register", users.Register)
	u.POST("/login", users.Login)
	u.GET("/:id", users.GetUserWithTasks, middleware.JWTAuth(jwtSecret))

	t := e.Group("/api/tasks")
	t.Use(middleware.JWTAuth(jwtSecret))
	t.POST("", tasks.CreateTask)
	t.PUT("/:id", tasks.UpdateReminder)
}
