package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"usuarios-api/internal/container"
	handlers "usuarios-api/internal/interface/http"
	"usuarios-api/internal/interface/middleware"
)

// UserModule wires the users CRUD handlers into routes under /api/users.
// GET    /api/users          paginated list
// GET    /api/users/:email   single record
// POST   /api/users          create
// PUT    /api/users/:email   partial update
// DELETE /api/users/:email   delete

type UserModule struct {
	Handler *handlers.UserHandler
}

func NewUserModule(h *handlers.UserHandler) *UserModule {
	return &UserModule{Handler: h}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	// Writes get a tighter per-IP window than reads; local traffic bypasses.
	readLimiter := middleware.RateLimit(container.GetRedis(), 300, time.Minute, middleware.KeyByIP(), nil)
	writeLimiter := middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByIPAndPath(), middleware.AllowPrivateIP())

	users := rg.Group("/users")
	{
		users.GET("", readLimiter, m.Handler.List)
		users.GET("/:email", readLimiter, m.Handler.Get)
		users.POST("", writeLimiter, m.Handler.Create)
		users.PUT("/:email", writeLimiter, m.Handler.Update)
		users.DELETE("/:email", writeLimiter, m.Handler.Delete)
	}
}
