package handlers

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	userapp "usuarios-api/internal/application"
	"usuarios-api/internal/domain/entity"
	"usuarios-api/pkg/response"
	"usuarios-api/pkg/validation"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

type UserHandler struct {
	Svc    *userapp.Service
	Logger *logrus.Logger
}

func NewUserHandler(svc *userapp.Service, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

// createUserRequest keeps the legacy field names; the plaintext password
// arrives as "svpassword" and is stored only as a hash.
type createUserRequest struct {
	Name       string `json:"name" binding:"required"`
	Lastname   string `json:"lastname" binding:"required"`
	Username   string `json:"user" binding:"required"`
	Email      string `json:"email" binding:"required"`
	SvPassword string `json:"svpassword" binding:"required"`
}

type updateUserRequest struct {
	Name     string `json:"name"`
	Lastname string `json:"lastname"`
	Username string `json:"user"`
	Password string `json:"password"`
}

// userPayload shapes a user for the envelope. The password hash is never
// included in responses.
func userPayload(u *entity.User) gin.H {
	return gin.H{
		"id":         u.ID,
		"name":       u.Name,
		"lastname":   u.Lastname,
		"user":       u.Username,
		"email":      u.Email,
		"created_at": u.CreatedAt,
		"updated_at": u.UpdatedAt,
	}
}

func usersPayload(users []*entity.User) []gin.H {
	out := make([]gin.H, 0, len(users))
	for _, u := range users {
		out = append(out, userPayload(u))
	}
	return out
}

// parsePositiveInt falls back to def for missing, non-numeric, or
// non-positive values.
func parsePositiveInt(raw string, def int) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return def
	}
	return n
}

func (h *UserHandler) internalError(c *gin.Context, op string, err error) {
	h.Logger.WithError(err).WithFields(logrus.Fields{
		"op":         op,
		"request_id": c.GetString("request_id"),
	}).Error("user operation failed")
	response.Fail(c, http.StatusInternalServerError, "Ocurrió un error desconocido")
}

// List GET /users?page=&limit=
func (h *UserHandler) List(c *gin.Context) {
	page := parsePositiveInt(c.Query("page"), defaultPage)
	limit := parsePositiveInt(c.Query("limit"), defaultLimit)
	// Client-chosen limits are capped so they cannot drive storage fetches
	// or allocations of arbitrary size.
	if limit > maxLimit {
		limit = maxLimit
	}

	users, totalPages, err := h.Svc.List(c.Request.Context(), page, limit)
	if err != nil {
		h.internalError(c, "list users", err)
		return
	}
	response.Page(c, "Usuarios obtenidos correctamente", usersPayload(users), totalPages, page)
}

// Get GET /users/:email
func (h *UserHandler) Get(c *gin.Context) {
	email := c.Param("email")
	if email == "" {
		response.FailData(c, http.StatusBadRequest, "Falta el email")
		return
	}

	u, err := h.Svc.GetByEmail(c.Request.Context(), email)
	switch {
	case errors.Is(err, userapp.ErrUserNotFound):
		response.FailData(c, http.StatusNotFound, "Usuario no encontrado")
	case err != nil:
		h.internalError(c, "get user", err)
	default:
		response.Data(c, http.StatusOK, "Usuario obtenido correctamente", userPayload(u))
	}
}

// Create POST /users
func (h *UserHandler) Create(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Logger.WithField("details", validation.ToDetails(err)).Debug("invalid create payload")
		response.FailDatos(c, http.StatusBadRequest, "Faltan datos")
		return
	}

	u, err := h.Svc.Create(c.Request.Context(), userapp.CreateUserInput{
		Name:     req.Name,
		Lastname: req.Lastname,
		Username: req.Username,
		Email:    req.Email,
		Password: req.SvPassword,
	})
	switch {
	case errors.Is(err, userapp.ErrUserExists):
		response.FailDatos(c, http.StatusBadRequest, "Usuario o correo ya existente")
	case err != nil:
		h.internalError(c, "create user", err)
	default:
		response.Datos(c, http.StatusCreated, "Usuario creado correctamente", userPayload(u))
	}
}

// Update PUT /users/:email
func (h *UserHandler) Update(c *gin.Context) {
	email := c.Param("email")
	if email == "" {
		response.FailDatos(c, http.StatusBadRequest, "Falta el email")
		return
	}

	// An absent body is an empty subset: nothing to change, not an error.
	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		h.Logger.WithField("details", validation.ToDetails(err)).Debug("invalid update payload")
		response.FailDatos(c, http.StatusBadRequest, "Datos inválidos")
		return
	}

	u, err := h.Svc.Update(c.Request.Context(), email, userapp.UpdateUserInput{
		Name:     req.Name,
		Lastname: req.Lastname,
		Username: req.Username,
		Password: req.Password,
	})
	switch {
	case errors.Is(err, userapp.ErrUserNotFound):
		response.FailDatos(c, http.StatusNotFound, "No se encontró un usuario con ese correo electrónico")
	case errors.Is(err, userapp.ErrUserExists):
		response.FailDatos(c, http.StatusBadRequest, "Usuario o correo ya existente")
	case err != nil:
		h.internalError(c, "update user", err)
	default:
		response.Datos(c, http.StatusOK, "Usuario actualizado correctamente", userPayload(u))
	}
}

// Delete DELETE /users/:email
func (h *UserHandler) Delete(c *gin.Context) {
	email := c.Param("email")
	if email == "" {
		response.FailData(c, http.StatusBadRequest, "Falta el email")
		return
	}

	u, err := h.Svc.Delete(c.Request.Context(), email)
	switch {
	case errors.Is(err, userapp.ErrUserNotFound):
		response.FailData(c, http.StatusNotFound, "Usuario no encontrado")
	case err != nil:
		h.internalError(c, "delete user", err)
	default:
		response.Data(c, http.StatusOK, "Usuario eliminado correctamente", userPayload(u))
	}
}
