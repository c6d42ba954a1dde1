package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"go-user-api-starter/internal/apperror"
	"go-user-api-starter/internal/domain"
	"go-user-api-starter/internal/service"
	"go-user-api-starter/internal/transport/http/response"
)

type UpdateUserRequest struct {
	Email    *string `json:"email" binding:"omitempty,email"`
	FullName *string `json:"full_name" binding:"omitempty,max=255"`
}

type searchQuery struct {
	Q     string `form:"q" binding:"required"`
	Limit int    `form:"limit,default=10" binding:"omitempty,min=1,max=100"`
}

type UserHandler struct {
	svc *service.UserService
}

func NewUserHandler(svc *service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// Create handles POST /users. Same contract as /auth/register.
func (h *UserHandler) Create(c *gin.Context) {
	var req RegisterRequest
	if !bindJSON(c, &req) {
		return
	}
	u, err := h.svc.Register(c.Request.Context(), req.Email, req.FullName, req.Password)
	if err != nil {
		response.Fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, u)
}

// List handles GET /users.
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.svc.List(c.Request.Context())
	if err != nil {
		response.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// Search handles GET /users/search?q=&limit=.
func (h *UserHandler) Search(c *gin.Context) {
	var q searchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Fail(c, apperror.Validation(err.Error()))
		return
	}
	users, err := h.svc.Search(c.Request.Context(), q.Q, q.Limit)
	if err != nil {
		response.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// Get handles GET /users/:id. GET /users/:id/details serves the same
// projection.
func (h *UserHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	u, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

// GetOrSearch dispatches GET /users/:id. gin keeps one routing tree
// per method and rejects a static "search" segment next to the :id
// parameter, so /users/search lands here too.
func (h *UserHandler) GetOrSearch(c *gin.Context) {
	if c.Param("id") == "search" {
		h.Search(c)
		return
	}
	h.Get(c)
}

// Subresource dispatches GET /users/:id/:sub, covering both
// /users/email/:email and /users/:id/details.
func (h *UserHandler) Subresource(c *gin.Context) {
	if c.Param("id") == "email" {
		h.getByEmail(c, c.Param("sub"))
		return
	}
	if c.Param("sub") == "details" {
		h.Get(c)
		return
	}
	response.Fail(c, apperror.NotFound("route"))
}

func (h *UserHandler) getByEmail(c *gin.Context, email string) {
	u, err := h.svc.GetByEmail(c.Request.Context(), email)
	if err != nil {
		response.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

// Update handles PUT /users/:id.
func (h *UserHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req UpdateUserRequest
	if !bindJSON(c, &req) {
		return
	}
	// validator's omitempty skips the email format check for a present
	// but empty string, which would blank the stored email.
	if req.Email != nil && *req.Email == "" {
		response.Fail(c, apperror.Validation("email must not be empty"))
		return
	}
	u, err := h.svc.Update(c.Request.Context(), id, domain.UserPatch{
		Email:    req.Email,
		FullName: req.FullName,
	})
	if err != nil {
		response.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

// Delete handles DELETE /users/:id.
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.Remove(c.Request.Context(), id); err != nil {
		response.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Fail(c, apperror.Validation("invalid user id"))
		return 0, false
	}
	return uint(id), true
}
