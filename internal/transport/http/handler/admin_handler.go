package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-user-api-starter/internal/apperror"
	"go-user-api-starter/internal/domain"
	"go-user-api-starter/internal/service"
	"go-user-api-starter/internal/transport/http/response"
)

type adminListQuery struct {
	Offset int    `form:"offset,default=0" binding:"omitempty,min=0"`
	Limit  int    `form:"limit,default=20" binding:"omitempty,min=1,max=100"`
	Q      string `form:"q"`
}

type adminListResponse struct {
	Total int64               `json:"total"`
	Items []domain.PublicUser `json:"items"`
}

// AdminHandler serves the ops surface on the admin port.
type AdminHandler struct {
	svc *service.UserService
}

func NewAdminHandler(svc *service.UserService) *AdminHandler {
	return &AdminHandler{svc: svc}
}

// List handles GET /admin/v1/users with offset/limit paging and an
// optional LIKE search over email and full_name.
func (h *AdminHandler) List(c *gin.Context) {
	var q adminListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Fail(c, apperror.Validation(err.Error()))
		return
	}
	items, total, err := h.svc.ListPage(c.Request.Context(), q.Offset, q.Limit, q.Q)
	if err != nil {
		response.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, adminListResponse{Total: total, Items: items})
}

// Stats handles GET /admin/v1/stats.
func (h *AdminHandler) Stats(c *gin.Context) {
	n, err := h.svc.Count(c.Request.Context())
	if err != nil {
		response.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": n})
}

// Delete handles DELETE /admin/v1/users/:id.
func (h *AdminHandler) Delete(c *gin.Context) {
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
