package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/chaitanyajadhav1/RStar-FreightDocBot-sub003/internal/domain"
	"github.com/chaitanyajadhav1/RStar-FreightDocBot-sub003/internal/service"
)

// userView hides sensitive fields from user responses.
type userView struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
	IsActive bool   `json:"is_active"`
}

func toUserView(u *domain.User) userView {
	return userView{
		ID:       u.ID.String(),
		Email:    u.Email,
		FullName: u.FullName,
		Role:     string(u.Role),
		IsActive: u.IsActive,
	}
}

// UserHandler serves user management endpoints.
type UserHandler struct {
	userService service.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// Create handles POST /api/v1/users. Admin only.
func (h *UserHandler) Create(c *gin.Context) {
	orgID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	var input service.CreateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		Fail(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	user, err := h.userService.Create(c.Request.Context(), orgID, input)
	if err != nil {
		HandleError(c, err)
		return
	}
	OK(c, http.StatusCreated, toUserView(user))
}

// List handles GET /api/v1/users. Admin only.
func (h *UserHandler) List(c *gin.Context) {
	orgID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	users, total, err := h.userService.List(c.Request.Context(), orgID, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	views := make([]userView, 0, len(users))
	for i := range users {
		views = append(views, toUserView(&users[i]))
	}
	OKWithMeta(c, http.StatusOK, views, &Meta{Total: total, Offset: offset, Limit: limit})
}
