package handlers

import (
	"net/http"

	user "smarttour/services/user"

	"github.com/gin-gonic/gin"
)

// AdminHandler exposes admin-only account endpoints.
type AdminHandler struct {
	UserService user.UserService
}

// ListUsersHandler handles GET /api/admin/users.
func (h *AdminHandler) ListUsersHandler(c *gin.Context) {
	users, err := h.UserService.GetAllUsers()
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// GetUserHandler handles GET /api/admin/users/:id.
func (h *AdminHandler) GetUserHandler(c *gin.Context) {
	usr, err := h.UserService.GetUserByID(c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, usr)
}
