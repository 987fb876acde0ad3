package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"touradmin/internal/http/middleware"
	"touradmin/internal/services"
)

// GET /api/profile — the authenticated user's own record.
func GetProfile(c *gin.Context) {
	id := middleware.GetUserID(c)
	if id == 0 {
		RespondStatus(c, http.StatusUnauthorized, StatusException, "phiên đăng nhập không hợp lệ")
		return
	}
	user, err := userService(c).Get(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondOK(c, user.ToPublic())
}

// PUT /api/profile
func UpdateProfile(c *gin.Context) {
	id := middleware.GetUserID(c)
	if id == 0 {
		RespondStatus(c, http.StatusUnauthorized, StatusException, "phiên đăng nhập không hợp lệ")
		return
	}
	var in services.ProfileInput
	if !BindJSONOrError(c, &in) {
		return
	}
	user, err := userService(c).UpdateProfile(c.Request.Context(), id, in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondOK(c, user.ToPublic())
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required"`
}

// PUT /api/profile/password — wrong current password yields NOT_MATCH.
func ChangePassword(c *gin.Context) {
	id := middleware.GetUserID(c)
	if id == 0 {
		RespondStatus(c, http.StatusUnauthorized, StatusException, "phiên đăng nhập không hợp lệ")
		return
	}
	var req changePasswordRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if err := userService(c).ChangePassword(id, req.CurrentPassword, req.NewPassword); err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondOK(c, nil)
}
