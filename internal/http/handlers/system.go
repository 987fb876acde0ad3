package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	intconfig "touradmin/internal/config"
)

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "tourism admin backend đang chạy"})
}

func DBCheck(c *gin.Context) {
	if err := intconfig.EnsureDB(); err != nil {
		RespondStatus(c, http.StatusInternalServerError, StatusException, "database chưa sẵn sàng: "+err.Error())
		return
	}
	var count int
	if err := intconfig.DB.QueryRow("SELECT COUNT(*) FROM users").Scan(&count); err != nil {
		RespondStatus(c, http.StatusInternalServerError, StatusException, "không thể truy vấn database: "+err.Error())
		return
	}
	RespondOK(c, gin.H{"usersInDb": count})
}
