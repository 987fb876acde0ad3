package handlers

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"touradmin/internal/http/middleware"
	"touradmin/internal/utils"
)

const maxAttachmentSize = 10 << 20 // 10MB

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".glb":  true,
}

type attachmentPayload struct {
	FileName string `json:"fileName"`
	URL      string `json:"url"`
}

// POST /api/attachments — accepts one multipart file, stores it under the
// upload dir and returns its public URL. The dashboard consumes the first
// element of the payload.
func UploadAttachment(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		RespondStatus(c, http.StatusBadRequest, StatusArgumentNotValid, "thiếu file tải lên")
		return
	}

	if file.Size > maxAttachmentSize {
		RespondStatus(c, http.StatusBadRequest, StatusArgumentNotValid, "file phải nhỏ hơn 10MB")
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedExtensions[ext] {
		RespondStatus(c, http.StatusBadRequest, StatusArgumentNotValid, "định dạng file không được hỗ trợ")
		return
	}

	if err := os.MkdirAll(env.UploadDir, 0o755); err != nil {
		RespondStatus(c, http.StatusInternalServerError, StatusException, "không thể lưu file")
		return
	}

	stored := randomFileName() + ext
	if err := c.SaveUploadedFile(file, filepath.Join(env.UploadDir, stored)); err != nil {
		RespondStatus(c, http.StatusInternalServerError, StatusException, "không thể lưu file")
		return
	}

	utils.LogEvent(middleware.GetRequestID(c), "attachment", "upload", stored)

	RespondOK(c, []attachmentPayload{{
		FileName: file.Filename,
		URL:      env.AppBaseURL + "/uploads/" + stored,
	}})
}

func randomFileName() string {
	buf := make([]byte, 12)
	_, _ = rand.Read(buf)
	return hex.EncodeToString(buf)
}
