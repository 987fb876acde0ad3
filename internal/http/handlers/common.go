package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"touradmin/internal/domain"
	"touradmin/internal/http/middleware"
	"touradmin/internal/repositories"
	"touradmin/internal/utils"
)

// Envelope statuses shared with the dashboard. Clients switch on these, never
// on the HTTP status code alone.
const (
	StatusOK                   = "OK"
	StatusNotFound             = "NOT_FOUND"
	StatusDuplicateEntity      = "DUPLICATE_ENTITY"
	StatusAlreadyUsedElsewhere = "ALREADY_USED_ELSEWHERE"
	StatusArgumentNotValid     = "ARGUMENT_NOT_VALID"
	StatusNotMatch             = "NOT_MATCH"
	StatusException            = "EXCEPTION"
)

type ErrorDetails struct {
	Details string `json:"details"`
}

type Envelope struct {
	Status  string        `json:"status"`
	Payload any           `json:"payload,omitempty"`
	Errors  *ErrorDetails `json:"errors,omitempty"`
}

// PagedPayload mirrors the Spring-style page shape the dashboard consumes.
type PagedPayload struct {
	Content       any `json:"content"`
	TotalElements int `json:"totalElements"`
}

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, Envelope{Status: StatusOK, Payload: payload})
}

func RespondPage(c *gin.Context, content any, total int) {
	RespondOK(c, PagedPayload{Content: content, TotalElements: total})
}

func RespondStatus(c *gin.Context, httpCode int, status, details string) {
	c.JSON(httpCode, Envelope{Status: status, Errors: &ErrorDetails{Details: details}})
}

// RespondDomainError maps typed domain errors to envelope statuses.
func RespondDomainError(c *gin.Context, err error) {
	switch {
	case domain.IsValidation(err):
		RespondStatus(c, http.StatusBadRequest, StatusArgumentNotValid, err.Error())
	case domain.IsNotFound(err):
		RespondStatus(c, http.StatusNotFound, StatusNotFound, err.Error())
	case domain.IsConflict(err):
		RespondStatus(c, http.StatusConflict, StatusDuplicateEntity, err.Error())
	case domain.IsInUse(err):
		RespondStatus(c, http.StatusConflict, StatusAlreadyUsedElsewhere, err.Error())
	case domain.IsNotMatch(err):
		RespondStatus(c, http.StatusBadRequest, StatusNotMatch, err.Error())
	default:
		utils.LogEvent(middleware.GetRequestID(c), "http", "internal_error", err.Error())
		RespondStatus(c, http.StatusInternalServerError, StatusException, "đã xảy ra lỗi, vui lòng thử lại sau")
	}
}

// BindJSONOrError ensures body is present and parsable.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil {
		RespondStatus(c, http.StatusBadRequest, StatusArgumentNotValid, "thiếu nội dung yêu cầu")
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		RespondStatus(c, http.StatusBadRequest, StatusArgumentNotValid, err.Error())
		return false
	}
	return true
}

// PathID parses the :id route parameter; ok=false means a response was sent.
func PathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		RespondStatus(c, http.StatusBadRequest, StatusArgumentNotValid, "id không hợp lệ")
		return 0, false
	}
	return id, true
}

// ParseListParams reads page (0-based), size, search and filter ids from the
// query string. Absent values fall back to page 0 / size 10.
func ParseListParams(c *gin.Context) repositories.ListParams {
	p := repositories.ListParams{
		Search: strings.TrimSpace(c.Query("search")),
	}
	if v, err := strconv.Atoi(c.Query("page")); err == nil {
		p.Page = v
	}
	if v, err := strconv.Atoi(c.Query("size")); err == nil {
		p.Size = v
	}
	if v, err := strconv.ParseInt(c.Query("categoryId"), 10, 64); err == nil {
		p.CategoryID = v
	}
	if v, err := strconv.ParseInt(c.Query("scopeId"), 10, 64); err == nil {
		p.ScopeID = v
	}
	return p.Normalize()
}
