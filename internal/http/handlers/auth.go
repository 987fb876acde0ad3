package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"touradmin/internal/domain"
	"touradmin/internal/repositories"
	"touradmin/internal/services"
)

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type loginPayload struct {
	Token string `json:"token"`
	User  any    `json:"user"`
}

// POST /api/auth/login
func Login(c *gin.Context) {
	var req loginRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	repo := repositories.UserRepository{}
	user, err := repo.GetByEmail(strings.TrimSpace(strings.ToLower(req.Email)))
	if err != nil {
		if domain.IsNotFound(err) {
			RespondStatus(c, http.StatusBadRequest, StatusNotMatch, "email hoặc mật khẩu không đúng")
			return
		}
		RespondDomainError(c, err)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		RespondStatus(c, http.StatusBadRequest, StatusNotMatch, "email hoặc mật khẩu không đúng")
		return
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"role":    user.Role,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	})

	signed, err := token.SignedString([]byte(env.JWTSecret))
	if err != nil {
		RespondStatus(c, http.StatusInternalServerError, StatusException, "không thể tạo token")
		return
	}

	RespondOK(c, loginPayload{Token: signed, User: user.ToPublic()})
}

type registerRequest struct {
	Email     string `json:"email" binding:"required"`
	Password  string `json:"password" binding:"required"`
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
}

// POST /api/auth/register — self-registration always creates a USER account.
func Register(c *gin.Context) {
	var req registerRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	user, err := userService(c).Create(c.Request.Context(), services.UserInput{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	RespondOK(c, user.ToPublic())
}
