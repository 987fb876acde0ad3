package handlers

import (
	"github.com/gin-gonic/gin"

	"touradmin/internal/domain/models"
	"touradmin/internal/services"
)

// GET /api/users?page=0&size=10&search=
func GetUsers(c *gin.Context) {
	items, total, err := userService(c).List(ParseListParams(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	public := make([]models.PublicUser, 0, len(items))
	for i := range items {
		public = append(public, items[i].ToPublic())
	}
	RespondPage(c, public, total)
}

// GET /api/users/:id
func GetUserByID(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	user, err := userService(c).Get(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondOK(c, user.ToPublic())
}

// POST /api/users
func CreateUser(c *gin.Context) {
	var in services.UserInput
	if !BindJSONOrError(c, &in) {
		return
	}
	user, err := userService(c).Create(c.Request.Context(), in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondOK(c, user.ToPublic())
}

// PUT /api/users/:id
func UpdateUser(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	var in services.UserInput
	if !BindJSONOrError(c, &in) {
		return
	}
	user, err := userService(c).Update(c.Request.Context(), id, in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondOK(c, user.ToPublic())
}

// DELETE /api/users/:id
func DeleteUser(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	if err := userService(c).Delete(c.Request.Context(), id); err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondOK(c, nil)
}
