package handlers

import (
	"github.com/gin-gonic/gin"

	"touradmin/internal/services"
)

// GET /api/costumes?page=0&size=10&search=&scopeId=
func GetCostumes(c *gin.Context) {
	items, total, err := costumeService(c).List(ParseListParams(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondPage(c, items, total)
}

// GET /api/costumes/:id
func GetCostumeByID(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	costume, err := costumeService(c).Get(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondOK(c, costume)
}

// POST /api/costumes
func CreateCostume(c *gin.Context) {
	var in services.CostumeInput
	if !BindJSONOrError(c, &in) {
		return
	}
	costume, err := costumeService(c).Create(c.Request.Context(), in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondOK(c, costume)
}

// PUT /api/costumes/:id
func UpdateCostume(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	var in services.CostumeInput
	if !BindJSONOrError(c, &in) {
		return
	}
	costume, err := costumeService(c).Update(c.Request.Context(), id, in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondOK(c, costume)
}

// DELETE /api/costumes/:id
func DeleteCostume(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	if err := costumeService(c).Delete(c.Request.Context(), id); err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondOK(c, nil)
}
