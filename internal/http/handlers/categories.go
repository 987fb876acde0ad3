package handlers

import (
	"github.com/gin-gonic/gin"

	"touradmin/internal/services"
)

// GET /api/categories?page=0&size=10&search=
func GetCategories(c *gin.Context) {
	items, total, err := categoryService(c).List(ParseListParams(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondPage(c, items, total)
}

// GET /api/categories/options
func GetCategoryOptions(c *gin.Context) {
	opts, err := categoryService(c).Options(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondOK(c, opts)
}

// GET /api/categories/:id
func GetCategoryByID(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	category, err := categoryService(c).Get(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondOK(c, category)
}

// POST /api/categories
func CreateCategory(c *gin.Context) {
	var in services.CategoryInput
	if !BindJSONOrError(c, &in) {
		return
	}
	category, err := categoryService(c).Create(c.Request.Context(), in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondOK(c, category)
}

// PUT /api/categories/:id
func UpdateCategory(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	var in services.CategoryInput
	if !BindJSONOrError(c, &in) {
		return
	}
	category, err := categoryService(c).Update(c.Request.Context(), id, in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondOK(c, category)
}

// DELETE /api/categories/:id
func DeleteCategory(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	if err := categoryService(c).Delete(c.Request.Context(), id); err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondOK(c, nil)
}
