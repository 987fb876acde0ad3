package handlers

import (
	"github.com/gin-gonic/gin"

	"touradmin/internal/services"
)

// GET /api/scopes?page=0&size=10&search=&categoryId=
func GetScopes(c *gin.Context) {
	items, total, err := scopeService(c).List(ParseListParams(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondPage(c, items, total)
}

// GET /api/scopes/options
func GetScopeOptions(c *gin.Context) {
	opts, err := scopeService(c).Options(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondOK(c, opts)
}

// GET /api/scopes/:id
func GetScopeByID(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	scope, err := scopeService(c).Get(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondOK(c, scope)
}

// POST /api/scopes
func CreateScope(c *gin.Context) {
	var in services.ScopeInput
	if !BindJSONOrError(c, &in) {
		return
	}
	scope, err := scopeService(c).Create(c.Request.Context(), in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondOK(c, scope)
}

// PUT /api/scopes/:id
func UpdateScope(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	var in services.ScopeInput
	if !BindJSONOrError(c, &in) {
		return
	}
	scope, err := scopeService(c).Update(c.Request.Context(), id, in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondOK(c, scope)
}

// DELETE /api/scopes/:id
func DeleteScope(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	if err := scopeService(c).Delete(c.Request.Context(), id); err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondOK(c, nil)
}
