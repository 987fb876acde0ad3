package handlers

import (
	"github.com/gin-gonic/gin"

	"touradmin/internal/cache"
	intconfig "touradmin/internal/config"
	"touradmin/internal/http/middleware"
	"touradmin/internal/queue"
	"touradmin/internal/services"
)

var (
	env     intconfig.Env
	options *cache.OptionsCache
	audit   *queue.Publisher
)

// Configure injects the process-wide collaborators once at startup.
func Configure(e intconfig.Env, opts *cache.OptionsCache, pub *queue.Publisher) {
	env = e
	options = opts
	audit = pub
}

func categoryService(c *gin.Context) services.CategoryService {
	return services.CategoryService{
		Cache:     options,
		Audit:     audit,
		RequestID: middleware.GetRequestID(c),
		ActorID:   middleware.GetUserID(c),
	}
}

func scopeService(c *gin.Context) services.ScopeService {
	return services.ScopeService{
		Cache:     options,
		Audit:     audit,
		RequestID: middleware.GetRequestID(c),
		ActorID:   middleware.GetUserID(c),
	}
}

func costumeService(c *gin.Context) services.CostumeService {
	return services.CostumeService{
		Audit:     audit,
		RequestID: middleware.GetRequestID(c),
		ActorID:   middleware.GetUserID(c),
	}
}

func userService(c *gin.Context) services.UserService {
	return services.UserService{
		Audit:     audit,
		RequestID: middleware.GetRequestID(c),
		ActorID:   middleware.GetUserID(c),
	}
}
