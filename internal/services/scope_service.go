package services

import (
	"context"
	"strings"

	"touradmin/internal/cache"
	"touradmin/internal/domain"
	"touradmin/internal/domain/models"
	"touradmin/internal/queue"
	"touradmin/internal/repositories"
	"touradmin/internal/utils"
)

type ScopeService struct {
	Repo      repositories.ScopeRepository
	Cache     *cache.OptionsCache
	Audit     *queue.Publisher
	RequestID string
	ActorID   int64
}

type ScopeInput struct {
	Name        string   `json:"name" binding:"required"`
	Logo        string   `json:"logo"`
	Description string   `json:"description"`
	CategoryID  int64    `json:"categoryId" binding:"required"`
	Backgrounds []string `json:"backgrounds"`
}

func (in ScopeInput) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return domain.ValidationError{Field: "name", Msg: "bắt buộc"}
	}
	if in.CategoryID <= 0 {
		return domain.ValidationError{Field: "categoryId", Msg: "bắt buộc"}
	}
	if strings.TrimSpace(in.Logo) == "" {
		return domain.ValidationError{Field: "logo", Msg: "bắt buộc"}
	}
	if len(in.Backgrounds) == 0 {
		return domain.ValidationError{Field: "backgrounds", Msg: "cần ít nhất một hình nền"}
	}
	return nil
}

func (in ScopeInput) toModel() models.Scope {
	return models.Scope{
		Name:        strings.TrimSpace(in.Name),
		Logo:        strings.TrimSpace(in.Logo),
		Description: strings.TrimSpace(in.Description),
		CategoryID:  in.CategoryID,
		Backgrounds: in.Backgrounds,
	}
}

func (s ScopeService) List(p repositories.ListParams) ([]models.Scope, int, error) {
	return s.Repo.ListPaged(p)
}

func (s ScopeService) Get(id int64) (models.Scope, error) {
	return s.Repo.GetByID(id)
}

func (s ScopeService) Create(ctx context.Context, in ScopeInput) (models.Scope, error) {
	if err := in.validate(); err != nil {
		return models.Scope{}, err
	}

	id, err := s.Repo.Create(in.toModel())
	if err != nil {
		return models.Scope{}, err
	}

	s.afterMutation(ctx, "create", id, in.Name)
	return s.Repo.GetByID(id)
}

func (s ScopeService) Update(ctx context.Context, id int64, in ScopeInput) (models.Scope, error) {
	if err := in.validate(); err != nil {
		return models.Scope{}, err
	}

	if err := s.Repo.Update(id, in.toModel()); err != nil {
		return models.Scope{}, err
	}

	s.afterMutation(ctx, "update", id, in.Name)
	return s.Repo.GetByID(id)
}

func (s ScopeService) Delete(ctx context.Context, id int64) error {
	if err := s.Repo.Delete(id); err != nil {
		return err
	}
	s.afterMutation(ctx, "delete", id, "")
	return nil
}

func (s ScopeService) Options(ctx context.Context) ([]models.Option, error) {
	if opts, ok := s.Cache.Get(ctx, cache.KeyScopeOptions); ok {
		return opts, nil
	}
	opts, err := s.Repo.Options()
	if err != nil {
		return nil, err
	}
	s.Cache.Set(ctx, cache.KeyScopeOptions, opts)
	return opts, nil
}

func (s ScopeService) afterMutation(ctx context.Context, action string, id int64, name string) {
	s.Cache.Invalidate(ctx, cache.KeyScopeOptions)
	utils.LogEvent(s.RequestID, "scope", action, name)
	_ = s.Audit.PublishAudit(ctx, queue.AuditEvent{
		Resource: "scope",
		Action:   action,
		EntityID: id,
		Name:     name,
		ActorID:  s.ActorID,
	})
}
