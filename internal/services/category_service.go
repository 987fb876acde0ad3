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

// CategoryService wires the category CRUD to the repository, the option cache
// and the audit trail.
type CategoryService struct {
	Repo      repositories.CategoryRepository
	Cache     *cache.OptionsCache
	Audit     *queue.Publisher
	RequestID string
	ActorID   int64
}

type CategoryInput struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

func (s CategoryService) List(p repositories.ListParams) ([]models.Category, int, error) {
	return s.Repo.ListPaged(p)
}

func (s CategoryService) Get(id int64) (models.Category, error) {
	return s.Repo.GetByID(id)
}

func (s CategoryService) Create(ctx context.Context, in CategoryInput) (models.Category, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return models.Category{}, domain.ValidationError{Field: "name", Msg: "bắt buộc"}
	}

	id, err := s.Repo.Create(models.Category{Name: name, Description: strings.TrimSpace(in.Description)})
	if err != nil {
		return models.Category{}, err
	}

	s.afterMutation(ctx, "create", id, name)
	return s.Repo.GetByID(id)
}

func (s CategoryService) Update(ctx context.Context, id int64, in CategoryInput) (models.Category, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return models.Category{}, domain.ValidationError{Field: "name", Msg: "bắt buộc"}
	}

	if err := s.Repo.Update(id, models.Category{Name: name, Description: strings.TrimSpace(in.Description)}); err != nil {
		return models.Category{}, err
	}

	s.afterMutation(ctx, "update", id, name)
	return s.Repo.GetByID(id)
}

func (s CategoryService) Delete(ctx context.Context, id int64) error {
	if err := s.Repo.Delete(id); err != nil {
		return err
	}
	s.afterMutation(ctx, "delete", id, "")
	return nil
}

func (s CategoryService) Options(ctx context.Context) ([]models.Option, error) {
	if opts, ok := s.Cache.Get(ctx, cache.KeyCategoryOptions); ok {
		return opts, nil
	}
	opts, err := s.Repo.Options()
	if err != nil {
		return nil, err
	}
	s.Cache.Set(ctx, cache.KeyCategoryOptions, opts)
	return opts, nil
}

func (s CategoryService) afterMutation(ctx context.Context, action string, id int64, name string) {
	s.Cache.Invalidate(ctx, cache.KeyCategoryOptions)
	utils.LogEvent(s.RequestID, "category", action, name)
	_ = s.Audit.PublishAudit(ctx, queue.AuditEvent{
		Resource: "category",
		Action:   action,
		EntityID: id,
		Name:     name,
		ActorID:  s.ActorID,
	})
}
