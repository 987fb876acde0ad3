package services

import (
	"context"
	"strings"

	"touradmin/internal/domain"
	"touradmin/internal/domain/models"
	"touradmin/internal/queue"
	"touradmin/internal/repositories"
	"touradmin/internal/utils"
)

type CostumeService struct {
	Repo      repositories.CostumeRepository
	Audit     *queue.Publisher
	RequestID string
	ActorID   int64
}

type CostumeInput struct {
	Name        string `json:"name" binding:"required"`
	Picture     string `json:"picture"`
	Model       string `json:"model"`
	Description string `json:"description"`
	ScopeID     int64  `json:"scopeId" binding:"required"`
}

func (in CostumeInput) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return domain.ValidationError{Field: "name", Msg: "bắt buộc"}
	}
	if in.ScopeID <= 0 {
		return domain.ValidationError{Field: "scopeId", Msg: "bắt buộc"}
	}
	if strings.TrimSpace(in.Picture) == "" {
		return domain.ValidationError{Field: "picture", Msg: "bắt buộc"}
	}
	if strings.TrimSpace(in.Model) == "" {
		return domain.ValidationError{Field: "model", Msg: "bắt buộc"}
	}
	if !strings.HasSuffix(strings.ToLower(in.Model), ".glb") {
		return domain.ValidationError{Field: "model", Msg: "phải ở định dạng .glb"}
	}
	return nil
}

func (in CostumeInput) toModel() models.Costume {
	return models.Costume{
		Name:        strings.TrimSpace(in.Name),
		Picture:     strings.TrimSpace(in.Picture),
		Model:       strings.TrimSpace(in.Model),
		Description: strings.TrimSpace(in.Description),
		ScopeID:     in.ScopeID,
	}
}

func (s CostumeService) List(p repositories.ListParams) ([]models.Costume, int, error) {
	return s.Repo.ListPaged(p)
}

func (s CostumeService) Get(id int64) (models.Costume, error) {
	return s.Repo.GetByID(id)
}

func (s CostumeService) Create(ctx context.Context, in CostumeInput) (models.Costume, error) {
	if err := in.validate(); err != nil {
		return models.Costume{}, err
	}

	id, err := s.Repo.Create(in.toModel())
	if err != nil {
		return models.Costume{}, err
	}

	s.afterMutation(ctx, "create", id, in.Name)
	return s.Repo.GetByID(id)
}

func (s CostumeService) Update(ctx context.Context, id int64, in CostumeInput) (models.Costume, error) {
	if err := in.validate(); err != nil {
		return models.Costume{}, err
	}

	if err := s.Repo.Update(id, in.toModel()); err != nil {
		return models.Costume{}, err
	}

	s.afterMutation(ctx, "update", id, in.Name)
	return s.Repo.GetByID(id)
}

func (s CostumeService) Delete(ctx context.Context, id int64) error {
	if err := s.Repo.Delete(id); err != nil {
		return err
	}
	s.afterMutation(ctx, "delete", id, "")
	return nil
}

func (s CostumeService) afterMutation(ctx context.Context, action string, id int64, name string) {
	utils.LogEvent(s.RequestID, "costume", action, name)
	_ = s.Audit.PublishAudit(ctx, queue.AuditEvent{
		Resource: "costume",
		Action:   action,
		EntityID: id,
		Name:     name,
		ActorID:  s.ActorID,
	})
}
