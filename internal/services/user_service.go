package services

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"touradmin/internal/domain"
	"touradmin/internal/domain/models"
	"touradmin/internal/queue"
	"touradmin/internal/repositories"
	"touradmin/internal/utils"
)

type UserService struct {
	Repo      repositories.UserRepository
	Audit     *queue.Publisher
	RequestID string
	ActorID   int64
}

// UserInput is the admin-side payload for creating or updating an account.
// Password is only honored on create.
type UserInput struct {
	Email        string `json:"email"`
	Password     string `json:"password"`
	FirstName    string `json:"firstName" binding:"required"`
	LastName     string `json:"lastName" binding:"required"`
	MobileNumber string `json:"mobileNumber"`
	Avatar       string `json:"avatar"`
	Model        string `json:"model"`
	Role         string `json:"role"`
}

// ProfileInput is the self-service subset: no email, no role.
type ProfileInput struct {
	FirstName    string `json:"firstName" binding:"required"`
	LastName     string `json:"lastName" binding:"required"`
	MobileNumber string `json:"mobileNumber"`
	Avatar       string `json:"avatar"`
	Model        string `json:"model"`
}

func (s UserService) List(p repositories.ListParams) ([]models.User, int, error) {
	return s.Repo.ListPaged(p)
}

func (s UserService) Get(id int64) (models.User, error) {
	return s.Repo.GetByID(id)
}

func (s UserService) Create(ctx context.Context, in UserInput) (models.User, error) {
	email := strings.TrimSpace(strings.ToLower(in.Email))
	if email == "" {
		return models.User{}, domain.ValidationError{Field: "email", Msg: "bắt buộc"}
	}
	if len(in.Password) < 6 {
		return models.User{}, domain.ValidationError{Field: "password", Msg: "tối thiểu 6 ký tự"}
	}
	role := normalizeRole(in.Role)

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, domain.InternalError{Msg: "không thể băm mật khẩu", Err: err}
	}

	id, err := s.Repo.Create(models.User{
		Email:        email,
		FirstName:    strings.TrimSpace(in.FirstName),
		LastName:     strings.TrimSpace(in.LastName),
		MobileNumber: strings.TrimSpace(in.MobileNumber),
		Avatar:       in.Avatar,
		Model:        in.Model,
		PasswordHash: string(hash),
		Role:         role,
	})
	if err != nil {
		return models.User{}, err
	}

	s.afterMutation(ctx, "create", id, email)
	return s.Repo.GetByID(id)
}

func (s UserService) Update(ctx context.Context, id int64, in UserInput) (models.User, error) {
	if strings.TrimSpace(in.FirstName) == "" || strings.TrimSpace(in.LastName) == "" {
		return models.User{}, domain.ValidationError{Field: "name", Msg: "bắt buộc"}
	}

	err := s.Repo.Update(id, models.User{
		FirstName:    strings.TrimSpace(in.FirstName),
		LastName:     strings.TrimSpace(in.LastName),
		MobileNumber: strings.TrimSpace(in.MobileNumber),
		Avatar:       in.Avatar,
		Model:        in.Model,
		Role:         normalizeRole(in.Role),
	})
	if err != nil {
		return models.User{}, err
	}

	s.afterMutation(ctx, "update", id, "")
	return s.Repo.GetByID(id)
}

func (s UserService) UpdateProfile(ctx context.Context, id int64, in ProfileInput) (models.User, error) {
	if strings.TrimSpace(in.FirstName) == "" || strings.TrimSpace(in.LastName) == "" {
		return models.User{}, domain.ValidationError{Field: "name", Msg: "bắt buộc"}
	}

	err := s.Repo.UpdateProfile(id, models.User{
		FirstName:    strings.TrimSpace(in.FirstName),
		LastName:     strings.TrimSpace(in.LastName),
		MobileNumber: strings.TrimSpace(in.MobileNumber),
		Avatar:       in.Avatar,
		Model:        in.Model,
	})
	if err != nil {
		return models.User{}, err
	}

	utils.LogEvent(s.RequestID, "user", "update_profile", "")
	return s.Repo.GetByID(id)
}

// ChangePassword verifies the current password before storing the new hash.
// A wrong current password surfaces as NOT_MATCH, not as a generic failure.
func (s UserService) ChangePassword(id int64, current, next string) error {
	if len(next) < 6 {
		return domain.ValidationError{Field: "newPassword", Msg: "tối thiểu 6 ký tự"}
	}

	u, err := s.Repo.GetByID(id)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(current)); err != nil {
		return domain.NotMatchError{Field: "password", Err: err}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(next), bcrypt.DefaultCost)
	if err != nil {
		return domain.InternalError{Msg: "không thể băm mật khẩu", Err: err}
	}

	utils.LogEvent(s.RequestID, "user", "change_password", "")
	return s.Repo.UpdatePasswordHash(id, string(hash))
}

func (s UserService) Delete(ctx context.Context, id int64) error {
	if err := s.Repo.Delete(id); err != nil {
		return err
	}
	s.afterMutation(ctx, "delete", id, "")
	return nil
}

func (s UserService) afterMutation(ctx context.Context, action string, id int64, name string) {
	utils.LogEvent(s.RequestID, "user", action, name)
	_ = s.Audit.PublishAudit(ctx, queue.AuditEvent{
		Resource: "user",
		Action:   action,
		EntityID: id,
		Name:     name,
		ActorID:  s.ActorID,
	})
}

func normalizeRole(role string) string {
	if strings.EqualFold(strings.TrimSpace(role), models.RoleAdmin) {
		return models.RoleAdmin
	}
	return models.RoleUser
}
