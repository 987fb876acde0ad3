package repositories

import (
	"database/sql"
	"errors"
	"strings"

	intconfig "touradmin/internal/config"
	"touradmin/internal/domain"
	"touradmin/internal/domain/models"
)

type UserRepository struct {
	DB *sql.DB
}

func (r UserRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const userSelect = `
	SELECT id, email, first_name, last_name, COALESCE(mobile_number,''),
	       COALESCE(avatar,''), COALESCE(model,''), password_hash, role,
	       created_at, updated_at
	FROM users`

func (r UserRepository) ListPaged(p ListParams) ([]models.User, int, error) {
	p = p.Normalize()
	db := r.db()

	where := ""
	args := []any{}
	if s := strings.TrimSpace(p.Search); s != "" {
		where = " WHERE (email LIKE ? OR first_name LIKE ? OR last_name LIKE ?)"
		like := "%" + s + "%"
		args = append(args, like, like, like)
	}

	var total int
	if err := db.QueryRow(`SELECT COUNT(*) FROM users`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	limit, offset := p.limitOffset()
	rows, err := db.Query(userSelect+where+" ORDER BY id DESC LIMIT ? OFFSET ?", append(args, limit, offset)...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	list := []models.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, 0, err
		}
		list = append(list, u)
	}
	return list, total, rows.Err()
}

func (r UserRepository) GetByID(id int64) (models.User, error) {
	if id <= 0 {
		return models.User{}, domain.ValidationError{Field: "id", Msg: "không hợp lệ"}
	}

	row := r.db().QueryRow(userSelect+" WHERE id = ? LIMIT 1", id)
	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, domain.NotFoundError{Resource: "user", Err: err}
		}
		return models.User{}, err
	}
	return u, nil
}

func (r UserRepository) GetByEmail(email string) (models.User, error) {
	row := r.db().QueryRow(userSelect+" WHERE email = ? LIMIT 1", email)
	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, domain.NotFoundError{Resource: "user", Err: err}
		}
		return models.User{}, err
	}
	return u, nil
}

func (r UserRepository) Create(u models.User) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO users (email, first_name, last_name, mobile_number, avatar, model, password_hash, role, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, NOW(), NOW())
	`, u.Email, u.FirstName, u.LastName, u.MobileNumber, u.Avatar, u.Model, u.PasswordHash, u.Role)
	if err != nil {
		if isDuplicate(err) {
			return 0, domain.ConflictError{Resource: "user", Err: err}
		}
		return 0, err
	}
	return res.LastInsertId()
}

// Update rewrites the admin-managed fields. Email stays immutable.
func (r UserRepository) Update(id int64, u models.User) error {
	res, err := r.db().Exec(`
		UPDATE users SET first_name = ?, last_name = ?, mobile_number = ?, avatar = ?, model = ?, role = ?, updated_at = NOW()
		WHERE id = ?
	`, u.FirstName, u.LastName, u.MobileNumber, u.Avatar, u.Model, u.Role, id)
	if err != nil {
		return err
	}
	return requireAffected(res, "user")
}

// UpdateProfile rewrites the self-service fields, leaving role untouched.
func (r UserRepository) UpdateProfile(id int64, u models.User) error {
	res, err := r.db().Exec(`
		UPDATE users SET first_name = ?, last_name = ?, mobile_number = ?, avatar = ?, model = ?, updated_at = NOW()
		WHERE id = ?
	`, u.FirstName, u.LastName, u.MobileNumber, u.Avatar, u.Model, id)
	if err != nil {
		return err
	}
	return requireAffected(res, "user")
}

func (r UserRepository) UpdatePasswordHash(id int64, hash string) error {
	res, err := r.db().Exec(`UPDATE users SET password_hash = ?, updated_at = NOW() WHERE id = ?`, hash, id)
	if err != nil {
		return err
	}
	return requireAffected(res, "user")
}

func (r UserRepository) Delete(id int64) error {
	res, err := r.db().Exec(`DELETE FROM users WHERE id = ?`, id)
	if err != nil {
		if isReferenced(err) {
			return domain.InUseError{Resource: "user", Err: err}
		}
		return err
	}
	return requireAffected(res, "user")
}

func scanUser(row rowScanner) (models.User, error) {
	var u models.User
	if err := row.Scan(&u.ID, &u.Email, &u.FirstName, &u.LastName, &u.MobileNumber,
		&u.Avatar, &u.Model, &u.PasswordHash, &u.Role, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return models.User{}, err
	}
	return u, nil
}
