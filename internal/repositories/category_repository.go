package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	intconfig "touradmin/internal/config"
	"touradmin/internal/domain"
	"touradmin/internal/domain/models"

	"github.com/go-sql-driver/mysql"
)

type CategoryRepository struct {
	DB *sql.DB
}

func (r CategoryRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const categorySelect = `
	SELECT id, name, COALESCE(description,''), created_at, updated_at
	FROM categories`

// ListPaged returns one page of categories plus the total over the whole
// filtered set.
func (r CategoryRepository) ListPaged(p ListParams) ([]models.Category, int, error) {
	p = p.Normalize()
	db := r.db()

	where := ""
	args := []any{}
	if s := strings.TrimSpace(p.Search); s != "" {
		where = " WHERE name LIKE ?"
		args = append(args, "%"+s+"%")
	}

	var total int
	if err := db.QueryRow(`SELECT COUNT(*) FROM categories`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	limit, offset := p.limitOffset()
	query := categorySelect + where + " ORDER BY id DESC LIMIT ? OFFSET ?"
	rows, err := db.Query(query, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	list := []models.Category{}
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, 0, err
		}
		list = append(list, c)
	}
	return list, total, rows.Err()
}

func (r CategoryRepository) GetByID(id int64) (models.Category, error) {
	if id <= 0 {
		return models.Category{}, domain.ValidationError{Field: "id", Msg: "không hợp lệ"}
	}

	var c models.Category
	err := r.db().QueryRow(categorySelect+" WHERE id = ? LIMIT 1", id).
		Scan(&c.ID, &c.Name, &c.Description, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Category{}, domain.NotFoundError{Resource: "category", Err: err}
		}
		return models.Category{}, err
	}
	return c, nil
}

func (r CategoryRepository) Create(c models.Category) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO categories (name, description, created_at, updated_at)
		VALUES (?, ?, NOW(), NOW())
	`, c.Name, c.Description)
	if err != nil {
		if isDuplicate(err) {
			return 0, domain.ConflictError{Resource: "category", Err: err}
		}
		return 0, err
	}
	return res.LastInsertId()
}

func (r CategoryRepository) Update(id int64, c models.Category) error {
	res, err := r.db().Exec(`
		UPDATE categories SET name = ?, description = ?, updated_at = NOW()
		WHERE id = ?
	`, c.Name, c.Description, id)
	if err != nil {
		if isDuplicate(err) {
			return domain.ConflictError{Resource: "category", Err: err}
		}
		return err
	}
	return requireAffected(res, "category")
}

// Delete refuses to remove a category that still backs a scope.
func (r CategoryRepository) Delete(id int64) error {
	db := r.db()

	var refs int
	if err := db.QueryRow(`SELECT COUNT(*) FROM scopes WHERE category_id = ?`, id).Scan(&refs); err != nil {
		return err
	}
	if refs > 0 {
		return domain.InUseError{Resource: "category"}
	}

	res, err := db.Exec(`DELETE FROM categories WHERE id = ?`, id)
	if err != nil {
		if isReferenced(err) {
			return domain.InUseError{Resource: "category", Err: err}
		}
		return err
	}
	return requireAffected(res, "category")
}

func (r CategoryRepository) Options() ([]models.Option, error) {
	rows, err := r.db().Query(`SELECT id, name FROM categories ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	opts := []models.Option{}
	for rows.Next() {
		var o models.Option
		if err := rows.Scan(&o.ID, &o.Name); err != nil {
			return nil, err
		}
		opts = append(opts, o)
	}
	return opts, rows.Err()
}

// isDuplicate reports MySQL 1062 (unique key violation).
func isDuplicate(err error) bool {
	var me *mysql.MySQLError
	return errors.As(err, &me) && me.Number == 1062
}

// isReferenced reports MySQL 1451 (row referenced by a foreign key).
func isReferenced(err error) bool {
	var me *mysql.MySQLError
	return errors.As(err, &me) && me.Number == 1451
}

func requireAffected(res sql.Result, resource string) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.NotFoundError{Resource: resource, Err: fmt.Errorf("no rows affected")}
	}
	return nil
}
