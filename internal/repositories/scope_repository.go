package repositories

import (
	"database/sql"
	"errors"
	"strings"

	intconfig "touradmin/internal/config"
	"touradmin/internal/domain"
	"touradmin/internal/domain/models"
)

type ScopeRepository struct {
	DB *sql.DB
}

func (r ScopeRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const scopeSelect = `
	SELECT s.id, s.name, COALESCE(s.logo,''), COALESCE(s.description,''),
	       s.category_id, c.name, s.created_at, s.updated_at
	FROM scopes s
	JOIN categories c ON c.id = s.category_id`

func (r ScopeRepository) ListPaged(p ListParams) ([]models.Scope, int, error) {
	p = p.Normalize()
	db := r.db()

	conds := []string{}
	args := []any{}
	if s := strings.TrimSpace(p.Search); s != "" {
		conds = append(conds, "s.name LIKE ?")
		args = append(args, "%"+s+"%")
	}
	if p.CategoryID > 0 {
		conds = append(conds, "s.category_id = ?")
		args = append(args, p.CategoryID)
	}
	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	var total int
	countQuery := `SELECT COUNT(*) FROM scopes s JOIN categories c ON c.id = s.category_id` + where
	if err := db.QueryRow(countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	limit, offset := p.limitOffset()
	rows, err := db.Query(scopeSelect+where+" ORDER BY s.id DESC LIMIT ? OFFSET ?", append(args, limit, offset)...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	list := []models.Scope{}
	for rows.Next() {
		s, err := scanScope(rows)
		if err != nil {
			return nil, 0, err
		}
		list = append(list, s)
	}
	return list, total, rows.Err()
}

func (r ScopeRepository) GetByID(id int64) (models.Scope, error) {
	if id <= 0 {
		return models.Scope{}, domain.ValidationError{Field: "id", Msg: "không hợp lệ"}
	}
	db := r.db()

	row := db.QueryRow(scopeSelect+" WHERE s.id = ? LIMIT 1", id)
	s, err := scanScope(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Scope{}, domain.NotFoundError{Resource: "scope", Err: err}
		}
		return models.Scope{}, err
	}

	bgs, err := r.backgrounds(id)
	if err != nil {
		return models.Scope{}, err
	}
	s.Backgrounds = bgs
	return s, nil
}

func (r ScopeRepository) Create(s models.Scope) (int64, error) {
	db := r.db()
	tx, err := db.Begin()
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.Exec(`
		INSERT INTO scopes (name, logo, description, category_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, NOW(), NOW())
	`, s.Name, s.Logo, s.Description, s.CategoryID)
	if err != nil {
		if isDuplicate(err) {
			return 0, domain.ConflictError{Resource: "scope", Err: err}
		}
		return 0, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	if err := replaceBackgrounds(tx, id, s.Backgrounds); err != nil {
		return 0, err
	}
	return id, tx.Commit()
}

func (r ScopeRepository) Update(id int64, s models.Scope) error {
	db := r.db()
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.Exec(`
		UPDATE scopes SET name = ?, logo = ?, description = ?, category_id = ?, updated_at = NOW()
		WHERE id = ?
	`, s.Name, s.Logo, s.Description, s.CategoryID, id)
	if err != nil {
		if isDuplicate(err) {
			return domain.ConflictError{Resource: "scope", Err: err}
		}
		return err
	}
	if err := requireAffected(res, "scope"); err != nil {
		return err
	}
	if err := replaceBackgrounds(tx, id, s.Backgrounds); err != nil {
		return err
	}
	return tx.Commit()
}

// Delete refuses to remove a scope that still backs a costume.
func (r ScopeRepository) Delete(id int64) error {
	db := r.db()

	var refs int
	if err := db.QueryRow(`SELECT COUNT(*) FROM costumes WHERE scope_id = ?`, id).Scan(&refs); err != nil {
		return err
	}
	if refs > 0 {
		return domain.InUseError{Resource: "scope"}
	}

	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`DELETE FROM scope_backgrounds WHERE scope_id = ?`, id); err != nil {
		return err
	}
	res, err := tx.Exec(`DELETE FROM scopes WHERE id = ?`, id)
	if err != nil {
		if isReferenced(err) {
			return domain.InUseError{Resource: "scope", Err: err}
		}
		return err
	}
	if err := requireAffected(res, "scope"); err != nil {
		return err
	}
	return tx.Commit()
}

func (r ScopeRepository) Options() ([]models.Option, error) {
	rows, err := r.db().Query(`SELECT id, name FROM scopes ORDER BY name ASC`)
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

func (r ScopeRepository) backgrounds(scopeID int64) ([]string, error) {
	rows, err := r.db().Query(`SELECT url FROM scope_backgrounds WHERE scope_id = ? ORDER BY position ASC`, scopeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	urls := []string{}
	for rows.Next() {
		var u string
		if err := rows.Scan(&u); err != nil {
			return nil, err
		}
		urls = append(urls, u)
	}
	return urls, rows.Err()
}

func replaceBackgrounds(tx *sql.Tx, scopeID int64, urls []string) error {
	if _, err := tx.Exec(`DELETE FROM scope_backgrounds WHERE scope_id = ?`, scopeID); err != nil {
		return err
	}
	for i, u := range urls {
		if _, err := tx.Exec(`
			INSERT INTO scope_backgrounds (scope_id, position, url) VALUES (?, ?, ?)
		`, scopeID, i, u); err != nil {
			return err
		}
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanScope(row rowScanner) (models.Scope, error) {
	var (
		s            models.Scope
		categoryName string
	)
	if err := row.Scan(&s.ID, &s.Name, &s.Logo, &s.Description,
		&s.CategoryID, &categoryName, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return models.Scope{}, err
	}
	s.Category = &models.Option{ID: s.CategoryID, Name: categoryName}
	s.Backgrounds = []string{}
	return s, nil
}
