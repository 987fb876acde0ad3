package repositories

import (
	"database/sql"
	"errors"
	"strings"

	intconfig "touradmin/internal/config"
	"touradmin/internal/domain"
	"touradmin/internal/domain/models"
)

type CostumeRepository struct {
	DB *sql.DB
}

func (r CostumeRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const costumeSelect = `
	SELECT t.id, t.name, COALESCE(t.picture,''), COALESCE(t.model,''),
	       COALESCE(t.description,''), t.scope_id, s.name, t.created_at, t.updated_at
	FROM costumes t
	JOIN scopes s ON s.id = t.scope_id`

func (r CostumeRepository) ListPaged(p ListParams) ([]models.Costume, int, error) {
	p = p.Normalize()
	db := r.db()

	conds := []string{}
	args := []any{}
	if s := strings.TrimSpace(p.Search); s != "" {
		conds = append(conds, "t.name LIKE ?")
		args = append(args, "%"+s+"%")
	}
	if p.ScopeID > 0 {
		conds = append(conds, "t.scope_id = ?")
		args = append(args, p.ScopeID)
	}
	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	var total int
	countQuery := `SELECT COUNT(*) FROM costumes t JOIN scopes s ON s.id = t.scope_id` + where
	if err := db.QueryRow(countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	limit, offset := p.limitOffset()
	rows, err := db.Query(costumeSelect+where+" ORDER BY t.id DESC LIMIT ? OFFSET ?", append(args, limit, offset)...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	list := []models.Costume{}
	for rows.Next() {
		c, err := scanCostume(rows)
		if err != nil {
			return nil, 0, err
		}
		list = append(list, c)
	}
	return list, total, rows.Err()
}

func (r CostumeRepository) GetByID(id int64) (models.Costume, error) {
	if id <= 0 {
		return models.Costume{}, domain.ValidationError{Field: "id", Msg: "không hợp lệ"}
	}

	row := r.db().QueryRow(costumeSelect+" WHERE t.id = ? LIMIT 1", id)
	c, err := scanCostume(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Costume{}, domain.NotFoundError{Resource: "costume", Err: err}
		}
		return models.Costume{}, err
	}
	return c, nil
}

func (r CostumeRepository) Create(c models.Costume) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO costumes (name, picture, model, description, scope_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, NOW(), NOW())
	`, c.Name, c.Picture, c.Model, c.Description, c.ScopeID)
	if err != nil {
		if isDuplicate(err) {
			return 0, domain.ConflictError{Resource: "costume", Err: err}
		}
		return 0, err
	}
	return res.LastInsertId()
}

func (r CostumeRepository) Update(id int64, c models.Costume) error {
	res, err := r.db().Exec(`
		UPDATE costumes SET name = ?, picture = ?, model = ?, description = ?, scope_id = ?, updated_at = NOW()
		WHERE id = ?
	`, c.Name, c.Picture, c.Model, c.Description, c.ScopeID, id)
	if err != nil {
		if isDuplicate(err) {
			return domain.ConflictError{Resource: "costume", Err: err}
		}
		return err
	}
	return requireAffected(res, "costume")
}

func (r CostumeRepository) Delete(id int64) error {
	res, err := r.db().Exec(`DELETE FROM costumes WHERE id = ?`, id)
	if err != nil {
		if isReferenced(err) {
			return domain.InUseError{Resource: "costume", Err: err}
		}
		return err
	}
	return requireAffected(res, "costume")
}

// ListAll returns every costume in catalogue order, used by the PDF report.
func (r CostumeRepository) ListAll() ([]models.Costume, error) {
	rows, err := r.db().Query(costumeSelect + " ORDER BY s.name ASC, t.name ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []models.Costume{}
	for rows.Next() {
		c, err := scanCostume(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

func scanCostume(row rowScanner) (models.Costume, error) {
	var (
		c         models.Costume
		scopeName string
	)
	if err := row.Scan(&c.ID, &c.Name, &c.Picture, &c.Model,
		&c.Description, &c.ScopeID, &scopeName, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return models.Costume{}, err
	}
	c.Scope = &models.Option{ID: c.ScopeID, Name: scopeName}
	return c, nil
}
