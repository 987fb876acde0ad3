package repositories

import (
	"testing"
	"time"

	"touradmin/internal/domain"
	"touradmin/internal/domain/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
)

func TestScopeGetByIDLoadsBackgrounds(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery("(?s)FROM scopes s.+JOIN categories c.+WHERE s\\.id = \\?").
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "logo", "description", "category_id", "name", "created_at", "updated_at"}).
			AddRow(5, "Miền Bắc", "http://cdn/logo.png", "", 2, "Truyền thống", now, now))
	mock.ExpectQuery("SELECT url FROM scope_backgrounds WHERE scope_id = \\? ORDER BY position ASC").
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"url"}).
			AddRow("http://cdn/bg1.png").
			AddRow("http://cdn/bg2.png"))

	s, err := ScopeRepository{DB: db}.GetByID(5)
	if err != nil {
		t.Fatalf("GetByID returned error: %v", err)
	}
	if s.Category == nil || s.Category.Name != "Truyền thống" {
		t.Fatalf("joined category not attached: %+v", s.Category)
	}
	if len(s.Backgrounds) != 2 || s.Backgrounds[0] != "http://cdn/bg1.png" {
		t.Fatalf("backgrounds not ordered by position: %v", s.Backgrounds)
	}
}

func TestScopeCreateWritesBackgroundsInOneTx(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO scopes").
		WithArgs("Miền Nam", "http://cdn/logo.png", "", int64(2)).
		WillReturnResult(sqlmock.NewResult(9, 1))
	mock.ExpectExec("DELETE FROM scope_backgrounds WHERE scope_id = \\?").
		WithArgs(int64(9)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO scope_backgrounds").
		WithArgs(int64(9), 0, "http://cdn/bg.png").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	id, err := ScopeRepository{DB: db}.Create(models.Scope{
		Name:        "Miền Nam",
		Logo:        "http://cdn/logo.png",
		CategoryID:  2,
		Backgrounds: []string{"http://cdn/bg.png"},
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if id != 9 {
		t.Fatalf("expected inserted id 9, got %d", id)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestScopeCreateDuplicateRollsBack(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO scopes").
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry"})
	mock.ExpectRollback()

	_, err = ScopeRepository{DB: db}.Create(models.Scope{Name: "Miền Nam", Logo: "x", CategoryID: 2})
	if !domain.IsConflict(err) {
		t.Fatalf("1062 should map to conflict, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestScopeDeleteInUse(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM costumes WHERE scope_id = \\?").
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	err = ScopeRepository{DB: db}.Delete(3)
	if !domain.IsInUse(err) {
		t.Fatalf("referenced scope should refuse deletion, got %v", err)
	}
}

func TestScopeListPagedFiltersByCategory(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM scopes s").
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery("(?s)FROM scopes s.+ORDER BY s\\.id DESC LIMIT \\? OFFSET \\?").
		WithArgs(int64(2), 10, 0).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "logo", "description", "category_id", "name", "created_at", "updated_at"}).
			AddRow(5, "Miền Bắc", "", "", 2, "Truyền thống", now, now))

	list, total, err := ScopeRepository{DB: db}.ListPaged(ListParams{CategoryID: 2})
	if err != nil {
		t.Fatalf("ListPaged returned error: %v", err)
	}
	if total != 1 || len(list) != 1 || list[0].CategoryID != 2 {
		t.Fatalf("category filter applied incorrectly: total=%d list=%+v", total, list)
	}
}
