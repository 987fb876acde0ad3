package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"touradmin/internal/domain"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func performDomainError(t *testing.T, err error) (*httptest.ResponseRecorder, Envelope) {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	RespondDomainError(c, err)

	var env Envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("response is not an envelope: %v (%s)", err, w.Body.String())
	}
	return w, env
}

func TestRespondDomainErrorMapping(t *testing.T) {
	cases := []struct {
		err      error
		httpCode int
		status   string
	}{
		{domain.NotFoundError{Resource: "category"}, http.StatusNotFound, StatusNotFound},
		{domain.ConflictError{Resource: "category"}, http.StatusConflict, StatusDuplicateEntity},
		{domain.InUseError{Resource: "category"}, http.StatusConflict, StatusAlreadyUsedElsewhere},
		{domain.ValidationError{Field: "name", Msg: "bắt buộc"}, http.StatusBadRequest, StatusArgumentNotValid},
		{domain.NotMatchError{Field: "password"}, http.StatusBadRequest, StatusNotMatch},
		{errors.New("db gone"), http.StatusInternalServerError, StatusException},
	}

	for _, tc := range cases {
		w, env := performDomainError(t, tc.err)
		if w.Code != tc.httpCode {
			t.Errorf("%T: http code %d, want %d", tc.err, w.Code, tc.httpCode)
		}
		if env.Status != tc.status {
			t.Errorf("%T: status %s, want %s", tc.err, env.Status, tc.status)
		}
		if env.Errors == nil || env.Errors.Details == "" {
			t.Errorf("%T: error details missing", tc.err)
		}
	}
}

func TestRespondDomainErrorHidesInternals(t *testing.T) {
	_, env := performDomainError(t, errors.New("dial tcp 10.0.0.3:3306: connection refused"))
	if env.Errors.Details == "dial tcp 10.0.0.3:3306: connection refused" {
		t.Fatalf("internal error text must not leak to clients")
	}
}

func TestParseListParams(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/?page=2&size=10&search=%20lễ%20&categoryId=4", nil)

	p := ParseListParams(c)
	if p.Page != 2 || p.Size != 10 {
		t.Errorf("paging parsed incorrectly: %+v", p)
	}
	if p.Search != "lễ" {
		t.Errorf("search should be trimmed, got %q", p.Search)
	}
	if p.CategoryID != 4 || p.ScopeID != 0 {
		t.Errorf("filters parsed incorrectly: %+v", p)
	}
}

func TestParseListParamsDefaults(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/?page=-3&size=0", nil)

	p := ParseListParams(c)
	if p.Page != 0 || p.Size != 10 {
		t.Errorf("invalid paging should normalize to page 0 size 10, got %+v", p)
	}
}

func TestPathID(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Params = gin.Params{{Key: "id", Value: "12"}}

	id, ok := PathID(c)
	if !ok || id != 12 {
		t.Fatalf("valid id rejected: id=%d ok=%v", id, ok)
	}

	for _, bad := range []string{"abc", "0", "-4", ""} {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
		c.Params = gin.Params{{Key: "id", Value: bad}}

		if _, ok := PathID(c); ok {
			t.Errorf("id %q should be rejected", bad)
		}
		if w.Code != http.StatusBadRequest {
			t.Errorf("id %q: http code %d, want 400", bad, w.Code)
		}
	}
}
