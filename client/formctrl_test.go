package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
)

type formServer struct {
	mu       sync.Mutex
	requests []string
	status   Status
}

func (fs *formServer) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fs.mu.Lock()
		fs.requests = append(fs.requests, r.Method+" "+r.URL.Path)
		status := fs.status
		fs.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		switch status {
		case StatusOK, "":
			json.NewEncoder(w).Encode(map[string]any{"status": StatusOK, "payload": nil})
		case StatusDuplicateEntity:
			w.WriteHeader(http.StatusConflict)
			json.NewEncoder(w).Encode(map[string]any{"status": status, "errors": map[string]string{"details": "duplicate"}})
		default:
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(map[string]any{"status": status, "errors": map[string]string{"details": "boom"}})
		}
	}
}

func (fs *formServer) count() int {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	return len(fs.requests)
}

func TestFormSaveIgnoredWhenClean(t *testing.T) {
	fs := &formServer{}
	srv := httptest.NewServer(fs.handler())
	defer srv.Close()

	fc := NewForm(Categories(New(srv.URL)), 0, true)
	fc.Save(context.Background(), "Múa rối")

	if fs.count() != 0 {
		t.Fatalf("clean form must not submit, got %d requests", fs.count())
	}
	if fc.State() != FormClean {
		t.Errorf("state should stay clean, got %s", fc.State())
	}
}

func TestFormCreateSuccessResetsAndLeaves(t *testing.T) {
	fs := &formServer{}
	srv := httptest.NewServer(fs.handler())
	defer srv.Close()

	notify := &fakeNotifier{}
	nav := &fakeNavigator{}
	fc := NewForm(Categories(New(srv.URL)), 0, true)
	fc.Notify = notify
	fc.Nav = nav
	fc.Prepare = func() (any, error) {
		return map[string]string{"name": "Múa rối", "picture": "http://cdn/pic.png"}, nil
	}

	fc.MarkDirty()
	fc.Save(context.Background(), "Múa rối")

	if fc.State() != FormClean {
		t.Errorf("successful save should reset to clean, got %s", fc.State())
	}
	if nav.last() != ".." {
		t.Errorf("successful save should leave the form, got %q", nav.last())
	}
	if len(notify.successes) != 1 || notify.successes[0] != msgCreateSuccess("phân loại") {
		t.Errorf("unexpected notifications: %v", notify.successes)
	}
	fs.mu.Lock()
	defer fs.mu.Unlock()
	if len(fs.requests) != 1 || fs.requests[0] != "POST /api/categories" {
		t.Errorf("unexpected requests: %v", fs.requests)
	}
}

func TestFormEditSuccessStaysOnForm(t *testing.T) {
	fs := &formServer{}
	srv := httptest.NewServer(fs.handler())
	defer srv.Close()

	notify := &fakeNotifier{}
	nav := &fakeNavigator{}
	fc := NewForm(Categories(New(srv.URL)), 7, false)
	fc.Notify = notify
	fc.Nav = nav

	fc.MarkDirty()
	fc.Save(context.Background(), "Lễ hội")

	fs.mu.Lock()
	if len(fs.requests) != 1 || fs.requests[0] != "PUT /api/categories/7" {
		t.Errorf("edit should PUT to the entity path, got %v", fs.requests)
	}
	fs.mu.Unlock()

	if fc.State() != FormClean {
		t.Errorf("successful edit should clear the dirty flag, got %s", fc.State())
	}
	if nav.last() != "" {
		t.Errorf("successful edit stays on the form, got navigation to %q", nav.last())
	}
	if len(notify.successes) != 1 || notify.successes[0] != msgEditSuccess("phân loại") {
		t.Errorf("unexpected notifications: %v", notify.successes)
	}
}

func TestFormDuplicateKeepsEditsDirty(t *testing.T) {
	fs := &formServer{status: StatusDuplicateEntity}
	srv := httptest.NewServer(fs.handler())
	defer srv.Close()

	notify := &fakeNotifier{}
	nav := &fakeNavigator{}
	fc := NewForm(Categories(New(srv.URL)), 0, true)
	fc.Notify = notify
	fc.Nav = nav

	fc.MarkDirty()
	fc.Save(context.Background(), "Múa rối")

	if fc.State() != FormDirty {
		t.Errorf("failed save should stay dirty for another attempt, got %s", fc.State())
	}
	if nav.last() != "" {
		t.Errorf("failed save must not navigate, got %q", nav.last())
	}
	if len(notify.errors) != 1 || !strings.Contains(notify.errors[0], "đã tồn tại") {
		t.Errorf("duplicate should use the existed message, got %v", notify.errors)
	}
	if !strings.Contains(notify.errors[0], "Múa rối") {
		t.Errorf("duplicate message should name the entity, got %q", notify.errors[0])
	}
}

func TestFormPrepareVetoSendsNothing(t *testing.T) {
	fs := &formServer{}
	srv := httptest.NewServer(fs.handler())
	defer srv.Close()

	notify := &fakeNotifier{}
	fc := NewForm(Categories(New(srv.URL)), 0, true)
	fc.Notify = notify
	fc.Prepare = func() (any, error) { return nil, errors.New("hình nền đang được tải lên") }

	fc.MarkDirty()
	fc.Save(context.Background(), "Dở dang")

	if fs.count() != 0 {
		t.Fatalf("vetoed prepare must not hit the network, got %d requests", fs.count())
	}
	if fc.State() != FormDirty {
		t.Errorf("vetoed save should stay dirty, got %s", fc.State())
	}
	if len(notify.errors) != 1 || notify.errors[0] != "hình nền đang được tải lên" {
		t.Errorf("veto reason should surface as a notification, got %v", notify.errors)
	}
}

func TestFormLeaveGuard(t *testing.T) {
	fc := NewForm(Categories(New("http://unused")), 0, true)

	if !fc.Leave() {
		t.Fatalf("clean form should leave without asking")
	}

	fc.MarkDirty()
	fc.Confirm = &fakeConfirmer{answer: false}
	if fc.Leave() {
		t.Errorf("declined confirmation must block leaving")
	}
	fc.Confirm = &fakeConfirmer{answer: true}
	if !fc.Leave() {
		t.Errorf("confirmed leave should proceed")
	}
}

func TestFormLoadMissingEntityGoesBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"status":"NOT_FOUND","errors":{"details":"không tìm thấy"}}`))
	}))
	defer srv.Close()

	notify := &fakeNotifier{}
	nav := &fakeNavigator{}
	fc := NewForm(Categories(New(srv.URL)), 42, false)
	fc.Notify = notify
	fc.Nav = nav

	if _, ok := fc.Load(context.Background()); ok {
		t.Fatalf("missing entity should not load")
	}
	if nav.last() != ".." {
		t.Errorf("missing entity should push back to the listing, got %q", nav.last())
	}
	if len(notify.errors) != 1 || notify.errors[0] != msgNotFound("phân loại") {
		t.Errorf("unexpected notifications: %v", notify.errors)
	}
}
