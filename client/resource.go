package client

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
)

// Identifiable is the minimum an entity must expose to drive the generic
// listing and delete flows.
type Identifiable interface {
	GetID() int64
	GetName() string
}

// Page is one page of a listing plus the collection-wide total.
type Page[T any] struct {
	Content       []T   `json:"content"`
	TotalElements int64 `json:"totalElements"`
}

// Resource is the typed client for one entity collection. Label is the
// human-readable entity name used in notifications ("phân loại", ...).
type Resource[T Identifiable] struct {
	Client *Client
	Path   string
	Label  string
}

func (r Resource[T]) List(ctx context.Context, q ListQuery) (Page[T], Status, error) {
	env, err := r.Client.do(ctx, http.MethodGet, r.Path, q.wireValues(), nil)
	if err != nil || env.Status != StatusOK {
		return Page[T]{}, env.Status, err
	}
	var page Page[T]
	if err := json.Unmarshal(env.Payload, &page); err != nil {
		return Page[T]{}, StatusException, err
	}
	return page, StatusOK, nil
}

func (r Resource[T]) Get(ctx context.Context, id int64) (T, Status, error) {
	var zero T
	env, err := r.Client.do(ctx, http.MethodGet, r.Path+"/"+strconv.FormatInt(id, 10), nil, nil)
	if err != nil || env.Status != StatusOK {
		return zero, env.Status, err
	}
	var item T
	if err := json.Unmarshal(env.Payload, &item); err != nil {
		return zero, StatusException, err
	}
	return item, StatusOK, nil
}

func (r Resource[T]) Create(ctx context.Context, input any) (Status, error) {
	env, err := r.Client.do(ctx, http.MethodPost, r.Path, nil, input)
	return env.Status, err
}

func (r Resource[T]) Update(ctx context.Context, id int64, input any) (Status, error) {
	env, err := r.Client.do(ctx, http.MethodPut, r.Path+"/"+strconv.FormatInt(id, 10), nil, input)
	return env.Status, err
}

func (r Resource[T]) Remove(ctx context.Context, id int64) (Status, error) {
	env, err := r.Client.do(ctx, http.MethodDelete, r.Path+"/"+strconv.FormatInt(id, 10), nil, nil)
	return env.Status, err
}

// Options fetches the full id/name list for select boxes, unpaged.
func (r Resource[T]) Options(ctx context.Context) ([]Option, Status, error) {
	env, err := r.Client.do(ctx, http.MethodGet, r.Path+"/options", nil, nil)
	if err != nil || env.Status != StatusOK {
		return nil, env.Status, err
	}
	var opts []Option
	if err := json.Unmarshal(env.Payload, &opts); err != nil {
		return nil, StatusException, err
	}
	return opts, StatusOK, nil
}
