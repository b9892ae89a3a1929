// Package api holds one typed wrapper per backend resource. Each call maps to
// exactly one HTTP request; nothing here retries, caches or validates.
package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"

	"github.com/Leestalion/quittance/internal/client"
)

// ErrNotArray is returned by List when the collection endpoint answered with
// something other than a JSON array.
var ErrNotArray = errors.New("expected a JSON array")

// Resource is the list/get/create/update/delete contract shared by every
// entity endpoint. T is the entity, C the create payload, U the partial
// update payload.
type Resource[T, C, U any] struct {
	c         *client.Client
	path      string
	filterKey string
}

func NewResource[T, C, U any](c *client.Client, path, filterKey string) *Resource[T, C, U] {
	return &Resource[T, C, U]{c: c, path: path, filterKey: filterKey}
}

func (r *Resource[T, C, U]) Path() string { return r.path }

// List fetches the collection. A non-empty filter is sent as the resource's
// single equality query parameter.
func (r *Resource[T, C, U]) List(filter string) ([]T, error) {
	var query url.Values
	if filter != "" && r.filterKey != "" {
		query = url.Values{r.filterKey: {filter}}
	}

	var raw json.RawMessage
	if err := r.c.Get(r.path, query, &raw); err != nil {
		return nil, err
	}
	return decodeList[T](raw)
}

func (r *Resource[T, C, U]) Get(id string) (T, error) {
	var out T
	err := r.c.Get(r.itemPath(id), nil, &out)
	return out, err
}

func (r *Resource[T, C, U]) Create(payload C) (T, error) {
	var out T
	err := r.c.Post(r.path, payload, &out)
	return out, err
}

func (r *Resource[T, C, U]) Update(id string, patch U) (T, error) {
	var out T
	err := r.c.Put(r.itemPath(id), patch, &out)
	return out, err
}

func (r *Resource[T, C, U]) Delete(id string) error {
	return r.c.Delete(r.itemPath(id))
}

func (r *Resource[T, C, U]) itemPath(id string) string {
	return r.path + "/" + url.PathEscape(id)
}

func decodeList[T any](raw json.RawMessage) ([]T, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, ErrNotArray
	}
	var items []T
	if err := json.Unmarshal(trimmed, &items); err != nil {
		return nil, fmt.Errorf("decode list: %w", err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}
