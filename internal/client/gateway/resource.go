package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// Page is one page of a list read plus the server's pagination state
type Page[T any] struct {
	Items    []T
	Page     int
	LastPage int
	Limit    int
	Total    int
}

// ListOptions narrows a list read. Filters are appended to the query
// string verbatim; empty values are omitted.
type ListOptions struct {
	Page    int
	Limit   int
	Filters map[string]string
}

// Query renders the options as URL query values
func (o ListOptions) Query() url.Values {
	query := url.Values{}
	if o.Page > 0 {
		query.Set("page", strconv.Itoa(o.Page))
	}
	if o.Limit > 0 {
		query.Set("limit", strconv.Itoa(o.Limit))
	}
	for key, value := range o.Filters {
		if value != "" {
			query.Set(key, value)
		}
	}
	return query
}

// Resource is a typed handle on one REST collection. All five CRUD
// resources share this shape; itemsKey names the array inside the list
// envelope ("categories", "menuItems", ...).
type Resource[T any] struct {
	client   *Client
	path     string
	itemsKey string
	tagType  string
}

// NewResource creates a resource handle
func NewResource[T any](client *Client, path, itemsKey, tagType string) *Resource[T] {
	return &Resource[T]{
		client:   client,
		path:     path,
		itemsKey: itemsKey,
		tagType:  tagType,
	}
}

// List fetches one page, served from cache when fresh
func (r *Resource[T]) List(ctx context.Context, opts ListOptions) (Page[T], error) {
	data, err := r.client.getCached(ctx, r.path, opts.Query(), CollectionTag(r.tagType))
	if err != nil {
		return Page[T]{}, err
	}
	return decodePage[T](data, r.itemsKey)
}

// Get fetches one entity by id, served from cache when fresh
func (r *Resource[T]) Get(ctx context.Context, id string) (*T, error) {
	data, err := r.client.getCached(ctx, r.path+"/"+id, nil, EntityTag(r.tagType, id))
	if err != nil {
		return nil, err
	}
	return decodeEntity[T](data)
}

// Create posts a new entity and invalidates the collection
func (r *Resource[T]) Create(ctx context.Context, body interface{}) (*T, error) {
	data, err := r.client.mutate(ctx, http.MethodPost, r.path, nil, body, CollectionTag(r.tagType))
	if err != nil {
		return nil, err
	}
	return decodeEntity[T](data)
}

// Update replaces an entity and invalidates its id tag
func (r *Resource[T]) Update(ctx context.Context, id string, body interface{}) (*T, error) {
	data, err := r.client.mutate(ctx, http.MethodPut, r.path+"/"+id, nil, body, EntityTag(r.tagType, id))
	if err != nil {
		return nil, err
	}
	return decodeEntity[T](data)
}

// Delete removes an entity and invalidates the collection and its id tag
func (r *Resource[T]) Delete(ctx context.Context, id string) error {
	_, err := r.client.mutate(ctx, http.MethodDelete, r.path+"/"+id, nil, nil,
		CollectionTag(r.tagType), EntityTag(r.tagType, id))
	return err
}

func decodeEntity[T any](data json.RawMessage) (*T, error) {
	entity := new(T)
	if err := json.Unmarshal(data, entity); err != nil {
		return nil, fmt.Errorf("failed to decode entity: %w", err)
	}
	return entity, nil
}

func decodePage[T any](data json.RawMessage, itemsKey string) (Page[T], error) {
	var meta struct {
		Page     int `json:"page"`
		LastPage int `json:"lastPage"`
		Limit    int `json:"limit"`
		Total    int `json:"total"`
	}
	if err := json.Unmarshal(data, &meta); err != nil {
		return Page[T]{}, fmt.Errorf("failed to decode list metadata: %w", err)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return Page[T]{}, fmt.Errorf("failed to decode list body: %w", err)
	}

	page := Page[T]{
		Items:    []T{},
		Page:     meta.Page,
		LastPage: meta.LastPage,
		Limit:    meta.Limit,
		Total:    meta.Total,
	}
	if raw, ok := fields[itemsKey]; ok && len(raw) > 0 {
		if err := json.Unmarshal(raw, &page.Items); err != nil {
			return Page[T]{}, fmt.Errorf("failed to decode %s: %w", itemsKey, err)
		}
	}
	return page, nil
}
