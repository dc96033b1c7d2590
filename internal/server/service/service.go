// Package service implements the business logic between the HTTP handlers
// and the repositories. Handlers validate request shapes; services own
// identity assignment, pagination math and not-found translation.
package service

import (
	"errors"

	"github.com/addiskitchen/platform/internal/server/repository"
	"github.com/addiskitchen/platform/pkg/response"
)

// ErrPageLimitRequired is returned when a list read arrives without a
// usable page limit. Limits come from configuration, never from code.
var ErrPageLimitRequired = errors.New("page limit is required")

// pageMeta computes the pagination envelope for a list read.
// lastPage is the ceiling of total/limit and never below 1, so an empty
// collection still reports a single (empty) page.
func pageMeta(params repository.ListParams, total int) response.ListMeta {
	page := params.Page
	if page < 1 {
		page = 1
	}
	lastPage := (total + params.Limit - 1) / params.Limit
	if lastPage < 1 {
		lastPage = 1
	}
	return response.ListMeta{
		Page:     page,
		LastPage: lastPage,
		Limit:    params.Limit,
		Total:    total,
	}
}
