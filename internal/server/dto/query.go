package dto

import (
	"time"

	"github.com/addiskitchen/platform/internal/server/repository"
)

// ListQuery binds the shared list query string. Boolean and date filters
// arrive as strings so an absent parameter stays distinguishable from a
// false or zero value.
type ListQuery struct {
	Page          int    `form:"page"`
	Limit         int    `form:"limit"`
	SearchTerm    string `form:"searchTerm"`
	IsActive      string `form:"isActive"`
	IsTraditional string `form:"isTraditional"`
	CategoryID    string `form:"categoryId"`
	StartDate     string `form:"startDate"`
	EndDate       string `form:"endDate"`
}

// ToParams converts the query to repository parameters. defaultLimit
// applies when the caller sent none; page defaults to 1.
func (q *ListQuery) ToParams(defaultLimit int) repository.ListParams {
	params := repository.ListParams{
		Page:       q.Page,
		Limit:      q.Limit,
		Search:     q.SearchTerm,
		CategoryID: q.CategoryID,
	}
	if params.Page < 1 {
		params.Page = 1
	}
	if params.Limit <= 0 {
		params.Limit = defaultLimit
	}
	if v, ok := parseBool(q.IsActive); ok {
		params.IsActive = &v
	}
	if v, ok := parseBool(q.IsTraditional); ok {
		params.IsTraditional = &v
	}
	if t, ok := parseDate(q.StartDate); ok {
		params.CreatedFrom = &t
	}
	if t, ok := parseDate(q.EndDate); ok {
		// End date is inclusive of the whole day
		end := t.Add(24*time.Hour - time.Nanosecond)
		params.CreatedTo = &end
	}
	return params
}

func parseBool(s string) (bool, bool) {
	switch s {
	case "true":
		return true, true
	case "false":
		return false, true
	}
	return false, false
}

func parseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
