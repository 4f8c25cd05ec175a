// Package dto defines request/response shapes for the HTTP API.
package dto

import (
	"time"
	"unicode"
	"unicode/utf8"

	"ricemill/internal/core/apperror"
	"ricemill/internal/core/id"
	"ricemill/internal/domain"
)

// Response is the single-object envelope.
type Response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

// OK wraps data in the success envelope.
func OK(data any) Response {
	return Response{Success: true, Data: data}
}

// OKMessage returns a success envelope with only a message.
func OKMessage(message string) Response {
	return Response{Success: true, Message: message}
}

// PageQuery is the common query-string surface of list endpoints.
type PageQuery struct {
	Page            int    `form:"page"`
	PageSize        int    `form:"pageSize"`
	Search          string `form:"search"`
	IncludeInactive bool   `form:"includeInactive"`
	Kind            string `form:"kind"`
	DoNumber        string `form:"doNumber"`
	DateFrom        string `form:"dateFrom" time_format:"2006-01-02"`
	DateTo          string `form:"dateTo" time_format:"2006-01-02"`
	OrderBy         string `form:"orderBy"`
}

// Normalize applies pagination defaults and caps.
func (q *PageQuery) Normalize() {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PageSize <= 0 {
		q.PageSize = 20
	}
	if q.PageSize > 100 {
		q.PageSize = 100
	}
}

// ToFilter converts the query to a repository filter.
func (q PageQuery) ToFilter() domain.ListFilter {
	f := domain.ListFilter{
		Search:          q.Search,
		IncludeInactive: q.IncludeInactive,
		Kind:            q.Kind,
		DoNumber:        q.DoNumber,
		OrderBy:         q.OrderBy,
		Limit:           q.PageSize,
		Offset:          (q.Page - 1) * q.PageSize,
	}
	if t, err := time.Parse("2006-01-02", q.DateFrom); err == nil {
		f.DateFrom = &t
	}
	if t, err := time.Parse("2006-01-02", q.DateTo); err == nil {
		end := t.AddDate(0, 0, 1)
		f.DateTo = &end
	}
	return f
}

// ListEnvelope builds the paginated list response the UI tables consume:
//
//	{ success, data: { <entity>: [...], total<Entity>, totalPages,
//	  currentPage, pageSize, hasPrev, hasNext } }
//
// entityKey is the plural JSON key, e.g. "parties" yields "totalParties".
func ListEnvelope(entityKey string, items any, total int64, page, pageSize int) Response {
	totalPages := 0
	if pageSize > 0 {
		totalPages = int((total + int64(pageSize) - 1) / int64(pageSize))
	}

	data := map[string]any{
		entityKey:     []any{},
		"totalPages":  totalPages,
		"currentPage": page,
		"pageSize":    pageSize,
		"hasPrev":     page > 1,
		"hasNext":     page < totalPages,
	}
	data["total"+title(entityKey)] = total
	if items != nil {
		data[entityKey] = items
	}
	return Response{Success: true, Data: data}
}

func parseID(s, field string) (id.ID, error) {
	parsed, err := id.Parse(s)
	if err != nil {
		return id.Nil(), apperror.NewValidation("invalid id").WithDetail("field", field)
	}
	return parsed, nil
}

func parseOptionalID(s, field string) (*id.ID, error) {
	if s == "" {
		return nil, nil
	}
	parsed, err := parseID(s, field)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

func parseDate(s, field string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, apperror.NewValidation("invalid date, expected YYYY-MM-DD").
			WithDetail("field", field)
	}
	return t, nil
}

func title(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}
