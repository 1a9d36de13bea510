package schema

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"github.com/go-playground/validator/v10"
)

// Listing defaults.
const (
	DefaultPage  = 1
	DefaultLimit = 7
	MaxLimit     = 100
)

// ListQuery is the query string of GET /api/contacts.
type ListQuery struct {
	Page     int   `json:"page"  validate:"gte=1"`
	Limit    int   `json:"limit" validate:"gte=1,lte=100"`
	Favorite *bool `json:"favorite"`
}

// QueryError describes a malformed query parameter.
type QueryError struct {
	Message string
}

func (e *QueryError) Error() string {
	return e.Message
}

// ParseListQuery reads page, limit and favorite from values, applying the
// listing defaults for absent parameters.
func ParseListQuery(values url.Values) (ListQuery, error) {
	q := ListQuery{Page: DefaultPage, Limit: DefaultLimit}

	if raw := values.Get("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return q, &QueryError{Message: `"page" must be a number`}
		}
		q.Page = n
	}
	if raw := values.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return q, &QueryError{Message: `"limit" must be a number`}
		}
		q.Limit = n
	}
	if raw := values.Get("favorite"); raw != "" {
		switch raw {
		case "true":
			q.Favorite = boolPtr(true)
		case "false":
			q.Favorite = boolPtr(false)
		default:
			return q, &QueryError{Message: `"favorite" must be a boolean`}
		}
	}

	if err := validate.Struct(q); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return q, &QueryError{Message: describe(verrs[0])}
		}
		return q, fmt.Errorf("validate list query: %w", err)
	}
	return q, nil
}

func boolPtr(b bool) *bool {
	return &b
}
