package shared

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/ucsb-cs156/campus-records-api/internal/domain"
)

// Request parameters are read from the query string and, for form-encoded
// POST bodies, the form. A parameter that is absent is missing; a present
// but empty string parameter is accepted as the empty string.

// RequiredString returns the value of name.
func RequiredString(values url.Values, name string) (string, error) {
	if !values.Has(name) {
		return "", missing(name)
	}
	return values.Get(name), nil
}

// RequiredInt64 parses name as a base-10 int64.
func RequiredInt64(values url.Values, name string) (int64, error) {
	raw, err := requiredNonEmpty(values, name)
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, domain.NewValidationError(name, "must be an integer", domain.ErrInvalidFormat)
	}
	return n, nil
}

// RequiredInt parses name as a base-10 int.
func RequiredInt(values url.Values, name string) (int, error) {
	raw, err := requiredNonEmpty(values, name)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domain.NewValidationError(name, "must be an integer", domain.ErrInvalidFormat)
	}
	return n, nil
}

// RequiredLocalDateTime parses name as an ISO 8601 local date-time.
func RequiredLocalDateTime(values url.Values, name string) (domain.LocalDateTime, error) {
	raw, err := requiredNonEmpty(values, name)
	if err != nil {
		return domain.LocalDateTime{}, err
	}
	dt, err := domain.ParseLocalDateTime(raw)
	if err != nil {
		return domain.LocalDateTime{}, domain.NewValidationError(
			name,
			"must be an ISO 8601 date-time such as 2024-11-01T12:00:00",
			err,
		)
	}
	return dt, nil
}

func requiredNonEmpty(values url.Values, name string) (string, error) {
	raw := strings.TrimSpace(values.Get(name))
	if raw == "" {
		return "", missing(name)
	}
	return raw, nil
}

func missing(name string) error {
	return domain.NewValidationError(name, "is required", domain.ErrMissingField)
}
