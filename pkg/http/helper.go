package http

import (
	"net/http"
	"strconv"
	"time"
	apperrors "turfly/pkg/errors"
)

// QueryInt reads an integer query parameter. Missing parameters yield
// fallback; malformed ones yield an INVALID_INPUT error.
func QueryInt(r *http.Request, name string, fallback int) (int, error) {
	s := r.URL.Query().Get(name)
	if s == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, apperrors.InvalidInput("invalid " + name + " parameter: " + s)
	}
	return v, nil
}

// RequireQuery returns the named parameter or an INVALID_INPUT error when it is empty.
func RequireQuery(r *http.Request, name string) (string, error) {
	s := r.URL.Query().Get(name)
	if s == "" {
		return "", apperrors.InvalidInput("'" + name + "' query parameter is required")
	}
	return s, nil
}

// RequireISODate returns the named parameter when it is a YYYY-MM-DD date.
func RequireISODate(r *http.Request, name string) (string, error) {
	s, err := RequireQuery(r, name)
	if err != nil {
		return "", err
	}
	if _, err := time.Parse(time.DateOnly, s); err != nil || len(s) != len(time.DateOnly) {
		return "", apperrors.InvalidInput("'" + name + "' must be a date in YYYY-MM-DD format")
	}
	return s, nil
}
