package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/heartmarshall/logbook/internal/domain"
)

// parseProps turns "key=value" arguments into a property map. The value may
// contain '='; a repeated key keeps its last value.
func parseProps(args []string) (map[string]string, error) {
	props := make(map[string]string, len(args))
	var errs []domain.FieldError

	for i, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			errs = append(errs, domain.FieldError{
				Field:   fmt.Sprintf("props[%d]", i),
				Message: fmt.Sprintf("expected key=value, got %q", arg),
			})
			continue
		}
		props[key] = value
	}

	if len(errs) > 0 {
		return nil, domain.NewValidationErrors(errs)
	}
	return props, nil
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.NewValidationError("id", fmt.Sprintf("expected a positive integer, got %q", s))
	}
	return id, nil
}
