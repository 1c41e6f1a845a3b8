package cli

import (
	"strconv"
	"strings"

	"github.com/matzehuels/snchar/pkg/errors"
)

// parseIntList parses a comma-separated list of integers such as "5,3,2".
// Surrounding whitespace is ignored; empty entries are rejected.
func parseIntList(s string) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		return nil, errors.New(errors.ErrCodeInvalidInput, "empty list")
	}
	parts := strings.Split(s, ",")
	result := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, errors.New(errors.ErrCodeInvalidInput, "invalid integer %q at position %d", p, i+1)
		}
		result[i] = n
	}
	return result, nil
}

// parseDegree parses the n argument of table and explore.
func parseDegree(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, errors.New(errors.ErrCodeInvalidInput, "invalid degree %q", s)
	}
	return n, nil
}
