package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseID parses a positive int64 path id ("42")
func ParseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", raw)
	}
	return id, nil
}

// Deref trả về zero value khi pointer nil
func Deref[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}

func Ptr[T any](v T) *T {
	return &v
}
