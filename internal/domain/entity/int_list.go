package entity

import (
	"database/sql/driver"
	"fmt"
	"strconv"
	"strings"
)

// IntList persists a set of small integers as a comma-separated string.
// Used for allowed booking durations and recurrence days-of-week.
type IntList []int

func (l IntList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return "", nil
	}
	parts := make([]string, len(l))
	for i, v := range l {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ","), nil
}

func (l *IntList) Scan(src interface{}) error {
	var raw string
	switch v := src.(type) {
	case nil:
		*l = nil
		return nil
	case string:
		raw = v
	case []byte:
		raw = string(v)
	default:
		return fmt.Errorf("unsupported type for IntList: %T", src)
	}

	if raw == "" {
		*l = nil
		return nil
	}

	parts := strings.Split(raw, ",")
	out := make(IntList, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return fmt.Errorf("invalid IntList element %q: %w", p, err)
		}
		out = append(out, n)
	}
	*l = out
	return nil
}

func (IntList) GormDataType() string {
	return "varchar(255)"
}

// Contains reports whether v is in the list.
func (l IntList) Contains(v int) bool {
	for _, n := range l {
		if n == v {
			return true
		}
	}
	return false
}
