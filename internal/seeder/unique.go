package seeder

import (
	"errors"
	"fmt"
)

// ErrUniqueExhausted means no fresh value could be drawn for a field that
// must be unique within a run. It is fatal for the run.
var ErrUniqueExhausted = errors.New("unique value space exhausted")

const defaultUniqueAttempts = 1000

// UniqueRegistry records issued values per field so that "unique" fields never
// repeat within one generation run.
type UniqueRegistry struct {
	seen     map[string]map[string]struct{}
	attempts int
}

func NewUniqueRegistry(attempts int) *UniqueRegistry {
	if attempts <= 0 {
		attempts = defaultUniqueAttempts
	}
	return &UniqueRegistry{
		seen:     make(map[string]map[string]struct{}),
		attempts: attempts,
	}
}

// Next draws from gen until it yields a value not yet issued for field.
func (u *UniqueRegistry) Next(field string, gen func() string) (string, error) {
	issued, ok := u.seen[field]
	if !ok {
		issued = make(map[string]struct{})
		u.seen[field] = issued
	}

	for i := 0; i < u.attempts; i++ {
		v := gen()
		if _, dup := issued[v]; !dup {
			issued[v] = struct{}{}
			return v, nil
		}
	}
	return "", fmt.Errorf("%w: field %s after %d attempts (%d values issued)", ErrUniqueExhausted, field, u.attempts, len(issued))
}

func (u *UniqueRegistry) Len(field string) int {
	return len(u.seen[field])
}

func (u *UniqueRegistry) Reset() {
	u.seen = make(map[string]map[string]struct{})
}
