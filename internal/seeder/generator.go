package seeder

import (
	"math/rand"
	"time"

	"cloud.google.com/go/civil"
)

// Generator holds the per-run random source, unique registry and the
// generation-time "now". All Generate* methods draw from the same source, so a
// fixed seed and clock reproduce a run exactly.
type Generator struct {
	rand   *rand.Rand
	faker  *Faker
	unique *UniqueRegistry
	now    time.Time
}

func NewGenerator(seed int64, now time.Time) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	r := rand.New(rand.NewSource(seed))
	return &Generator{
		rand:   r,
		faker:  NewFaker(r),
		unique: NewUniqueRegistry(defaultUniqueAttempts),
		now:    now,
	}
}

func (g *Generator) Now() time.Time {
	return g.now
}

func (g *Generator) Today() civil.Date {
	return civil.DateOf(g.now)
}

// Unique exposes the run's registry, mainly for Reset between runs.
func (g *Generator) Unique() *UniqueRegistry {
	return g.unique
}

func (g *Generator) trailingWindow(years int) (civil.Date, civil.Date) {
	today := g.Today()
	return yearsBefore(today, years), today
}
