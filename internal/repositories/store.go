package repositories

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/sarveshramani/portfolio/internal/models"
)

type Direction int

const (
	Ascending  Direction = 1
	Descending Direction = -1
)

// Sort orders a listing by one stored field. Stores break ties on id so
// repeated reads return the same order.
type Sort struct {
	Key       string
	Direction Direction
}

func SortBy(key string, dir Direction) Sort {
	return Sort{Key: key, Direction: dir}
}

// Filter matches documents whose stored fields equal the given values.
type Filter map[string]any

// Store is the persistence adapter for one collection of T.
// Lookups that match nothing return utils.ErrNotFound.
type Store[T models.Entity] interface {
	List(ctx context.Context, sort Sort) ([]T, error)
	ListWhere(ctx context.Context, filter Filter, sort Sort) ([]T, error)
	GetOne(ctx context.Context) (*T, error)
	GetByID(ctx context.Context, id string) (*T, error)
	Insert(ctx context.Context, doc *T) error
	UpdateByID(ctx context.Context, id string, fields map[string]any) (*T, error)
	DeleteByID(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
	DeleteAll(ctx context.Context) (int64, error)
}

type Clock func() time.Time

// SystemClock is UTC wall time at millisecond precision, the resolution
// every backend can store.
func SystemClock() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

type Options struct {
	Clock Clock
}

type Option func(*Options)

func WithClock(c Clock) Option {
	return func(o *Options) { o.Clock = c }
}

func Apply(opts ...Option) Options {
	o := Options{Clock: SystemClock}
	for _, fn := range opts {
		fn(&o)
	}
	return o
}

// PatchSet copies the supplied fields, drops the immutable ones and stamps
// updatedAt.
func PatchSet(fields map[string]any, now time.Time) map[string]any {
	set := make(map[string]any, len(fields)+1)
	for k, v := range fields {
		if k == models.FieldID || k == models.FieldCreatedAt {
			continue
		}
		set[k] = v
	}
	set[models.FieldUpdatedAt] = now
	return set
}

var fieldName = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]*$`)

// CheckField rejects names that are not plain stored field identifiers.
func CheckField(name string) error {
	if !fieldName.MatchString(name) {
		return fmt.Errorf("invalid field name %q", name)
	}
	return nil
}

// Stores bundles one store per collection.
type Stores struct {
	PersonalInfo Store[models.PersonalInfo]
	Experience   Store[models.Experience]
	Projects     Store[models.Project]
	Skills       Store[models.Skill]
	Education    Store[models.Education]
	Achievements Store[models.Achievement]
}
