package memory

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sarveshramani/portfolio/internal/models"
	"github.com/sarveshramani/portfolio/internal/repositories"
	"github.com/sarveshramani/portfolio/internal/utils"
)

// CollectionRepo keeps documents in process memory, encoded the same way the
// Mongo store encodes them, so field names, filters and ordering agree.
type CollectionRepo[T models.Entity] struct {
	mu   sync.RWMutex
	docs map[string]bson.M
	now  repositories.Clock
}

func NewCollectionRepo[T models.Entity](opts ...repositories.Option) *CollectionRepo[T] {
	o := repositories.Apply(opts...)
	return &CollectionRepo[T]{docs: make(map[string]bson.M), now: o.Clock}
}

func (r *CollectionRepo[T]) List(ctx context.Context, sort repositories.Sort) ([]T, error) {
	return r.ListWhere(ctx, nil, sort)
}

func (r *CollectionRepo[T]) ListWhere(ctx context.Context, filter repositories.Filter, sort repositories.Sort) ([]T, error) {
	r.mu.RLock()
	matched := make([]bson.M, 0, len(r.docs))
	for _, m := range r.docs {
		if matches(m, filter) {
			matched = append(matched, m)
		}
	}
	r.mu.RUnlock()

	slices.SortFunc(matched, func(a, b bson.M) int {
		if c := compare(a[sort.Key], b[sort.Key]) * int(sort.Direction); c != 0 {
			return c
		}
		return compare(a[models.FieldID], b[models.FieldID])
	})

	out := make([]T, 0, len(matched))
	for _, m := range matched {
		doc, err := decode[T](m)
		if err != nil {
			return nil, err
		}
		out = append(out, *doc)
	}
	return out, nil
}

// GetOne returns the oldest document.
func (r *CollectionRepo[T]) GetOne(ctx context.Context) (*T, error) {
	all, err := r.List(ctx, repositories.SortBy(models.FieldCreatedAt, repositories.Ascending))
	if err != nil {
		return nil, err
	}
	if len(all) == 0 {
		return nil, utils.ErrNotFound
	}
	return &all[0], nil
}

func (r *CollectionRepo[T]) GetByID(ctx context.Context, id string) (*T, error) {
	r.mu.RLock()
	m, ok := r.docs[id]
	r.mu.RUnlock()
	if !ok {
		return nil, utils.ErrNotFound
	}
	return decode[T](m)
}

func (r *CollectionRepo[T]) Insert(ctx context.Context, doc *T) error {
	m, err := encode(doc)
	if err != nil {
		return err
	}
	id := (*doc).Meta().ID

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.docs[id]; exists {
		return fmt.Errorf("duplicate id %q", id)
	}
	r.docs[id] = m
	return nil
}

func (r *CollectionRepo[T]) UpdateByID(ctx context.Context, id string, fields map[string]any) (*T, error) {
	set := repositories.PatchSet(fields, r.now())

	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.docs[id]
	if !ok {
		return nil, utils.ErrNotFound
	}

	merged := make(bson.M, len(m)+len(set))
	for k, v := range m {
		merged[k] = v
	}
	for k, v := range set {
		merged[k] = v
	}

	// round-trip so stored values have the same types as freshly inserted ones
	normalized, err := encode(merged)
	if err != nil {
		return nil, err
	}
	r.docs[id] = normalized
	return decode[T](normalized)
}

func (r *CollectionRepo[T]) DeleteByID(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.docs[id]; !ok {
		return utils.ErrNotFound
	}
	delete(r.docs, id)
	return nil
}

func (r *CollectionRepo[T]) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.docs)), nil
}

func (r *CollectionRepo[T]) DeleteAll(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := int64(len(r.docs))
	r.docs = make(map[string]bson.M)
	return n, nil
}

func encode(v any) (bson.M, error) {
	raw, err := bson.Marshal(v)
	if err != nil {
		return nil, err
	}
	var m bson.M
	if err := bson.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	return m, nil
}

func decode[T any](m bson.M) (*T, error) {
	raw, err := bson.Marshal(m)
	if err != nil {
		return nil, err
	}
	var doc T
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

func matches(m bson.M, filter repositories.Filter) bool {
	for k, want := range filter {
		if compare(m[k], normalize(want)) != 0 {
			return false
		}
	}
	return true
}

func normalize(v any) any {
	switch x := v.(type) {
	case time.Time:
		return primitive.NewDateTimeFromTime(x)
	case int:
		return int64(x)
	}
	return v
}

// compare orders decoded BSON values. Missing values sort first, values of
// unrelated types compare by their printed form.
func compare(a, b any) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}

	if x, ok := number(a); ok {
		if y, ok := number(b); ok {
			return cmp.Compare(x, y)
		}
	}

	switch x := a.(type) {
	case string:
		if y, ok := b.(string); ok {
			return strings.Compare(x, y)
		}
	case bool:
		if y, ok := b.(bool); ok {
			switch {
			case x == y:
				return 0
			case !x:
				return -1
			default:
				return 1
			}
		}
	case primitive.DateTime:
		if y, ok := b.(primitive.DateTime); ok {
			return cmp.Compare(x, y)
		}
	}
	return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
}

func number(v any) (float64, bool) {
	switch x := v.(type) {
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case float64:
		return x, true
	}
	return 0, false
}

var _ repositories.Store[models.Skill] = (*CollectionRepo[models.Skill])(nil)
