package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/sarveshramani/portfolio/internal/models"
	"github.com/sarveshramani/portfolio/internal/repositories"
	"github.com/sarveshramani/portfolio/internal/utils"
)

// documentRow holds one resource as a JSONB document. Identity and
// timestamps are mirrored into columns for lookups and ordering.
type documentRow struct {
	ID        string         `gorm:"column:id;type:text;primaryKey"`
	Data      datatypes.JSON `gorm:"column:data;type:jsonb;not null"`
	CreatedAt time.Time      `gorm:"column:created_at;type:timestamptz;not null;autoCreateTime:false"`
	UpdatedAt time.Time      `gorm:"column:updated_at;type:timestamptz;not null;autoUpdateTime:false"`
}

type documentRepo[T models.Entity] struct {
	db    *gorm.DB
	table string
	now   repositories.Clock
}

// NewDocumentRepo stores T documents in the given table.
func NewDocumentRepo[T models.Entity](db *gorm.DB, table string, opts ...repositories.Option) repositories.Store[T] {
	o := repositories.Apply(opts...)
	return &documentRepo[T]{db: db, table: table, now: o.Clock}
}

// Migrate creates or updates the table backing one collection.
func Migrate(db *gorm.DB, table string) error {
	if err := repositories.CheckField(table); err != nil {
		return err
	}
	if err := db.Table(table).AutoMigrate(&documentRow{}); err != nil {
		return err
	}
	// index names are schema-wide, so they carry the table name
	return db.Exec(fmt.Sprintf("CREATE INDEX IF NOT EXISTS idx_%s_created_at ON %s (created_at DESC, id)", table, table)).Error
}

func (r *documentRepo[T]) q(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Table(r.table)
}

func column(key string) (string, error) {
	switch key {
	case models.FieldID:
		return "id", nil
	case models.FieldCreatedAt:
		return "created_at", nil
	case models.FieldUpdatedAt:
		return "updated_at", nil
	}
	if err := repositories.CheckField(key); err != nil {
		return "", err
	}
	return fmt.Sprintf("data->>'%s'", key), nil
}

func orderBy(s repositories.Sort) (string, error) {
	col, err := column(s.Key)
	if err != nil {
		return "", err
	}
	dir := "ASC"
	if s.Direction == repositories.Descending {
		dir = "DESC"
	}
	switch col {
	case "id":
		return "id " + dir, nil
	case "created_at", "updated_at":
		return fmt.Sprintf("%s %s, id ASC", col, dir), nil
	}
	// byte order, as in the other stores
	return fmt.Sprintf(`(%s) COLLATE "C" %s, id ASC`, col, dir), nil
}

func (r *documentRepo[T]) List(ctx context.Context, sort repositories.Sort) ([]T, error) {
	return r.ListWhere(ctx, nil, sort)
}

func (r *documentRepo[T]) ListWhere(ctx context.Context, filter repositories.Filter, sort repositories.Sort) ([]T, error) {
	order, err := orderBy(sort)
	if err != nil {
		return nil, err
	}

	q := r.q(ctx)
	for k, v := range filter {
		col, err := column(k)
		if err != nil {
			return nil, err
		}
		q = q.Where(col+" = ?", fmt.Sprint(v))
	}

	var rows []documentRow
	if err := q.Order(order).Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]T, 0, len(rows))
	for _, row := range rows {
		doc, err := decode[T](row.Data)
		if err != nil {
			return nil, err
		}
		out = append(out, *doc)
	}
	return out, nil
}

func (r *documentRepo[T]) GetOne(ctx context.Context) (*T, error) {
	return r.take(r.q(ctx).Order("created_at ASC, id ASC"))
}

func (r *documentRepo[T]) GetByID(ctx context.Context, id string) (*T, error) {
	return r.take(r.q(ctx).Where("id = ?", id))
}

func (r *documentRepo[T]) take(q *gorm.DB) (*T, error) {
	var row documentRow
	err := q.Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return decode[T](row.Data)
}

func (r *documentRepo[T]) Insert(ctx context.Context, doc *T) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	meta := (*doc).Meta()
	row := documentRow{ID: meta.ID, Data: datatypes.JSON(data), CreatedAt: meta.CreatedAt, UpdatedAt: meta.UpdatedAt}
	return r.q(ctx).Create(&row).Error
}

func (r *documentRepo[T]) UpdateByID(ctx context.Context, id string, fields map[string]any) (*T, error) {
	now := r.now()
	set := repositories.PatchSet(fields, now)

	var data []byte
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var row documentRow
		err := tx.Table(r.table).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", id).
			Take(&row).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrNotFound
		}
		if err != nil {
			return err
		}

		var m map[string]any
		if err := json.Unmarshal(row.Data, &m); err != nil {
			return err
		}
		for k, v := range set {
			m[k] = v
		}
		if data, err = json.Marshal(m); err != nil {
			return err
		}

		return tx.Table(r.table).
			Where("id = ?", id).
			Updates(map[string]any{"data": datatypes.JSON(data), "updated_at": now}).Error
	})
	if err != nil {
		return nil, err
	}
	return decode[T](data)
}

func (r *documentRepo[T]) DeleteByID(ctx context.Context, id string) error {
	res := r.q(ctx).Where("id = ?", id).Delete(&documentRow{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return utils.ErrNotFound
	}
	return nil
}

func (r *documentRepo[T]) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.q(ctx).Count(&n).Error
	return n, err
}

func (r *documentRepo[T]) DeleteAll(ctx context.Context) (int64, error) {
	res := r.q(ctx).Where("1 = 1").Delete(&documentRow{})
	return res.RowsAffected, res.Error
}

func decode[T any](data []byte) (*T, error) {
	var doc T
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

var _ repositories.Store[models.Skill] = (*documentRepo[models.Skill])(nil)
