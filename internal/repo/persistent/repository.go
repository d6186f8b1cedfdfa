// Package persistent implements the data access layer on gorm/postgres.
// Each repository pairs an interface with a gorm-backed struct; models are
// mapped to domain entities at the boundary (mapper.go).
package persistent

import (
	"errors"

	"streamhub/internal/entity"

	"gorm.io/gorm"
)

// translate converts gorm's typed errors into domain errors. gorm wraps each
// write in its own transaction, so by the time an error reaches here the
// statement has already been rolled back.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return entity.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return entity.ErrConflict
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return entity.ErrValidation
	default:
		return err
	}
}

// base is the generic repository shared by every entity type. Specialized
// repositories embed it and add their filtered lookups.
type base[M any] struct {
	db *gorm.DB
}

func (r *base[M]) Create(m *M) error {
	return translate(r.db.Create(m).Error)
}

func (r *base[M]) All() ([]M, error) {
	var models []M
	if err := r.db.Find(&models).Error; err != nil {
		return nil, translate(err)
	}
	return models, nil
}

func (r *base[M]) Many(skip, limit int) ([]M, error) {
	var models []M
	q := r.db.Offset(skip)
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&models).Error; err != nil {
		return nil, translate(err)
	}
	return models, nil
}

func (r *base[M]) ByID(id string) (*M, error) {
	var m M
	if err := r.db.Where("id = ?", id).First(&m).Error; err != nil {
		return nil, translate(err)
	}
	return &m, nil
}

func (r *base[M]) Save(m *M) error {
	return translate(r.db.Save(m).Error)
}

func (r *base[M]) Delete(id string) error {
	res := r.db.Where("id = ?", id).Delete(new(M))
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return entity.ErrNotFound
	}
	return nil
}
