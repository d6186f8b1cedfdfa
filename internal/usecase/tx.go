package usecase

import (
	"database/sql"

	"gorm.io/gorm"
)

// TxRunner runs a function inside a database transaction. *gorm.DB satisfies
// it; usecases that span multiple writes depend on this instead of the
// concrete handle.
type TxRunner interface {
	Transaction(fc func(tx *gorm.DB) error, opts ...*sql.TxOptions) error
}
