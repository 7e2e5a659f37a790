package trxmanager

import (
	"emptrack/internal/abstraction"
	"fmt"

	"gorm.io/gorm"
)

type trxManager struct {
	db *gorm.DB
}

func New(db *gorm.DB) *trxManager {
	return &trxManager{db}
}

// WithTrx runs fn inside a single database transaction. The transaction
// connection rides on the request context so repositories pick it up through
// CheckTrx.
func (g *trxManager) WithTrx(parentCtx *abstraction.Context, fn func(ctx *abstraction.Context) error) (err error) {
	trx := &abstraction.TrxContext{Db: g.db.Begin()}
	parentCtx.Trx = trx

	defer func() {
		if r := recover(); r != nil {
			trx.Db.Rollback()
			err = fmt.Errorf("%v", r)
		} else if err != nil {
			trx.Db.Rollback()
		} else {
			err = trx.Db.Commit().Error
		}
		parentCtx.Trx = nil
	}()

	err = fn(parentCtx)
	return
}
