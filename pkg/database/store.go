package database

import (
	"context"
	"database/sql/driver"
	"errors"
	"net"
	"time"

	"github.com/launchbase/launchbase/pkg/fault"
	"github.com/launchbase/launchbase/pkg/metrics"
	"gorm.io/gorm"
)

// ErrNoRows is returned by Get when the statement matched nothing.
var ErrNoRows = gorm.ErrRecordNotFound

// ErrDuplicate is returned when a statement trips a unique index. The
// uniqueness pre-checks in the repositories give friendly errors for the
// common case; this covers the race between the check and the insert.
var ErrDuplicate = gorm.ErrDuplicatedKey

// retryDelay is the fixed pause before the single retry of a statement that
// failed with a transient connectivity error.
const retryDelay = 100 * time.Millisecond

// Store is the narrow surface repositories consume: a SQL statement with
// ordered bound values in, rows or an error out. Statements use positional
// $N placeholders assembled by pkg/query.
type Store interface {
	// Select scans all result rows into dest (a pointer to a slice).
	Select(ctx context.Context, dest interface{}, sql string, args ...interface{}) error

	// Get scans exactly one row into dest. Returns ErrNoRows when the
	// statement matched nothing.
	Get(ctx context.Context, dest interface{}, sql string, args ...interface{}) error

	// Count runs a COUNT query and returns the total.
	Count(ctx context.Context, sql string, args ...interface{}) (int64, error)

	// Exec runs a statement without a result set and reports rows affected.
	Exec(ctx context.Context, sql string, args ...interface{}) (int64, error)
}

// Store returns the DB as a Store.
func (d *DB) Store() Store {
	return &gormStore{db: d.gorm}
}

type gormStore struct {
	db *gorm.DB
}

func (s *gormStore) Select(ctx context.Context, dest interface{}, sql string, args ...interface{}) error {
	defer metrics.ObserveDBQuery("select", time.Now())
	return wrapErr("select", s.retry(func() error {
		return s.db.WithContext(ctx).Raw(sql, args...).Scan(dest).Error
	}))
}

func (s *gormStore) Get(ctx context.Context, dest interface{}, sql string, args ...interface{}) error {
	defer metrics.ObserveDBQuery("select", time.Now())
	return wrapErr("get", s.retry(func() error {
		tx := s.db.WithContext(ctx).Raw(sql, args...).Scan(dest)
		if tx.Error != nil {
			return tx.Error
		}
		if tx.RowsAffected == 0 {
			return ErrNoRows
		}
		return nil
	}))
}

func (s *gormStore) Count(ctx context.Context, sql string, args ...interface{}) (int64, error) {
	defer metrics.ObserveDBQuery("select", time.Now())
	var total int64
	err := s.retry(func() error {
		return s.db.WithContext(ctx).Raw(sql, args...).Scan(&total).Error
	})
	return total, wrapErr("count", err)
}

func (s *gormStore) Exec(ctx context.Context, sql string, args ...interface{}) (int64, error) {
	defer metrics.ObserveDBQuery("exec", time.Now())
	var affected int64
	err := s.retry(func() error {
		tx := s.db.WithContext(ctx).Exec(sql, args...)
		affected = tx.RowsAffected
		return tx.Error
	})
	return affected, wrapErr("exec", err)
}

// wrapErr shields callers from driver error text. ErrNoRows and ErrDuplicate
// pass through untouched since services match on them; everything else is a
// store failure whose detail belongs in logs, not responses.
func wrapErr(op string, err error) error {
	if err == nil || errors.Is(err, ErrNoRows) || errors.Is(err, ErrDuplicate) {
		return err
	}
	return fault.Store(op, err)
}

// retry runs fn, and runs it once more after a fixed delay if the failure
// looks like a transient connectivity problem. Constraint violations,
// missing rows and every other deterministic failure surface immediately.
func (s *gormStore) retry(fn func() error) error {
	err := fn()
	if err == nil || !transient(err) {
		return err
	}
	time.Sleep(retryDelay)
	return fn()
}

func transient(err error) bool {
	if errors.Is(err, driver.ErrBadConn) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}
