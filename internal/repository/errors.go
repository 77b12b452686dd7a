package repository

import (
	"errors"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	ErrNotFound = errors.New("record not found")
	ErrConflict = errors.New("record already exists")
)

const (
	pgUniqueViolation    = "23505"
	mysqlDuplicateEntry  = 1062
	maxDocumentNumberTry = 3
)

// translate maps driver errors onto the package sentinels; other errors are
// returned untouched.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if isUniqueViolation(err) {
		return ErrConflict
	}
	return err
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return true
	}
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) && myErr.Number == mysqlDuplicateEntry {
		return true
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

// Page is the skip/limit window used by list endpoints.
type Page struct {
	Skip  int
	Limit int
}

const (
	DefaultLimit = 100
	MaxLimit     = 1000
)

// Normalize clamps the window to sane bounds.
func (p Page) Normalize() Page {
	if p.Skip < 0 {
		p.Skip = 0
	}
	if p.Limit <= 0 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	return p
}

func (p Page) apply(db *gorm.DB) *gorm.DB {
	p = p.Normalize()
	return db.Offset(p.Skip).Limit(p.Limit)
}
