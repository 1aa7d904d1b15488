package catalog

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/ahinestrog/bookstore-console/Backend/src/money"
	_ "modernc.org/sqlite" // driver 100% Go
)

var ErrNotFound = errors.New("book not found")

// MemoryDSN keeps the catalog for the lifetime of the process only.
const MemoryDSN = ":memory:"

//go:embed db/schema.sql db/seed.sql
var sqlFS embed.FS

func mustRead(path string) string {
	b, err := sqlFS.ReadFile(path)
	if err != nil {
		panic(err)
	}
	return string(b)
}

type Repository interface {
	Init(ctx context.Context) error
	Seed(ctx context.Context) error
	Add(ctx context.Context, b *Book) error
	Count(ctx context.Context) (int64, error)
	List(ctx context.Context) ([]*Book, error)
	Get(ctx context.Context, id string) (*Book, error)
	Close() error
}

// OpenSQLite opens the catalog database. A single connection is kept so an
// in-memory database survives between queries.
func OpenSQLite(dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)
	return db, nil
}

type sqliteRepo struct{ db *sql.DB }

func NewSQLiteRepo(db *sql.DB) Repository { return &sqliteRepo{db: db} }

func (r *sqliteRepo) Init(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, mustRead("db/schema.sql"))
	return err
}

// Seed loads the bundled catalog. Rows already present are left alone.
func (r *sqliteRepo) Seed(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, mustRead("db/seed.sql"))
	return err
}

func (r *sqliteRepo) Close() error { return r.db.Close() }

func (r *sqliteRepo) Add(ctx context.Context, b *Book) error {
	p := b.Print()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO books(id,title,author,kind,base_price,pages,cover,publish_year)
		VALUES (?,?,?,?,?,?,?,?)`,
		b.ID(), b.Title(), b.Author(), b.Kind().String(), b.BasePrice().Exact(),
		p.Pages, p.Cover, p.PublishYear)
	if err != nil {
		return fmt.Errorf("insert book %s: %w", b.ID(), err)
	}
	return nil
}

func (r *sqliteRepo) Count(ctx context.Context) (int64, error) {
	var c int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM books`).Scan(&c)
	return c, err
}

func (r *sqliteRepo) List(ctx context.Context) ([]*Book, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id,title,author,kind,base_price,pages,cover,publish_year
		FROM books ORDER BY seq`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*Book
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *sqliteRepo) Get(ctx context.Context, id string) (*Book, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id,title,author,kind,base_price,pages,cover,publish_year
		FROM books WHERE id=?`, id)
	b, err := scanBook(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return nil, err
	}
	return b, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanBook(s scanner) (*Book, error) {
	var (
		id, title, author, kindName, price string
		p                                  PrintDetails
	)
	if err := s.Scan(&id, &title, &author, &kindName, &price, &p.Pages, &p.Cover, &p.PublishYear); err != nil {
		return nil, err
	}
	kind, err := ParseKind(kindName)
	if err != nil {
		return nil, err
	}
	amount, err := money.Parse(price)
	if err != nil {
		return nil, fmt.Errorf("%w: book %s: %v", ErrInvalidPrice, id, err)
	}
	return newBook(kind, id, title, author, amount, p)
}
