package glossary

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"

	"github.com/at-ishikawa/glossary/internal/database"
	"github.com/at-ishikawa/glossary/schemas"
)

const selectTerms = "SELECT id, term, definition, category, related_terms, source, created_at, updated_at FROM terms"

type termRow struct {
	ID           int64  `db:"id"`
	Term         string `db:"term"`
	Definition   string `db:"definition"`
	Category     string `db:"category"`
	RelatedTerms string `db:"related_terms"`
	Source       string `db:"source"`
	CreatedAt    string `db:"created_at"`
	UpdatedAt    string `db:"updated_at"`
}

func (row termRow) toEntry() (Entry, error) {
	e := Entry{
		Term:       row.Term,
		Definition: row.Definition,
		Category:   row.Category,
		Source:     row.Source,
	}
	if err := json.Unmarshal([]byte(row.RelatedTerms), &e.RelatedTerms); err != nil {
		return Entry{}, fmt.Errorf("json.Unmarshal(related_terms of %q) > %w", row.Term, err)
	}
	var err error
	if e.CreatedAt, err = ParseTimestamp(row.CreatedAt); err != nil {
		return Entry{}, fmt.Errorf("ParseTimestamp(created_at of %q) > %w", row.Term, err)
	}
	if e.UpdatedAt, err = ParseTimestamp(row.UpdatedAt); err != nil {
		return Entry{}, fmt.Errorf("ParseTimestamp(updated_at of %q) > %w", row.Term, err)
	}
	return e.Clone(), nil
}

func encodeRelatedTerms(terms []string) (string, error) {
	if terms == nil {
		terms = []string{}
	}
	b, err := json.Marshal(terms)
	if err != nil {
		return "", fmt.Errorf("json.Marshal(related_terms) > %w", err)
	}
	return string(b), nil
}

// DBRepository implements Repository on a single relational terms table.
// The auto-increment id preserves insertion order.
type DBRepository struct {
	db    *sqlx.DB
	clock Clock
}

// NewDBRepository creates a new DBRepository. A nil clock means SystemClock.
func NewDBRepository(db *sqlx.DB, clock Clock) *DBRepository {
	if clock == nil {
		clock = SystemClock{}
	}
	return &DBRepository{db: db, clock: clock}
}

// Migrate creates the terms table if it does not exist.
func (r *DBRepository) Migrate(ctx context.Context) error {
	statements, err := schemas.Statements(r.db.DriverName())
	if err != nil {
		return fmt.Errorf("schemas.Statements() > %w", err)
	}
	for _, stmt := range statements {
		if _, err := r.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("db.ExecContext(create terms schema) > %w", err)
		}
	}
	return nil
}

func (r *DBRepository) Get(ctx context.Context, term string) (Entry, error) {
	var row termRow
	err := r.db.GetContext(ctx, &row, r.db.Rebind(selectTerms+" WHERE term = ?"), term)
	if errors.Is(err, sql.ErrNoRows) {
		return Entry{}, ErrNotFound
	}
	if err != nil {
		return Entry{}, fmt.Errorf("db.GetContext(terms) > %w", err)
	}
	return row.toEntry()
}

func (r *DBRepository) Create(ctx context.Context, entry Entry) (Entry, error) {
	created := entry.Clone()
	now := stamp(r.clock)
	created.CreatedAt = now
	created.UpdatedAt = now

	related, err := encodeRelatedTerms(created.RelatedTerms)
	if err != nil {
		return Entry{}, err
	}

	err = database.RunInTx(ctx, r.db, func(ctx context.Context, tx *sqlx.Tx) error {
		var count int
		if err := tx.GetContext(ctx, &count, tx.Rebind("SELECT COUNT(*) FROM terms WHERE term = ?"), created.Term); err != nil {
			return fmt.Errorf("tx.GetContext(count terms) > %w", err)
		}
		if count > 0 {
			return ErrAlreadyExists
		}

		if _, err := tx.ExecContext(ctx,
			tx.Rebind(`INSERT INTO terms (term, definition, category, related_terms, source, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)`),
			created.Term, created.Definition, created.Category, related, created.Source,
			FormatTimestamp(created.CreatedAt), FormatTimestamp(created.UpdatedAt)); err != nil {
			if isUniqueViolation(err) {
				return ErrAlreadyExists
			}
			return fmt.Errorf("tx.ExecContext(insert term) > %w", err)
		}
		return nil
	})
	if err != nil {
		return Entry{}, err
	}
	return created, nil
}

func (r *DBRepository) Update(ctx context.Context, term string, patch EntryPatch) (Entry, error) {
	var related any
	if patch.RelatedTerms != nil {
		encoded, err := encodeRelatedTerms(*patch.RelatedTerms)
		if err != nil {
			return Entry{}, err
		}
		related = encoded
	}

	var updated Entry
	err := database.RunInTx(ctx, r.db, func(ctx context.Context, tx *sqlx.Tx) error {
		var prev string
		err := tx.GetContext(ctx, &prev, tx.Rebind("SELECT updated_at FROM terms WHERE term = ?"), term)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("tx.GetContext(updated_at) > %w", err)
		}
		prevUpdatedAt, err := ParseTimestamp(prev)
		if err != nil {
			return fmt.Errorf("ParseTimestamp(%q) > %w", prev, err)
		}

		result, err := tx.ExecContext(ctx,
			tx.Rebind(`UPDATE terms SET
				definition = COALESCE(?, definition),
				category = COALESCE(?, category),
				related_terms = COALESCE(?, related_terms),
				source = COALESCE(?, source),
				updated_at = ?
			WHERE term = ?`),
			optional(patch.Definition), optional(patch.Category), related, optional(patch.Source),
			FormatTimestamp(nextUpdatedAt(r.clock, prevUpdatedAt)), term)
		if err != nil {
			return fmt.Errorf("tx.ExecContext(update term) > %w", err)
		}
		affected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("result.RowsAffected() > %w", err)
		}
		if affected == 0 {
			return ErrNotFound
		}

		var row termRow
		if err := tx.GetContext(ctx, &row, tx.Rebind(selectTerms+" WHERE term = ?"), term); err != nil {
			return fmt.Errorf("tx.GetContext(updated term) > %w", err)
		}
		updated, err = row.toEntry()
		return err
	})
	if err != nil {
		return Entry{}, err
	}
	return updated, nil
}

func (r *DBRepository) Delete(ctx context.Context, term string) error {
	result, err := r.db.ExecContext(ctx, r.db.Rebind("DELETE FROM terms WHERE term = ?"), term)
	if err != nil {
		return fmt.Errorf("db.ExecContext(delete term) > %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("result.RowsAffected() > %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *DBRepository) ListAll(ctx context.Context) ([]Entry, error) {
	var rows []termRow
	if err := r.db.SelectContext(ctx, &rows, selectTerms+" ORDER BY id"); err != nil {
		return nil, fmt.Errorf("db.SelectContext(terms) > %w", err)
	}
	entries := make([]Entry, 0, len(rows))
	for _, row := range rows {
		e, err := row.toEntry()
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func optional(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

func isUniqueViolation(err error) bool {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == 1062
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
