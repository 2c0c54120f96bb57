// Package relational looks up records in the relational source database.
// The CDC core is driven by the change log, but relationship validation and
// reference resolution sometimes need the full record behind a foreign key.
package relational

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound is returned when the referenced record does not exist.
var ErrNotFound = errors.New("record not found")

// identifierPattern restricts entity type names interpolated into SQL.
var identifierPattern = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// Resolver reads entity records from the relational source by primary key.
type Resolver struct {
	pool *pgxpool.Pool
}

// NewResolver creates a resolver over a pgx connection pool.
func NewResolver(pool *pgxpool.Pool) *Resolver {
	return &Resolver{pool: pool}
}

// Connect opens a pooled connection to the relational source.
func Connect(ctx context.Context, dsn string) (*Resolver, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("connect to relational source: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping relational source: %w", err)
	}
	return &Resolver{pool: pool}, nil
}

// Close releases the connection pool.
func (r *Resolver) Close() {
	if r.pool != nil {
		r.pool.Close()
	}
}

// GetEntityByID returns the full record for an entity, keyed by column name.
// The entity type is the table name as it appears in change events.
func (r *Resolver) GetEntityByID(ctx context.Context, entityType, id string) (map[string]any, error) {
	if !identifierPattern.MatchString(entityType) {
		return nil, fmt.Errorf("invalid entity type %q", entityType)
	}

	query := fmt.Sprintf(`SELECT * FROM %s WHERE id = $1`, entityType)
	rows, err := r.pool.Query(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("query %s/%s: %w", entityType, id, err)
	}
	defer rows.Close()

	if !rows.Next() {
		if rows.Err() != nil {
			return nil, fmt.Errorf("query %s/%s: %w", entityType, id, rows.Err())
		}
		return nil, fmt.Errorf("%s/%s: %w", entityType, id, ErrNotFound)
	}

	values, err := rows.Values()
	if err != nil {
		return nil, fmt.Errorf("read %s/%s: %w", entityType, id, err)
	}

	record := make(map[string]any, len(values))
	for i, fd := range rows.FieldDescriptions() {
		record[fd.Name] = values[i]
	}
	return record, nil
}

// EntityExists reports whether the referenced record exists. It implements
// validation.ReferenceChecker.
func (r *Resolver) EntityExists(ctx context.Context, entityType, id string) (bool, error) {
	if !identifierPattern.MatchString(entityType) {
		return false, fmt.Errorf("invalid entity type %q", entityType)
	}

	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE id = $1)`, entityType)
	var exists bool
	if err := r.pool.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("check %s/%s: %w", entityType, id, err)
	}
	return exists, nil
}
