package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"portfolio-builder/internal/domain"
	"portfolio-builder/internal/model"
)

var (
	// ErrNotFound means no portfolio exists for the given email.
	ErrNotFound = errors.New("repository: portfolio not found")
	// ErrDuplicateEmail surfaces a unique-constraint violation distinctly.
	ErrDuplicateEmail = errors.New("repository: a portfolio with this email already exists")
	// ErrStoreUnavailable is returned when the server started without a
	// reachable database.
	ErrStoreUnavailable = errors.New("repository: database not available")
)

const pgUniqueViolation = "23505"

// PortfolioRepo persists portfolio documents as JSONB rows, upserted by
// email. Two saves with the same email race last-write-wins; there is no
// version check.
type PortfolioRepo struct {
	pool *pgxpool.Pool
}

func NewPortfolioRepo(pool *pgxpool.Pool) *PortfolioRepo {
	return &PortfolioRepo{pool: pool}
}

// Save validates and upserts the document, returning the stored copy with
// server-assigned timestamps.
func (r *PortfolioRepo) Save(ctx context.Context, doc domain.PortfolioDocument) (domain.PortfolioDocument, error) {
	if r.pool == nil {
		return domain.PortfolioDocument{}, ErrStoreUnavailable
	}
	if doc.Email == "" {
		return domain.PortfolioDocument{}, &model.ValidationError{Fields: []string{"email: is required"}}
	}
	if err := model.ValidateDocument(doc); err != nil {
		return domain.PortfolioDocument{}, err
	}

	now := time.Now().UTC()
	doc.CreatedAt = time.Time{}
	doc.UpdatedAt = time.Time{}
	docB, err := json.Marshal(doc)
	if err != nil {
		return domain.PortfolioDocument{}, fmt.Errorf("repository: marshal document: %w", err)
	}

	var createdAt, updatedAt time.Time
	err = r.pool.QueryRow(ctx, `INSERT INTO portfolios (id, email, doc, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $4)
		ON CONFLICT (email) DO UPDATE SET doc = EXCLUDED.doc, updated_at = EXCLUDED.updated_at
		RETURNING created_at, updated_at`,
		uuid.New(), doc.Email, docB, now).Scan(&createdAt, &updatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return domain.PortfolioDocument{}, ErrDuplicateEmail
		}
		return domain.PortfolioDocument{}, fmt.Errorf("repository: upsert portfolio: %w", err)
	}

	doc.CreatedAt = createdAt
	doc.UpdatedAt = updatedAt
	return doc, nil
}

// Fetch loads the document stored for email.
func (r *PortfolioRepo) Fetch(ctx context.Context, email string) (domain.PortfolioDocument, error) {
	if r.pool == nil {
		return domain.PortfolioDocument{}, ErrStoreUnavailable
	}
	var (
		docB      []byte
		createdAt time.Time
		updatedAt time.Time
	)
	err := r.pool.QueryRow(ctx, `SELECT doc, created_at, updated_at FROM portfolios WHERE email = $1`, email).
		Scan(&docB, &createdAt, &updatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.PortfolioDocument{}, ErrNotFound
	}
	if err != nil {
		return domain.PortfolioDocument{}, fmt.Errorf("repository: fetch portfolio: %w", err)
	}

	var doc domain.PortfolioDocument
	if err := json.Unmarshal(docB, &doc); err != nil {
		return domain.PortfolioDocument{}, fmt.Errorf("repository: unmarshal document: %w", err)
	}
	doc = model.NormalizeDocument(doc)
	doc.CreatedAt = createdAt
	doc.UpdatedAt = updatedAt
	return doc, nil
}
