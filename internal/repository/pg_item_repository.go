package repository

import (
	"context"
	"errors"
	"fmt"

	"origo-server/internal/models"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const (
	createItemQuery = `
        INSERT INTO items (text) VALUES ($1)
        RETURNING id, text, created_at, updated_at
    `
	getItemQuery    = `SELECT id, text, created_at, updated_at FROM items WHERE id = $1`
	listItemsQuery  = `SELECT id, text, created_at, updated_at FROM items ORDER BY id`
	updateItemQuery = `
        UPDATE items SET text = $2, updated_at = now() WHERE id = $1
        RETURNING id, text, created_at, updated_at
    `
	deleteItemQuery = `DELETE FROM items WHERE id = $1`
)

// Compile-time check to ensure pgItemRepository implements ItemRepository
var _ ItemRepository = (*pgItemRepository)(nil)

type pgItemRepository struct {
	db     DBTX
	logger *zap.Logger
}

// NewPgItemRepository creates a new PostgreSQL-backed ItemRepository.
func NewPgItemRepository(db DBTX, logger *zap.Logger) ItemRepository {
	return &pgItemRepository{
		db:     db,
		logger: logger.Named("PgItemRepo"),
	}
}

func (r *pgItemRepository) scanItem(row pgx.Row) (*models.Item, error) {
	item := &models.Item{}
	err := row.Scan(&item.ID, &item.Text, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	return item, nil
}

func (r *pgItemRepository) Create(ctx context.Context, text string) (*models.Item, error) {
	item, err := r.scanItem(r.db.QueryRow(ctx, createItemQuery, text))
	if err != nil {
		r.logger.Error("Failed to create item", zap.Error(err))
		return nil, fmt.Errorf("failed to create item: %w", err)
	}
	return item, nil
}

func (r *pgItemRepository) GetByID(ctx context.Context, id int64) (*models.Item, error) {
	item, err := r.scanItem(r.db.QueryRow(ctx, getItemQuery, id))
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, models.ErrNotFound
		}
		r.logger.Error("Failed to get item", zap.Error(err), zap.Int64("itemID", id))
		return nil, fmt.Errorf("failed to get item: %w", err)
	}
	return item, nil
}

func (r *pgItemRepository) List(ctx context.Context) ([]models.Item, error) {
	var items []models.Item
	if err := pgxscan.Select(ctx, r.db, &items, listItemsQuery); err != nil {
		r.logger.Error("Failed to list items", zap.Error(err))
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	if items == nil {
		items = []models.Item{}
	}
	return items, nil
}

func (r *pgItemRepository) Update(ctx context.Context, id int64, text string) (*models.Item, error) {
	item, err := r.scanItem(r.db.QueryRow(ctx, updateItemQuery, id, text))
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, models.ErrNotFound
		}
		r.logger.Error("Failed to update item", zap.Error(err), zap.Int64("itemID", id))
		return nil, fmt.Errorf("failed to update item: %w", err)
	}
	return item, nil
}

func (r *pgItemRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, deleteItemQuery, id)
	if err != nil {
		r.logger.Error("Failed to delete item", zap.Error(err), zap.Int64("itemID", id))
		return fmt.Errorf("failed to delete item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}
