package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/ecoride/helpdesk/internal/domain/query"
	"github.com/ecoride/helpdesk/internal/infrastructure/persistence/mappers"
	"github.com/ecoride/helpdesk/internal/infrastructure/persistence/models"
	db "github.com/ecoride/helpdesk/internal/shared/db"
)

type QueryRepository struct {
	db     *gorm.DB
	mapper mappers.QueryMapper
}

func NewQueryRepository(db *gorm.DB) *QueryRepository {
	return &QueryRepository{
		db:     db,
		mapper: mappers.NewQueryMapper(),
	}
}

func (r *QueryRepository) Save(ctx context.Context, q *query.Query) error {
	model := r.mapper.ToModel(q)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save query: %w", err)
	}

	if err := q.SetID(model.ID); err != nil {
		return err
	}

	return nil
}

// Update is guarded by optimistic versioning: the WHERE clause matches the
// version the mutation was based on (the entity already carries the
// incremented one). Zero rows affected means a concurrent writer won.
func (r *QueryRepository) Update(ctx context.Context, q *query.Query) error {
	model := r.mapper.ToModel(q)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.QueryModel{}).
		Where("id = ? AND version = ?", model.ID, model.Version-1).
		Select("response_text", "status", "version", "updated_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update query: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		// Distinguish a lost race from a missing row.
		var count int64
		if err := tx.Model(&models.QueryModel{}).Where("id = ?", model.ID).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to update query: %w", err)
		}
		if count == 0 {
			return query.ErrNotFound
		}
		return query.ErrVersionConflict
	}

	return nil
}

func (r *QueryRepository) GetByID(ctx context.Context, id uint) (*query.Query, error) {
	var model models.QueryModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, query.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find query: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *QueryRepository) List(ctx context.Context, filter query.Filter) ([]*query.Query, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	dbQuery := tx.Model(&models.QueryModel{})

	if filter.CustomerID != 0 {
		dbQuery = dbQuery.Where("customer_queries.customer_id = ?", filter.CustomerID)
	}
	if filter.Status != nil {
		dbQuery = dbQuery.Where("customer_queries.status = ?", filter.Status.String())
	}
	if filter.Search != "" {
		// The display-name match joins the read-only profile directory so
		// admins can search by customer name.
		pattern := "%" + filter.Search + "%"
		dbQuery = dbQuery.
			Joins("LEFT JOIN profiles ON profiles.user_id = customer_queries.customer_id").
			Where(
				"LOWER(customer_queries.query_text) LIKE LOWER(?) OR LOWER(customer_queries.response_text) LIKE LOWER(?) OR LOWER(profiles.first_name) LIKE LOWER(?) OR LOWER(profiles.last_name) LIKE LOWER(?)",
				pattern, pattern, pattern, pattern,
			)
	}

	var total int64
	if err := dbQuery.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count queries: %w", err)
	}

	if filter.Page > 0 && filter.PageSize > 0 {
		dbQuery = dbQuery.
			Offset((filter.Page - 1) * filter.PageSize).
			Limit(filter.PageSize)
	}

	var rows []models.QueryModel
	if err := dbQuery.Order("customer_queries.created_at DESC, customer_queries.id DESC").Find(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list queries: %w", err)
	}

	queries := make([]*query.Query, 0, len(rows))
	for i := range rows {
		q, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, 0, err
		}
		queries = append(queries, q)
	}

	return queries, total, nil
}
