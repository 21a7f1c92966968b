package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/ecoride/helpdesk/internal/domain/knowledge"
	"github.com/ecoride/helpdesk/internal/infrastructure/persistence/mappers"
	"github.com/ecoride/helpdesk/internal/infrastructure/persistence/models"
	db "github.com/ecoride/helpdesk/internal/shared/db"
)

type KnowledgeRepository struct {
	db     *gorm.DB
	mapper mappers.KnowledgeMapper
}

func NewKnowledgeRepository(db *gorm.DB) *KnowledgeRepository {
	return &KnowledgeRepository{
		db:     db,
		mapper: mappers.NewKnowledgeMapper(),
	}
}

func (r *KnowledgeRepository) Save(ctx context.Context, entry *knowledge.Entry) error {
	model := r.mapper.ToModel(entry)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save knowledge entry: %w", err)
	}

	if err := entry.SetID(model.ID); err != nil {
		return err
	}

	return nil
}

func (r *KnowledgeRepository) Update(ctx context.Context, entry *knowledge.Entry) error {
	model := r.mapper.ToModel(entry)
	tx := db.GetTxFromContext(ctx, r.db)

	// Select lists columns explicitly so a false IsActive is still written;
	// gorm's Updates skips zero values otherwise.
	result := tx.
		Model(&models.KnowledgeEntryModel{}).
		Where("id = ?", model.ID).
		Select("question", "answer", "category", "is_active", "updated_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update knowledge entry: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return knowledge.ErrNotFound
	}

	return nil
}

func (r *KnowledgeRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.KnowledgeEntryModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete knowledge entry: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return knowledge.ErrNotFound
	}

	return nil
}

func (r *KnowledgeRepository) GetByID(ctx context.Context, id uint) (*knowledge.Entry, error) {
	var model models.KnowledgeEntryModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, knowledge.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find knowledge entry: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

// FindActive returns active entries by id ascending. The matcher walks them
// in this order and stops at the first hit, so the ordering is load-bearing.
func (r *KnowledgeRepository) FindActive(ctx context.Context) ([]*knowledge.Entry, error) {
	var rows []models.KnowledgeEntryModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("is_active = ?", true).
		Order("id ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list active knowledge entries: %w", err)
	}

	return r.toDomainList(rows)
}

func (r *KnowledgeRepository) ListActive(ctx context.Context) ([]*knowledge.Entry, error) {
	var rows []models.KnowledgeEntryModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("is_active = ?", true).
		Order("category ASC, id ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list active knowledge entries: %w", err)
	}

	return r.toDomainList(rows)
}

func (r *KnowledgeRepository) List(ctx context.Context, filter knowledge.ListFilter) ([]*knowledge.Entry, error) {
	var rows []models.KnowledgeEntryModel
	tx := db.GetTxFromContext(ctx, r.db)

	query := tx.Model(&models.KnowledgeEntryModel{})
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where(
			"LOWER(question) LIKE LOWER(?) OR LOWER(answer) LIKE LOWER(?) OR LOWER(category) LIKE LOWER(?)",
			pattern, pattern, pattern,
		)
	}

	if err := query.Order("id ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list knowledge entries: %w", err)
	}

	return r.toDomainList(rows)
}

func (r *KnowledgeRepository) toDomainList(rows []models.KnowledgeEntryModel) ([]*knowledge.Entry, error) {
	entries := make([]*knowledge.Entry, 0, len(rows))
	for i := range rows {
		entry, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
