package mappers

import (
	"fmt"
	"time"

	"github.com/ecoride/helpdesk/internal/domain/knowledge"
	"github.com/ecoride/helpdesk/internal/infrastructure/persistence/models"
)

// KnowledgeMapper handles the conversion between knowledge entries and their
// persistence models.
type KnowledgeMapper interface {
	// ToModel converts a knowledge entry domain entity to a persistence model.
	ToModel(e *knowledge.Entry) *models.KnowledgeEntryModel

	// ToDomain converts a knowledge entry persistence model to a domain entity.
	ToDomain(model *models.KnowledgeEntryModel) (*knowledge.Entry, error)
}

// KnowledgeMapperImpl is the concrete implementation of KnowledgeMapper.
type KnowledgeMapperImpl struct{}

// NewKnowledgeMapper creates a new KnowledgeMapper.
func NewKnowledgeMapper() KnowledgeMapper {
	return &KnowledgeMapperImpl{}
}

func (m *KnowledgeMapperImpl) ToModel(e *knowledge.Entry) *models.KnowledgeEntryModel {
	return &models.KnowledgeEntryModel{
		ID:        e.ID(),
		Question:  e.Question(),
		Answer:    e.Answer(),
		Category:  e.Category(),
		IsActive:  e.Active(),
		CreatedAt: e.CreatedAt().UnixMilli(),
		UpdatedAt: e.UpdatedAt().UnixMilli(),
	}
}

func (m *KnowledgeMapperImpl) ToDomain(model *models.KnowledgeEntryModel) (*knowledge.Entry, error) {
	entry, err := knowledge.ReconstructEntry(
		model.ID,
		model.Question,
		model.Answer,
		model.Category,
		model.IsActive,
		time.UnixMilli(model.CreatedAt),
		time.UnixMilli(model.UpdatedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct knowledge entry %d: %w", model.ID, err)
	}
	return entry, nil
}
