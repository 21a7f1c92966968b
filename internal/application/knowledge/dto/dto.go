package dto

import (
	"time"

	"github.com/ecoride/helpdesk/internal/domain/knowledge"
)

type KnowledgeEntryDTO struct {
	ID        uint      `json:"id"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	Category  string    `json:"category"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HelpCenterEntryDTO is the public rendering of an active entry. AnswerHTML
// is sanitized server-side; clients may inject it directly.
type HelpCenterEntryDTO struct {
	ID         uint   `json:"id"`
	Question   string `json:"question"`
	AnswerHTML string `json:"answer_html"`
}

type HelpCenterCategoryDTO struct {
	Category string               `json:"category"`
	Entries  []HelpCenterEntryDTO `json:"entries"`
}

func ToKnowledgeEntryDTO(e *knowledge.Entry) *KnowledgeEntryDTO {
	if e == nil {
		return nil
	}
	return &KnowledgeEntryDTO{
		ID:        e.ID(),
		Question:  e.Question(),
		Answer:    e.Answer(),
		Category:  e.Category(),
		IsActive:  e.Active(),
		CreatedAt: e.CreatedAt(),
		UpdatedAt: e.UpdatedAt(),
	}
}

func ToKnowledgeEntryDTOs(entries []*knowledge.Entry) []KnowledgeEntryDTO {
	dtos := make([]KnowledgeEntryDTO, 0, len(entries))
	for _, e := range entries {
		dtos = append(dtos, *ToKnowledgeEntryDTO(e))
	}
	return dtos
}
