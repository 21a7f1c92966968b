package usecases

import (
	"context"

	"github.com/ecoride/helpdesk/internal/application/knowledge/dto"
	"github.com/ecoride/helpdesk/internal/domain/knowledge"
	"github.com/ecoride/helpdesk/internal/shared/errors"
	"github.com/ecoride/helpdesk/internal/shared/logger"
	"github.com/ecoride/helpdesk/internal/shared/services/markdown"
)

// uncategorizedLabel is the display bucket for entries without a category.
const uncategorizedLabel = "General"

// GetHelpCenterUseCase assembles the public help center: active entries
// grouped by category with answers rendered from Markdown to sanitized HTML.
// Uncategorized entries are grouped last under a generic label.
type GetHelpCenterUseCase struct {
	knowledgeRepo knowledge.Repository
	renderer      markdown.Renderer
	logger        logger.Interface
}

func NewGetHelpCenterUseCase(
	knowledgeRepo knowledge.Repository,
	renderer markdown.Renderer,
	logger logger.Interface,
) *GetHelpCenterUseCase {
	return &GetHelpCenterUseCase{
		knowledgeRepo: knowledgeRepo,
		renderer:      renderer,
		logger:        logger,
	}
}

func (uc *GetHelpCenterUseCase) Execute(ctx context.Context) ([]dto.HelpCenterCategoryDTO, error) {
	entries, err := uc.knowledgeRepo.ListActive(ctx)
	if err != nil {
		uc.logger.Errorw("failed to load help center entries", "error", err)
		return nil, errors.NewInternalError("failed to load help center")
	}

	categories := make([]dto.HelpCenterCategoryDTO, 0)
	index := make(map[string]int)
	var uncategorized []dto.HelpCenterEntryDTO

	for _, entry := range entries {
		answerHTML, err := uc.renderer.RenderSanitized(entry.Answer())
		if err != nil {
			uc.logger.Errorw("failed to render answer", "error", err, "entry_id", entry.ID())
			return nil, errors.NewInternalError("failed to render help center content")
		}

		item := dto.HelpCenterEntryDTO{
			ID:         entry.ID(),
			Question:   entry.Question(),
			AnswerHTML: answerHTML,
		}

		if !entry.HasCategory() {
			uncategorized = append(uncategorized, item)
			continue
		}

		pos, ok := index[entry.Category()]
		if !ok {
			categories = append(categories, dto.HelpCenterCategoryDTO{Category: entry.Category()})
			pos = len(categories) - 1
			index[entry.Category()] = pos
		}
		categories[pos].Entries = append(categories[pos].Entries, item)
	}

	if len(uncategorized) > 0 {
		categories = append(categories, dto.HelpCenterCategoryDTO{
			Category: uncategorizedLabel,
			Entries:  uncategorized,
		})
	}

	return categories, nil
}
