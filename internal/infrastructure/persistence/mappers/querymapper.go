package mappers

import (
	"fmt"
	"time"

	"github.com/ecoride/helpdesk/internal/domain/query"
	vo "github.com/ecoride/helpdesk/internal/domain/query/valueobjects"
	"github.com/ecoride/helpdesk/internal/domain/user"
	"github.com/ecoride/helpdesk/internal/infrastructure/persistence/models"
)

// QueryMapper handles the conversion between customer query domain entities
// and their persistence models.
type QueryMapper interface {
	// ToModel converts a query domain entity to a persistence model.
	ToModel(q *query.Query) *models.QueryModel

	// ToDomain converts a query persistence model to a domain entity.
	ToDomain(model *models.QueryModel) (*query.Query, error)

	// ProfileToDomain converts a profile persistence model to a domain value.
	ProfileToDomain(model *models.ProfileModel) user.Profile
}

// QueryMapperImpl is the concrete implementation of QueryMapper.
type QueryMapperImpl struct{}

// NewQueryMapper creates a new QueryMapper.
func NewQueryMapper() QueryMapper {
	return &QueryMapperImpl{}
}

func (m *QueryMapperImpl) ToModel(q *query.Query) *models.QueryModel {
	model := &models.QueryModel{
		ID:           q.ID(),
		Number:       q.Number(),
		CustomerID:   q.CustomerID(),
		QueryText:    q.QueryText(),
		ResponseText: q.ResponseText(),
		Status:       q.Status().String(),
		Version:      q.Version(),
		CreatedAt:    q.CreatedAt().UnixMilli(),
		UpdatedAt:    q.UpdatedAt().UnixMilli(),
	}

	if att := q.Attachment(); att != nil {
		fileName := att.FileName
		fileURL := att.FileURL
		model.FileName = &fileName
		model.FileURL = &fileURL
	}

	return model
}

func (m *QueryMapperImpl) ToDomain(model *models.QueryModel) (*query.Query, error) {
	var attachment *query.Attachment
	if model.FileName != nil && model.FileURL != nil {
		attachment = &query.Attachment{
			FileName: *model.FileName,
			FileURL:  *model.FileURL,
		}
	}

	q, err := query.ReconstructQuery(
		model.ID,
		model.Number,
		model.CustomerID,
		model.QueryText,
		model.ResponseText,
		vo.QueryStatus(model.Status),
		attachment,
		model.Version,
		time.UnixMilli(model.CreatedAt),
		time.UnixMilli(model.UpdatedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct query %d: %w", model.ID, err)
	}
	return q, nil
}

func (m *QueryMapperImpl) ProfileToDomain(model *models.ProfileModel) user.Profile {
	return user.Profile{
		UserID:    model.UserID,
		FirstName: model.FirstName,
		LastName:  model.LastName,
		Email:     model.Email,
	}
}
