package dto

import (
	"time"

	"github.com/ecoride/helpdesk/internal/domain/query"
	"github.com/ecoride/helpdesk/internal/domain/user"
)

type AttachmentDTO struct {
	FileName string `json:"file_name"`
	FileURL  string `json:"file_url"`
}

type QueryDTO struct {
	ID           uint           `json:"id"`
	Number       string         `json:"number"`
	CustomerID   uint           `json:"customer_id"`
	CustomerName string         `json:"customer_name,omitempty"`
	QueryText    string         `json:"query_text"`
	ResponseText *string        `json:"response_text"`
	Status       string         `json:"status"`
	Attachment   *AttachmentDTO `json:"attachment,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

func ToQueryDTO(q *query.Query) *QueryDTO {
	if q == nil {
		return nil
	}

	d := &QueryDTO{
		ID:           q.ID(),
		Number:       q.Number(),
		CustomerID:   q.CustomerID(),
		QueryText:    q.QueryText(),
		ResponseText: q.ResponseText(),
		Status:       q.Status().String(),
		CreatedAt:    q.CreatedAt(),
		UpdatedAt:    q.UpdatedAt(),
	}

	if att := q.Attachment(); att != nil {
		d.Attachment = &AttachmentDTO{
			FileName: att.FileName,
			FileURL:  att.FileURL,
		}
	}

	return d
}

// ToQueryDTOWithProfile decorates the DTO with the submitting customer's
// display name for the admin listing.
func ToQueryDTOWithProfile(q *query.Query, profile *user.Profile) *QueryDTO {
	d := ToQueryDTO(q)
	if d == nil {
		return nil
	}
	if profile != nil {
		d.CustomerName = profile.DisplayName()
	}
	return d
}
