package knowledge

type CreateEntryRequest struct {
	Question string `json:"question" binding:"required"`
	Answer   string `json:"answer" binding:"required"`
	Category string `json:"category"`
}

type UpdateEntryRequest struct {
	Question string `json:"question" binding:"required"`
	Answer   string `json:"answer" binding:"required"`
	Category string `json:"category"`
}

type SetEntryStatusRequest struct {
	Active *bool `json:"active" binding:"required"`
}
