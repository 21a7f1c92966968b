package query

type SubmitQueryRequest struct {
	QueryText  string             `json:"query_text" binding:"required"`
	Attachment *AttachmentRequest `json:"attachment"`
}

type AttachmentRequest struct {
	FileName string `json:"file_name" binding:"required"`
	FileURL  string `json:"file_url" binding:"required"`
}

type RespondToQueryRequest struct {
	ResponseText string `json:"response_text" binding:"required"`
}
