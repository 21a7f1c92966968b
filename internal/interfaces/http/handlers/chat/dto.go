package chat

type SendMessageRequest struct {
	Text       string             `json:"text"`
	Attachment *AttachmentRequest `json:"attachment"`
}

type AttachmentRequest struct {
	FileName string `json:"file_name" binding:"required"`
	FileURL  string `json:"file_url" binding:"required"`
}
