package models

type ConversationModel struct {
	ID         uint   `gorm:"primaryKey"`
	CustomerID uint   `gorm:"not null;index"`
	Title      string `gorm:"size:100;not null"`
	CreatedAt  int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt  int64  `gorm:"autoUpdateTime:milli;not null;index"`
}

func (ConversationModel) TableName() string {
	return "chat_conversations"
}

type MessageModel struct {
	ID             uint    `gorm:"primaryKey"`
	ConversationID uint    `gorm:"not null;index:idx_messages_conversation"`
	SenderType     string  `gorm:"size:20;not null"`
	MessageText    string  `gorm:"type:text;not null"`
	FileName       *string `gorm:"size:255"`
	FileURL        *string `gorm:"size:512"`
	CreatedAt      int64   `gorm:"autoCreateTime:milli;not null;index:idx_messages_conversation"`
}

func (MessageModel) TableName() string {
	return "chat_messages"
}
