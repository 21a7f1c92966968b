package models

type KnowledgeEntryModel struct {
	ID        uint   `gorm:"primaryKey"`
	Question  string `gorm:"type:text;not null"`
	Answer    string `gorm:"type:text;not null"`
	Category  string `gorm:"size:100;index"`
	IsActive  bool   `gorm:"not null;default:true;index"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt int64  `gorm:"autoUpdateTime:milli;not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (KnowledgeEntryModel) TableName() string {
	return "knowledge_entries"
}
