package models

type QueryModel struct {
	ID           uint    `gorm:"primaryKey"`
	Number       string  `gorm:"uniqueIndex;size:50;not null"`
	CustomerID   uint    `gorm:"not null;index"`
	QueryText    string  `gorm:"type:text;not null"`
	ResponseText *string `gorm:"type:text"`
	Status       string  `gorm:"size:20;not null;index"`
	FileName     *string `gorm:"size:255"`
	FileURL      *string `gorm:"size:512"`
	Version      int     `gorm:"not null;default:1"`
	CreatedAt    int64   `gorm:"autoCreateTime:milli;not null;index"`
	UpdatedAt    int64   `gorm:"autoUpdateTime:milli;not null"`
}

func (QueryModel) TableName() string {
	return "customer_queries"
}

// ProfileModel is a read-only view over the identity provider's profile
// table. The portal never writes to it.
type ProfileModel struct {
	UserID    uint   `gorm:"primaryKey;column:user_id"`
	FirstName string `gorm:"size:100"`
	LastName  string `gorm:"size:100"`
	Email     string `gorm:"size:255"`
}

func (ProfileModel) TableName() string {
	return "profiles"
}
