package models

// Subscription links a follower (User) to a recipe author
type Subscription struct {
	BaseModel
	UserID   uint `json:"user_id" gorm:"not null;uniqueIndex:idx_subscription_user_author"`
	AuthorID uint `json:"author_id" gorm:"not null;uniqueIndex:idx_subscription_user_author;index"`
	User     User `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Author   User `json:"-" gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Subscription
func (Subscription) TableName() string {
	return "subscriptions"
}
