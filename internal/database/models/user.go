package models

// User is a registered account. Email is the login identifier.
type User struct {
	BaseModel
	Email        string `json:"email" gorm:"uniqueIndex:idx_users_email;not null;size:254" validate:"required,email,max=254"`
	Username     string `json:"username" gorm:"uniqueIndex:idx_users_username;not null;size:150" validate:"required,max=150"`
	FirstName    string `json:"first_name" gorm:"not null;size:150" validate:"required,max=150"`
	LastName     string `json:"last_name" gorm:"not null;size:150" validate:"required,max=150"`
	PasswordHash string `json:"-" gorm:"not null;size:255"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
