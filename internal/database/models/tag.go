package models

// Tag labels recipes. Color is a hex value such as #E26C2D.
type Tag struct {
	ID    uint   `json:"id" gorm:"primaryKey"`
	Name  string `json:"name" gorm:"not null;size:200" validate:"required,max=200"`
	Color string `json:"color" gorm:"not null;size:7;uniqueIndex:idx_tags_color" validate:"required,hexcolor"`
	Slug  string `json:"slug" gorm:"not null;size:200;uniqueIndex:idx_tags_slug" validate:"required,max=200"`
}

// TableName returns the table name for Tag
func (Tag) TableName() string {
	return "tags"
}
