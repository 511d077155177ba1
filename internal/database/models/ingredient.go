package models

// Ingredient is a catalogue entry referenced by recipes
type Ingredient struct {
	ID              uint   `json:"id" gorm:"primaryKey"`
	Name            string `json:"name" gorm:"not null;size:200;index;uniqueIndex:idx_ingredient_name_unit" validate:"required,max=200"`
	MeasurementUnit string `json:"measurement_unit" gorm:"not null;size:200;uniqueIndex:idx_ingredient_name_unit" validate:"required,max=200"`
}

// TableName returns the table name for Ingredient
func (Ingredient) TableName() string {
	return "ingredients"
}
