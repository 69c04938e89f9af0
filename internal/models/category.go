package models

// Category groups products. Products reference their category, a category
// does not embed its products.
type Category struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Name        string `json:"name" gorm:"uniqueIndex;type:varchar(100);not null" validate:"required,max=100"`
	Description string `json:"description" gorm:"type:varchar(500)" validate:"omitempty,max=500"`
}

func (Category) TableName() string {
	return "categories"
}
