package models

// Studio represents a game development studio.
type Studio struct {
	ID          uint    `gorm:"column:id;primaryKey;autoIncrement"`
	Name        string  `gorm:"column:name;not null"`
	Description string  `gorm:"column:description"`
	Rating      float64 `gorm:"column:rating"`
}

func (Studio) TableName() string { return "studios" }
