package models

// Game represents a video game in the catalog. StudioID references Studio.ID.
type Game struct {
	ID          uint    `gorm:"column:id;primaryKey;autoIncrement"`
	Title       string  `gorm:"column:title;not null"`
	Genre       string  `gorm:"column:genre"`
	ReleaseYear int     `gorm:"column:releaseYear"`
	Rating      float64 `gorm:"column:rating"`
	StudioID    uint    `gorm:"column:studioId"`
}

func (Game) TableName() string { return "games" }
