package repository

import (
	"context"
	"errors"
	"fmt"

	"gamecatalog/backend/internal/models"

	"gorm.io/gorm"
)

// GameFields are the mutable columns of a game.
type GameFields struct {
	Title       string
	Genre       string
	ReleaseYear int
	Rating      float64
	StudioID    uint
}

// GameRepo encapsulates all queries against the games table. It does not
// check that StudioID refers to an existing studio.
type GameRepo struct {
	db *gorm.DB
}

func NewGameRepo(db *gorm.DB) *GameRepo {
	return &GameRepo{db: db}
}

// List returns every game ordered by title.
func (r *GameRepo) List(ctx context.Context) ([]models.Game, error) {
	games := []models.Game{}
	if err := r.db.WithContext(ctx).Order("title ASC").Find(&games).Error; err != nil {
		return nil, fmt.Errorf("list games: %w", err)
	}
	return games, nil
}

// ListByStudio returns the games of one studio ordered by title.
func (r *GameRepo) ListByStudio(ctx context.Context, studioID uint) ([]models.Game, error) {
	games := []models.Game{}
	err := r.db.WithContext(ctx).
		Where(map[string]interface{}{"studioId": studioID}).
		Order("title ASC").
		Find(&games).Error
	if err != nil {
		return nil, fmt.Errorf("list games of studio %d: %w", studioID, err)
	}
	return games, nil
}

func (r *GameRepo) GetByID(ctx context.Context, id uint) (models.Game, error) {
	var game models.Game
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&game).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Game{}, ErrNotFound
	}
	if err != nil {
		return models.Game{}, fmt.Errorf("get game %d: %w", id, err)
	}
	return game, nil
}

func (r *GameRepo) Create(ctx context.Context, f GameFields) (models.Game, error) {
	game := models.Game{
		Title:       f.Title,
		Genre:       f.Genre,
		ReleaseYear: f.ReleaseYear,
		Rating:      f.Rating,
		StudioID:    f.StudioID,
	}
	if err := r.db.WithContext(ctx).Create(&game).Error; err != nil {
		return models.Game{}, fmt.Errorf("create game: %w", err)
	}
	return game, nil
}

func (r *GameRepo) Update(ctx context.Context, id uint, f GameFields) error {
	err := r.db.WithContext(ctx).Model(&models.Game{}).Where("id = ?", id).Updates(map[string]interface{}{
		"title":       f.Title,
		"genre":       f.Genre,
		"releaseYear": f.ReleaseYear,
		"rating":      f.Rating,
		"studioId":    f.StudioID,
	}).Error
	if err != nil {
		return fmt.Errorf("update game %d: %w", id, err)
	}
	return nil
}

func (r *GameRepo) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Game{}).Error; err != nil {
		return fmt.Errorf("delete game %d: %w", id, err)
	}
	return nil
}
