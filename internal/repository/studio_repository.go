package repository

import (
	"context"
	"errors"
	"fmt"

	"gamecatalog/backend/internal/models"

	"gorm.io/gorm"
)

// StudioFields are the mutable columns of a studio.
type StudioFields struct {
	Name        string
	Description string
	Rating      float64
}

// StudioRepo encapsulates all queries against the studios table.
type StudioRepo struct {
	db *gorm.DB
}

func NewStudioRepo(db *gorm.DB) *StudioRepo {
	return &StudioRepo{db: db}
}

// List returns every studio ordered by name.
func (r *StudioRepo) List(ctx context.Context) ([]models.Studio, error) {
	studios := []models.Studio{}
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&studios).Error; err != nil {
		return nil, fmt.Errorf("list studios: %w", err)
	}
	return studios, nil
}

// GetByID returns ErrNotFound when the studio does not exist.
func (r *StudioRepo) GetByID(ctx context.Context, id uint) (models.Studio, error) {
	var studio models.Studio
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&studio).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Studio{}, ErrNotFound
	}
	if err != nil {
		return models.Studio{}, fmt.Errorf("get studio %d: %w", id, err)
	}
	return studio, nil
}

func (r *StudioRepo) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Studio{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("check studio %d: %w", id, err)
	}
	return count > 0, nil
}

// Create inserts a studio; the returned record carries the assigned id.
func (r *StudioRepo) Create(ctx context.Context, f StudioFields) (models.Studio, error) {
	studio := models.Studio{
		Name:        f.Name,
		Description: f.Description,
		Rating:      f.Rating,
	}
	if err := r.db.WithContext(ctx).Create(&studio).Error; err != nil {
		return models.Studio{}, fmt.Errorf("create studio: %w", err)
	}
	return studio, nil
}

// Update overwrites every mutable column of the studio with the given id.
func (r *StudioRepo) Update(ctx context.Context, id uint, f StudioFields) error {
	err := r.db.WithContext(ctx).Model(&models.Studio{}).Where("id = ?", id).Updates(map[string]interface{}{
		"name":        f.Name,
		"description": f.Description,
		"rating":      f.Rating,
	}).Error
	if err != nil {
		return fmt.Errorf("update studio %d: %w", id, err)
	}
	return nil
}

// Delete removes the studio and every game that references it. Both
// statements run in one transaction so a failure leaves no orphaned games.
func (r *StudioRepo) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).Delete(&models.Studio{}).Error; err != nil {
			return err
		}
		return tx.Where(map[string]interface{}{"studioId": id}).Delete(&models.Game{}).Error
	})
	if err != nil {
		return fmt.Errorf("delete studio %d: %w", id, err)
	}
	return nil
}
