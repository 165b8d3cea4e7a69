package repository

import (
	"context"
	"errors"

	"github.com/TaskGlass/dreamvault/pkg/domain"
	"github.com/TaskGlass/dreamvault/pkg/domain/dream"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DreamRepository struct {
	db *gorm.DB
}

func NewDreamRepository(db *gorm.DB) dream.Repository {
	return &DreamRepository{
		db: db,
	}
}

func (r *DreamRepository) Save(ctx context.Context, entity *dream.Dream) error {
	if err := r.db.WithContext(ctx).Save(entity).Error; err != nil {
		return domain.NewStorageError("dream save", err)
	}
	return nil
}

func (r *DreamRepository) GetByID(ctx context.Context, userID string, id uuid.UUID) (*dream.Dream, error) {
	entity := new(dream.Dream)
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("dream", id)
		}
		return nil, domain.NewStorageError("dream get", err)
	}
	return entity, nil
}

func (r *DreamRepository) ListByUser(ctx context.Context, userID string, limit, offset int) ([]dream.Dream, error) {
	var dreams []dream.Dream
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&dreams).Error
	if err != nil {
		return nil, domain.NewStorageError("dream list", err)
	}
	return dreams, nil
}

func (r *DreamRepository) SetInterpretation(ctx context.Context, userID string, id uuid.UUID, interpretation string) error {
	result := r.db.WithContext(ctx).
		Model(&dream.Dream{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("interpretation", interpretation)
	if result.Error != nil {
		return domain.NewStorageError("dream interpretation update", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError("dream", id)
	}
	return nil
}

func (r *DreamRepository) Delete(ctx context.Context, userID string, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&dream.Dream{})
	if result.Error != nil {
		return domain.NewStorageError("dream delete", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError("dream", id)
	}
	return nil
}
