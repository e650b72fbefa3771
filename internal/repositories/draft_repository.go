package repositories

import (
	"context"
	"errors"
	"fmt"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"simsem/internal/models/db_models"
)

type DraftRepository interface {
	Create(ctx context.Context, draft *db_models.WizardDraft) (uuid.UUID, error)
	Update(ctx context.Context, draft *db_models.WizardDraft) error
	Delete(ctx context.Context, id uuid.UUID) error
	GetByID(ctx context.Context, id string) (*db_models.WizardDraft, error)
	List(ctx context.Context, kind string, page, pageSize int) ([]db_models.WizardDraft, error)
}

type draftRepository struct {
	db *gorm.DB
}

func NewDraftRepository(db *gorm.DB) DraftRepository {
	return &draftRepository{db: db}
}

func (r *draftRepository) Create(ctx context.Context, draft *db_models.WizardDraft) (uuid.UUID, error) {
	if err := r.db.WithContext(ctx).Create(draft).Error; err != nil {
		return uuid.Nil, err
	}
	return draft.ID, nil
}

func (r *draftRepository) Update(ctx context.Context, draft *db_models.WizardDraft) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Save(draft)
		if result.Error != nil {
			return fmt.Errorf("failed to update wizard draft: %w", result.Error)
		}

		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		return nil
	})
}

func (r *draftRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Delete(&db_models.WizardDraft{}, "id = ?", id).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}

// GetByID returns (nil, nil) when no draft exists; callers map that to
// their own not-found error.
func (r *draftRepository) GetByID(ctx context.Context, id string) (*db_models.WizardDraft, error) {
	var draft db_models.WizardDraft
	err := r.db.WithContext(ctx).
		First(&draft, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &draft, nil
}

func (r *draftRepository) List(ctx context.Context, kind string, page, pageSize int) ([]db_models.WizardDraft, error) {
	var drafts []db_models.WizardDraft
	offset := (page - 1) * pageSize

	query := r.db.WithContext(ctx).Offset(offset).Limit(pageSize)
	if kind != "" {
		query = query.Where("kind = ?", kind)
	}

	if err := query.Find(&drafts).Error; err != nil {
		return nil, err
	}
	return drafts, nil
}
