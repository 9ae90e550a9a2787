package repository

import (
	"context"
	"fmt"

	"pokereview/internal/microservices/http-api/models"

	"gorm.io/gorm"
)

type ReviewerRepository interface {
	List(ctx context.Context) ([]models.Reviewer, error)
	GetByID(ctx context.Context, id int64) (*models.Reviewer, error)
	Exists(ctx context.Context, id int64) (bool, error)
	GetReviewsByReviewer(ctx context.Context, reviewerID int64) ([]models.Review, error)
	Create(ctx context.Context, rv *models.Reviewer) error
	Update(ctx context.Context, rv *models.Reviewer) error
	Delete(ctx context.Context, rv *models.Reviewer) error
	DeleteWithReviews(ctx context.Context, rv *models.Reviewer) error
}

type reviewerRepository struct {
	db *gorm.DB
}

func NewReviewerRepository(db *gorm.DB) ReviewerRepository {
	return &reviewerRepository{db: db}
}

func (r *reviewerRepository) List(ctx context.Context) ([]models.Reviewer, error) {
	var list []models.Reviewer
	if err := r.db.WithContext(ctx).Find(&list).Error; err != nil {
		return nil, fmt.Errorf("list reviewers: %w", err)
	}
	return list, nil
}

func (r *reviewerRepository) GetByID(ctx context.Context, id int64) (*models.Reviewer, error) {
	var rv models.Reviewer
	if err := r.db.WithContext(ctx).First(&rv, id).Error; err != nil {
		return nil, translate("get reviewer", err)
	}
	return &rv, nil
}

func (r *reviewerRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Reviewer{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("reviewer exists: %w", err)
	}
	return count > 0, nil
}

func (r *reviewerRepository) GetReviewsByReviewer(ctx context.Context, reviewerID int64) ([]models.Review, error) {
	var list []models.Review
	if err := r.db.WithContext(ctx).Where("reviewer_id = ?", reviewerID).Order("id asc").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("get reviews by reviewer: %w", err)
	}
	return list, nil
}

func (r *reviewerRepository) Create(ctx context.Context, rv *models.Reviewer) error {
	return affected("create reviewer", r.db.WithContext(ctx).Create(rv))
}

func (r *reviewerRepository) Update(ctx context.Context, rv *models.Reviewer) error {
	return affected("update reviewer", r.db.WithContext(ctx).
		Model(&models.Reviewer{}).
		Where("id = ?", rv.ID).
		Updates(map[string]interface{}{
			"first_name": rv.FirstName,
			"last_name":  rv.LastName,
		}))
}

// Delete fails with ErrReferentialViolation while the reviewer still has reviews.
func (r *reviewerRepository) Delete(ctx context.Context, rv *models.Reviewer) error {
	return affected("delete reviewer", r.db.WithContext(ctx).Delete(&models.Reviewer{}, rv.ID))
}

// DeleteWithReviews removes the reviewer's reviews and then the reviewer in
// a single transaction.
func (r *reviewerRepository) DeleteWithReviews(ctx context.Context, rv *models.Reviewer) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("reviewer_id = ?", rv.ID).Delete(&models.Review{}).Error; err != nil {
			return translate("delete reviewer reviews", err)
		}
		return affected("delete reviewer", tx.Delete(&models.Reviewer{}, rv.ID))
	})
}
