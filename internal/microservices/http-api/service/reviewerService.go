package service

import (
	"context"
	"fmt"

	"pokereview/internal/logger"
	"pokereview/internal/microservices/http-api/models"
	"pokereview/internal/microservices/http-api/repository"
)

type ReviewerService interface {
	List(ctx context.Context) ([]models.Reviewer, error)
	GetByID(ctx context.Context, id int64) (*models.Reviewer, error)
	GetReviews(ctx context.Context, reviewerID int64) ([]models.Review, error)
	Create(ctx context.Context, rv *models.Reviewer) error
	Update(ctx context.Context, id int64, rv *models.Reviewer) error
	Delete(ctx context.Context, id int64) error
}

type reviewerService struct {
	repo repository.ReviewerRepository
	log  *logger.Logger
}

func NewReviewerService(r repository.ReviewerRepository, log *logger.Logger) ReviewerService {
	return &reviewerService{repo: r, log: log}
}

func (s *reviewerService) List(ctx context.Context) ([]models.Reviewer, error) {
	list, err := s.repo.List(ctx)
	return list, logFailure(s.log, "list reviewers", err)
}

func (s *reviewerService) GetByID(ctx context.Context, id int64) (*models.Reviewer, error) {
	rv, err := s.repo.GetByID(ctx, id)
	return rv, logFailure(s.log, "get reviewer", err, "reviewer_id", id)
}

func (s *reviewerService) GetReviews(ctx context.Context, reviewerID int64) ([]models.Review, error) {
	ok, err := s.repo.Exists(ctx, reviewerID)
	if err := requireExists(ok, err, "reviewer", reviewerID); err != nil {
		return nil, logFailure(s.log, "get reviews by reviewer", err, "reviewer_id", reviewerID)
	}
	list, err := s.repo.GetReviewsByReviewer(ctx, reviewerID)
	return list, logFailure(s.log, "get reviews by reviewer", err, "reviewer_id", reviewerID)
}

// Create compares last names, the reviewer's natural key.
func (s *reviewerService) Create(ctx context.Context, rv *models.Reviewer) error {
	existing, err := s.repo.List(ctx)
	if err != nil {
		return logFailure(s.log, "create reviewer", err)
	}
	if containsName(existing, rv.LastName, func(x models.Reviewer) string { return x.LastName }) {
		return fmt.Errorf("reviewer %q: %w", rv.LastName, ErrDuplicateEntry)
	}
	return logFailure(s.log, "create reviewer", s.repo.Create(ctx, rv), "last_name", rv.LastName)
}

func (s *reviewerService) Update(ctx context.Context, id int64, rv *models.Reviewer) error {
	ok, err := s.repo.Exists(ctx, id)
	if err := requireExists(ok, err, "reviewer", id); err != nil {
		return logFailure(s.log, "update reviewer", err, "reviewer_id", id)
	}
	rv.ID = id
	return logFailure(s.log, "update reviewer", s.repo.Update(ctx, rv), "reviewer_id", id)
}

// Delete removes the reviewer together with the reviews they wrote.
func (s *reviewerService) Delete(ctx context.Context, id int64) error {
	rv, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return logFailure(s.log, "delete reviewer", err, "reviewer_id", id)
	}
	return logFailure(s.log, "delete reviewer", s.repo.DeleteWithReviews(ctx, rv), "reviewer_id", id)
}
