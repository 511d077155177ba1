package service

import (
	"fmt"

	"foodgram-backend/internal/auth"
	"foodgram-backend/internal/database/models"
	apperrors "foodgram-backend/internal/errors"
	"foodgram-backend/internal/logger"
	"foodgram-backend/internal/metrics"
	"foodgram-backend/internal/repository"
)

// SubscriptionService manages who follows which author
type SubscriptionService struct {
	subscriptions repository.SubscriptionRepositoryInterface
	users         repository.UserRepositoryInterface
	projector     *Projector
	pageSize      int
}

// Ensure SubscriptionService implements SubscriptionServiceInterface
var _ SubscriptionServiceInterface = (*SubscriptionService)(nil)

// NewSubscriptionService creates a new subscription service
func NewSubscriptionService(
	subscriptions repository.SubscriptionRepositoryInterface,
	users repository.UserRepositoryInterface,
	projector *Projector,
	pageSize int,
) *SubscriptionService {
	return &SubscriptionService{
		subscriptions: subscriptions,
		users:         users,
		projector:     projector,
		pageSize:      pageSize,
	}
}

// Subscribe makes actor follow authorID and renders the author
func (s *SubscriptionService) Subscribe(authorID uint, actor auth.Actor, recipesLimit int) (*SubscriptionResponse, error) {
	if !actor.IsAuthenticated() {
		return nil, apperrors.ErrCredentialsNotProvided
	}
	author, err := s.loadAuthor(authorID)
	if err != nil {
		return nil, err
	}
	if author.ID == actor.ID {
		return nil, apperrors.NewValidationError("author", "you cannot subscribe to yourself")
	}

	exists, err := s.subscriptions.Exists(actor.ID, author.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to check subscription: %w", err)
	}
	if exists {
		return nil, apperrors.ErrSubscriptionExists
	}

	subscription := &models.Subscription{UserID: actor.ID, AuthorID: author.ID}
	if err := s.subscriptions.Create(subscription); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperrors.ErrSubscriptionExists
		}
		return nil, fmt.Errorf("failed to create subscription: %w", err)
	}

	metrics.RecordAssociation(metrics.KindSubscription, true)
	logger.ForActor(actor).WithField("author_id", author.ID).Info("subscribed to author")

	return s.projector.Subscription(author, actor, recipesLimit)
}

// Unsubscribe removes actor's subscription to authorID
func (s *SubscriptionService) Unsubscribe(authorID uint, actor auth.Actor) error {
	if !actor.IsAuthenticated() {
		return apperrors.ErrCredentialsNotProvided
	}
	author, err := s.loadAuthor(authorID)
	if err != nil {
		return err
	}

	deleted, err := s.subscriptions.Delete(actor.ID, author.ID)
	if err != nil {
		return fmt.Errorf("failed to delete subscription: %w", err)
	}
	if !deleted {
		return apperrors.NewValidationError("author", apperrors.ErrSubscriptionNotFound.Error())
	}

	metrics.RecordAssociation(metrics.KindSubscription, false)
	logger.ForActor(actor).WithField("author_id", author.ID).Info("unsubscribed from author")
	return nil
}

// List returns one page of the authors actor follows, each with up to
// recipesLimit recipes (all when recipesLimit is 0)
func (s *SubscriptionService) List(page PageRequest, actor auth.Actor, recipesLimit int) (*Page[SubscriptionResponse], error) {
	if !actor.IsAuthenticated() {
		return nil, apperrors.ErrCredentialsNotProvided
	}

	page, limit, offset := page.normalize(s.pageSize)
	authors, total, err := s.subscriptions.GetAuthors(actor.ID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list subscriptions: %w", err)
	}

	results := make([]SubscriptionResponse, 0, len(authors))
	for i := range authors {
		response, err := s.projector.Subscription(&authors[i], actor, recipesLimit)
		if err != nil {
			return nil, err
		}
		results = append(results, *response)
	}
	return newPage(page, total, results), nil
}

func (s *SubscriptionService) loadAuthor(id uint) (*models.User, error) {
	author, err := s.users.GetByID(id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get author: %w", err)
	}
	return author, nil
}
