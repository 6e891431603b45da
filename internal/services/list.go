package services

import (
	"context"
	"errors"

	"github.com/wildwatch/wildwatch/internal/logger"
	"github.com/wildwatch/wildwatch/internal/repositories"
)

// Error variables
var (
	ErrAlreadyListed    = errors.New("species already in list")
	ErrNotListed        = errors.New("species not in list")
	ErrInvalidReference = errors.New("species or user no longer exists")
)

// ListReader defines read operations for personal lists.
type ListReader interface {
	Exists(ctx context.Context, userID, speciesID int64) (bool, error)
}

// ListWriter defines write operations for personal lists.
type ListWriter interface {
	Save(ctx context.Context, userID, speciesID int64) error
	Delete(ctx context.Context, userID, speciesID int64) error
}

// ListService maintains users' personal species lists.
type ListService struct {
	reader ListReader
	writer ListWriter
}

// NewListService creates a new ListService instance.
func NewListService(reader ListReader, writer ListWriter) *ListService {
	return &ListService{reader: reader, writer: writer}
}

// Add links a species to a user's list. Adding a species twice fails with
// ErrAlreadyListed and leaves the single existing row untouched.
func (svc *ListService) Add(ctx context.Context, userID, speciesID int64) error {
	exists, err := svc.reader.Exists(ctx, userID, speciesID)
	if err != nil {
		logger.Log.Errorw("failed to check list membership", "userID", userID, "speciesID", speciesID, "err", err)
		return err
	}
	if exists {
		return ErrAlreadyListed
	}

	if err := svc.writer.Save(ctx, userID, speciesID); err != nil {
		if errors.Is(err, repositories.ErrReferenceViolation) {
			return ErrInvalidReference
		}
		if errors.Is(err, repositories.ErrDuplicate) {
			return ErrAlreadyListed
		}
		logger.Log.Errorw("failed to save list entry", "userID", userID, "speciesID", speciesID, "err", err)
		return err
	}

	return nil
}

// Remove unlinks a species from a user's list. Removing an absent entry fails
// with ErrNotListed and mutates nothing.
func (svc *ListService) Remove(ctx context.Context, userID, speciesID int64) error {
	exists, err := svc.reader.Exists(ctx, userID, speciesID)
	if err != nil {
		logger.Log.Errorw("failed to check list membership", "userID", userID, "speciesID", speciesID, "err", err)
		return err
	}
	if !exists {
		return ErrNotListed
	}

	if err := svc.writer.Delete(ctx, userID, speciesID); err != nil {
		logger.Log.Errorw("failed to delete list entry", "userID", userID, "speciesID", speciesID, "err", err)
		return err
	}

	return nil
}
