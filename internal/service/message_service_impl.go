package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/abdhesh369/portfolio-backend/internal/logging"
	"github.com/abdhesh369/portfolio-backend/internal/metrics"
	"github.com/abdhesh369/portfolio-backend/internal/model"
	"github.com/abdhesh369/portfolio-backend/internal/repository"
	"github.com/abdhesh369/portfolio-backend/internal/validate"
)

const (
	DefaultMessageListLimit = 50
	MaxMessageListLimit     = 200
	MaxBulkDeleteIDs        = 500
)

type messageServiceImpl struct {
	repo repository.MessageRepository
	now  func() time.Time
}

// NewMessageService creates a MessageService backed by the given repository.
func NewMessageService(repo repository.MessageRepository) MessageService {
	return &messageServiceImpl{repo: repo, now: time.Now}
}

func (s *messageServiceImpl) Submit(ctx context.Context, in ContactSubmission, clientAddr string) (Submission, error) {
	logger := logging.FromContext(ctx)

	if err := validate.Struct(in); err != nil {
		metrics.IncContactSubmission(metrics.ResultInvalid)
		return Submission{}, err
	}

	if strings.TrimSpace(in.Website) != "" {
		metrics.IncContactSubmission(metrics.ResultSpam)
		logger.Warn("honeypot triggered, submission discarded", "client", clientAddr)
		return Submission{Result: model.BlockedResult(in.Name, in.Email, in.Subject, s.now().UTC())}, nil
	}

	msg := &model.Message{
		Name:    in.Name,
		Email:   in.Email,
		Subject: in.Subject,
		Message: in.Message,
	}
	if err := s.repo.Create(ctx, msg); err != nil {
		metrics.IncContactSubmission(metrics.ResultError)
		return Submission{}, fmt.Errorf("store message: %w", err)
	}

	metrics.IncContactSubmission(metrics.ResultAccepted)
	logger.Info("contact message stored", "message_id", msg.ID, "client", clientAddr)
	return Submission{Result: model.ResultFromMessage(msg), Stored: msg}, nil
}

func (s *messageServiceImpl) List(ctx context.Context, opts model.MessageListOptions) ([]*model.Message, error) {
	if opts.Limit <= 0 {
		opts.Limit = DefaultMessageListLimit
	}
	if opts.Limit > MaxMessageListLimit {
		opts.Limit = MaxMessageListLimit
	}
	if opts.Offset < 0 {
		opts.Offset = 0
	}
	return s.repo.List(ctx, opts)
}

func (s *messageServiceImpl) GetByID(ctx context.Context, id int64) (*model.Message, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *messageServiceImpl) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// BulkDelete ignores ids that do not exist. Duplicates are collapsed.
func (s *messageServiceImpl) BulkDelete(ctx context.Context, ids []int64) (int, error) {
	if len(ids) == 0 || len(ids) > MaxBulkDeleteIDs {
		return 0, ErrInvalidInput
	}
	seen := make(map[int64]struct{}, len(ids))
	unique := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}
	return s.repo.BulkDelete(ctx, unique)
}
