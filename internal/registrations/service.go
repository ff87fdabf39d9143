package registrations

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/communityday/registrations/internal/models"
)

// Service turns a raw submission into a stored registration.
type Service struct {
	store  Store
	logger *zap.Logger
	now    func() time.Time
	newID  func() string
}

// NewService creates a registrations service writing to store.
func NewService(store Store, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{store: store, logger: logger, now: time.Now, newID: uuid.NewString}
}

// Register decodes and validates body, builds the record and writes it once.
// It returns *ValidationError or *InternalError on failure.
func (s *Service) Register(ctx context.Context, body []byte) (*models.Registration, error) {
	req, err := DecodeRequest(body)
	if err != nil {
		return nil, &InternalError{Cause: err}
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	reg := s.build(req)
	if err := s.store.Put(ctx, reg); err != nil {
		return nil, &InternalError{Cause: fmt.Errorf("put registration: %w", err)}
	}
	s.logger.Debug("registration stored", zap.String("registration_id", reg.ID))
	return reg, nil
}

func (s *Service) build(req RegisterRequest) *models.Registration {
	now := models.FormatTime(s.now())
	ts := req.Timestamp
	if ts == "" {
		ts = now
	}
	return &models.Registration{
		ID:        s.newID(),
		Email:     req.Email,
		Name:      req.Name,
		Role:      req.Role,
		Timestamp: ts,
		CreatedAt: now,
	}
}
