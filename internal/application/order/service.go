package order

import (
	"context"
	"fmt"
	"time"

	domain "farm_hub/internal/domain/order"
	"farm_hub/internal/domain/repository"
	"farm_hub/pkg/logger"
)

// Notifier delivers an order notification over one channel.
type Notifier interface {
	Name() string
	NotifyOrderPlaced(ctx context.Context, n domain.Notification) error
}

// Recorder receives order pipeline outcomes, e.g. for metrics.
type Recorder interface {
	OrderPlaced()
	OrderFailed()
	NotificationFailed(channel string)
}

type Service struct {
	repo      repository.OrderRepository
	notifiers []Notifier
	log       logger.Logger
	recorder  Recorder
	now       func() time.Time
	location  *time.Location
}

type Option func(*Service)

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithLocation sets the zone used for notification timestamps.
func WithLocation(loc *time.Location) Option {
	return func(s *Service) { s.location = loc }
}

func WithRecorder(r Recorder) Option {
	return func(s *Service) { s.recorder = r }
}

func NewService(repo repository.OrderRepository, notifiers []Notifier, log logger.Logger, opts ...Option) *Service {
	s := &Service{
		repo:      repo,
		notifiers: notifiers,
		log:       log,
		recorder:  nopRecorder{},
		now:       time.Now,
		location:  time.UTC,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// PlaceOrder validates req, appends the order row and then notifies the
// admin. The order is returned once the append succeeded, whatever the
// notifiers do.
func (s *Service) PlaceOrder(ctx context.Context, req domain.Request) (*domain.Order, error) {
	order, err := domain.NewOrder(req, s.now())
	if err != nil {
		return nil, err
	}

	log := s.log.WithContext(ctx).WithFields(logger.String("order_id", order.ID))

	if err := s.repo.Append(ctx, order); err != nil {
		s.recorder.OrderFailed()
		log.Error("append order failed", logger.Error(err))
		return nil, fmt.Errorf("append order: %w", err)
	}
	s.recorder.OrderPlaced()
	log.Info("order appended",
		logger.String("product", order.ProductName),
		logger.Int("quantity", order.Quantity),
		logger.String("total", order.TotalText()),
	)

	// client cancellation must not cut a notification for a recorded order
	s.notify(context.WithoutCancel(ctx), log, order)

	return order, nil
}

func (s *Service) notify(ctx context.Context, log logger.Logger, order *domain.Order) {
	n := order.Notification(s.location)
	for _, notifier := range s.notifiers {
		if err := notifier.NotifyOrderPlaced(ctx, n); err != nil {
			s.recorder.NotificationFailed(notifier.Name())
			log.Error("order notification failed",
				logger.String("channel", notifier.Name()),
				logger.Error(err),
			)
		}
	}
}

type nopRecorder struct{}

func (nopRecorder) OrderPlaced()              {}
func (nopRecorder) OrderFailed()              {}
func (nopRecorder) NotificationFailed(string) {}
