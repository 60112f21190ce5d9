package records

import (
	"context"
	"log/slog"
	"time"
)

// Service fronts the store for read paths the aggregation and reporting
// layers consume. A store fault on a read is logged and surfaced as an
// empty result; callers check for emptiness, they never see the error.
// Writes keep their errors: the operator needs to know a save failed.
type Service struct {
	store StoreAPI
}

func NewService(store StoreAPI) *Service {
	return &Service{store: store}
}

func (s *Service) ListByDate(ctx context.Context, workDate time.Time) []WorkRecord {
	result, err := s.store.ListByDate(ctx, workDate)
	if err != nil {
		slog.Warn("list records by date failed", "date", workDate.Format("2006-01-02"), "err", err)
		return nil
	}
	return result
}

func (s *Service) GetByID(ctx context.Context, id string) *WorkRecord {
	record, err := s.store.GetByID(ctx, id)
	if err != nil {
		slog.Warn("record by id failed", "id", id, "err", err)
		return nil
	}
	return record
}

func (s *Service) ListAll(ctx context.Context) []WorkRecord {
	result, err := s.store.ListAll(ctx)
	if err != nil {
		slog.Warn("list all records failed", "err", err)
		return nil
	}
	return result
}

func (s *Service) DistinctNames(ctx context.Context) []string {
	names, err := s.store.DistinctNames(ctx)
	if err != nil {
		slog.Warn("distinct names failed", "err", err)
		return nil
	}
	return names
}

func (s *Service) GeneralNote(ctx context.Context, workDate time.Time) *GeneralNote {
	note, err := s.store.GetGeneralNote(ctx, workDate)
	if err != nil {
		slog.Warn("general note lookup failed", "date", workDate.Format("2006-01-02"), "err", err)
		return nil
	}
	return note
}

func (s *Service) Upsert(ctx context.Context, record WorkRecord) (WorkRecord, error) {
	return s.store.Upsert(ctx, record)
}

func (s *Service) Delete(ctx context.Context, id string) (bool, error) {
	return s.store.Delete(ctx, id)
}

func (s *Service) FindByNameAndDate(ctx context.Context, name string, workDate time.Time) *WorkRecord {
	record, err := s.store.FindByNameAndDate(ctx, name, workDate)
	if err != nil {
		slog.Warn("record lookup failed", "name", name, "err", err)
		return nil
	}
	return record
}

func (s *Service) SaveGeneralNote(ctx context.Context, note GeneralNote) (GeneralNote, error) {
	return s.store.SaveGeneralNote(ctx, note)
}

func (s *Service) RecordDelivery(ctx context.Context, delivery Delivery) (Delivery, error) {
	return s.store.RecordDelivery(ctx, delivery)
}

func (s *Service) ListDeliveries(ctx context.Context) []Delivery {
	deliveries, err := s.store.ListDeliveries(ctx)
	if err != nil {
		slog.Warn("list deliveries failed", "err", err)
		return nil
	}
	return deliveries
}
