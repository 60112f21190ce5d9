package records

import (
	"context"
	"time"
)

type StoreAPI interface {
	ListByDate(ctx context.Context, workDate time.Time) ([]WorkRecord, error)
	GetByID(ctx context.Context, id string) (*WorkRecord, error)
	ListAll(ctx context.Context) ([]WorkRecord, error)
	Upsert(ctx context.Context, record WorkRecord) (WorkRecord, error)
	Delete(ctx context.Context, id string) (bool, error)
	FindByNameAndDate(ctx context.Context, name string, workDate time.Time) (*WorkRecord, error)
	DistinctNames(ctx context.Context) ([]string, error)
	GetGeneralNote(ctx context.Context, workDate time.Time) (*GeneralNote, error)
	SaveGeneralNote(ctx context.Context, note GeneralNote) (GeneralNote, error)
	RecordDelivery(ctx context.Context, delivery Delivery) (Delivery, error)
	ListDeliveries(ctx context.Context) ([]Delivery, error)
}
