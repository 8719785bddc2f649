package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/forecourt-labs/shiftscan/gen/ent"
	"github.com/forecourt-labs/shiftscan/gen/ent/store"
	"github.com/forecourt-labs/shiftscan/internal/entity"
)

type StoreRepository interface {
	Create(ctx context.Context, name, timezone string) (*entity.Store, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Store, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	List(ctx context.Context) ([]*entity.Store, error)
}

type storeRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewStoreRepository(entc *ent.Client, logger *slog.Logger) StoreRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &storeRepo{ent: entc, logger: logger}
}

func (r *storeRepo) Create(ctx context.Context, name, timezone string) (*entity.Store, error) {
	row, err := r.ent.Store.Create().
		SetName(name).
		SetTimezone(timezone).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create store", "name", name, "error", err)
		return nil, err
	}
	r.logger.Info("store.created", "store_id", row.ID, "name", name)
	return toStore(row), nil
}

func (r *storeRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Store, error) {
	row, err := r.ent.Store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return toStore(row), nil
}

func (r *storeRepo) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	return r.ent.Store.Query().Where(store.ID(id)).Exist(ctx)
}

func (r *storeRepo) List(ctx context.Context) ([]*entity.Store, error) {
	rows, err := r.ent.Store.Query().Order(store.ByName()).All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.Store, len(rows))
	for i, row := range rows {
		out[i] = toStore(row)
	}
	return out, nil
}
