package readstore

import (
	"context"

	"facility-booking/internal/infra"
	"facility-booking/internal/pkg/pgconv"
	"facility-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type FacilityReadStore struct {
	pool *pgxpool.Pool
}

func NewFacilityReadStore(pool *pgxpool.Pool) *FacilityReadStore {
	return &FacilityReadStore{pool: pool}
}

const findFacilityByIDSQL = `
SELECT id, name, created_at
FROM facilities
WHERE id = $1`

func (s *FacilityReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.FacilityView, error) {
	var (
		view      queries.FacilityView
		createdAt pgtype.Timestamptz
	)
	err := s.pool.QueryRow(ctx, findFacilityByIDSQL, id).Scan(&view.ID, &view.Name, &createdAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("facility not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find facility by ID", err)
	}
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	return &view, nil
}

const listFacilitiesSQL = `
SELECT id, name, created_at
FROM facilities
ORDER BY name`

func (s *FacilityReadStore) List(ctx context.Context) ([]*queries.FacilityView, error) {
	rows, err := s.pool.Query(ctx, listFacilitiesSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list facilities", err)
	}
	defer rows.Close()

	var views []*queries.FacilityView
	for rows.Next() {
		var (
			view      queries.FacilityView
			createdAt pgtype.Timestamptz
		)
		if err := rows.Scan(&view.ID, &view.Name, &createdAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan facility row", err)
		}
		view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate facility rows", err)
	}
	return views, nil
}
