package components

import (
	"facility-booking/internal/infra/readstore"
	"facility-booking/internal/infra/repository"
	"facility-booking/internal/usecase/commands"
	"facility-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repository.NewReservationRepository,
			fx.As(new(commands.ReservationRepository)),
		),
		fx.Annotate(
			readstore.NewCommandReads,
			fx.As(new(commands.CommandReads)),
		),
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationReadStore)),
		),
		fx.Annotate(
			readstore.NewFacilityReadStore,
			fx.As(new(queries.FacilityReadStore)),
		),
	),
)
