package bootstrap

import (
	"facility-booking/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	JWTModule,
	EventsModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
)
