package bootstrap

import (
	"facility-booking/internal/domain/booking"
	"facility-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		NewBookingPolicy,
	),
)

func NewBookingPolicy(cfg config.Config) booking.Policy {
	return cfg.Booking.Policy()
}
