package bootstrap

import (
	"context"
	"log/slog"

	"facility-booking/internal/infra/events"
	"facility-booking/internal/pkg/config"
	"facility-booking/internal/usecase/commands"

	"go.uber.org/fx"
)

var EventsModule = fx.Module("events",
	fx.Provide(
		NewEventPublisher,
	),
)

func NewEventPublisher(lc fx.Lifecycle, cfg config.Config) commands.EventPublisher {
	brokers := cfg.Events.BrokerList()
	if len(brokers) == 0 {
		slog.Info("reservation event publishing disabled (no kafka brokers configured)")
		return events.NopPublisher{}
	}

	publisher := events.NewKafkaPublisher(brokers, cfg.Events.Topic)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return publisher.Close()
		},
	})

	return publisher
}
