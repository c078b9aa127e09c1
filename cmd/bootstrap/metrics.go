package bootstrap

import (
	"mindcare-booking/internal/pkg/config"
	"mindcare-booking/internal/pkg/metrics"
	"mindcare-booking/internal/usecase/commands"

	"go.uber.org/fx"
)

var MetricsModule = fx.Module("metrics",
	fx.Provide(
		NewMetrics,
		func(m *metrics.Metrics) commands.Recorder { return m },
	),
)

func NewMetrics(cfg config.Config) *metrics.Metrics {
	return metrics.New(cfg.Metrics.Namespace)
}
