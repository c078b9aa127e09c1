package bootstrap

import (
	"mindcare-booking/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	JWTModule,
	MetricsModule,
	components.PersistenceModule,
	components.PaymentModule,
	components.UseCaseModule,
	components.HandlerModule,
)
