package components

import (
	"log/slog"

	"mindcare-booking/internal/infra/payment"
	"mindcare-booking/internal/pkg/config"
	"mindcare-booking/internal/usecase/commands"

	"go.uber.org/fx"
)

var PaymentModule = fx.Module("payment",
	fx.Provide(
		fx.Annotate(
			func(cfg config.Config, logger *slog.Logger) *payment.StripeGateway {
				return payment.NewStripeGateway(cfg.Payment, logger)
			},
			fx.As(new(commands.PaymentGateway)),
		),
		fx.Annotate(
			func(cfg config.Config) *payment.StripeWebhookVerifier {
				return payment.NewStripeWebhookVerifier(cfg.Payment)
			},
			fx.As(new(commands.PaymentEventVerifier)),
		),
	),
)
