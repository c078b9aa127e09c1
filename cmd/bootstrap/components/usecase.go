package components

import (
	"mindcare-booking/internal/domain/availability"
	"mindcare-booking/internal/domain/consultation"
	"mindcare-booking/internal/pkg/clock"
	"mindcare-booking/internal/pkg/config"
	"mindcare-booking/internal/usecase"
	"mindcare-booking/internal/usecase/commands"
	"mindcare-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	NewBookingRules,
	availability.NewGenerator,
	NewConsultationSettings,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAvailabilityCommands,
		commands.NewBookingCommands,
		commands.NewReservationCommands,
		commands.NewPaymentCommands,
		commands.NewConsultationCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewAvailabilityQueries,
		queries.NewReservationQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

func NewBookingRules(cfg config.Config) (availability.Rules, error) {
	loc, err := cfg.Booking.Location()
	if err != nil {
		return availability.Rules{}, err
	}
	return availability.Rules{
		SlotMinutes: cfg.Booking.ConsultationMinutes,
		Location:    loc,
	}, nil
}

func NewConsultationSettings(cfg config.Config) consultation.Settings {
	return consultation.Settings{
		DurationMinutes: cfg.Booking.ConsultationMinutes,
		VideoBaseURL:    cfg.Booking.VideoBaseURL,
	}
}
