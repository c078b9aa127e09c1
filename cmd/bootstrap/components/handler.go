package components

import (
	"mindcare-booking/internal/handler"
	"mindcare-booking/internal/handler/api"
	"mindcare-booking/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAvailabilityHandler,
		api.NewBookingHandler,
		api.NewReservationHandler,
		api.NewPaymentHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	availability *api.AvailabilityHandler,
	booking *api.BookingHandler,
	reservation *api.ReservationHandler,
	payment *api.PaymentHandler,
) handler.Handlers {
	return handler.Handlers{
		Availability: availability,
		Booking:      booking,
		Reservation:  reservation,
		Payment:      payment,
	}
}
