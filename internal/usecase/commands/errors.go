package commands

import "mindcare-booking/internal/pkg/errs"

var (
	ErrWindowNotFound       = errs.Mark(errs.New("availability window not found"), errs.ErrNotFound)
	ErrReservationNotFound  = errs.Mark(errs.New("reservation not found"), errs.ErrNotFound)
	ErrConsultationNotFound = errs.Mark(errs.New("consultation not found"), errs.ErrNotFound)

	ErrNotProfessional     = errs.Mark(errs.New("only professionals can manage availability"), errs.ErrForbidden)
	ErrNotClient           = errs.Mark(errs.New("only clients can book a slot"), errs.ErrForbidden)
	ErrNotWindowOwner      = errs.Mark(errs.New("window belongs to another professional"), errs.ErrForbidden)
	ErrNotReservationParty = errs.Mark(errs.New("actor is not a party to this reservation"), errs.ErrForbidden)

	ErrWindowHasReservations = errs.Mark(errs.New("window has reservations"), errs.ErrConflict)
	ErrSlotNotOffered        = errs.Mark(errs.New("requested time is not a free slot of this window"), errs.ErrSlotUnavailable)

	ErrPaymentGateway = errs.New("payment gateway failure")
)
