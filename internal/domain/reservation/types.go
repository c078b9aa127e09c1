package reservation

// Status is the closed set of reservation lifecycle states. Values are stored
// lowercase and never localized.
type Status string

const (
	StatusPending   Status = "pending"
	StatusValidated Status = "validated"
	StatusRefused   Status = "refused"
	StatusCancelled Status = "cancelled"
	StatusPaid      Status = "paid"
)

var transitions = map[Status][]Status{
	StatusPending:   {StatusValidated, StatusRefused, StatusCancelled},
	StatusValidated: {StatusPaid, StatusCancelled},
}

// SlotHoldingStatuses occupy their sub-slot. Mirrors the partial unique index
// on reservations(availability_window_id, requested_time).
var SlotHoldingStatuses = []Status{StatusPending, StatusValidated, StatusPaid}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusValidated, StatusRefused, StatusCancelled, StatusPaid:
		return true
	default:
		return false
	}
}

func (s Status) HoldsSlot() bool {
	return s == StatusPending || s == StatusValidated || s == StatusPaid
}

func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}
