package reservation

import "mindcare-booking/internal/pkg/errs"

var ErrNegativePrice = errs.Mark(errs.New("price cannot be negative"), errs.ErrValidation)

type Money struct {
	cents int64
}

func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegativePrice
	}
	return Money{cents: cents}, nil
}

func (m Money) Cents() int64 {
	return m.cents
}

