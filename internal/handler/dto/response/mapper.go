package response

import (
	"mindcare-booking/internal/domain/availability"

	"github.com/jinzhu/copier"
)

var copyOption = copier.Option{
	Converters: []copier.TypeConverter{
		{
			SrcType: availability.TimeOfDay{},
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				return src.(availability.TimeOfDay).String(), nil
			},
		},
		{
			SrcType: availability.Date{},
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				return src.(availability.Date).String(), nil
			},
		},
	},
}

func copyView(dst, src any) error {
	return copier.CopyWithOption(dst, src, copyOption)
}

func timesToStrings(ts []availability.TimeOfDay) []string {
	out := make([]string, len(ts))
	for i, t := range ts {
		out[i] = t.String()
	}
	return out
}
