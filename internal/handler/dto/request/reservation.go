package request

import (
	"mindcare-booking/internal/usecase/queries"
)

type ListReservationsQuery struct {
	Cursor string `form:"cursor"`
	Limit  int    `form:"limit" binding:"omitempty,min=1,max=200"`
}

func (q *ListReservationsQuery) ToCursor() *queries.Cursor {
	if q.Cursor == "" {
		return nil
	}
	return &queries.Cursor{After: q.Cursor}
}

type SetVideoLinkRequest struct {
	VideoLink string `json:"video_link" binding:"required,max=2048"`
}
