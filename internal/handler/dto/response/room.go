package response

import (
	"rooms-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type RoomResponse struct {
	ID        uuid.UUID `json:"id"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	Capacity  int32     `json:"capacity"`
	Equipment []string  `json:"equipment"`
	Status    string    `json:"status"`
	Note      *string   `json:"note,omitempty"`
}

type RoomsPageResponse struct {
	Items []RoomResponse `json:"items"`
	Total int            `json:"total"`
	Page  int            `json:"page"`
}

func FromRoomPage(page *queries.RoomPage) *RoomsPageResponse {
	items := make([]RoomResponse, len(page.Items))
	for i, v := range page.Items {
		items[i] = RoomResponse{
			ID:        v.ID,
			Code:      v.Code,
			Name:      v.Name,
			Capacity:  v.Capacity,
			Equipment: v.Equipment,
			Status:    v.Status,
			Note:      v.Note,
		}
	}

	return &RoomsPageResponse{
		Items: items,
		Total: page.Total,
		Page:  page.Page,
	}
}
