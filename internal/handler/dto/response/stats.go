package response

import (
	"rooms-api/internal/usecase/queries"
)

type StatisticsResponse struct {
	TotalRooms     int64 `json:"totalRooms"`
	ActiveBookings int64 `json:"activeBookings"`
	AvailableRooms int64 `json:"availableRooms"`
	TotalEquipment int64 `json:"totalEquipment"`
}

func FromStatisticsView(v *queries.StatisticsView) *StatisticsResponse {
	return &StatisticsResponse{
		TotalRooms:     v.TotalRooms,
		ActiveBookings: v.ActiveBookings,
		AvailableRooms: v.AvailableRooms,
		TotalEquipment: v.TotalEquipment,
	}
}
