package api

import (
	"net/http"

	reqdto "rooms-api/internal/handler/dto/request"
	resdto "rooms-api/internal/handler/dto/response"
	"rooms-api/internal/handler/httperr"
	"rooms-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type RoomHandler struct {
	roomQueries queries.RoomQueries
}

func NewRoomHandler(roomQueries queries.RoomQueries) *RoomHandler {
	return &RoomHandler{
		roomQueries: roomQueries,
	}
}

// @Summary List rooms
// @Description Paginated room catalog with derived status, optional search and status filter
// @Tags rooms
// @Produce json
// @Param page query int false "Page number (1-based)"
// @Param limit query int false "Page size (max 100)"
// @Param q query string false "Substring match over name/code"
// @Param status query string false "Effective status filter" Enums(available, reserved, maintenance)
// @Success 200 {object} resdto.RoomsPageResponse
// @Failure 400 {object} httperr.Response
// @Router /api/rooms [get]
func (h *RoomHandler) List(c *gin.Context) {
	var req reqdto.ListRoomsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query parameters", nil)
		return
	}

	page, err := h.roomQueries.List(c.Request.Context(), queries.ListRoomsParams{
		Search: req.Search,
		Status: req.Status,
		Page:   req.Page,
		Limit:  req.Limit,
	})
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromRoomPage(page))
}
