package api

import (
	"net/http"

	resdto "rooms-api/internal/handler/dto/response"
	"rooms-api/internal/handler/httperr"
	"rooms-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	statsQueries queries.StatsQueries
}

func NewStatsHandler(statsQueries queries.StatsQueries) *StatsHandler {
	return &StatsHandler{
		statsQueries: statsQueries,
	}
}

// @Summary Dashboard statistics
// @Tags stats
// @Produce json
// @Success 200 {object} resdto.StatisticsResponse
// @Router /api/statistics [get]
func (h *StatsHandler) Statistics(c *gin.Context) {
	view, err := h.statsQueries.Statistics(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromStatisticsView(view))
}
