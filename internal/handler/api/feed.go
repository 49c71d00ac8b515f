package api

import (
	"net/http"

	"slotswapper/internal/handler/middleware"
	"slotswapper/internal/ics"
	"slotswapper/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type FeedHandler struct {
	slotQueries queries.SlotQueries
}

func NewFeedHandler(slotQueries queries.SlotQueries) *FeedHandler {
	return &FeedHandler{slotQueries: slotQueries}
}

// @Summary Calendar feed
// @Description Export the current user's slots as an iCalendar feed
// @Tags slots
// @Produce text/calendar
// @Security BearerAuth
// @Success 200 {string} string
// @Failure 401 {object} map[string]string
// @Router /events/feed.ics [get]
func (h *FeedHandler) ExportFeed(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	views, err := h.slotQueries.ListByUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="slots.ics"`)
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(ics.BuildFeed(views)))
}
