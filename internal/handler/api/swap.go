package api

import (
	"errors"
	"net/http"

	reqdto "slotswapper/internal/handler/dto/request"
	resdto "slotswapper/internal/handler/dto/response"
	"slotswapper/internal/handler/middleware"
	"slotswapper/internal/usecase/commands"
	"slotswapper/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SwapHandler struct {
	swapCommands commands.SwapCommands
	swapQueries  queries.SwapQueries
}

func NewSwapHandler(swapCommands commands.SwapCommands, swapQueries queries.SwapQueries) *SwapHandler {
	return &SwapHandler{
		swapCommands: swapCommands,
		swapQueries:  swapQueries,
	}
}

// @Summary Propose swap
// @Description Offer one of your swappable slots for another user's swappable slot
// @Tags swaps
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ProposeSwapRequest true "Swap proposal"
// @Success 201 {object} resdto.SwapRequestResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /swap-request [post]
func (h *SwapHandler) ProposeSwap(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.ProposeSwapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.swapCommands.Propose(c.Request.Context(), userID, req.MySlotID, req.TheirSlotID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrSlotNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Slot not found",
			})
		case errors.Is(err, commands.ErrSlotNotSwappable):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Slot is not offered for swapping",
			})
		case errors.Is(err, commands.ErrSelfSwap):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Cannot swap with yourself",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromSwapRequestView(view))
}

// @Summary Respond to swap
// @Description Accept or reject a pending swap request addressed to you
// @Tags swaps
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param requestId path string true "Swap request ID"
// @Param request body reqdto.RespondSwapRequest true "Response decision"
// @Success 200 {object} resdto.SwapRequestResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /swap-response/{requestId} [post]
func (h *SwapHandler) RespondSwap(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	requestID, err := uuid.Parse(c.Param("requestId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid swap request ID format",
		})
		return
	}

	var req reqdto.RespondSwapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.swapCommands.Respond(c.Request.Context(), userID, requestID, *req.Accept)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrRequestNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Swap request not found",
			})
		case errors.Is(err, commands.ErrNotRequestOwner):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Only the request recipient may respond",
			})
		case errors.Is(err, commands.ErrRequestAlreadyDone):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Swap request already processed",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromSwapRequestView(view))
}

// @Summary Incoming swap requests
// @Description List swap requests addressed to the current user, newest first
// @Tags swaps
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.IncomingSwapResponse
// @Failure 401 {object} map[string]string
// @Router /swap-requests/incoming [get]
func (h *SwapHandler) ListIncoming(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	views, err := h.swapQueries.Incoming(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromIncomingSwapViews(views))
}

// @Summary Outgoing swap requests
// @Description List swap requests the current user initiated, newest first
// @Tags swaps
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.OutgoingSwapResponse
// @Failure 401 {object} map[string]string
// @Router /swap-requests/outgoing [get]
func (h *SwapHandler) ListOutgoing(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	views, err := h.swapQueries.Outgoing(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromOutgoingSwapViews(views))
}
