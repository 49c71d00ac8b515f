package request

import (
	"github.com/google/uuid"
)

type ProposeSwapRequest struct {
	MySlotID    uuid.UUID `json:"mySlotId" binding:"required"`
	TheirSlotID uuid.UUID `json:"theirSlotId" binding:"required"`
}

type RespondSwapRequest struct {
	Accept *bool `json:"accept" binding:"required"`
}
