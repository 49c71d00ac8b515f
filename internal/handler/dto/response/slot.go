package response

import (
	"time"

	"slotswapper/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type SlotResponse struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	Title     string    `json:"title"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type SwappableSlotResponse struct {
	SlotResponse
	OwnerName  string `json:"ownerName"`
	OwnerEmail string `json:"ownerEmail"`
}

func FromSlotView(v *queries.SlotView) *SlotResponse {
	var resp SlotResponse
	_ = copier.Copy(&resp, v)
	return &resp
}

func FromSlotViews(vs []*queries.SlotView) []*SlotResponse {
	out := make([]*SlotResponse, len(vs))
	for i, v := range vs {
		out[i] = FromSlotView(v)
	}
	return out
}

func FromSwappableSlotView(v *queries.SwappableSlotView) *SwappableSlotResponse {
	var resp SwappableSlotResponse
	_ = copier.Copy(&resp.SlotResponse, &v.SlotView)
	resp.OwnerName = v.OwnerName
	resp.OwnerEmail = v.OwnerEmail
	return &resp
}

func FromSwappableSlotViews(vs []*queries.SwappableSlotView) []*SwappableSlotResponse {
	out := make([]*SwappableSlotResponse, len(vs))
	for i, v := range vs {
		out[i] = FromSwappableSlotView(v)
	}
	return out
}
