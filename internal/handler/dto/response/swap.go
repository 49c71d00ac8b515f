package response

import (
	"time"

	"slotswapper/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type SwapRequestResponse struct {
	ID                 uuid.UUID `json:"id"`
	RequesterID        uuid.UUID `json:"requesterId"`
	RequesterSlotID    uuid.UUID `json:"requesterSlotId"`
	OwnerID            uuid.UUID `json:"ownerId"`
	OwnerSlotID        uuid.UUID `json:"ownerSlotId"`
	Status             string    `json:"status"`
	RequesterSlotTitle string    `json:"requesterSlotTitle"`
	RequesterStart     time.Time `json:"requesterStart"`
	RequesterEnd       time.Time `json:"requesterEnd"`
	OwnerSlotTitle     string    `json:"ownerSlotTitle"`
	OwnerStart         time.Time `json:"ownerStart"`
	OwnerEnd           time.Time `json:"ownerEnd"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

type IncomingSwapResponse struct {
	SwapRequestResponse
	RequesterName  string `json:"requesterName"`
	RequesterEmail string `json:"requesterEmail"`
}

type OutgoingSwapResponse struct {
	SwapRequestResponse
	OwnerName  string `json:"ownerName"`
	OwnerEmail string `json:"ownerEmail"`
}

func FromSwapRequestView(v *queries.SwapRequestView) *SwapRequestResponse {
	var resp SwapRequestResponse
	_ = copier.Copy(&resp, v)
	return &resp
}

func FromIncomingSwapViews(vs []*queries.IncomingSwapView) []*IncomingSwapResponse {
	out := make([]*IncomingSwapResponse, len(vs))
	for i, v := range vs {
		var resp IncomingSwapResponse
		_ = copier.Copy(&resp.SwapRequestResponse, &v.SwapRequestView)
		resp.RequesterName = v.RequesterName
		resp.RequesterEmail = v.RequesterEmail
		out[i] = &resp
	}
	return out
}

func FromOutgoingSwapViews(vs []*queries.OutgoingSwapView) []*OutgoingSwapResponse {
	out := make([]*OutgoingSwapResponse, len(vs))
	for i, v := range vs {
		var resp OutgoingSwapResponse
		_ = copier.Copy(&resp.SwapRequestResponse, &v.SwapRequestView)
		resp.OwnerName = v.OwnerName
		resp.OwnerEmail = v.OwnerEmail
		out[i] = &resp
	}
	return out
}
