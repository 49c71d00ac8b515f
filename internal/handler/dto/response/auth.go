package response

import "slotswapper/internal/usecase/queries"

type AuthResponse struct {
	Token string            `json:"token"`
	User  *queries.UserView `json:"user"`
}

type MeResponse struct {
	User *queries.UserView `json:"user"`
}
