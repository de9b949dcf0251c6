package users

// MessageResponse is the generic confirmation payload returned by the tally
// mutation endpoints.
type MessageResponse struct {
	Message string `json:"message" example:"Added 10 points to user alice"`
}
