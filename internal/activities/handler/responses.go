package handler

// SignupResponse confirms a successful signup on the wire.
type SignupResponse struct {
	Message string `json:"message"`
}
