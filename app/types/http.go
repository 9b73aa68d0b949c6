package types

// HTTP-only payloads. They never cross the gRPC transport.

type HealthResponse struct {
	Status string `json:"status"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type InsufficientTokensResponse struct {
	Error          string `json:"error"`
	RequiredTokens int64  `json:"required_tokens"`
	CurrentBalance int64  `json:"current_balance"`
}
