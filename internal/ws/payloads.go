package ws

// server → client
type ReadyPayload struct {
	SessionID string `json:"session_id"`
	Strategy  string `json:"strategy"`
}

type ErrorPayload struct {
	Message string `json:"message"`
}
