package ws

const (
	// client - server
	MsgMove  = "move"
	MsgReset = "reset"
	MsgScore = "score"

	// server - client
	MsgReady = "ready"
	MsgRound = "round"
	MsgError = "error"
)

// Message is the envelope for every frame in both directions.
type Message struct {
	Type    string      `json:"type"`
	Move    string      `json:"move,omitempty"`
	Payload interface{} `json:"payload,omitempty"`
}
