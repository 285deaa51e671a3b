package chat

// StructuredReply is the normalised model answer
type StructuredReply struct {
	Summary     string   `json:"summary"`
	KeyPoints   []string `json:"key_points"`
	ActionItems []string `json:"action_items"`
}

// ChatRequest is the request body for POST /api/v1/gemini/chat
type ChatRequest struct {
	Input string `json:"input"`
}

// ChatResponse is the success body for POST /api/v1/gemini/chat
type ChatResponse struct {
	Result StructuredReply `json:"result"`
	Status string          `json:"status"`
}

// Response status values
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// FallbackReply wraps text that could not be parsed as a StructuredReply
func FallbackReply(text string) StructuredReply {
	return StructuredReply{
		Summary:     text,
		KeyPoints:   []string{},
		ActionItems: []string{},
	}
}
