package domain

// ChatMessage is one turn of the script-assistant conversation
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatReply is the assistant's answer. Notice carries an optional user-facing
// remark, e.g. that a fallback model answered.
type ChatReply struct {
	Message string `json:"message"`
	Notice  string `json:"notice,omitempty"`
}
