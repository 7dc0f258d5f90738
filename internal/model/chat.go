package model

// Role is the author of a chat message.
type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleModel
}

// Part is a text segment of a chat message.
type Part struct {
	Text string `json:"text" firestore:"text"`
}

// ChatMessage is one entry of a conversation history.
type ChatMessage struct {
	Role  Role   `json:"role" firestore:"role"`
	Parts []Part `json:"parts" firestore:"parts"`
}
