package entities

// StatusKey is the canonical form of a free-text order status.
type StatusKey string

const (
	StatusOpen       StatusKey = "open"
	StatusInProgress StatusKey = "in_progress"
	StatusCompleted  StatusKey = "completed"
	StatusOnHold     StatusKey = "on_hold"
	StatusCancelled  StatusKey = "cancelled"
	StatusUnknown    StatusKey = "unknown"
)

// Palette is the color token attached to a status or to a SOLD placeholder.
type Palette struct {
	Background string `json:"background_color"`
	Border     string `json:"border_color"`
	Text       string `json:"text_color"`
}
