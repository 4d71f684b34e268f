package models

// UserEvent is a user lifecycle notification published to Kafka for
// downstream consumers.
type UserEvent struct {
	EventID   string `json:"event_id"`  // Unique event identifier
	Timestamp int64  `json:"timestamp"` // Unix timestamp of the event
	Operation string `json:"operation"` // One of "created", "updated", "deleted"
	UserID    int64  `json:"user_id"`   // Affected user id
	Username  string `json:"username"`  // Affected username
}
