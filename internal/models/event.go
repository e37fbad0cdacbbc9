package models

// Post event types published to Kafka.
const (
	PostEventCreated = "post_created"
	PostEventDeleted = "post_deleted"
)

// PostEvent represents a post lifecycle event published to Kafka.
type PostEvent struct {
	EventID   string `json:"event_id"`  // EventID is a unique identifier for the event.
	Operation string `json:"operation"` // Operation is "post_created" or "post_deleted".
	PostID    string `json:"post_id"`   // PostID identifies the affected post.
	UserID    string `json:"user_id"`   // UserID identifies the post owner.
	Timestamp int64  `json:"timestamp"` // Timestamp is the Unix timestamp (in seconds) of the event.
}
