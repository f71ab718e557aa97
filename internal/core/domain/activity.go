package domain

import "time"

// ActivityEvent records a guarded mutation for the audit trail. Events are
// written asynchronously; losing one on shutdown is acceptable.
type ActivityEvent struct {
	ID      string    `json:"id" bson:"_id,omitempty"`
	Actor   string    `json:"actor" bson:"actor"`
	Action  string    `json:"action" bson:"action"`
	Subject string    `json:"subject" bson:"subject"`
	At      time.Time `json:"at" bson:"at"`
}
