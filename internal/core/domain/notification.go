package domain

import "time"

// Notification is a read-tracked catalog event. ArticleID and ArticleName are
// a point-in-time snapshot and survive edits or deletion of the article.
type Notification struct {
	ID          string    `json:"id" bson:"_id" db:"id"`
	ArticleID   string    `json:"article_id" bson:"article_id" db:"article_id"`
	ArticleName string    `json:"article_name" bson:"article_name" db:"article_name"`
	Message     string    `json:"message" bson:"message" db:"message"`
	Read        bool      `json:"read" bson:"read" db:"read"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at" db:"created_at"`
}

// Alert is a transient user-facing message raised when a notification
// arrives over the realtime feed. Alerts are never persisted.
type Alert struct {
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
