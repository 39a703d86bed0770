package model

import "time"

const (
	TableName  = "contact_messages"
	EntityName = "contact message"

	FieldID        = "id"
	FieldEmail     = "email"
	FieldCreatedAt = "created_at"
)

// Message is a note left through the public contact form.
type Message struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	Email     string    `db:"email"`
	Message   string    `db:"message"`
	IPAddress *string   `db:"ip_address"`
	UserAgent *string   `db:"user_agent"`
	CreatedAt time.Time `db:"created_at"`
}
