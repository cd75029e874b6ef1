package models

import (
	"time"

	"gorm.io/datatypes"
)

type Post struct {
	BaseModel

	Title       string                      `json:"title"`
	Body        string                      `json:"body"`
	Language    string                      `json:"language"`
	Image       *string                     `json:"image"`
	Attachments datatypes.JSONSlice[string] `json:"attachments"`

	EditedAt *time.Time `json:"edited_at"`

	Comments []Comment `json:"comments"`

	AccountID uint    `json:"account_id"`
	Account   Account `json:"account"`
}

type Comment struct {
	BaseModel

	Body     string     `json:"body"`
	EditedAt *time.Time `json:"edited_at"`

	PostID    uint    `json:"post_id"`
	AccountID uint    `json:"account_id"`
	Account   Account `json:"account"`
}
