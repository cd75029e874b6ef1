package models

// Account is the single identity of the service. The numeric ID is the
// stable key everywhere; Name stays unique for lookups and display.
type Account struct {
	BaseModel

	Name     string `json:"name" gorm:"uniqueIndex"`
	Nick     string `json:"nick"`
	Headline string `json:"headline"`
	Avatar   string `json:"avatar"`

	Password string `json:"-"`

	Posts []Post `json:"posts,omitempty"`
}
