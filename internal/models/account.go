package models

// Account represents a financial account. Its balance is never stored;
// it is derived from the account's entries on every read.
type Account struct {
	Base
	Name string `gorm:"not null" json:"name"`

	// Relationships
	Entries []Entry `gorm:"foreignKey:AccountID" json:"entries,omitempty"`
}
