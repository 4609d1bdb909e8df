package models

// EntryKind represents the kind of entry. It is set when the entry is
// created and is independent of the category's current kind.
type EntryKind string

const (
	EntryKindIncome  EntryKind = "income"
	EntryKindExpense EntryKind = "expense"
)

// Valid reports whether the kind is one of the supported values.
func (k EntryKind) Valid() bool {
	return k == EntryKindIncome || k == EntryKindExpense
}

// EntryStatus represents whether an entry has been realized.
type EntryStatus string

const (
	EntryStatusPaid   EntryStatus = "paid"
	EntryStatusUnpaid EntryStatus = "unpaid"
)

// Valid reports whether the status is one of the supported values.
func (s EntryStatus) Valid() bool {
	return s == EntryStatusPaid || s == EntryStatusUnpaid
}

// Entry represents an income or expense record against an account and a
// category. Amounts are stored as integer cents; dates as DD-MM-YYYY strings.
type Entry struct {
	Base
	Kind        EntryKind   `gorm:"not null" json:"kind"`
	CategoryID  uint        `gorm:"not null" json:"category_id"`
	AccountID   uint        `gorm:"not null" json:"account_id"`
	AmountCents int64       `gorm:"column:amount_cents;not null" json:"amount_cents"`
	Date        string      `gorm:"column:entry_date;not null" json:"date"`
	Description string      `json:"description"`
	Status      EntryStatus `gorm:"not null" json:"status"`

	// Relationships
	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Account  *Account  `gorm:"foreignKey:AccountID" json:"account,omitempty"`
}

// EntryWithNames is the read shape for listing entries: the entry joined
// with its category and account display names. The names are resolved at
// read time, never stored, so renames are always reflected.
type EntryWithNames struct {
	Entry        `gorm:"embedded"`
	CategoryName string `json:"category_name"`
	AccountName  string `json:"account_name"`
}
