package models

// CategoryKind represents the kind of category
type CategoryKind string

const (
	CategoryKindIncome  CategoryKind = "income"
	CategoryKindExpense CategoryKind = "expense"
)

// Valid reports whether the kind is one of the supported values.
func (k CategoryKind) Valid() bool {
	return k == CategoryKindIncome || k == CategoryKindExpense
}

// Category represents an entry category. A category's kind may be edited
// after entries reference it; entries keep the kind they were created with.
type Category struct {
	Base
	Name string       `gorm:"not null" json:"name"`
	Kind CategoryKind `gorm:"not null" json:"kind"`
}
