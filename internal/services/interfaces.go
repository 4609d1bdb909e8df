package services

import (
	"financeiro/internal/models"
	"financeiro/internal/reports"
)

// CategoryServicer defines the contract for category persistence.
type CategoryServicer interface {
	Create(name string, kind models.CategoryKind) (*models.Category, error)
	GetAll() ([]models.Category, error)
	GetByID(id uint) (*models.Category, error)
	Update(id uint, name string, kind models.CategoryKind) (*models.Category, error)
	Delete(id uint) error
}

// AccountServicer defines the contract for account persistence.
type AccountServicer interface {
	Create(name string) (*models.Account, error)
	GetAll() ([]models.Account, error)
	GetByID(id uint) (*models.Account, error)
	Update(id uint, name string) (*models.Account, error)
	Delete(id uint) error
}

// EntryInput holds the full mutable field set of an entry. Update replaces
// every field with the input; there are no partial updates.
type EntryInput struct {
	Kind        models.EntryKind
	CategoryID  uint
	AccountID   uint
	AmountCents int64
	Date        string
	Description string
	Status      models.EntryStatus
}

// EntryServicer defines the contract for entry persistence. List reads
// return entries joined with their category and account display names.
type EntryServicer interface {
	Create(input EntryInput) (*models.Entry, error)
	GetAll() ([]models.EntryWithNames, error)
	GetByStatus(status models.EntryStatus) ([]models.EntryWithNames, error)
	GetByID(id uint) (*models.Entry, error)
	GetForAccount(accountID uint) ([]models.EntryWithNames, error)
	Update(id uint, input EntryInput) (*models.Entry, error)
	Delete(id uint) error
}

// AccountWithBalance pairs an account with its derived balance in cents.
type AccountWithBalance struct {
	Account      models.Account `json:"account"`
	BalanceCents int64          `json:"balance_cents"`
}

// SummaryServicer is the read façade the presentation layer consumes.
// Every call recomputes from current storage state; nothing is cached.
type SummaryServicer interface {
	AccountsWithBalances() ([]AccountWithBalance, error)
	OverallBalance() (int64, error)
	CategoryBreakdown(kind models.EntryKind) ([]reports.ChartShare, error)
}
