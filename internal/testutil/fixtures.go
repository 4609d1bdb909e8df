package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"

	"financeiro/internal/models"

	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestCategory creates a category of the given kind with a unique name.
func CreateTestCategory(t *testing.T, db *gorm.DB, kind models.CategoryKind) *models.Category {
	t.Helper()
	return CreateTestCategoryWithName(t, db, fmt.Sprintf("Test Category %d", nextID()), kind)
}

// CreateTestCategoryWithName creates a category with the given name and kind.
func CreateTestCategoryWithName(t *testing.T, db *gorm.DB, name string, kind models.CategoryKind) *models.Category {
	t.Helper()

	category := &models.Category{
		Name: name,
		Kind: kind,
	}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to create test category: %v", err)
	}
	return category
}

// CreateTestAccount creates an account with a unique name.
func CreateTestAccount(t *testing.T, db *gorm.DB) *models.Account {
	t.Helper()
	return CreateTestAccountWithName(t, db, fmt.Sprintf("Test Account %d", nextID()))
}

// CreateTestAccountWithName creates an account with the given name.
func CreateTestAccountWithName(t *testing.T, db *gorm.DB, name string) *models.Account {
	t.Helper()

	account := &models.Account{Name: name}
	if err := db.Create(account).Error; err != nil {
		t.Fatalf("failed to create test account: %v", err)
	}
	return account
}

// CreateTestEntry creates a paid entry of the given kind and amount (in cents).
func CreateTestEntry(t *testing.T, db *gorm.DB, categoryID, accountID uint, kind models.EntryKind, amountCents int64) *models.Entry {
	t.Helper()
	return CreateTestEntryWithStatus(t, db, categoryID, accountID, kind, amountCents, models.EntryStatusPaid)
}

// CreateTestEntryWithStatus creates an entry with the given status.
func CreateTestEntryWithStatus(t *testing.T, db *gorm.DB, categoryID, accountID uint, kind models.EntryKind, amountCents int64, status models.EntryStatus) *models.Entry {
	t.Helper()

	entry := &models.Entry{
		Kind:        kind,
		CategoryID:  categoryID,
		AccountID:   accountID,
		AmountCents: amountCents,
		Date:        "26-04-2025",
		Status:      status,
	}
	if err := db.Create(entry).Error; err != nil {
		t.Fatalf("failed to create test entry: %v", err)
	}
	return entry
}
