package database

import (
	"path/filepath"
	"testing"

	"financeiro/internal/models"
	"financeiro/internal/testutil"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()

	m, err := NewManager(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() {
		if err := m.Close(); err != nil {
			t.Errorf("failed to close database: %v", err)
		}
	})
	return m
}

func TestMigrateIsIdempotent(t *testing.T) {
	m := newTestManager(t)

	testutil.AssertNoError(t, m.Migrate())

	// Schema usable after the first run
	cat := &models.Category{Name: "Salary", Kind: models.CategoryKindIncome}
	testutil.AssertNoError(t, m.DB().Create(cat).Error)

	// A second run must neither fail nor destroy existing data
	testutil.AssertNoError(t, m.Migrate())

	var count int64
	testutil.AssertNoError(t, m.DB().Model(&models.Category{}).Count(&count).Error)
	if count != 1 {
		t.Errorf("expected 1 category to survive re-migration, got %d", count)
	}
}

func TestSeedInsertsDefaultsOnce(t *testing.T) {
	m := newTestManager(t)
	testutil.AssertNoError(t, m.Migrate())

	testutil.AssertNoError(t, m.Seed())
	testutil.AssertNoError(t, m.Seed())

	var categories int64
	testutil.AssertNoError(t, m.DB().Model(&models.Category{}).Count(&categories).Error)
	if categories != 2 {
		t.Errorf("expected 2 seeded categories, got %d", categories)
	}

	var accounts int64
	testutil.AssertNoError(t, m.DB().Model(&models.Account{}).Count(&accounts).Error)
	if accounts != 1 {
		t.Errorf("expected 1 seeded account, got %d", accounts)
	}
}

func TestSeedSkipsNonEmptyTables(t *testing.T) {
	m := newTestManager(t)
	testutil.AssertNoError(t, m.Migrate())

	existing := &models.Category{Name: "Rent", Kind: models.CategoryKindExpense}
	testutil.AssertNoError(t, m.DB().Create(existing).Error)

	testutil.AssertNoError(t, m.Seed())

	var categories int64
	testutil.AssertNoError(t, m.DB().Model(&models.Category{}).Count(&categories).Error)
	if categories != 1 {
		t.Errorf("expected the existing category only, got %d", categories)
	}

	// The empty accounts table still gets its default
	var accounts int64
	testutil.AssertNoError(t, m.DB().Model(&models.Account{}).Count(&accounts).Error)
	if accounts != 1 {
		t.Errorf("expected 1 seeded account, got %d", accounts)
	}
}
