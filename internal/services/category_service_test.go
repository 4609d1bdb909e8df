package services

import (
	"testing"

	"financeiro/internal/models"
	"financeiro/internal/testutil"
)

func TestCategoryCreate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)

		cat, err := svc.Create("Groceries", models.CategoryKindExpense)
		testutil.AssertNoError(t, err)

		if cat.ID == 0 {
			t.Fatal("expected non-zero category ID")
		}
		if cat.Name != "Groceries" {
			t.Errorf("expected name Groceries, got %s", cat.Name)
		}
		if cat.Kind != models.CategoryKindExpense {
			t.Errorf("expected kind expense, got %s", cat.Kind)
		}
	})

	t.Run("generates_distinct_ids", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)

		first, err := svc.Create("Salary", models.CategoryKindIncome)
		testutil.AssertNoError(t, err)
		second, err := svc.Create("Food", models.CategoryKindExpense)
		testutil.AssertNoError(t, err)

		if first.ID == second.ID {
			t.Errorf("expected distinct ids, both %d", first.ID)
		}

		got, err := svc.GetByID(second.ID)
		testutil.AssertNoError(t, err)
		if got.Name != "Food" || got.Kind != models.CategoryKindExpense {
			t.Errorf("round trip mismatch: %+v", got)
		}
	})

	t.Run("empty_name", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)

		_, err := svc.Create("", models.CategoryKindExpense)
		testutil.AssertAppError(t, err, "VALIDATION_ERROR")
	})

	t.Run("invalid_kind", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)

		_, err := svc.Create("Misc", models.CategoryKind("savings"))
		testutil.AssertAppError(t, err, "VALIDATION_ERROR")
	})
}

func TestCategoryGetAll(t *testing.T) {
	t.Run("insertion_order", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)

		testutil.CreateTestCategoryWithName(t, db, "First", models.CategoryKindIncome)
		testutil.CreateTestCategoryWithName(t, db, "Second", models.CategoryKindExpense)
		testutil.CreateTestCategoryWithName(t, db, "Third", models.CategoryKindExpense)

		categories, err := svc.GetAll()
		testutil.AssertNoError(t, err)

		if len(categories) != 3 {
			t.Fatalf("expected 3 categories, got %d", len(categories))
		}
		for i, want := range []string{"First", "Second", "Third"} {
			if categories[i].Name != want {
				t.Errorf("position %d: expected %s, got %s", i, want, categories[i].Name)
			}
		}
	})

	t.Run("empty", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)

		categories, err := svc.GetAll()
		testutil.AssertNoError(t, err)
		if len(categories) != 0 {
			t.Errorf("expected no categories, got %d", len(categories))
		}
	})
}

func TestCategoryGetByID(t *testing.T) {
	t.Run("miss_is_typed_not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)

		_, err := svc.GetByID(99999)
		testutil.AssertAppError(t, err, "CATEGORY_NOT_FOUND")
	})
}

func TestCategoryUpdate(t *testing.T) {
	t.Run("replaces_name_and_kind", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)

		cat := testutil.CreateTestCategoryWithName(t, db, "Sallary", models.CategoryKindExpense)

		_, err := svc.Update(cat.ID, "Salary", models.CategoryKindIncome)
		testutil.AssertNoError(t, err)

		got, err := svc.GetByID(cat.ID)
		testutil.AssertNoError(t, err)
		if got.Name != "Salary" || got.Kind != models.CategoryKindIncome {
			t.Errorf("update not applied: %+v", got)
		}
	})

	t.Run("kind_change_leaves_entries_untouched", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)

		cat := testutil.CreateTestCategory(t, db, models.CategoryKindIncome)
		account := testutil.CreateTestAccount(t, db)
		entry := testutil.CreateTestEntry(t, db, cat.ID, account.ID, models.EntryKindIncome, 1000)

		_, err := svc.Update(cat.ID, cat.Name, models.CategoryKindExpense)
		testutil.AssertNoError(t, err)

		var got models.Entry
		testutil.AssertNoError(t, db.First(&got, entry.ID).Error)
		if got.Kind != models.EntryKindIncome {
			t.Errorf("entry kind changed retroactively: %s", got.Kind)
		}
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)

		_, err := svc.Update(99999, "Salary", models.CategoryKindIncome)
		testutil.AssertAppError(t, err, "CATEGORY_NOT_FOUND")
	})

	t.Run("empty_name", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)

		cat := testutil.CreateTestCategory(t, db, models.CategoryKindExpense)
		_, err := svc.Update(cat.ID, "", models.CategoryKindExpense)
		testutil.AssertAppError(t, err, "VALIDATION_ERROR")
	})
}

func TestCategoryDelete(t *testing.T) {
	t.Run("unreferenced_category_is_removed", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)

		cat := testutil.CreateTestCategory(t, db, models.CategoryKindExpense)
		testutil.AssertNoError(t, svc.Delete(cat.ID))

		_, err := svc.GetByID(cat.ID)
		testutil.AssertAppError(t, err, "CATEGORY_NOT_FOUND")
	})

	t.Run("referenced_category_fails_closed", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)

		cat := testutil.CreateTestCategory(t, db, models.CategoryKindExpense)
		account := testutil.CreateTestAccount(t, db)
		entry := testutil.CreateTestEntry(t, db, cat.ID, account.ID, models.EntryKindExpense, 1000)

		testutil.AssertAppError(t, svc.Delete(cat.ID), "CATEGORY_IN_USE")

		// Neither side is removed
		if _, err := svc.GetByID(cat.ID); err != nil {
			t.Errorf("category removed despite live reference: %v", err)
		}
		var got models.Entry
		testutil.AssertNoError(t, db.First(&got, entry.ID).Error)
	})

	t.Run("deletable_once_entries_gone", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)

		cat := testutil.CreateTestCategory(t, db, models.CategoryKindExpense)
		account := testutil.CreateTestAccount(t, db)
		entry := testutil.CreateTestEntry(t, db, cat.ID, account.ID, models.EntryKindExpense, 1000)

		testutil.AssertNoError(t, db.Delete(&models.Entry{}, entry.ID).Error)
		testutil.AssertNoError(t, svc.Delete(cat.ID))
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)

		testutil.AssertAppError(t, svc.Delete(99999), "CATEGORY_NOT_FOUND")
	})
}
