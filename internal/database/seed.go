package database

import (
	apperrors "financeiro/internal/errors"
	"financeiro/internal/logger"
	"financeiro/internal/models"
)

// Seed inserts default reference rows so a fresh install is usable: one
// category of each kind and one account. Rows are only inserted when the
// respective table is empty, so calling Seed on every start is safe.
func (m *Manager) Seed() error {
	var count int64
	if err := m.db.Model(&models.Category{}).Count(&count).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrSchemaInit, err)
	}
	if count == 0 {
		defaults := []models.Category{
			{Name: "Salary", Kind: models.CategoryKindIncome},
			{Name: "General", Kind: models.CategoryKindExpense},
		}
		if err := m.db.Create(&defaults).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrSchemaInit, err)
		}
		logger.Get().Info("Seeded default categories")
	}

	if err := m.db.Model(&models.Account{}).Count(&count).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrSchemaInit, err)
	}
	if count == 0 {
		if err := m.db.Create(&models.Account{Name: "Wallet"}).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrSchemaInit, err)
		}
		logger.Get().Info("Seeded default account")
	}

	return nil
}
