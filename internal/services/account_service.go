package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "financeiro/internal/errors"
	"financeiro/internal/models"
)

// accountService handles account persistence. Balances are never stored
// on the account row; they are derived by the summary façade.
type accountService struct {
	db *gorm.DB
}

// NewAccountService creates a new AccountServicer.
func NewAccountService(db *gorm.DB) AccountServicer {
	return &accountService{db: db}
}

// Create validates and persists a new account, returning it with its
// generated id.
func (s *accountService) Create(name string) (*models.Account, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrValidation, "account name is required")
	}

	account := &models.Account{Name: name}
	if err := s.db.Create(account).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorage, err)
	}

	return account, nil
}

// GetAll returns every account in insertion order.
func (s *accountService) GetAll() ([]models.Account, error) {
	var accounts []models.Account
	if err := s.db.Order("id ASC").Find(&accounts).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorage, err)
	}
	return accounts, nil
}

// GetByID retrieves an account by ID. A miss is reported as ACCOUNT_NOT_FOUND.
func (s *accountService) GetByID(id uint) (*models.Account, error) {
	var account models.Account
	if err := s.db.First(&account, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAccountNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrStorage, err)
	}
	return &account, nil
}

// Update renames the account in a single statement.
func (s *accountService) Update(id uint, name string) (*models.Account, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrValidation, "account name is required")
	}

	account, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if err := s.db.Model(account).Update("name", name).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorage, err)
	}

	return account, nil
}

// Delete removes an account that no entry references. Deleting a
// referenced account fails closed with ACCOUNT_IN_USE.
func (s *accountService) Delete(id uint) error {
	account, err := s.GetByID(id)
	if err != nil {
		return err
	}

	var refCount int64
	if err := s.db.Model(&models.Entry{}).Where("account_id = ?", id).Count(&refCount).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrStorage, err)
	}
	if refCount > 0 {
		return apperrors.ErrAccountInUse
	}

	if err := s.db.Delete(account).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrStorage, err)
	}
	return nil
}
