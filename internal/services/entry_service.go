package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "financeiro/internal/errors"
	"financeiro/internal/models"
)

// dateLayout is the wire and storage format for entry dates (DD-MM-YYYY).
const dateLayout = "02-01-2006"

// entryService handles entry persistence.
type entryService struct {
	db *gorm.DB
}

// NewEntryService creates a new EntryServicer.
func NewEntryService(db *gorm.DB) EntryServicer {
	return &entryService{db: db}
}

// validateInput checks the caller-supplied fields before any write is
// attempted. The store itself does not re-validate the amount sign.
func validateInput(input EntryInput) error {
	if !input.Kind.Valid() {
		return apperrors.WithMessage(apperrors.ErrValidation, "entry kind must be income or expense")
	}
	if !input.Status.Valid() {
		return apperrors.WithMessage(apperrors.ErrValidation, "entry status must be paid or unpaid")
	}
	if input.AmountCents <= 0 {
		return apperrors.WithMessage(apperrors.ErrValidation, "entry amount must be positive")
	}
	if _, err := time.Parse(dateLayout, input.Date); err != nil {
		return apperrors.WithMessage(apperrors.ErrValidation, "entry date must be in DD-MM-YYYY format")
	}
	return nil
}

// checkReferences verifies both referenced rows exist. Misses surface as
// the referenced entity's not-found error.
func (s *entryService) checkReferences(input EntryInput) error {
	var category models.Category
	if err := s.db.First(&category, input.CategoryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrCategoryNotFound
		}
		return apperrors.Wrap(apperrors.ErrStorage, err)
	}

	var account models.Account
	if err := s.db.First(&account, input.AccountID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrAccountNotFound
		}
		return apperrors.Wrap(apperrors.ErrStorage, err)
	}

	return nil
}

// Create validates the input, verifies the referenced category and account
// exist, and persists the entry with a single insert.
func (s *entryService) Create(input EntryInput) (*models.Entry, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	if err := s.checkReferences(input); err != nil {
		return nil, err
	}

	entry := &models.Entry{
		Kind:        input.Kind,
		CategoryID:  input.CategoryID,
		AccountID:   input.AccountID,
		AmountCents: input.AmountCents,
		Date:        input.Date,
		Description: input.Description,
		Status:      input.Status,
	}
	if err := s.db.Create(entry).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorage, err)
	}

	return entry, nil
}

// joined builds the read-time join of entries with category and account
// display names.
func (s *entryService) joined() *gorm.DB {
	return s.db.Model(&models.Entry{}).
		Select("entries.*, categories.name AS category_name, accounts.name AS account_name").
		Joins("LEFT JOIN categories ON entries.category_id = categories.id").
		Joins("LEFT JOIN accounts ON entries.account_id = accounts.id").
		Order("entries.id ASC")
}

// GetAll returns every entry in insertion order, joined with display names.
func (s *entryService) GetAll() ([]models.EntryWithNames, error) {
	var rows []models.EntryWithNames
	if err := s.joined().Scan(&rows).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorage, err)
	}
	return rows, nil
}

// GetByStatus returns entries with the given status in insertion order,
// joined with display names.
func (s *entryService) GetByStatus(status models.EntryStatus) ([]models.EntryWithNames, error) {
	if !status.Valid() {
		return nil, apperrors.WithMessage(apperrors.ErrValidation, "entry status must be paid or unpaid")
	}
	var rows []models.EntryWithNames
	if err := s.joined().Where("entries.status = ?", status).Scan(&rows).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorage, err)
	}
	return rows, nil
}

// GetForAccount returns the account's entries in insertion order, joined
// with display names.
func (s *entryService) GetForAccount(accountID uint) ([]models.EntryWithNames, error) {
	var rows []models.EntryWithNames
	if err := s.joined().Where("entries.account_id = ?", accountID).Scan(&rows).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorage, err)
	}
	return rows, nil
}

// GetByID retrieves an entry by ID. A miss is reported as ENTRY_NOT_FOUND.
func (s *entryService) GetByID(id uint) (*models.Entry, error) {
	var entry models.Entry
	if err := s.db.First(&entry, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEntryNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrStorage, err)
	}
	return &entry, nil
}

// Update replaces every mutable field of the entry with the input in a
// single statement. The targeted entry must exist and the new references
// must resolve.
func (s *entryService) Update(id uint, input EntryInput) (*models.Entry, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	entry, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if err := s.checkReferences(input); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"kind":         input.Kind,
		"category_id":  input.CategoryID,
		"account_id":   input.AccountID,
		"amount_cents": input.AmountCents,
		"entry_date":   input.Date,
		"description":  input.Description,
		"status":       input.Status,
	}
	if err := s.db.Model(entry).Updates(updates).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorage, err)
	}

	return entry, nil
}

// Delete removes the entry. Entries are the referencing side, so no
// referential check is needed.
func (s *entryService) Delete(id uint) error {
	entry, err := s.GetByID(id)
	if err != nil {
		return err
	}

	if err := s.db.Delete(entry).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrStorage, err)
	}
	return nil
}
