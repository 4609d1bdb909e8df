package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "financeiro/internal/errors"
	"financeiro/internal/models"
)

// categoryService handles category persistence.
type categoryService struct {
	db *gorm.DB
}

// NewCategoryService creates a new CategoryServicer.
func NewCategoryService(db *gorm.DB) CategoryServicer {
	return &categoryService{db: db}
}

// Create validates and persists a new category, returning it with its
// generated id.
func (s *categoryService) Create(name string, kind models.CategoryKind) (*models.Category, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrValidation, "category name is required")
	}
	if !kind.Valid() {
		return nil, apperrors.WithMessage(apperrors.ErrValidation, "category kind must be income or expense")
	}

	category := &models.Category{
		Name: name,
		Kind: kind,
	}
	if err := s.db.Create(category).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorage, err)
	}

	return category, nil
}

// GetAll returns every category in insertion order.
func (s *categoryService) GetAll() ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.Order("id ASC").Find(&categories).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorage, err)
	}
	return categories, nil
}

// GetByID retrieves a category by ID. A miss is reported as
// CATEGORY_NOT_FOUND, never a panic or a nil result with nil error.
func (s *categoryService) GetByID(id uint) (*models.Category, error) {
	var category models.Category
	if err := s.db.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrStorage, err)
	}
	return &category, nil
}

// Update replaces the category's mutable fields in a single statement.
// Changing the kind does not touch entries that already reference the
// category; they keep the kind they were created with.
func (s *categoryService) Update(id uint, name string, kind models.CategoryKind) (*models.Category, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrValidation, "category name is required")
	}
	if !kind.Valid() {
		return nil, apperrors.WithMessage(apperrors.ErrValidation, "category kind must be income or expense")
	}

	category, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"name": name,
		"kind": kind,
	}
	if err := s.db.Model(category).Updates(updates).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorage, err)
	}

	return category, nil
}

// Delete removes a category that no entry references. Deleting a
// referenced category fails closed with CATEGORY_IN_USE; it never
// cascades to the entries.
func (s *categoryService) Delete(id uint) error {
	category, err := s.GetByID(id)
	if err != nil {
		return err
	}

	var refCount int64
	if err := s.db.Model(&models.Entry{}).Where("category_id = ?", id).Count(&refCount).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrStorage, err)
	}
	if refCount > 0 {
		return apperrors.ErrCategoryInUse
	}

	if err := s.db.Delete(category).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrStorage, err)
	}
	return nil
}
