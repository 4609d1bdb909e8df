package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "financeiro/internal/errors"
	"financeiro/internal/models"
	"financeiro/internal/services"
)

// --- mock category service ---

type mockCategoryService struct {
	createFn  func(name string, kind models.CategoryKind) (*models.Category, error)
	getAllFn  func() ([]models.Category, error)
	getByIDFn func(id uint) (*models.Category, error)
	updateFn  func(id uint, name string, kind models.CategoryKind) (*models.Category, error)
	deleteFn  func(id uint) error
}

func (m *mockCategoryService) Create(name string, kind models.CategoryKind) (*models.Category, error) {
	if m.createFn != nil {
		return m.createFn(name, kind)
	}
	return &models.Category{}, nil
}

func (m *mockCategoryService) GetAll() ([]models.Category, error) {
	if m.getAllFn != nil {
		return m.getAllFn()
	}
	return []models.Category{}, nil
}

func (m *mockCategoryService) GetByID(id uint) (*models.Category, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(id)
	}
	return &models.Category{}, nil
}

func (m *mockCategoryService) Update(id uint, name string, kind models.CategoryKind) (*models.Category, error) {
	if m.updateFn != nil {
		return m.updateFn(id, name, kind)
	}
	return &models.Category{}, nil
}

func (m *mockCategoryService) Delete(id uint) error {
	if m.deleteFn != nil {
		return m.deleteFn(id)
	}
	return nil
}

var _ services.CategoryServicer = (*mockCategoryService)(nil)

func setupCategoryRouter(handler *CategoryHandler) *gin.Engine {
	r := gin.New()
	r.POST("/categories", handler.CreateCategory)
	r.GET("/categories", handler.GetCategories)
	r.GET("/categories/:id", handler.GetCategoryByID)
	r.PUT("/categories/:id", handler.UpdateCategory)
	r.DELETE("/categories/:id", handler.DeleteCategory)
	return r
}

func TestCategoryHandler_CreateCategory(t *testing.T) {
	t.Run("returns 201 on success", func(t *testing.T) {
		catSvc := &mockCategoryService{
			createFn: func(name string, kind models.CategoryKind) (*models.Category, error) {
				return &models.Category{
					Base: models.Base{ID: 1},
					Name: name,
					Kind: kind,
				}, nil
			},
		}
		r := setupCategoryRouter(NewCategoryHandler(catSvc))

		rec := doRequest(r, "POST", "/categories", `{"name":"Food","kind":"expense"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		cat := result["category"].(map[string]interface{})
		if cat["name"] != "Food" {
			t.Errorf("expected Food, got %v", cat["name"])
		}
		if cat["kind"] != "expense" {
			t.Errorf("expected expense, got %v", cat["kind"])
		}
	})

	t.Run("returns 400 on missing name", func(t *testing.T) {
		r := setupCategoryRouter(NewCategoryHandler(&mockCategoryService{}))

		rec := doRequest(r, "POST", "/categories", `{"kind":"expense"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		if code := errorCode(t, rec); code != "VALIDATION_ERROR" {
			t.Errorf("expected VALIDATION_ERROR, got %s", code)
		}
	})

	t.Run("returns 400 on invalid kind", func(t *testing.T) {
		r := setupCategoryRouter(NewCategoryHandler(&mockCategoryService{}))

		rec := doRequest(r, "POST", "/categories", `{"name":"Food","kind":"savings"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestCategoryHandler_GetCategoryByID(t *testing.T) {
	t.Run("returns 404 for a miss", func(t *testing.T) {
		catSvc := &mockCategoryService{
			getByIDFn: func(uint) (*models.Category, error) {
				return nil, apperrors.ErrCategoryNotFound
			},
		}
		r := setupCategoryRouter(NewCategoryHandler(catSvc))

		rec := doRequest(r, "GET", "/categories/42", "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		if code := errorCode(t, rec); code != "CATEGORY_NOT_FOUND" {
			t.Errorf("expected CATEGORY_NOT_FOUND, got %s", code)
		}
	})

	t.Run("returns 400 for a non-numeric id", func(t *testing.T) {
		r := setupCategoryRouter(NewCategoryHandler(&mockCategoryService{}))

		rec := doRequest(r, "GET", "/categories/abc", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestCategoryHandler_DeleteCategory(t *testing.T) {
	t.Run("returns 204 on success", func(t *testing.T) {
		r := setupCategoryRouter(NewCategoryHandler(&mockCategoryService{}))

		rec := doRequest(r, "DELETE", "/categories/1", "")

		if rec.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", rec.Code)
		}
	})

	t.Run("returns 409 when still referenced", func(t *testing.T) {
		catSvc := &mockCategoryService{
			deleteFn: func(uint) error { return apperrors.ErrCategoryInUse },
		}
		r := setupCategoryRouter(NewCategoryHandler(catSvc))

		rec := doRequest(r, "DELETE", "/categories/1", "")

		if rec.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", rec.Code)
		}
		if code := errorCode(t, rec); code != "CATEGORY_IN_USE" {
			t.Errorf("expected CATEGORY_IN_USE, got %s", code)
		}
	})
}
