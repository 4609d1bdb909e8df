package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "financeiro/internal/errors"
	"financeiro/internal/models"
	"financeiro/internal/money"
	"financeiro/internal/services"
)

// EntryHandler handles entry-related requests
type EntryHandler struct {
	entryService services.EntryServicer
}

// NewEntryHandler creates a new EntryHandler
func NewEntryHandler(entryService services.EntryServicer) *EntryHandler {
	return &EntryHandler{entryService: entryService}
}

// EntryRequest represents the full field set for creating or replacing an
// entry. Amounts are two-decimal strings, e.g. "5000.00".
type EntryRequest struct {
	Kind        string `json:"kind" binding:"required,entry_kind"`
	CategoryID  uint   `json:"category_id" binding:"required"`
	AccountID   uint   `json:"account_id" binding:"required"`
	Amount      string `json:"amount" binding:"required"`
	Date        string `json:"date" binding:"required,entry_date"`
	Description string `json:"description"`
	Status      string `json:"status" binding:"required,entry_status"`
}

// EntryResponse represents an entry in the response, with the amount
// formatted to two decimals.
type EntryResponse struct {
	ID          uint               `json:"id"`
	Kind        models.EntryKind   `json:"kind"`
	CategoryID  uint               `json:"category_id"`
	AccountID   uint               `json:"account_id"`
	Amount      string             `json:"amount"`
	Date        string             `json:"date"`
	Description string             `json:"description,omitempty"`
	Status      models.EntryStatus `json:"status"`
}

// EntryWithNamesResponse adds the joined category and account display names.
type EntryWithNamesResponse struct {
	EntryResponse
	Category string `json:"category"`
	Account  string `json:"account"`
}

func toEntryResponse(e *models.Entry) EntryResponse {
	return EntryResponse{
		ID:          e.ID,
		Kind:        e.Kind,
		CategoryID:  e.CategoryID,
		AccountID:   e.AccountID,
		Amount:      money.FormatCents(e.AmountCents),
		Date:        e.Date,
		Description: e.Description,
		Status:      e.Status,
	}
}

func toEntryWithNamesResponses(rows []models.EntryWithNames) []EntryWithNamesResponse {
	out := make([]EntryWithNamesResponse, 0, len(rows))
	for i := range rows {
		out = append(out, EntryWithNamesResponse{
			EntryResponse: toEntryResponse(&rows[i].Entry),
			Category:      rows[i].CategoryName,
			Account:       rows[i].AccountName,
		})
	}
	return out
}

func (r EntryRequest) toInput() (services.EntryInput, error) {
	cents, err := money.ParseDecimalToCents(r.Amount)
	if err != nil {
		return services.EntryInput{}, apperrors.WithMessage(apperrors.ErrValidation, "amount must be a positive decimal")
	}
	return services.EntryInput{
		Kind:        models.EntryKind(r.Kind),
		CategoryID:  r.CategoryID,
		AccountID:   r.AccountID,
		AmountCents: cents,
		Date:        r.Date,
		Description: r.Description,
		Status:      models.EntryStatus(r.Status),
	}, nil
}

// CreateEntry handles the creation of a new entry
func (h *EntryHandler) CreateEntry(c *gin.Context) {
	var req EntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindingError(c, err)
		return
	}

	input, err := req.toInput()
	if err != nil {
		respondWithError(c, err)
		return
	}

	entry, err := h.entryService.Create(input)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"entry": toEntryResponse(entry)})
}

// GetEntries handles the retrieval of all entries, optionally filtered by
// status (?status=paid|unpaid), joined with display names
func (h *EntryHandler) GetEntries(c *gin.Context) {
	var rows []models.EntryWithNames
	var err error

	if status := c.Query("status"); status != "" {
		rows, err = h.entryService.GetByStatus(models.EntryStatus(status))
	} else {
		rows, err = h.entryService.GetAll()
	}
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"entries": toEntryWithNamesResponses(rows)})
}

// GetEntryByID handles the retrieval of a single entry
func (h *EntryHandler) GetEntryByID(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	entry, err := h.entryService.GetByID(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"entry": toEntryResponse(entry)})
}

// UpdateEntry handles replacing every mutable field of an entry
func (h *EntryHandler) UpdateEntry(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req EntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindingError(c, err)
		return
	}

	input, err := req.toInput()
	if err != nil {
		respondWithError(c, err)
		return
	}

	entry, err := h.entryService.Update(id, input)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"entry": toEntryResponse(entry)})
}

// DeleteEntry handles the deletion of an entry
func (h *EntryHandler) DeleteEntry(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.entryService.Delete(id); err != nil {
		respondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
