package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "financeiro/internal/errors"
	"financeiro/internal/models"
	"financeiro/internal/money"
	"financeiro/internal/services"
)

// SummaryHandler exposes the derived-balance and chart read shapes.
type SummaryHandler struct {
	summaryService services.SummaryServicer
}

// NewSummaryHandler creates a new SummaryHandler
func NewSummaryHandler(summaryService services.SummaryServicer) *SummaryHandler {
	return &SummaryHandler{summaryService: summaryService}
}

// AccountBalanceResponse pairs an account with its formatted balance.
type AccountBalanceResponse struct {
	Account      models.Account `json:"account"`
	Balance      string         `json:"balance"`
	BalanceCents int64          `json:"balance_cents"`
}

// ChartShareResponse is one chart slice with a formatted value.
type ChartShareResponse struct {
	Name       string  `json:"name"`
	Value      string  `json:"value"`
	ValueCents int64   `json:"value_cents"`
	Percent    float64 `json:"percent"`
}

// GetOverallBalance handles the retrieval of the balance across all accounts
func (h *SummaryHandler) GetOverallBalance(c *gin.Context) {
	balance, err := h.summaryService.OverallBalance()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"balance":       money.FormatCents(balance),
		"balance_cents": balance,
	})
}

// GetAccountBalances handles the retrieval of every account with its
// derived balance
func (h *SummaryHandler) GetAccountBalances(c *gin.Context) {
	balances, err := h.summaryService.AccountsWithBalances()
	if err != nil {
		respondWithError(c, err)
		return
	}

	out := make([]AccountBalanceResponse, 0, len(balances))
	for _, b := range balances {
		out = append(out, AccountBalanceResponse{
			Account:      b.Account,
			Balance:      money.FormatCents(b.BalanceCents),
			BalanceCents: b.BalanceCents,
		})
	}

	c.JSON(http.StatusOK, gin.H{"accounts": out})
}

// GetCategoryBreakdown handles the retrieval of paid entries of one kind
// grouped by category as chart shares (?kind=income|expense)
func (h *SummaryHandler) GetCategoryBreakdown(c *gin.Context) {
	kind := models.EntryKind(c.Query("kind"))
	if !kind.Valid() {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrValidation, "kind must be income or expense"))
		return
	}

	shares, err := h.summaryService.CategoryBreakdown(kind)
	if err != nil {
		respondWithError(c, err)
		return
	}

	out := make([]ChartShareResponse, 0, len(shares))
	for _, s := range shares {
		out = append(out, ChartShareResponse{
			Name:       s.Name,
			Value:      money.FormatCents(s.ValueCents),
			ValueCents: s.ValueCents,
			Percent:    s.Percent,
		})
	}

	c.JSON(http.StatusOK, gin.H{"categories": out})
}
