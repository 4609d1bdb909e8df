package services

import (
	"financeiro/internal/models"
	"financeiro/internal/reports"
)

// summaryService composes the entity services with the reports package
// into the read shapes the presentation layer consumes. It holds no
// state and performs no writes; every call recomputes from the store.
type summaryService struct {
	accounts AccountServicer
	entries  EntryServicer
}

// NewSummaryService creates a new SummaryServicer.
func NewSummaryService(accounts AccountServicer, entries EntryServicer) SummaryServicer {
	return &summaryService{accounts: accounts, entries: entries}
}

// AccountsWithBalances returns every account with its balance derived
// from its own entries. Failures from the underlying services propagate
// unchanged.
func (s *summaryService) AccountsWithBalances() ([]AccountWithBalance, error) {
	accounts, err := s.accounts.GetAll()
	if err != nil {
		return nil, err
	}

	result := make([]AccountWithBalance, 0, len(accounts))
	for _, account := range accounts {
		rows, err := s.entries.GetForAccount(account.ID)
		if err != nil {
			return nil, err
		}
		entries := make([]models.Entry, len(rows))
		for i, row := range rows {
			entries[i] = row.Entry
		}
		result = append(result, AccountWithBalance{
			Account:      account,
			BalanceCents: reports.AccountBalance(entries),
		})
	}
	return result, nil
}

// OverallBalance returns the sum of all per-account balances in cents.
func (s *summaryService) OverallBalance() (int64, error) {
	balances, err := s.AccountsWithBalances()
	if err != nil {
		return 0, err
	}

	var total int64
	for _, b := range balances {
		total += b.BalanceCents
	}
	return total, nil
}

// CategoryBreakdown returns the paid entries of the given kind grouped by
// category as chart shares, in first-seen category order.
func (s *summaryService) CategoryBreakdown(kind models.EntryKind) ([]reports.ChartShare, error) {
	rows, err := s.entries.GetAll()
	if err != nil {
		return nil, err
	}
	return reports.ChartShares(reports.GroupByCategory(rows, kind)), nil
}
