// Package reports computes derived figures from in-memory entry sets.
// Functions here are pure: they never touch storage and never fail, so
// they can be tested independently of the repositories that feed them.
//
// Only paid entries count toward balances and category totals. Unpaid
// entries are unrealized and must not appear as completed amounts.
package reports

import (
	"math"

	"financeiro/internal/models"
)

// UncategorizedName labels amounts whose category name could not be
// resolved by the read-time join.
const UncategorizedName = "Uncategorized"

// CategoryGroup is the total amount and entry count for one category.
type CategoryGroup struct {
	Name       string `json:"name"`
	TotalCents int64  `json:"total_cents"`
	Count      int    `json:"count"`
}

// ChartShare is one slice of a category chart: the category name, its
// total value, and its share of the chart as a percentage.
type ChartShare struct {
	Name       string  `json:"name"`
	ValueCents int64   `json:"value_cents"`
	Percent    float64 `json:"percent"`
}

// AccountBalance returns the balance of the given entries in cents:
// the sum of paid income minus the sum of paid expenses. The result does
// not depend on entry order.
func AccountBalance(entries []models.Entry) int64 {
	var balance int64
	for _, e := range entries {
		if e.Status != models.EntryStatusPaid {
			continue
		}
		switch e.Kind {
		case models.EntryKindIncome:
			balance += e.AmountCents
		case models.EntryKindExpense:
			balance -= e.AmountCents
		}
	}
	return balance
}

// GroupByCategory totals paid entries of the given kind per category
// display name. Groups appear in the order their category is first seen
// in the input, so deterministic input yields deterministic output.
func GroupByCategory(entries []models.EntryWithNames, kind models.EntryKind) []CategoryGroup {
	groups := make([]CategoryGroup, 0)
	index := make(map[string]int)

	for _, e := range entries {
		if e.Kind != kind || e.Status != models.EntryStatusPaid {
			continue
		}
		name := e.CategoryName
		if name == "" {
			name = UncategorizedName
		}
		i, ok := index[name]
		if !ok {
			i = len(groups)
			index[name] = i
			groups = append(groups, CategoryGroup{Name: name})
		}
		groups[i].TotalCents += e.AmountCents
		groups[i].Count++
	}

	return groups
}

// ChartShares converts category groups into chart slices, preserving
// order. Percent is the group's share of the grand total rounded to one
// decimal; when the total is zero every percent is 0.0 instead of
// dividing by zero.
func ChartShares(groups []CategoryGroup) []ChartShare {
	var total int64
	for _, g := range groups {
		total += g.TotalCents
	}

	shares := make([]ChartShare, 0, len(groups))
	for _, g := range groups {
		percent := 0.0
		if total != 0 {
			percent = math.Round(float64(g.TotalCents)/float64(total)*1000) / 10
		}
		shares = append(shares, ChartShare{
			Name:       g.Name,
			ValueCents: g.TotalCents,
			Percent:    percent,
		})
	}
	return shares
}
