package usecase

import (
	"sort"
	"time"

	"finledger/internal/domain"
)

// Grouping and sorting primitives. Groups are keyed by normalized date
// strings and always emitted in ascending key order; within a group,
// transactions keep the order of the pre-sorted input.

func dayKey(t time.Time) string {
	return t.Format(time.DateOnly)
}

func monthKey(t time.Time) string {
	return t.Format("2006-01")
}

func sortByDueDate(txs []domain.Transaction) {
	sort.SliceStable(txs, func(i, j int) bool {
		return txs[i].DueDate.Before(txs[j].DueDate)
	})
}

func sortByCompetenceDate(txs []domain.Transaction) {
	sort.SliceStable(txs, func(i, j int) bool {
		return txs[i].CompetenceDate.Before(txs[j].CompetenceDate)
	})
}

// withinWindow reports whether d falls in [start, end], both inclusive.
func withinWindow(d, start, end time.Time) bool {
	return !d.Before(start) && !d.After(end)
}

type txFilter func(domain.Transaction) bool

func filterTransactions(txs []domain.Transaction, keep txFilter) []domain.Transaction {
	var out []domain.Transaction
	for _, tx := range txs {
		if keep(tx) {
			out = append(out, tx)
		}
	}
	return out
}

type dateGroup struct {
	key string
	txs []domain.Transaction
}

// groupByKey partitions txs by keyFn. Keys are sorted ascending; because the
// keys are zero-padded date strings, lexical order is chronological order.
func groupByKey(txs []domain.Transaction, keyFn func(domain.Transaction) time.Time) []dateGroup {
	byKey := make(map[string][]domain.Transaction)
	for _, tx := range txs {
		k := dayKey(keyFn(tx))
		byKey[k] = append(byKey[k], tx)
	}

	keys := make([]string, 0, len(byKey))
	for k := range byKey {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	groups := make([]dateGroup, 0, len(keys))
	for _, k := range keys {
		groups = append(groups, dateGroup{key: k, txs: byKey[k]})
	}
	return groups
}

// monthsBetween enumerates every calendar month key from start through end.
func monthsBetween(start, end time.Time) []string {
	var months []string
	cur := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, time.UTC)
	last := time.Date(end.Year(), end.Month(), 1, 0, 0, 0, 0, time.UTC)
	for !cur.After(last) {
		months = append(months, monthKey(cur))
		cur = cur.AddDate(0, 1, 0)
	}
	return months
}
