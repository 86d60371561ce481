// Package analytics holds small pure aggregations over already-fetched rows
// so handlers and services stay thin. No queries happen here.
package analytics

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Aijazali515/AgriFarma/internal/model"
)

const dateLayout = "2006-01-02"

type DayCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// CountRegistrationsByDay aggregates users into per-day counts. Sparse:
// only days with at least one registration appear, sorted ascending.
func CountRegistrationsByDay(users []model.User) []DayCount {
	counts := make(map[string]int)
	for _, u := range users {
		if u.JoinDate.IsZero() {
			continue
		}
		counts[u.JoinDate.UTC().Format(dateLayout)]++
	}

	days := make([]string, 0, len(counts))
	for d := range counts {
		days = append(days, d)
	}
	sort.Strings(days)

	out := make([]DayCount, 0, len(days))
	for _, d := range days {
		out = append(out, DayCount{Date: d, Count: counts[d]})
	}
	return out
}

// RegistrationTrend returns a contiguous day-by-day series for the last
// `days` days ending at now, zero-filled so charts render evenly. Always
// exactly `days` entries, ascending.
func RegistrationTrend(users []model.User, days int, now time.Time) []DayCount {
	if days < 1 {
		days = 1
	}
	end := now.UTC().Truncate(24 * time.Hour)
	start := end.AddDate(0, 0, -(days - 1))

	agg := make(map[string]int)
	for _, u := range users {
		if u.JoinDate.IsZero() {
			continue
		}
		d := u.JoinDate.UTC().Truncate(24 * time.Hour)
		if !d.Before(start) && !d.After(end) {
			agg[d.Format(dateLayout)]++
		}
	}

	series := make([]DayCount, 0, days)
	for cur := start; !cur.After(end); cur = cur.AddDate(0, 0, 1) {
		k := cur.Format(dateLayout)
		series = append(series, DayCount{Date: k, Count: agg[k]})
	}
	return series
}

// TopN sorts items by the given numeric key descending and returns the
// first n. Items missing the key or holding a non-numeric value are
// silently excluded.
func TopN(items []map[string]any, key string, n int) []map[string]any {
	safe := make([]map[string]any, 0, len(items))
	for _, item := range items {
		if _, ok := numericValue(item[key]); ok {
			safe = append(safe, item)
		}
	}
	sort.SliceStable(safe, func(i, j int) bool {
		a, _ := numericValue(safe[i][key])
		b, _ := numericValue(safe[j][key])
		return a > b
	})
	if n > len(safe) {
		n = len(safe)
	}
	return safe[:n]
}

func numericValue(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	case decimal.Decimal:
		f, _ := n.Float64()
		return f, true
	default:
		return 0, false
	}
}

// LowInventory filters products below the threshold, ascending by stock.
// Recomputed per request; nothing is stored.
func LowInventory(products []model.Product, threshold int) []model.Product {
	alerting := make([]model.Product, 0)
	for _, p := range products {
		if p.Inventory < threshold {
			alerting = append(alerting, p)
		}
	}
	sort.SliceStable(alerting, func(i, j int) bool {
		return alerting[i].Inventory < alerting[j].Inventory
	})
	return alerting
}

type DayRevenue struct {
	Date    string          `json:"date"`
	Revenue decimal.Decimal `json:"revenue"`
}

// RevenueByDay buckets Paid order totals into a contiguous zero-filled
// series over the last `days` days. Totals stay decimal; rounding happens
// at the presentation boundary.
func RevenueByDay(orders []model.Order, days int, now time.Time) []DayRevenue {
	if days < 1 {
		days = 1
	}
	end := now.UTC().Truncate(24 * time.Hour)
	start := end.AddDate(0, 0, -(days - 1))

	agg := make(map[string]decimal.Decimal)
	for _, o := range orders {
		if o.PaymentStatus != model.PaymentPaid {
			continue
		}
		d := o.CreatedAt.UTC().Truncate(24 * time.Hour)
		if d.Before(start) || d.After(end) {
			continue
		}
		k := d.Format(dateLayout)
		agg[k] = agg[k].Add(o.TotalAmount)
	}

	series := make([]DayRevenue, 0, days)
	for cur := start; !cur.After(end); cur = cur.AddDate(0, 0, 1) {
		k := cur.Format(dateLayout)
		series = append(series, DayRevenue{Date: k, Revenue: agg[k]})
	}
	return series
}

// OrdersByStatus counts orders per status for the dashboard pie chart.
func OrdersByStatus(orders []model.Order) map[string]int {
	out := make(map[string]int)
	for _, o := range orders {
		status := o.Status
		if status == "" {
			status = "Unknown"
		}
		out[status]++
	}
	return out
}
