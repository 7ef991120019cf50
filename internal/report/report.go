// Package report computes dashboard and summary views from a snapshot of the
// item list. Everything here is pure: items plus a moment in time go in,
// numbers come out, nothing is stored.
package report

import (
	"math"
	"sort"
	"time"

	"butler/internal/model"
)

// Status is the derived severity of a single item.
type Status string

// Severity labels, from worst to best.
const (
	StatusExpired Status = "expired"
	StatusUrgent  Status = "urgent"
	StatusNormal  Status = "normal"
)

const msPerDay = 86_400_000

// DaysRemaining returns the whole-day distance from now to the item's expiry,
// rounding the millisecond delta up to the next integer day. An item due
// later today yields 0; one 7.2 days out yields 8.
func DaysRemaining(item model.Item, now time.Time) int {
	delta := item.ExpiryDate.Time.Sub(now).Milliseconds()
	return int(math.Ceil(float64(delta) / msPerDay))
}

// StatusOf derives the severity label for one item.
func StatusOf(item model.Item, now time.Time) Status {
	if item.ExpiryDate.Time.Before(now) {
		return StatusExpired
	}
	if DaysRemaining(item, now) <= 7 {
		return StatusUrgent
	}
	return StatusNormal
}

// Urgent returns the items due within the next 7 whole days, inclusive of
// both ends. The ceiling rule means an item less than a day past due (whose
// ceiling is 0) still counts, matching the dashboard's historical behavior.
func Urgent(items []model.Item, now time.Time) []model.Item {
	var out []model.Item
	for _, item := range items {
		if d := DaysRemaining(item, now); d >= 0 && d <= 7 {
			out = append(out, item)
		}
	}
	return out
}

// Expired returns the items whose expiry is strictly before now.
func Expired(items []model.Item, now time.Time) []model.Item {
	var out []model.Item
	for _, item := range items {
		if item.ExpiryDate.Time.Before(now) {
			out = append(out, item)
		}
	}
	return out
}

// CategoryCount is one histogram bucket.
type CategoryCount struct {
	Category model.Category
	Count    int
}

// CategoryHistogram counts items per category. Categories with no items are
// omitted; the result follows the fixed enumeration order.
func CategoryHistogram(items []model.Item) []CategoryCount {
	counts := make(map[model.Category]int, len(model.Categories))
	for _, item := range items {
		counts[item.Category]++
	}

	var out []CategoryCount
	for _, category := range model.Categories {
		if counts[category] > 0 {
			out = append(out, CategoryCount{Category: category, Count: counts[category]})
		}
	}
	return out
}

// MonthlyCost projects the monthly spend across subscription items that
// declare an amount: yearly cycles contribute amount/12, monthly cycles the
// full amount, one-time or unset cycles nothing. The result is not rounded.
func MonthlyCost(items []model.Item) float64 {
	var total float64
	for _, item := range items {
		if item.Category != model.CategorySubscription || item.Amount == nil {
			continue
		}
		if item.Cycle == nil {
			continue
		}
		switch *item.Cycle {
		case model.CycleYear:
			total += *item.Amount / 12
		case model.CycleMonth:
			total += *item.Amount
		}
	}
	return total
}

// Upcoming holds the three due-soon buckets.
type Upcoming struct {
	// Today counts items due on the current local calendar day.
	Today int
	// Week counts items with 0 < daysRemaining <= 7.
	Week int
	// Month counts items with 0 < daysRemaining <= 30.
	Month int
}

// UpcomingCounts computes the due-soon buckets. "Due today" uses calendar-day
// equality in now's location while the week/month windows use the
// ceiling-of-days rule; the two semantics are intentionally different.
func UpcomingCounts(items []model.Item, now time.Time) Upcoming {
	var up Upcoming
	y, m, d := now.Date()
	for _, item := range items {
		ey, em, ed := item.ExpiryDate.Time.In(now.Location()).Date()
		if ey == y && em == m && ed == d {
			up.Today++
		}
		days := DaysRemaining(item, now)
		if days > 0 && days <= 7 {
			up.Week++
		}
		if days > 0 && days <= 30 {
			up.Month++
		}
	}
	return up
}

// SortByExpiry returns a copy of items ordered by ascending expiry date.
func SortByExpiry(items []model.Item) []model.Item {
	out := make([]model.Item, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ExpiryDate.Time.Before(out[j].ExpiryDate.Time)
	})
	return out
}

// FilterByCategory returns the items matching category, preserving order.
func FilterByCategory(items []model.Item, category model.Category) []model.Item {
	var out []model.Item
	for _, item := range items {
		if item.Category == category {
			out = append(out, item)
		}
	}
	return out
}
