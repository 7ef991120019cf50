package model

import (
	"butler/internal/common"
)

// Cycle describes the recurrence of a subscription for cost projection.
type Cycle string

// Recurrence units. ONCE (or an unset cycle) contributes nothing to the
// monthly cost projection.
const (
	CycleMonth Cycle = "MONTH"
	CycleYear  Cycle = "YEAR"
	CycleOnce  Cycle = "ONCE"
)

// Valid reports whether c is a known cycle.
func (c Cycle) Valid() bool {
	return c == CycleMonth || c == CycleYear || c == CycleOnce
}

// Item is a single tracked thing with an expiry/renewal date and a reminder
// lead time. ID is assigned at creation and never reused; CreatedAt is set
// once. Amount and Cycle are meaningful for subscriptions, PurchaseDate for
// warranties.
type Item struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Category     Category `json:"category"`
	ExpiryDate   Time     `json:"expiryDate"`
	ReminderDays int      `json:"reminderDays"`
	Notes        string   `json:"notes,omitempty"`
	CreatedAt    Time     `json:"createdAt"`
	Amount       *float64 `json:"amount,omitempty"`
	Cycle        *Cycle   `json:"cycle,omitempty"`
	IsAutoRenew  *bool    `json:"isAutoRenew,omitempty"`
	PurchaseDate *Time    `json:"purchaseDate,omitempty"`
	HandledAt    *Time    `json:"handledAt,omitempty"`
}

// Draft carries the fields supplied by the caller when creating an item.
// Name, Category, ExpiryDate and ReminderDays are required.
type Draft struct {
	Name         string
	Category     Category
	ExpiryDate   Time
	ReminderDays int
	Notes        string
	Amount       *float64
	Cycle        *Cycle
	IsAutoRenew  *bool
	PurchaseDate *Time
}

// Validate rejects drafts with missing or malformed required fields.
func (d Draft) Validate() error {
	if d.Name == "" {
		return common.NewValidationError("name", "must not be empty")
	}
	if !d.Category.Valid() {
		return common.NewValidationError("category", "unknown category")
	}
	if d.ExpiryDate.IsZero() {
		return common.NewValidationError("expiryDate", "required")
	}
	if d.ReminderDays < 0 {
		return common.NewValidationError("reminderDays", "must not be negative")
	}
	if d.Cycle != nil && !d.Cycle.Valid() {
		return common.NewValidationError("cycle", "unknown cycle")
	}
	return nil
}

// Patch holds optional replacements for item fields. Only non-nil fields are
// applied; everything else is retained. ID and CreatedAt are immutable and
// cannot be patched.
type Patch struct {
	Name         *string
	Category     *Category
	ExpiryDate   *Time
	ReminderDays *int
	Notes        *string
	Amount       *float64
	Cycle        *Cycle
	IsAutoRenew  *bool
	PurchaseDate *Time
	HandledAt    *Time
}

// Apply merges the patch onto item and returns the result.
func (p Patch) Apply(item Item) Item {
	if p.Name != nil {
		item.Name = *p.Name
	}
	if p.Category != nil {
		item.Category = *p.Category
	}
	if p.ExpiryDate != nil {
		item.ExpiryDate = *p.ExpiryDate
	}
	if p.ReminderDays != nil {
		item.ReminderDays = *p.ReminderDays
	}
	if p.Notes != nil {
		item.Notes = *p.Notes
	}
	if p.Amount != nil {
		item.Amount = p.Amount
	}
	if p.Cycle != nil {
		item.Cycle = p.Cycle
	}
	if p.IsAutoRenew != nil {
		item.IsAutoRenew = p.IsAutoRenew
	}
	if p.PurchaseDate != nil {
		item.PurchaseDate = p.PurchaseDate
	}
	if p.HandledAt != nil {
		item.HandledAt = p.HandledAt
	}
	return item
}
