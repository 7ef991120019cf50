package model

import (
	"testing"
	"time"

	"butler/internal/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDraft() Draft {
	return Draft{
		Name:         "Netflix",
		Category:     CategorySubscription,
		ExpiryDate:   NewTime(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)),
		ReminderDays: 3,
	}
}

func TestDraftValidate(t *testing.T) {
	t.Run("valid draft passes", func(t *testing.T) {
		require.NoError(t, validDraft().Validate())
	})

	t.Run("empty name rejected", func(t *testing.T) {
		draft := validDraft()
		draft.Name = ""

		err := draft.Validate()
		require.Error(t, err)

		var verr *common.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "name", verr.Field)
	})

	t.Run("unknown category rejected", func(t *testing.T) {
		draft := validDraft()
		draft.Category = "gadgets"

		var verr *common.ValidationError
		require.ErrorAs(t, draft.Validate(), &verr)
		assert.Equal(t, "category", verr.Field)
	})

	t.Run("missing expiry rejected", func(t *testing.T) {
		draft := validDraft()
		draft.ExpiryDate = Time{}

		var verr *common.ValidationError
		require.ErrorAs(t, draft.Validate(), &verr)
		assert.Equal(t, "expiryDate", verr.Field)
	})

	t.Run("negative reminder days rejected", func(t *testing.T) {
		draft := validDraft()
		draft.ReminderDays = -1

		var verr *common.ValidationError
		require.ErrorAs(t, draft.Validate(), &verr)
		assert.Equal(t, "reminderDays", verr.Field)
	})

	t.Run("unknown cycle rejected", func(t *testing.T) {
		draft := validDraft()
		bad := Cycle("WEEK")
		draft.Cycle = &bad

		var verr *common.ValidationError
		require.ErrorAs(t, draft.Validate(), &verr)
		assert.Equal(t, "cycle", verr.Field)
	})
}

func TestPatchApply(t *testing.T) {
	amount := 15.0
	cycle := CycleMonth
	item := Item{
		ID:           "abc",
		Name:         "Spotify",
		Category:     CategorySubscription,
		ExpiryDate:   NewTime(time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)),
		ReminderDays: 3,
		Amount:       &amount,
		Cycle:        &cycle,
		CreatedAt:    NewTime(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)),
	}

	t.Run("set fields win, omitted fields retained", func(t *testing.T) {
		name := "Spotify Family"
		days := 7
		patched := Patch{Name: &name, ReminderDays: &days}.Apply(item)

		assert.Equal(t, "Spotify Family", patched.Name)
		assert.Equal(t, 7, patched.ReminderDays)
		assert.Equal(t, item.Category, patched.Category)
		assert.Equal(t, item.ExpiryDate, patched.ExpiryDate)
		assert.Equal(t, item.Amount, patched.Amount)
		assert.Equal(t, item.Cycle, patched.Cycle)
		assert.Equal(t, item.ID, patched.ID)
		assert.Equal(t, item.CreatedAt, patched.CreatedAt)
	})

	t.Run("empty patch is the identity", func(t *testing.T) {
		assert.Equal(t, item, Patch{}.Apply(item))
	})
}

func TestParseCategory(t *testing.T) {
	t.Run("accepts enum values and labels", func(t *testing.T) {
		for _, input := range []string{"food", "Food", "FOOD"} {
			category, err := ParseCategory(input)
			require.NoError(t, err)
			assert.Equal(t, CategoryFood, category)
		}
	})

	t.Run("rejects unknown input", func(t *testing.T) {
		_, err := ParseCategory("vehicles")
		require.Error(t, err)
	})
}

func TestCategoriesOrder(t *testing.T) {
	// Display and histogram iteration depend on this exact order.
	assert.Equal(t, []Category{
		CategorySubscription,
		CategoryFood,
		CategoryDocument,
		CategoryInsurance,
		CategoryWarranty,
		CategoryMedicine,
		CategoryHome,
		CategoryOther,
	}, Categories)
}
