package main

import (
	"testing"

	"butler/internal/common"
	"butler/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDraft(t *testing.T) {
	t.Run("full input", func(t *testing.T) {
		draft, err := buildDraft(draftInput{
			name:       "Domain",
			category:   "subscription",
			expires:    "2026-03-01",
			remindDays: 7,
			amount:     120,
			hasAmount:  true,
			cycle:      "YEAR",
			notes:      "renew at registrar",
		}, 3)
		require.NoError(t, err)

		assert.Equal(t, "Domain", draft.Name)
		assert.Equal(t, model.CategorySubscription, draft.Category)
		assert.Equal(t, 2026, draft.ExpiryDate.Year())
		assert.Equal(t, 7, draft.ReminderDays)
		require.NotNil(t, draft.Amount)
		assert.Equal(t, 120.0, *draft.Amount)
		require.NotNil(t, draft.Cycle)
		assert.Equal(t, model.CycleYear, *draft.Cycle)
		assert.Equal(t, "renew at registrar", draft.Notes)
	})

	t.Run("negative remind days fall back to the settings default", func(t *testing.T) {
		draft, err := buildDraft(draftInput{
			name:       "Milk",
			category:   "food",
			expires:    "2026-01-05",
			remindDays: -1,
		}, 3)
		require.NoError(t, err)
		assert.Equal(t, 3, draft.ReminderDays)
	})

	t.Run("amount stays unset without the flag", func(t *testing.T) {
		draft, err := buildDraft(draftInput{name: "Milk", category: "food", expires: "2026-01-05"}, 3)
		require.NoError(t, err)
		assert.Nil(t, draft.Amount)
		assert.Nil(t, draft.IsAutoRenew)
	})

	t.Run("bad category", func(t *testing.T) {
		_, err := buildDraft(draftInput{name: "x", category: "gadgets", expires: "2026-01-05"}, 3)

		var verr *common.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "category", verr.Field)
	})

	t.Run("bad expiry date", func(t *testing.T) {
		_, err := buildDraft(draftInput{name: "x", category: "food", expires: "someday"}, 3)

		var verr *common.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "expires", verr.Field)
	})

	t.Run("bad cycle", func(t *testing.T) {
		_, err := buildDraft(draftInput{name: "x", category: "food", expires: "2026-01-05", cycle: "WEEK"}, 3)

		var verr *common.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "cycle", verr.Field)
	})
}
