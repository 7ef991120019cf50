package main

import (
	"testing"

	"butler/internal/common"
	"butler/internal/model"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newPatchCommand mirrors the edit command's flag set over a local input.
func newPatchCommand(in *draftInput) *cobra.Command {
	cmd := &cobra.Command{Use: "edit"}
	cmd.Flags().StringVar(&in.name, "name", "", "")
	cmd.Flags().StringVar(&in.category, "category", "", "")
	cmd.Flags().StringVar(&in.expires, "expires", "", "")
	cmd.Flags().IntVar(&in.remindDays, "remind-days", 0, "")
	cmd.Flags().Float64Var(&in.amount, "amount", 0, "")
	cmd.Flags().StringVar(&in.cycle, "cycle", "", "")
	cmd.Flags().StringVar(&in.purchaseDate, "purchase-date", "", "")
	cmd.Flags().BoolVar(&in.autoRenew, "auto-renew", false, "")
	cmd.Flags().StringVar(&in.notes, "notes", "", "")
	return cmd
}

func TestBuildPatch(t *testing.T) {
	t.Run("only changed flags enter the patch", func(t *testing.T) {
		var in draftInput
		cmd := newPatchCommand(&in)
		require.NoError(t, cmd.Flags().Set("name", "Oat milk"))
		require.NoError(t, cmd.Flags().Set("remind-days", "5"))

		patch, err := buildPatch(cmd, in)
		require.NoError(t, err)

		require.NotNil(t, patch.Name)
		assert.Equal(t, "Oat milk", *patch.Name)
		require.NotNil(t, patch.ReminderDays)
		assert.Equal(t, 5, *patch.ReminderDays)
		assert.Nil(t, patch.Category)
		assert.Nil(t, patch.ExpiryDate)
		assert.Nil(t, patch.Amount)
		assert.Nil(t, patch.Notes)
	})

	t.Run("no flags produce an empty patch", func(t *testing.T) {
		var in draftInput
		patch, err := buildPatch(newPatchCommand(&in), in)
		require.NoError(t, err)
		assert.Equal(t, model.Patch{}, patch)
	})

	t.Run("category and cycle parse", func(t *testing.T) {
		var in draftInput
		cmd := newPatchCommand(&in)
		require.NoError(t, cmd.Flags().Set("category", "Subscription"))
		require.NoError(t, cmd.Flags().Set("cycle", "MONTH"))

		patch, err := buildPatch(cmd, in)
		require.NoError(t, err)
		require.NotNil(t, patch.Category)
		assert.Equal(t, model.CategorySubscription, *patch.Category)
		require.NotNil(t, patch.Cycle)
		assert.Equal(t, model.CycleMonth, *patch.Cycle)
	})

	t.Run("bad category rejected", func(t *testing.T) {
		var in draftInput
		cmd := newPatchCommand(&in)
		require.NoError(t, cmd.Flags().Set("category", "gadgets"))

		_, err := buildPatch(cmd, in)
		var verr *common.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "category", verr.Field)
	})

	t.Run("negative remind-days rejected", func(t *testing.T) {
		var in draftInput
		cmd := newPatchCommand(&in)
		require.NoError(t, cmd.Flags().Set("remind-days", "-2"))

		_, err := buildPatch(cmd, in)
		var verr *common.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "remind-days", verr.Field)
	})
}
