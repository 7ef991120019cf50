package main

import (
	"fmt"

	"butler/internal/cli"
	"butler/internal/common"
	"butler/internal/model"

	"github.com/spf13/cobra"
)

func editCmd() *cobra.Command {
	var in draftInput

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Update a tracked item",
		Long: `Apply the provided flags to an existing item. Only flags you pass change;
everything else is kept as-is.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			st, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = st.Close() }()

			item, err := resolveItem(st, args[0])
			if err != nil {
				return err
			}

			patch, err := buildPatch(cmd, in)
			if err != nil {
				return err
			}

			updated, err := st.Update(ctx, item.ID, patch)
			if err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Updated %q, due %s",
				updated.Name, updated.ExpiryDate.Format("2006-01-02"))))
			return nil
		},
	}

	cmd.Flags().StringVar(&in.name, "name", "", "item name")
	cmd.Flags().StringVar(&in.category, "category", "", "category")
	cmd.Flags().StringVar(&in.expires, "expires", "", "expiry or renewal date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&in.remindDays, "remind-days", 0, "reminder lead time in days")
	cmd.Flags().Float64Var(&in.amount, "amount", 0, "amount, for subscriptions")
	cmd.Flags().StringVar(&in.cycle, "cycle", "", "billing cycle: MONTH, YEAR or ONCE")
	cmd.Flags().StringVar(&in.purchaseDate, "purchase-date", "", "purchase date (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&in.autoRenew, "auto-renew", false, "item renews automatically")
	cmd.Flags().StringVar(&in.notes, "notes", "", "free-form notes")

	return cmd
}

// buildPatch turns the flags that were actually set into a patch; untouched
// flags stay out so the store retains the current values.
func buildPatch(cmd *cobra.Command, in draftInput) (model.Patch, error) {
	var patch model.Patch

	if cmd.Flags().Changed("name") {
		patch.Name = &in.name
	}
	if cmd.Flags().Changed("category") {
		category, err := model.ParseCategory(in.category)
		if err != nil {
			return model.Patch{}, common.NewValidationError("category", err.Error())
		}
		patch.Category = &category
	}
	if cmd.Flags().Changed("expires") {
		expiry, err := model.ParseTime(in.expires)
		if err != nil {
			return model.Patch{}, common.NewValidationError("expires", err.Error())
		}
		patch.ExpiryDate = &expiry
	}
	if cmd.Flags().Changed("remind-days") {
		if in.remindDays < 0 {
			return model.Patch{}, common.NewValidationError("remind-days", "must not be negative")
		}
		patch.ReminderDays = &in.remindDays
	}
	if cmd.Flags().Changed("amount") {
		patch.Amount = &in.amount
	}
	if cmd.Flags().Changed("cycle") {
		cycle := model.Cycle(in.cycle)
		if !cycle.Valid() {
			return model.Patch{}, common.NewValidationError("cycle", "must be MONTH, YEAR or ONCE")
		}
		patch.Cycle = &cycle
	}
	if cmd.Flags().Changed("purchase-date") {
		purchased, err := model.ParseTime(in.purchaseDate)
		if err != nil {
			return model.Patch{}, common.NewValidationError("purchase-date", err.Error())
		}
		patch.PurchaseDate = &purchased
	}
	if cmd.Flags().Changed("auto-renew") {
		patch.IsAutoRenew = &in.autoRenew
	}
	if cmd.Flags().Changed("notes") {
		patch.Notes = &in.notes
	}

	return patch, nil
}
