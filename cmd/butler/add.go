package main

import (
	"context"
	"errors"
	"fmt"

	"butler/internal/cli"
	"butler/internal/common"
	"butler/internal/model"

	"github.com/spf13/cobra"
)

// draftInput collects the raw flag values for add/edit before validation.
type draftInput struct {
	name         string
	category     string
	expires      string
	purchaseDate string
	cycle        string
	notes        string
	amount       float64
	remindDays   int
	autoRenew    bool
	hasAmount    bool
	hasAutoRenew bool
}

// buildDraft converts raw input into a validated-shape draft. Field-level
// validation stays in the store; this only parses.
func buildDraft(in draftInput, defaultRemindDays int) (model.Draft, error) {
	draft := model.Draft{
		Name:         in.name,
		ReminderDays: in.remindDays,
		Notes:        in.notes,
	}
	if draft.ReminderDays < 0 {
		draft.ReminderDays = defaultRemindDays
	}

	if in.category != "" {
		category, err := model.ParseCategory(in.category)
		if err != nil {
			return model.Draft{}, common.NewValidationError("category", err.Error())
		}
		draft.Category = category
	}

	if in.expires != "" {
		expiry, err := model.ParseTime(in.expires)
		if err != nil {
			return model.Draft{}, common.NewValidationError("expires", err.Error())
		}
		draft.ExpiryDate = expiry
	}

	if in.hasAmount {
		amount := in.amount
		draft.Amount = &amount
	}

	if in.cycle != "" {
		cycle := model.Cycle(in.cycle)
		if !cycle.Valid() {
			return model.Draft{}, common.NewValidationError("cycle", "must be MONTH, YEAR or ONCE")
		}
		draft.Cycle = &cycle
	}

	if in.purchaseDate != "" {
		purchased, err := model.ParseTime(in.purchaseDate)
		if err != nil {
			return model.Draft{}, common.NewValidationError("purchase-date", err.Error())
		}
		draft.PurchaseDate = &purchased
	}

	if in.hasAutoRenew {
		autoRenew := in.autoRenew
		draft.IsAutoRenew = &autoRenew
	}

	return draft, nil
}

func addCmd() *cobra.Command {
	var (
		in        draftInput
		fromImage string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Track a new item",
		Long: `Create a new tracked item. Name, category and expiry date are required
unless --from-image fills them in; the reminder lead defaults to your settings.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			st, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = st.Close() }()

			in.hasAmount = cmd.Flags().Changed("amount")
			in.hasAutoRenew = cmd.Flags().Changed("auto-renew")

			if fromImage != "" {
				prefillFromImage(ctx, fromImage, &in)
			}

			draft, err := buildDraft(in, st.Settings().ReminderDays)
			if err != nil {
				return err
			}

			item, err := st.Create(ctx, draft)
			if err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Tracking %q (%s), due %s",
				item.Name, item.Category.Label(), item.ExpiryDate.Format("2006-01-02"))))
			fmt.Println(cli.SubtleStyle.Render("  id: " + item.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&in.name, "name", "", "item name (required)")
	cmd.Flags().StringVar(&in.category, "category", "", "category: subscription, food, document, insurance, warranty, medicine, home, other")
	cmd.Flags().StringVar(&in.expires, "expires", "", "expiry or renewal date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&in.remindDays, "remind-days", -1, "reminder lead time in days (default from settings)")
	cmd.Flags().Float64Var(&in.amount, "amount", 0, "amount, for subscriptions")
	cmd.Flags().StringVar(&in.cycle, "cycle", "", "billing cycle for subscriptions: MONTH, YEAR or ONCE")
	cmd.Flags().StringVar(&in.purchaseDate, "purchase-date", "", "purchase date, for warranties (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&in.autoRenew, "auto-renew", false, "item renews automatically")
	cmd.Flags().StringVar(&in.notes, "notes", "", "free-form notes")
	cmd.Flags().StringVar(&fromImage, "from-image", "", "JPEG to analyze for name/category/expiry")

	return cmd
}

// prefillFromImage analyzes the image and fills name/category/expiry where
// the user did not pass them explicitly. Analysis failure degrades to the
// flags that were entered manually.
func prefillFromImage(ctx context.Context, path string, in *draftInput) {
	result, err := analyzeImage(ctx, path)
	if err != nil {
		if errors.Is(err, common.ErrAnalysisFailed) {
			fmt.Println(cli.FormatWarning("Analysis failed, enter details manually"))
			return
		}
		fmt.Println(cli.FormatWarning(err.Error()))
		return
	}

	if in.name == "" {
		in.name = result.Name
	}
	if in.category == "" {
		in.category = string(result.Category)
	}
	if in.expires == "" {
		in.expires = result.ExpiryDate.Format("2006-01-02")
	}
	fmt.Println(cli.FormatSuccess(fmt.Sprintf("%s Detected %q (%s), confidence %.0f%%",
		cli.CameraIcon, result.Name, result.Category.Label(), result.Confidence*100)))
}
