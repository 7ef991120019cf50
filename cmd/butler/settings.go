package main

import (
	"fmt"

	"butler/internal/cli"
	"butler/internal/common"

	"github.com/spf13/cobra"
)

func settingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change preferences",
	}

	cmd.AddCommand(settingsShowCmd())
	cmd.AddCommand(settingsSetCmd())

	return cmd
}

func settingsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the current settings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			st, err := openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = st.Close() }()

			settings := st.Settings()
			fmt.Printf("reminder time:  %s\n", settings.ReminderTime)
			fmt.Printf("reminder days:  %d\n", settings.ReminderDays)
			fmt.Printf("currency:       %s\n", settings.Currency)
			return nil
		},
	}
}

func settingsSetCmd() *cobra.Command {
	var (
		reminderTime string
		reminderDays int
		currency     string
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change one or more settings",
		Long:  `Update preferences. The record is replaced wholesale from the current values plus the flags you pass.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			st, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = st.Close() }()

			settings := st.Settings()
			if cmd.Flags().Changed("reminder-time") {
				settings.ReminderTime = reminderTime
			}
			if cmd.Flags().Changed("reminder-days") {
				if reminderDays < 0 {
					return common.NewValidationError("reminder-days", "must not be negative")
				}
				settings.ReminderDays = reminderDays
			}
			if cmd.Flags().Changed("currency") {
				settings.Currency = currency
			}

			if err := st.UpdateSettings(ctx, settings); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess("Settings updated"))
			return nil
		},
	}

	cmd.Flags().StringVar(&reminderTime, "reminder-time", "", "preferred reminder time of day (HH:MM)")
	cmd.Flags().IntVar(&reminderDays, "reminder-days", 0, "default reminder lead time in days")
	cmd.Flags().StringVar(&currency, "currency", "", "currency label for amounts")

	return cmd
}
