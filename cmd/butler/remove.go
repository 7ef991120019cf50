package main

import (
	"errors"
	"fmt"
	"os"

	"butler/internal/cli"
	"butler/internal/common"

	"github.com/spf13/cobra"
)

func removeCmd() *cobra.Command {
	var skipConfirm bool

	cmd := &cobra.Command{
		Use:   "remove <id>",
		Short: "Stop tracking an item",
		Long:  `Delete an item from the store. Asks for confirmation unless --yes is given.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			st, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = st.Close() }()

			item, err := resolveItem(st, args[0])
			if err != nil {
				if errors.Is(err, common.ErrNotFound) {
					// Deleting an absent id is a no-op, not an error.
					fmt.Println(cli.SubtleStyle.Render("Nothing to remove."))
					return nil
				}
				return err
			}

			if !skipConfirm {
				ok, err := cli.Confirm(os.Stdin, os.Stdout,
					fmt.Sprintf("Remove %q (%s)?", item.Name, item.Category.Label()))
				if err != nil {
					return err
				}
				if !ok {
					fmt.Println(cli.SubtleStyle.Render("Cancelled."))
					return nil
				}
			}

			if err := st.Delete(ctx, item.ID); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Removed %q", item.Name)))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&skipConfirm, "yes", "y", false, "skip the confirmation prompt")

	return cmd
}
