package main

import (
	"fmt"
	"os"

	"butler/internal/backup"
	"butler/internal/cli"
	"butler/internal/common"

	"github.com/spf13/cobra"
)

func importCmd() *cobra.Command {
	var skipConfirm bool

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Restore items and settings from a backup file",
		Long: `Replace the entire store with the contents of a backup document. The
document must carry an items array; settings are restored when present. The
current state is untouched if the file does not parse.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			data, err := os.ReadFile(args[0])
			if err != nil {
				return common.NewUserError(fmt.Sprintf("could not read backup %s", args[0]), err)
			}

			doc, err := backup.Parse(data)
			if err != nil {
				return err
			}

			st, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = st.Close() }()

			if !skipConfirm {
				ok, err := cli.Confirm(os.Stdin, os.Stdout,
					fmt.Sprintf("Replace %d tracked items with %d from %s?",
						len(st.Items()), len(doc.Items), args[0]))
				if err != nil {
					return err
				}
				if !ok {
					fmt.Println(cli.SubtleStyle.Render("Cancelled."))
					return nil
				}
			}

			if err := st.ReplaceAll(ctx, doc.Items, doc.Settings); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Imported %d items", len(doc.Items))))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&skipConfirm, "yes", "y", false, "skip the confirmation prompt")

	return cmd
}
