package main

import (
	"fmt"
	"os"

	"butler/internal/backup"
	"butler/internal/cli"
	"butler/internal/common"

	"github.com/spf13/cobra"
)

const defaultBackupFile = "expiry-butler-backup.json"

func exportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export [file]",
		Short: "Back up all items and settings to a JSON file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			st, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = st.Close() }()

			path := defaultBackupFile
			if len(args) == 1 {
				path = args[0]
			}

			data, err := backup.Export(st.Items(), st.Settings())
			if err != nil {
				return err
			}

			if err := os.WriteFile(path, data, 0600); err != nil {
				return common.NewUserError(fmt.Sprintf("could not write backup to %s", path), err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Exported %d items to %s", len(st.Items()), path)))
			return nil
		},
	}
}
