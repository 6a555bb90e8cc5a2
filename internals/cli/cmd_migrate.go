package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	database "careconnect_backend/internals/databases"
)

func newMigrateCommand(out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the persons and resources tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := bootstrap()
			if err != nil {
				return err
			}
			defer rt.close()

			if err := database.Migrate(rt.db); err != nil {
				return err
			}
			_, err = fmt.Fprintln(out, "migration complete")
			return err
		},
	}
}
