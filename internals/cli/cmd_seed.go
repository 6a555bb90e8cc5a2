package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	database "careconnect_backend/internals/databases"
	"careconnect_backend/internals/seeds"
)

func newSeedCommand(out io.Writer) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load persons and their resources from a JSON file",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := bootstrap()
			if err != nil {
				return err
			}
			defer rt.close()

			if err := database.Migrate(rt.db); err != nil {
				return err
			}
			if err := seeds.RunAllSeeds(cmd.Context(), rt.db, file, rt.log); err != nil {
				return err
			}
			_, err = fmt.Fprintln(out, "seed complete")
			return err
		},
	}

	cmd.Flags().StringVar(&file, "file", seeds.DefaultPersonsFile, "Seed file (JSON array of persons)")
	return cmd
}
