package cli

import (
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"careconnect_backend/internals/features/people/dto"
	"careconnect_backend/internals/features/people/service"
)

func newPersonsCommand(out io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "persons",
		Short: "Inspect stored persons",
	}
	cmd.AddCommand(newPersonsListCommand(out))
	return cmd
}

func newPersonsListCommand(out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print every person with a resource count",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := bootstrap()
			if err != nil {
				return err
			}
			defer rt.close()

			persons, err := service.NewPersonService(rt.db, nil).ListPersons(cmd.Context())
			if err != nil {
				return err
			}
			renderPersons(out, persons)
			return nil
		},
	}
}

func renderPersons(out io.Writer, persons []dto.PersonResponse) {
	title := color.New(color.FgCyan, color.Bold)
	title.Fprintf(out, "Persons (%d)\n", len(persons))
	if len(persons) == 0 {
		color.New(color.FgYellow).Fprintln(out, "no persons stored")
		return
	}

	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"ID", "Name", "Age", "Disability", "Severity", "Conditions", "Resources"})
	table.SetAutoWrapText(false)
	for _, p := range persons {
		table.Append([]string{
			strconv.FormatUint(uint64(p.ID), 10),
			p.Name,
			strconv.Itoa(p.Age),
			p.DisabilityType,
			p.DisabilitySeverity,
			strings.Join(p.MedicalConditions, ", "),
			strconv.Itoa(len(p.Resources)),
		})
	}
	table.Render()
}
