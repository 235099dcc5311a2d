package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"hotline/internal/directory/models"
	"hotline/internal/phone"
)

func checkCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Load the directory and report how each contact's hours and phone parse",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := opts.load()
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tPHONE\tSCHEDULE\tHOURS")
			problems, unparsed := 0, 0
			for _, c := range dir.Contacts() {
				text, ok := phone.ForText(c.Phone)
				if !ok {
					text = "INVALID " + c.Phone
					problems++
				}
				sched := c.ParsedSchedule()
				parsed := sched.String()
				if sched.Kind == models.ScheduleUnparsed {
					parsed = "UNPARSED"
					unparsed++
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", c.Name, text, parsed, c.Hours)
			}
			if err := w.Flush(); err != nil {
				return err
			}
			// Unparsed hours are legal: the contact is treated as closed.
			fmt.Fprintf(cmd.OutOrStdout(), "\n%d contacts from %s, %d invalid phone(s), %d unparsed schedule(s)\n",
				dir.Len(), dir.Source(), problems, unparsed)
			if problems > 0 {
				return fmt.Errorf("%d contact(s) have an invalid phone", problems)
			}
			return nil
		},
	}
	return cmd
}
