package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"hotline/internal/message"
	"hotline/internal/routing"
)

func smsCmd(opts *options) *cobra.Command {
	f := &resolveFlags{channel: string(message.ChannelSMS)}
	cmd := &cobra.Command{
		Use:   "sms",
		Short: "Compose the follow-up SMS for criteria and estimate its segments",
		RunE: func(cmd *cobra.Command, args []string) error {
			criteria, err := f.criteria()
			if err != nil {
				return err
			}
			dir, err := opts.load()
			if err != nil {
				return err
			}
			now, err := opts.instant()
			if err != nil {
				return err
			}

			result := routing.Resolve(dir, criteria, now)
			body, err := message.Render(message.ChannelSMS, result.Contacts, message.Options{
				RabiesVector: criteria.RabiesVector,
				Reference:    message.ReferenceNumber(f.callSID),
			})
			if err != nil {
				return err
			}
			seg := message.EstimateSegments(body)

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, body)
			fmt.Fprintf(out, "\n%d chars, %d segment(s), %s\n", seg.Length, seg.Count, seg.Encoding)
			return nil
		},
	}

	cmd.Flags().StringVar(&f.county, "county", "", "county or city the caller is in")
	cmd.Flags().StringVar(&f.animal, "animal", "", "animal type tag")
	cmd.Flags().StringVar(&f.service, "service", "", "service tag")
	cmd.Flags().StringVar(&f.urgency, "urgency", "", "emergency or routine")
	cmd.Flags().BoolVar(&f.rabies, "rabies", false, "animal is a rabies vector species")
	cmd.Flags().StringVar(&f.callSID, "call-sid", "", "call SID used for the reference number")
	return cmd
}
