package commands

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"hotline/internal/directory/models"
	"hotline/internal/message"
	"hotline/internal/phone"
	"hotline/internal/routing"
)

type resolveFlags struct {
	county      string
	animal      string
	service     string
	urgency     string
	rabies      bool
	requireOpen bool
	openAt      string
	max         int
	channel     string
	callSID     string
}

func resolveCmd(opts *options) *cobra.Command {
	f := &resolveFlags{}
	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve criteria against the directory and print the referral",
		RunE: func(cmd *cobra.Command, args []string) error {
			criteria, err := f.criteria()
			if err != nil {
				return err
			}
			channel := message.Channel(f.channel)
			if !channel.IsValid() {
				return errors.New("--channel must be voice, sms or chat")
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
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Stage: %s\n", result.Stage)
			for i, c := range result.Contacts {
				text, _ := phone.ForText(c.Phone)
				fmt.Fprintf(out, "%d. %s  %s  [%s]\n", i+1, c.Name, text, openLabel(c, now))
			}

			body, err := message.Render(channel, result.Contacts, message.Options{
				RabiesVector: criteria.RabiesVector,
				Reference:    message.ReferenceNumber(f.callSID),
				Now:          now,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "\n%s\n", body)
			return nil
		},
	}

	cmd.Flags().StringVar(&f.county, "county", "", "county or city the caller is in")
	cmd.Flags().StringVar(&f.animal, "animal", "", "animal type tag (e.g. bats, raptors)")
	cmd.Flags().StringVar(&f.service, "service", "", "service tag (e.g. emergency_wildlife_medical)")
	cmd.Flags().StringVar(&f.urgency, "urgency", "", "emergency or routine")
	cmd.Flags().BoolVar(&f.rabies, "rabies", false, "animal is a rabies vector species")
	cmd.Flags().BoolVar(&f.requireOpen, "open", false, "only contacts open now")
	cmd.Flags().StringVar(&f.openAt, "open-at", "", "only contacts open at this RFC3339 instant")
	cmd.Flags().IntVar(&f.max, "max", 0, "result cap (default 3)")
	cmd.Flags().StringVar(&f.channel, "channel", string(message.ChannelSMS), "render for voice, sms or chat")
	cmd.Flags().StringVar(&f.callSID, "call-sid", "", "call SID used for the reference number")
	return cmd
}

func (f *resolveFlags) criteria() (routing.Criteria, error) {
	c := routing.Criteria{
		County:       f.county,
		AnimalType:   models.AnimalType(f.animal),
		Service:      models.ServiceKind(f.service),
		RequireOpen:  f.requireOpen,
		RabiesVector: f.rabies,
		Urgency:      routing.Urgency(f.urgency),
		MaxResults:   f.max,
	}
	if f.openAt != "" {
		at, err := time.Parse(time.RFC3339, f.openAt)
		if err != nil {
			return routing.Criteria{}, fmt.Errorf("--open-at: %w", err)
		}
		c.OpenAt = &at
	}
	if err := c.Validate(); err != nil {
		return routing.Criteria{}, err
	}
	return c, nil
}

func openLabel(c *models.Contact, now time.Time) string {
	if routing.IsOpen(c, now) {
		return "open"
	}
	if next, ok := routing.NextOpening(c.ParsedSchedule(), now); ok {
		return "closed, opens " + next.Format("Mon 3:04 PM")
	}
	return "closed"
}
