package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"hotline/internal/phone"
)

func phoneCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "phone <number>...",
		Short: "Show how numbers are rendered for text, speech and E.164",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, raw := range args {
				text, textOK := phone.ForText(raw)
				speech, _ := phone.ForSpeech(raw)
				fmt.Fprintf(out, "%s\n  text:   %s\n  speech: %s\n", raw, text, speech)
				if e164, err := phone.NormalizeE164(raw); err == nil {
					fmt.Fprintf(out, "  e164:   %s\n", e164)
				} else if textOK {
					fmt.Fprintf(out, "  e164:   not dialable (%v)\n", err)
				}
			}
			return nil
		},
	}
	return cmd
}
