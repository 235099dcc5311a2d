// Package commands implements hotlinectl, an operator tool for checking the
// contact directory and previewing referrals without running the server.
package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"hotline/internal/directory/models"
	"hotline/internal/directory/store"
	"hotline/internal/routing"
)

const defaultDirectoryPath = "configs/contacts.yaml"

// Execute runs the root command against os.Args.
func Execute() error {
	return newRootCmd().Execute()
}

type options struct {
	directoryPath string
	now           string
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:          "hotlinectl",
		Short:        "Inspect the wildlife hotline contact directory",
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVarP(&opts.directoryPath, "directory", "d", defaultDirectoryPath, "contact directory file (YAML or JSON)")
	root.PersistentFlags().StringVar(&opts.now, "now", "", "evaluate as of this RFC3339 instant (default current time)")

	root.AddCommand(resolveCmd(opts), phoneCmd(), smsCmd(opts), checkCmd(opts))
	return root
}

func (o *options) load() (*models.Directory, error) {
	dir, err := store.LoadFile(o.directoryPath, time.Now())
	if err != nil {
		return nil, err
	}
	return dir, nil
}

func (o *options) instant() (time.Time, error) {
	if o.now == "" {
		return time.Now().In(routing.Pacific()), nil
	}
	t, err := time.Parse(time.RFC3339, o.now)
	if err != nil {
		return time.Time{}, fmt.Errorf("--now: %w", err)
	}
	return t.In(routing.Pacific()), nil
}
