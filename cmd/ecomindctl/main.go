// Command ecomindctl is the operator CLI: database migrations, development
// access tokens and consent checks.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/ecomind-backend/internal/app"
	"github.com/heartmarshall/ecomind-backend/internal/config"
)

type rootOptions struct {
	configPath string
}

func (o *rootOptions) load() (*config.Config, error) {
	return config.LoadWithPath(o.configPath)
}

func newRootCmd(out io.Writer) *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "ecomindctl",
		Short:         "Operate an EcoMind backend deployment",
		Version:       app.BuildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(out)
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to config.yaml (overrides CONFIG_PATH)")

	root.AddCommand(
		newMigrateCmd(opts),
		newTokenCmd(opts),
		newConsentCmd(opts),
	)
	return root
}

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "ecomindctl: %v\n", err)
		os.Exit(1)
	}
}
