package main

import (
	"github.com/funhtml-go/funhtml/internal/errors"
	"github.com/spf13/cobra"
)

func (a *app) configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Long: `Print the configuration after defaults and FUNHTML_* environment
overrides have been applied. The output is a valid funhtml.yaml.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := a.cfg.YAML()
			if err != nil {
				return errors.New("F101").Wrap(err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}
