package main

import (
	"io"

	"github.com/Adithya-Monish-Kumar-K/namesearch/pkg/config"
	"github.com/Adithya-Monish-Kumar-K/namesearch/pkg/logger"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	configPath string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "namesearch",
		Short:         "Name search operator tools",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "configs/config.yaml",
		"path to config file; empty uses built-in defaults")

	cmd.AddCommand(
		newEncodeCmd(),
		newTemplatesCmd(opts),
		newIndexCmd(opts),
		newAPIKeyCmd(opts),
		newLoadTestCmd(),
	)
	return cmd
}

// load reads the config and sends text logs to w.
func (o *rootOptions) load(w io.Writer) (*config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, err
	}
	logger.SetupWriter(w, cfg.Logging.Level, "text")
	return cfg, nil
}
