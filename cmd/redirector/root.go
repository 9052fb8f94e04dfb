package main

import (
	"io"
	"log"
	"strings"

	"github.com/spf13/cobra"

	"github.com/agentflare-ai/go-docsite/internal/config"
	"github.com/agentflare-ai/go-docsite/internal/web"
)

const rootLongDesc = `
redirector answers every request with a redirect to the externally hosted
documentation site. The root path forwards to the documentation home; any
other path is appended to the external base URL with every literal
occurrence of "reference" replaced by "api". Paths are not validated here;
the external host owns 404 handling.
`

type serveOptions struct {
	configPath string
	listen     string
	docsURL    string
}

func run(argv []string, stdout io.Writer) error {
	cmd := newRootCmd(stdout)
	cmd.SetArgs(argv)
	return cmd.Execute()
}

func newRootCmd(stdout io.Writer) *cobra.Command {
	var opts serveOptions
	cmd := &cobra.Command{
		Use:           "redirector",
		Short:         "Redirect all traffic to the external documentation host",
		Long:          strings.TrimSpace(rootLongDesc),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.DisableAutoGenTag = true
	cmd.Version = Version
	cmd.SetOut(stdout)
	cmd.SetErr(io.Discard)

	flags := cmd.Flags()
	flags.StringVar(&opts.configPath, "config", "", "path to YAML config file")
	flags.StringVar(&opts.listen, "listen", "", "listen address (overrides config)")
	flags.StringVar(&opts.docsURL, "docs-url", "", "external documentation base URL (overrides config)")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := buildConfig(cmd, opts)
		if err != nil {
			return err
		}
		srv := web.NewRedirector(cfg)
		log.Printf("[redirector] forwarding to %s, listening on %s", cfg.Docs.BaseURL, cfg.Listen)
		return srv.Run()
	}
	return cmd
}

func buildConfig(cmd *cobra.Command, opts serveOptions) (*config.Config, error) {
	cfg := config.Default()
	if opts.configPath != "" {
		loaded, err := config.Load(opts.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if cmd.Flags().Changed("listen") {
		cfg.Listen = opts.listen
	}
	if cmd.Flags().Changed("docs-url") {
		cfg.Docs.BaseURL = opts.docsURL
	}
	return cfg, nil
}
