// Package cli implements vaultctl, the command-line front end for the DataVault360 API
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"datavault360/internal/client"
	"datavault360/pkg/logger"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// app is shared by every subcommand; it is filled in PersistentPreRunE
type app struct {
	cfg    *Config
	log    *zap.Logger
	client *client.Client
	stdin  *bufio.Reader
}

func NewRootCommand() *cobra.Command {
	a := &app{}
	v := viper.New()
	var cfgFile string

	root := &cobra.Command{
		Use:           "vaultctl",
		Short:         "DataVault360 hospital records client",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd, v, cfgFile)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default $HOME/.vaultctl.yaml)")
	flags.String("api-url", "", "API base URL, e.g. http://localhost:8080/api")
	flags.String("session-file", "", "where the login session is kept")
	flags.Duration("timeout", 0, "request timeout")
	_ = v.BindPFlag("API_URL", flags.Lookup("api-url"))
	_ = v.BindPFlag("SESSION_FILE", flags.Lookup("session-file"))
	_ = v.BindPFlag("TIMEOUT", flags.Lookup("timeout"))

	root.AddCommand(
		loginCmd(a),
		logoutCmd(a),
		whoamiCmd(a),
		openCmd(a),
		inviteCmd(a),
		accountsCmd(a),
		roomsCmd(a),
		labTestsCmd(a),
		visitsCmd(a),
		analyticsCmd(a),
	)
	return root
}

func (a *app) init(cmd *cobra.Command, v *viper.Viper, cfgFile string) error {
	cfg, err := LoadConfig(v, cfgFile)
	if err != nil {
		return err
	}
	log, err := logger.New(cfg.LogLevel, cfg.LogFormat, "vaultctl")
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}

	c := client.New(cfg.APIURL, client.NewFileStore(cfg.SessionFile), log)
	if cfg.Timeout > 0 {
		c.API.SetTimeout(cfg.Timeout)
	}
	c.LabTests = client.NewLabTests(c.API, cfg.FanOut, log)

	a.cfg, a.log, a.client = cfg, log, c
	a.stdin = bufio.NewReader(cmd.InOrStdin())
	log.Debug("Client ready", zap.String("api_url", cfg.APIURL), zap.String("session_file", cfg.SessionFile))
	return nil
}

// prompt reads one line from stdin after printing label to stderr
func (a *app) prompt(cmd *cobra.Command, label string) (string, error) {
	fmt.Fprint(cmd.ErrOrStderr(), label)
	line, err := a.stdin.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", fmt.Errorf("read %s: %w", strings.TrimSuffix(strings.TrimSpace(label), ":"), err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// confirm asks a yes/no question; anything but y or yes is a no
func (a *app) confirm(cmd *cobra.Command, question string) bool {
	answer, err := a.prompt(cmd, question+" [y/N]: ")
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}

// ctx returns the command context so Ctrl-C aborts in-flight requests
func ctx(cmd *cobra.Command) context.Context {
	if c := cmd.Context(); c != nil {
		return c
	}
	return context.Background()
}
