package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Klingon-tech/seedforge/config"
	"github.com/Klingon-tech/seedforge/internal/log"
	"github.com/Klingon-tech/seedforge/internal/service"
)

// skipConfigLoad marks commands that run before a config file exists.
const skipConfigLoad = "skip-config-load"

// cli carries state shared by all subcommands.
type cli struct {
	flags    config.Flags
	code     string
	password string
	jsonOut  bool
	timing   bool

	cfg *config.Config
	svc *service.Service

	stdin *bufio.Reader
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:           "seedforge",
		Short:         "Deterministic key derivation from a code and a password",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Annotations[skipConfigLoad] != "" {
				c.cfg = config.Default()
				return nil
			}
			f := c.flags
			f.SetLogJSON = cmd.Flags().Changed("log-json")
			cfg, err := config.Load(&f)
			if err != nil {
				return err
			}
			if err := log.Init(cfg.Log.Level, cfg.Log.JSON, cfg.Log.File); err != nil {
				return fmt.Errorf("init logging: %w", err)
			}
			c.cfg = cfg
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&c.flags.Config, "config", "c", "", "config file path (default ~/.seedforge/seedforge.conf)")
	pf.StringVar(&c.flags.KDFProfile, "kdf", "", "Argon2id preset: standard or light")
	pf.Uint32Var(&c.flags.KDFMemory, "kdf-memory", 0, "Argon2id memory in KiB (overrides preset)")
	pf.Uint32Var(&c.flags.KDFIterations, "kdf-iterations", 0, "Argon2id passes (overrides preset)")
	pf.Uint8Var(&c.flags.KDFParallelism, "kdf-parallelism", 0, "Argon2id lanes (overrides preset)")
	pf.StringVar(&c.flags.LogLevel, "log-level", "", "log level (debug, info, warn, error, disabled)")
	pf.StringVar(&c.flags.LogFile, "log-file", "", "also write JSON logs to this file")
	pf.BoolVar(&c.flags.LogJSON, "log-json", false, "write logs as JSON")
	pf.BoolVar(&c.timing, "timing", false, "print how long the derivation took")

	root.AddCommand(
		rawCmd(c),
		wifCmd(c),
		hdCmd(c),
		verifyCmd(c),
		initConfigCmd(c),
	)
	return root
}

// addInputFlags registers --code, --password and --json on a derivation command.
func (c *cli) addInputFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&c.code, "code", "", "provided code (prompted if omitted)")
	cmd.Flags().StringVar(&c.password, "password", "", "password (prompted if omitted)")
	cmd.Flags().BoolVar(&c.jsonOut, "json", false, "print the result as JSON")
}

// service builds the derivation service from the loaded config.
func (c *cli) service() (*service.Service, error) {
	if c.svc != nil {
		return c.svc, nil
	}
	params := c.cfg.KDFParams()
	svc, err := service.NewWithParams(params)
	if err != nil {
		return nil, err
	}
	log.CLI.Debug().Str("kdf", params.String()).Msg("service ready")
	c.svc = svc
	return svc, nil
}

// inputs returns the code and password, prompting for any that were not
// given as flags.
func (c *cli) inputs(cmd *cobra.Command) (string, string, error) {
	code, password := c.code, c.password
	var err error
	if code == "" {
		if code, err = c.readSecret(cmd, "Provided code: "); err != nil {
			return "", "", fmt.Errorf("read code: %w", err)
		}
	}
	if password == "" {
		if password, err = c.readSecret(cmd, "Password: "); err != nil {
			return "", "", fmt.Errorf("read password: %w", err)
		}
	}
	return code, password, nil
}

// readSecret reads one value without echo from a terminal, or one line from
// non-interactive input.
func (c *cli) readSecret(cmd *cobra.Command, prompt string) (string, error) {
	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(cmd.ErrOrStderr(), prompt)
		b, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(cmd.ErrOrStderr()) // newline after hidden input
		if err != nil {
			return "", err
		}
		return string(b), nil
	}

	if c.stdin == nil {
		c.stdin = bufio.NewReader(in)
	}
	line, err := c.stdin.ReadString('\n')
	if err != nil && !(err == io.EOF && line != "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
