package main

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/Klingon-tech/seedforge/config"
	"github.com/Klingon-tech/seedforge/internal/log"
	"github.com/Klingon-tech/seedforge/internal/service"
)

func rawCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "raw",
		Short: "Print the stretched secret as 64 hex characters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.derive(cmd, "raw", func(svc *service.Service, code, password string) (any, error) {
				secret, err := svc.DeriveRawSecret(code, password)
				if err != nil {
					return nil, err
				}
				return rawOutput{RawSecret: secret}, nil
			})
		},
	}
	c.addInputFlags(cmd)
	return cmd
}

func wifCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wif",
		Short: "Print a compressed mainnet Bitcoin private key in WIF",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.derive(cmd, "wif", func(svc *service.Service, code, password string) (any, error) {
				wif, err := svc.DeriveBitcoinWIF(code, password)
				if err != nil {
					return nil, err
				}
				return wifOutput{WIF: wif}, nil
			})
		},
	}
	c.addInputFlags(cmd)
	return cmd
}

func hdCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hd",
		Short: "Print the BIP-32 master key and its 12-word mnemonic",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.derive(cmd, "hd", func(svc *service.Service, code, password string) (any, error) {
				w, err := svc.DeriveHDWallet(code, password)
				if err != nil {
					return nil, err
				}
				return hdOutput(w), nil
			})
		},
	}
	c.addInputFlags(cmd)
	return cmd
}

func verifyCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Derive every output once and check that each decodes back",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var report *service.Report
			err := c.derive(cmd, "verify", func(svc *service.Service, code, password string) (any, error) {
				r, err := svc.Verify(code, password)
				if err != nil {
					return nil, err
				}
				report = r
				return verifyOutput{r}, nil
			})
			if err != nil {
				return err
			}
			if !report.OK() {
				return fmt.Errorf("verification failed")
			}
			return nil
		},
	}
	c.addInputFlags(cmd)
	return cmd
}

func initConfigCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:         "init-config",
		Short:       "Write a default config file",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{skipConfigLoad: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			path := c.flags.Config
			if path == "" {
				path = c.cfg.ConfigFile()
			}
			if err := config.WriteDefaultConfig(path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}
}

// printer renders a command result as text.
type printer interface {
	print(w io.Writer)
}

// derive reads inputs, runs fn against the service and prints the result.
func (c *cli) derive(cmd *cobra.Command, op string, fn func(*service.Service, string, string) (any, error)) error {
	svc, err := c.service()
	if err != nil {
		return err
	}
	code, password, err := c.inputs(cmd)
	if err != nil {
		return err
	}

	done := log.Benchmark(log.CLI, op)
	start := time.Now()
	result, err := fn(svc, code, password)
	elapsed := time.Since(start)
	done()
	if err != nil {
		return err
	}
	if c.timing {
		fmt.Fprintf(cmd.ErrOrStderr(), "Derived in %s\n", elapsed.Round(time.Millisecond))
	}

	out := cmd.OutOrStdout()
	if c.jsonOut {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}
	result.(printer).print(out)
	return nil
}

type rawOutput struct {
	RawSecret string `json:"raw_secret"`
}

func (o rawOutput) print(w io.Writer) {
	fmt.Fprintln(w, o.RawSecret)
}

type wifOutput struct {
	WIF string `json:"wif"`
}

func (o wifOutput) print(w io.Writer) {
	fmt.Fprintln(w, o.WIF)
}

type hdOutput service.WalletResult

func (o hdOutput) print(w io.Writer) {
	fmt.Fprintf(w, "xprv:     %s\n", o.XPrv)
	fmt.Fprintf(w, "mnemonic: %s\n", o.Mnemonic)
}

type verifyOutput struct {
	*service.Report
}

func (o verifyOutput) print(w io.Writer) {
	r := o.Report
	fmt.Fprintf(w, "Raw secret:      %s\n", r.RawSecret)
	fmt.Fprintf(w, "WIF:             %s\n", r.WIF)
	fmt.Fprintf(w, "Public key:      %s\n", r.PublicKey)
	fmt.Fprintf(w, "Key fingerprint: %s\n", r.KeyFingerprint)
	fmt.Fprintf(w, "xprv:            %s\n", r.XPrv)
	fmt.Fprintf(w, "Mnemonic:        %s\n", r.Mnemonic)
	fmt.Fprintln(w)
	for _, chk := range r.Checks {
		status := "ok"
		if !chk.OK {
			status = "FAIL"
		}
		if chk.Detail != "" {
			fmt.Fprintf(w, "  [%s] %s: %s\n", status, chk.Name, chk.Detail)
		} else {
			fmt.Fprintf(w, "  [%s] %s\n", status, chk.Name)
		}
	}
}
