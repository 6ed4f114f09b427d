package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/Sugatraj/password-generator/internal/clipboard"
	"github.com/Sugatraj/password-generator/internal/crypto"
	"github.com/Sugatraj/password-generator/internal/widget"
)

type options struct {
	length  int
	digits  bool
	symbols bool
	copy    bool
	source  string
}

func newRootCmd() *cobra.Command {
	opts := options{}

	cmd := &cobra.Command{
		Use:   "pwgen",
		Short: "Generate a random password",
		Long: `Generate a random password of 8 to 16 characters drawn from letters,
optionally digits and symbols. Lengths outside that range are clamped.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts)
		},
	}

	cmd.Flags().IntVarP(&opts.length, "length", "l", crypto.DefaultLength, "password length (8-16)")
	cmd.Flags().BoolVarP(&opts.digits, "digits", "d", false, "include digits")
	cmd.Flags().BoolVarP(&opts.symbols, "symbols", "s", false, "include symbols")
	cmd.Flags().BoolVarP(&opts.copy, "copy", "c", false, "copy the password to the clipboard")
	cmd.Flags().StringVar(&opts.source, "source", crypto.SourceMath, "random source: math or crypto")

	return cmd
}

func run(cmd *cobra.Command, opts options) error {
	src, err := crypto.NewSource(opts.source)
	if err != nil {
		return err
	}

	w := widget.New(src)
	w.Apply(crypto.Config{
		Length:         opts.length,
		IncludeDigits:  opts.digits,
		IncludeSymbols: opts.symbols,
	})

	fmt.Fprintln(cmd.OutOrStdout(), w.Password())

	if opts.copy {
		if clipboard.Unsupported() {
			slog.Warn("no clipboard utility available, skipping copy")
			return nil
		}
		if err := w.Copy(clipboard.System{}); err != nil {
			slog.Warn("copy to clipboard failed", "error", err)
		}
	}

	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		slog.Error("pwgen failed", "error", err)
		os.Exit(1)
	}
}
