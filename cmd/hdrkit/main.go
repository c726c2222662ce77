// Command hdrkit splits header values and resolves header names.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ghettovoice/hdrkit/header"
	"github.com/ghettovoice/hdrkit/internal/config"
	"github.com/ghettovoice/hdrkit/internal/log"
	"github.com/ghettovoice/hdrkit/tokenizer"
)

func main() {
	if err := cmdRoot().Execute(); err != nil {
		os.Exit(1)
	}
}

// env is filled by the root command before any subcommand runs.
type env struct {
	logger *slog.Logger
	root   *header.Type
}

func cmdRoot() *cobra.Command {
	e := &env{logger: log.Noop, root: header.Root}

	var configFile string
	var debug, devLog bool
	addFlags := func(cmd *cobra.Command) {
		cmd.PersistentFlags().StringVarP(&configFile, "config", "c", configFile, "load configuration from file")
		cmd.PersistentFlags().BoolVar(&debug, "debug", debug, "log debugging information")
		cmd.PersistentFlags().BoolVar(&devLog, "dev-log", devLog, "log with the developer handler")
	}
	var cmd = &cobra.Command{
		Use:   "hdrkit",
		Short: "Header value tokenizer and name resolver",
		Long:  `Split structured header values, resolve header names and parse header blocks`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Default()
			if configFile != "" {
				var err error
				if cfg, err = config.Load(configFile); err != nil {
					return err
				}
			}

			level := cfg.Level()
			if debug {
				level = slog.LevelDebug
			}
			if devLog || cfg.Log.Format == config.FormatDev {
				e.logger = log.NewDev(cmd.ErrOrStderr(), level)
			} else {
				e.logger = log.NewConsole(cmd.ErrOrStderr(), level)
			}

			if len(cfg.Headers) > 0 {
				e.root = header.NewBuiltinRoot()
				if err := cfg.Extend(e.root); err != nil {
					return err
				}
			}
			e.logger.Debug("configuration loaded", "file", configFile, "config", log.FmtValue(cfg, false))
			return nil
		},
	}
	addFlags(cmd)

	cmd.AddCommand(cmdSplit(e))
	cmd.AddCommand(cmdName())
	cmd.AddCommand(cmdResolve(e))
	cmd.AddCommand(cmdPrettify())
	cmd.AddCommand(cmdParse(e))
	cmd.AddCommand(cmdGraph())
	return cmd
}

func cmdSplit(e *env) *cobra.Command {
	delim := ";"
	var cmd = &cobra.Command{
		Use:          "split <value>",
		Short:        "split a header value into fields, one per line",
		SilenceUsage: true,
		Args:         cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fields, err := tokenizer.SplitString(args[0], delim)
			if err != nil {
				return err
			}
			e.logger.Debug("value split", "value", args[0], "delim", delim, "fields", fields)
			for _, f := range fields {
				fmt.Fprintln(cmd.OutOrStdout(), f)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&delim, "delim", "d", delim, "field delimiter")
	return cmd
}

func cmdName() *cobra.Command {
	return &cobra.Command{
		Use:          "name <type-id>",
		Short:        "print the wire name derived from a type identifier",
		SilenceUsage: true,
		Args:         cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), header.IDToName(args[0]))
		},
	}
}

func cmdResolve(e *env) *cobra.Command {
	return &cobra.Command{
		Use:          "resolve <wire-name>",
		Short:        "find the header type matching a wire name",
		SilenceUsage: true,
		Args:         cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			typ, err := header.NameToType(args[0], e.root)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", typ.ID(), typ.Kind(), typ.Name())
			return nil
		},
	}
}

func cmdPrettify() *cobra.Command {
	return &cobra.Command{
		Use:          "prettify <name>",
		Short:        "print a header name in canonical capitalization",
		SilenceUsage: true,
		Args:         cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), header.Prettify(args[0]))
		},
	}
}

func cmdParse(e *env) *cobra.Command {
	var render bool
	var cmd = &cobra.Command{
		Use:          "parse [file|-]",
		Short:        "parse a header block and print it as JSON",
		SilenceUsage: true,
		Args:         cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				raw []byte
				err error
			)
			if len(args) == 0 || args[0] == "-" {
				raw, err = io.ReadAll(cmd.InOrStdin())
			} else {
				raw, err = os.ReadFile(args[0])
			}
			if err != nil {
				return err
			}

			hs, err := header.Parse(string(raw), header.WithRoot(e.root), header.WithLogger(e.logger))
			if err != nil {
				return err
			}
			e.logger.Debug("header block parsed", "headers", len(hs), "names", hs.Names())

			if render {
				_, err = hs.RenderTo(cmd.OutOrStdout())
				return err
			}

			data, err := header.ToJSON(hs)
			if err != nil {
				return err
			}
			var buf bytes.Buffer
			if err := json.Indent(&buf, data, "", "  "); err != nil {
				return err
			}
			buf.WriteByte('\n')
			_, err = buf.WriteTo(cmd.OutOrStdout())
			return err
		},
	}
	cmd.Flags().BoolVar(&render, "render", render, "print headers in wire form instead of JSON")
	return cmd
}

func cmdGraph() *cobra.Command {
	return &cobra.Command{
		Use:          "graph",
		Short:        "print the tokenizer state machine in DOT format",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), tokenizer.Machine().ToGraph())
		},
	}
}
