// Package cli wires the demo workflows into a cobra command tree. The root
// command runs every example in teaching order; subcommands run a single
// example, and `tui` opens the interactive demo browser.
package cli

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/dmercier/srplab/internal/config"
	"github.com/dmercier/srplab/internal/demo"
	"github.com/dmercier/srplab/internal/logging"
	"github.com/dmercier/srplab/internal/tui"
	"github.com/dmercier/srplab/internal/ui"
)

// rootState carries the configuration resolved by the root command's
// PersistentPreRunE into the subcommands.
type rootState struct {
	cfgFile string
	noColor bool
	verbose bool

	cfg    config.Config
	logger logging.Logger
}

// demos builds a demo runner writing to the command's output stream.
func (st *rootState) demos(cmd *cobra.Command) *demo.Demos {
	return demo.NewDemos(st.cfg, cmd.OutOrStdout(), st.logger)
}

// NewRootCmd constructs the srplab command tree.
func NewRootCmd() *cobra.Command {
	st := &rootState{}

	cmd := &cobra.Command{
		Use:   "srplab",
		Short: "Single-responsibility examples, runnable",
		Long: "srplab runs a set of small worked examples contrasting a " +
			"monolithic design with decomposed single-purpose collaborators: " +
			"a user service, an invoice pipeline, and a kitchen shift.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(st.cfgFile)
			if err != nil {
				return err
			}
			if st.noColor {
				cfg.NoColor = true
			}
			if st.verbose {
				cfg.Verbose = true
			}
			st.cfg = cfg

			ui.InitTheme(cfg.NoColor)
			if cfg.Verbose {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			} else {
				zerolog.SetGlobalLevel(zerolog.InfoLevel)
			}
			st.logger = logging.NewDefaultLogger()
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return st.demos(cmd).RunAll(cmd.Context())
		},
	}

	cmd.PersistentFlags().StringVar(&st.cfgFile, "config", "", "path to a YAML configuration file")
	cmd.PersistentFlags().BoolVar(&st.noColor, "no-color", false, "disable ANSI colors in output")
	cmd.PersistentFlags().BoolVarP(&st.verbose, "verbose", "v", false, "enable debug-level logging")

	cmd.AddCommand(
		newUserCmd(st),
		newInvoiceCmd(st),
		newKitchenCmd(st),
		newTUICmd(st),
	)
	return cmd
}

// newUserCmd runs the user-service demo, monolith first for contrast.
func newUserCmd(st *rootState) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "user",
		Short: "Run the user-service example",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if format != "" {
				st.cfg.User.Format = format
			}
			d := st.demos(cmd)
			if err := d.RunMonolith(cmd.Context()); err != nil {
				return err
			}
			return d.RunUser(cmd.Context())
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "", "detail format: console or json")
	return cmd
}

// newInvoiceCmd runs the invoice-pipeline demo.
func newInvoiceCmd(st *rootState) *cobra.Command {
	var (
		amount      float64
		format      string
		destination string
	)

	cmd := &cobra.Command{
		Use:   "invoice",
		Short: "Run the invoice-pipeline example",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("amount") {
				st.cfg.Invoice.SampleAmount = amount
			}
			if format != "" {
				st.cfg.Invoice.Format = format
			}
			if destination != "" {
				st.cfg.Invoice.Destination = destination
			}
			return st.demos(cmd).RunInvoice(cmd.Context())
		},
	}
	cmd.Flags().Float64VarP(&amount, "amount", "a", 0, "raw invoice amount before surcharge")
	cmd.Flags().StringVarP(&format, "format", "f", "", "render format: HTML, PDF or CSV")
	cmd.Flags().StringVarP(&destination, "to", "t", "", "delivery address for the rendered invoice")
	return cmd
}

// newKitchenCmd runs the kitchen-shift demo.
func newKitchenCmd(st *rootState) *cobra.Command {
	return &cobra.Command{
		Use:   "kitchen",
		Short: "Run the kitchen-shift example",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return st.demos(cmd).RunKitchen(cmd.Context())
		},
	}
}

// newTUICmd opens the interactive demo browser.
func newTUICmd(st *rootState) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Browse and run the examples interactively",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return tui.Run(cmd.Context(), st.cfg, st.logger)
		},
	}
}
