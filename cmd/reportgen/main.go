// Command reportgen renders analytics report images from definition files.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/iafilius/AnalyticsReport/src/definition"
	"github.com/iafilius/AnalyticsReport/src/report"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

func newRootCmd() *cobra.Command {
	var logLevel string
	root := &cobra.Command{
		Use:           "reportgen",
		Short:         "Render analytics report images",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			report.SetLogLevel(logLevel)
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	root.AddCommand(newRenderCmd(), newDemoCmd(), newVersionCmd())
	return root
}

func newRenderCmd() *cobra.Command {
	var defPath, outPath string
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a definition file (yaml, json, toml) to PNG",
		RunE: func(cmd *cobra.Command, args []string) error {
			return RunRenderMode(defPath, outPath)
		},
	}
	cmd.Flags().StringVarP(&defPath, "definition", "d", "report.yaml", "Path to the report definition")
	cmd.Flags().StringVarP(&outPath, "out", "o", "report.png", "Output PNG path")
	return cmd
}

func newDemoCmd() *cobra.Command {
	var fontPath, bgPath, iconPath, outPath, locale string
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Render the built-in sample report",
		RunE: func(cmd *cobra.Command, args []string) error {
			d := definition.Demo(fontPath, bgPath, iconPath, locale)
			if err := d.Validate(); err != nil {
				return err
			}
			return renderDefinition(d, outPath)
		},
	}
	cmd.Flags().StringVar(&fontPath, "font", "", "TrueType font file")
	cmd.Flags().StringVar(&bgPath, "background", "", "Background image")
	cmd.Flags().StringVar(&iconPath, "icon", "", "Optional icon for the first panel")
	cmd.Flags().StringVarP(&outPath, "out", "o", "demo.png", "Output PNG path")
	cmd.Flags().StringVar(&locale, "locale", "en", "Label language (en, ru)")
	_ = cmd.MarkFlagRequired("font")
	_ = cmd.MarkFlagRequired("background")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "reportgen", version)
		},
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
