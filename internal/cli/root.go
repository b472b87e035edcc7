// Package cli provides the makeicon command line tool.
package cli

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"liquido-calc/internal/iconconv"
	"liquido-calc/internal/logger"
	"liquido-calc/internal/opencv"
)

// Version is set by the main package at startup
var Version = "dev"

// Opener loads a picture to render into an icon
type Opener func(path string) (iconconv.Source, error)

func openWithOpenCV(path string) (iconconv.Source, error) {
	img, err := opencv.Open(path)
	if err != nil {
		return nil, err
	}
	return img, nil
}

type rootOptions struct {
	verbose bool
	open    Opener
	log     logger.Logger
}

// NewRootCmd creates the makeicon command tree
func NewRootCmd() *cobra.Command {
	return newRootCmd(openWithOpenCV)
}

func newRootCmd(open Opener) *cobra.Command {
	opts := &rootOptions{open: open}

	rootCmd := &cobra.Command{
		Use:   "makeicon",
		Short: "Convert branding images into .ico files",
		Long: `makeicon turns the PNG/JPEG branding pictures into Windows icon files.

The rocket icon brands the calculator window and the packaged executable.
Run it once before packaging.`,
		Version:      Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := zerolog.InfoLevel
			if opts.verbose {
				level = zerolog.DebugLevel
			}
			opts.log = logger.NewZerolog(zerolog.ConsoleWriter{
				Out:        cmd.ErrOrStderr(),
				TimeFormat: "15:04:05",
				NoColor:    true,
			}, level)
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Verbose output (shows debug messages)")

	rootCmd.AddCommand(newConvertCmd(opts))
	rootCmd.AddCommand(newBrandCmd(opts))
	rootCmd.AddCommand(newInspectCmd())

	rootCmd.CompletionOptions.DisableDefaultCmd = true

	return rootCmd
}

// Execute runs the CLI
func Execute() error {
	return NewRootCmd().Execute()
}

// logger returns the configured logger, falling back to stderr when a
// command runs without the root pre-run
func (o *rootOptions) logger() logger.Logger {
	if o.log == nil {
		o.log = logger.NewZerolog(os.Stderr, zerolog.InfoLevel)
	}
	return o.log
}
