package cli

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"liquido-calc/internal/iconconv"
)

func newConvertCmd(opts *rootOptions) *cobra.Command {
	var sizes []int

	cmd := &cobra.Command{
		Use:   "convert SRC [DST]",
		Short: "Convert one PNG/JPEG image into an .ico file",
		Long: `Convert one PNG/JPEG image into an .ico file.

DST defaults to SRC with the extension replaced by .ico. Non-square images
are centred on a transparent square.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			src := args[0]
			dst := iconPath(src)
			if len(args) == 2 {
				dst = args[1]
			}

			written, err := convertFile(opts, src, dst, sizes)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s %s\n", src, dst, formatSizes(written))
			return nil
		},
	}

	cmd.Flags().IntSliceVarP(&sizes, "size", "s", nil, "Icon edge in pixels, repeatable (default 16,24,32,48,64,128,256)")

	return cmd
}

// convertFile renders src into dst. dst is only replaced once the whole
// icon has been encoded.
func convertFile(opts *rootOptions, src, dst string, sizes []int) ([]int, error) {
	log := opts.logger()

	source, err := opts.open(src)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", src, err)
	}
	defer source.Close()

	var buf bytes.Buffer
	written, err := iconconv.Convert(source, sizes, &buf)
	if err != nil {
		return nil, fmt.Errorf("convert %s: %w", src, err)
	}

	if dir := filepath.Dir(dst); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create output directory: %w", err)
		}
	}
	if err := os.WriteFile(dst, buf.Bytes(), 0o644); err != nil {
		return nil, fmt.Errorf("write %s: %w", dst, err)
	}

	log.Debug("Convert", "icon written", map[string]interface{}{
		"source": src,
		"target": dst,
		"sizes":  written,
		"bytes":  buf.Len(),
	})
	return written, nil
}

func newBrandCmd(opts *rootOptions) *cobra.Command {
	var (
		logo   string
		rocket string
		outDir string
		sizes  []int
	)

	cmd := &cobra.Command{
		Use:   "brand",
		Short: "Convert the logo and rocket images used for branding",
		Long: `Convert the logo and rocket images into logo.ico and rocket.ico.

A missing picture is reported and skipped; the command fails only when no
icon could be produced.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := opts.logger()

			jobs := []struct{ src, name string }{
				{logo, "logo.ico"},
				{rocket, "rocket.ico"},
			}

			converted := 0
			for _, job := range jobs {
				dst := filepath.Join(outDir, job.name)
				written, err := convertFile(opts, job.src, dst, sizes)
				if err != nil {
					log.Error("Brand", "icon skipped", err, map[string]interface{}{
						"source": job.src,
					})
					continue
				}
				converted++
				fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s %s\n", job.src, dst, formatSizes(written))
			}

			if converted == 0 {
				return errors.New("no branding image could be converted")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&logo, "logo", filepath.Join("assets", "logo.png"), "Logo image")
	cmd.Flags().StringVar(&rocket, "rocket", filepath.Join("assets", "rocket.png"), "Rocket image for the window and executable icon")
	cmd.Flags().StringVarP(&outDir, "out", "o", "assets", "Output directory")
	cmd.Flags().IntSliceVarP(&sizes, "size", "s", nil, "Icon edge in pixels, repeatable")

	return cmd
}

func iconPath(src string) string {
	return strings.TrimSuffix(src, filepath.Ext(src)) + ".ico"
}

func formatSizes(sizes []int) string {
	parts := make([]string, len(sizes))
	for i, s := range sizes {
		parts[i] = fmt.Sprintf("%d", s)
	}
	return "[" + strings.Join(parts, ",") + "]"
}
