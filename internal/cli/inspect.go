package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"liquido-calc/internal/iconconv"
)

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect ICO",
		Short: "List the images stored in an .ico file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			entries, err := iconconv.Decode(f)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s: %d images\n", args[0], len(entries))
			for i, e := range entries {
				format := "bmp"
				if e.IsPNG() {
					format = "png"
				}
				fmt.Fprintf(out, "  %d: %dx%d %s %d bytes\n", i, e.Width, e.Height, format, len(e.Data))
			}
			return nil
		},
	}
}
