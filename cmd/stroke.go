package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/kanacards/internal/strokes"
)

var strokeCmd = &cobra.Command{
	Use:   "stroke <glyph>",
	Short: "Download the stroke order diagram for a character",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		glyph := args[0]
		if glyph == "" {
			return errors.New("glyph is empty")
		}
		out, _ := cmd.Flags().GetString("output")
		baseURL, _ := cmd.Flags().GetString("base-url")

		f := strokes.NewFetcher(baseURL, nil)
		svg, err := f.Fetch(cmd.Context(), glyph)
		if errors.Is(err, strokes.ErrNotFound) {
			return fmt.Errorf("no stroke diagram for %s", glyph)
		}
		if err != nil {
			return fmt.Errorf("fetch stroke diagram: %w", err)
		}

		if out == "" {
			out = fmt.Sprintf("%d.svg", []rune(glyph)[0])
		}
		if err := os.WriteFile(out, svg, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", out, err)
		}
		fmt.Printf("Wrote %s (animation %s)\n", out, strokes.AnimationLength(svg))
		return nil
	},
}

func init() {
	strokeCmd.Flags().StringP("output", "o", "", "Output file (default <codepoint>.svg)")
	strokeCmd.Flags().String("base-url", strokes.DefaultBaseURL, "animCJK base URL")
}
