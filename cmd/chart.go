package cmd

import (
	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/abhisek/kanacards/internal/kana"
	"github.com/abhisek/kanacards/internal/screens/chart"
)

var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Print the kana chart",
	RunE: func(cmd *cobra.Command, args []string) error {
		names, _ := cmd.Flags().GetStringSlice("scripts")
		scripts := make([]kana.Script, 0, len(names))
		for _, n := range names {
			sc, err := kana.ParseScript(n)
			if err != nil {
				return err
			}
			scripts = append(scripts, sc)
		}
		lipgloss.Println(chart.Render(scripts))
		return nil
	},
}

func init() {
	chartCmd.Flags().StringSlice("scripts", []string{"hiragana", "katakana"}, "Scripts to show")
}
