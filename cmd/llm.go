package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/spf13/cobra"

	"github.com/abhisek/kanacards/internal/llm"
	"github.com/abhisek/kanacards/internal/store"
	"github.com/abhisek/kanacards/internal/ui/theme"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect the AI request log",
}

var llmListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent LLM requests",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		purpose, _ := cmd.Flags().GetString("purpose")

		return withEventRepo(cmd, func(ctx context.Context, repo store.EventRepo) error {
			events, err := repo.QueryLLMEvents(ctx, store.QueryOpts{Limit: limit, Purpose: purpose})
			if err != nil {
				return fmt.Errorf("query events: %w", err)
			}
			if len(events) == 0 {
				fmt.Println("No LLM requests recorded.")
				return nil
			}

			t := newReportTable("ID", "Time", "Purpose", "Model", "In", "Out", "Ms", "OK")
			for _, e := range events {
				ok := "✓"
				if !e.Success {
					ok = "✗"
				}
				t.Row(
					strconv.Itoa(e.ID),
					e.Timestamp.Local().Format("2006-01-02 15:04:05"),
					e.Purpose,
					truncate(e.Model, 28),
					strconv.Itoa(e.InputTokens),
					strconv.Itoa(e.OutputTokens),
					strconv.FormatInt(e.LatencyMs, 10),
					ok,
				)
			}
			lipgloss.Println(t.String())
			return nil
		})
	},
}

var llmViewCmd = &cobra.Command{
	Use:   "view <id>",
	Short: "Show the full request and response of one LLM call",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid ID %q: %w", args[0], err)
		}

		return withEventRepo(cmd, func(ctx context.Context, repo store.EventRepo) error {
			e, err := repo.GetLLMEvent(ctx, id)
			if err != nil {
				return fmt.Errorf("get event: %w", err)
			}
			if e == nil {
				return fmt.Errorf("event %d not found", id)
			}

			label := lipgloss.NewStyle().Foreground(theme.TextDim).Width(10)
			field := func(name, value string) {
				lipgloss.Println(label.Render(name) + value)
			}
			field("ID", strconv.Itoa(e.ID))
			field("Time", e.Timestamp.Local().Format("2006-01-02 15:04:05"))
			field("Session", e.SessionID)
			field("Provider", e.Provider)
			field("Model", e.Model)
			field("Purpose", e.Purpose)
			field("Tokens", fmt.Sprintf("%d in / %d out", e.InputTokens, e.OutputTokens))
			field("Latency", fmt.Sprintf("%dms", e.LatencyMs))
			field("Success", strconv.FormatBool(e.Success))
			if e.ErrorMessage != "" {
				field("Error", e.ErrorMessage)
			}

			printSection("REQUEST", e.RequestBody)
			printSection("RESPONSE", e.ResponseBody)
			return nil
		})
	},
}

var llmStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show token usage and estimated cost",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEventRepo(cmd, func(ctx context.Context, repo store.EventRepo) error {
			byPurpose, err := repo.LLMUsageByPurpose(ctx)
			if err != nil {
				return fmt.Errorf("query usage: %w", err)
			}
			if len(byPurpose) == 0 {
				fmt.Println("No LLM usage recorded yet.")
				return nil
			}

			usage := newReportTable("Purpose", "Calls", "Input", "Output", "Total", "Avg Ms")
			var calls, in, out int
			for _, u := range byPurpose {
				usage.Row(u.Purpose, strconv.Itoa(u.Calls), strconv.Itoa(u.InputTokens),
					strconv.Itoa(u.OutputTokens), strconv.Itoa(u.InputTokens+u.OutputTokens),
					strconv.FormatInt(u.AvgLatencyMs, 10))
				calls += u.Calls
				in += u.InputTokens
				out += u.OutputTokens
			}
			usage.Row("TOTAL", strconv.Itoa(calls), strconv.Itoa(in), strconv.Itoa(out), strconv.Itoa(in+out), "")
			lipgloss.Println("Usage by purpose")
			lipgloss.Println(usage.String())

			byModel, err := repo.LLMUsageByModel(ctx)
			if err != nil {
				return fmt.Errorf("query model usage: %w", err)
			}
			if len(byModel) == 0 {
				return nil
			}

			costs := newReportTable("Model", "Calls", "Input", "Output", "Cost")
			var total float64
			var unknown []string
			for _, mu := range byModel {
				cost := "?"
				if mc := llm.LookupCost(mu.Model); mc != nil {
					c := mc.Cost(mu.InputTokens, mu.OutputTokens)
					total += c
					cost = formatCost(c)
				} else {
					unknown = append(unknown, mu.Model)
				}
				costs.Row(truncate(mu.Model, 32), strconv.Itoa(mu.Calls),
					strconv.Itoa(mu.InputTokens), strconv.Itoa(mu.OutputTokens), cost)
			}
			label := "TOTAL"
			if len(unknown) > 0 {
				label = "TOTAL (partial)"
			}
			costs.Row(label, "", "", "", formatCost(total))

			lipgloss.Println()
			lipgloss.Println("Estimated cost (USD)")
			lipgloss.Println(costs.String())
			if len(unknown) > 0 {
				fmt.Printf("\nPricing unavailable for: %s\n", strings.Join(unknown, ", "))
			}
			return nil
		})
	},
}

var llmPruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Delete all but the most recent LLM requests",
	RunE: func(cmd *cobra.Command, args []string) error {
		keep, _ := cmd.Flags().GetInt("keep")
		if keep < 0 {
			return fmt.Errorf("--keep must be non-negative, got %d", keep)
		}

		return withEventRepo(cmd, func(ctx context.Context, repo store.EventRepo) error {
			n, err := repo.Prune(ctx, keep)
			if err != nil {
				return fmt.Errorf("prune events: %w", err)
			}
			fmt.Printf("Deleted %d requests, kept at most %d.\n", n, keep)
			return nil
		})
	},
}

// withEventRepo opens the request log for the duration of fn.
func withEventRepo(cmd *cobra.Command, fn func(context.Context, store.EventRepo) error) error {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer s.Close()

	return fn(cmd.Context(), s.EventRepo())
}

func newReportTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(theme.Border)).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			base := lipgloss.NewStyle().Padding(0, 1)
			if row == table.HeaderRow {
				return base.Foreground(theme.Primary).Bold(true)
			}
			return base
		})
}

func printSection(title, body string) {
	if body == "" {
		body = "(not captured)"
	}
	lipgloss.Println()
	lipgloss.Println(lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(title))
	lipgloss.Println(body)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

func formatCost(usd float64) string {
	if usd < 0.01 {
		return fmt.Sprintf("$%.4f", usd)
	}
	return fmt.Sprintf("$%.2f", usd)
}

func init() {
	llmListCmd.Flags().IntP("limit", "n", 20, "Number of requests to show")
	llmListCmd.Flags().StringP("purpose", "p", "", "Filter by purpose (e.g. mnemonic)")
	llmPruneCmd.Flags().Int("keep", 500, "Number of most recent requests to keep")

	llmCmd.AddCommand(llmListCmd)
	llmCmd.AddCommand(llmViewCmd)
	llmCmd.AddCommand(llmStatsCmd)
	llmCmd.AddCommand(llmPruneCmd)
}
