package cli

import (
	"context"
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jmolina/railplan-go/internal/application/planning/commands"
	"github.com/jmolina/railplan-go/internal/application/planning/queries"
	"github.com/jmolina/railplan-go/internal/domain/planning"
)

// NewPlanCommand creates the plan command with subcommands
func NewPlanCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Inspect and manage the production plan",
		Long: `Inspect and manage the production plan.

Examples:
  railplan plan show
  railplan plan inventory --level 3
  railplan plan log --limit 20
  railplan plan clear`,
	}

	cmd.AddCommand(newPlanShowCommand())
	cmd.AddCommand(newPlanInventoryCommand())
	cmd.AddCommand(newPlanLogCommand())
	cmd.AddCommand(newPlanClearCommand())

	return cmd
}

// newPlanShowCommand creates the plan show subcommand
func newPlanShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the full plan, level by level",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(func(ctx context.Context, app *App) error {
				result, err := app.Mediator.Send(ctx, &queries.GetPlanQuery{})
				if err != nil {
					return err
				}
				response := result.(*queries.GetPlanResponse)
				printPlan(response.Plan)
				return nil
			})
		},
	}
}

// newPlanInventoryCommand creates the plan inventory subcommand
func newPlanInventoryCommand() *cobra.Command {
	var (
		level    int
		resource string
	)

	cmd := &cobra.Command{
		Use:   "inventory",
		Short: "Project cumulative inventory after a level completes",
		Long: `Project cumulative inventory after a level completes.

Replays every level up to and including the given one on top of the
starting inventory from configuration.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(func(ctx context.Context, app *App) error {
				result, err := app.Mediator.Send(ctx, &queries.ProjectInventoryQuery{
					Level:   level,
					Initial: app.Config.Planner.StartingInventory,
				})
				if err != nil {
					return err
				}
				response := result.(*queries.ProjectInventoryResponse)

				if resource != "" {
					fmt.Printf("%s after level %d: %d\n", resource, level, response.Inventory[resource])
					return nil
				}

				fmt.Printf("Inventory after level %d:\n", level)
				w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
				fmt.Fprintln(w, "RESOURCE\tAMOUNT")
				for _, resourceID := range sortedKeys(response.Inventory) {
					fmt.Fprintf(w, "%s\t%d\n", resourceID, response.Inventory[resourceID])
				}
				return w.Flush()
			})
		},
	}

	cmd.Flags().IntVarP(&level, "level", "l", 1, "Level to project through (inclusive)")
	cmd.Flags().StringVarP(&resource, "resource", "r", "", "Show a single resource's projected amount")
	return cmd
}

// newPlanLogCommand creates the plan log subcommand
func newPlanLogCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Show recent plan activity, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(func(ctx context.Context, app *App) error {
				result, err := app.Mediator.Send(ctx, &queries.ActivityLogQuery{Limit: limit})
				if err != nil {
					return err
				}
				response := result.(*queries.ActivityLogResponse)

				if len(response.Entries) == 0 {
					fmt.Println("No plan activity recorded yet.")
					return nil
				}
				for _, entry := range response.Entries {
					fmt.Printf("%s  [%s]  %s\n",
						entry.Timestamp.Format("2006-01-02 15:04:05"), entry.Level, entry.Message)
				}
				return nil
			})
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum entries to show (0 = all)")
	return cmd
}

// newPlanClearCommand creates the plan clear subcommand
func newPlanClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Reset the plan to a single empty level",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(func(ctx context.Context, app *App) error {
				if _, err := app.Mediator.Send(ctx, &commands.ClearPlanCommand{}); err != nil {
					return err
				}
				fmt.Println("✓ Plan cleared")
				return nil
			})
		},
	}
}

// printPlan renders the plan's levels and steps as a table
func printPlan(plan *planning.ProductionPlan) {
	if plan == nil || plan.StepCount() == 0 {
		fmt.Println("Plan is empty.")
		return
	}

	fmt.Printf("Plan %q - %d level(s), %d step(s)\n\n", plan.ID, len(plan.Levels), plan.StepCount())
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "LEVEL\tSTEP\tTYPE\tRESOURCE\tTRAIN\tORDER\tTIME")
	for _, number := range plan.LevelNumbers() {
		level := plan.Levels[number]
		marker := ""
		if level.Done {
			marker = " (done)"
		}
		for _, step := range level.Steps {
			fmt.Fprintf(w, "%d%s\t%s\t%s\t%s\t%s\t%s\t%ds\n",
				number, marker, shortID(step.ID), step.Type, step.ResourceID,
				dash(step.TrainID), dash(step.OrderID), step.TimeRequired)
		}
		if len(level.Steps) == 0 {
			fmt.Fprintf(w, "%d%s\t-\t-\t-\t-\t-\t-\n", number, marker)
		}
	}
	w.Flush()

	fmt.Println("\nNet inventory change per level:")
	for _, number := range plan.LevelNumbers() {
		level := plan.Levels[number]
		fmt.Printf("  level %d: %s\n", number, formatDeltas(level.InventoryChanges))
	}
}

// shortID abbreviates a step UUID for display
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// formatDeltas renders a resource delta map in stable key order
func formatDeltas(deltas map[string]int) string {
	if len(deltas) == 0 {
		return "(none)"
	}
	out := ""
	for i, resourceID := range sortedKeys(deltas) {
		if i > 0 {
			out += ", "
		}
		out += fmt.Sprintf("%s %+d", resourceID, deltas[resourceID])
	}
	return out
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
