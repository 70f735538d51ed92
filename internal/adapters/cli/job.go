package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmolina/railplan-go/internal/application/planning/commands"
)

// NewJobCommand creates the job command with subcommands
func NewJobCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "job",
		Short: "Synthesize production steps for resource requirements",
		Long: `Synthesize production steps for resource requirements.

Given a resource and amount, the planner picks the best open slot: a
gathering destination with a free train slot at the target level, a
factory recipe, or an earlier level when the target is saturated.

Examples:
  railplan job create --resource coal --amount 30 --level 2
  railplan job create --resource steel --amount 80 --level 4`,
	}

	cmd.AddCommand(newJobCreateCommand())

	return cmd
}

// newJobCreateCommand creates the job create subcommand
func newJobCreateCommand() *cobra.Command {
	var (
		resourceID string
		amount     int
		level      int
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a production step for a resource requirement",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(func(ctx context.Context, app *App) error {
				result, err := app.Mediator.Send(ctx, &commands.CreateResourceJobCommand{
					ResourceID: resourceID,
					Amount:     amount,
					Level:      level,
				})
				if err != nil {
					return err
				}
				response := result.(*commands.CreateResourceJobResponse)

				step := response.Step
				fmt.Printf("✓ Created %s step %s for %s in level %d\n",
					step.Type, shortID(step.ID), step.ResourceID, step.LevelID)
				if step.TrainID != "" {
					fmt.Printf("  assigned train: %s\n", step.TrainID)
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&resourceID, "resource", "r", "", "Resource to produce")
	cmd.Flags().IntVarP(&amount, "amount", "a", 0, "Amount needed")
	cmd.Flags().IntVarP(&level, "level", "l", 1, "Level the resource must be ready by")
	cmd.MarkFlagRequired("resource")
	cmd.MarkFlagRequired("amount")
	return cmd
}
