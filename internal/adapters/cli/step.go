package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmolina/railplan-go/internal/application/planning/commands"
)

// NewStepCommand creates the step command with subcommands
func NewStepCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "step",
		Short: "Manage individual plan steps",
		Long: `Manage individual plan steps.

Steps are identified by ID; 'railplan plan show' lists them.

Examples:
  railplan step add --type destination --resource coal --level 2 --train t3
  railplan step move --step 7c0b8f2a --to 4
  railplan step reorder --step 7c0b8f2a --direction forward
  railplan step rewind --step 7c0b8f2a
  railplan step fast-forward --step 7c0b8f2a
  railplan step remove --step 7c0b8f2a`,
	}

	cmd.AddCommand(newStepAddCommand())
	cmd.AddCommand(newStepRemoveCommand())
	cmd.AddCommand(newStepMoveCommand())
	cmd.AddCommand(newStepReorderCommand())
	cmd.AddCommand(newStepRewindCommand())
	cmd.AddCommand(newStepFastForwardCommand())

	return cmd
}

// newStepAddCommand creates the step add subcommand
func newStepAddCommand() *cobra.Command {
	var (
		stepType   string
		resourceID string
		level      int
		trainID    string
		orderID    string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a step to a level",
		Long: `Add a step to a level.

Step types:
  factory      - produce the resource via its recipe
  destination  - gather the resource with a train (requires --train)
  delivery     - haul the resource to an order (requires --train and --order)
  submit       - submit the resource against an order (requires --order)`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(func(ctx context.Context, app *App) error {
				result, err := app.Mediator.Send(ctx, &commands.AddStepCommand{
					Type:       stepType,
					ResourceID: resourceID,
					Level:      level,
					TrainID:    trainID,
					OrderID:    orderID,
				})
				if err != nil {
					return err
				}
				response := result.(*commands.AddStepResponse)
				if !response.Added {
					fmt.Printf("Level %d is marked done; step not added.\n", level)
					return nil
				}
				fmt.Printf("✓ Added %s step %s for %s to level %d\n",
					response.Step.Type, shortID(response.Step.ID),
					response.Step.ResourceID, response.Step.LevelID)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&stepType, "type", "t", "", "Step type: factory|destination|delivery|submit")
	cmd.Flags().StringVarP(&resourceID, "resource", "r", "", "Resource ID")
	cmd.Flags().IntVarP(&level, "level", "l", 1, "Target level")
	cmd.Flags().StringVar(&trainID, "train", "", "Train ID (destination and delivery steps)")
	cmd.Flags().StringVar(&orderID, "order", "", "Order ID (delivery and submit steps)")
	cmd.MarkFlagRequired("type")
	cmd.MarkFlagRequired("resource")
	return cmd
}

// newStepRemoveCommand creates the step remove subcommand
func newStepRemoveCommand() *cobra.Command {
	var stepID string

	cmd := &cobra.Command{
		Use:   "remove",
		Short: "Remove a step from the plan",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(func(ctx context.Context, app *App) error {
				result, err := app.Mediator.Send(ctx, &commands.RemoveStepCommand{StepID: stepID})
				if err != nil {
					return err
				}
				response := result.(*commands.RemoveStepResponse)
				if !response.Removed {
					fmt.Printf("Step %s not found; nothing removed.\n", stepID)
					return nil
				}
				fmt.Printf("✓ Removed step %s\n", stepID)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&stepID, "step", "s", "", "Step ID")
	cmd.MarkFlagRequired("step")
	return cmd
}

// newStepMoveCommand creates the step move subcommand
func newStepMoveCommand() *cobra.Command {
	var (
		stepID string
		to     int
	)

	cmd := &cobra.Command{
		Use:   "move",
		Short: "Move a step to another level",
		Long: `Move a step to another level.

A target below 1 inserts a fresh level at the front; a target past the
last level appends one at the end.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(func(ctx context.Context, app *App) error {
				result, err := app.Mediator.Send(ctx, &commands.MoveStepCommand{StepID: stepID, To: to})
				if err != nil {
					return err
				}
				response := result.(*commands.MoveStepResponse)
				if !response.Moved {
					fmt.Printf("Step %s not moved (missing step or same level).\n", stepID)
					return nil
				}
				fmt.Printf("✓ Moved step %s (levels now: %v)\n", stepID, response.LevelNumbers)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&stepID, "step", "s", "", "Step ID")
	cmd.Flags().IntVar(&to, "to", 0, "Target level")
	cmd.MarkFlagRequired("step")
	cmd.MarkFlagRequired("to")
	return cmd
}

// newStepReorderCommand creates the step reorder subcommand
func newStepReorderCommand() *cobra.Command {
	var (
		stepID    string
		direction string
	)

	cmd := &cobra.Command{
		Use:   "reorder",
		Short: "Swap a step with its neighbour within its level",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(func(ctx context.Context, app *App) error {
				result, err := app.Mediator.Send(ctx, &commands.ReorderStepCommand{
					StepID:    stepID,
					Direction: direction,
				})
				if err != nil {
					return err
				}
				response := result.(*commands.ReorderStepResponse)
				if !response.Reordered {
					fmt.Printf("Step %s not reordered (missing step or already at the edge).\n", stepID)
					return nil
				}
				fmt.Printf("✓ Reordered step %s %s\n", stepID, direction)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&stepID, "step", "s", "", "Step ID")
	cmd.Flags().StringVarP(&direction, "direction", "d", "back", "Direction: back|forward")
	cmd.MarkFlagRequired("step")
	return cmd
}

// newStepRewindCommand creates the step rewind subcommand
func newStepRewindCommand() *cobra.Command {
	var stepID string

	cmd := &cobra.Command{
		Use:   "rewind",
		Short: "Move a step one level earlier",
		Long: `Move a step one level earlier. Rewinding from level 1 inserts a
fresh level at the front of the plan.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(func(ctx context.Context, app *App) error {
				result, err := app.Mediator.Send(ctx, &commands.RewindStepCommand{StepID: stepID})
				if err != nil {
					return err
				}
				response := result.(*commands.ShiftStepResponse)
				if !response.Shifted {
					fmt.Printf("Step %s not found; nothing moved.\n", stepID)
					return nil
				}
				fmt.Printf("✓ Step %s is now in level %d\n", stepID, response.NewLevel)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&stepID, "step", "s", "", "Step ID")
	cmd.MarkFlagRequired("step")
	return cmd
}

// newStepFastForwardCommand creates the step fast-forward subcommand
func newStepFastForwardCommand() *cobra.Command {
	var stepID string

	cmd := &cobra.Command{
		Use:   "fast-forward",
		Short: "Move a step one level later",
		Long: `Move a step one level later. Fast-forwarding from the last level
appends a fresh level at the end of the plan.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(func(ctx context.Context, app *App) error {
				result, err := app.Mediator.Send(ctx, &commands.FastForwardStepCommand{StepID: stepID})
				if err != nil {
					return err
				}
				response := result.(*commands.ShiftStepResponse)
				if !response.Shifted {
					fmt.Printf("Step %s not found; nothing moved.\n", stepID)
					return nil
				}
				fmt.Printf("✓ Step %s is now in level %d\n", stepID, response.NewLevel)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&stepID, "step", "s", "", "Step ID")
	cmd.MarkFlagRequired("step")
	return cmd
}
