package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmolina/railplan-go/internal/application/planning/commands"
	"github.com/jmolina/railplan-go/internal/application/planning/queries"
)

// NewLevelCommand creates the level command with subcommands
func NewLevelCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "level",
		Short: "Manage planning levels",
		Long: `Manage planning levels.

Examples:
  railplan level insert --before 2
  railplan level remove --level 3
  railplan level done --level 1
  railplan level warnings --level 2`,
	}

	cmd.AddCommand(newLevelInsertCommand())
	cmd.AddCommand(newLevelRemoveCommand())
	cmd.AddCommand(newLevelDoneCommand())
	cmd.AddCommand(newLevelWarningsCommand())

	return cmd
}

// newLevelInsertCommand creates the level insert subcommand
func newLevelInsertCommand() *cobra.Command {
	var before int

	cmd := &cobra.Command{
		Use:   "insert",
		Short: "Insert an empty level before the given number",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(func(ctx context.Context, app *App) error {
				result, err := app.Mediator.Send(ctx, &commands.InsertLevelCommand{Before: before})
				if err != nil {
					return err
				}
				response := result.(*commands.InsertLevelResponse)
				fmt.Printf("✓ Inserted empty level %d (levels now: %v)\n",
					response.InsertedLevel, response.LevelNumbers)
				return nil
			})
		},
	}

	cmd.Flags().IntVarP(&before, "before", "b", 1, "Level number to insert before")
	cmd.MarkFlagRequired("before")
	return cmd
}

// newLevelRemoveCommand creates the level remove subcommand
func newLevelRemoveCommand() *cobra.Command {
	var level int

	cmd := &cobra.Command{
		Use:   "remove",
		Short: "Remove a level and renumber the rest",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(func(ctx context.Context, app *App) error {
				result, err := app.Mediator.Send(ctx, &commands.RemoveLevelCommand{Level: level})
				if err != nil {
					return err
				}
				response := result.(*commands.RemoveLevelResponse)
				if !response.Removed {
					fmt.Printf("Level %d does not exist; nothing removed.\n", level)
					return nil
				}
				fmt.Printf("✓ Removed level %d (levels now: %v)\n", level, response.LevelNumbers)
				for old, new := range response.Mapping {
					if old != new {
						fmt.Printf("  level %d is now level %d\n", old, new)
					}
				}
				return nil
			})
		},
	}

	cmd.Flags().IntVarP(&level, "level", "l", 0, "Level number to remove")
	cmd.MarkFlagRequired("level")
	return cmd
}

// newLevelDoneCommand creates the level done subcommand
func newLevelDoneCommand() *cobra.Command {
	var (
		level int
		undo  bool
	)

	cmd := &cobra.Command{
		Use:   "done",
		Short: "Mark a level done (or not done with --undo)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(func(ctx context.Context, app *App) error {
				result, err := app.Mediator.Send(ctx, &commands.SetLevelDoneCommand{
					Level: level,
					Done:  !undo,
				})
				if err != nil {
					return err
				}
				response := result.(*commands.SetLevelDoneResponse)
				if !response.Updated {
					fmt.Printf("Level %d does not exist.\n", level)
					return nil
				}
				if undo {
					fmt.Printf("✓ Level %d reopened\n", level)
				} else {
					fmt.Printf("✓ Level %d marked done\n", level)
				}
				return nil
			})
		},
	}

	cmd.Flags().IntVarP(&level, "level", "l", 0, "Level number")
	cmd.Flags().BoolVar(&undo, "undo", false, "Mark the level as not done")
	cmd.MarkFlagRequired("level")
	return cmd
}

// newLevelWarningsCommand creates the level warnings subcommand
func newLevelWarningsCommand() *cobra.Command {
	var level int

	cmd := &cobra.Command{
		Use:   "warnings",
		Short: "Show capacity and data-integrity warnings for a level",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(func(ctx context.Context, app *App) error {
				result, err := app.Mediator.Send(ctx, &queries.LevelWarningsQuery{Level: level})
				if err != nil {
					return err
				}
				response := result.(*queries.LevelWarningsResponse)
				if !response.LevelFound {
					fmt.Printf("Level %d does not exist.\n", level)
					return nil
				}

				clean := true
				if response.OverCapacity {
					clean = false
					fmt.Printf("⚠ %d train steps exceed the worker limit of %d\n",
						response.TrainSteps, response.MaxConcurrentWorkers)
				}
				for _, queue := range response.FactoryQueues {
					clean = false
					fmt.Printf("⚠ factory %s has %d steps in this level (queue max %d)\n",
						queue.FactoryName, queue.StepCount, queue.QueueMaxSize)
				}
				for _, warning := range response.Integrity {
					clean = false
					fmt.Printf("⚠ step %s: %s\n", shortID(warning.StepID), warning.Message)
				}
				if clean {
					fmt.Printf("Level %d has no warnings.\n", level)
				}
				return nil
			})
		},
	}

	cmd.Flags().IntVarP(&level, "level", "l", 0, "Level number")
	cmd.MarkFlagRequired("level")
	return cmd
}
