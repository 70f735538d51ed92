package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	catalogCommands "github.com/jmolina/railplan-go/internal/application/catalog/commands"
	catalogQueries "github.com/jmolina/railplan-go/internal/application/catalog/queries"
	"github.com/jmolina/railplan-go/internal/domain/catalog"
)

// NewOrderCommand creates the order command with subcommands
func NewOrderCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "order",
		Short: "Manage orders and delivery progress",
		Long: `Manage orders and delivery progress.

Examples:
  railplan order list
  railplan order add --id bridge --type BUILDING --resource coal=30 --resource steel=80
  railplan order deliver --order bridge --resource coal --amount 30
  railplan order delete --order bridge`,
	}

	cmd.AddCommand(newOrderListCommand())
	cmd.AddCommand(newOrderAddCommand())
	cmd.AddCommand(newOrderDeliverCommand())
	cmd.AddCommand(newOrderDeleteCommand())

	return cmd
}

// newOrderListCommand creates the order list subcommand
func newOrderListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List orders and their delivery progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(func(ctx context.Context, app *App) error {
				result, err := app.Mediator.Send(ctx, &catalogQueries.GetCatalogsQuery{})
				if err != nil {
					return err
				}
				response := result.(*catalogQueries.GetCatalogsResponse)

				if len(response.Catalogs.Orders) == 0 {
					fmt.Println("No orders.")
					return nil
				}

				w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
				fmt.Fprintln(w, "ORDER\tTYPE\tNAME\tRESOURCE\tDELIVERED\tSTATUS")
				for _, order := range response.Catalogs.Orders {
					for i, line := range order.Resources {
						orderCol, typeCol, nameCol := order.ID, string(order.Type), order.Name
						if i > 0 {
							orderCol, typeCol, nameCol = "", "", ""
						}
						status := "open"
						if line.IsSatisfied() {
							status = "satisfied"
						}
						fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d/%d\t%s\n",
							orderCol, typeCol, nameCol, line.ResourceID,
							line.Delivered, line.Amount, status)
					}
				}
				return w.Flush()
			})
		},
	}
}

// newOrderAddCommand creates the order add subcommand
func newOrderAddCommand() *cobra.Command {
	var (
		id         string
		name       string
		orderType  string
		resources  []string
		travelTime int
		classes    string
		countries  string
		expiration int
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create or update an order",
		Long: `Create or update an order.

Each --resource flag adds one requirement line as resource=amount.
STORY orders take --travel-time, --classes and --countries; BOAT orders
take --expires (unix seconds); BUILDING orders need neither.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(func(ctx context.Context, app *App) error {
				order := &catalog.Order{
					ID:             id,
					Name:           name,
					Type:           catalog.ParseOrderType(orderType),
					TravelTime:     travelTime,
					Classes:        parseClasses(classes),
					ExpirationTime: expiration,
				}
				if countries != "" {
					for _, part := range strings.Split(countries, ",") {
						order.Countries = append(order.Countries, catalog.Country(strings.TrimSpace(part)))
					}
				}
				for _, spec := range resources {
					kv := strings.SplitN(spec, "=", 2)
					if len(kv) != 2 {
						return fmt.Errorf("invalid resource %q: want resource=amount", spec)
					}
					line := catalog.ResourceRequirement{ResourceID: strings.TrimSpace(kv[0])}
					if _, err := fmt.Sscanf(kv[1], "%d", &line.Amount); err != nil {
						return fmt.Errorf("invalid resource %q: bad amount: %w", spec, err)
					}
					order.Resources = append(order.Resources, line)
				}

				if _, err := app.Mediator.Send(ctx, &catalogCommands.SaveOrderCommand{Order: order}); err != nil {
					return err
				}
				fmt.Printf("✓ Saved %s order %s with %d requirement(s)\n",
					order.Type, id, len(order.Resources))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "Order ID")
	cmd.Flags().StringVar(&name, "name", "", "Display name")
	cmd.Flags().StringVar(&orderType, "type", "STORY", "Order type: STORY|BOAT|BUILDING")
	cmd.Flags().StringArrayVar(&resources, "resource", nil, "Requirement line: resource=amount")
	cmd.Flags().IntVar(&travelTime, "travel-time", 0, "Delivery travel time in seconds (STORY)")
	cmd.Flags().StringVar(&classes, "classes", "", "Comma-separated allowed train classes (STORY)")
	cmd.Flags().StringVar(&countries, "countries", "", "Comma-separated allowed countries (STORY)")
	cmd.Flags().IntVar(&expiration, "expires", 0, "Expiration time, unix seconds (BOAT)")
	cmd.MarkFlagRequired("id")
	cmd.MarkFlagRequired("resource")
	return cmd
}

// newOrderDeliverCommand creates the order deliver subcommand
func newOrderDeliverCommand() *cobra.Command {
	var (
		orderID    string
		resourceID string
		amount     int
	)

	cmd := &cobra.Command{
		Use:   "deliver",
		Short: "Record delivered units against an order requirement",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(func(ctx context.Context, app *App) error {
				result, err := app.Mediator.Send(ctx, &catalogCommands.RecordDeliveryCommand{
					OrderID:    orderID,
					ResourceID: resourceID,
					Amount:     amount,
				})
				if err != nil {
					return err
				}
				response := result.(*catalogCommands.RecordDeliveryResponse)

				fmt.Printf("✓ Recorded %d %s for order %s (%d remaining)\n",
					amount, resourceID, orderID, response.Remaining)
				if response.Satisfied {
					fmt.Printf("  requirement for %s is now satisfied\n", resourceID)
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&orderID, "order", "o", "", "Order ID")
	cmd.Flags().StringVarP(&resourceID, "resource", "r", "", "Resource delivered")
	cmd.Flags().IntVarP(&amount, "amount", "a", 0, "Units delivered")
	cmd.MarkFlagRequired("order")
	cmd.MarkFlagRequired("resource")
	cmd.MarkFlagRequired("amount")
	return cmd
}

// newOrderDeleteCommand creates the order delete subcommand
func newOrderDeleteCommand() *cobra.Command {
	var orderID string

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete an order",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(func(ctx context.Context, app *App) error {
				if _, err := app.Mediator.Send(ctx, &catalogCommands.DeleteOrderCommand{
					OrderID: orderID,
				}); err != nil {
					return err
				}
				fmt.Printf("✓ Deleted order %s\n", orderID)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&orderID, "order", "o", "", "Order ID")
	cmd.MarkFlagRequired("order")
	return cmd
}
