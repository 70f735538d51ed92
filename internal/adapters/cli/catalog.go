package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	catalogCommands "github.com/jmolina/railplan-go/internal/application/catalog/commands"
	catalogQueries "github.com/jmolina/railplan-go/internal/application/catalog/queries"
	"github.com/jmolina/railplan-go/internal/domain/catalog"
)

// NewCatalogCommand creates the catalog command with subcommands
func NewCatalogCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect and edit the reference catalogs",
		Long: `Inspect and edit the reference catalogs: resources, trains,
destinations and factories.

Examples:
  railplan catalog show
  railplan catalog import --file catalog.yaml
  railplan catalog add-resource --id coal --name "Coal"
  railplan catalog add-train --id t3 --name "Black Prince" --capacity 30 --class RARE --country BRITAIN
  railplan catalog add-destination --id coal-mine --resource coal --travel-time 30 --classes COMMON,RARE
  railplan catalog add-factory --id smeltery --queue-max 2 --recipe "steel:40:60:iron=10,coal=30"`,
	}

	cmd.AddCommand(newCatalogShowCommand())
	cmd.AddCommand(newCatalogImportCommand())
	cmd.AddCommand(newCatalogAddResourceCommand())
	cmd.AddCommand(newCatalogAddTrainCommand())
	cmd.AddCommand(newCatalogAddDestinationCommand())
	cmd.AddCommand(newCatalogAddFactoryCommand())

	return cmd
}

// catalogSeed is the shape of a catalog seed file. Field names follow the
// YAML keys via mapstructure, same as the config structs.
type catalogSeed struct {
	Resources []catalog.Resource `mapstructure:"resources"`
	Trains    []struct {
		ID       string `mapstructure:"id"`
		Name     string `mapstructure:"name"`
		Capacity int    `mapstructure:"capacity"`
		Class    string `mapstructure:"class"`
		Engine   string `mapstructure:"engine"`
		Country  string `mapstructure:"country"`
	} `mapstructure:"trains"`
	Destinations []struct {
		ID         string   `mapstructure:"id"`
		Name       string   `mapstructure:"name"`
		Resource   string   `mapstructure:"resource"`
		TravelTime int      `mapstructure:"travel_time"`
		Classes    []string `mapstructure:"classes"`
		Country    string   `mapstructure:"country"`
	} `mapstructure:"destinations"`
	Factories []struct {
		ID           string `mapstructure:"id"`
		Name         string `mapstructure:"name"`
		QueueMaxSize int    `mapstructure:"queue_max_size"`
		Recipes      []struct {
			Output  string `mapstructure:"output"`
			Amount  int    `mapstructure:"amount"`
			Seconds int    `mapstructure:"seconds"`
			Inputs  []struct {
				Resource string `mapstructure:"resource"`
				Amount   int    `mapstructure:"amount"`
			} `mapstructure:"inputs"`
		} `mapstructure:"recipes"`
	} `mapstructure:"factories"`
	Orders []struct {
		ID         string   `mapstructure:"id"`
		Name       string   `mapstructure:"name"`
		Type       string   `mapstructure:"type"`
		TravelTime int      `mapstructure:"travel_time"`
		Classes    []string `mapstructure:"classes"`
		Countries  []string `mapstructure:"countries"`
		Expires    int      `mapstructure:"expires"`
		Resources  []struct {
			Resource string `mapstructure:"resource"`
			Amount   int    `mapstructure:"amount"`
		} `mapstructure:"resources"`
	} `mapstructure:"orders"`
}

// newCatalogImportCommand creates the catalog import subcommand
func newCatalogImportCommand() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import a catalog seed file",
		Long: `Import a catalog seed file.

The file is YAML with top-level resources, trains, destinations, factories
and orders lists; every entry is saved through the same validation as the
add-* commands, so a re-import updates entities in place.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			seed, err := loadCatalogSeed(file)
			if err != nil {
				return err
			}
			return withApp(func(ctx context.Context, app *App) error {
				saved, err := importCatalogSeed(ctx, app, seed)
				if err != nil {
					return err
				}
				fmt.Printf("✓ Imported %d entit(ies) from %s\n", saved, file)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Seed file path")
	cmd.MarkFlagRequired("file")
	return cmd
}

// loadCatalogSeed reads and decodes a seed file
func loadCatalogSeed(file string) (*catalogSeed, error) {
	v := viper.New()
	v.SetConfigFile(file)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}
	var seed catalogSeed
	if err := v.Unmarshal(&seed); err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}
	return &seed, nil
}

// importCatalogSeed dispatches one save command per seed entry
func importCatalogSeed(ctx context.Context, app *App, seed *catalogSeed) (int, error) {
	saved := 0

	for i := range seed.Resources {
		if _, err := app.Mediator.Send(ctx, &catalogCommands.SaveResourceCommand{
			Resource: &seed.Resources[i],
		}); err != nil {
			return saved, fmt.Errorf("resource %s: %w", seed.Resources[i].ID, err)
		}
		saved++
	}

	for _, entry := range seed.Trains {
		train := &catalog.Train{
			ID:       entry.ID,
			Name:     entry.Name,
			Capacity: entry.Capacity,
			Class:    catalog.ParseTrainClass(entry.Class),
			Engine:   entry.Engine,
			Country:  catalog.Country(entry.Country),
		}
		if _, err := app.Mediator.Send(ctx, &catalogCommands.SaveTrainCommand{Train: train}); err != nil {
			return saved, fmt.Errorf("train %s: %w", entry.ID, err)
		}
		saved++
	}

	for _, entry := range seed.Destinations {
		destination := &catalog.Destination{
			ID:         entry.ID,
			Name:       entry.Name,
			ResourceID: entry.Resource,
			TravelTime: entry.TravelTime,
			Classes:    parseClasses(strings.Join(entry.Classes, ",")),
			Country:    catalog.Country(entry.Country),
		}
		if _, err := app.Mediator.Send(ctx, &catalogCommands.SaveDestinationCommand{
			Destination: destination,
		}); err != nil {
			return saved, fmt.Errorf("destination %s: %w", entry.ID, err)
		}
		saved++
	}

	for _, entry := range seed.Factories {
		factory := &catalog.Factory{ID: entry.ID, Name: entry.Name, QueueMaxSize: entry.QueueMaxSize}
		for _, r := range entry.Recipes {
			recipe := catalog.Recipe{
				ResourceID:   r.Output,
				OutputAmount: r.Amount,
				TimeRequired: r.Seconds,
			}
			for _, input := range r.Inputs {
				recipe.Requires = append(recipe.Requires, catalog.ResourceRequirement{
					ResourceID: input.Resource,
					Amount:     input.Amount,
				})
			}
			factory.Recipes = append(factory.Recipes, recipe)
		}
		if _, err := app.Mediator.Send(ctx, &catalogCommands.SaveFactoryCommand{Factory: factory}); err != nil {
			return saved, fmt.Errorf("factory %s: %w", entry.ID, err)
		}
		saved++
	}

	for _, entry := range seed.Orders {
		order := &catalog.Order{
			ID:             entry.ID,
			Name:           entry.Name,
			Type:           catalog.ParseOrderType(entry.Type),
			TravelTime:     entry.TravelTime,
			Classes:        parseClasses(strings.Join(entry.Classes, ",")),
			ExpirationTime: entry.Expires,
		}
		for _, country := range entry.Countries {
			order.Countries = append(order.Countries, catalog.Country(country))
		}
		for _, line := range entry.Resources {
			order.Resources = append(order.Resources, catalog.ResourceRequirement{
				ResourceID: line.Resource,
				Amount:     line.Amount,
			})
		}
		if _, err := app.Mediator.Send(ctx, &catalogCommands.SaveOrderCommand{Order: order}); err != nil {
			return saved, fmt.Errorf("order %s: %w", entry.ID, err)
		}
		saved++
	}

	return saved, nil
}

// newCatalogShowCommand creates the catalog show subcommand
func newCatalogShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the full catalog contents",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(func(ctx context.Context, app *App) error {
				result, err := app.Mediator.Send(ctx, &catalogQueries.GetCatalogsQuery{})
				if err != nil {
					return err
				}
				response := result.(*catalogQueries.GetCatalogsResponse)
				printCatalogs(response.Catalogs)
				return nil
			})
		},
	}
}

// newCatalogAddResourceCommand creates the catalog add-resource subcommand
func newCatalogAddResourceCommand() *cobra.Command {
	var resource catalog.Resource

	cmd := &cobra.Command{
		Use:   "add-resource",
		Short: "Create or update a resource",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(func(ctx context.Context, app *App) error {
				if _, err := app.Mediator.Send(ctx, &catalogCommands.SaveResourceCommand{
					Resource: &resource,
				}); err != nil {
					return err
				}
				fmt.Printf("✓ Saved resource %s\n", resource.ID)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&resource.ID, "id", "", "Resource ID")
	cmd.Flags().StringVar(&resource.Name, "name", "", "Display name")
	cmd.Flags().StringVar(&resource.Icon, "icon", "", "Icon identifier")
	cmd.MarkFlagRequired("id")
	cmd.MarkFlagRequired("name")
	return cmd
}

// newCatalogAddTrainCommand creates the catalog add-train subcommand
func newCatalogAddTrainCommand() *cobra.Command {
	var (
		id       string
		name     string
		capacity int
		class    string
		engine   string
		country  string
	)

	cmd := &cobra.Command{
		Use:   "add-train",
		Short: "Create or update a train",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(func(ctx context.Context, app *App) error {
				train := &catalog.Train{
					ID:       id,
					Name:     name,
					Capacity: capacity,
					Class:    catalog.ParseTrainClass(class),
					Engine:   engine,
					Country:  catalog.Country(country),
				}
				if _, err := app.Mediator.Send(ctx, &catalogCommands.SaveTrainCommand{Train: train}); err != nil {
					return err
				}
				fmt.Printf("✓ Saved train %s (%s, capacity %d)\n", id, train.Class, capacity)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "Train ID")
	cmd.Flags().StringVar(&name, "name", "", "Display name")
	cmd.Flags().IntVar(&capacity, "capacity", 0, "Cargo capacity")
	cmd.Flags().StringVar(&class, "class", "COMMON", "Class: COMMON|RARE|EPIC|LEGENDARY")
	cmd.Flags().StringVar(&engine, "engine", "", "Engine type")
	cmd.Flags().StringVar(&country, "country", "", "Country")
	cmd.MarkFlagRequired("id")
	cmd.MarkFlagRequired("capacity")
	return cmd
}

// newCatalogAddDestinationCommand creates the catalog add-destination subcommand
func newCatalogAddDestinationCommand() *cobra.Command {
	var (
		id         string
		name       string
		resourceID string
		travelTime int
		classes    string
		country    string
	)

	cmd := &cobra.Command{
		Use:   "add-destination",
		Short: "Create or update a gathering destination",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(func(ctx context.Context, app *App) error {
				destination := &catalog.Destination{
					ID:         id,
					Name:       name,
					ResourceID: resourceID,
					TravelTime: travelTime,
					Classes:    parseClasses(classes),
					Country:    catalog.Country(country),
				}
				if _, err := app.Mediator.Send(ctx, &catalogCommands.SaveDestinationCommand{
					Destination: destination,
				}); err != nil {
					return err
				}
				fmt.Printf("✓ Saved destination %s (%s)\n", id, resourceID)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "Destination ID")
	cmd.Flags().StringVar(&name, "name", "", "Display name")
	cmd.Flags().StringVar(&resourceID, "resource", "", "Resource gathered here")
	cmd.Flags().IntVar(&travelTime, "travel-time", 0, "Travel time in seconds")
	cmd.Flags().StringVar(&classes, "classes", "", "Comma-separated allowed train classes (empty = all)")
	cmd.Flags().StringVar(&country, "country", "", "Country restriction (empty = none)")
	cmd.MarkFlagRequired("id")
	cmd.MarkFlagRequired("resource")
	return cmd
}

// newCatalogAddFactoryCommand creates the catalog add-factory subcommand
func newCatalogAddFactoryCommand() *cobra.Command {
	var (
		id       string
		name     string
		queueMax int
		recipes  []string
	)

	cmd := &cobra.Command{
		Use:   "add-factory",
		Short: "Create or update a factory and its recipes",
		Long: `Create or update a factory and its recipes.

Each --recipe flag describes one recipe as
  output:amount:seconds:input=qty,input=qty
e.g. "steel:40:60:iron=10,coal=30" produces 40 steel in 60 seconds from
10 iron and 30 coal. Inputs may be omitted for raw producers.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(func(ctx context.Context, app *App) error {
				factory := &catalog.Factory{ID: id, Name: name, QueueMaxSize: queueMax}
				for _, spec := range recipes {
					recipe, err := parseRecipe(spec)
					if err != nil {
						return err
					}
					factory.Recipes = append(factory.Recipes, *recipe)
				}
				if _, err := app.Mediator.Send(ctx, &catalogCommands.SaveFactoryCommand{
					Factory: factory,
				}); err != nil {
					return err
				}
				fmt.Printf("✓ Saved factory %s with %d recipe(s)\n", id, len(factory.Recipes))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "Factory ID")
	cmd.Flags().StringVar(&name, "name", "", "Display name")
	cmd.Flags().IntVar(&queueMax, "queue-max", 0, "Max factory steps per level (0 = unbounded)")
	cmd.Flags().StringArrayVar(&recipes, "recipe", nil, "Recipe spec: output:amount:seconds:input=qty,...")
	cmd.MarkFlagRequired("id")
	return cmd
}

// parseClasses parses a comma-separated train class list
func parseClasses(spec string) []catalog.TrainClass {
	if spec == "" {
		return nil
	}
	var classes []catalog.TrainClass
	for _, part := range strings.Split(spec, ",") {
		classes = append(classes, catalog.ParseTrainClass(strings.TrimSpace(part)))
	}
	return classes
}

// parseRecipe parses an "output:amount:seconds:input=qty,..." recipe spec
func parseRecipe(spec string) (*catalog.Recipe, error) {
	parts := strings.SplitN(spec, ":", 4)
	if len(parts) < 3 {
		return nil, fmt.Errorf("invalid recipe %q: want output:amount:seconds[:inputs]", spec)
	}

	recipe := &catalog.Recipe{ResourceID: strings.TrimSpace(parts[0])}
	if _, err := fmt.Sscanf(parts[1], "%d", &recipe.OutputAmount); err != nil {
		return nil, fmt.Errorf("invalid recipe %q: bad output amount: %w", spec, err)
	}
	if _, err := fmt.Sscanf(parts[2], "%d", &recipe.TimeRequired); err != nil {
		return nil, fmt.Errorf("invalid recipe %q: bad duration: %w", spec, err)
	}

	if len(parts) == 4 && parts[3] != "" {
		for _, input := range strings.Split(parts[3], ",") {
			kv := strings.SplitN(input, "=", 2)
			if len(kv) != 2 {
				return nil, fmt.Errorf("invalid recipe %q: bad input %q", spec, input)
			}
			requirement := catalog.ResourceRequirement{ResourceID: strings.TrimSpace(kv[0])}
			if _, err := fmt.Sscanf(kv[1], "%d", &requirement.Amount); err != nil {
				return nil, fmt.Errorf("invalid recipe %q: bad input amount %q: %w", spec, kv[1], err)
			}
			recipe.Requires = append(recipe.Requires, requirement)
		}
	}
	return recipe, nil
}

// printCatalogs renders the catalogs as tables
func printCatalogs(catalogs *catalog.Catalogs) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)

	fmt.Println("Trains:")
	fmt.Fprintln(w, "ID\tNAME\tCAPACITY\tCLASS\tCOUNTRY")
	for _, train := range catalogs.TrainList() {
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\n",
			train.ID, train.Name, train.Capacity, train.Class, train.Country)
	}
	w.Flush()

	fmt.Println("\nDestinations:")
	w = tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tRESOURCE\tTRAVEL\tCLASSES\tCOUNTRY")
	for _, destination := range catalogs.DestinationList() {
		classes := "all"
		if len(destination.Classes) > 0 {
			names := make([]string, len(destination.Classes))
			for i, class := range destination.Classes {
				names[i] = string(class)
			}
			classes = strings.Join(names, ",")
		}
		fmt.Fprintf(w, "%s\t%s\t%ds\t%s\t%s\n",
			destination.ID, destination.ResourceID, destination.TravelTime,
			classes, dash(string(destination.Country)))
	}
	w.Flush()

	fmt.Println("\nFactories:")
	for _, factory := range catalogs.FactoryList() {
		fmt.Printf("  %s (queue max %d)\n", factory.ID, factory.QueueMaxSize)
		for _, recipe := range factory.Recipes {
			fmt.Printf("    %s x%d in %ds", recipe.ResourceID, recipe.OutputAmount, recipe.TimeRequired)
			for _, input := range recipe.Requires {
				fmt.Printf("  <- %s x%d", input.ResourceID, input.Amount)
			}
			fmt.Println()
		}
	}

	fmt.Println("\nOrders:")
	for _, order := range catalogs.Orders {
		fmt.Printf("  %s [%s] %s\n", order.ID, order.Type, order.Name)
		for _, line := range order.Resources {
			fmt.Printf("    %s: %d/%d delivered\n", line.ResourceID, line.Delivered, line.Amount)
		}
	}
}
