package steps

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/cucumber/godog"

	"github.com/jmolina/railplan-go/internal/domain/catalog"
	"github.com/jmolina/railplan-go/internal/domain/fleet"
	"github.com/jmolina/railplan-go/internal/domain/planning"
)

// planContext carries the state shared by all planning scenarios: the
// catalog under construction, the plan, and the outcome of the last action.
type planContext struct {
	catalogs   *catalog.Catalogs
	plan       *planning.ProductionPlan
	refs       map[string]string // scenario step ref -> step ID
	maxWorkers int

	selected []*catalog.Train
	lastStep *planning.Step
	err      error
}

func (pc *planContext) reset() {
	pc.catalogs = catalog.NewCatalogs()
	pc.plan = nil
	pc.refs = make(map[string]string)
	pc.maxWorkers = planning.DefaultMaxConcurrentWorkers
	pc.selected = nil
	pc.lastStep = nil
	pc.err = nil
}

// Catalog construction

func (pc *planContext) aCatalogWithTrains(table *godog.Table) error {
	for i, row := range table.Rows {
		if i == 0 {
			continue // Skip header
		}
		capacity, err := strconv.Atoi(row.Cells[1].Value)
		if err != nil {
			return fmt.Errorf("bad capacity %q: %w", row.Cells[1].Value, err)
		}
		id := row.Cells[0].Value
		pc.catalogs.Trains[id] = &catalog.Train{
			ID:       id,
			Name:     id,
			Capacity: capacity,
			Class:    catalog.ParseTrainClass(row.Cells[2].Value),
			Country:  catalog.Country(row.Cells[3].Value),
		}
	}
	return nil
}

func (pc *planContext) gatheringDestinations(table *godog.Table) error {
	for i, row := range table.Rows {
		if i == 0 {
			continue // Skip header
		}
		travel, err := strconv.Atoi(row.Cells[2].Value)
		if err != nil {
			return fmt.Errorf("bad travel time %q: %w", row.Cells[2].Value, err)
		}
		id := row.Cells[0].Value
		pc.catalogs.Destinations[id] = &catalog.Destination{
			ID:         id,
			Name:       id,
			ResourceID: row.Cells[1].Value,
			TravelTime: travel,
			Classes:    parseClassList(row.Cells[3].Value),
			Country:    catalog.Country(row.Cells[4].Value),
		}
	}
	return nil
}

func (pc *planContext) aFactoryProducing(factoryID string, amount int, resourceID string, seconds int, inputs string) error {
	recipe := catalog.Recipe{
		ResourceID:   resourceID,
		TimeRequired: seconds,
		OutputAmount: amount,
	}
	if inputs != "" {
		for _, part := range strings.Split(inputs, ",") {
			kv := strings.SplitN(part, "=", 2)
			if len(kv) != 2 {
				return fmt.Errorf("bad recipe input %q", part)
			}
			quantity, err := strconv.Atoi(kv[1])
			if err != nil {
				return fmt.Errorf("bad recipe input amount %q: %w", kv[1], err)
			}
			recipe.Requires = append(recipe.Requires, catalog.ResourceRequirement{
				ResourceID: strings.TrimSpace(kv[0]),
				Amount:     quantity,
			})
		}
	}

	factory := pc.catalogs.Factories[factoryID]
	if factory == nil {
		factory = &catalog.Factory{ID: factoryID, Name: factoryID}
		pc.catalogs.Factories[factoryID] = factory
	}
	factory.Recipes = append(factory.Recipes, recipe)
	return nil
}

func (pc *planContext) thePlanAllowsConcurrentWorkers(count int) error {
	pc.maxWorkers = count
	if pc.plan != nil {
		pc.plan.MaxConcurrentWorkers = count
	}
	return nil
}

// Plan construction

func (pc *planContext) anEmptyPlan() error {
	pc.plan = planning.NewProductionPlan("bdd")
	pc.plan.MaxConcurrentWorkers = pc.maxWorkers
	return nil
}

func (pc *planContext) aPlanWithSteps(table *godog.Table) error {
	if err := pc.anEmptyPlan(); err != nil {
		return err
	}
	for i, row := range table.Rows {
		if i == 0 {
			continue // Skip header
		}
		ref := row.Cells[0].Value
		level, err := strconv.Atoi(row.Cells[1].Value)
		if err != nil {
			return fmt.Errorf("bad level %q: %w", row.Cells[1].Value, err)
		}
		resourceID := row.Cells[3].Value
		trainID := row.Cells[4].Value

		var step *planning.Step
		switch row.Cells[2].Value {
		case "destination":
			travel := 30
			if destination := pc.catalogs.DestinationForResource(resourceID); destination != nil {
				travel = destination.TravelTime
			}
			step = planning.NewDestinationStep(resourceID, level, travel, trainID)
		case "factory":
			duration := 60
			if recipe := pc.catalogs.RecipeForOutput(resourceID); recipe != nil {
				duration = recipe.TimeRequired
			}
			step = planning.NewFactoryStep(resourceID, level, duration)
		default:
			return fmt.Errorf("unknown step type %q", row.Cells[2].Value)
		}

		if !pc.plan.AddStep(step, level, pc.catalogs) {
			return fmt.Errorf("step %q refused by level %d", ref, level)
		}
		pc.refs[ref] = step.ID
	}
	return nil
}

// Editing actions

func (pc *planContext) iInsertAnEmptyLevelBefore(before int) error {
	pc.plan.InsertLevel(before)
	return nil
}

func (pc *planContext) iRemoveLevel(number int) error {
	pc.plan.RemoveLevel(number)
	return nil
}

func (pc *planContext) iMoveStepToLevel(ref string, to int) error {
	stepID, err := pc.stepID(ref)
	if err != nil {
		return err
	}
	step, level := pc.plan.FindStep(stepID)
	if step == nil {
		return fmt.Errorf("step %q not in plan", ref)
	}
	pc.plan.MoveStep(stepID, level.Level, to, pc.catalogs)
	return nil
}

func (pc *planContext) iRewindStep(ref string) error {
	stepID, err := pc.stepID(ref)
	if err != nil {
		return err
	}
	pc.plan.RewindStep(stepID, pc.catalogs)
	return nil
}

func (pc *planContext) iFastForwardStep(ref string) error {
	stepID, err := pc.stepID(ref)
	if err != nil {
		return err
	}
	pc.plan.FastForwardStep(stepID, pc.catalogs)
	return nil
}

// Selection and synthesis actions

func (pc *planContext) iSelectTrains(amount int, classes, countries string) error {
	return pc.iSelectTrainsExcluding(amount, "", classes, countries)
}

func (pc *planContext) iSelectTrainsExcluding(amount int, busyList, classes, countries string) error {
	busy := map[string]bool{}
	if busyList != "" {
		for _, id := range strings.Split(busyList, ",") {
			busy[strings.TrimSpace(id)] = true
		}
	}
	var allowedCountries []catalog.Country
	if countries != "" {
		for _, part := range strings.Split(countries, ",") {
			allowedCountries = append(allowedCountries, catalog.Country(strings.TrimSpace(part)))
		}
	}

	selector := fleet.NewSelector()
	pc.selected = selector.SelectTrains(busy, amount, pc.catalogs.TrainList(), parseClassList(classes), allowedCountries)
	return nil
}

func (pc *planContext) iRequestAJob(amount int, resourceID string, level int) error {
	if pc.plan == nil {
		if err := pc.anEmptyPlan(); err != nil {
			return err
		}
	}
	synthesizer := planning.NewSynthesizer()
	requirement := catalog.ResourceRequirement{ResourceID: resourceID, Amount: amount}
	pc.lastStep, pc.err = synthesizer.CreateResourceJob(requirement, level, pc.plan, pc.catalogs)
	return nil
}

// Assertions

func (pc *planContext) thePlanShouldHaveLevels(expected string) error {
	var want []int
	for _, part := range strings.Split(expected, ",") {
		number, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return fmt.Errorf("bad level list %q: %w", expected, err)
		}
		want = append(want, number)
	}
	got := pc.plan.LevelNumbers()
	if !equalInts(got, want) {
		return fmt.Errorf("expected levels %v, got %v", want, got)
	}
	// Step level tags must agree with the level holding them
	for _, number := range got {
		for _, step := range pc.plan.Levels[number].Steps {
			if step.LevelID != number {
				return fmt.Errorf("step %s tagged level %d but lives in level %d", step.ID, step.LevelID, number)
			}
		}
	}
	return nil
}

func (pc *planContext) levelShouldContainStep(number int, ref string) error {
	stepID, err := pc.stepID(ref)
	if err != nil {
		return err
	}
	level := pc.plan.Level(number)
	if level == nil {
		return fmt.Errorf("level %d does not exist", number)
	}
	if step, _ := level.StepByID(stepID); step == nil {
		return fmt.Errorf("step %q not in level %d", ref, number)
	}
	return nil
}

func (pc *planContext) levelShouldBeEmpty(number int) error {
	level := pc.plan.Level(number)
	if level == nil {
		return fmt.Errorf("level %d does not exist", number)
	}
	if len(level.Steps) != 0 {
		return fmt.Errorf("level %d has %d steps", number, len(level.Steps))
	}
	return nil
}

func (pc *planContext) theSelectedTrainsShouldBe(expected string) error {
	var want []string
	for _, part := range strings.Split(expected, ",") {
		want = append(want, strings.TrimSpace(part))
	}
	got := make([]string, 0, len(pc.selected))
	for _, train := range pc.selected {
		got = append(got, train.ID)
	}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		return fmt.Errorf("expected trains %v, got %v", want, got)
	}
	return nil
}

func (pc *planContext) noTrainsShouldBeSelected() error {
	if len(pc.selected) != 0 {
		return fmt.Errorf("expected no trains, got %d", len(pc.selected))
	}
	return nil
}

func (pc *planContext) aStepShouldBeCreated(stepType, resourceID string, level int) error {
	if pc.err != nil {
		return fmt.Errorf("job failed: %v", pc.err)
	}
	if pc.lastStep == nil {
		return fmt.Errorf("no step was created")
	}
	want := planning.ParseStepType(strings.ToUpper(stepType))
	if pc.lastStep.Type != want {
		return fmt.Errorf("expected %s step, got %s", want, pc.lastStep.Type)
	}
	if pc.lastStep.ResourceID != resourceID {
		return fmt.Errorf("expected resource %s, got %s", resourceID, pc.lastStep.ResourceID)
	}
	if pc.lastStep.LevelID != level {
		return fmt.Errorf("expected level %d, got %d", level, pc.lastStep.LevelID)
	}
	return pc.levelHoldsStep(level, pc.lastStep.ID)
}

func (pc *planContext) theJobShouldUseTrain(trainID string) error {
	if pc.lastStep == nil {
		return fmt.Errorf("no step was created")
	}
	if pc.lastStep.TrainID != trainID {
		return fmt.Errorf("expected train %s, got %s", trainID, pc.lastStep.TrainID)
	}
	return nil
}

func (pc *planContext) theJobShouldFailNoProducer() error {
	if pc.err == nil {
		return fmt.Errorf("expected an error, job succeeded")
	}
	var want *planning.NoProducerError
	if !errors.As(pc.err, &want) {
		return fmt.Errorf("expected NoProducerError, got %T: %v", pc.err, pc.err)
	}
	return nil
}

func (pc *planContext) theJobShouldFailNoEligibleTrain() error {
	if pc.err == nil {
		return fmt.Errorf("expected an error, job succeeded")
	}
	var want *planning.NoEligibleTrainError
	if !errors.As(pc.err, &want) {
		return fmt.Errorf("expected NoEligibleTrainError, got %T: %v", pc.err, pc.err)
	}
	return nil
}

func (pc *planContext) theJobShouldFailInvalidRequirement() error {
	if pc.err == nil {
		return fmt.Errorf("expected an error, job succeeded")
	}
	var want *planning.InvalidRequirementError
	if !errors.As(pc.err, &want) {
		return fmt.Errorf("expected InvalidRequirementError, got %T: %v", pc.err, pc.err)
	}
	return nil
}

// Helpers

func (pc *planContext) stepID(ref string) (string, error) {
	id, ok := pc.refs[ref]
	if !ok {
		return "", fmt.Errorf("unknown step ref %q", ref)
	}
	return id, nil
}

func (pc *planContext) levelHoldsStep(number int, stepID string) error {
	level := pc.plan.Level(number)
	if level == nil {
		return fmt.Errorf("level %d does not exist", number)
	}
	if step, _ := level.StepByID(stepID); step == nil {
		return fmt.Errorf("step %s not in level %d", stepID, number)
	}
	return nil
}

func parseClassList(spec string) []catalog.TrainClass {
	if spec == "" {
		return nil
	}
	var classes []catalog.TrainClass
	for _, part := range strings.Split(spec, ",") {
		classes = append(classes, catalog.ParseTrainClass(strings.TrimSpace(part)))
	}
	return classes
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	sort.Ints(b)
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// InitializePlanScenarios registers every planning step definition.
func InitializePlanScenarios(sc *godog.ScenarioContext) {
	pc := &planContext{}
	sc.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		pc.reset()
		return ctx, nil
	})

	sc.Step(`^a catalog with trains:$`, pc.aCatalogWithTrains)
	sc.Step(`^gathering destinations:$`, pc.gatheringDestinations)
	sc.Step(`^a factory "([^"]*)" producing (\d+) "([^"]*)" in (\d+) seconds from "([^"]*)"$`, pc.aFactoryProducing)
	sc.Step(`^the plan allows (\d+) concurrent workers$`, pc.thePlanAllowsConcurrentWorkers)
	sc.Step(`^an empty plan$`, pc.anEmptyPlan)
	sc.Step(`^a plan with steps:$`, pc.aPlanWithSteps)

	sc.Step(`^I insert an empty level before level (\d+)$`, pc.iInsertAnEmptyLevelBefore)
	sc.Step(`^I remove level (\d+)$`, pc.iRemoveLevel)
	sc.Step(`^I move step "([^"]*)" to level (-?\d+)$`, pc.iMoveStepToLevel)
	sc.Step(`^I rewind step "([^"]*)"$`, pc.iRewindStep)
	sc.Step(`^I fast-forward step "([^"]*)"$`, pc.iFastForwardStep)

	sc.Step(`^I select trains for (\d+) units with classes "([^"]*)" and countries "([^"]*)"$`, pc.iSelectTrains)
	sc.Step(`^I select trains for (\d+) units excluding "([^"]*)" with classes "([^"]*)" and countries "([^"]*)"$`, pc.iSelectTrainsExcluding)
	sc.Step(`^I request a job for (\d+) "([^"]*)" at level (-?\d+)$`, pc.iRequestAJob)

	sc.Step(`^the plan should have levels "([^"]*)"$`, pc.thePlanShouldHaveLevels)
	sc.Step(`^level (\d+) should contain step "([^"]*)"$`, pc.levelShouldContainStep)
	sc.Step(`^level (\d+) should be empty$`, pc.levelShouldBeEmpty)
	sc.Step(`^the selected trains should be "([^"]*)"$`, pc.theSelectedTrainsShouldBe)
	sc.Step(`^no trains should be selected$`, pc.noTrainsShouldBeSelected)
	sc.Step(`^a (destination|factory) step for "([^"]*)" should be created in level (\d+)$`, pc.aStepShouldBeCreated)
	sc.Step(`^the job should use train "([^"]*)"$`, pc.theJobShouldUseTrain)
	sc.Step(`^the job should fail because no producer exists$`, pc.theJobShouldFailNoProducer)
	sc.Step(`^the job should fail because no train is eligible$`, pc.theJobShouldFailNoEligibleTrain)
	sc.Step(`^the job should fail because the requirement is invalid$`, pc.theJobShouldFailInvalidRequirement)
}
