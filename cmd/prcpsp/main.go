// Command prcpsp is the CLI entry point: it parses an instance file,
// builds a canonical random project, optionally expands it into its
// preemptive unit-duration form, runs one of the two search cores over
// it, and persists the result.
//
// Usage:
//
//	prcpsp <algo> <instance-file> <seed> <m> <algo-params>...
//
// algo is "SA" or "TS". m is 0 or 1 (1 expands the project before search).
// SA params: iterations temperature decrement epsilon.
// TS params: tabu_time neighbors iterations.
package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"strconv"

	"github.com/rodrigofvc/ts-sa-prcpsp/internal/instance"
	"github.com/rodrigofvc/ts-sa-prcpsp/internal/obslog"
	"github.com/rodrigofvc/ts-sa-prcpsp/internal/persist"
	"github.com/rodrigofvc/ts-sa-prcpsp/internal/render"
	"github.com/rodrigofvc/ts-sa-prcpsp/pkg/prcpsp"
	"github.com/rodrigofvc/ts-sa-prcpsp/pkg/search"
)

func main() {
	os.Exit(run(os.Args))
}

func run(args []string) int {
	logger := obslog.New(obslog.Options{})
	logger, runID := obslog.WithRunID(logger)

	if len(args) < 5 {
		logger.Error("usage: prcpsp <algo> <instance-file> <seed> <m> <algo-params>...")
		return 2
	}

	algo := args[1]
	if algo != "SA" && algo != "TS" {
		logger.Error("unknown algorithm", "algo", algo)
		return 2
	}

	data, err := os.ReadFile(args[2])
	if err != nil {
		logger.Error("reading instance file", "error", err)
		return 2
	}
	params, err := instance.Parse(data)
	if err != nil {
		logger.Error("parsing instance file", "error", err)
		return 2
	}

	seed, err := strconv.ParseUint(args[3], 10, 64)
	if err != nil {
		logger.Error("parsing seed", "error", err)
		return 2
	}
	m, err := strconv.ParseUint(args[4], 10, 32)
	if err != nil || (m != 0 && m != 1) {
		logger.Error("parsing m, want 0 or 1", "error", err)
		return 2
	}

	project, err := instance.Generate(params, rand.New(rand.NewSource(int64(params.Seed))))
	if err != nil {
		logger.Error("generating project", "error", err)
		return 1
	}
	if m == 1 {
		project, err = prcpsp.Expand(project)
		if err != nil {
			logger.Error("expanding project", "error", err)
			return 1
		}
	}

	initial, err := prcpsp.NewInitialState(project, seed)
	if err != nil {
		logger.Error("building initial state", "error", err)
		return 1
	}
	logger.Info("initial schedule built", "makespan", initial.Makespan(), "target_cost", params.TargetCost)

	writer := persist.New()
	ctx := context.Background()

	var (
		best    search.State
		runLog  []int
		runErr  error
		summary string
	)

	switch algo {
	case "SA":
		if len(args) < 9 {
			logger.Error("SA requires iterations temperature decrement epsilon")
			return 2
		}
		iterations, e1 := strconv.Atoi(args[5])
		temperature, e2 := strconv.ParseFloat(args[6], 64)
		decrement, e3 := strconv.ParseFloat(args[7], 64)
		epsilon, e4 := strconv.ParseFloat(args[8], 64)
		if e1 != nil || e2 != nil || e3 != nil || e4 != nil {
			logger.Error("parsing SA parameters")
			return 2
		}
		sp := search.SAParams{InitialTemperature: temperature, Decrement: decrement, Epsilon: epsilon, InnerIterations: iterations, Seed: seed}
		best, runLog, runErr = search.SimulatedAnnealing(ctx, initial, sp, logger, nil)
		summary = fmt.Sprintf("iterations=%d temperature=%f decrement=%f epsilon=%f", iterations, temperature, decrement, epsilon)
	case "TS":
		if len(args) < 8 {
			logger.Error("TS requires tabu_time neighbors iterations")
			return 2
		}
		tenure, e1 := strconv.Atoi(args[5])
		neighbors, e2 := strconv.Atoi(args[6])
		tsIterations, e3 := strconv.Atoi(args[7])
		if e1 != nil || e2 != nil || e3 != nil {
			logger.Error("parsing TS parameters")
			return 2
		}
		tp := search.TSParams{Tenure: tenure, Neighbors: neighbors, Iterations: tsIterations}
		best, runLog, runErr = search.TabuSearch(ctx, initial, tp, logger, nil)
		summary = fmt.Sprintf("tabu_time=%d neighbors=%d iterations=%d", tenure, neighbors, tsIterations)
	}

	if runErr != nil {
		logger.Error("search failed", "error", runErr)
		return 1
	}

	logger.Info("search complete", "algo", algo, "cost", best.Cost(), "params", summary)
	fmt.Println(best.String())
	fmt.Println(">>>>> cost", best.Cost())

	entryBody := best.String()
	if schedule, ok := best.(*prcpsp.ScheduleState); ok {
		aligned := render.Text(schedule.Planning(), schedule.Times())
		fmt.Println(aligned)
		entryBody = aligned
	}

	entry := entryBody + "\ncosts: " + persist.FormatCosts(runLog)
	if err := writer.AppendLog(algo, runID, best.Cost(), entry); err != nil {
		logger.Warn("persisting log entry", "error", err)
	}
	if path, err := writer.WriteArtifact(algo, runID, render.SVG(best)); err != nil {
		logger.Warn("persisting artifact", "error", err)
	} else {
		logger.Info("artifact written", "path", path)
	}

	return 0
}
