package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	"workforce-planner/formatter"
	"workforce-planner/metrics"
	"workforce-planner/parser"
	"workforce-planner/planner"
	"workforce-planner/results"
	"workforce-planner/solver"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/prometheus/client_golang/prometheus/push"
	"go.uber.org/zap"
)

func main() {
	// Define flags
	input := flag.String("input", "", "Input YAML scenario file (required)")
	format := flag.String("format", "text", "Output format: text|json|csv")
	timeout := flag.Duration("timeout", 30*time.Second, "Time budget for the solve")
	tolerance := flag.Float64("tolerance", 0, "Simplex tolerance (0 = solver default)")
	verbose := flag.Bool("verbose", false, "Enable debug logging")
	metricsAddr := flag.String("metrics-addr", "", "Address to expose Prometheus metrics (e.g., :9090)")
	pushGateway := flag.String("push-url", "", "Pushgateway URL to push metrics to (e.g., http://localhost:9091)")
	wait := flag.Bool("wait", false, "Keep process running after completion to allow for metric scraping")

	// Parse command-line flags
	flag.Parse()

	// Start metrics server if address provided
	if *metricsAddr != "" {
		go func() {
			http.Handle("/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))
			fmt.Printf("Metrics server listening on %s/metrics\n", *metricsAddr)
			if err := http.ListenAndServe(*metricsAddr, nil); err != nil {
				fmt.Printf("Metrics server error: %v\n", err)
			}
		}()
	}

	// Validate required input flag
	if *input == "" {
		fmt.Println("Error: -input flag is required")
		fmt.Println("\nUsage:")
		flag.PrintDefaults()
		os.Exit(1)
	}

	// Validate format enum
	validFormats := map[string]bool{"text": true, "json": true, "csv": true}
	if !validFormats[*format] {
		fmt.Printf("Error: format must be one of: text, json, csv (got: %s)\n", *format)
		os.Exit(1)
	}

	if *tolerance < 0 {
		fmt.Println("Error: tolerance must not be negative")
		os.Exit(1)
	}

	logger := zap.NewNop()
	if *verbose {
		logger, _ = zap.NewDevelopment()
	}
	defer logger.Sync()

	sc, err := parser.Load(*input)
	if err != nil {
		metrics.ParserErrorsTotal.WithLabelValues("parse").Inc()
		fmt.Printf("Error parsing scenario: %v\n", err)
		os.Exit(1)
	}

	params, err := sc.ParameterSet()
	if err != nil {
		metrics.ParserErrorsTotal.WithLabelValues("validate").Inc()
		fmt.Printf("Error validating scenario: %v\n", err)
		os.Exit(1)
	}
	metrics.ParserScenariosTotal.Inc()

	metrics.ResetPlanGauges()

	buildStart := time.Now()
	model := planner.Build(params)
	metrics.BuildDurationSeconds.Observe(time.Since(buildStart).Seconds())
	metrics.ModelVariables.Set(float64(model.Variables()))
	metrics.ModelConstraints.Set(float64(model.Constraints()))
	logger.Debug("program assembled",
		zap.Int("variables", model.Variables()),
		zap.Int("constraints", model.Constraints()))

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	simplex := &solver.Simplex{Tol: *tolerance, Logger: logger}
	solveStart := time.Now()
	sol, err := simplex.Solve(ctx, model.Problem)
	if err != nil {
		fmt.Printf("Error solving: %v\n", err)
		os.Exit(1)
	}
	elapsed := time.Since(solveStart)
	metrics.ObserveSolve(sol.Status, elapsed.Seconds())
	logger.Debug("solve finished",
		zap.String("status", string(sol.Status)),
		zap.Duration("elapsed", elapsed))

	plan := results.Extract(model, sol)
	metrics.ObservePlan(plan)

	// Output based on format
	switch *format {
	case "json":
		fmt.Print(formatter.FormatJSON(plan))
	case "csv":
		fmt.Print(formatter.FormatCSV(plan))
	default: // "text"
		fmt.Print(formatter.FormatText(plan))
	}

	// Handle metrics pushing or waiting
	if *pushGateway != "" {
		jobName := "workforce_planner"
		if err := push.New(*pushGateway, jobName).Gatherer(metrics.Registry).Push(); err != nil {
			fmt.Fprintf(os.Stderr, "Error pushing to Pushgateway: %v\n", err)
		} else {
			fmt.Println("\nMetrics successfully pushed to Pushgateway")
		}
	}

	if *wait && *metricsAddr != "" {
		fmt.Println("\nProcess kept alive for metric scraping. Press Ctrl+C to exit.")
		// Wait for interrupt signal
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		fmt.Println("\nExiting...")
	} else if *metricsAddr != "" && *pushGateway == "" {
		// Small delay to allow final scrape if not waiting explicitly
		// but typically batch jobs should use pushgateway or wait
		time.Sleep(100 * time.Millisecond)
	}
}
