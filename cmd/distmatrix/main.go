package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/manzanit0/googletoolkit/pkg/config"
	"github.com/manzanit0/googletoolkit/pkg/distancematrix"
	"github.com/manzanit0/googletoolkit/pkg/logger"
	"github.com/manzanit0/googletoolkit/pkg/whttp"
)

type places []string

func (p *places) String() string {
	return strings.Join(*p, ", ")
}

func (p *places) Set(v string) error {
	*p = append(*p, v)
	return nil
}

func main() {
	var origins, destinations places
	flag.Var(&origins, "origin", "origin address, repeat for several")
	flag.Var(&destinations, "destination", "destination address, repeat for several")
	configFile := flag.String("config", "", "path to a YAML config file")
	mode := flag.String("mode", "", "travel mode: driving, walking, bicycling or transit")
	flag.Parse()

	if err := run(*configFile, *mode, origins, destinations); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configFile, mode string, origins, destinations []string) error {
	if len(origins) == 0 || len(destinations) == 0 {
		return fmt.Errorf("at least one -origin and one -destination are required")
	}

	cfg, err := config.Load(configFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger.InitCLISlog("distmatrix", cfg.Debug)

	if err := cfg.ValidateDistanceMatrix(); err != nil {
		return err
	}

	var opts []distancematrix.Option
	if mode != "" {
		opts = append(opts, distancematrix.WithMode(mode))
	}

	client, err := distancematrix.NewClient(cfg.DistanceBackend, whttp.NewLoggingClient(), cfg.GoogleMapsAPIKey, opts...)
	if err != nil {
		return fmt.Errorf("create distance matrix client: %w", err)
	}

	m, err := client.GetDistanceMatrix(context.Background(), origins, destinations)
	if err != nil {
		return fmt.Errorf("get distance matrix: %w", err)
	}

	fmt.Println(NewMatrixTable("Distance", origins, destinations, m.DistanceTable()))
	fmt.Println(NewMatrixTable("Duration", origins, destinations, m.DurationTable()))

	return nil
}
