package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"logistik-dashboard/internal/adapters/backend"
	"logistik-dashboard/internal/config"
	"logistik-dashboard/internal/domain"
	"logistik-dashboard/internal/platform/httpx"
	"logistik-dashboard/internal/platform/logger"
	"logistik-dashboard/internal/platform/obs"
	"logistik-dashboard/internal/ports"
	"logistik-dashboard/internal/services"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.ServiceName+"-lookup", cfg.LoggerLevel)
	defer func() { _ = log.Sync() }()

	cmd := newRootCmd(func() (ports.LogisticsBackend, error) {
		return openBackend(cfg, log)
	})

	if err := cmd.Execute(); err != nil {
		log.Error("lookup failed", logger.Error(err))
		_ = log.Sync()
		os.Exit(1)
	}
}

// newRootCmd builds the lookup command, e.g.
//
//	lookup --von "Bau 01-01" --nach "Bau 02-02"
//	lookup --fahrzeugtypen
func newRootCmd(open func() (ports.LogisticsBackend, error)) *cobra.Command {
	var (
		from         string
		to           string
		vehicleTypes bool
	)

	cmd := &cobra.Command{
		Use:           "lookup",
		Short:         "Query travel times and vehicle types from the logistics backend",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := open()
			if err != nil {
				return err
			}

			ctx := obs.WithRequestID(cmd.Context(), "")
			if vehicleTypes {
				return printVehicleTypes(ctx, cmd.OutOrStdout(), b)
			}
			return printTravelTime(ctx, cmd.OutOrStdout(), b, from, to)
		},
	}

	cmd.Flags().StringVar(&from, "von", "", "Abholort")
	cmd.Flags().StringVar(&to, "nach", "", "Zielort")
	cmd.Flags().BoolVar(&vehicleTypes, "fahrzeugtypen", false, "List vehicle types instead of a travel time")

	return cmd
}

func openBackend(cfg config.Config, log logger.ILogger) (ports.LogisticsBackend, error) {
	if cfg.BackendMode == config.BackendModeMock {
		return backend.NewDemoBackend(), nil
	}

	c, err := backend.NewClient(httpx.New(cfg.BackendTimeout), cfg.BackendURL, log, nil)
	if err != nil {
		return nil, fmt.Errorf("open backend: %w", err)
	}
	return c, nil
}

func printVehicleTypes(ctx context.Context, w io.Writer, b ports.VehicleTypeLister) error {
	types, err := b.ListVehicleTypes(ctx)
	if err != nil {
		return fmt.Errorf("list vehicle types: %w", err)
	}

	for _, t := range types {
		if t.Available != nil {
			fmt.Fprintf(w, "%d\t%s\t%d verfügbar\n", t.ID, t.Name, *t.Available)
			continue
		}
		fmt.Fprintf(w, "%d\t%s\n", t.ID, t.Name)
	}
	return nil
}

func printTravelTime(ctx context.Context, w io.Writer, b ports.RouteDistanceLister, from, to string) error {
	draft := domain.TransportOrderDraft{}.WithOrigin(from).WithDestination(to).Normalized()
	if !draft.HasRoute() {
		return errors.New("--von and --nach are required and must differ")
	}
	for _, name := range []string{draft.Origin, draft.Destination} {
		if !domain.IsFacility(name) {
			return fmt.Errorf("unknown facility %q", name)
		}
	}

	minutes, found, err := services.LookupTravelTime(ctx, b, draft.Origin, draft.Destination)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("travel time %s -> %s: no entry in distance matrix", draft.Origin, draft.Destination)
	}

	fmt.Fprintf(w, "%s -> %s: %s Minuten\n", draft.Origin, draft.Destination, minutes)
	return nil
}
