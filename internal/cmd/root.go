// Package cmd wires the pagerctl bench CLI: a small cobra command tree
// for exercising the paging core's Add/Generate/Reset/QueueLength
// operations by hand, without the OML/RSL stack a real BTS would sit
// behind.
//
// Grounded on internal/cmd/root.go's NewCommand(version, commit)
// constructor and config-load-then-wire-collaborators RunE shape.
package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/gsm-bts/pager/internal/logging"
	"github.com/gsm-bts/pager/internal/pagingbus"
	"github.com/gsm-bts/pager/internal/pagingconfig"
	"github.com/gsm-bts/pager/internal/pagingmetrics"
	"github.com/gsm-bts/pager/internal/pagingsubsystem"
	"github.com/gsm-bts/pager/internal/pagingtrace"
)

type subsystemKey struct{}

func withSubsystem(ctx context.Context, s *pagingsubsystem.Subsystem) context.Context {
	return context.WithValue(ctx, subsystemKey{}, s)
}

func subsystemFromContext(ctx context.Context) (*pagingsubsystem.Subsystem, error) {
	s, ok := ctx.Value(subsystemKey{}).(*pagingsubsystem.Subsystem)
	if !ok {
		return nil, fmt.Errorf("pagerctl: subsystem not wired into command context")
	}
	return s, nil
}

var defaultConfig = pagingconfig.Config{
	NumPagingMax:   1000,
	PagingLifetime: 30 * time.Second,
	CCCH:           pagingconfig.CcchDescriptor{BSAGBlksRes: 1, BSPAMfrms: 0},
}

// NewCommand builds the pagerctl root command.
func NewCommand(version, commit string) *cobra.Command {
	var configPath string
	var metricsBind string
	var metricsPort int
	var redisAddr string
	var otlpEndpoint string
	var tracerShutdown func(context.Context) error

	root := &cobra.Command{
		Use:     "pagerctl",
		Short:   "Bench tool for the GSM paging core",
		Version: fmt.Sprintf("%s (%s)", version, commit),
		PersistentPreRunE: func(c *cobra.Command, _ []string) error {
			cfg := defaultConfig
			if configPath != "" {
				loaded, err := pagingconfig.LoadYAML(configPath)
				if err != nil {
					return fmt.Errorf("failed to load config: %w", err)
				}
				cfg = loaded
			}

			logger := logging.New(os.Stdout, logging.LevelInfo)

			if otlpEndpoint != "" {
				shutdown, err := pagingtrace.Init(c.Context(), otlpEndpoint)
				if err != nil {
					logger.Error("failed to start tracer", "error", err)
				} else {
					tracerShutdown = shutdown
				}
			}

			opts := []pagingsubsystem.Option{}
			if metricsBind != "" {
				m := pagingmetrics.NewMetrics()
				opts = append(opts, pagingsubsystem.WithMetrics(m))
				go func() {
					if err := pagingmetrics.ServeMetrics(metricsBind, metricsPort); err != nil {
						logger.Error("metrics server stopped", "error", err)
					}
				}()
			}

			if redisAddr != "" {
				client := redis.NewClient(&redis.Options{Addr: redisAddr})
				opts = append(opts, pagingsubsystem.WithBus(pagingbus.NewMirror(client, logger)))
			}

			s, err := pagingsubsystem.New(cfg, logger, opts...)
			if err != nil {
				return fmt.Errorf("failed to build paging subsystem: %w", err)
			}
			c.SetContext(withSubsystem(c.Context(), s))
			return nil
		},
		PersistentPostRunE: func(c *cobra.Command, _ []string) error {
			if tracerShutdown == nil {
				return nil
			}
			return tracerShutdown(c.Context())
		},
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "path to a CCCH/queue config YAML file")
	root.PersistentFlags().StringVar(&metricsBind, "metrics-bind", "", "if set, serve Prometheus metrics on this host")
	root.PersistentFlags().IntVar(&metricsPort, "metrics-port", 9100, "port for the Prometheus metrics server")
	root.PersistentFlags().StringVar(&redisAddr, "redis-addr", "", "if set, mirror paging events to this Redis server's paging:events channel")
	root.PersistentFlags().StringVar(&otlpEndpoint, "otlp-endpoint", "", "if set, export paging spans to this OTLP/gRPC collector")

	root.AddCommand(newAddCommand(), newGenerateCommand(), newResetCommand(), newQueueLengthCommand())
	return root
}
