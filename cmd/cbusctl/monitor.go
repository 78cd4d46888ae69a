package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/danmuck/cbusctl/internal/config"
	"github.com/danmuck/cbusctl/internal/monitor"
	"github.com/danmuck/cbusctl/internal/observability"
	"github.com/danmuck/cbusctl/internal/transport"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func newMonitorCmd(opts *rootOptions) *cobra.Command {
	var port string
	cmd := &cobra.Command{
		Use:   "monitor",
		Short: "Log every frame on the bus, reconnecting when the adapter drops",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := monitorConfig(opts.configPath, port)
			if err != nil {
				return err
			}
			logger := observability.InitLogger("cbusctl")
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runMonitor(ctx, cfg, transport.SerialOpener(cfg.SerialConfig()), logger)
		},
	}
	cmd.Flags().StringVarP(&port, "port", "p", "", "serial device (overrides config)")
	return cmd
}

// monitorConfig tolerates a missing default config file when --port is given.
func monitorConfig(path, port string) (config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		if port == "" {
			return config.Config{}, err
		}
		if _, statErr := os.Stat(path); statErr == nil {
			return config.Config{}, err
		}
		cfg = config.Default()
	}
	if port != "" {
		cfg.Serial.Port = port
	}
	return cfg, cfg.Validate()
}

func runMonitor(ctx context.Context, cfg config.Config, open transport.Opener, logger zerolog.Logger) error {
	frames := logger.With().Str("component", "bus").Logger()
	svc := monitor.New(monitor.Config{
		Open:    open,
		Backoff: cfg.Backoff(),
		Logger:  &logger,
		Handler: func(ev monitor.Event) { logEvent(frames, ev) },
	})

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	serverErr := make(chan error, 1)
	if cfg.Metrics.Addr != "" {
		srv := observability.NewServer(cfg.Metrics.Addr, logger, svc.Connected)
		go func() {
			serverErr <- srv.Run(ctx)
		}()
		logger.Info().Str("addr", cfg.Metrics.Addr).Msg("metrics_listening")
	}

	err := svc.Run(ctx)
	cancel()
	if cfg.Metrics.Addr != "" {
		if serr := <-serverErr; serr != nil && err == nil {
			err = serr
		}
	}
	return err
}

func logEvent(logger zerolog.Logger, ev monitor.Event) {
	if ev.Err != nil {
		logger.Warn().Str("raw", ev.Raw).Err(ev.Err).Msg("bad_frame")
		return
	}
	logger.Info().
		Str("raw", ev.Raw).
		Uint8("can_id", ev.Message.Header.CANID).
		Fields(ev.Message.Map()).
		Msg(ev.Message.Mnemonic)
}
