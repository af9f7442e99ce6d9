package converterApp

import (
	"context"
	"fmt"
	"github.com/langowen/converter/deploy/config"
	"github.com/langowen/converter/internal/converter/adapter/api_client/exchangerate_api"
	"github.com/langowen/converter/internal/converter/engine"
	"github.com/langowen/converter/internal/converter/format"
	"github.com/langowen/converter/internal/converter/metrics"
	"github.com/langowen/converter/internal/converter/ports/http/admin"
	"github.com/langowen/converter/internal/converter/provider"
	"github.com/langowen/converter/internal/converter/session"
	"github.com/langowen/converter/internal/entities"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
)

// Process exit codes.
const (
	ExitOK      = 0
	ExitConfig  = 1
	ExitFetch   = 2
	ExitSession = 3
)

type ConverterApp struct {
	cfg    *config.Config
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

func NewConverterApp(cfg *config.Config, stdin io.Reader, stdout, stderr io.Writer) *ConverterApp {
	return &ConverterApp{
		cfg:    cfg,
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
	}
}

// Start fetches the rates once and runs the interactive session. It returns
// the process exit code.
func (a *ConverterApp) Start(ctx context.Context) int {
	a.initLogger()
	slog.Debug("Logger initialized")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	recorder := metrics.NewRecorder()
	if metricsDone := a.initMetricsServer(ctx, recorder); metricsDone != nil {
		defer func() {
			cancel()
			<-metricsDone
		}()
	}

	menu, err := session.NewMenu(entities.Currency(a.cfg.Exchange.Base), session.DefaultEntries())
	if err != nil {
		slog.Error("Failed to build menu", "error", err)
		a.println("❌ The menu does not match the configured base currency " + a.cfg.Exchange.Base + ".")
		return ExitConfig
	}

	apiKey := a.cfg.APIKey()
	if apiKey == "" {
		slog.Error("API key is not configured", "error", entities.ErrMissingAPIKey)
		a.println("❌ API key is not configured. Set api_key in " + a.cfg.Exchange.LocalPath + " or the EXCHANGE_API_KEY environment variable.")
		return ExitConfig
	}

	rates, err := a.fetchRates(ctx, apiKey, menu)
	recorder.Fetch(err)
	if err != nil {
		a.println("❌ Failed to fetch exchange rates: " + err.Error())
		return ExitFetch
	}
	a.println("✅ Exchange rates loaded")

	s, err := a.initSession(rates, menu, recorder)
	if err != nil {
		slog.Error("Failed to initialize session", "error", err)
		return ExitSession
	}

	if err := s.Run(ctx); err != nil {
		slog.Error("Session stopped", "error", err)
		return ExitSession
	}

	return ExitOK
}

func (a *ConverterApp) initLogger() {
	logger := slog.New(slog.NewTextHandler(a.stderr, &slog.HandlerOptions{
		Level:     a.cfg.LogLevel(),
		AddSource: false,
	}))
	slog.SetDefault(logger)
}

func (a *ConverterApp) initMetricsServer(ctx context.Context, recorder *metrics.Recorder) <-chan struct{} {
	if a.cfg.Metrics.Addr == "" {
		return nil
	}

	slog.Info("starting metrics server", "addr", a.cfg.Metrics.Addr)

	return admin.StartServer(ctx, a.cfg.Metrics.Addr, recorder.Registry())
}

func (a *ConverterApp) initProvider(menu *session.Menu) provider.Service {
	httpClient := exchangerate_api.NewHTTPClient()

	var p provider.Service = provider.NewProvider(
		httpClient,
		a.cfg.Exchange.URL,
		entities.Currency(a.cfg.Exchange.Base),
		menu.Currencies(),
	)
	p = provider.NewLoggingService(slog.With("component", "provider"), p)

	return p
}

// fetchRates is the only blocking network call. Interrupt aborts it; once it
// returns, signals get their default behaviour back.
func (a *ConverterApp) fetchRates(ctx context.Context, apiKey string, menu *session.Menu) (*entities.Rates, error) {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	return a.initProvider(menu).FetchRates(ctx, apiKey)
}

func (a *ConverterApp) initSession(rates *entities.Rates, menu *session.Menu, recorder *metrics.Recorder) (*session.Session, error) {
	return session.New(
		a.stdin,
		a.stdout,
		rates,
		menu,
		engine.NewConverter(entities.Currency(a.cfg.Exchange.Base)),
		format.NewFormatter(entities.Currency(a.cfg.Exchange.ZeroDecimal), a.cfg.Exchange.Precision),
		session.WithRecorder(recorder),
		session.WithLogger(slog.Default()),
	)
}

func (a *ConverterApp) println(line string) {
	_, _ = fmt.Fprintln(a.stdout, line)
}
