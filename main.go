package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	"github.com/joho/godotenv"
	"github.com/kylycht/converter/controller/widget"
	"github.com/kylycht/converter/converter"
	_ "github.com/kylycht/converter/docs"
	"github.com/kylycht/converter/metrics"
	"github.com/kylycht/converter/page"
	"github.com/kylycht/converter/service"
	"github.com/kylycht/converter/service/nbrb"
	"github.com/kylycht/converter/storage"
	"github.com/kylycht/converter/storage/persistence"
	"github.com/kylycht/converter/storage/static"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

//	@title			NBRB Converter
//	@version		1.0
//	@description	Currency converter widgets backed by National Bank of the Republic of Belarus rates

// @host		localhost:3000
func main() {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file found")
	}

	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "config.yaml"
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		log.Error().Err(err).Msg("unable to read configuration file")
		os.Exit(1)
	}

	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(level)
	}

	if err := New(cfg); err != nil {
		log.Error().Err(err).Msg("unable to initialize application")
		os.Exit(1)
	}
}

func New(cfg Config) error {
	a := Application{cfg: cfg}
	return a.init()
}

type Application struct {
	cfg            Config                 // application configuration
	fiberApp       *fiber.App             // underlying fiber application
	db             storage.Storage        // widget definitions provider
	dbConn         *sql.DB                // underlying persistence connection, nil for static definitions
	exchangeClient service.Exchange       // exchange rates provider
	doc            *page.Document         // host page widgets are mounted into
	widgets        []*converter.Converter // mounted widgets
	cancelFn       context.CancelFunc     // stops in flight fetches
	stopC          chan os.Signal         // handle interrupt for clean up(close connections, etc)
}

func (a *Application) init() error {
	a.fiberApp = fiber.New()
	a.stopC = make(chan os.Signal, 1)
	signal.Notify(a.stopC, os.Interrupt)

	ctx, cancelFn := context.WithCancel(context.Background())
	a.cancelFn = cancelFn

	if err := a.initStorage(); err != nil {
		return err
	}

	exchangeClient, err := nbrb.New(nbrb.Config{
		BaseURL:     a.cfg.ExchangeURL,
		Base:        a.cfg.BaseCurrency,
		Periodicity: a.cfg.Periodicity,
		Timeout:     a.cfg.FetchTimeout,
		RPS:         a.cfg.RPS,
		Burst:       a.cfg.Burst,
		MaxInFlight: a.cfg.MaxInFlight,
	})
	if err != nil {
		log.Error().Err(err).Msg("unable to create exchange client")
		return err
	}

	a.exchangeClient = exchangeClient

	doc, err := page.Load(a.cfg.HostPage)
	if err != nil {
		log.Error().Err(err).Str("path", a.cfg.HostPage).Msg("unable to load host page")
		return err
	}

	a.doc = doc

	if err := a.mountWidgets(ctx); err != nil {
		return err
	}

	a.buildRoutes()
	go a.stop()
	log.Debug().Int("widgets", len(a.widgets)).Msg("preparing fiber http server")

	if err := a.fiberApp.Listen(a.cfg.HTTPPort); err != nil {
		log.Error().Err(err).Msg("unable to start http server")
	}

	return nil
}

func (a *Application) initStorage() error {
	if a.cfg.DBHost == "" {
		a.db = static.New(a.cfg.Widgets)
		return nil
	}

	connStr := fmt.Sprintf("postgresql://%s:%s@%s:%s/%s?sslmode=disable",
		a.cfg.DBUsername,
		a.cfg.DBPassword,
		a.cfg.DBHost,
		a.cfg.DBPort,
		a.cfg.DBName,
	)
	log.Debug().Str("host", a.cfg.DBHost).Str("db", a.cfg.DBName).Msg("initialize db connection")

	dbConn, err := sql.Open("postgres", connStr)
	if err != nil {
		log.Error().Err(err).Msg("unable to connect to db")
		return err
	}

	a.dbConn = dbConn
	a.db = persistence.New(dbConn)

	return nil
}

// mountWidgets creates one converter per definition.
// A widget failing to mount is dropped, the rest keep going
func (a *Application) mountWidgets(ctx context.Context) error {
	specs, err := a.db.Load(ctx)
	if err != nil {
		log.Error().Err(err).Msg("unable to load widget definitions")
		return err
	}

	for _, spec := range specs {
		// no fetch for a widget without a container
		if !a.doc.Has(spec.Root) {
			metrics.MountsTotal.WithLabelValues("failed").Inc()
			log.Error().Err(fmt.Errorf("%w: %s", page.ErrRootNotFound, spec.Root)).Str("widget", spec.Name).Msg("unable to mount widget")
			continue
		}

		c := converter.New(ctx, a.exchangeClient, spec)

		if err := c.Mount(a.doc, spec.Root); err != nil {
			log.Error().Err(err).Str("widget", c.Name()).Msg("unable to mount widget")
			continue
		}

		a.widgets = append(a.widgets, c)
	}

	return nil
}

func (a *Application) buildRoutes() {
	a.fiberApp.Get("/swagger/*", swagger.HandlerDefault)
	a.fiberApp.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	widget.New(a.doc, a.widgets).Register(a.fiberApp)
}

func (a *Application) stop() {
	<-a.stopC
	a.cancelFn()
	a.fiberApp.Shutdown()
	if a.dbConn != nil {
		a.dbConn.Close()
	}
	os.Exit(0)
}
