package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"ferti/database"
	"ferti/pkg/agronomy"
	"ferti/pkg/classifier"
	"ferti/pkg/weather"
	"ferti/router"

	adviceCtrlImp "ferti/pkg/advice/controllerImp"
	adviceSvcImp "ferti/pkg/advice/serviceImp"
	healthCtrlImp "ferti/pkg/health/controllerImp"
	historyCtrlImp "ferti/pkg/history/controllerImp"
	historyRepoImp "ferti/pkg/history/repositoryImp"
	irrigationCtrlImp "ferti/pkg/irrigation/controllerImp"
	irrigationSvcImp "ferti/pkg/irrigation/serviceImp"
	weatherCtrlImp "ferti/pkg/weather/controllerImp"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE:  runServe,
}

// loadRules reads RULES_FILE, or the built-in table when unset.
func loadRules() (agronomy.RulesEngine, error) {
	rules, err := agronomy.LoadFromFile(cfg.RulesFile)
	if err != nil {
		return nil, err
	}
	if cfg.RulesFile != "" {
		logger.Info("rules loaded", zap.String("file", cfg.RulesFile))
	}
	return rules, nil
}

// loadModel connects to the classifier. A failure is logged and yields a
// nil model so the rest of the service keeps working.
func loadModel(ctx context.Context) *classifier.Model {
	var client classifier.Client
	if cfg.ClassifierEndpoint != "" {
		client = classifier.NewHTTP(cfg.ClassifierEndpoint, cfg.ClassifierTimeout)
	}
	ctx, cancel := context.WithTimeout(ctx, cfg.ClassifierTimeout)
	defer cancel()
	model, err := classifier.Load(ctx, client, cfg.LabelsFile)
	if err != nil {
		logger.Warn("classifier unavailable; /predict will report it", zap.Error(err))
		return nil
	}
	return model
}

func newWeather() *weather.Client {
	return weather.New(weather.Options{
		Endpoint:   cfg.WeatherEndpoint,
		GeoIP:      cfg.GeoIPEndpoint,
		Timeout:    cfg.WeatherTimeout,
		CacheSize:  cfg.WeatherCacheSize,
		CacheTTL:   cfg.WeatherCacheTTL,
		DefaultLat: cfg.DefaultLat,
		DefaultLon: cfg.DefaultLon,
	}, logger)
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rules, err := loadRules()
	if err != nil {
		return err
	}
	db, err := database.OpenSQLite(cfg.DBPath)
	if err != nil {
		return err
	}
	model := loadModel(ctx)
	repo := historyRepoImp.New(db)

	e := echo.New()
	e.HideBanner = true
	router.New(e, logger, router.Controllers{
		Advice:     adviceCtrlImp.New(adviceSvcImp.NewAdviceService(model, rules, repo, logger)),
		Irrigation: irrigationCtrlImp.New(irrigationSvcImp.NewIrrigationService(rules, repo, logger)),
		Weather:    weatherCtrlImp.New(newWeather()),
		History:    historyCtrlImp.New(repo),
		Health:     healthCtrlImp.NewHealthCtrl(db, model),
	})

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("listening", zap.String("port", cfg.Port), zap.Bool("classifier", model.Ready()))
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		logger.Info("shutting down")
		return shutdown(shutdownCtx, e, db)
	})
	return g.Wait()
}

// shutdown drains the HTTP server, then closes the database.
func shutdown(ctx context.Context, e *echo.Echo, db *gorm.DB) error {
	return errors.Join(e.Shutdown(ctx), database.Close(db))
}
