package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/dias012rrr/fooddelivery/internal/application/auth"
	"github.com/dias012rrr/fooddelivery/internal/application/cart"
	"github.com/dias012rrr/fooddelivery/internal/application/catalog"
	"github.com/dias012rrr/fooddelivery/internal/application/profile"
	"github.com/dias012rrr/fooddelivery/internal/application/support"
	"github.com/dias012rrr/fooddelivery/internal/infrastructure/backendapi"
	"github.com/dias012rrr/fooddelivery/internal/infrastructure/localstore"
	httpiface "github.com/dias012rrr/fooddelivery/internal/interfaces/http"
	"github.com/dias012rrr/fooddelivery/internal/interfaces/view"
	"github.com/dias012rrr/fooddelivery/pkg/config"
	"github.com/dias012rrr/fooddelivery/pkg/logger"
)

const sessionTTL = 2 * time.Hour

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	store, err := localstore.Open(cfg.Store.Path)
	if err != nil {
		log.Fatal().Err(err).Msg("open local store")
	}

	api := backendapi.New(backendapi.Config{
		BaseURL: cfg.Backend.BaseURL,
		Timeout: cfg.Backend.Timeout,
	}, log)
	menuRepo := backendapi.NewMenuClient(api)
	accountRepo := backendapi.NewAccountClient(api)
	orderRepo := backendapi.NewOrderClient(api)
	supportRepo := backendapi.NewSupportClient(api)

	authUC := auth.NewUseCase(accountRepo, store, auth.RetryConfig{
		MaxAttempts: cfg.Backend.AuthRetryMax,
		Wait:        cfg.Backend.AuthRetryWait,
	}, log)
	localAccounts := auth.NewAccountManager(store)
	browser := catalog.NewBrowser(menuRepo, cfg.Catalog.MenuPageSize, cfg.Catalog.ServerPaged, log)
	cartUC := cart.NewUseCase(menuRepo, orderRepo, store, log)
	profileUC := profile.NewUseCase(accountRepo, orderRepo, store, cfg.Catalog.OrdersPageSize, log)
	supportUC := support.NewUseCase(supportRepo, log)

	// Revalidate any stored session before serving pages.
	restoreCtx, cancelRestore := context.WithTimeout(context.Background(), 30*time.Second)
	if sess, err := authUC.Restore(restoreCtx); err != nil {
		log.Warn().Err(err).Msg("session restore failed")
	} else if sess != nil {
		log.Info().Str("email", sess.User.Email).Msg("session restored")
	}
	cancelRestore()

	views := view.New()
	pages := httpiface.NewPageRenderer(views, store, authUC)
	registry := httpiface.NewSessionRegistry(cfg.Catalog.MenuPageSize, sessionTTL)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	httpiface.RegisterRoutes(app, registry, httpiface.Handlers{
		Site:    httpiface.NewSiteHandler(store, log),
		Menu:    httpiface.NewMenuHandler(browser, pages, log),
		Cart:    httpiface.NewCartHandler(cartUC, pages, log),
		Auth:    httpiface.NewAuthHandler(authUC, localAccounts, pages, log),
		Profile: httpiface.NewProfileHandler(profileUC, pages, log),
		Support: httpiface.NewSupportHandler(supportUC, log),
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
