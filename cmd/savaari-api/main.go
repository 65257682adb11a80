// README: Entry point; loads config and reference data, wires services, starts the HTTP server.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"savaari/internal/config"
	"savaari/internal/gateway"
	httptransport "savaari/internal/http"
	"savaari/internal/infra"
	"savaari/internal/modules/booking"
	"savaari/internal/modules/catalog"
	"savaari/internal/modules/directory"
	"savaari/internal/modules/fare"
	"savaari/internal/modules/ledger"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cat, err := catalog.LoadFile(cfg.Data.RoutesPath)
	if err != nil {
		log.Fatalf("load routes: %v", err)
	}
	dir, err := directory.LoadFile(cfg.Data.DriversPath)
	if err != nil {
		log.Fatalf("load drivers: %v", err)
	}
	log.Printf("loaded %d routes, %d drivers", cat.Len(), len(dir.All()))

	dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
	if err != nil {
		log.Fatal(err)
	}
	defer dbPool.Close()

	redisClient := infra.NewRedis(cfg.Redis.Addr)

	if cfg.Firebase.ProjectID == "" {
		log.Fatal("SAVAARI_FIREBASE_PROJECT_ID is required")
	}
	fcmClient, err := infra.NewMessagingClient(ctx, cfg.Firebase.ProjectID, cfg.Firebase.CredentialsFile)
	if err != nil {
		log.Fatalf("firebase init: %v", err)
	}

	if cfg.Sheets.SpreadsheetID == "" {
		log.Fatal("SAVAARI_SHEET_ID is required")
	}
	sheetsSvc, err := infra.NewSheetsService(ctx, cfg.Sheets.CredentialsFile)
	if err != nil {
		log.Fatalf("sheets init: %v", err)
	}

	resolver := fare.NewResolver()

	ledgerStore := ledger.NewStore(dbPool)
	ledgerSvc := ledger.NewService(ledgerStore, dir)

	notifier := gateway.NewFCMNotifier(fcmClient, cfg.Dispatch.RetryAttempts)
	tripLog := gateway.NewSheetsLogger(sheetsSvc, cfg.Sheets.SpreadsheetID, cfg.Sheets.Range, cfg.Dispatch.RetryAttempts)
	dispatchStore := booking.NewDispatchStore(redisClient)

	bookingSvc := booking.NewService(cat, resolver, dir, ledgerSvc, notifier, tripLog, dispatchStore)

	router := httptransport.NewRouter(httptransport.RouterDeps{
		Catalog:   cat,
		Resolver:  resolver,
		Directory: dir,
		Ledger:    ledgerSvc,
		Booking:   bookingSvc,
	})

	server := &http.Server{
		Addr:         cfg.HTTP.Addr,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	log.Printf("listening on %s", cfg.HTTP.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
