package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/walletapp/wallet/internal/config"
	"github.com/walletapp/wallet/internal/currency"
	"github.com/walletapp/wallet/internal/database"
	"github.com/walletapp/wallet/internal/ledger"
	"github.com/walletapp/wallet/internal/notify"
	"github.com/walletapp/wallet/internal/recurring"
	"github.com/walletapp/wallet/internal/repository"
	"github.com/walletapp/wallet/internal/scheduler"
)

func main() {
	seed := flag.Bool("seed", false, "seed the database with demo data and exit")
	processOnce := flag.Bool("process-once", false, "run one due-processing batch and exit")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if cfg.DatabaseURI == "" {
		log.Fatal("DATABASE_URI is required")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := database.New(ctx, cfg.DatabaseURI)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()
	log.Println("Connected to database")

	if err := db.Migrate(ctx); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	userRepo := repository.NewUserRepository(db)
	accountRepo := repository.NewAccountRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	transactionRepo := repository.NewTransactionRepository(db)
	recurringRepo := repository.NewRecurringTransactionRepository(db)

	converter := currency.NewConverter(cfg.BaseCurrency, cfg.CurrencyRates)
	ledgerSvc := ledger.NewService(accountRepo, transactionRepo, converter)
	recurringSvc := recurring.NewService(recurringRepo)

	if *seed {
		if err := seedDemoData(ctx, userRepo, accountRepo, categoryRepo, recurringSvc, ledgerSvc); err != nil {
			log.Fatalf("Failed to seed demo data: %v", err)
		}
		log.Println("Demo data seeded")
		return
	}

	if *processOnce {
		result, err := recurringSvc.ProcessBatch(ctx, time.Now())
		if err != nil {
			log.Fatalf("Failed to process due recurring transactions: %v", err)
		}
		log.Printf("Processed %d/%d due recurring transactions", result.Processed, result.TotalDue)
		return
	}

	var notifier scheduler.Notifier
	if cfg.TelegramToken != "" && cfg.TelegramChatID != 0 {
		tg, err := notify.NewTelegram(cfg.TelegramToken, cfg.TelegramChatID)
		if err != nil {
			log.Fatalf("Failed to initialize Telegram notifier: %v", err)
		}
		notifier = tg
		log.Println("Telegram notifications enabled")
	} else {
		log.Println("Telegram notifications not configured")
	}

	sched := scheduler.New(recurringSvc, notifier, cfg.PollInterval)
	go sched.Start(ctx)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	log.Printf("Received signal %v, shutting down", sig)
	cancel()
}
