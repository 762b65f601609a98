package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"
	"time"

	"github.com/api-sage/corebank-client/src/internal/adapter/http/client"
	"github.com/api-sage/corebank-client/src/internal/adapter/http/models"
	"github.com/api-sage/corebank-client/src/internal/config"
	"github.com/api-sage/corebank-client/src/internal/logger"
	"github.com/api-sage/corebank-client/src/internal/session"
	"github.com/api-sage/corebank-client/src/internal/usecase/services"
)

func main() {
	name := flag.String("name", "", "account display name")
	email := flag.String("email", "", "contact email")
	accountType := flag.String("type", "checking", "checking, savings or business")
	initialBalance := flag.String("balance", "", "initial balance, e.g. 100.00")
	deposit := flag.String("deposit", "", "optional deposit to post to the new account")
	sync := flag.Bool("sync", false, "pull existing accounts from the remote service first")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	if err := logger.Init(cfg.LogLevel, cfg.Environment); err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logger.Sync()

	var opts []session.Option
	if cfg.SeedDemoData {
		opts = append(opts, session.WithDemoData())
	}
	sess, err := session.New(opts...)
	if err != nil {
		log.Fatalf("build session: %v", err)
	}

	bank := client.NewBankClient(
		cfg.BankServiceURL,
		client.WithHTTPClient(client.NewHTTPClient(client.TransportConfig{ClientTimeout: cfg.RequestTimeout})),
		client.WithRateLimit(cfg.RemoteRateLimit, cfg.RemoteRateBurst),
	)

	accounts := services.NewAccountService(sess, bank)
	transactions := services.NewTransactionService(sess)
	queries := services.NewQueryService(sess)

	ctx, cancel := context.WithTimeout(context.Background(), 2*cfg.RequestTimeout+5*time.Second)
	defer cancel()

	if *sync {
		if _, err := accounts.SyncAccounts(ctx); err != nil {
			log.Printf("sync accounts: %v", err)
		}
	}

	if *name != "" {
		created, err := accounts.CreateAccount(ctx, models.CreateAccountRequest{
			Name:           *name,
			Email:          *email,
			Type:           *accountType,
			InitialBalance: *initialBalance,
		})
		if err != nil {
			writeJSON(created)
			os.Exit(1)
		}

		if *deposit != "" {
			posted, err := transactions.CreateTransaction(ctx, models.CreateTransactionRequest{
				AccountID:   created.Data.ID,
				Kind:        "deposit",
				Amount:      *deposit,
				Description: "Initial deposit",
			})
			if err != nil {
				writeJSON(posted)
				os.Exit(1)
			}
		}
	}

	all := queries.ListAccounts(ctx)
	total, err := queries.TotalBalance(ctx)
	if err != nil {
		log.Fatalf("total balance: %v", err)
	}
	writeJSON(map[string]any{
		"summary": models.TotalBalanceResponse{
			AccountCount: len(all),
			TotalBalance: total.String(),
		},
		"recentTransactions": models.TransactionsFromDomain(queries.RecentTransactions(ctx)),
	})
}

func writeJSON(payload any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(payload)
}
