package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/Leestalion/quittance/internal/cli"
	"github.com/Leestalion/quittance/internal/client"
	"github.com/Leestalion/quittance/internal/config"
	"github.com/Leestalion/quittance/internal/logging"
	"github.com/Leestalion/quittance/internal/session"
)

func main() {
	_ = godotenv.Load()

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadClient()
	if err != nil {
		return err
	}
	logging.SetupCLI(os.Stderr, cfg.SlogLevel())

	storage, err := session.NewBoltStorage(cfg.TokenPath)
	if err != nil {
		return fmt.Errorf("open session store: %w", err)
	}
	defer storage.Close()

	slot, err := session.Open(storage)
	if err != nil {
		return err
	}

	c := client.New(cfg.APIURL, slot, client.WithTimeout(cfg.Timeout))
	return cli.NewRootCmd(cli.NewApp(c, slot)).Execute()
}
