package main

import (
	"diabetes-intake/internal/config"
	"diabetes-intake/internal/intake"
	"diabetes-intake/internal/ledger"
	"diabetes-intake/internal/utils"
	"flag"
	"log"
	"os"

	"golang.org/x/term"
)

func main() {
	envFile := flag.String("env", ".env", "optional dotenv file with INTAKE_* settings")
	strictFlag := flag.Bool("strict", false, "validate answers and numeric ranges while collecting data")
	logFileFlag := flag.String("log-file", "", "audit log path (overrides INTAKE_LOG_FILE)")
	flag.Parse()

	cfg, err := config.Load(*envFile)
	if err != nil {
		log.Fatalf("config error: %v", err)
	}
	if *strictFlag {
		cfg.Strict = true
	}
	if *logFileFlag != "" {
		cfg.LogFile = *logFileFlag
	}

	utils.InitLogger(cfg.LogFile)

	l, err := ledger.Open(cfg.LedgerDSN)
	if err != nil {
		log.Fatalf("failed open ledger: %v", err)
	}
	defer l.Close()

	session := intake.NewSession(os.Stdin, os.Stdout, l, intake.Options{
		Strict:      cfg.Strict,
		ClearScreen: term.IsTerminal(int(os.Stdin.Fd())),
	})
	if err := session.Run(); err != nil {
		l.Close()
		log.Fatalf("intake error: %v", err)
	}
}
