package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"tourney/client"
	"tourney/protocol"
	"tourney/repositories"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/go-playground/validator/v10"
	"github.com/mama165/sdk-go/logs"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
)

// Exit codes for the client application.
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	// The main function manages the OS exit code based on run()'s return.
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Client error: %v\n", err)
	}
	os.Exit(code)
}

// run handles the session lifecycle, configuration loading, and error
// propagation. Returning instead of exiting directly ensures the badger
// cleanup defers execute.
func run() (int, error) {
	// 1. Load configuration from environment variables.
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	if err := validator.New().Struct(config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}

	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Optional archive database.
	var repository *repositories.ResultRepository
	if config.BadgerFilepath != "" {
		db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
			WithLoggingLevel(badger.WARNING))
		if err != nil {
			return exitRuntime, fmt.Errorf("database opening failed: %w", err)
		}
		defer func() {
			log.Info("Closing BadgerDB...")
			_ = db.Close()
		}()
		repository = lo.ToPtr(repositories.NewResultRepository(db, log))
	}

	// 3. Context to handle termination signals (Ctrl+C) while dialing.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 4. Run one session against the tournament server.
	c := client.New(
		log,
		newRandomLogic(log),
		client.DebugMode{Reader: config.DebugReader, Writer: config.DebugWriter},
		config.Reservation,
		config.CloseGrace,
	)

	log.Info("Joining game", "host", config.Host, "port", config.Port)
	result, err := c.Connect(ctx, config.Host, config.Port)
	if err != nil {
		return exitRuntime, fmt.Errorf("session failed: %w", err)
	}

	printResult(result)

	// 5. Archive the outcome, if an archive is configured.
	if repository != nil {
		room, _ := c.Room()
		if err := repository.Store(repositories.NewGameRecord(room, result, time.Now().UTC())); err != nil {
			return exitRuntime, fmt.Errorf("archiving result: %w", err)
		}
		log.Info("Archived game result", "room", room)
	}

	return exitOK, nil
}

// printResult renders the server's score table to stdout.
func printResult(result protocol.GameResult) {
	table := tablewriter.NewWriter(os.Stdout)
	header := append([]string{"Player"}, lo.Map(result.Definition.Fragments,
		func(f protocol.ScoreFragment, _ int) string { return f.Name })...)
	header = append(header, "Cause")
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)

	for player, score := range result.Scores {
		row := append([]string{player.String()}, lo.Map(score.Parts,
			func(part int, _ int) string { return strconv.Itoa(part) })...)
		row = append(row, score.Cause.String())
		table.Append(row)
	}
	table.Render()

	if result.Winner != nil {
		fmt.Printf("Winner: %s\n", result.Winner)
	} else {
		fmt.Println("Draw")
	}
}
