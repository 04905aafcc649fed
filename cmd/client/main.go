// Command client is a small command-line client of a running novera server.
//
// Usage:
//
//	client [-a address] [-u username -p password] <command> [args]
//
// Commands: version, novels, novel <id>, chapters <id>, me, statuses,
// status <id> <label>.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/MKhiriev/novera/internal/adapter"
	"github.com/MKhiriev/novera/internal/logger"
	"github.com/MKhiriev/novera/models"
)

var errUsage = errors.New("usage: client [-a address] [-u username -p password] <command> [args]")

func main() {
	address := flag.String("a", "localhost:8080", "server address")
	username := flag.String("u", "", "username to log in with")
	password := flag.String("p", "", "password to log in with")
	timeout := flag.Duration("timeout", 10*time.Second, "request timeout")
	logLevel := flag.String("log-level", "warn", "log level")
	flag.Parse()

	log := logger.NewLoggerWithWriter(os.Stderr, "novera-client", *logLevel)

	client, err := adapter.NewHTTPServerAdapter(*address, *timeout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating client")
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if *username != "" {
		if _, err = client.Login(ctx, models.LoginRequest{Username: *username, Password: *password}); err != nil {
			log.Fatal().Err(err).Msg("login failed")
		}
	}

	result, err := run(ctx, client, flag.Args())
	if err != nil {
		log.Fatal().Err(err).Msg("command failed")
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err = encoder.Encode(result); err != nil {
		log.Fatal().Err(err).Msg("error printing result")
	}
}

func run(ctx context.Context, client adapter.ServerAdapter, args []string) (any, error) {
	if len(args) == 0 {
		return nil, errUsage
	}

	switch args[0] {
	case "version":
		return client.Version(ctx)
	case "novels":
		return client.ListNovels(ctx, 0, 100)
	case "me":
		return client.Me(ctx)
	case "statuses":
		return client.ListStatuses(ctx)
	case "novel", "chapters":
		if len(args) != 2 {
			return nil, errUsage
		}
		id, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid novel id %q: %w", args[1], err)
		}
		if args[0] == "novel" {
			return client.GetNovel(ctx, id)
		}
		return client.ListChapters(ctx, id)
	case "status":
		if len(args) != 3 {
			return nil, errUsage
		}
		id, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid novel id %q: %w", args[1], err)
		}
		return client.SetStatus(ctx, id, models.ReadingStatus(args[2]))
	default:
		return nil, fmt.Errorf("%w: unknown command %q", errUsage, args[0])
	}
}
