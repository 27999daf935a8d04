package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/joho/godotenv"

	"github.com/fabfab/docchat/api"
	"github.com/fabfab/docchat/cite"
	"github.com/fabfab/docchat/collection"
	"github.com/fabfab/docchat/config"
	"github.com/fabfab/docchat/gateway"
	"github.com/fabfab/docchat/llm"
	"github.com/fabfab/docchat/transcript"
)

func main() {
	logger := log.New(os.Stdout, "", log.LstdFlags)

	_ = godotenv.Load()

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cfg := config.Load()

	switch os.Args[1] {
	case "serve":
		serveCmd(cfg, logger, os.Args[2:])
	case "ask":
		askCmd(cfg, logger, os.Args[2:])
	case "collection":
		collectionCmd(cfg, logger, os.Args[2:])
	default:
		logger.Printf("unknown command: %s", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func serveCmd(cfg config.Config, logger *log.Logger, args []string) {
	flags := flag.NewFlagSet("serve", flag.ExitOnError)
	addr := flags.String("addr", cfg.ListenAddr, "address to listen on")
	if err := flags.Parse(args); err != nil {
		logger.Fatalf("parse serve flags: %v", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	srv := &http.Server{
		Addr:    *addr,
		Handler: api.New(cfg, logger),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Printf("listening on %s", *addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("serve: %v", err)
		}
	case <-ctx.Done():
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Fatalf("shutdown: %v", err)
		}
		logger.Println("server stopped")
	}
}

func askCmd(cfg config.Config, logger *log.Logger, args []string) {
	flags := flag.NewFlagSet("ask", flag.ExitOnError)
	question := flags.String("question", "", "one-shot question; omit for an interactive session")
	if err := flags.Parse(args); err != nil {
		logger.Fatalf("parse ask flags: %v", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	svc := gateway.NewService(llm.NewClient(cfg), logger)

	if strings.TrimSpace(*question) != "" {
		result, err := svc.SubmitQuery(ctx, strings.TrimSpace(*question))
		if err != nil {
			logger.Fatalf("ask failed: %v", err)
		}
		printResult(result)
		return
	}

	runInteractive(ctx, svc, logger)
}

// runInteractive keeps an append-only transcript for the session. The user
// message is appended before the call; on failure no assistant message is
// added and the loop continues.
func runInteractive(ctx context.Context, svc *gateway.Service, logger *log.Logger) {
	boldGreen := color.New(color.FgGreen, color.Bold).SprintFunc()
	fmt.Println(boldGreen("docchat interactive session"))
	fmt.Println("Type your question and press Enter. Type 'exit' or press Ctrl+C to quit.")
	fmt.Println()

	session := transcript.NewLog()
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		message := strings.TrimSpace(scanner.Text())
		if message == "" {
			continue
		}
		if message == "exit" {
			break
		}

		session.Append(transcript.RoleUser, message, nil)

		result, err := svc.SubmitQuery(ctx, message)
		if err != nil {
			color.Red("%v", err)
			continue
		}

		session.Append(transcript.RoleAssistant, result.Content, result.Citations)
		printResult(result)
	}

	if err := scanner.Err(); err != nil {
		logger.Fatalf("read input: %v", err)
	}
	logger.Printf("session ended after %d messages", session.Len())
}

func printResult(result gateway.Result) {
	fmt.Println(result.Content)
	if len(result.Citations) == 0 {
		fmt.Println()
		return
	}

	cyan := color.New(color.FgCyan).SprintFunc()
	fmt.Println()
	fmt.Println("Sources:")
	for _, c := range result.Citations {
		formatted := cite.Format(c.Filename)
		if formatted.URL != "" {
			fmt.Printf("  [%d] %s (%s)\n", c.Index, formatted.DisplayName, cyan(formatted.URL))
		} else {
			fmt.Printf("  [%d] %s\n", c.Index, formatted.DisplayName)
		}
	}
	fmt.Println()
}

func collectionCmd(cfg config.Config, logger *log.Logger, args []string) {
	flags := flag.NewFlagSet("collection", flag.ExitOnError)
	showFiles := flags.Bool("files", false, "list file ids in the collection")
	if err := flags.Parse(args); err != nil {
		logger.Fatalf("parse collection flags: %v", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	summary, err := collection.Inspect(ctx, cfg)
	if err != nil {
		logger.Fatalf("inspect collection: %v", err)
	}

	fmt.Printf("Collection: %s (%s)\n", summary.Name, summary.ID)
	fmt.Printf("Status: %s\n", summary.Status)
	fmt.Printf("Files indexed: %d/%d\n", summary.FilesCompleted, summary.FilesTotal)
	if *showFiles {
		for _, id := range summary.FileIDs {
			fmt.Printf("  - %s\n", id)
		}
	}
}

func printUsage() {
	fmt.Println("Usage: docchat <command> [options]")
	fmt.Println("Commands:")
	fmt.Println("  serve       Start the chat web server (use --addr to override the listen address)")
	fmt.Println("  ask         Query the document collection from the terminal")
	fmt.Println("  collection  Inspect the configured document collection")
}
