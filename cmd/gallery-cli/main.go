package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/galleryget/gallery-downloader/internal/config"
	"github.com/galleryget/gallery-downloader/internal/download"
	"github.com/galleryget/gallery-downloader/internal/gallerydl"
	"github.com/galleryget/gallery-downloader/internal/platform"
	"github.com/galleryget/gallery-downloader/internal/report"
	"github.com/galleryget/gallery-downloader/internal/title"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := &cli.Command{
		Name:      "gallery-cli",
		Usage:     "download image galleries into titled folders via gallery-dl",
		ArgsUsage: "[url ...]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "dir",
				Aliases: []string{"d"},
				Usage:   "destination base directory",
			},
			&cli.StringFlag{
				Name:  "bin",
				Usage: "path to the gallery-dl executable",
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Usage: "page title fetch timeout",
			},
			&cli.StringFlag{
				Name:  "env",
				Usage: "environment file path",
				Value: ".env",
			},
		},
		Action: run,
	}

	if err := cmd.Run(ctx, os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	env, err := config.LoadEnv(cmd.String("env"))
	if err != nil {
		return err
	}

	// Flags override environment, environment overrides defaults.
	baseDir := firstNonEmpty(cmd.String("dir"), env.BaseDir, platform.DefaultBaseDir())
	binPath := firstNonEmpty(cmd.String("bin"), env.Bin)
	timeout := env.TitleTimeout
	if d := cmd.Duration("timeout"); d > 0 {
		timeout = d
	}

	logger := log.New(os.Stdout, "", log.LstdFlags)

	urls, err := collectURLs(cmd.Args().Slice(), logger)
	if err != nil {
		return err
	}
	logger.Printf("found %d URL(s) to process", len(urls))

	resolver := title.NewResolver(title.WithTimeout(timeout))
	invoker := gallerydl.NewInvoker(gallerydl.WithBinary(binPath))
	svc := download.NewService(resolver, invoker, baseDir, logger)

	jobs, err := svc.AddBatch(urls)
	if err != nil {
		return err
	}

	tracker := report.NewTracker(jobs)
	reporter := report.NewConsoleReporter(tracker, logger)
	svc.SetUpdateCallback(reporter.OnUpdate)

	if err := svc.Run(ctx); err != nil {
		return err
	}

	reporter.Summary()
	logger.Printf("files saved to: %s", baseDir)

	if failed := tracker.Total() - tracker.SucceededCount(); failed > 0 {
		return cli.Exit(fmt.Sprintf("%d of %d downloads failed", failed, tracker.Total()), 1)
	}
	return nil
}

// collectURLs takes URLs from the arguments, or prompts for them when none
// were given: lines are read until the first blank line, mixing newline- and
// space-separated URLs.
func collectURLs(args []string, logger *log.Logger) ([]string, error) {
	text := strings.Join(args, " ")

	if strings.TrimSpace(text) == "" {
		fmt.Println("Paste one or more gallery URLs (space or newline separated).")
		fmt.Println("Press Enter twice when done:")

		var lines []string
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				break
			}
			lines = append(lines, line)
		}
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("read input: %w", err)
		}
		text = strings.Join(lines, " ")
	}

	urls, skipped := download.ParseURLs(text)
	for _, token := range skipped {
		logger.Printf("skipping invalid URL: %s", token)
	}
	if len(urls) == 0 {
		return nil, fmt.Errorf("no valid URLs provided")
	}
	return urls, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
