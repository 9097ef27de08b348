// Command scores is a terminal client for the Scorepulse providers.
// It runs the same fetch-and-normalize pipeline as the API server and
// prints canonical JSON, useful for spot-checking upstream changes.
//
// Usage:
//
//	scorepulse-scores games nba --date 20260115
//	scorepulse-scores player nhl 3024816
//	scorepulse-scores standings cfb --conference SEC
//	scorepulse-scores leaderboard --tour pga
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/albapepper/scorepulse/internal/config"
	"github.com/albapepper/scorepulse/internal/provider/espn"
	"github.com/albapepper/scorepulse/internal/sport"
)

var logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

func main() {
	// Load .env if present
	_ = godotenv.Load(".env")

	root := &cobra.Command{
		Use:   "scorepulse-scores",
		Short: "Scorepulse terminal client",
	}

	root.AddCommand(gamesCmd())
	root.AddCommand(playerCmd())
	root.AddCommand(standingsCmd())
	root.AddCommand(leaderboardCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func gamesCmd() *cobra.Command {
	var date string
	cmd := &cobra.Command{
		Use:   "games <sport>",
		Short: "Print the scoreboard for a sport",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0], func(ctx context.Context, h *espn.Handler) (interface{}, error) {
				switch h.Sport().Family {
				case sport.FamilyGolf:
					return h.Leaderboard(ctx, "", date)
				case sport.FamilyRacing:
					return h.Races(ctx, date)
				case sport.FamilyMMA:
					return h.Cards(ctx, date)
				default:
					return h.Scoreboard(ctx, date)
				}
			})
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "Date (YYYYMMDD); empty = today")
	return cmd
}

func playerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "player <sport> <playerID>",
		Short: "Print the assembled player profile",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0], func(ctx context.Context, h *espn.Handler) (interface{}, error) {
				return h.PlayerDetail(ctx, args[1])
			})
		},
	}
}

func standingsCmd() *cobra.Command {
	var conference string
	cmd := &cobra.Command{
		Use:   "standings <sport>",
		Short: "Print the standings table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0], func(ctx context.Context, h *espn.Handler) (interface{}, error) {
				return h.Standings(ctx, conference)
			})
		},
	}
	cmd.Flags().StringVar(&conference, "conference", "", "Conference/group name filter")
	return cmd
}

func leaderboardCmd() *cobra.Command {
	var tour string
	cmd := &cobra.Command{
		Use:   "leaderboard",
		Short: "Print the golf tournament leaderboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run("golf", func(ctx context.Context, h *espn.Handler) (interface{}, error) {
				return h.Leaderboard(ctx, tour, "")
			})
		},
	}
	cmd.Flags().StringVar(&tour, "tour", "pga", "Tour (pga, lpga, eur)")
	return cmd
}

// run resolves the sport, executes fn, and prints indented JSON.
func run(sportKey string, fn func(ctx context.Context, h *espn.Handler) (interface{}, error)) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	cfg := config.Load()
	scfg, err := sport.Lookup(sportKey)
	if err != nil {
		return err
	}
	h := espn.New(espn.NewClient(cfg.ESPNRequestsPerMinute, logger), scfg, logger)

	out, err := fn(ctx, h)
	if err != nil {
		return fmt.Errorf("%s: %w", sportKey, err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
