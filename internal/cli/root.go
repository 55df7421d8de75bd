package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"neuroquest/internal/app"
	"neuroquest/internal/ui"
	"neuroquest/internal/worlds"
)

func Execute() error {
	return NewRoot().Execute()
}

var runTUI = func(a *app.App) error {
	return ui.Run(a)
}

func NewRoot() *cobra.Command {
	cfg := app.DefaultConfig()

	root := &cobra.Command{
		Use:   "neuroquest",
		Short: "Terminal brain training: memory, perspective, logic and prompt drills",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := app.New(cfg)
			if err != nil {
				return err
			}
			defer a.Close()
			return runTUI(a)
		},
		SilenceUsage: true,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&cfg.DataDir, "data-dir", "", "directory for saves and history (default ~/.local/share/neuroquest)")
	flags.StringVar(&cfg.ContentDir, "content-dir", "", "directory holding a custom pack.yaml")
	flags.StringVar(&cfg.PlayerName, "player", cfg.PlayerName, "player name")
	flags.StringVar(&cfg.Theme, "theme", cfg.Theme, "color theme: arcade, cozy or retro")
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn or error")
	flags.BoolVar(&cfg.ASCIIOnly, "ascii", false, "avoid non-ASCII glyphs in the interface")
	root.Flags().IntVar(&cfg.Gameplay.NBackLevel, "nback", cfg.Gameplay.NBackLevel, "memory drill N-back level (1-4)")
	root.Flags().IntVar(&cfg.Gameplay.MemoryTrials, "trials", cfg.Gameplay.MemoryTrials, "trials per memory drill")

	root.AddCommand(
		statsCmd(&cfg),
		exportCmd(&cfg),
		importCmd(&cfg),
		resetCmd(&cfg),
	)
	return root
}

func statsCmd(cfg *app.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print progression and session history",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := app.New(*cfg)
			if err != nil {
				return err
			}
			defer a.Close()

			stats, err := a.Stats(context.Background(), worlds.Today(time.Now()))
			if err != nil {
				return err
			}
			rec := stats.Record
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s  level %d  %d XP  streak %d  %d sessions\n",
				rec.Name, rec.Level, rec.XP, rec.Streak, rec.TotalSessions)
			for _, w := range worlds.All {
				fmt.Fprintf(out, "  %-20s tier %-3d high score %d", w.Title(), rec.WorldUnlocks[w], rec.HighScores[w])
				if p, ok := stats.Progress[w.String()]; ok {
					fmt.Fprintf(out, "  best %d%% over %d sessions", p.BestPercent, p.Sessions)
				}
				fmt.Fprintln(out)
			}
			fmt.Fprintf(out, "lifetime: %d sessions, %d boss runs, %d XP\n",
				stats.Summary.Sessions, stats.Summary.BossRuns, stats.Summary.TotalXP)
			if daily, err := a.Daily(context.Background(), time.Now()); err == nil {
				status := "pending"
				if daily.Completed {
					status = "complete"
				}
				fmt.Fprintf(out, "daily challenge: %s (%s)\n", daily.World, status)
			}
			for _, badge := range rec.Badges {
				fmt.Fprintf(out, "badge: %s\n", badge)
			}
			return nil
		},
	}
}

func exportCmd(cfg *app.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "export <file>",
		Short: "Export the player save to a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := app.New(*cfg)
			if err != nil {
				return err
			}
			defer a.Close()
			if err := a.ExportRecord(args[0]); err != nil {
				return fmt.Errorf("export save: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "save exported to %s\n", args[0])
			return nil
		},
	}
}

func importCmd(cfg *app.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Replace the player save with a previously exported file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := app.New(*cfg)
			if err != nil {
				return err
			}
			defer a.Close()
			rec, err := a.ImportRecord(args[0])
			if err != nil {
				return fmt.Errorf("import save: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "imported %s (level %d, %d XP)\n", rec.Name, rec.Level, rec.XP)
			return nil
		},
	}
}

func resetCmd(cfg *app.Config) *cobra.Command {
	var confirmed bool
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Reset progression to a fresh save",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !confirmed {
				return fmt.Errorf("refusing to reset without --yes")
			}
			a, err := app.New(*cfg)
			if err != nil {
				return err
			}
			defer a.Close()
			if _, err := a.ResetRecord(context.Background()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "progression reset")
			return nil
		},
	}
	cmd.Flags().BoolVar(&confirmed, "yes", false, "confirm the reset")
	return cmd
}
