package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/orbitalmech/neoscope/internal/config"
	"github.com/orbitalmech/neoscope/internal/tui"
	"github.com/orbitalmech/neoscope/internal/watch"
)

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Launch the interactive close-approach explorer",
	Long: `Interactive starts a terminal session with a command prompt over the
loaded database. Type "help" inside the session for the command language.
While the session runs, the dataset files are watched; editing or replacing
either one rebuilds the database in place.`,
	Args: cobra.NoArgs,
	RunE: runInteractive,
}

func init() {
	interactiveCmd.Flags().Bool("no-watch", false, "disable dataset file watching")
	rootCmd.AddCommand(interactiveCmd)
}

func runInteractive(cmd *cobra.Command, _ []string) error {
	cfg := loadConfig(cmd)

	db, err := loadDatabase(cfg)
	if err != nil {
		return err
	}

	program := tui.NewProgram(db, cfg.DefaultLimit)

	noWatch, _ := cmd.Flags().GetBool("no-watch")
	if !noWatch {
		w, watchErr := watch.New(cfg.NEOCSV, cfg.CADJSON)
		if watchErr != nil {
			fmt.Fprintf(os.Stderr, "warning: dataset watcher unavailable: %v\n", watchErr)
		} else if startErr := w.Start(); startErr != nil {
			fmt.Fprintf(os.Stderr, "warning: dataset watcher start failed: %v\n", startErr)
		} else {
			defer w.Stop()
			go forwardReloads(program, w, cfg)
		}
	}

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("interactive session: %w", err)
	}
	return nil
}

// forwardReloads rebuilds the database on each dataset change and hands the
// fresh copy to the running session. The old database is never mutated; a
// failed reload keeps it in place.
func forwardReloads(program *tea.Program, w *watch.Watcher, cfg config.Config) {
	for change := range w.Changes {
		db, err := loadDatabase(cfg)
		if err != nil {
			program.Send(tui.MsgReloadFailed{Path: change.Path, Err: err})
			continue
		}
		program.Send(tui.MsgDatasetReloaded{DB: db, Path: change.Path})
	}
}
