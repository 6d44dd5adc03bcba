package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"klafsa/internal/logging"
	"klafsa/internal/processor"
	"klafsa/internal/tui"
)

var gltfCmd = &cobra.Command{
	Use:   "gltf [flags] <file.gltf>",
	Short: "Compress every texture of a glTF file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg.DocumentPath = args[0]
		if err := cfg.ValidateDocumentPath(); err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		log, err := logging.NewLogger(&cfg)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer log.Close()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		opts := processor.Options{
			DocumentPath: cfg.DocumentPath,
			Request:      cfg.PlanRequest(),
			Logger:       log,
		}

		var summary processor.Summary
		if cfg.Plain || !logging.IsTerminal(os.Stdout) {
			opts.Progress = func(p processor.Progress) {
				log.Debug("[%d/%d] %s -> %s: %s", p.Completed, p.Total, p.Label, p.Target, p.Outcome)
			}
			summary, err = processor.Run(ctx, opts)
		} else {
			summary, err = runWithProgress(ctx, log, opts)
		}
		if err != nil && summary.Completed == 0 && len(summary.Documents) == 0 {
			return err
		}

		fmt.Fprintln(os.Stdout, tui.RenderSummary(summaryRows(summary)))
		for _, doc := range summary.Documents {
			outPath := doc
			if abs, absErr := filepath.Abs(doc); absErr == nil {
				outPath = abs
			}
			fmt.Fprintf(os.Stdout, "glTF written to: %s\n", outPath)
		}
		return err
	},
}

func runWithProgress(ctx context.Context, log *logging.Logger, opts processor.Options) (processor.Summary, error) {
	updates := make(chan processor.Progress, 64)
	model := tui.NewModel("klafsa", updates)
	program := tea.NewProgram(model)

	// Ctrl-C reaches the program as a key press, so quitting the view
	// cancels the run.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	uiDone := make(chan struct{})
	go func() {
		_, _ = program.Run()
		cancel()
		close(uiDone)
	}()

	log.SetOutput(tui.Printer{Program: program})
	opts.Progress = func(p processor.Progress) {
		select {
		case updates <- p:
		case <-uiDone:
		}
	}
	summary, err := processor.Run(ctx, opts)

	log.SetOutput(nil)
	close(updates)
	<-uiDone
	return summary, err
}

func summaryRows(s processor.Summary) []tui.SummaryRow {
	return []tui.SummaryRow{
		{Label: "Output targets", Value: s.Plan.String()},
		{Label: "Texture/target pairs", Value: fmt.Sprintf("%d", s.Total)},
		{Label: "Compressed", Value: fmt.Sprintf("%d", s.Compressed)},
		{Label: "Skipped (view source)", Value: fmt.Sprintf("%d", s.SkippedView)},
		{Label: "Skipped (unsupported)", Value: fmt.Sprintf("%d", s.SkippedUnsupported)},
		{Label: "Failed", Value: fmt.Sprintf("%d", s.Failed)},
	}
}

func init() {
	rootCmd.AddCommand(gltfCmd)
}
