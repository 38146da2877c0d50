package main

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sells-group/locate-cli/internal/model"
)

var (
	batchDir    string
	batchOutput string
)

// batchResult pairs an activity file with its resolved report or failure.
type batchResult struct {
	File   string        `json:"file"`
	Report *model.Report `json:"report,omitempty"`
	Error  string        `json:"error,omitempty"`
}

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Resolve locations for a directory of activity files",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		paths, err := filepath.Glob(filepath.Join(batchDir, "*.json"))
		if err != nil {
			return eris.Wrap(err, "list activity files")
		}
		if len(paths) == 0 {
			return eris.Errorf("no activity files found in %s", batchDir)
		}

		p := newPipeline(cfg)
		results := make([]batchResult, len(paths))

		eg, gCtx := errgroup.WithContext(ctx)
		eg.SetLimit(cfg.Batch.MaxConcurrentActivities)

		for i, path := range paths {
			eg.Go(func() error {
				results[i] = batchResult{File: path}

				activity, loadErr := model.LoadActivity(path)
				if loadErr != nil {
					results[i].Error = loadErr.Error()
					return nil
				}

				report, runErr := p.Run(gCtx, activity)
				if runErr != nil {
					// Missing coordinates fails this file, not the batch.
					if errors.Is(runErr, model.ErrMissingCoordinates) {
						results[i].Error = runErr.Error()
						return nil
					}
					return runErr
				}

				results[i].Report = report
				return nil
			})
		}

		if err := eg.Wait(); err != nil {
			return err
		}

		located := 0
		for _, r := range results {
			if r.Report != nil && r.Report.Selected != nil {
				located++
			}
		}
		zap.L().Info("batch complete",
			zap.Int("files", len(paths)),
			zap.Int("located", located),
		)

		return writeOutput(os.Stdout, results, batchOutput)
	},
}

func init() {
	batchCmd.Flags().StringVar(&batchDir, "dir", "", "directory of activity JSON files (required)")
	batchCmd.Flags().StringVarP(&batchOutput, "output", "o", "json", "output format: json or yaml")
	_ = batchCmd.MarkFlagRequired("dir")
	rootCmd.AddCommand(batchCmd)
}
