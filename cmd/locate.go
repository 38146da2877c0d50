package main

import (
	"fmt"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/locate-cli/internal/model"
)

var (
	locateActivityPath string
	locateOutput       string
)

var locateCmd = &cobra.Command{
	Use:   "locate",
	Short: "Resolve the location of an activity file",
	Long:  "Extracts a representative coordinate from an activity JSON file, reverse-geocodes it, and finds the nearest named outdoor recreation area.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		path := locateActivityPath
		if path == "" {
			path = cfg.Locate.ActivityPath
		}

		activity, err := model.LoadActivity(path)
		if err != nil {
			return eris.Wrap(err, "load activity")
		}

		p := newPipeline(cfg)
		report, err := p.Run(ctx, activity)
		if err != nil {
			return err
		}

		zap.L().Info("locate complete",
			zap.String("run_id", report.RunID),
			zap.Bool("area_found", report.Selected != nil),
		)

		if locateOutput == "text" {
			fmt.Fprint(os.Stdout, report.Summary())
			return nil
		}
		return writeOutput(os.Stdout, report, locateOutput)
	},
}

func init() {
	locateCmd.Flags().StringVar(&locateActivityPath, "activity", "", "activity JSON file (default from config)")
	locateCmd.Flags().StringVarP(&locateOutput, "output", "o", "text", "output format: text, json, or yaml")
	rootCmd.AddCommand(locateCmd)
}
