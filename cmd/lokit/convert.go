package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/lokit-go/lokit/internal/convert"
)

var convertCmd = &cobra.Command{
	Use:   "convert [files...]",
	Short: "Convert documents to another format",
	Long: `Convert loads each input document and exports it in the requested
format. Outputs land in the directory given by --out, named after the
input with the format's extension. Existing outputs are skipped unless
--force is set.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runConvert,
}

func init() {
	f := convertCmd.Flags()
	f.String("format", "pdf", "export format (pdf, docx, odt, png, ...)")
	f.String("out", ".", "output directory")
	f.String("filter", "", "native export filter options string")
	f.String("load-options", "", "native import filter options string (e.g. Language=en-US)")
	f.Bool("force", false, "overwrite existing outputs")
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	outDir, _ := cmd.Flags().GetString("out")
	filter, _ := cmd.Flags().GetString("filter")
	loadOptions, _ := cmd.Flags().GetString("load-options")
	force, _ := cmd.Flags().GetBool("force")

	runLog := log.WithFields(logrus.Fields{
		"run_id":       uuid.NewString(),
		"install_path": installPath(),
		"format":       format,
		"inputs":       len(args),
	})
	runLog.Debug("starting conversion run")

	converter, err := convert.NewOfficeConverter(installPath(), loadOptions)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := converter.Close(); cerr != nil {
			runLog.WithError(cerr).Warn("closing office")
		}
	}()

	res, err := convert.ConvertAll(converter, args, outDir, format, filter, force, os.Stdout)
	if err != nil {
		return err
	}

	runLog.WithFields(logrus.Fields{
		"converted": res.Converted,
		"skipped":   res.Skipped,
		"failed":    res.Failed,
	}).Info("conversion run finished")

	if res.HasFailures() {
		return fmt.Errorf("%d of %d conversions failed", res.Failed, res.Total())
	}
	return nil
}
