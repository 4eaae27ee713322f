package cmd

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/abhisek/mathtik/internal/export"
	"github.com/abhisek/mathtik/internal/facts"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export <file.xlsx>",
	Short: "Export fact mastery to a spreadsheet",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		if !strings.EqualFold(filepath.Ext(path), ".xlsx") {
			return fmt.Errorf("export file must end in .xlsx: %s", path)
		}

		env, err := setup(cmd, false)
		if err != nil {
			return err
		}
		defer env.Close()

		accuracy, err := env.store.EventRepo().FactAccuracy(cmd.Context())
		if err != nil {
			return fmt.Errorf("load answer history: %w", err)
		}
		if err := export.MasteryWorkbook(path, facts.Default(), env.game.Mastery(), accuracy, time.Now()); err != nil {
			return fmt.Errorf("write workbook: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Wrote", path)
		return nil
	},
}
