package cli

import (
	"fmt"
	"io"

	"pyxpay-admin/internal/app"
	"pyxpay-admin/internal/models"
	"pyxpay-admin/internal/services"

	"github.com/spf13/cobra"
)

var columnsCmd = &cobra.Command{
	Use:   "columns",
	Short: "Show or change the visible transaction columns",
	Args:  cobra.NoArgs,
	RunE: withApp(func(cmd *cobra.Command, args []string, a *app.App) error {
		return printColumns(cmd, a.Columns.Visible())
	}),
}

var columnsToggleCmd = &cobra.Command{
	Use:   "toggle <column>",
	Short: "Show or hide one column",
	Args:  cobra.ExactArgs(1),
	RunE: withApp(func(cmd *cobra.Command, args []string, a *app.App) error {
		key := models.ColumnKey(args[0])
		if !models.IsKnownColumn(key) {
			return fmt.Errorf("unknown column %q", args[0])
		}
		visible, err := a.Columns.Toggle(cmd.Context(), key)
		if err != nil {
			return err
		}
		return printColumns(cmd, visible)
	}),
}

var columnsSetCmd = &cobra.Command{
	Use:   "set <column>...",
	Short: "Replace the visible columns",
	Args:  cobra.MinimumNArgs(1),
	RunE: withApp(func(cmd *cobra.Command, args []string, a *app.App) error {
		for _, arg := range args {
			if !models.IsKnownColumn(models.ColumnKey(arg)) {
				return fmt.Errorf("unknown column %q", arg)
			}
		}
		visible, err := a.Columns.Set(cmd.Context(), columnKeys(args))
		if err != nil {
			return err
		}
		return printColumns(cmd, visible)
	}),
}

func init() {
	columnsCmd.AddCommand(columnsToggleCmd)
	columnsCmd.AddCommand(columnsSetCmd)
}

func printColumns(cmd *cobra.Command, visible []models.ColumnKey) error {
	response := services.NewColumnsResponse(visible)
	return newPrinter(cmd).print(response, func(w io.Writer) {
		fmt.Fprintln(w, "KEY\tLABEL\tVISIBLE")
		for _, column := range response.Columns {
			mark := "no"
			if column.Visible {
				mark = "yes"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\n", column.Key, column.Label, mark)
		}
	})
}
