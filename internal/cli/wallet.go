package cli

import (
	"context"
	"fmt"
	"io"

	"pyxpay-admin/internal/app"
	"pyxpay-admin/internal/dto"
	"pyxpay-admin/internal/models"
	"pyxpay-admin/internal/services"

	"github.com/spf13/cobra"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show the balance, volume and recent transactions",
	Args:  cobra.NoArgs,
	RunE: withApp(func(cmd *cobra.Command, args []string, a *app.App) error {
		overview, err := a.Dashboard.Overview(cmd.Context())
		if err != nil {
			return err
		}
		return newPrinter(cmd).print(overview, func(w io.Writer) {
			fmt.Fprintf(w, "Saldo:\t%s\n", overview.SaldoLabel)
			if overview.BalanceError != "" {
				fmt.Fprintf(w, "\t(%s)\n", overview.BalanceError)
			}
			fmt.Fprintf(w, "Registros:\t%d\n", overview.NumeroDeRegistros)
			fmt.Fprintf(w, "Volume:\t%s\n", overview.VolumeTotalLabel)
			if overview.TransactionsError != "" {
				fmt.Fprintf(w, "\t(%s)\n", overview.TransactionsError)
			}
			if len(overview.RecentTransactions) > 0 {
				fmt.Fprintln(w)
				writeTransactionTable(w, overview.RecentTransactions, models.DefaultVisibleColumns())
			}
		})
	}),
}

var balanceCmd = &cobra.Command{
	Use:   "balance",
	Short: "Show the wallet balance",
	Args:  cobra.NoArgs,
	RunE: withApp(func(cmd *cobra.Command, args []string, a *app.App) error {
		saldo, err := a.Wallet.Balance(cmd.Context())
		if err != nil {
			return err
		}
		balance := dto.BalanceResponse{Saldo: saldo, Formatted: services.FormatBRL(saldo)}
		return newPrinter(cmd).print(balance, func(w io.Writer) {
			fmt.Fprintf(w, "Saldo:\t%s\n", balance.Formatted)
		})
	}),
}

var cashoutCmd = &cobra.Command{
	Use:   "cashout <valor>",
	Short: "Send a Pix cashout from the wallet",
	Long: `Send valor reais to a Pix key. Key types: 1 phone, 2 e-mail, 3 CPF/CNPJ, 4 random key.

Example:
  pyxpay cashout 150,00 --nome "Ana Souza" --tipo-chave 2 --chave ana@example.com`,
	Args: cobra.ExactArgs(1),
	RunE: withApp(runCashout),
}

var quoteCmd = &cobra.Command{
	Use:   "quote",
	Short: "Convert between reais and the foreign currency",
}

var quoteToForeignCmd = &cobra.Command{
	Use:   "to-foreign <valor>",
	Short: "Convert reais to the foreign currency",
	Args:  cobra.ExactArgs(1),
	RunE: withApp(func(cmd *cobra.Command, args []string, a *app.App) error {
		return runQuote(cmd, args[0], a.Wallet.ConvertToForeign)
	}),
}

var quoteToRealCmd = &cobra.Command{
	Use:   "to-real <valor>",
	Short: "Convert the foreign currency to reais",
	Args:  cobra.ExactArgs(1),
	RunE: withApp(func(cmd *cobra.Command, args []string, a *app.App) error {
		return runQuote(cmd, args[0], a.Wallet.ConvertToReal)
	}),
}

func init() {
	cashoutCmd.Flags().String("nome", "", "recipient name")
	cashoutCmd.Flags().Int("tipo-chave", 1, "Pix key type (1-4)")
	cashoutCmd.Flags().String("chave", "", "Pix key")
	_ = cashoutCmd.MarkFlagRequired("nome")
	_ = cashoutCmd.MarkFlagRequired("chave")

	quoteCmd.AddCommand(quoteToForeignCmd)
	quoteCmd.AddCommand(quoteToRealCmd)
}

func runCashout(cmd *cobra.Command, args []string, a *app.App) error {
	nome, _ := cmd.Flags().GetString("nome")
	tipoChave, _ := cmd.Flags().GetInt("tipo-chave")
	chave, _ := cmd.Flags().GetString("chave")

	tx, err := a.Wallet.Cashout(cmd.Context(), dto.CashoutFormRequest{
		Valor:       args[0],
		NomeCliente: nome,
		TipoChave:   tipoChave,
		Chave:       chave,
	})
	if err != nil {
		return err
	}
	return printTransaction(cmd, services.NewTransactionView(*tx))
}

func runQuote(cmd *cobra.Command, valor string, quote func(ctx context.Context, valor string) (*dto.ConversionResponse, error)) error {
	conversion, err := quote(cmd.Context(), valor)
	if err != nil {
		return err
	}
	return newPrinter(cmd).print(conversion, func(w io.Writer) {
		fmt.Fprintf(w, "Valor original:\t%s %s\n", conversion.ValorOriginal.StringFixed(2), conversion.MoedaOrigem)
		fmt.Fprintf(w, "Valor convertido:\t%s %s\n", conversion.ValorConvertido.StringFixed(2), conversion.MoedaDestino)
		fmt.Fprintf(w, "Cotação:\t%s\n", conversion.Cotacao.String())
	})
}
