package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"pyxpay-admin/internal/app"
	"pyxpay-admin/internal/dto"
	"pyxpay-admin/internal/models"
	"pyxpay-admin/internal/services"

	"github.com/spf13/cobra"
)

var txCmd = &cobra.Command{
	Use:     "tx",
	Aliases: []string{"transactions"},
	Short:   "List, inspect and create transactions",
}

var txListCmd = &cobra.Command{
	Use:   "list",
	Short: "Fetch a page of transactions with the saved filters",
	Long: `Fetch the transactions of the saved period, page size and status filter.

--search and --type narrow the fetched page locally; they are not saved and not sent to the API.`,
	Args: cobra.NoArgs,
	RunE: withApp(runTxList),
}

var txGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one transaction",
	Args:  cobra.ExactArgs(1),
	RunE: withApp(func(cmd *cobra.Command, args []string, a *app.App) error {
		id, err := parseTransactionID(args[0])
		if err != nil {
			return err
		}
		tx, err := a.Transactions.Get(cmd.Context(), id)
		if err != nil {
			return err
		}
		return printTransaction(cmd, services.NewTransactionView(*tx))
	}),
}

var txFindCmd = &cobra.Command{
	Use:   "find <id-or-hash>",
	Short: "Open a transaction by id, or by hash on the current page",
	Args:  cobra.ExactArgs(1),
	RunE:  withApp(runTxFind),
}

var txPostbackCmd = &cobra.Command{
	Use:   "postback <id>",
	Short: "Reschedule the status postback of a transaction",
	Args:  cobra.ExactArgs(1),
	RunE: withApp(func(cmd *cobra.Command, args []string, a *app.App) error {
		id, err := parseTransactionID(args[0])
		if err != nil {
			return err
		}
		if err := a.Transactions.ReschedulePostback(cmd.Context(), id); err != nil {
			return err
		}
		response := dto.PostbackResponse{ID: id, Message: "Postback reagendado com sucesso"}
		return newPrinter(cmd).print(response, func(w io.Writer) {
			fmt.Fprintf(w, "%s (#%d)\n", response.Message, response.ID)
		})
	}),
}

var txCreateCmd = &cobra.Command{
	Use:   "create <pix|boleto|card>",
	Short: "Create a Pix charge, a boleto or a card payment link",
	Long: `Create a transaction. Valor accepts a comma or a dot as decimal separator.
A boleto requires --documento. --vencimento takes a local date-time (YYYY-MM-DDTHH:MM).`,
	Args: cobra.ExactArgs(1),
	RunE: withApp(runTxCreate),
}

var txFiltersCmd = &cobra.Command{
	Use:   "filters",
	Short: "Show or change the saved list filters",
	Args:  cobra.NoArgs,
	RunE: withApp(func(cmd *cobra.Command, args []string, a *app.App) error {
		return printFilters(cmd, a.Transactions.Filters())
	}),
}

var txFiltersSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Change the period, page size or status filter and fetch page 1",
	Args:  cobra.NoArgs,
	RunE:  withApp(runTxFiltersSet),
}

var txFiltersClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Drop the status filter and fetch page 1",
	Args:  cobra.NoArgs,
	RunE: withApp(func(cmd *cobra.Command, args []string, a *app.App) error {
		page, err := a.Transactions.ClearFilters(cmd.Context())
		if err != nil {
			return err
		}
		return printPage(cmd, services.NewTransactionPageResponse(page, models.TransactionRefinement{}, a.Columns.Visible()))
	}),
}

func init() {
	txCmd.AddCommand(txListCmd)
	txCmd.AddCommand(txGetCmd)
	txCmd.AddCommand(txFindCmd)
	txCmd.AddCommand(txPostbackCmd)
	txCmd.AddCommand(txCreateCmd)
	txCmd.AddCommand(txFiltersCmd)
	txFiltersCmd.AddCommand(txFiltersSetCmd)
	txFiltersCmd.AddCommand(txFiltersClearCmd)

	txListCmd.Flags().Int("page", 0, "page to open (1..numeroDePaginas)")
	txListCmd.Flags().String("search", "", "match id, client name, document or hash on the page")
	txListCmd.Flags().Int("type", 0, "keep only this operation type code")

	txCreateCmd.Flags().String("valor", "", "amount in reais")
	txCreateCmd.Flags().String("nome", "", "client name")
	txCreateCmd.Flags().String("documento", "", "client CPF or CNPJ")
	txCreateCmd.Flags().String("phone", "", "client phone (card)")
	txCreateCmd.Flags().String("postback-url", "", "status webhook URL")
	txCreateCmd.Flags().String("metadata", "", "free text stored with the transaction")
	txCreateCmd.Flags().String("vencimento", "", "due date")
	_ = txCreateCmd.MarkFlagRequired("valor")

	txFiltersSetCmd.Flags().String("start", "", "period start (YYYY-MM-DDTHH:MM:SS)")
	txFiltersSetCmd.Flags().String("end", "", "period end (YYYY-MM-DDTHH:MM:SS)")
	txFiltersSetCmd.Flags().Int("size", 0, "records per page")
	txFiltersSetCmd.Flags().Int("status", 0, "status code, 0 clears it")
}

func runTxList(cmd *cobra.Command, args []string, a *app.App) error {
	ctx := cmd.Context()

	page, err := a.Transactions.Fetch(ctx)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("page") {
		target, _ := cmd.Flags().GetInt("page")
		if target != page.Filters.Page {
			if page, err = a.Transactions.GoToPage(ctx, target); err != nil {
				return err
			}
		}
	}

	refinement := models.TransactionRefinement{}
	refinement.Search, _ = cmd.Flags().GetString("search")
	if cmd.Flags().Changed("type") {
		operationType, _ := cmd.Flags().GetInt("type")
		if !models.IsKnownOperationType(operationType) {
			return fmt.Errorf("unknown operation type %d", operationType)
		}
		refinement.OperationType = &operationType
	}

	return printPage(cmd, services.NewTransactionPageResponse(page, refinement, a.Columns.Visible()))
}

func runTxFind(cmd *cobra.Command, args []string, a *app.App) error {
	ctx := cmd.Context()

	found, err := a.Transactions.FindByIDOrHash(args[0])
	if err != nil {
		return err
	}
	if !found.Found {
		// hashes are only matched against the current page
		if _, err := a.Transactions.Fetch(ctx); err != nil {
			return err
		}
		if found, err = a.Transactions.FindByIDOrHash(args[0]); err != nil {
			return err
		}
	}
	if !found.Found {
		return newPrinter(cmd).print(dto.FindResponse{}, func(w io.Writer) {
			fmt.Fprintf(w, "No transaction matches %q on the current page\n", args[0])
		})
	}

	tx, err := a.Transactions.Get(ctx, found.ID)
	if err != nil {
		return err
	}
	return printTransaction(cmd, services.NewTransactionView(*tx))
}

func runTxCreate(cmd *cobra.Command, args []string, a *app.App) error {
	kind, err := services.ParseFormKind(args[0])
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	var fields dto.TransactionFormRequest
	fields.Kind = string(kind)
	fields.Valor, _ = flags.GetString("valor")
	fields.Nome, _ = flags.GetString("nome")
	fields.Documento, _ = flags.GetString("documento")
	fields.Phone, _ = flags.GetString("phone")
	fields.PostbackURL, _ = flags.GetString("postback-url")
	fields.Metadata, _ = flags.GetString("metadata")
	fields.Vencimento, _ = flags.GetString("vencimento")

	form := services.NewTransactionForm(kind)
	form.SetFields(fields)

	outcome := a.Forms.Submit(cmd.Context(), form)
	if outcome.State != services.FormSuccess {
		if outcome.Err != nil {
			return outcome.Err
		}
		return errors.New(outcome.Error)
	}

	result := dto.FormResultResponse{
		State:    string(outcome.State),
		Kind:     string(outcome.Kind),
		Artifact: outcome.Artifact,
		Link:     outcome.Link,
	}
	if outcome.Transaction != nil {
		view := services.NewTransactionView(*outcome.Transaction)
		result.Transaction = &view
	}

	return newPrinter(cmd).print(result, func(w io.Writer) {
		if result.Transaction != nil {
			writeTransactionDetail(w, *result.Transaction)
		}
		if result.Artifact != "" {
			fmt.Fprintf(w, "Código:\t%s\n", result.Artifact)
		}
		if result.Link != "" {
			fmt.Fprintf(w, "Link:\t%s\n", result.Link)
		}
	})
}

func runTxFiltersSet(cmd *cobra.Command, args []string, a *app.App) error {
	flags := cmd.Flags()
	var patch models.TransactionFilterPatch
	if flags.Changed("start") {
		start, _ := flags.GetString("start")
		patch.PeriodStart = &start
	}
	if flags.Changed("end") {
		end, _ := flags.GetString("end")
		patch.PeriodEnd = &end
	}
	if flags.Changed("size") {
		size, _ := flags.GetInt("size")
		patch.PageSize = &size
	}
	if flags.Changed("status") {
		status, _ := flags.GetInt("status")
		patch.Status = &status
	}

	page, err := a.Transactions.ApplyServerFilters(cmd.Context(), patch)
	if err != nil {
		return err
	}
	return printPage(cmd, services.NewTransactionPageResponse(page, models.TransactionRefinement{}, a.Columns.Visible()))
}

func parseTransactionID(value string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid transaction id %q", value)
	}
	return id, nil
}

func printFilters(cmd *cobra.Command, filters models.TransactionFilters) error {
	return newPrinter(cmd).print(filters, func(w io.Writer) {
		writeFilters(w, filters)
	})
}

func writeFilters(w io.Writer, filters models.TransactionFilters) {
	fmt.Fprintf(w, "Período:\t%s .. %s\n", filters.PeriodStart, filters.PeriodEnd)
	fmt.Fprintf(w, "Página:\t%d\n", filters.Page)
	fmt.Fprintf(w, "Registros por página:\t%d\n", filters.PageSize)
	if filters.Status != nil {
		fmt.Fprintf(w, "Status:\t%s\n", models.StatusLabel(*filters.Status))
	}
}

func printPage(cmd *cobra.Command, page dto.TransactionPageResponse) error {
	return newPrinter(cmd).print(page, func(w io.Writer) {
		writeFilters(w, page.Filters)
		fmt.Fprintf(w, "Registros:\t%d (%d nesta página, %d exibidos)\n", page.NumeroDeRegistros, page.Fetched, len(page.Transacoes))
		fmt.Fprintf(w, "Páginas:\t%s\n", strings.Join(page.PageNumbers, " "))
		fmt.Fprintln(w)
		writeTransactionTable(w, page.Transacoes, models.SanitizeColumns(columnKeys(page.VisibleColumns)))
	})
}

func printTransaction(cmd *cobra.Command, view dto.TransactionView) error {
	return newPrinter(cmd).print(view, func(w io.Writer) {
		writeTransactionDetail(w, view)
	})
}

func writeTransactionTable(w io.Writer, views []dto.TransactionView, columns []models.ColumnKey) {
	if len(views) == 0 {
		fmt.Fprintln(w, "No transactions")
		return
	}

	headers := make([]string, len(columns))
	for i, key := range columns {
		headers[i] = strings.ToUpper(columnLabel(key))
	}
	fmt.Fprintln(w, strings.Join(headers, "\t"))

	for _, view := range views {
		cells := make([]string, len(columns))
		for i, key := range columns {
			cells[i] = cellValue(view, key)
		}
		fmt.Fprintln(w, strings.Join(cells, "\t"))
	}
}

func writeTransactionDetail(w io.Writer, view dto.TransactionView) {
	fmt.Fprintf(w, "ID:\t%d\n", view.ID)
	fmt.Fprintf(w, "Tipo:\t%s\n", view.OperationTypeLabel)
	fmt.Fprintf(w, "Status:\t%s\n", view.StatusLabel)
	fmt.Fprintf(w, "Cliente:\t%s\n", optional(view.NomeCliente))
	fmt.Fprintf(w, "Documento:\t%s\n", optional(view.DocumentoCliente))
	fmt.Fprintf(w, "Valor bruto:\t%s\n", view.ValorBrutoLabel)
	fmt.Fprintf(w, "Valor recebível:\t%s\n", view.ValorRecebivelLabel)
	fmt.Fprintf(w, "Criada em:\t%s\n", view.DataCriacaoLabel)
	fmt.Fprintf(w, "Hash:\t%s\n", optional(view.HashID))
	if view.PixChavePagamento != nil {
		fmt.Fprintf(w, "Pix copia e cola:\t%s\n", *view.PixChavePagamento)
	}
	if view.BoletoLinhaDigitavel != nil {
		fmt.Fprintf(w, "Linha digitável:\t%s\n", *view.BoletoLinhaDigitavel)
	}
	if view.Vencimento != nil {
		fmt.Fprintf(w, "Vencimento:\t%s\n", services.FormatBRDate(view.Vencimento))
	}
	for _, entry := range view.HistoricoStatus {
		fmt.Fprintf(w, "Histórico:\t%s em %s\n", models.StatusLabel(entry.Status), services.FormatBRDate(&entry.UpdatedAt))
	}
}

// cellValue renders one column of a transaction row
func cellValue(view dto.TransactionView, key models.ColumnKey) string {
	switch key {
	case models.ColumnID:
		return strconv.FormatInt(view.ID, 10)
	case models.ColumnType:
		return view.OperationTypeLabel
	case models.ColumnClient:
		return optional(view.NomeCliente)
	case models.ColumnDocument:
		return optional(view.DocumentoCliente)
	case models.ColumnValue:
		return view.ValorBrutoLabel
	case models.ColumnReceived:
		return view.ValorRecebivelLabel
	case models.ColumnStatus:
		return view.StatusLabel
	case models.ColumnDate:
		return view.DataCriacaoLabel
	default:
		return ""
	}
}

func columnLabel(key models.ColumnKey) string {
	for _, column := range models.AllColumns {
		if column.Key == key {
			return column.Label
		}
	}
	return string(key)
}

func columnKeys(values []string) []models.ColumnKey {
	keys := make([]models.ColumnKey, len(values))
	for i, value := range values {
		keys[i] = models.ColumnKey(value)
	}
	return keys
}

func optional(value *string) string {
	if value == nil || strings.TrimSpace(*value) == "" {
		return services.MissingValue
	}
	return *value
}
