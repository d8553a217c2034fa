package services

import (
	"slices"
	"strconv"
	"strings"
	"time"

	"pyxpay-admin/internal/dto"
	"pyxpay-admin/internal/models"

	"github.com/shopspring/decimal"
)

const (
	// PageEllipsis marks a gap in the pager
	PageEllipsis = "..."
	// MissingValue is shown for absent optional fields
	MissingValue = "—"

	brDateLayout  = "02/01/2006 15:04"
	pagerFullSize = 7
)

var apiDateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	models.LocalISOLayout,
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// FormatBRL renders an amount as Brazilian reais, e.g. R$ 1.234,56
func FormatBRL(amount decimal.Decimal) string {
	sign := ""
	if amount.IsNegative() {
		sign = "-"
		amount = amount.Neg()
	}

	fixed := amount.StringFixed(2)
	integer, cents, _ := strings.Cut(fixed, ".")

	var grouped strings.Builder
	for i, digit := range integer {
		if i > 0 && (len(integer)-i)%3 == 0 {
			grouped.WriteByte('.')
		}
		grouped.WriteRune(digit)
	}

	return sign + "R$ " + grouped.String() + "," + cents
}

// ParseAPIDate reads the date formats returned by the API. Zone-less values are local time.
func ParseAPIDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range apiDateLayouts {
		if t, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatBRDate renders an API date as dd/MM/yyyy HH:mm in local time.
// Missing dates render as a dash; unparseable dates are returned unchanged.
func FormatBRDate(value *string) string {
	if value == nil || strings.TrimSpace(*value) == "" {
		return MissingValue
	}
	t, ok := ParseAPIDate(*value)
	if !ok {
		return *value
	}
	return t.In(time.Local).Format(brDateLayout)
}

// PageNumbers lists the pager entries for page current of total. Up to seven pages are all shown;
// beyond that the first two, the neighbours of current and the last two, with ellipses for gaps.
func PageNumbers(current, total int) []string {
	if total <= 0 {
		return []string{}
	}
	if total <= pagerFullSize {
		pages := make([]string, total)
		for i := range pages {
			pages[i] = strconv.Itoa(i + 1)
		}
		return pages
	}

	candidates := []int{1, 2, current - 1, current, current + 1, total - 1, total}
	seen := make(map[int]bool, len(candidates))
	near := make([]int, 0, len(candidates))
	for _, page := range candidates {
		if page >= 1 && page <= total && !seen[page] {
			seen[page] = true
			near = append(near, page)
		}
	}
	slices.Sort(near)

	pages := make([]string, 0, len(near)*2)
	for i, page := range near {
		if i > 0 && page-near[i-1] > 1 {
			pages = append(pages, PageEllipsis)
		}
		pages = append(pages, strconv.Itoa(page))
	}
	return pages
}

// NewTransactionView decorates a transaction with its display labels
func NewTransactionView(tx dto.Transaction) dto.TransactionView {
	return dto.TransactionView{
		Transaction:         tx,
		StatusLabel:         models.StatusLabel(tx.Status),
		StatusVariant:       models.StatusVariant(tx.Status),
		OperationTypeLabel:  models.OperationTypeLabel(tx.TipoOperacao),
		ValorBrutoLabel:     FormatBRL(tx.ValorBruto),
		ValorRecebivelLabel: FormatBRL(tx.ValorRecebivel),
		DataCriacaoLabel:    FormatBRDate(tx.DataCriacao),
	}
}

// NewTransactionViews decorates every transaction of a page, keeping order
func NewTransactionViews(transactions []dto.Transaction) []dto.TransactionView {
	views := make([]dto.TransactionView, len(transactions))
	for i, tx := range transactions {
		views[i] = NewTransactionView(tx)
	}
	return views
}

// NewSessionInfo describes a session without revealing its key
func NewSessionInfo(session Session) dto.SessionInfo {
	return dto.SessionInfo{
		IsAuthenticated: session.IsAuthenticated,
		Endpoint:        session.Credentials.Endpoint,
		MaskedAPIKey:    session.MaskedAPIKey(),
		SessionID:       session.SessionID,
		AuthenticatedAt: session.AuthenticatedAt,
	}
}

// NewColumnsResponse lists every table column in display order with its visibility
func NewColumnsResponse(visible []models.ColumnKey) dto.ColumnsResponse {
	shown := make(map[models.ColumnKey]bool, len(visible))
	for _, key := range visible {
		shown[key] = true
	}

	columns := make([]dto.ColumnState, 0, len(models.AllColumns))
	for _, column := range models.AllColumns {
		columns = append(columns, dto.ColumnState{
			Key:     string(column.Key),
			Label:   column.Label,
			Visible: shown[column.Key],
		})
	}
	return dto.ColumnsResponse{Columns: columns}
}

// NewTransactionPageResponse refines a fetched page and attaches its pagination and columns
func NewTransactionPageResponse(page *TransactionPage, refinement models.TransactionRefinement, visible []models.ColumnKey) dto.TransactionPageResponse {
	refined := Refine(page.Transactions, refinement)

	columns := make([]string, len(visible))
	for i, key := range visible {
		columns[i] = string(key)
	}

	return dto.TransactionPageResponse{
		Transacoes:        NewTransactionViews(refined),
		NumeroDePaginas:   page.TotalPages,
		NumeroDeRegistros: page.TotalRecords,
		Fetched:           len(page.Transactions),
		Filters:           page.Filters,
		ActiveFilters:     page.Filters.ActiveServerFilterCount(),
		PageNumbers:       PageNumbers(page.Filters.Page, page.TotalPages),
		VisibleColumns:    columns,
	}
}
