package handlers

import (
	"net/http"
	"strings"

	"pyxpay-admin/internal/dto"
	"pyxpay-admin/internal/errors"
	"pyxpay-admin/internal/models"
	"pyxpay-admin/internal/services"

	"github.com/labstack/echo/v4"
)

// TransactionHandler handles the transaction list, detail and creation requests
type TransactionHandler struct {
	list    services.TransactionListServiceInterface
	forms   services.TransactionFormServiceInterface
	columns services.ColumnPreferencesInterface
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(
	list services.TransactionListServiceInterface,
	forms services.TransactionFormServiceInterface,
	columns services.ColumnPreferencesInterface,
) *TransactionHandler {
	return &TransactionHandler{
		list:    list,
		forms:   forms,
		columns: columns,
	}
}

// ListTransactions fetches the page described by the saved filters and refines it in memory
// @Summary List transactions
// @Description Fetch a page with the persisted server filters. search and type only narrow the fetched page.
// @Tags Transactions
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page to navigate to (1..numeroDePaginas)"
// @Param search query string false "Matches id, client name, document or hash"
// @Param type query int false "Operation type code"
// @Success 200 {object} SuccessResponse{data=dto.TransactionPageResponse}
// @Failure 400 {object} errors.ErrorResponse "TRANSACTION_003 - Page out of range"
// @Failure 409 {object} errors.ErrorResponse "UPSTREAM_002 - Superseded by a newer request"
// @Failure 502 {object} errors.ErrorResponse "UPSTREAM_001 - Pyx Pay request failed"
// @Router /transactions [get]
func (h *TransactionHandler) ListTransactions(c echo.Context) error {
	page, ok := getOptionalIntParam(c, "page")
	if !ok {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("page must be a number"))
	}

	operationType, ok := getOptionalIntParam(c, "type")
	if !ok || (operationType != nil && !models.IsKnownOperationType(*operationType)) {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("type must be a known operation type"))
	}

	ctx := c.Request().Context()
	var (
		result *services.TransactionPage
		err    error
	)
	if page != nil {
		result, err = h.list.GoToPage(ctx, *page)
	} else {
		result, err = h.list.Fetch(ctx)
	}
	if err != nil {
		return SendServiceError(c, err)
	}

	refinement := models.TransactionRefinement{
		Search:        c.QueryParam("search"),
		OperationType: operationType,
	}
	return sendData(c, http.StatusOK, h.pageResponse(result, refinement))
}

// ApplyFilters saves new server filters, resets to page 1 and fetches
// @Summary Apply server filters
// @Tags Transactions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.FilterPatchRequest true "Filters to change"
// @Success 200 {object} SuccessResponse{data=dto.TransactionPageResponse}
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid filters"
// @Router /transactions/filters [put]
func (h *TransactionHandler) ApplyFilters(c echo.Context) error {
	var req dto.FilterPatchRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	result, err := h.list.ApplyServerFilters(c.Request().Context(), models.TransactionFilterPatch{
		PeriodStart: req.PeriodStart,
		PeriodEnd:   req.PeriodEnd,
		PageSize:    req.PageSize,
		Status:      req.Status,
		ClearStatus: req.ClearStatus,
	})
	if err != nil {
		return SendServiceError(c, err)
	}
	return sendData(c, http.StatusOK, h.pageResponse(result, models.TransactionRefinement{}))
}

// ClearFilters restores the default filters and fetches
// @Summary Clear filters
// @Tags Transactions
// @Security BearerAuth
// @Produce json
// @Success 200 {object} SuccessResponse{data=dto.TransactionPageResponse}
// @Router /transactions/filters [delete]
func (h *TransactionHandler) ClearFilters(c echo.Context) error {
	result, err := h.list.ClearFilters(c.Request().Context())
	if err != nil {
		return SendServiceError(c, err)
	}
	return sendData(c, http.StatusOK, h.pageResponse(result, models.TransactionRefinement{}))
}

// FindTransaction resolves an id or a hash on the current page to a detail path
// @Summary Find by id or hash
// @Tags Transactions
// @Security BearerAuth
// @Produce json
// @Param q query string true "Transaction id or hash"
// @Success 200 {object} SuccessResponse{data=dto.FindResponse}
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_002 - q is required"
// @Router /transactions/find [get]
func (h *TransactionHandler) FindTransaction(c echo.Context) error {
	term := strings.TrimSpace(c.QueryParam("q"))
	if term == "" {
		return SendError(c, errors.ValidationRequiredField, errors.WithDetails("q is required"))
	}

	found, err := h.list.FindByIDOrHash(term)
	if err != nil {
		return SendServiceError(c, err)
	}
	response := dto.FindResponse{Found: found.Found, Path: found.Path}
	if found.Found {
		response.ID = &found.ID
	}
	return sendData(c, http.StatusOK, response)
}

// GetTransaction returns one transaction with display labels
// @Summary Transaction detail
// @Tags Transactions
// @Security BearerAuth
// @Produce json
// @Param id path int true "Transaction ID"
// @Success 200 {object} SuccessResponse{data=dto.TransactionView}
// @Failure 400 {object} errors.ErrorResponse "TRANSACTION_002 - Invalid transaction ID"
// @Failure 404 {object} errors.ErrorResponse "TRANSACTION_001 - Transaction not found"
// @Router /transactions/{id} [get]
func (h *TransactionHandler) GetTransaction(c echo.Context) error {
	id, ok := parseTransactionID(c)
	if !ok {
		return SendError(c, errors.TransactionInvalidID)
	}

	tx, err := h.list.Get(c.Request().Context(), id)
	if err != nil {
		return SendServiceError(c, err)
	}
	return sendData(c, http.StatusOK, services.NewTransactionView(*tx))
}

// ReschedulePostback asks Pyx Pay to resend the transaction postback
// @Summary Reschedule postback
// @Tags Transactions
// @Security BearerAuth
// @Produce json
// @Param id path int true "Transaction ID"
// @Success 200 {object} SuccessResponse{data=dto.PostbackResponse}
// @Failure 400 {object} errors.ErrorResponse "TRANSACTION_002 - Invalid transaction ID"
// @Failure 404 {object} errors.ErrorResponse "TRANSACTION_001 - Transaction not found"
// @Router /transactions/{id}/postback [put]
func (h *TransactionHandler) ReschedulePostback(c echo.Context) error {
	id, ok := parseTransactionID(c)
	if !ok {
		return SendError(c, errors.TransactionInvalidID)
	}

	if err := h.list.ReschedulePostback(c.Request().Context(), id); err != nil {
		return SendServiceError(c, err)
	}
	return sendData(c, http.StatusOK, dto.PostbackResponse{ID: id, Message: "Postback reagendado com sucesso"})
}

// CreatePix creates a Pix charge
// @Summary Create Pix
// @Tags Transactions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.TransactionFormRequest true "Pix form"
// @Success 201 {object} SuccessResponse{data=dto.FormResultResponse}
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_005 - Invalid amount"
// @Failure 502 {object} errors.ErrorResponse "UPSTREAM_001 - Pyx Pay rejected the charge"
// @Router /transactions/pix [post]
func (h *TransactionHandler) CreatePix(c echo.Context) error {
	return h.submit(c, services.FormKindPix)
}

// CreateBoleto creates a Boleto; documento is required
// @Summary Create Boleto
// @Tags Transactions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.TransactionFormRequest true "Boleto form"
// @Success 201 {object} SuccessResponse{data=dto.FormResultResponse}
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_002 - Documento is required"
// @Router /transactions/boleto [post]
func (h *TransactionHandler) CreateBoleto(c echo.Context) error {
	return h.submit(c, services.FormKindBoleto)
}

// CreateCard creates a card payment link
// @Summary Create card link
// @Tags Transactions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.TransactionFormRequest true "Card form"
// @Success 201 {object} SuccessResponse{data=dto.FormResultResponse}
// @Router /transactions/card [post]
func (h *TransactionHandler) CreateCard(c echo.Context) error {
	return h.submit(c, services.FormKindCard)
}

func (h *TransactionHandler) submit(c echo.Context, kind services.FormKind) error {
	var req dto.TransactionFormRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	form := services.NewTransactionForm(kind)
	form.SetFields(req)

	outcome := h.forms.Submit(c.Request().Context(), form)
	if outcome.State != services.FormSuccess {
		if outcome.Err != nil {
			return SendServiceError(c, outcome.Err)
		}
		return SendError(c, errors.UpstreamRequestFailed, errors.WithMessage(outcome.Error))
	}

	response := dto.FormResultResponse{
		State:    string(outcome.State),
		Kind:     string(outcome.Kind),
		Artifact: outcome.Artifact,
		Link:     outcome.Link,
	}
	if outcome.Transaction != nil {
		view := services.NewTransactionView(*outcome.Transaction)
		response.Transaction = &view
	}
	return sendData(c, http.StatusCreated, response)
}

func (h *TransactionHandler) pageResponse(page *services.TransactionPage, refinement models.TransactionRefinement) dto.TransactionPageResponse {
	return services.NewTransactionPageResponse(page, refinement, h.columns.Visible())
}
