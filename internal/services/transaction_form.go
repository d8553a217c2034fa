package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"pyxpay-admin/internal/dto"
	"pyxpay-admin/internal/pyxpay"
	"pyxpay-admin/internal/validation"

	"github.com/shopspring/decimal"
)

// FormState is the lifecycle of a transaction creation form
type FormState string

const (
	FormEditing    FormState = "editing"
	FormSubmitting FormState = "submitting"
	FormSuccess    FormState = "success"
	FormError      FormState = "error"
)

// FormKind selects which create endpoint a form submits to
type FormKind string

const (
	FormKindPix    FormKind = validation.FormKindPix
	FormKindBoleto FormKind = validation.FormKindBoleto
	FormKindCard   FormKind = validation.FormKindCard
)

const (
	dueDateLayout     = "2006-01-02T15:04:05.000Z07:00"
	dueDateOnlyLayout = "2006-01-02"
)

var ErrFormBusy = errors.New("form is already being submitted")

// ParseFormKind accepts pix, boleto, card and cartao in any case
func ParseFormKind(value string) (FormKind, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case validation.FormKindPix, "":
		return FormKindPix, nil
	case validation.FormKindBoleto:
		return FormKindBoleto, nil
	case validation.FormKindCard, validation.FormKindCardAlias:
		return FormKindCard, nil
	default:
		return "", ErrInvalidFormKind
	}
}

// FormOutcome is what the operator sees after a submission
type FormOutcome struct {
	State FormState
	Kind  FormKind
	Error string
	// Err is the failure behind Error; an *UpstreamError when the API rejected the request
	Err         error
	Transaction *dto.Transaction
	// Artifact is the Pix copy-paste string or the Boleto digitable line
	Artifact string
	Link     string
}

// TransactionForm is one operator's create-transaction form.
// Any field or kind change returns it to editing and clears the previous outcome.
type TransactionForm struct {
	mu      sync.Mutex
	kind    FormKind
	fields  dto.TransactionFormRequest
	state   FormState
	outcome FormOutcome
	// submission identifies the in-flight submit; edits advance it so a stale result is dropped
	submission uint64
}

// NewTransactionForm creates an empty form of the given kind
func NewTransactionForm(kind FormKind) *TransactionForm {
	return &TransactionForm{
		kind:    kind,
		state:   FormEditing,
		outcome: FormOutcome{State: FormEditing, Kind: kind},
	}
}

// SetKind switches the payment kind and clears every field
func (f *TransactionForm) SetKind(kind FormKind) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.kind = kind
	f.fields = dto.TransactionFormRequest{}
	f.edit()
}

// SetFields replaces the field values
func (f *TransactionForm) SetFields(fields dto.TransactionFormRequest) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fields = fields
	f.edit()
}

// State returns the current lifecycle state
func (f *TransactionForm) State() FormState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Outcome returns the latest outcome
func (f *TransactionForm) Outcome() FormOutcome {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.outcome
}

func (f *TransactionForm) edit() {
	f.submission++
	f.state = FormEditing
	f.outcome = FormOutcome{State: FormEditing, Kind: f.kind}
}

// begin moves editing, success or error to submitting and returns the values to send
func (f *TransactionForm) begin() (uint64, FormKind, dto.TransactionFormRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state == FormSubmitting {
		return 0, f.kind, f.fields, ErrFormBusy
	}
	f.submission++
	f.state = FormSubmitting
	f.outcome = FormOutcome{State: FormSubmitting, Kind: f.kind}
	return f.submission, f.kind, f.fields, nil
}

// finish records outcome unless the form was edited after submission began
func (f *TransactionForm) finish(submission uint64, outcome FormOutcome) FormOutcome {
	f.mu.Lock()
	defer f.mu.Unlock()
	if submission != f.submission {
		return outcome
	}
	f.state = outcome.State
	f.outcome = outcome
	return outcome
}

// fail records a failure detected before any request was sent
func (f *TransactionForm) fail(submission uint64, kind FormKind, err error) FormOutcome {
	return f.finish(submission, FormOutcome{State: FormError, Kind: kind, Error: err.Error(), Err: err})
}

// TransactionFormService submits forms to the create endpoints
type TransactionFormService struct {
	api     PaymentAPIInterface
	session SessionServiceInterface
	logger  *slog.Logger
	metrics MetricsRecorderInterface
}

// NewTransactionFormService creates a new form submitter
func NewTransactionFormService(
	api PaymentAPIInterface,
	session SessionServiceInterface,
	logger *slog.Logger,
	metrics MetricsRecorderInterface,
) TransactionFormServiceInterface {
	if logger == nil {
		logger = slog.Default()
	}
	return &TransactionFormService{api: api, session: session, logger: logger, metrics: metrics}
}

// Submit validates the form and, when valid, sends exactly one create request.
// Validation failures never reach the network.
func (s *TransactionFormService) Submit(ctx context.Context, form *TransactionForm) FormOutcome {
	submission, kind, fields, err := form.begin()
	if err != nil {
		return FormOutcome{State: FormSubmitting, Kind: kind, Error: err.Error(), Err: err}
	}

	amount, err := ValidateTransactionForm(kind, fields)
	if err != nil {
		return form.fail(submission, kind, err)
	}

	dueDate, err := formatDueDate(fields.Vencimento)
	if err != nil {
		return form.fail(submission, kind, err)
	}

	creds, err := s.session.RequireCredentials()
	if err != nil {
		return form.fail(submission, kind, err)
	}

	valor := amount.InexactFloat64()
	started := time.Now()
	var outcome FormOutcome

	switch kind {
	case FormKindPix:
		result := s.api.CreatePix(ctx, creds, dto.CreatePixRequest{
			Valor:       valor,
			Nome:        strings.TrimSpace(fields.Nome),
			Documento:   strings.TrimSpace(fields.Documento),
			PostbackURL: strings.TrimSpace(fields.PostbackURL),
			Metadata:    fields.Metadata,
			Vencimento:  dueDate,
		})
		outcome = transactionOutcome(kind, result)
		if result.Success {
			outcome.Artifact = dto.StringValue(result.Data.PixChavePagamento)
		}

	case FormKindBoleto:
		result := s.api.CreateBoleto(ctx, creds, dto.CreateBoletoRequest{
			Valor:       valor,
			Documento:   strings.TrimSpace(fields.Documento),
			Nome:        strings.TrimSpace(fields.Nome),
			Vencimento:  dueDate,
			PostbackURL: strings.TrimSpace(fields.PostbackURL),
			Metadata:    fields.Metadata,
		})
		outcome = transactionOutcome(kind, result)
		if result.Success {
			outcome.Artifact = dto.StringValue(result.Data.BoletoLinhaDigitavel)
		}

	case FormKindCard:
		result := s.api.CreateCard(ctx, creds, dto.CreateCardRequest{
			Valor:       valor,
			Phone:       strings.TrimSpace(fields.Phone),
			PostbackURL: strings.TrimSpace(fields.PostbackURL),
			Metadata:    fields.Metadata,
		})
		if result.Success {
			outcome = FormOutcome{State: FormSuccess, Kind: kind, Link: result.Data.Link}
		} else {
			outcome = FormOutcome{State: FormError, Kind: kind, Error: result.Error, Err: upstreamError(result)}
		}
	}

	s.recordSubmission(kind, outcome.State, time.Since(started))
	if outcome.State == FormError {
		s.logger.Warn("transaction creation failed", "kind", kind, "error", outcome.Error)
	} else {
		s.logger.Info("transaction created", "kind", kind)
	}

	return form.finish(submission, outcome)
}

// ValidateTransactionForm checks the value and the fields required by kind
func ValidateTransactionForm(kind FormKind, fields dto.TransactionFormRequest) (decimal.Decimal, error) {
	amount, ok := validation.ParsePositiveDecimal(fields.Valor)
	if !ok {
		return decimal.Zero, ErrInvalidAmount
	}
	if kind == FormKindBoleto && strings.TrimSpace(fields.Documento) == "" {
		return decimal.Zero, ErrDocumentRequired
	}
	return amount, nil
}

// formatDueDate converts the due date to an RFC3339 UTC timestamp.
// A bare calendar date is UTC midnight of that day; values with a time and no zone are local.
func formatDueDate(value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", nil
	}
	if day, err := time.ParseInLocation(dueDateOnlyLayout, value, time.UTC); err == nil {
		return day.Format(dueDateLayout), nil
	}
	t, ok := ParseAPIDate(value)
	if !ok {
		return "", ErrInvalidDueDate
	}
	return t.UTC().Format(dueDateLayout), nil
}

func transactionOutcome(kind FormKind, result pyxpay.Result[dto.Transaction]) FormOutcome {
	if !result.Success {
		return FormOutcome{State: FormError, Kind: kind, Error: result.Error, Err: upstreamError(result)}
	}
	tx := result.Data
	return FormOutcome{State: FormSuccess, Kind: kind, Transaction: &tx}
}

func (s *TransactionFormService) recordSubmission(kind FormKind, state FormState, duration time.Duration) {
	if s.metrics == nil {
		return
	}
	s.metrics.IncrementCounter("transaction_created", map[string]string{"kind": string(kind), "status": string(state)})
	s.metrics.RecordProcessingTime("transaction_created", duration)
}
