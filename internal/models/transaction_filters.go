package models

import (
	"errors"
	"fmt"
	"time"
)

// LocalISOLayout is the timestamp layout the list endpoint expects for its period bounds
const LocalISOLayout = "2006-01-02T15:04:05"

const (
	DefaultPageSize     = 1000
	defaultPeriodInDays = 30
)

// AllowedPageSizes are the page sizes offered to the operator
var AllowedPageSizes = []int{50, 100, 500, 1000, 2000, 5000, 10000}

var (
	ErrInvalidPeriod   = errors.New("period bounds must use the YYYY-MM-DDTHH:MM:SS layout")
	ErrPeriodReversed  = errors.New("period start must not be after period end")
	ErrInvalidPageSize = errors.New("page size is not one of the allowed values")
	ErrInvalidStatus   = errors.New("status filter is not a known transaction status")
	ErrInvalidPage     = errors.New("page must be greater than or equal to 1")
)

// TransactionFilters is the server-side filter state sent with every list request.
// It is persisted across sessions.
type TransactionFilters struct {
	PeriodStart string `json:"periodoInicio" yaml:"periodoInicio"`
	PeriodEnd   string `json:"periodoFim" yaml:"periodoFim"`
	Page        int    `json:"pagina" yaml:"pagina"`
	PageSize    int    `json:"registrosPorPagina" yaml:"registrosPorPagina"`
	Status      *int   `json:"statusFilter,omitempty" yaml:"statusFilter,omitempty"`
}

// TransactionFilterPatch carries a partial update of TransactionFilters.
// A Status of 0 or ClearStatus removes the status filter.
type TransactionFilterPatch struct {
	PeriodStart *string `json:"periodoInicio,omitempty"`
	PeriodEnd   *string `json:"periodoFim,omitempty"`
	Page        *int    `json:"pagina,omitempty"`
	PageSize    *int    `json:"registrosPorPagina,omitempty"`
	Status      *int    `json:"statusFilter,omitempty"`
	ClearStatus bool    `json:"clearStatus,omitempty"`
}

// TransactionRefinement narrows an already fetched page in memory. It is never sent to the server.
type TransactionRefinement struct {
	Search        string
	OperationType *int
}

// IsEmpty reports whether the refinement would keep every transaction
func (r TransactionRefinement) IsEmpty() bool {
	return r.OperationType == nil && len(trimSpace(r.Search)) == 0
}

// FormatLocalISO formats t in local wall-clock time without a zone suffix
func FormatLocalISO(t time.Time) string {
	return t.Format(LocalISOLayout)
}

// ParseLocalISO parses a period bound in the local time zone
func ParseLocalISO(value string) (time.Time, error) {
	t, err := time.ParseInLocation(LocalISOLayout, value, time.Local)
	if err != nil {
		return time.Time{}, ErrInvalidPeriod
	}
	return t, nil
}

// StartOfDay returns the period start bound for the day of t
func StartOfDay(t time.Time) string {
	return FormatLocalISO(time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location()))
}

// EndOfDay returns the period end bound for the day of t
func EndOfDay(t time.Time) string {
	return FormatLocalISO(time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, t.Location()))
}

// DefaultTransactionFilters covers the last 30 days up to the end of today
func DefaultTransactionFilters(now time.Time) TransactionFilters {
	return TransactionFilters{
		PeriodStart: StartOfDay(now.AddDate(0, 0, -defaultPeriodInDays)),
		PeriodEnd:   EndOfDay(now),
		Page:        1,
		PageSize:    DefaultPageSize,
	}
}

// IsAllowedPageSize reports whether size is one of AllowedPageSizes
func IsAllowedPageSize(size int) bool {
	for _, allowed := range AllowedPageSizes {
		if allowed == size {
			return true
		}
	}
	return false
}

// Apply merges a patch into the filters. Changing the page size resets the page to 1.
func (f TransactionFilters) Apply(patch TransactionFilterPatch) TransactionFilters {
	next := f
	if patch.PeriodStart != nil {
		next.PeriodStart = *patch.PeriodStart
	}
	if patch.PeriodEnd != nil {
		next.PeriodEnd = *patch.PeriodEnd
	}
	if patch.Page != nil {
		next.Page = *patch.Page
	}
	if patch.PageSize != nil && *patch.PageSize != f.PageSize {
		next.PageSize = *patch.PageSize
		next.Page = 1
	}
	if patch.ClearStatus || (patch.Status != nil && *patch.Status == 0) {
		next.Status = nil
	} else if patch.Status != nil {
		status := *patch.Status
		next.Status = &status
	}
	return next.Normalize()
}

// Normalize enforces page >= 1 and a usable page size
func (f TransactionFilters) Normalize() TransactionFilters {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PageSize < 1 {
		f.PageSize = DefaultPageSize
	}
	return f
}

// Validate checks the filters before they are persisted or sent
func (f TransactionFilters) Validate() error {
	start, err := ParseLocalISO(f.PeriodStart)
	if err != nil {
		return fmt.Errorf("periodoInicio: %w", err)
	}
	end, err := ParseLocalISO(f.PeriodEnd)
	if err != nil {
		return fmt.Errorf("periodoFim: %w", err)
	}
	if start.After(end) {
		return ErrPeriodReversed
	}
	if f.Page < 1 {
		return ErrInvalidPage
	}
	if !IsAllowedPageSize(f.PageSize) {
		return ErrInvalidPageSize
	}
	if f.Status != nil && !IsKnownStatus(*f.Status) {
		return ErrInvalidStatus
	}
	return nil
}

// HasServerFilters reports whether a non-default server filter is active
func (f TransactionFilters) HasServerFilters() bool {
	return f.Status != nil
}

// ActiveServerFilterCount counts active non-default server filters
func (f TransactionFilters) ActiveServerFilterCount() int {
	if f.Status != nil {
		return 1
	}
	return 0
}
