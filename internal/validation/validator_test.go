package validation

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cashoutInput struct {
	Valor     string `json:"valor" validate:"required,positive_decimal"`
	TipoChave int    `json:"tipoChave" validate:"pix_key_type"`
}

type filterInput struct {
	PeriodStart string `json:"periodoInicio" validate:"local_iso"`
	PageSize    int    `json:"registrosPorPagina" validate:"page_size"`
	Status      *int   `json:"statusFilter" validate:"omitempty,transaction_status"`
}

type formInput struct {
	Kind   string  `json:"kind" validate:"form_kind"`
	Amount float64 `json:"amount" validate:"positive_amount"`
	Column string  `json:"column" validate:"omitempty,column_key"`
	Secret string  `json:"-" validate:"required"`
}

func TestGetValidator_ReturnsSingleton(t *testing.T) {
	assert.Same(t, GetValidator(), GetValidator())
	assert.NotNil(t, GetValidator().GetValidate())
}

func TestParsePositiveDecimal(t *testing.T) {
	tests := []struct {
		input string
		want  string
		ok    bool
	}{
		{"10.50", "10.5", true},
		{" 10,50 ", "10.5", true},
		{"1000", "1000", true},
		{"0", "0", false},
		{"-5", "0", false},
		{"", "0", false},
		{"abc", "0", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParsePositiveDecimal(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestCashoutRules(t *testing.T) {
	v := NewValidator()

	require.NoError(t, v.Struct(cashoutInput{Valor: "25.00", TipoChave: 2}))

	err := v.Struct(cashoutInput{Valor: "0", TipoChave: 5})
	require.Error(t, err)

	var validationErrors validator.ValidationErrors
	require.True(t, errors.As(err, &validationErrors))
	fields := map[string]string{}
	for _, fe := range validationErrors {
		fields[fe.Field()] = fe.Tag()
	}
	assert.Equal(t, "positive_decimal", fields["valor"])
	assert.Equal(t, "pix_key_type", fields["tipoChave"])
}

func TestFilterRules(t *testing.T) {
	v := NewValidator()
	status := 7
	unknown := 99

	assert.NoError(t, v.Struct(filterInput{PeriodStart: "2026-01-01T00:00:00", PageSize: 500, Status: &status}))
	assert.NoError(t, v.Struct(filterInput{PeriodStart: "2026-01-01T00:00:00", PageSize: 1000}))
	assert.Error(t, v.Struct(filterInput{PeriodStart: "2026-01-01", PageSize: 1000}))
	assert.Error(t, v.Struct(filterInput{PeriodStart: "2026-01-01T00:00:00", PageSize: 25}))
	assert.Error(t, v.Struct(filterInput{PeriodStart: "2026-01-01T00:00:00", PageSize: 50, Status: &unknown}))
}

func TestFormRules(t *testing.T) {
	v := NewValidator()

	assert.NoError(t, v.Struct(formInput{Kind: "PIX", Amount: 1, Column: "valor", Secret: "x"}))
	assert.Error(t, v.Struct(formInput{Kind: "wire", Amount: 1, Secret: "x"}))
	assert.Error(t, v.Struct(formInput{Kind: "card", Amount: 0, Secret: "x"}))
	assert.Error(t, v.Struct(formInput{Kind: "card", Amount: 1, Column: "saldo", Secret: "x"}))
}
