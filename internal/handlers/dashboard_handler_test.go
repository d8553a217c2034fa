package handlers

import (
	"net/http"
	"testing"

	"pyxpay-admin/internal/dto"
	apperrors "pyxpay-admin/internal/errors"
	"pyxpay-admin/internal/services"
	"pyxpay-admin/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardHandler_GetOverview(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dashboard := service_mocks.NewMockDashboardServiceInterface(ctrl)
	handler := NewDashboardHandler(dashboard)
	e := newTestEcho()

	dashboard.EXPECT().Overview(gomock.Any()).Return(&dto.OverviewResponse{
		Saldo:              decimal.RequireFromString("99.90"),
		SaldoLabel:         "R$ 99,90",
		NumeroDeRegistros:  0,
		VolumeTotal:        decimal.Zero,
		VolumeTotalLabel:   "R$ 0,00",
		RecentTransactions: []dto.TransactionView{},
		TransactionsError:  "Error 503: Service Unavailable",
	}, nil)

	c, rec := newJSONContext(e, http.MethodGet, "/api/v1/dashboard", nil)
	require.NoError(t, handler.GetOverview(c))

	var overview dto.OverviewResponse
	decodeData(t, rec, &overview)
	assert.Equal(t, "R$ 99,90", overview.SaldoLabel)
	assert.Equal(t, "Error 503: Service Unavailable", overview.TransactionsError)
}

func TestDashboardHandler_RequiresSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dashboard := service_mocks.NewMockDashboardServiceInterface(ctrl)
	dashboard.EXPECT().Overview(gomock.Any()).Return(nil, services.ErrNotAuthenticated)

	c, rec := newJSONContext(newTestEcho(), http.MethodGet, "/api/v1/dashboard", nil)
	require.NoError(t, NewDashboardHandler(dashboard).GetOverview(c))

	assertErrorCode(t, rec, http.StatusUnauthorized, apperrors.SessionNotAuthenticated)
}
