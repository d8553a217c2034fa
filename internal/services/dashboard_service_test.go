package services

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"pyxpay-admin/internal/database"
	"pyxpay-admin/internal/pyxpay"
	"pyxpay-admin/internal/repositories"

	"github.com/stretchr/testify/suite"
)

type DashboardServiceTestSuite struct {
	suite.Suite
	api     *fakePyxPay
	service DashboardServiceInterface
	ctx     context.Context
}

func TestDashboardServiceSuite(t *testing.T) {
	suite.Run(t, new(DashboardServiceTestSuite))
}

func (s *DashboardServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.api = newFakePyxPay(s.T())
	s.service = s.newService(staticSession{creds: pyxpay.NewCredentials("dash-key", s.api.server.URL)})
}

func (s *DashboardServiceTestSuite) newService(session SessionServiceInterface) DashboardServiceInterface {
	db := database.SetupTestDB(s.T())
	filters := NewFilterStore(repositories.NewStateRepository(db.DB), discardLogger())
	wallet := NewWalletService(s.api.client(), session, discardLogger(), nil)
	list := NewTransactionListService(s.api.client(), session, filters, discardLogger(), nil)
	return NewDashboardService(wallet, list, discardLogger())
}

// pageOf renders n transactions worth 10.25 each
func pageOf(n, totalRecords int) string {
	entries := make([]string, n)
	for i := range entries {
		entries[i] = fmt.Sprintf(`{"identidicador": %d, "status": 2, "tipoOperacao": 4, "valorBruto": 10.25}`, i+1)
	}
	return fmt.Sprintf(`{"transacoes": [%s], "numeroDePaginas": 1, "numeroDeRegistros": %d}`, strings.Join(entries, ","), totalRecords)
}

func (s *DashboardServiceTestSuite) TestOverview() {
	s.api.respond(http.MethodGet, "/carteira/saldo", http.StatusOK, `{"saldo": 1234.5}`)
	s.api.respond(http.MethodGet, "/transacao", http.StatusOK, pageOf(12, 340))

	overview, err := s.service.Overview(s.ctx)

	s.Require().NoError(err)
	s.Equal("R$ 1.234,50", overview.SaldoLabel)
	s.Equal(340, overview.NumeroDeRegistros)
	s.Equal("123", overview.VolumeTotal.String())
	s.Equal("R$ 123,00", overview.VolumeTotalLabel)
	s.Len(overview.RecentTransactions, RecentTransactionsLimit)
	s.Equal(int64(1), overview.RecentTransactions[0].ID)
	s.Equal("Pago", overview.RecentTransactions[0].StatusLabel)
	s.Empty(overview.BalanceError)
	s.Empty(overview.TransactionsError)
}

func (s *DashboardServiceTestSuite) TestOverview_HalfFailureIsInline() {
	s.api.respond(http.MethodGet, "/carteira/saldo", http.StatusInternalServerError, `{"message":"Saldo indisponível"}`)
	s.api.respond(http.MethodGet, "/transacao", http.StatusOK, pageOf(3, 3))

	overview, err := s.service.Overview(s.ctx)

	s.Require().NoError(err)
	s.Equal("Saldo indisponível", overview.BalanceError)
	s.Equal("R$ 0,00", overview.SaldoLabel)
	s.Len(overview.RecentTransactions, 3)
	s.Equal("R$ 30,75", overview.VolumeTotalLabel)
}

func (s *DashboardServiceTestSuite) TestOverview_ListFailureIsInline() {
	s.api.respond(http.MethodGet, "/carteira/saldo", http.StatusOK, `{"saldo": 10}`)

	overview, err := s.service.Overview(s.ctx)

	s.Require().NoError(err)
	s.Equal("Recurso no encontrado", overview.TransactionsError)
	s.Empty(overview.RecentTransactions)
	s.Equal("R$ 10,00", overview.SaldoLabel)
}

func (s *DashboardServiceTestSuite) TestOverview_RequiresSession() {
	service := s.newService(staticSession{})

	_, err := service.Overview(s.ctx)

	s.ErrorIs(err, ErrNotAuthenticated)
	s.Equal(0, s.api.requestCount())
}
