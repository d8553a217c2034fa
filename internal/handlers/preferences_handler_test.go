package handlers

import (
	"net/http"
	"testing"

	"pyxpay-admin/internal/dto"
	"pyxpay-admin/internal/models"
	"pyxpay-admin/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

func TestPreferencesHandler(t *testing.T) {
	suite.Run(t, new(PreferencesHandlerSuite))
}

type PreferencesHandlerSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	columns *service_mocks.MockColumnPreferencesInterface
	handler *PreferencesHandler
	e       *echo.Echo
}

func (s *PreferencesHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.columns = service_mocks.NewMockColumnPreferencesInterface(s.ctrl)
	s.handler = NewPreferencesHandler(s.columns)
	s.e = newTestEcho()
}

func (s *PreferencesHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *PreferencesHandlerSuite) TestGetColumns() {
	s.columns.EXPECT().Visible().Return([]models.ColumnKey{models.ColumnID, models.ColumnValue})

	c, rec := newJSONContext(s.e, http.MethodGet, "/api/v1/preferences/columns", nil)
	s.NoError(s.handler.GetColumns(c))

	var response dto.ColumnsResponse
	decodeData(s.T(), rec, &response)
	s.Require().Len(response.Columns, len(models.AllColumns))
	visible := map[string]bool{}
	for _, column := range response.Columns {
		visible[column.Key] = column.Visible
	}
	s.True(visible["id"])
	s.True(visible["valor"])
	s.False(visible["documento"])
	s.Equal("ID", response.Columns[0].Label)
}

func (s *PreferencesHandlerSuite) TestUpdateColumns() {
	s.Run("toggle", func() {
		s.columns.EXPECT().Toggle(gomock.Any(), models.ColumnDocument).
			Return([]models.ColumnKey{models.ColumnID}, nil)

		c, rec := newJSONContext(s.e, http.MethodPut, "/api/v1/preferences/columns", map[string]string{"toggle": "documento"})
		s.NoError(s.handler.UpdateColumns(c))

		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("set", func() {
		s.columns.EXPECT().Set(gomock.Any(), []models.ColumnKey{models.ColumnStatus, models.ColumnDate}).
			Return([]models.ColumnKey{models.ColumnStatus, models.ColumnDate}, nil)

		c, rec := newJSONContext(s.e, http.MethodPut, "/api/v1/preferences/columns", map[string][]string{"columns": {"status", "fecha"}})
		s.NoError(s.handler.UpdateColumns(c))

		var response dto.ColumnsResponse
		decodeData(s.T(), rec, &response)
		shown := 0
		for _, column := range response.Columns {
			if column.Visible {
				shown++
			}
		}
		s.Equal(2, shown)
	})

	s.Run("unknown column", func() {
		c, _ := newJSONContext(s.e, http.MethodPut, "/api/v1/preferences/columns", map[string]string{"toggle": "saldo"})
		s.Error(s.handler.UpdateColumns(c))
	})
}
