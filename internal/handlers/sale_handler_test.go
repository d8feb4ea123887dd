package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/healthyfeet/salon-scheduler/internal/models"
	"github.com/healthyfeet/salon-scheduler/internal/usecase/report"
)

type fakeSalesRepo struct {
	gotStart time.Time
	gotEnd   time.Time
	sales    []models.Sale
}

func (f *fakeSalesRepo) ListSalesBetween(_ context.Context, start, end time.Time) ([]models.Sale, error) {
	f.gotStart = start
	f.gotEnd = end
	return f.sales, nil
}

func (f *fakeSalesRepo) CountAppointmentsOn(_ context.Context, _ time.Time) (int64, error) {
	return 0, nil
}

func (f *fakeSalesRepo) CountClients(_ context.Context) (int64, error) {
	return 0, nil
}

func (f *fakeSalesRepo) CountActiveEmployees(_ context.Context) (int64, error) {
	return 0, nil
}

var _ report.Repository = (*fakeSalesRepo)(nil)

func TestSaleList_FilterValor(t *testing.T) {
	gin.SetMode(gin.TestMode)

	repo := &fakeSalesRepo{
		sales: []models.Sale{
			{Total: 350},
			{Total: 200},
		},
	}

	r := gin.New()
	r.GET("/sales", NewSaleHandler(repo, time.UTC).List)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/sales?filter=dia&valor=2026-06-01", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC), repo.gotStart)
	assert.Equal(t, time.Date(2026, 6, 2, 0, 0, 0, 0, time.UTC), repo.gotEnd)

	var body salesResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 550.0, body.Total)
	assert.Len(t, body.Sales, 2)
}

func TestSaleList_BadValor(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/sales", NewSaleHandler(&fakeSalesRepo{}, time.UTC).List)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/sales?filter=dia&valor=01/06/2026", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
