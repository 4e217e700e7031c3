package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/benjaminbelloeil/portfolio-api/internal/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getProducts(t *testing.T, target string) (*httptest.ResponseRecorder, []catalog.Product) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	Products(nil)(rec, req)

	var body struct {
		Products []catalog.Product `json:"products"`
	}
	if rec.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	}
	return rec, body.Products
}

func TestProducts_ListsFullCatalog(t *testing.T) {
	rec, products := getProducts(t, "/api/products")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, products, 4)
}

func TestProducts_FiltersByCategory(t *testing.T) {
	rec, products := getProducts(t, "/api/products?category=mobile")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, products, 1)
	assert.Equal(t, "Swift iOS App Template", products[0].Title)
}

func TestProducts_UnknownCategoryRejected(t *testing.T) {
	rec, _ := getProducts(t, "/api/products?category=furniture")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid product category")
}
