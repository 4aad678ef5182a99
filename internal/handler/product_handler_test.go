package handler_test

import (
	"net/http"
	"regexp"
	"testing"

	"github.com/CodeEntraHQ/codeentra-landing-page/internal/handler"
	"github.com/CodeEntraHQ/codeentra-landing-page/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateProductDefaults(t *testing.T) {
	db := setupDB(t)

	body := `{"name":"Insight","description":"Analytics for small teams.","url":"https://example.com/insight","features":[" Dashboards ","","Alerts"]}`
	rec, resp := call(t, handler.CreateProduct, jsonRequest(http.MethodPost, "/api/admin/products", body), nil)

	require.Equal(t, http.StatusCreated, rec.Code)
	product := dataMap(t, resp)
	assert.Regexp(t, regexp.MustCompile(`^prod\d{3,}$`), product["id"])
	assert.Equal(t, "Sparkles", product["icon"])
	assert.Equal(t, true, product["isActive"])

	var stored model.Product
	require.NoError(t, db.First(&stored, "id = ?", product["id"]).Error)
	assert.Equal(t, model.StringList{"Dashboards", "Alerts"}, stored.Features)
}

func TestCreateProductSequentialIDs(t *testing.T) {
	setupDB(t)

	body := `{"name":"A","description":"d","url":"https://example.com/a"}`
	_, first := call(t, handler.CreateProduct, jsonRequest(http.MethodPost, "/api/admin/products", body), nil)
	_, second := call(t, handler.CreateProduct, jsonRequest(http.MethodPost, "/api/admin/products", body), nil)

	assert.Equal(t, "prod001", dataMap(t, first)["id"])
	assert.Equal(t, "prod002", dataMap(t, second)["id"])
}

func TestCreateProductValidation(t *testing.T) {
	setupDB(t)

	body := `{"name":"","description":"d","url":"not a url"}`
	rec, resp := call(t, handler.CreateProduct, jsonRequest(http.MethodPost, "/api/admin/products", body), nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Errors, "Name is required")
	assert.Contains(t, resp.Errors, "URL must be a valid URL")
}

func TestListProductsFiltersInactive(t *testing.T) {
	db := setupDB(t)
	require.NoError(t, db.Create(&model.Product{
		Base: model.Base{ID: "prod001"}, Name: "Live", Description: "d",
		URL: "https://example.com", Icon: "Sparkles", Features: model.StringList{}, IsActive: true,
	}).Error)
	require.NoError(t, db.Create(&model.Product{
		Base: model.Base{ID: "prod002"}, Name: "Draft", Description: "d",
		URL: "https://example.com", Icon: "Sparkles", Features: model.StringList{}, IsActive: false,
	}).Error)

	_, public := call(t, handler.ListProducts, jsonRequest(http.MethodGet, "/api/products", ""), nil)
	require.Len(t, dataSlice(t, public), 1)
	assert.Equal(t, "Live", dataSlice(t, public)[0]["name"])

	_, admin := call(t, handler.ListProductsAdmin, jsonRequest(http.MethodGet, "/api/admin/products", ""), nil)
	assert.Len(t, dataSlice(t, admin), 2)
}

func TestUpdateProductPartialPatch(t *testing.T) {
	db := setupDB(t)
	require.NoError(t, db.Create(&model.Product{
		Base: model.Base{ID: "prod001"}, Name: "Insight", Description: "Old description",
		URL: "https://example.com/insight", Icon: "Sparkles", Features: model.StringList{"Dashboards"}, IsActive: true,
	}).Error)

	body := `{"description":"New description","isActive":false}`
	rec, _ := call(t, handler.UpdateProduct, jsonRequest(http.MethodPut, "/api/admin/products/prod001", body), withParam("id", "prod001"))
	require.Equal(t, http.StatusOK, rec.Code)

	var stored model.Product
	require.NoError(t, db.First(&stored, "id = ?", "prod001").Error)
	assert.Equal(t, "Insight", stored.Name)
	assert.Equal(t, "New description", stored.Description)
	assert.False(t, stored.IsActive)
	assert.Equal(t, model.StringList{"Dashboards"}, stored.Features)
}

func TestUpdateProductInvalidPatchLeavesRowUntouched(t *testing.T) {
	db := setupDB(t)
	require.NoError(t, db.Create(&model.Product{
		Base: model.Base{ID: "prod001"}, Name: "Insight", Description: "Old description",
		URL: "https://example.com/insight", Icon: "Sparkles", Features: model.StringList{}, IsActive: true,
	}).Error)

	// Valid description but invalid URL in the same patch: nothing applies.
	body := `{"description":"New description","url":"not a url"}`
	rec, _ := call(t, handler.UpdateProduct, jsonRequest(http.MethodPut, "/api/admin/products/prod001", body), withParam("id", "prod001"))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var stored model.Product
	require.NoError(t, db.First(&stored, "id = ?", "prod001").Error)
	assert.Equal(t, "Old description", stored.Description)
}

func TestDeleteProductNotFound(t *testing.T) {
	setupDB(t)

	rec, resp := call(t, handler.DeleteProduct, jsonRequest(http.MethodDelete, "/api/admin/products/prod099", ""), withParam("id", "prod099"))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.False(t, resp.Success)
}
