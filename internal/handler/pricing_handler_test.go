package handler_test

import (
	"net/http"
	"testing"

	"github.com/CodeEntraHQ/codeentra-landing-page/internal/handler"
	"github.com/CodeEntraHQ/codeentra-landing-page/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdatePricingCreatesRow(t *testing.T) {
	db := setupDB(t)

	body := `{"duration":3,"price":4999}`
	rec, resp := call(t, handler.UpdatePricing, jsonRequest(http.MethodPut, "/api/admin/pricings", body), nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "prc001", dataMap(t, resp)["id"])

	var stored model.Pricing
	require.NoError(t, db.First(&stored, "duration = ?", 3).Error)
	assert.Equal(t, 4999.0, stored.Price)
	assert.True(t, stored.IsActive)
}

func TestUpdatePricingReactivatesExistingRow(t *testing.T) {
	db := setupDB(t)
	require.NoError(t, db.Create(&model.Pricing{
		Base: model.Base{ID: "prc003"}, Duration: 3, Price: 4999, IsActive: false,
	}).Error)

	body := `{"duration":3,"price":5999}`
	rec, resp := call(t, handler.UpdatePricing, jsonRequest(http.MethodPut, "/api/admin/pricings", body), nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "prc003", dataMap(t, resp)["id"])

	var count int64
	require.NoError(t, db.Model(&model.Pricing{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	var stored model.Pricing
	require.NoError(t, db.First(&stored, "id = ?", "prc003").Error)
	assert.Equal(t, 5999.0, stored.Price)
	assert.True(t, stored.IsActive)
}

func TestUpdatePricingValidation(t *testing.T) {
	setupDB(t)

	rec, resp := call(t, handler.UpdatePricing, jsonRequest(http.MethodPut, "/api/admin/pricings", `{"duration":9,"price":100}`), nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, resp.Errors, "Duration must be between 1 and 6")

	rec, resp = call(t, handler.UpdatePricing, jsonRequest(http.MethodPut, "/api/admin/pricings", `{"duration":2,"price":-5}`), nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, resp.Errors, "Price cannot be negative")
}

func TestUpdateMultiplePricings(t *testing.T) {
	db := setupDB(t)

	body := `{"pricings":[{"duration":1,"price":1999},{"duration":2,"price":3499},{"duration":3,"price":4999}]}`
	rec, resp := call(t, handler.UpdateMultiplePricings, jsonRequest(http.MethodPut, "/api/admin/pricings/batch", body), nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, dataSlice(t, resp), 3)

	var count int64
	require.NoError(t, db.Model(&model.Pricing{}).Count(&count).Error)
	assert.EqualValues(t, 3, count)
}

func TestUpdateMultiplePricingsRejectsWholeBatch(t *testing.T) {
	db := setupDB(t)

	// One invalid entry fails the whole request before anything is written.
	body := `{"pricings":[{"duration":1,"price":1999},{"duration":9,"price":100}]}`
	rec, _ := call(t, handler.UpdateMultiplePricings, jsonRequest(http.MethodPut, "/api/admin/pricings/batch", body), nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var count int64
	require.NoError(t, db.Model(&model.Pricing{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestListPricingsFiltersInactive(t *testing.T) {
	db := setupDB(t)
	require.NoError(t, db.Create(&model.Pricing{
		Base: model.Base{ID: "prc001"}, Duration: 2, Price: 3499, IsActive: true,
	}).Error)
	require.NoError(t, db.Create(&model.Pricing{
		Base: model.Base{ID: "prc002"}, Duration: 1, Price: 1999, IsActive: false,
	}).Error)

	_, public := call(t, handler.ListPricings, jsonRequest(http.MethodGet, "/api/pricings", ""), nil)
	rows := dataSlice(t, public)
	require.Len(t, rows, 1)
	assert.Equal(t, 2.0, rows[0]["duration"])

	_, admin := call(t, handler.ListPricingsAdmin, jsonRequest(http.MethodGet, "/api/admin/pricings", ""), nil)
	assert.Len(t, dataSlice(t, admin), 2)
}
