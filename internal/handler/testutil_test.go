package handler_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/CodeEntraHQ/codeentra-landing-page/internal/handler"
	"github.com/CodeEntraHQ/codeentra-landing-page/pkg/database"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// setupDB wires an in-memory database into the package-level accessor the
// handlers read from.
func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(database.Models()...))
	database.SetDB(db)
	return db
}

func jsonRequest(method, target, body string) *http.Request {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	return req
}

// call runs one handler against a request. setup, when non-nil, mutates the
// context before the handler runs (path params, auth identity). A returned
// error goes through the central error handler so the recorder always holds
// the final envelope.
func call(t *testing.T, h echo.HandlerFunc, req *http.Request, setup func(echo.Context)) (*httptest.ResponseRecorder, handler.Response) {
	t.Helper()

	e := echo.New()
	e.HTTPErrorHandler = handler.HTTPErrorHandler
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if setup != nil {
		setup(c)
	}

	if err := h(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	var resp handler.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return rec, resp
}

func withParam(name, value string) func(echo.Context) {
	return func(c echo.Context) {
		c.SetParamNames(name)
		c.SetParamValues(value)
	}
}

// dataMap re-decodes the envelope's data field as an object.
func dataMap(t *testing.T, resp handler.Response) map[string]interface{} {
	t.Helper()
	raw, err := json.Marshal(resp.Data)
	require.NoError(t, err)
	var m map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &m))
	return m
}

// dataSlice re-decodes the envelope's data field as a list of objects.
func dataSlice(t *testing.T, resp handler.Response) []map[string]interface{} {
	t.Helper()
	raw, err := json.Marshal(resp.Data)
	require.NoError(t, err)
	var s []map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &s))
	return s
}
