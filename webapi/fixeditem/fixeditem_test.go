package fixeditem_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/parfin-app/parfin/webapi/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func post(t *testing.T, f *testutils.Fixture, target, body string) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+f.Token("admin"))
	return req
}

func TestCreateAndGenerateFixedItems(t *testing.T) {
	app, f := testutils.NewApp()

	resp, err := app.Test(post(t, f, "/api/fixed_items/",
		`{"type":"expense","category":"Rent","amount":5000000,"currency":"VND","source":"bank","description":"rent"}`))
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	require.Len(t, f.FixedItems.Items, 1)

	resp, err = app.Test(post(t, f, "/api/fixed_items/generate", `{"date":"2025-04-01"}`))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, f.Transactions.Txs, 1)
	assert.Equal(t, "2025-04-01", f.Transactions.Txs[0].Date.Format("2006-01-02"))
	assert.Equal(t, "rent", f.Transactions.Txs[0].Description)
}

func TestListFixedItemsKeepsNoFundEmpty(t *testing.T) {
	app, f := testutils.NewApp()

	resp, err := app.Test(post(t, f, "/api/fixed_items/",
		`{"type":"expense","category":"Bills","amount":200000,"currency":"VND","source":"bank"}`))
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	req := httptest.NewRequest(http.MethodGet, "/api/fixed_items/", nil)
	req.Header.Set("Authorization", "Bearer "+f.Token("admin"))
	resp, err = app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	var out struct {
		Data []map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(body, &out))
	require.Len(t, out.Data, 1)
	assert.Equal(t, "", out.Data[0]["fund"])
}

func TestCreateFixedItemRejectsZeroAmount(t *testing.T) {
	app, f := testutils.NewApp()

	resp, err := app.Test(post(t, f, "/api/fixed_items/",
		`{"type":"expense","category":"Rent","amount":0}`))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Empty(t, f.FixedItems.Items)
}
