package erp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"inventory-bridge/core/secrets"
)

func testProvider() secrets.Provider {
	return secrets.Static(secrets.Credentials{
		ERPAPIID:  "test-id",
		ERPAPIKey: "secret",
	})
}

func testClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := Config{BaseURL: srv.URL, TimeoutSeconds: 5, PageSize: 200}
	return NewClient(cfg, testProvider(), zap.NewNop(), "test"), srv
}

func TestSignature(t *testing.T) {
	// Independently computed HMAC-SHA256 values, base64 encoded.
	assert.Equal(t, "+eZuF5tnR65UEI+C+K3os8Jddv0wr95sOVgixTAZYWk=", Signature("", "secret"))
	assert.Equal(t, "AoLqRXRXbihzxY00ZkfvhUTDEgCTec1v5+m1xk52IUU=", Signature("pageSize=200", "secret"))
}

func TestClientSendsAuthHeaders(t *testing.T) {
	var got http.Header
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		fmt.Fprint(w, `{"Items":[],"Pagination":{"NumberOfPages":1}}`)
	}))

	client.Products(context.Background())

	assert.Equal(t, "test-id", got.Get("api-auth-id"))
	assert.Equal(t, Signature("pageSize=200", "secret"), got.Get("api-auth-signature"))
	assert.Equal(t, "inventory-bridge/test", got.Get("client-type"))
	assert.Equal(t, "application/json", got.Get("Accept"))
}

func TestProductsWalksAllPages(t *testing.T) {
	pages := map[string][]Product{
		"/Products/Page/1": {{ProductCode: "A-1"}, {ProductCode: "A-2"}},
		"/Products/Page/2": {{ProductCode: "B-1"}},
	}
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		items, ok := pages[r.URL.Path]
		require.True(t, ok, "unexpected path %s", r.URL.Path)

		var env pageEnvelope[Product]
		env.Items = items
		env.Pagination.NumberOfPages = 2
		require.NoError(t, json.NewEncoder(w).Encode(env))
	}))

	products := client.Products(context.Background())

	require.Len(t, products, 3)
	assert.Equal(t, "A-1", products[0].ProductCode)
	assert.Equal(t, "B-1", products[2].ProductCode)
}

func TestProductsReturnsPartialOnPageError(t *testing.T) {
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/Products/Page/2" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		fmt.Fprint(w, `{"Items":[{"ProductCode":"A-1"}],"Pagination":{"NumberOfPages":3}}`)
	}))

	products := client.Products(context.Background())

	require.Len(t, products, 1)
	assert.Equal(t, "A-1", products[0].ProductCode)
}

func TestProductWarehouses(t *testing.T) {
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/StockOnHand/abc-123/AllWarehouses", r.URL.Path)
		fmt.Fprint(w, `{"Items":[{"WarehouseId":"wh-1","AvailableQty":4.5}]}`)
	}))

	quantities, err := client.ProductWarehouses(context.Background(), "abc-123")

	require.NoError(t, err)
	require.Len(t, quantities, 1)
	assert.Equal(t, "wh-1", quantities[0].WarehouseId)
	assert.Equal(t, 4.5, quantities[0].AvailableQty)
}

func TestCreateSalesOrder(t *testing.T) {
	var body SalesOrderPayload
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/SalesOrders/new-guid", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		fmt.Fprint(w, `{}`)
	}))

	order := BuildSalesOrder("new-guid", "Bank West", "sp-guid", "16", []OrderLineItem{
		{ProductCode: "00.0130-8383", Quantity: 3},
	})
	require.NoError(t, client.CreateSalesOrder(context.Background(), order))

	assert.Equal(t, "Completed", body.OrderStatus)
	assert.Equal(t, 0.10, body.ExchangeRate)
	require.Len(t, body.SalesOrderLines, 1)
	assert.Equal(t, 1, body.SalesOrderLines[0].LineNumber)
	assert.Equal(t, "00.0130-8383", body.SalesOrderLines[0].Product.ProductCode)
}

func TestBuildSalesOrderLineNumbering(t *testing.T) {
	order := BuildSalesOrder("g", "c", "s", "16", []OrderLineItem{
		{ProductCode: "A", Quantity: 1},
		{ProductCode: "B", Quantity: 2},
		{ProductCode: "C", Quantity: 3},
	})

	require.Len(t, order.SalesOrderLines, 3)
	for i, line := range order.SalesOrderLines {
		assert.Equal(t, i+1, line.LineNumber)
	}
	assert.Equal(t, 0.0, order.Total)
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate("/Date(1700000000000)/")
	require.NoError(t, err)
	assert.Equal(t, time.UnixMilli(1700000000000), got)

	_, err = ParseDate("2023-11-14T22:13:20Z")
	assert.Error(t, err)
}

func TestFormatDatePassesThroughMalformed(t *testing.T) {
	assert.Equal(t, "not-a-date", FormatDate("not-a-date"))

	want := time.UnixMilli(1700000000000).Local().Format("02/01/2006, 15:04:05")
	assert.Equal(t, want, FormatDate("/Date(1700000000000)/"))
}
