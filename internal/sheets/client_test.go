package sheets

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"warga-portal-svc/pkg/logger"
)

func testLogger() *logger.Logger {
	return logger.NewLogger("error", "text")
}

func TestCoerceCell(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  interface{}
	}{
		{"plain number", "42", float64(42)},
		{"literal zero", "0", float64(0)},
		{"leading zero phone number", "08123456789", "08123456789"},
		{"leading zero code", "01", "01"},
		{"exponent stays text", "1e10", "1e10"},
		{"uppercase exponent stays text", "1E5", "1E5"},
		{"signed stays text", "+62", "+62"},
		{"negative stays text", "-1", "-1"},
		{"plain text", "Aktif", "Aktif"},
		{"empty", "", ""},
		{"long id", "3277010101000001", float64(3277010101000001)},
		{"id beyond float precision", "9271010101000001", "9271010101000001"},
		{"overflowing digit run", "99999999999999999999", "99999999999999999999"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, coerceCell(tt.input))
		})
	}
}

func TestRowsFromValues(t *testing.T) {
	values := [][]interface{}{
		{"id", "nama", "no_hp"},
		{"1", "Budi", "08123456789"},
		{"2", "Siti"},
	}

	rows := rowsFromValues(values)
	require.Len(t, rows, 2)

	assert.Equal(t, float64(1), rows[0]["id"])
	assert.Equal(t, "Budi", rows[0]["nama"])
	assert.Equal(t, "08123456789", rows[0]["no_hp"])

	// Short records are padded with empty strings
	assert.Equal(t, "", rows[1]["no_hp"])
}

func TestRowsFromValuesHeaderOnly(t *testing.T) {
	assert.Empty(t, rowsFromValues([][]interface{}{{"id", "nama"}}))
	assert.Empty(t, rowsFromValues(nil))
}

func TestReadTable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.Path, "/v4/spreadsheets/sheet-id/values/warga")
		assert.Equal(t, "api-key", r.URL.Query().Get("key"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"range":"warga!A1:C3","majorDimension":"ROWS","values":[["id","nama","status"],["1","Budi","Aktif"],["2","Siti","aktif"]]}`))
	}))
	defer server.Close()

	client := NewClient(Config{
		APIKey:        "api-key",
		SpreadsheetID: "sheet-id",
		BaseURL:       server.URL,
	}, nil, testLogger())

	rows, err := client.ReadTable(context.Background(), "warga")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Budi", rows[0]["nama"])
	assert.Equal(t, float64(2), rows[1]["id"])
}

func TestRefreshTableBypassesLiveCache(t *testing.T) {
	hits := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"values":[["id","nama"],["1","Budi"]]}`))
	}))
	defer server.Close()

	cache, _ := testCache(t, time.Hour)
	client := NewClient(Config{
		APIKey:        "api-key",
		SpreadsheetID: "sheet-id",
		BaseURL:       server.URL,
	}, cache, testLogger())
	ctx := context.Background()

	_, err := client.ReadTable(ctx, "warga")
	require.NoError(t, err)
	require.Equal(t, 1, hits)

	// The cache entry is still live, so a plain read never hits the API
	_, err = client.ReadTable(ctx, "warga")
	require.NoError(t, err)
	require.Equal(t, 1, hits)

	// A refresh must reach the API even with a live entry
	rows, err := client.RefreshTable(ctx, "warga")
	require.NoError(t, err)
	assert.Equal(t, 2, hits)
	require.Len(t, rows, 1)
	assert.Equal(t, "Budi", rows[0]["nama"])
}

func TestReadTableUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"code":403,"message":"forbidden"}}`, http.StatusForbidden)
	}))
	defer server.Close()

	client := NewClient(Config{
		APIKey:        "api-key",
		SpreadsheetID: "sheet-id",
		BaseURL:       server.URL,
	}, nil, testLogger())

	_, err := client.ReadTable(context.Background(), "warga")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "403")
}

func TestReadTableTransportError(t *testing.T) {
	client := NewClient(Config{
		APIKey:        "api-key",
		SpreadsheetID: "sheet-id",
		BaseURL:       "http://127.0.0.1:1",
	}, nil, testLogger())

	_, err := client.ReadTable(context.Background(), "warga")
	require.Error(t, err)
}

func TestAppendRow(t *testing.T) {
	var gotMethod, gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewClient(Config{
		APIKey:        "api-key",
		SpreadsheetID: "sheet-id",
		BaseURL:       server.URL,
	}, nil, testLogger())

	err := client.AppendRow(context.Background(), "warga", []interface{}{"1", "Budi"})
	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Contains(t, gotPath, "warga:append")
}
