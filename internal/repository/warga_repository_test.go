package repository

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"warga-portal-svc/internal/models"
	"warga-portal-svc/internal/sheets"
	"warga-portal-svc/pkg/logger"
)

func testLogger() *logger.Logger {
	return logger.NewLogger("error", "text")
}

// sheetServer serves a fixed warga values grid and records writes
type sheetServer struct {
	*httptest.Server
	writes []string
}

func newSheetServer(t *testing.T, values [][]interface{}) *sheetServer {
	t.Helper()
	s := &sheetServer{}
	s.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			s.writes = append(s.writes, r.Method+" "+r.URL.Path)
			w.Write([]byte(`{}`))
			return
		}
		payload := map[string]interface{}{"values": values}
		json.NewEncoder(w).Encode(payload)
	}))
	t.Cleanup(s.Server.Close)
	return s
}

func wargaRepo(server *sheetServer) WargaRepository {
	client := sheets.NewClient(sheets.Config{
		APIKey:        "key",
		SpreadsheetID: "sheet",
		BaseURL:       server.URL,
	}, nil, testLogger())
	return NewSheetWargaRepository(client, testLogger())
}

func wargaValues() [][]interface{} {
	return [][]interface{}{
		{"id", "nik", "no_kk", "nama", "rt_akses", "rw_akses", "no_hp", "status"},
		{"1", "3277010101000001", "3277010101000001", "Budi Santoso", "01", "16", "08123456789", "Aktif"},
		{"2", "3277010101000002", "3277010101000002", "Siti Aminah", "02", "16", "08123456780", "aktif"},
		{"3", "3277010101000003", "3277010101000003", "Joko Susilo", "01", "17", "08123456781", "Tidak Aktif"},
		{"", "", "", "", "", "", "", ""},
	}
}

func TestGetAllSkipsMalformedRows(t *testing.T) {
	repo := wargaRepo(newSheetServer(t, wargaValues()))

	records := repo.GetAll(context.Background())
	require.Len(t, records, 3, "blank row must be skipped")
	assert.Equal(t, "Budi Santoso", records[0].Nama)
	assert.Equal(t, "3277010101000001", records[0].NIK)
	assert.Equal(t, "01", records[0].RtAkses)
}

func TestGetAllSwallowsFetchFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := sheets.NewClient(sheets.Config{BaseURL: server.URL}, nil, testLogger())
	repo := NewSheetWargaRepository(client, testLogger())

	records := repo.GetAll(context.Background())
	assert.Empty(t, records)
	assert.NotNil(t, records)
}

func TestGetActiveAcceptsBothCasings(t *testing.T) {
	repo := wargaRepo(newSheetServer(t, wargaValues()))

	active := repo.GetActive(context.Background())
	require.Len(t, active, 2)
	assert.Equal(t, "Budi Santoso", active[0].Nama)
	assert.Equal(t, "Siti Aminah", active[1].Nama)
}

func TestFindByNIKAndKK(t *testing.T) {
	repo := wargaRepo(newSheetServer(t, wargaValues()))
	ctx := context.Background()

	warga, err := repo.FindByNIKAndKK(ctx, "3277010101000001", "3277010101000001")
	require.NoError(t, err)
	assert.Equal(t, "Budi Santoso", warga.Nama)

	_, err = repo.FindByNIKAndKK(ctx, "3277010101000001", "9999999999999999")
	assert.ErrorIs(t, err, ErrWargaNotFound)
}

func TestFindByNIKAndKKHighProvinceCode(t *testing.T) {
	// NIK values for province codes 91-94 exceed float64's exact integer
	// range; the digits must survive the sheet round-trip for an exact match
	values := [][]interface{}{
		{"id", "nik", "no_kk", "nama", "rt_akses", "rw_akses", "status"},
		{"1", "9271010101000001", "9271010101000002", "Yohanes Wanggai", "01", "16", "Aktif"},
	}
	repo := wargaRepo(newSheetServer(t, values))

	warga, err := repo.FindByNIKAndKK(context.Background(), "9271010101000001", "9271010101000002")
	require.NoError(t, err)
	assert.Equal(t, "Yohanes Wanggai", warga.Nama)
	assert.Equal(t, "9271010101000001", warga.NIK)
}

func TestFindByNIKAndKKFetchFailureIsNotNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer server.Close()

	client := sheets.NewClient(sheets.Config{BaseURL: server.URL}, nil, testLogger())
	repo := NewSheetWargaRepository(client, testLogger())

	_, err := repo.FindByNIKAndKK(context.Background(), "x", "y")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrWargaNotFound)
}

func TestFindByID(t *testing.T) {
	repo := wargaRepo(newSheetServer(t, wargaValues()))

	warga, err := repo.FindByID(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, "Siti Aminah", warga.Nama)

	_, err = repo.FindByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrWargaNotFound)
}

func TestHistoricalHeaderAliases(t *testing.T) {
	values := [][]interface{}{
		{"id", "no_ktp", "kk", "nama", "rt", "rw", "status"},
		{"1", "3277010101000001", "3277010101000009", "Budi", "01", "16", "Aktif"},
	}
	repo := wargaRepo(newSheetServer(t, values))

	warga, err := repo.FindByNIKAndKK(context.Background(), "3277010101000001", "3277010101000009")
	require.NoError(t, err)
	assert.Equal(t, "Budi", warga.Nama)
	assert.Equal(t, "01", warga.RtAkses)
	assert.Equal(t, "16", warga.RwAkses)
}

func TestDeactivateWritesRowInPlace(t *testing.T) {
	server := newSheetServer(t, wargaValues())
	repo := wargaRepo(server)

	err := repo.Deactivate(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, server.writes, 1)
	// Resident id 1 is the first data row, so sheet row 2
	assert.Contains(t, server.writes[0], "warga!A2")
	assert.Contains(t, server.writes[0], "PUT")
}

func TestCreateAssignsNextID(t *testing.T) {
	server := newSheetServer(t, wargaValues())
	repo := wargaRepo(server)

	warga := &models.Warga{
		NIK:     "3277010101000004",
		NoKK:    "3277010101000004",
		Nama:    "Dewi Lestari",
		RtAkses: "01",
		RwAkses: "16",
	}

	err := repo.Create(context.Background(), warga)
	require.NoError(t, err)
	assert.Equal(t, 4, warga.ID)
	assert.Equal(t, "Aktif", warga.Status)
	require.Len(t, server.writes, 1)
	assert.Contains(t, server.writes[0], "POST")
}
