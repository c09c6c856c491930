package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"warga-portal-svc/internal/models"
	"warga-portal-svc/internal/sheets"
	"warga-portal-svc/pkg/logger"
)

// ErrWargaNotFound is returned when no resident matches a lookup
var ErrWargaNotFound = errors.New("warga not found")

// WargaTable is the sheet tab holding resident rows
const WargaTable = "warga"

// WargaRepository defines the interface for resident data operations
type WargaRepository interface {
	GetAll(ctx context.Context) []models.Warga
	GetActive(ctx context.Context) []models.Warga
	FindByID(ctx context.Context, id int) (*models.Warga, error)
	FindByNIKAndKK(ctx context.Context, nik, kk string) (*models.Warga, error)
	Create(ctx context.Context, warga *models.Warga) error
	Update(ctx context.Context, warga *models.Warga) error
	Deactivate(ctx context.Context, id int) error
	WarmCache(ctx context.Context) (int, error)
}

// sheetWargaRepository implements WargaRepository on top of the sheet client.
// Residents live in the spreadsheet; the relational store never sees them.
type sheetWargaRepository struct {
	client *sheets.Client
	logger *logger.Logger
}

// NewSheetWargaRepository creates a sheet-backed warga repository
func NewSheetWargaRepository(client *sheets.Client, logger *logger.Logger) WargaRepository {
	return &sheetWargaRepository{
		client: client,
		logger: logger,
	}
}

// GetAll returns every resident row. Fetch failures are logged and absorbed
// into an empty slice; list callers cannot distinguish the two cases.
func (r *sheetWargaRepository) GetAll(ctx context.Context) []models.Warga {
	records, err := r.fetch(ctx)
	if err != nil {
		r.logger.WithError(err).Error("Failed to fetch warga sheet, returning empty result")
		return []models.Warga{}
	}
	return records
}

// GetActive returns resident rows whose status marks them active
func (r *sheetWargaRepository) GetActive(ctx context.Context) []models.Warga {
	all := r.GetAll(ctx)
	active := make([]models.Warga, 0, len(all))
	for _, warga := range all {
		if warga.IsActive() {
			active = append(active, warga)
		}
	}
	return active
}

// FindByID returns the resident with the given id
func (r *sheetWargaRepository) FindByID(ctx context.Context, id int) (*models.Warga, error) {
	records, err := r.fetch(ctx)
	if err != nil {
		return nil, err
	}
	for i := range records {
		if records[i].ID == id {
			return &records[i], nil
		}
	}
	return nil, ErrWargaNotFound
}

// FindByNIKAndKK returns the first resident whose NIK and family-card number
// both match the supplied values, compared as strings. A fetch failure and a
// miss are distinct return values; callers present both identically.
func (r *sheetWargaRepository) FindByNIKAndKK(ctx context.Context, nik, kk string) (*models.Warga, error) {
	records, err := r.fetch(ctx)
	if err != nil {
		return nil, err
	}
	for i := range records {
		if records[i].NIK == nik && records[i].NoKK == kk {
			return &records[i], nil
		}
	}
	return nil, ErrWargaNotFound
}

// Create appends a new resident row. The id is assigned from the current
// maximum; concurrent writers race last-write-wins, as the storage allows.
func (r *sheetWargaRepository) Create(ctx context.Context, warga *models.Warga) error {
	records, err := r.fetch(ctx)
	if err != nil {
		return fmt.Errorf("failed to load warga sheet before create: %w", err)
	}

	maxID := 0
	for _, record := range records {
		if record.ID > maxID {
			maxID = record.ID
		}
	}
	warga.ID = maxID + 1

	now := time.Now().Format("2006-01-02 15:04:05")
	warga.CreatedAt = now
	warga.UpdatedAt = now
	if warga.Status == "" {
		warga.Status = "Aktif"
	}

	return r.client.AppendRow(ctx, WargaTable, wargaToValues(warga))
}

// Update overwrites the resident's row in place
func (r *sheetWargaRepository) Update(ctx context.Context, warga *models.Warga) error {
	rowNumber, existing, err := r.findRowNumber(ctx, warga.ID)
	if err != nil {
		return err
	}

	warga.CreatedAt = existing.CreatedAt
	warga.UpdatedAt = time.Now().Format("2006-01-02 15:04:05")

	return r.client.UpdateRow(ctx, WargaTable, rowNumber, wargaToValues(warga))
}

// Deactivate flips the resident's status to inactive. Rows are never removed
// from the sheet.
func (r *sheetWargaRepository) Deactivate(ctx context.Context, id int) error {
	rowNumber, existing, err := r.findRowNumber(ctx, id)
	if err != nil {
		return err
	}

	existing.Status = "Tidak Aktif"
	existing.UpdatedAt = time.Now().Format("2006-01-02 15:04:05")

	return r.client.UpdateRow(ctx, WargaTable, rowNumber, wargaToValues(&existing))
}

// WarmCache re-reads the warga table past any live cache entry so the
// scheduled warm always repopulates with fresh rows
func (r *sheetWargaRepository) WarmCache(ctx context.Context) (int, error) {
	rows, err := r.client.RefreshTable(ctx, WargaTable)
	if err != nil {
		return 0, err
	}
	return len(rows), nil
}

// fetch loads and parses the warga table
func (r *sheetWargaRepository) fetch(ctx context.Context) ([]models.Warga, error) {
	rows, err := r.client.ReadTable(ctx, WargaTable)
	if err != nil {
		return nil, err
	}

	records := make([]models.Warga, 0, len(rows))
	for i, row := range rows {
		warga, err := wargaFromRow(row)
		if err != nil {
			r.logger.WithError(err).WithField("row", i+2).Warn("Skipping malformed warga row")
			continue
		}
		records = append(records, warga)
	}

	return records, nil
}

// findRowNumber locates a resident's 1-based sheet row (header row included)
func (r *sheetWargaRepository) findRowNumber(ctx context.Context, id int) (int, models.Warga, error) {
	rows, err := r.client.ReadTable(ctx, WargaTable)
	if err != nil {
		return 0, models.Warga{}, err
	}

	for i, row := range rows {
		warga, err := wargaFromRow(row)
		if err != nil {
			continue
		}
		if warga.ID == id {
			return i + 2, warga, nil
		}
	}

	return 0, models.Warga{}, ErrWargaNotFound
}

// wargaFromRow parses a loosely-typed sheet row into a typed resident record.
// Historical sheets used "no_ktp" for the NIK column and "kk" for the family
// card, so both header spellings are accepted.
func wargaFromRow(row sheets.Row) (models.Warga, error) {
	warga := models.Warga{
		NIK:              cellString(row, "nik", "no_ktp"),
		NoKK:             cellString(row, "no_kk", "kk"),
		Nama:             cellString(row, "nama"),
		JenisKelamin:     cellString(row, "jenis_kelamin"),
		TempatLahir:      cellString(row, "tempat_lahir"),
		TanggalLahir:     cellString(row, "tanggal_lahir"),
		Alamat:           cellString(row, "alamat"),
		RtAkses:          cellString(row, "rt_akses", "rt"),
		RwAkses:          cellString(row, "rw_akses", "rw"),
		Kelurahan:        cellString(row, "kelurahan"),
		Kecamatan:        cellString(row, "kecamatan"),
		Agama:            cellString(row, "agama"),
		StatusPerkawinan: cellString(row, "status_perkawinan"),
		Pekerjaan:        cellString(row, "pekerjaan"),
		Kewarganegaraan:  cellString(row, "kewarganegaraan"),
		NoHP:             cellString(row, "no_hp"),
		Status:           cellString(row, "status"),
		CreatedAt:        cellString(row, "created_at"),
		UpdatedAt:        cellString(row, "updated_at"),
	}

	idValue := cellString(row, "id")
	if idValue == "" {
		return models.Warga{}, fmt.Errorf("missing id")
	}
	id, err := strconv.Atoi(idValue)
	if err != nil {
		return models.Warga{}, fmt.Errorf("invalid id %q: %w", idValue, err)
	}
	warga.ID = id

	if warga.Nama == "" {
		return models.Warga{}, fmt.Errorf("missing nama for id %d", id)
	}

	return warga, nil
}

// wargaToValues lays a resident out in the canonical column order
func wargaToValues(warga *models.Warga) []interface{} {
	return []interface{}{
		strconv.Itoa(warga.ID), warga.NIK, warga.NoKK, warga.Nama,
		warga.JenisKelamin, warga.TempatLahir, warga.TanggalLahir,
		warga.Alamat, warga.RtAkses, warga.RwAkses, warga.Kelurahan,
		warga.Kecamatan, warga.Agama, warga.StatusPerkawinan,
		warga.Pekerjaan, warga.Kewarganegaraan, warga.NoHP, warga.Status,
		warga.CreatedAt, warga.UpdatedAt,
	}
}

// cellString reads the first non-empty cell under any of the given headers
func cellString(row sheets.Row, keys ...string) string {
	for _, key := range keys {
		value, ok := row[key]
		if !ok {
			continue
		}
		switch v := value.(type) {
		case string:
			if v != "" {
				return v
			}
		case float64:
			return strconv.FormatFloat(v, 'f', -1, 64)
		}
	}
	return ""
}
