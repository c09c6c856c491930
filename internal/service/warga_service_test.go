package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"warga-portal-svc/internal/auth"
	"warga-portal-svc/internal/models"
	"warga-portal-svc/internal/repository"
	"warga-portal-svc/pkg/logger"
)

func testLogger() *logger.Logger {
	return logger.NewLogger("error", "text")
}

// fakeWargaRepo is an in-memory WargaRepository for service tests
type fakeWargaRepo struct {
	records  []models.Warga
	fetchErr error
}

func (f *fakeWargaRepo) GetAll(ctx context.Context) []models.Warga {
	if f.fetchErr != nil {
		return []models.Warga{}
	}
	out := make([]models.Warga, len(f.records))
	copy(out, f.records)
	return out
}

func (f *fakeWargaRepo) GetActive(ctx context.Context) []models.Warga {
	all := f.GetAll(ctx)
	active := make([]models.Warga, 0, len(all))
	for _, w := range all {
		if w.IsActive() {
			active = append(active, w)
		}
	}
	return active
}

func (f *fakeWargaRepo) FindByID(ctx context.Context, id int) (*models.Warga, error) {
	for i := range f.records {
		if f.records[i].ID == id {
			w := f.records[i]
			return &w, nil
		}
	}
	return nil, repository.ErrWargaNotFound
}

func (f *fakeWargaRepo) FindByNIKAndKK(ctx context.Context, nik, kk string) (*models.Warga, error) {
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	for i := range f.records {
		if f.records[i].NIK == nik && f.records[i].NoKK == kk {
			w := f.records[i]
			return &w, nil
		}
	}
	return nil, repository.ErrWargaNotFound
}

func (f *fakeWargaRepo) Create(ctx context.Context, warga *models.Warga) error {
	warga.ID = len(f.records) + 1
	if warga.Status == "" {
		warga.Status = "Aktif"
	}
	f.records = append(f.records, *warga)
	return nil
}

func (f *fakeWargaRepo) Update(ctx context.Context, warga *models.Warga) error {
	for i := range f.records {
		if f.records[i].ID == warga.ID {
			f.records[i] = *warga
			return nil
		}
	}
	return repository.ErrWargaNotFound
}

func (f *fakeWargaRepo) Deactivate(ctx context.Context, id int) error {
	for i := range f.records {
		if f.records[i].ID == id {
			f.records[i].Status = "Tidak Aktif"
			return nil
		}
	}
	return repository.ErrWargaNotFound
}

func (f *fakeWargaRepo) WarmCache(ctx context.Context) (int, error) {
	return len(f.records), f.fetchErr
}

func sampleWarga() []models.Warga {
	return []models.Warga{
		{ID: 1, NIK: "3277010101000001", NoKK: "3277010101000001", Nama: "Budi", RtAkses: "01", RwAkses: "16", NoHP: "08111111111", Status: "Aktif"},
		{ID: 2, NIK: "3277010101000002", NoKK: "3277010101000002", Nama: "Siti", RtAkses: "02", RwAkses: "16", NoHP: "08122222222", Status: "Aktif"},
		{ID: 3, NIK: "3277010101000003", NoKK: "3277010101000003", Nama: "Joko", RtAkses: "01", RwAkses: "17", NoHP: "08133333333", Status: "Aktif"},
	}
}

func TestFilterWargaAdminSeesAll(t *testing.T) {
	user := &auth.SessionUser{Role: auth.RoleAdmin}

	visible := FilterWarga(user, sampleWarga())
	assert.Len(t, visible, 3)
}

func TestFilterWargaRTScope(t *testing.T) {
	user := &auth.SessionUser{Role: auth.RoleAdminRT, RtAkses: "01", RwAkses: "16"}

	visible := FilterWarga(user, sampleWarga())
	require.Len(t, visible, 1)
	assert.Equal(t, "Budi", visible[0].Nama)
}

func TestFilterWargaRWScope(t *testing.T) {
	user := &auth.SessionUser{Role: auth.RoleKetuaRW, RwAkses: "16"}

	visible := FilterWarga(user, sampleWarga())
	require.Len(t, visible, 2)
	assert.Equal(t, "Budi", visible[0].Nama)
	assert.Equal(t, "Siti", visible[1].Nama)
}

func TestFilterWargaLembagaSeesNothing(t *testing.T) {
	user := &auth.SessionUser{Role: auth.RoleAdminLembaga}
	assert.Empty(t, FilterWarga(user, sampleWarga()))
}

func TestFilterWargaUnknownRoleSeesNothing(t *testing.T) {
	user := &auth.SessionUser{Role: "moderator"}
	assert.Empty(t, FilterWarga(user, sampleWarga()))
	assert.Empty(t, FilterWarga(nil, sampleWarga()))
}

func TestFilterWargaAlwaysMasksIdentifiers(t *testing.T) {
	users := []*auth.SessionUser{
		{Role: auth.RoleAdmin},
		{Role: auth.RoleSuperAdmin},
		{Role: auth.RoleAdminRW, RwAkses: "16"},
		{Role: auth.RoleAdminRT, RtAkses: "01", RwAkses: "16"},
	}

	for _, user := range users {
		for _, warga := range FilterWarga(user, sampleWarga()) {
			assert.Equal(t, MaskMarker, warga.NIK, "role %s", user.Role)
			assert.Equal(t, MaskMarker, warga.NoKK, "role %s", user.Role)
		}
	}
}

func TestFilterWargaPhoneMasking(t *testing.T) {
	admin := &auth.SessionUser{Role: auth.RoleAdmin}
	for _, warga := range FilterWarga(admin, sampleWarga()) {
		assert.NotEqual(t, MaskMarker, warga.NoHP)
	}

	// ketua_rt sees its rows but lacks the phone capability
	ketua := &auth.SessionUser{Role: auth.RoleKetuaRT, RtAkses: "01", RwAkses: "16"}
	visible := FilterWarga(ketua, sampleWarga())
	require.Len(t, visible, 1)
	assert.Equal(t, MaskMarker, visible[0].NoHP)
}

func TestFilterWargaDoesNotMutateInput(t *testing.T) {
	records := sampleWarga()
	FilterWarga(&auth.SessionUser{Role: auth.RoleAdmin}, records)
	assert.Equal(t, "3277010101000001", records[0].NIK)
}

func TestVerifyWargaMatch(t *testing.T) {
	repo := &fakeWargaRepo{records: sampleWarga()}
	svc := NewWargaService(repo, testLogger())

	result, err := svc.Verify(context.Background(), "3277010101000001", "3277010101000001")
	require.NoError(t, err)
	assert.Equal(t, "Budi", result.Nama)
	assert.Equal(t, "3277********0001", result.NIKMasked)
	assert.Equal(t, "3277********0001", result.KKMasked)
}

func TestVerifyWargaNoMatch(t *testing.T) {
	repo := &fakeWargaRepo{records: sampleWarga()}
	svc := NewWargaService(repo, testLogger())

	_, err := svc.Verify(context.Background(), "3277010101000001", "9999999999999999")
	assert.ErrorIs(t, err, repository.ErrWargaNotFound)
}

func TestVerifyWargaUpstreamFailureKeepsError(t *testing.T) {
	repo := &fakeWargaRepo{fetchErr: errors.New("sheet unreachable")}
	svc := NewWargaService(repo, testLogger())

	_, err := svc.Verify(context.Background(), "a", "b")
	require.Error(t, err)
	assert.NotErrorIs(t, err, repository.ErrWargaNotFound)
}

func TestMaskIdentifier(t *testing.T) {
	assert.Equal(t, "3277********0001", MaskIdentifier("3277010101000001"))
	assert.Equal(t, MaskMarker, MaskIdentifier("123"))
}

func TestCreateWargaPinsRTScope(t *testing.T) {
	repo := &fakeWargaRepo{}
	svc := NewWargaService(repo, testLogger())
	user := &auth.SessionUser{Role: auth.RoleAdminRT, RtAkses: "01", RwAkses: "16"}

	created, err := svc.Create(context.Background(), user, &models.Warga{
		NIK:     "3277010101000009",
		NoKK:    "3277010101000009",
		Nama:    "Dewi",
		RtAkses: "05",
		RwAkses: "99",
	})
	require.NoError(t, err)
	assert.Equal(t, "01", created.RtAkses)
	assert.Equal(t, "16", created.RwAkses)
}

func TestCreateWargaValidation(t *testing.T) {
	svc := NewWargaService(&fakeWargaRepo{}, testLogger())
	user := &auth.SessionUser{Role: auth.RoleAdmin}

	_, err := svc.Create(context.Background(), user, &models.Warga{Nama: "No NIK"})
	assert.ErrorIs(t, err, ErrWargaValidation)
}

func TestUpdateWargaOutOfScope(t *testing.T) {
	repo := &fakeWargaRepo{records: sampleWarga()}
	svc := NewWargaService(repo, testLogger())
	user := &auth.SessionUser{Role: auth.RoleAdminRT, RtAkses: "01", RwAkses: "16"}

	// Warga 3 is in RT 01 / RW 17, outside the caller's RW
	_, err := svc.Update(context.Background(), user, &models.Warga{ID: 3, Nama: "Renamed"})
	assert.ErrorIs(t, err, ErrOutOfScope)
}

func TestDeactivateWarga(t *testing.T) {
	repo := &fakeWargaRepo{records: sampleWarga()}
	svc := NewWargaService(repo, testLogger())
	user := &auth.SessionUser{Role: auth.RoleAdmin}

	require.NoError(t, svc.Deactivate(context.Background(), user, 1))
	assert.Equal(t, "Tidak Aktif", repo.records[0].Status)

	// Soft delete only: record still present
	assert.Len(t, repo.records, 3)
}

func TestListFiltersAndMasks(t *testing.T) {
	repo := &fakeWargaRepo{records: sampleWarga()}
	svc := NewWargaService(repo, testLogger())
	user := &auth.SessionUser{Role: auth.RoleAdminRT, RtAkses: "01", RwAkses: "16"}

	visible := svc.List(context.Background(), user)
	require.Len(t, visible, 1)
	assert.Equal(t, MaskMarker, visible[0].NIK)
	assert.Equal(t, MaskMarker, visible[0].NoKK)
}
