package models

// Warga represents a resident row from the warga sheet.
// Rows are parsed from the loosely-typed sheet at the repository boundary;
// JSON tags double as the sheet header names.
type Warga struct {
	ID               int    `json:"id"`
	NIK              string `json:"nik"`
	NoKK             string `json:"no_kk"`
	Nama             string `json:"nama"`
	JenisKelamin     string `json:"jenis_kelamin"`
	TempatLahir      string `json:"tempat_lahir"`
	TanggalLahir     string `json:"tanggal_lahir"`
	Alamat           string `json:"alamat"`
	RtAkses          string `json:"rt_akses"`
	RwAkses          string `json:"rw_akses"`
	Kelurahan        string `json:"kelurahan"`
	Kecamatan        string `json:"kecamatan"`
	Agama            string `json:"agama"`
	StatusPerkawinan string `json:"status_perkawinan"`
	Pekerjaan        string `json:"pekerjaan"`
	Kewarganegaraan  string `json:"kewarganegaraan"`
	NoHP             string `json:"no_hp"`
	Status           string `json:"status"`
	CreatedAt        string `json:"created_at"`
	UpdatedAt        string `json:"updated_at"`
}

// IsActive reports whether the row's status marks it as an active resident.
// Upstream data entry is inconsistent about casing, so both are accepted.
func (w *Warga) IsActive() bool {
	return w.Status == "Aktif" || w.Status == "aktif"
}
