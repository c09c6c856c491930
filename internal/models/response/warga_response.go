package response

// VerifyWargaResponse is returned by the public two-factor resident lookup.
// The raw NIK and KK values are never included; only masked previews built
// from the caller's own input.
type VerifyWargaResponse struct {
	Nama         string `json:"nama"`
	JenisKelamin string `json:"jenis_kelamin"`
	Alamat       string `json:"alamat"`
	RtAkses      string `json:"rt_akses"`
	RwAkses      string `json:"rw_akses"`
	Status       string `json:"status"`
	NIKMasked    string `json:"nik_masked"`
	KKMasked     string `json:"kk_masked"`
}
