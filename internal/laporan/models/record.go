package models

import "time"

// Record adalah laporan kehilangan barang. ImageURL menyimpan nama file
// polos di direktori upload; URL lengkap dibangun per request.
type Record struct {
	ID             int       `json:"id"`
	NamaPelapor    string    `json:"nama_pelapor"`
	NoHP           string    `json:"no_hp"`
	JenisBarang    string    `json:"jenis_barang"`
	AreaKehilangan string    `json:"area_kehilangan"`
	Description    string    `json:"description"`
	ImageURL       string    `json:"-"`
	TanggalLapor   time.Time `json:"tanggal_lapor"`
}
