package models

import "time"

// Status riwayat parkir.
const (
	StatusParkir = "Parkir"
	StatusKeluar = "Keluar"
)

// AreaParkir adalah lokasi parkir dengan kapasitas tetap.
type AreaParkir struct {
	IDArea        int    `json:"id_area"`
	NamaArea      string `json:"nama_area"`
	KapasitasArea int    `json:"kapasitas_area"`
	StatusArea    string `json:"status_area"`
}

// RiwayatParkir adalah satu kejadian parkir. Invariant: per user paling
// banyak satu baris dengan status Parkir dan waktu_keluar NULL.
type RiwayatParkir struct {
	IDRiwayat     int        `json:"id_riwayat"`
	IDUser        int        `json:"id_user"`
	IDArea        int        `json:"id_area"`
	WaktuMasuk    time.Time  `json:"waktu_masuk"`
	WaktuKeluar   *time.Time `json:"waktu_keluar,omitempty"`
	StatusRiwayat string     `json:"status_riwayat"`
}

// ParkirAktif adalah hasil join riwayat aktif dengan user dan area.
type ParkirAktif struct {
	IDRiwayat  int       `json:"id_riwayat"`
	Username   string    `json:"username"`
	NamaArea   string    `json:"nama_area"`
	WaktuMasuk time.Time `json:"waktu_masuk"`
}

// SesiAktif adalah sesi aktif milik satu user, termasuk area-nya.
type SesiAktif struct {
	IDRiwayat  int       `json:"id_riwayat"`
	IDArea     int       `json:"id_area"`
	NamaArea   string    `json:"nama_area"`
	WaktuMasuk time.Time `json:"waktu_masuk"`
}

// AreaStatus adalah okupansi satu area: jumlah terisi dan persentase
// terhadap kapasitas, dibulatkan satu desimal.
type AreaStatus struct {
	IDArea        int     `json:"id_area"`
	NamaArea      string  `json:"nama_area"`
	KapasitasArea int     `json:"kapasitas_area"`
	Terisi        int     `json:"terisi"`
	Persen        float64 `json:"persen"`
}
