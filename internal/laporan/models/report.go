package models

import "time"

// Report adalah laporan motor ditemukan. GambarPath boleh kosong
// (gambar opsional untuk resource ini).
type Report struct {
	ID         int       `json:"id"`
	PlatMotor  string    `json:"plat_motor"`
	NamaMotor  string    `json:"nama_motor"`
	Spot       string    `json:"spot"`
	Deskripsi  string    `json:"deskripsi"`
	GambarPath string    `json:"gambar_path"`
	CreatedAt  time.Time `json:"created_at"`
}
