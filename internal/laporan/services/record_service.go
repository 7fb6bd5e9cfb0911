package services

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/faspark/faspark-backend/internal/laporan/models"
)

// ErrLaporanNotFound dipakai kedua resource laporan.
var ErrLaporanNotFound = errors.New("laporan tidak ditemukan")

type RecordService struct {
	DB *sql.DB
}

func NewRecordService(db *sql.DB) *RecordService {
	return &RecordService{DB: db}
}

// Create menyimpan laporan kehilangan baru. Tanggal lapor = sekarang (UTC).
func (s *RecordService) Create(r *models.Record) (int64, error) {
	r.TanggalLapor = time.Now().UTC()
	res, err := s.DB.Exec(`
		INSERT INTO records (nama_pelapor, no_hp, jenis_barang, area_kehilangan, description, image_url, tanggal_lapor)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, r.NamaPelapor, r.NoHP, r.JenisBarang, r.AreaKehilangan, r.Description, r.ImageURL, r.TanggalLapor)
	if err != nil {
		return 0, fmt.Errorf("insert error: %v", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("last insert id error: %v", err)
	}
	return id, nil
}

// GetByID mengambil satu laporan.
func (s *RecordService) GetByID(id int) (*models.Record, error) {
	var r models.Record
	err := s.DB.QueryRow(`
		SELECT id, nama_pelapor, no_hp, jenis_barang, area_kehilangan, description, image_url, tanggal_lapor
		FROM records WHERE id = ?
	`, id).Scan(&r.ID, &r.NamaPelapor, &r.NoHP, &r.JenisBarang, &r.AreaKehilangan, &r.Description, &r.ImageURL, &r.TanggalLapor)
	if err == sql.ErrNoRows {
		return nil, ErrLaporanNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query error: %v", err)
	}
	return &r, nil
}

// List mengembalikan seluruh laporan, terbaru lebih dulu.
func (s *RecordService) List() ([]models.Record, error) {
	rows, err := s.DB.Query(`
		SELECT id, nama_pelapor, no_hp, jenis_barang, area_kehilangan, description, image_url, tanggal_lapor
		FROM records ORDER BY tanggal_lapor DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("query error: %v", err)
	}
	defer rows.Close()

	var list []models.Record
	for rows.Next() {
		var r models.Record
		if err := rows.Scan(&r.ID, &r.NamaPelapor, &r.NoHP, &r.JenisBarang, &r.AreaKehilangan, &r.Description, &r.ImageURL, &r.TanggalLapor); err != nil {
			return nil, fmt.Errorf("scan error: %v", err)
		}
		list = append(list, r)
	}
	return list, rows.Err()
}

// Update menimpa seluruh field editable; image_url ikut ditimpa
// (pemanggil mengisi nama file lama bila gambar tidak diganti).
func (s *RecordService) Update(r *models.Record) error {
	_, err := s.DB.Exec(`
		UPDATE records
		SET nama_pelapor = ?, no_hp = ?, jenis_barang = ?, area_kehilangan = ?, description = ?, image_url = ?
		WHERE id = ?
	`, r.NamaPelapor, r.NoHP, r.JenisBarang, r.AreaKehilangan, r.Description, r.ImageURL, r.ID)
	if err != nil {
		return fmt.Errorf("update error: %v", err)
	}
	return nil
}

// Delete menghapus baris laporan.
func (s *RecordService) Delete(id int) error {
	res, err := s.DB.Exec("DELETE FROM records WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete error: %v", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %v", err)
	}
	if affected == 0 {
		return ErrLaporanNotFound
	}
	return nil
}
