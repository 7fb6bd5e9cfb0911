package services

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/faspark/faspark-backend/internal/laporan/models"
)

type ReportService struct {
	DB *sql.DB
}

func NewReportService(db *sql.DB) *ReportService {
	return &ReportService{DB: db}
}

func (s *ReportService) Create(r *models.Report) (int64, error) {
	r.CreatedAt = time.Now().UTC()
	res, err := s.DB.Exec(`
		INSERT INTO reports (plat_motor, nama_motor, spot, deskripsi, gambar_path, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, r.PlatMotor, r.NamaMotor, r.Spot, r.Deskripsi, r.GambarPath, r.CreatedAt)
	if err != nil {
		return 0, fmt.Errorf("insert error: %v", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("last insert id error: %v", err)
	}
	return id, nil
}

func (s *ReportService) GetByID(id int) (*models.Report, error) {
	var r models.Report
	err := s.DB.QueryRow(`
		SELECT id, plat_motor, nama_motor, spot, deskripsi, gambar_path, created_at
		FROM reports WHERE id = ?
	`, id).Scan(&r.ID, &r.PlatMotor, &r.NamaMotor, &r.Spot, &r.Deskripsi, &r.GambarPath, &r.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrLaporanNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query error: %v", err)
	}
	return &r, nil
}

// List mengembalikan seluruh laporan, terbaru lebih dulu (id menurun).
func (s *ReportService) List() ([]models.Report, error) {
	rows, err := s.DB.Query(`
		SELECT id, plat_motor, nama_motor, spot, deskripsi, gambar_path, created_at
		FROM reports ORDER BY id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("query error: %v", err)
	}
	defer rows.Close()

	var list []models.Report
	for rows.Next() {
		var r models.Report
		if err := rows.Scan(&r.ID, &r.PlatMotor, &r.NamaMotor, &r.Spot, &r.Deskripsi, &r.GambarPath, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan error: %v", err)
		}
		list = append(list, r)
	}
	return list, rows.Err()
}

func (s *ReportService) Update(r *models.Report) error {
	_, err := s.DB.Exec(`
		UPDATE reports
		SET plat_motor = ?, nama_motor = ?, spot = ?, deskripsi = ?, gambar_path = ?
		WHERE id = ?
	`, r.PlatMotor, r.NamaMotor, r.Spot, r.Deskripsi, r.GambarPath, r.ID)
	if err != nil {
		return fmt.Errorf("update error: %v", err)
	}
	return nil
}

func (s *ReportService) Delete(id int) error {
	res, err := s.DB.Exec("DELETE FROM reports WHERE id = ?", id)
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
