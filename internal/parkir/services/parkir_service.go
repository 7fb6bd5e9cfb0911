package services

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/faspark/faspark-backend/internal/parkir/models"
)

var (
	// ErrAlreadyParked: user masih punya sesi aktif di area manapun.
	ErrAlreadyParked = errors.New("kamu sudah parkir di area lain")
	// ErrRiwayatNotFound: baris tidak ada atau sesi sudah ditutup.
	ErrRiwayatNotFound = errors.New("data tidak ditemukan atau sudah keluar")
)

type ParkirService struct {
	DB *sql.DB
}

func NewParkirService(db *sql.DB) *ParkirService {
	return &ParkirService{DB: db}
}

// CheckIn membuka sesi parkir baru untuk user di area yang diberikan.
// Cek sesi aktif dan insert dijalankan dalam satu transaksi dengan locking
// read, sehingga dua check-in bersamaan untuk user yang sama tidak bisa
// sama-sama lolos. Kapasitas area tidak diperiksa; okupansi bisa melewati
// 100% (perilaku sistem lama dipertahankan).
func (s *ParkirService) CheckIn(idUser, idArea int) (int64, error) {
	tx, err := s.DB.Begin()
	if err != nil {
		return 0, fmt.Errorf("begin error: %v", err)
	}
	defer tx.Rollback()

	var existing int
	err = tx.QueryRow(`
		SELECT id_riwayat FROM riwayat_parkir
		WHERE id_user = ? AND status_riwayat = ? AND waktu_keluar IS NULL
		FOR UPDATE
	`, idUser, models.StatusParkir).Scan(&existing)
	if err == nil {
		return 0, ErrAlreadyParked
	}
	if err != sql.ErrNoRows {
		return 0, fmt.Errorf("query error: %v", err)
	}

	res, err := tx.Exec(`
		INSERT INTO riwayat_parkir (id_user, id_area, waktu_masuk, status_riwayat)
		VALUES (?, ?, ?, ?)
	`, idUser, idArea, time.Now().UTC(), models.StatusParkir)
	if err != nil {
		return 0, fmt.Errorf("insert error: %v", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("last insert id error: %v", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit error: %v", err)
	}
	return id, nil
}

// CheckOut menutup sesi parkir. Sesi yang tidak ada dan sesi yang sudah
// ditutup diperlakukan sama: ErrRiwayatNotFound (perilaku sistem lama).
func (s *ParkirService) CheckOut(idRiwayat int) error {
	res, err := s.DB.Exec(`
		UPDATE riwayat_parkir
		SET waktu_keluar = ?, status_riwayat = ?
		WHERE id_riwayat = ? AND waktu_keluar IS NULL
	`, time.Now().UTC(), models.StatusKeluar, idRiwayat)
	if err != nil {
		return fmt.Errorf("update error: %v", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %v", err)
	}
	if affected == 0 {
		return ErrRiwayatNotFound
	}
	return nil
}

// GetParkirAktif mengembalikan seluruh sesi aktif, join dengan user dan
// area, urut waktu masuk menaik.
func (s *ParkirService) GetParkirAktif() ([]models.ParkirAktif, error) {
	rows, err := s.DB.Query(`
		SELECT r.id_riwayat, u.username, a.nama_area, r.waktu_masuk
		FROM riwayat_parkir r
		JOIN users u ON r.id_user = u.id
		JOIN area_parkir a ON r.id_area = a.id_area
		WHERE r.status_riwayat = ? AND r.waktu_keluar IS NULL
		ORDER BY r.waktu_masuk ASC
	`, models.StatusParkir)
	if err != nil {
		return nil, fmt.Errorf("query error: %v", err)
	}
	defer rows.Close()

	var list []models.ParkirAktif
	for rows.Next() {
		var p models.ParkirAktif
		if err := rows.Scan(&p.IDRiwayat, &p.Username, &p.NamaArea, &p.WaktuMasuk); err != nil {
			return nil, fmt.Errorf("scan error: %v", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// GetSesiAktifByUser mengembalikan sesi aktif milik satu user, atau nil
// bila tidak ada. Tidak adanya sesi bukan error.
func (s *ParkirService) GetSesiAktifByUser(idUser int) (*models.SesiAktif, error) {
	var sesi models.SesiAktif
	err := s.DB.QueryRow(`
		SELECT r.id_riwayat, r.id_area, a.nama_area, r.waktu_masuk
		FROM riwayat_parkir r
		JOIN area_parkir a ON r.id_area = a.id_area
		WHERE r.id_user = ? AND r.status_riwayat = ? AND r.waktu_keluar IS NULL
		ORDER BY r.waktu_masuk DESC
		LIMIT 1
	`, idUser, models.StatusParkir).Scan(&sesi.IDRiwayat, &sesi.IDArea, &sesi.NamaArea, &sesi.WaktuMasuk)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query error: %v", err)
	}
	return &sesi, nil
}

// GetAreaStatus menghitung okupansi seluruh area.
func (s *ParkirService) GetAreaStatus() ([]models.AreaStatus, error) {
	rows, err := s.DB.Query(`
		SELECT a.id_area, a.nama_area, a.kapasitas_area, COUNT(r.id_riwayat)
		FROM area_parkir a
		LEFT JOIN riwayat_parkir r
			ON r.id_area = a.id_area AND r.status_riwayat = ? AND r.waktu_keluar IS NULL
		GROUP BY a.id_area, a.nama_area, a.kapasitas_area
		ORDER BY a.id_area
	`, models.StatusParkir)
	if err != nil {
		return nil, fmt.Errorf("query error: %v", err)
	}
	defer rows.Close()

	var list []models.AreaStatus
	for rows.Next() {
		var st models.AreaStatus
		if err := rows.Scan(&st.IDArea, &st.NamaArea, &st.KapasitasArea, &st.Terisi); err != nil {
			return nil, fmt.Errorf("scan error: %v", err)
		}
		st.Persen = PersenTerisi(st.Terisi, st.KapasitasArea)
		if st.KapasitasArea == 0 {
			log.Printf("Area %d (%s) memiliki kapasitas 0, persen dilaporkan 0.0", st.IDArea, st.NamaArea)
		}
		list = append(list, st)
	}
	return list, rows.Err()
}

// PersenTerisi menghitung persentase okupansi, dibulatkan satu desimal
// (half away from zero). Kapasitas 0 dilaporkan 0.0, bukan division fault.
func PersenTerisi(terisi, kapasitas int) float64 {
	if kapasitas == 0 {
		return 0
	}
	return math.Round(float64(terisi)/float64(kapasitas)*100*10) / 10
}
