package services

import (
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPersenTerisi(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		terisi    int
		kapasitas int
		want      float64
	}{
		{"kosong", 0, 10, 0},
		{"sepertiga", 1, 3, 33.3},
		{"dua per tiga", 2, 3, 66.7},
		{"penuh", 5, 5, 100.0},
		{"melebihi kapasitas", 7, 5, 140.0},
		{"kapasitas nol", 3, 0, 0},
	}

	for _, tc := range cases {
		if got := PersenTerisi(tc.terisi, tc.kapasitas); got != tc.want {
			t.Errorf("%s: PersenTerisi(%d, %d) = %v, want %v", tc.name, tc.terisi, tc.kapasitas, got, tc.want)
		}
	}
}

func TestCheckInAlreadyParked(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()
	svc := NewParkirService(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id_riwayat FROM riwayat_parkir")).
		WithArgs(7, "Parkir").
		WillReturnRows(sqlmock.NewRows([]string{"id_riwayat"}).AddRow(42))
	mock.ExpectRollback()

	if _, err := svc.CheckIn(7, 3); err != ErrAlreadyParked {
		t.Fatalf("expected ErrAlreadyParked, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestCheckInSuccess(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()
	svc := NewParkirService(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id_riwayat FROM riwayat_parkir")).
		WithArgs(7, "Parkir").
		WillReturnRows(sqlmock.NewRows([]string{"id_riwayat"}))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO riwayat_parkir")).
		WithArgs(7, 2, sqlmock.AnyArg(), "Parkir").
		WillReturnResult(sqlmock.NewResult(101, 1))
	mock.ExpectCommit()

	id, err := svc.CheckIn(7, 2)
	if err != nil {
		t.Fatalf("CheckIn: %v", err)
	}
	if id != 101 {
		t.Errorf("expected id 101, got %d", id)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestCheckOutNotFoundOrClosed(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()
	svc := NewParkirService(db)

	// Baris tidak ada dan baris yang sudah ditutup sama-sama menyentuh
	// 0 baris karena guard waktu_keluar IS NULL.
	mock.ExpectExec(regexp.QuoteMeta("UPDATE riwayat_parkir")).
		WithArgs(sqlmock.AnyArg(), "Keluar", 999).
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := svc.CheckOut(999); err != ErrRiwayatNotFound {
		t.Fatalf("expected ErrRiwayatNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

// Siklus hidup sesi dapat diulang: check-in, check-out, lalu check-in lagi.
func TestSessionLifecycleReentry(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()
	svc := NewParkirService(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id_riwayat FROM riwayat_parkir")).
		WithArgs(7, "Parkir").
		WillReturnRows(sqlmock.NewRows([]string{"id_riwayat"}))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO riwayat_parkir")).
		WithArgs(7, 2, sqlmock.AnyArg(), "Parkir").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE riwayat_parkir")).
		WithArgs(sqlmock.AnyArg(), "Keluar", 1).
		WillReturnResult(sqlmock.NewResult(0, 1))

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id_riwayat FROM riwayat_parkir")).
		WithArgs(7, "Parkir").
		WillReturnRows(sqlmock.NewRows([]string{"id_riwayat"}))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO riwayat_parkir")).
		WithArgs(7, 3, sqlmock.AnyArg(), "Parkir").
		WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectCommit()

	if _, err := svc.CheckIn(7, 2); err != nil {
		t.Fatalf("first check-in: %v", err)
	}
	if err := svc.CheckOut(1); err != nil {
		t.Fatalf("check-out: %v", err)
	}
	if _, err := svc.CheckIn(7, 3); err != nil {
		t.Fatalf("second check-in after closure: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestGetSesiAktifByUserNone(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()
	svc := NewParkirService(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT r.id_riwayat, r.id_area, a.nama_area, r.waktu_masuk")).
		WithArgs(5, "Parkir").
		WillReturnRows(sqlmock.NewRows([]string{"id_riwayat", "id_area", "nama_area", "waktu_masuk"}))

	sesi, err := svc.GetSesiAktifByUser(5)
	if err != nil {
		t.Fatalf("tidak ada sesi harus kondisi normal, got error: %v", err)
	}
	if sesi != nil {
		t.Errorf("expected nil sesi, got %+v", sesi)
	}
}

func TestGetAreaStatus(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()
	svc := NewParkirService(db)

	rows := sqlmock.NewRows([]string{"id_area", "nama_area", "kapasitas_area", "count"}).
		AddRow(1, "Area A", 5, 5).
		AddRow(2, "Area B", 3, 1).
		AddRow(3, "Area C", 0, 2)
	mock.ExpectQuery(regexp.QuoteMeta("FROM area_parkir a")).
		WithArgs("Parkir").
		WillReturnRows(rows)

	list, err := svc.GetAreaStatus()
	if err != nil {
		t.Fatalf("GetAreaStatus: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("expected 3 areas, got %d", len(list))
	}
	if list[0].Persen != 100.0 {
		t.Errorf("area penuh: expected 100.0, got %v", list[0].Persen)
	}
	if list[1].Persen != 33.3 {
		t.Errorf("expected 33.3, got %v", list[1].Persen)
	}
	if list[2].Persen != 0 {
		t.Errorf("kapasitas 0: expected 0, got %v", list[2].Persen)
	}
}

func TestGetParkirAktif(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()
	svc := NewParkirService(db)

	masuk := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id_riwayat", "username", "nama_area", "waktu_masuk"}).
		AddRow(1, "budi", "Area A", masuk).
		AddRow(2, "sari", "Area B", masuk.Add(time.Hour))
	mock.ExpectQuery(regexp.QuoteMeta("FROM riwayat_parkir r")).
		WithArgs("Parkir").
		WillReturnRows(rows)

	list, err := svc.GetParkirAktif()
	if err != nil {
		t.Fatalf("GetParkirAktif: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(list))
	}
	if list[0].Username != "budi" || list[0].NamaArea != "Area A" {
		t.Errorf("unexpected first row: %+v", list[0])
	}
}
