package models

// User adalah akun aplikasi. Role salah satu dari: petugas, mahasiswa, dosen.
type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"`
	Role     string `json:"role"`
}
