package services

import (
	"database/sql"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/faspark/faspark-backend/internal/auth/models"
)

var (
	ErrUsernameTaken      = errors.New("username sudah digunakan")
	ErrInvalidCredentials = errors.New("username atau password salah")
	ErrUserNotFound       = errors.New("user tidak ditemukan")
)

type UserService struct {
	DB *sql.DB
}

func NewUserService(db *sql.DB) *UserService {
	return &UserService{DB: db}
}

// Register membuat user baru. Username dibandingkan exact match
// (case-sensitive), mengikuti perilaku backend lama.
func (s *UserService) Register(username, password, role string) error {
	var existing int
	err := s.DB.QueryRow("SELECT id FROM users WHERE username = ?", username).Scan(&existing)
	if err == nil {
		return ErrUsernameTaken
	}
	if err != sql.ErrNoRows {
		return fmt.Errorf("query error: %v", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	_, err = s.DB.Exec("INSERT INTO users (username, password, role) VALUES (?, ?, ?)",
		username, string(hashed), role)
	if err != nil {
		return fmt.Errorf("insert error: %v", err)
	}
	return nil
}

// Authenticate mencocokkan username dan password, mengembalikan user bila valid.
func (s *UserService) Authenticate(username, password string) (*models.User, error) {
	var user models.User
	err := s.DB.QueryRow("SELECT id, username, password, role FROM users WHERE username = ?", username).
		Scan(&user.ID, &user.Username, &user.Password, &user.Role)
	if err == sql.ErrNoRows {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("query error: %v", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}

// UpdateProfile menimpa username; password hanya ditimpa bila tidak kosong.
func (s *UserService) UpdateProfile(id int, username, password string) error {
	var existing int
	err := s.DB.QueryRow("SELECT id FROM users WHERE id = ?", id).Scan(&existing)
	if err == sql.ErrNoRows {
		return ErrUserNotFound
	}
	if err != nil {
		return fmt.Errorf("query error: %v", err)
	}

	if password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		_, err = s.DB.Exec("UPDATE users SET username = ?, password = ? WHERE id = ?",
			username, string(hashed), id)
		if err != nil {
			return fmt.Errorf("update error: %v", err)
		}
		return nil
	}

	if _, err := s.DB.Exec("UPDATE users SET username = ? WHERE id = ?", username, id); err != nil {
		return fmt.Errorf("update error: %v", err)
	}
	return nil
}

// GetUsers mengembalikan seluruh user tanpa paginasi.
func (s *UserService) GetUsers() ([]models.User, error) {
	rows, err := s.DB.Query("SELECT id, username, role FROM users ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("query error: %v", err)
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Username, &u.Role); err != nil {
			return nil, fmt.Errorf("scan error: %v", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}
