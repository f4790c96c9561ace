package auth

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/invicta-fest/festival-backend/config"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidRole        = errors.New("role must be admin or superadmin")
)

type Service interface {
	Login(req LoginRequest) (*LoginResponse, error)
	GetAdminByID(id uint) (*Admin, error)
	GenerateToken(admin *Admin) (string, error)

	// Superadmin account management
	CreateAdmin(req CreateAdminRequest) (*Admin, error)
	ListAdmins() ([]Admin, error)
	DeleteAdmin(id uint, actingAdminID uint) error
}

type service struct {
	repo   *Repository
	secret string
	ttl    time.Duration
}

func NewService(r *Repository, cfg *config.Config) Service {
	return &service{
		repo:   r,
		secret: cfg.JWTSecret,
		ttl:    time.Duration(cfg.JWTTTLHours) * time.Hour,
	}
}

// =============================
// Login
// =============================
func (s *service) Login(req LoginRequest) (*LoginResponse, error) {
	admin, err := s.repo.FindByEmail(strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.GenerateToken(admin)
	if err != nil {
		return nil, err
	}

	return &LoginResponse{Token: token, Admin: *admin}, nil
}

// GenerateToken issues a signed bearer token carrying the admin id and role.
// There is no refresh flow; the exp claim is the only expiry mechanism.
func (s *service) GenerateToken(admin *Admin) (string, error) {
	claims := jwt.MapClaims{
		"admin_id": admin.ID,
		"role":     admin.Role,
		"exp":      time.Now().Add(s.ttl).Unix(),
		"iat":      time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secret))
}

func (s *service) GetAdminByID(id uint) (*Admin, error) {
	return s.repo.FindByID(id)
}

// =============================
// Account management (superadmin)
// =============================
func (s *service) CreateAdmin(req CreateAdminRequest) (*Admin, error) {
	role := strings.ToLower(req.Role)
	if role == "" {
		role = RoleAdmin
	}
	if role != RoleAdmin && role != RoleSuperAdmin {
		return nil, ErrInvalidRole
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	admin := &Admin{
		Name:         strings.TrimSpace(req.Name),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: string(hash),
		Role:         role,
	}

	if err := s.repo.Create(admin); err != nil {
		return nil, err
	}
	return admin, nil
}

func (s *service) ListAdmins() ([]Admin, error) {
	return s.repo.List()
}

func (s *service) DeleteAdmin(id uint, actingAdminID uint) error {
	if id == actingAdminID {
		return errors.New("cannot delete your own account")
	}
	target, err := s.repo.FindByID(id)
	if err != nil {
		return err
	}
	if target.Role == RoleSuperAdmin {
		count, err := s.repo.CountByRole(RoleSuperAdmin)
		if err != nil {
			return err
		}
		if count <= 1 {
			return errors.New("cannot delete the last superadmin")
		}
	}
	return s.repo.Delete(id)
}

// =============================
// Seeding
// =============================

// SeedSuperAdmin ensures a superadmin account exists on boot.
func SeedSuperAdmin(db *gorm.DB, cfg *config.Config) error {
	email := cfg.SuperAdminEmail
	password := cfg.SuperAdminPassword
	if email == "" || password == "" {
		log.Println("SUPERADMIN_EMAIL/SUPERADMIN_PASSWORD not set, skipping seed")
		return nil
	}

	var existing Admin
	err := db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return db.Create(&Admin{
		Name:         "Super Admin",
		Email:        email,
		PasswordHash: string(hash),
		Role:         RoleSuperAdmin,
	}).Error
}
