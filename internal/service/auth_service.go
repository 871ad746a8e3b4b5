package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"arfilla-backend/internal/config"
	"arfilla-backend/internal/domain"
	"arfilla-backend/internal/repository"
	fbauth "firebase.google.com/go/v4/auth"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"google.golang.org/api/idtoken"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
)

// AuthService authenticates admins by credentials and customers by Google
// ID token, and issues the access/refresh token pair.
type AuthService struct {
	Config       config.Config
	Admins       repository.AdminRepository
	Pengguna     repository.PenggunaRepository
	Logger       *slog.Logger
	FirebaseAuth *fbauth.Client
}

type AuthResult struct {
	AccessToken  string          `json:"accessToken"`
	RefreshToken string          `json:"refreshToken"`
	ID           int64           `json:"id"`
	Nama         string          `json:"nama"`
	Email        string          `json:"email"`
	Role         domain.UserRole `json:"role"`
	ExpiresAt    time.Time       `json:"expiresAt"`
}

type AdminLoginInput struct {
	Email    string
	Password string
}

type GoogleLoginInput struct {
	IDToken string
	Email   string
	Nama    string
	Phone   string
	Alamat  string
}

type RefreshInput struct {
	RefreshToken string
}

func (s AuthService) LoginAdmin(ctx context.Context, in AdminLoginInput) (*AuthResult, error) {
	admin, err := s.Admins.GetByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if admin.PasswordHash == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*admin.PasswordHash), []byte(in.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return s.issueTokens(admin.ID, admin.Nama, admin.Email, domain.RoleAdmin)
}

func (s AuthService) LoginWithGoogle(ctx context.Context, in GoogleLoginInput) (*AuthResult, error) {
	// Prefer Firebase Auth verification if available; otherwise fallback to
	// Google ID token validation when client ID provided. The verified token
	// claims override whatever identity the request body carries.
	email, nama := in.Email, in.Nama
	switch {
	case s.FirebaseAuth != nil:
		token, err := s.FirebaseAuth.VerifyIDToken(ctx, in.IDToken)
		if err != nil {
			return nil, fmt.Errorf("firebase token invalid: %w", err)
		}
		if v, ok := token.Claims["email"].(string); ok && v != "" {
			email = v
		}
		if v, ok := token.Claims["name"].(string); ok && v != "" {
			nama = v
		}
	case s.Config.GoogleClientID != "":
		payload, err := idtoken.Validate(ctx, in.IDToken, s.Config.GoogleClientID)
		if err != nil {
			return nil, fmt.Errorf("google token invalid: %w", err)
		}
		if v, ok := payload.Claims["email"].(string); ok && v != "" {
			email = v
		}
		if v, ok := payload.Claims["name"].(string); ok && v != "" {
			nama = v
		}
	}
	if email == "" {
		return nil, ErrInvalidCredentials
	}

	pengguna, err := s.Pengguna.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			pengguna, err = s.Pengguna.Create(ctx, repository.CreatePenggunaParams{
				Nama:     nama,
				Email:    email,
				Phone:    in.Phone,
				Alamat:   in.Alamat,
				IsGoogle: true,
			})
			if err != nil {
				return nil, err
			}
		} else {
			return nil, err
		}
	}
	return s.issueTokens(pengguna.ID, pengguna.Nama, pengguna.Email, domain.RolePengguna)
}

func (s AuthService) Refresh(ctx context.Context, in RefreshInput) (*AuthResult, error) {
	token, err := jwt.Parse(in.RefreshToken, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(s.Config.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	if claims["token_type"] != "refresh" {
		return nil, ErrInvalidToken
	}
	sub, ok := claims["sub"].(string)
	if !ok {
		return nil, ErrInvalidToken
	}
	id, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return nil, ErrInvalidToken
	}
	role, _ := claims["role"].(string)

	switch domain.UserRole(role) {
	case domain.RoleAdmin:
		admin, err := s.Admins.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, ErrInvalidToken
			}
			return nil, err
		}
		return s.issueTokens(admin.ID, admin.Nama, admin.Email, domain.RoleAdmin)
	case domain.RolePengguna:
		pengguna, err := s.Pengguna.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, ErrInvalidToken
			}
			return nil, err
		}
		return s.issueTokens(pengguna.ID, pengguna.Nama, pengguna.Email, domain.RolePengguna)
	default:
		return nil, ErrInvalidToken
	}
}

func (s AuthService) issueTokens(id int64, nama, email string, role domain.UserRole) (*AuthResult, error) {
	now := time.Now()
	accessExp := now.Add(s.Config.AccessTokenTTL)
	refreshExp := now.Add(s.Config.RefreshTokenTTL)

	access, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":        fmt.Sprintf("%d", id),
		"email":      email,
		"name":       nama,
		"role":       string(role),
		"token_type": "access",
		"exp":        accessExp.Unix(),
		"iat":        now.Unix(),
	}).SignedString([]byte(s.Config.JWTSecret))
	if err != nil {
		return nil, err
	}

	refresh, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":        fmt.Sprintf("%d", id),
		"role":       string(role),
		"token_type": "refresh",
		"exp":        refreshExp.Unix(),
		"iat":        now.Unix(),
	}).SignedString([]byte(s.Config.JWTSecret))
	if err != nil {
		return nil, err
	}

	return &AuthResult{
		AccessToken:  access,
		RefreshToken: refresh,
		ID:           id,
		Nama:         nama,
		Email:        email,
		Role:         role,
		ExpiresAt:    accessExp,
	}, nil
}
