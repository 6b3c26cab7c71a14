package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/mahmudhasan/clothing-shop/cmd/config"
	"github.com/mahmudhasan/clothing-shop/constant"
	"github.com/mahmudhasan/clothing-shop/model"
	redisrepo "github.com/mahmudhasan/clothing-shop/repository/redis"
	"github.com/mahmudhasan/clothing-shop/utils/errors"
	"github.com/mahmudhasan/clothing-shop/utils/logger"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// AuthApp authenticates the shop admin. The credential itself lives in
// configuration (single-admin shop); sessions are JWTs backed by redis so a
// logout invalidates the token before it expires.
type AuthApp interface {
	Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error)
	Logout(ctx context.Context, tokenString string) (*model.LogoutResponse, error)
	ValidateToken(ctx context.Context, tokenString string) (string, error)
}

type authAppImpl struct {
	config    *config.Config
	redisRepo redisrepo.Repository
}

func NewAuthApp(config *config.Config, redisRepo redisrepo.Repository) AuthApp {
	return &authAppImpl{
		config:    config,
		redisRepo: redisRepo,
	}
}

func (s *authAppImpl) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	if req.Email != s.config.Auth.AdminEmail {
		return nil, errors.SetCustomErrorMessage(constant.ErrInvalidCredential, "Invalid Username")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(s.config.Auth.AdminPasswordHash), []byte(req.Password)); err != nil {
		return nil, errors.SetCustomErrorMessage(constant.ErrInvalidCredential, "Invalid Password")
	}

	token, jti, err := s.generateJWT(req.Email)
	if err != nil {
		logger.Error("[Login] err generateJWT", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.redisRepo.SetSession(ctx, jti, req.Email, s.config.Auth.SessionExpTime); err != nil {
		logger.Error("[Login] err SetSession", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.LoginResponse{
		Message: "Successfully Login",
		Token:   token,
	}, nil
}

func (s *authAppImpl) Logout(ctx context.Context, tokenString string) (*model.LogoutResponse, error) {
	claims, err := s.parseToken(tokenString)
	if err != nil {
		return nil, errors.SetCustomErrorMessage(constant.ErrUnauthorize, "Invalid Token")
	}

	if err := s.redisRepo.DeleteSession(ctx, claims.ID); err != nil {
		logger.Error("[Logout] err DeleteSession", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.LogoutResponse{Message: "Successfully Logged out"}, nil
}

func (s *authAppImpl) ValidateToken(ctx context.Context, tokenString string) (string, error) {
	claims, err := s.parseToken(tokenString)
	if err != nil {
		return "", err
	}

	adminID, err := s.redisRepo.GetSession(ctx, claims.ID)
	if err != nil {
		return "", fmt.Errorf("invalid or expired session")
	}
	if adminID != claims.Subject {
		return "", fmt.Errorf("token does not match session")
	}

	return adminID, nil
}

func (s *authAppImpl) parseToken(tokenString string) (*jwt.RegisteredClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.config.Auth.JWTSecret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid claims")
	}
	if claims.ID == "" {
		return nil, fmt.Errorf("token missing jti")
	}

	return claims, nil
}

// generateJWT creates a signed token for the admin with a fresh jti.
func (s *authAppImpl) generateJWT(adminID string) (string, string, error) {
	newUUID, _ := uuid.NewRandom()
	claims := jwt.RegisteredClaims{
		Subject:   adminID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.config.Auth.JWTExpiration)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ID:        newUUID.String(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.config.Auth.JWTSecret))
	if err != nil {
		return "", "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, claims.ID, nil
}
