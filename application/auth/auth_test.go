package auth_test

import (
	"context"
	"errors"
	"testing"
	"time"

	appauth "github.com/mahmudhasan/clothing-shop/application/auth"
	"github.com/mahmudhasan/clothing-shop/cmd/config"
	"github.com/mahmudhasan/clothing-shop/constant"
	redismocks "github.com/mahmudhasan/clothing-shop/mocks/repository/redis"
	"github.com/mahmudhasan/clothing-shop/model"
	cerr "github.com/mahmudhasan/clothing-shop/utils/errors"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

const (
	testAdminEmail = "admin@clothing-shop.test"
	testPassword   = "s3cret-pass"
	testJWTSecret  = "test-jwt-secret"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt hash: %v", err)
	}
	return &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:         testJWTSecret,
			JWTExpiration:     time.Hour,
			SessionExpTime:    time.Hour,
			AdminEmail:        testAdminEmail,
			AdminPasswordHash: string(hash),
		},
	}
}

func TestAuthApp_Login(t *testing.T) {
	type fields struct {
		redisRepo *redismocks.Repository
	}
	tests := []struct {
		name       string
		fields     fields
		req        *model.LoginRequest
		mockCall   func(f fields)
		wantErr    bool
		errCode    constant.ErrorType
		errMessage string
	}{
		{
			name:   "success",
			fields: fields{redisRepo: redismocks.NewRepository(t)},
			req:    &model.LoginRequest{Email: testAdminEmail, Password: testPassword},
			mockCall: func(f fields) {
				f.redisRepo.On("SetSession", mock.Anything, mock.AnythingOfType("string"), testAdminEmail, time.Hour).
					Return(nil).Once()
			},
		},
		{
			name:       "error: unknown email",
			fields:     fields{redisRepo: redismocks.NewRepository(t)},
			req:        &model.LoginRequest{Email: "other@clothing-shop.test", Password: testPassword},
			mockCall:   nil,
			wantErr:    true,
			errCode:    constant.ErrInvalidCredential,
			errMessage: "Invalid Username",
		},
		{
			name:       "error: wrong password",
			fields:     fields{redisRepo: redismocks.NewRepository(t)},
			req:        &model.LoginRequest{Email: testAdminEmail, Password: "wrong"},
			mockCall:   nil,
			wantErr:    true,
			errCode:    constant.ErrInvalidCredential,
			errMessage: "Invalid Password",
		},
		{
			name:   "error: session store failure",
			fields: fields{redisRepo: redismocks.NewRepository(t)},
			req:    &model.LoginRequest{Email: testAdminEmail, Password: testPassword},
			mockCall: func(f fields) {
				f.redisRepo.On("SetSession", mock.Anything, mock.AnythingOfType("string"), testAdminEmail, time.Hour).
					Return(errors.New("redis down")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				ttFields := tt.fields
				tt.mockCall(ttFields)
			}
			app := appauth.NewAuthApp(testConfig(t), tt.fields.redisRepo)

			got, err := app.Login(context.Background(), tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Login() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
				if tt.errMessage != "" && ce.Error() != tt.errMessage {
					t.Fatalf("error message = %q, want %q", ce.Error(), tt.errMessage)
				}
				return
			}

			if got.Token == "" {
				t.Fatal("token is empty")
			}
			if got.Message != "Successfully Login" {
				t.Fatalf("message = %q", got.Message)
			}
		})
	}
}

func TestAuthApp_ValidateToken(t *testing.T) {
	cfg := testConfig(t)
	redisRepo := redismocks.NewRepository(t)
	app := appauth.NewAuthApp(cfg, redisRepo)

	var jti string
	redisRepo.On("SetSession", mock.Anything, mock.AnythingOfType("string"), testAdminEmail, time.Hour).
		Run(func(args mock.Arguments) { jti = args.String(1) }).
		Return(nil).Once()

	resp, err := app.Login(context.Background(), &model.LoginRequest{Email: testAdminEmail, Password: testPassword})
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	redisRepo.On("GetSession", mock.Anything, jti).Return(testAdminEmail, nil).Once()

	adminID, err := app.ValidateToken(context.Background(), resp.Token)
	if err != nil {
		t.Fatalf("ValidateToken() error = %v", err)
	}
	if adminID != testAdminEmail {
		t.Fatalf("admin id = %q, want %q", adminID, testAdminEmail)
	}
}

func TestAuthApp_ValidateToken_SessionMissing(t *testing.T) {
	cfg := testConfig(t)
	redisRepo := redismocks.NewRepository(t)
	app := appauth.NewAuthApp(cfg, redisRepo)

	redisRepo.On("SetSession", mock.Anything, mock.AnythingOfType("string"), testAdminEmail, time.Hour).
		Return(nil).Once()

	resp, err := app.Login(context.Background(), &model.LoginRequest{Email: testAdminEmail, Password: testPassword})
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	// logged-out session: redis lookup fails, token must be rejected
	redisRepo.On("GetSession", mock.Anything, mock.AnythingOfType("string")).
		Return("", errors.New("key not found")).Once()

	if _, err := app.ValidateToken(context.Background(), resp.Token); err == nil {
		t.Fatal("ValidateToken() expected error for missing session")
	}
}

func TestAuthApp_ValidateToken_BadToken(t *testing.T) {
	app := appauth.NewAuthApp(testConfig(t), redismocks.NewRepository(t))

	if _, err := app.ValidateToken(context.Background(), "not-a-jwt"); err == nil {
		t.Fatal("ValidateToken() expected error for malformed token")
	}
}

func TestAuthApp_Logout(t *testing.T) {
	cfg := testConfig(t)
	redisRepo := redismocks.NewRepository(t)
	app := appauth.NewAuthApp(cfg, redisRepo)

	var jti string
	redisRepo.On("SetSession", mock.Anything, mock.AnythingOfType("string"), testAdminEmail, time.Hour).
		Run(func(args mock.Arguments) { jti = args.String(1) }).
		Return(nil).Once()

	resp, err := app.Login(context.Background(), &model.LoginRequest{Email: testAdminEmail, Password: testPassword})
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	redisRepo.On("DeleteSession", mock.Anything, jti).Return(nil).Once()

	got, err := app.Logout(context.Background(), resp.Token)
	if err != nil {
		t.Fatalf("Logout() error = %v", err)
	}
	if got.Message != "Successfully Logged out" {
		t.Fatalf("message = %q", got.Message)
	}
}

func TestAuthApp_Logout_InvalidToken(t *testing.T) {
	app := appauth.NewAuthApp(testConfig(t), redismocks.NewRepository(t))

	_, err := app.Logout(context.Background(), "garbage")
	var ce cerr.CustomError
	if !errors.As(err, &ce) {
		t.Fatalf("error type = %T, want CustomError", err)
	}
	if ce.ErrorCode() != constant.ErrorTypeCode[constant.ErrUnauthorize] {
		t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[constant.ErrUnauthorize])
	}
}
