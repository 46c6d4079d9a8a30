package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/pantherfit/powerlog/internal/telemetry/metrics"
	"github.com/pantherfit/powerlog/internal/telemetry/tracing"
	"github.com/pantherfit/powerlog/pkg"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=auth_test

type authService interface {
	Signup(ctx context.Context, email, password string) (*User, error)
	Login(ctx context.Context, email, password string, createdAt time.Time) (string, error)
	Logout(ctx context.Context, token string) error
}

type LoginResponse struct {
	Token string `json:"token"`
}

type Handler struct {
	service authService
	metrics *metrics.Manager
}

func NewHandler(service authService, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		service: service,
		metrics: metricsManager,
	}
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (handler *Handler) credentialsFromRequest(w http.ResponseWriter, r *http.Request) (credentialsRequest, bool) {
	var creds credentialsRequest
	if r.Header.Get("Content-Type") == "application/json" {
		if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
			log.Tracef("auth request, unmarshal json params: %s", err)
			pkg.WriteError(w, pkg.ErrKindValidationFailed, "invalid request body", http.StatusBadRequest)
			return creds, false
		}
	} else {
		if err := r.ParseForm(); err != nil {
			log.Errorf("auth request, parse form error: %s", err)
			pkg.WriteError(w, pkg.ErrKindValidationFailed, "parse form error", http.StatusBadRequest)
			return creds, false
		}
		creds = credentialsRequest{
			Email:    r.Form.Get("email"),
			Password: r.Form.Get("password"),
		}
	}

	fieldErrors := map[string]string{}
	if creds.Email == "" || !strings.Contains(creds.Email, "@") {
		fieldErrors["email"] = "valid email required"
	}
	if creds.Password == "" {
		fieldErrors["password"] = "password required"
	}
	if len(fieldErrors) > 0 {
		pkg.WriteErrorWithDetails(w, pkg.ErrKindValidationFailed, "invalid input", fieldErrors, http.StatusBadRequest)
		return creds, false
	}

	return creds, true
}

func (handler *Handler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "authHandler.signup")
	defer span.End()

	creds, ok := handler.credentialsFromRequest(w, r)
	if !ok {
		return
	}

	if len(creds.Password) < 8 {
		pkg.WriteErrorWithDetails(w, pkg.ErrKindValidationFailed, "invalid input", map[string]string{
			"password": "must have at least 8 characters",
		}, http.StatusBadRequest)
		return
	}

	user, err := handler.service.Signup(ctx, creds.Email, creds.Password)
	if err != nil {
		if errors.Is(err, ErrEmailTaken) {
			pkg.WriteError(w, pkg.ErrKindConflict, "email already taken", http.StatusConflict)
			return
		}
		log.Errorf("signup failed for [%s]: %s", creds.Email, err)
		pkg.WriteError(w, pkg.ErrKindPersistence, "signup failed", http.StatusInternalServerError)
		return
	}

	handler.metrics.CounterSignups.Inc()

	userJson, err := json.Marshal(user)
	if err != nil {
		log.Errorf("failed to marshal new user: %s", err)
		pkg.WriteError(w, pkg.ErrKindPersistence, "signup failed", http.StatusInternalServerError)
		return
	}

	log.Debugf("new user signed up: %s", user.ID)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, userJson, http.StatusCreated)
}

func (handler *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "authHandler.login")
	defer span.End()

	creds, ok := handler.credentialsFromRequest(w, r)
	if !ok {
		return
	}

	token, err := handler.service.Login(ctx, creds.Email, creds.Password, time.Now())
	if err != nil {
		// wrong email and wrong password look the same to the caller
		if errors.Is(err, ErrUserNotFound) || errors.Is(err, ErrWrongPassword) {
			reqIp, _ := pkg.ReadUserIP(r)
			log.Tracef("failed login attempt for [%s] from [%s]", creds.Email, reqIp)
			pkg.WriteError(w, pkg.ErrKindAuthRequired, "login failed", http.StatusUnauthorized)
			return
		}
		log.Errorf("login failed for [%s]: %s", creds.Email, err)
		pkg.WriteError(w, pkg.ErrKindPersistence, "login failed", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(LoginResponse{Token: token})
	if err != nil {
		log.Errorf("failed to marshal login response: %s", err)
		pkg.WriteError(w, pkg.ErrKindPersistence, "login failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respJson)
}

func (handler *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "authHandler.logout")
	defer span.End()

	token := r.Header.Get("Authorization")
	if token == "" {
		pkg.WriteError(w, pkg.ErrKindAuthRequired, "no token", http.StatusUnauthorized)
		return
	}

	if err := handler.service.Logout(ctx, token); err != nil {
		log.Tracef("logout failed: %s", err)
		pkg.WriteError(w, pkg.ErrKindAuthRequired, "logout failed", http.StatusUnauthorized)
		return
	}

	pkg.WriteTextResponseOK(w, "logged-out")
}
