package auth

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"scrapegate/core"
	"scrapegate/pkg/logger"
	"scrapegate/pkg/validator"
)

// googleProvider is the only third-party provider exposed at the route level;
// the backend adapter itself is provider-agnostic.
const googleProvider = "google"

// Service implements the account operations: registration, password login,
// password-reset request, and third-party token sign-in.
type Service struct {
	provider IdentityProvider
	sessions *SessionIssuer
	log      *slog.Logger
}

// NewService wires the account operations to an identity provider and a
// session issuer.
func NewService(provider IdentityProvider, sessions *SessionIssuer, log *slog.Logger) *Service {
	return &Service{
		provider: provider,
		sessions: sessions,
		log:      log,
	}
}

// Handle returns the module router.
func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()

	r.Post("/register", s.register)
	r.Post("/login", s.login)
	r.Post("/forgot-password", s.forgotPassword)
	r.Post("/google", s.googleAuth)
	r.Post("/logout", s.logout)

	return r
}

// logout expires the session cookies. It is idempotent and does not consult
// the backend: opaque tokens cannot be revoked from here, they simply stop
// being presented.
func (s *Service) logout(w http.ResponseWriter, r *http.Request) {
	s.sessions.Clear(w)
	core.JSON(w, http.StatusOK, core.JSONResponse{Message: "Logged out."})
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Service) register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := core.DecodeJSON(r, &req); err != nil {
		core.Error(w, r, err)
		return
	}

	if err := validator.Apply(
		validator.RequiredString("email", req.Email),
		validator.ValidEmail("email", req.Email),
		validator.RequiredString("password", req.Password),
	); err != nil {
		core.Error(w, r, err)
		return
	}

	if err := s.provider.SignUp(r.Context(), req.Email, req.Password); err != nil {
		s.log.InfoContext(r.Context(), "registration rejected by backend", logger.Error(err))
		core.Error(w, r, err)
		return
	}

	core.JSON(w, http.StatusCreated, core.JSONResponse{
		Message: "Registration successful. Please verify via email if required.",
	})
}

func (s *Service) login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := core.DecodeJSON(r, &req); err != nil {
		core.Error(w, r, err)
		return
	}

	if err := validator.Apply(
		validator.RequiredString("email", req.Email),
		validator.RequiredString("password", req.Password),
	); err != nil {
		core.Error(w, r, err)
		return
	}

	session, err := s.provider.SignInWithPassword(r.Context(), req.Email, req.Password)
	if err != nil {
		// Backend rejection here means bad credentials, not a system fault.
		// The backend's detail is logged, never returned.
		s.log.InfoContext(r.Context(), "login failed", logger.Error(err))
		core.Error(w, r, core.NewHTTPError(http.StatusUnauthorized, "Invalid credentials."))
		return
	}

	if err := s.sessions.Issue(w, session); err != nil {
		core.Error(w, r, core.NewHTTPError(http.StatusUnauthorized, "Invalid credentials."))
		return
	}

	core.JSON(w, http.StatusOK, core.JSONResponse{
		Message: "Login successful.",
		Data:    map[string]string{"email": session.User.Email},
	})
}

type forgotPasswordRequest struct {
	Email string `json:"email"`
}

func (s *Service) forgotPassword(w http.ResponseWriter, r *http.Request) {
	var req forgotPasswordRequest
	if err := core.DecodeJSON(r, &req); err != nil {
		core.Error(w, r, err)
		return
	}

	if err := validator.Apply(
		validator.RequiredString("email", req.Email),
		validator.ValidEmail("email", req.Email),
	); err != nil {
		core.Error(w, r, err)
		return
	}

	if err := s.provider.RequestPasswordReset(r.Context(), req.Email); err != nil {
		s.log.InfoContext(r.Context(), "password reset request failed", logger.Error(err))
		core.Error(w, r, err)
		return
	}

	core.JSON(w, http.StatusOK, core.JSONResponse{Message: "Password reset email sent."})
}

type idTokenRequest struct {
	ProviderToken string `json:"provider_token"`
}

func (s *Service) googleAuth(w http.ResponseWriter, r *http.Request) {
	var req idTokenRequest
	if err := core.DecodeJSON(r, &req); err != nil {
		core.Error(w, r, err)
		return
	}

	if err := validator.Apply(
		validator.RequiredString("provider_token", req.ProviderToken),
	); err != nil {
		core.Error(w, r, err)
		return
	}

	session, err := s.provider.SignInWithIDToken(r.Context(), googleProvider, req.ProviderToken)
	if err != nil {
		s.log.InfoContext(r.Context(), "google authentication failed", logger.Error(err))
		core.Error(w, r, core.NewHTTPError(http.StatusUnauthorized, "Google authentication failed."))
		return
	}

	if err := s.sessions.Issue(w, session); err != nil {
		core.Error(w, r, core.NewHTTPError(http.StatusUnauthorized, "Google authentication failed."))
		return
	}

	core.JSON(w, http.StatusOK, core.JSONResponse{
		Message: "Google authentication successful.",
		Data:    map[string]string{"email": session.User.Email},
	})
}
