package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/Sugatraj/password-generator/internal/crypto"
	"github.com/Sugatraj/password-generator/internal/model"
	"github.com/Sugatraj/password-generator/internal/repository"
	"github.com/Sugatraj/password-generator/internal/widget"
)

var (
	ErrSessionNotFound = errors.New("session not found or expired")
)

// SessionService drives widget sessions on behalf of HTTP clients.
type SessionService struct {
	repo        *repository.SessionRepository
	src         crypto.Source
	secret      string
	tokenExpiry time.Duration
}

// NewSessionService creates a new SessionService.
func NewSessionService(repo *repository.SessionRepository, src crypto.Source, secret string, tokenExpiry time.Duration) *SessionService {
	return &SessionService{
		repo:        repo,
		src:         src,
		secret:      secret,
		tokenExpiry: tokenExpiry,
	}
}

// Create opens a session with the default config and its first password.
func (s *SessionService) Create(ctx context.Context) (model.SessionResponse, error) {
	sess := &repository.Session{
		ID:     uuid.NewString(),
		Widget: widget.New(s.src),
	}

	if err := s.repo.Create(ctx, sess); err != nil {
		return model.SessionResponse{}, err
	}

	token, err := crypto.IssueSessionToken(sess.ID, s.secret, s.tokenExpiry)
	if err != nil {
		_ = s.repo.Delete(ctx, sess.ID)
		return model.SessionResponse{}, err
	}

	resp := toSessionResponse(sess.Widget, true)
	resp.Token = token
	return resp, nil
}

// Get returns the current state of a session.
func (s *SessionService) Get(ctx context.Context, sessionID string) (model.SessionResponse, error) {
	sess, err := s.lookup(ctx, sessionID)
	if err != nil {
		return model.SessionResponse{}, err
	}
	return toSessionResponse(sess.Widget, false), nil
}

// Update applies control changes and regenerates when the config changed.
func (s *SessionService) Update(ctx context.Context, sessionID string, req model.UpdateConfigRequest) (model.SessionResponse, error) {
	sess, err := s.lookup(ctx, sessionID)
	if err != nil {
		return model.SessionResponse{}, err
	}

	regenerated := sess.Widget.Update(func(current crypto.Config) crypto.Config {
		return configFromRequest(current, req.Length, req.IncludeDigits, req.IncludeSymbols)
	})

	return toSessionResponse(sess.Widget, regenerated), nil
}

// Copy returns the password the client should place on its clipboard.
func (s *SessionService) Copy(ctx context.Context, sessionID string) (model.CopyResponse, error) {
	sess, err := s.lookup(ctx, sessionID)
	if err != nil {
		return model.CopyResponse{}, err
	}
	return model.CopyResponse{Password: sess.Widget.Password()}, nil
}

func (s *SessionService) lookup(ctx context.Context, sessionID string) (*repository.Session, error) {
	sess, err := s.repo.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	return sess, nil
}

func toSessionResponse(w *widget.Widget, regenerated bool) model.SessionResponse {
	cfg, password := w.State()
	return model.SessionResponse{
		Config:      toConfigResponse(cfg),
		Password:    password,
		Regenerated: regenerated,
	}
}
