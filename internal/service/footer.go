package service

import (
	"context"
	"log/slog"
	"sync"

	"github.com/Sugatraj/password-generator/internal/model"
	"github.com/Sugatraj/password-generator/internal/profile"
)

// ProfileFetcher looks up a public profile by username.
type ProfileFetcher interface {
	FetchUser(ctx context.Context, username string) (*profile.Profile, error)
}

// DefaultLinks are the developer's social profiles shown in the footer.
func DefaultLinks() []model.Link {
	return []model.Link{
		{Label: "Instagram", URL: "https://www.instagram.com/rajx_sarwade/"},
		{Label: "LinkedIn", URL: "https://www.linkedin.com/in/sugatraj-sarwade-7ab158190/"},
	}
}

// FooterService serves the developer credit. The avatar is optional enrichment:
// it stays empty until a fetch succeeds and a failed fetch changes nothing.
type FooterService struct {
	fetcher  ProfileFetcher
	username string
	links    []model.Link

	mu        sync.RWMutex
	avatarURL string
}

// NewFooterService creates a new FooterService for username.
func NewFooterService(fetcher ProfileFetcher, username string, links []model.Link) *FooterService {
	return &FooterService{
		fetcher:  fetcher,
		username: username,
		links:    links,
	}
}

// Refresh fetches the avatar once. Errors are logged and swallowed; there is no retry.
func (s *FooterService) Refresh(ctx context.Context) {
	p, err := s.fetcher.FetchUser(ctx, s.username)
	if err != nil {
		slog.Warn("profile fetch failed, footer avatar left empty", "username", s.username, "error", err)
		return
	}

	s.mu.Lock()
	s.avatarURL = p.AvatarURL
	s.mu.Unlock()

	slog.Info("profile avatar loaded", "username", s.username)
}

// Footer returns the current footer content.
func (s *FooterService) Footer() model.FooterResponse {
	s.mu.RLock()
	avatar := s.avatarURL
	s.mu.RUnlock()

	links := make([]model.Link, len(s.links))
	copy(links, s.links)

	return model.FooterResponse{
		Name:       s.username,
		ProfileURL: "https://github.com/" + s.username,
		AvatarURL:  avatar,
		Links:      links,
	}
}
