// Package accounts provides the boundary to the account-linking service. The catalog never acquires credentials
// itself; it only consumes access tokens previously stored by the OAuth linking flow and reports the distinct
// not-enabled, not-authenticated and not-linked states so the hosting UI can render differentiated guidance.
package accounts

import (
	"context"

	log "go.arcalot.io/log/v2"
	"go.flow.arcalot.io/catalog/config"
	"go.flow.arcalot.io/catalog/directory"
)

// LinkedAccount is a third-party account previously linked by the user.
type LinkedAccount struct {
	// Provider identifies the OAuth provider the account belongs to, e.g. "vercel".
	Provider string
	// AccessToken is the stored token for the provider's API.
	AccessToken string
}

// LinkSource is the external collaborator storing linked accounts.
type LinkSource interface {
	// LinkedAccount returns the user's linked account for the given provider, or nil if none is linked.
	LinkedAccount(ctx context.Context, userID string, provider string) (*LinkedAccount, error)
}

// TeamsService resolves the authenticated user's deployment targets from the directory API, guarded by the
// account-linking boundary.
type TeamsService struct {
	logger   log.Logger
	cfg      *config.Config
	links    LinkSource
	provider string
}

// NewTeamsService creates a teams service for the given linked-account provider.
func NewTeamsService(logger log.Logger, cfg *config.Config, links LinkSource, provider string) *TeamsService {
	return &TeamsService{
		logger:   logger,
		cfg:      cfg,
		links:    links,
		provider: provider,
	}
}

// Teams returns the merged personal-plus-teams list for the user. The guards run in a fixed order so each failure
// mode surfaces as its own explicit state: feature disabled, not authenticated, no linked account. Past the
// guards, the user and team fetches run concurrently and each side degrades independently on failure.
func (s *TeamsService) Teams(ctx context.Context, userID string) ([]directory.Team, error) {
	if !s.cfg.ManagedKeysEnabled {
		return nil, ErrFeatureDisabled
	}
	if userID == "" {
		return nil, ErrNotAuthenticated
	}
	account, err := s.links.LinkedAccount(ctx, userID, s.provider)
	if err != nil {
		return nil, &ErrAccountLookupFailed{err}
	}
	if account == nil || account.AccessToken == "" {
		return nil, &ErrNoAccountLinked{Provider: s.provider}
	}

	client := directory.NewClient(s.logger, s.cfg.Directory.BaseURL, account.AccessToken)

	// The two fetches are independent and order-insensitive; the merge runs only after both complete. A failed
	// side has already degraded to nil/empty inside the client.
	userResult := make(chan *directory.User, 1)
	teamsResult := make(chan []directory.Team, 1)
	go func() {
		userResult <- client.FetchUser(ctx)
	}()
	go func() {
		teamsResult <- client.FetchTeams(ctx)
	}()
	user := <-userResult
	teams := <-teamsResult

	return directory.Merge(user, teams), nil
}
