// Package directory provides a read-only client for the remote account/team directory API. The catalog uses it to
// offer the authenticated user's personal account and teams as deployment targets; both calls are independently
// nullable on failure and the merge step always produces a usable list.
package directory

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	log "go.arcalot.io/log/v2"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// User is the authenticated user's directory profile.
type User struct {
	ID            string
	Name          string
	Avatar        string
	DefaultTeamID string
}

// Team is one entry of the merged account/team list.
type Team struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Slug       string `json:"slug"`
	Avatar     string `json:"avatar,omitempty"`
	IsPersonal bool   `json:"isPersonal"`
}

// Client talks to the directory API on behalf of one access token.
type Client struct {
	client *resty.Client
	logger log.Logger
}

// NewClient creates a directory client for the given base URL and access token.
func NewClient(logger log.Logger, baseURL string, accessToken string) *Client {
	client := resty.New()
	client.SetBaseURL(baseURL)
	client.SetAuthToken(accessToken)
	client.SetTimeout(30 * time.Second)
	return &Client{
		client: client,
		logger: logger,
	}
}

type userResponse struct {
	User *struct {
		ID            string `json:"id"`
		Username      string `json:"username"`
		Name          string `json:"name"`
		DefaultTeamID string `json:"defaultTeamId"`
	} `json:"user"`
}

type teamsResponse struct {
	Teams []struct {
		ID      string `json:"id"`
		Name    string `json:"name"`
		Slug    string `json:"slug"`
		Limited bool   `json:"limited"`
	} `json:"teams"`
}

// FetchUser fetches the current user's profile. Any failure degrades to nil with a logged diagnostic.
func (c *Client) FetchUser(ctx context.Context) *User {
	var result userResponse
	response, err := c.client.R().
		SetContext(ctx).
		SetResult(&result).
		Get("/v2/user")
	if err != nil {
		c.logger.Warningf("Failed to fetch the user profile (%v)", err)
		return nil
	}
	if !response.IsSuccess() || result.User == nil {
		c.logger.Warningf("User profile fetch returned HTTP %d", response.StatusCode())
		return nil
	}
	name := result.User.Name
	if name == "" {
		name = result.User.Username
	}
	return &User{
		ID:            result.User.ID,
		Name:          name,
		Avatar:        fmt.Sprintf("%s/api/www/avatar?userId=%s&s=64", c.client.BaseURL, result.User.ID),
		DefaultTeamID: result.User.DefaultTeamID,
	}
}

// FetchTeams fetches the teams the user belongs to. Entries marked limited by the upstream API are excluded. Any
// failure degrades to an empty list with a logged diagnostic.
func (c *Client) FetchTeams(ctx context.Context) []Team {
	var result teamsResponse
	response, err := c.client.R().
		SetContext(ctx).
		SetResult(&result).
		Get("/v2/teams")
	if err != nil {
		c.logger.Warningf("Failed to fetch the team list (%v)", err)
		return []Team{}
	}
	if !response.IsSuccess() {
		c.logger.Warningf("Team list fetch returned HTTP %d", response.StatusCode())
		return []Team{}
	}
	teams := make([]Team, 0, len(result.Teams))
	for _, team := range result.Teams {
		if team.Limited {
			continue
		}
		teams = append(teams, Team{
			ID:     team.ID,
			Name:   team.Name,
			Slug:   team.Slug,
			Avatar: fmt.Sprintf("%s/api/www/avatar?teamId=%s&s=64", c.client.BaseURL, team.ID),
		})
	}
	return teams
}

var whitespaceRuns = regexp.MustCompile(`\s+`)

// Slugify derives a URL-friendly slug from a display name: lowercased, whitespace runs replaced with hyphens.
func Slugify(name string) string {
	return whitespaceRuns.ReplaceAllString(strings.ToLower(name), "-")
}

// Merge builds the final ordered list: the personal entry derived from the user profile first, then the teams
// sorted by name using locale-aware comparison. Either input may be absent; a partial result is still usable.
func Merge(user *User, teams []Team) []Team {
	merged := make([]Team, 0, len(teams)+1)
	if user != nil {
		merged = append(merged, Team{
			ID:         user.ID,
			Name:       user.Name,
			Slug:       Slugify(user.Name),
			Avatar:     user.Avatar,
			IsPersonal: true,
		})
	}
	sorted := make([]Team, len(teams))
	copy(sorted, teams)
	collator := collate.New(language.English)
	sort.SliceStable(sorted, func(i, j int) bool {
		return collator.CompareString(sorted[i].Name, sorted[j].Name) < 0
	})
	return append(merged, sorted...)
}
