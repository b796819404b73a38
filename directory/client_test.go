package directory_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.arcalot.io/assert"
	log "go.arcalot.io/log/v2"
	"go.flow.arcalot.io/catalog/directory"
)

func newDirectoryServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/v2/user", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer test-token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"user": {
				"id": "u1",
				"username": "jane",
				"name": "Jane Doe",
				"defaultTeamId": "t1"
			}
		}`))
	})
	mux.HandleFunc("/v2/teams", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"teams": [
				{"id": "t2", "name": "Beta", "slug": "beta"},
				{"id": "t1", "name": "Alpha", "slug": "alpha"},
				{"id": "t3", "name": "Hidden", "slug": "hidden", "limited": true}
			]
		}`))
	})
	return httptest.NewServer(mux)
}

func TestFetchUser(t *testing.T) {
	server := newDirectoryServer(t)
	defer server.Close()

	client := directory.NewClient(log.NewTestLogger(t), server.URL, "test-token")
	user := client.FetchUser(context.Background())
	assert.NotNil(t, user)
	assert.Equals(t, user.ID, "u1")
	assert.Equals(t, user.Name, "Jane Doe")
	assert.Equals(t, user.DefaultTeamID, "t1")
}

func TestFetchUserUnauthorized(t *testing.T) {
	server := newDirectoryServer(t)
	defer server.Close()

	client := directory.NewClient(log.NewTestLogger(t), server.URL, "wrong-token")
	user := client.FetchUser(context.Background())
	assert.Nil(t, user)
}

func TestFetchTeamsExcludesLimited(t *testing.T) {
	server := newDirectoryServer(t)
	defer server.Close()

	client := directory.NewClient(log.NewTestLogger(t), server.URL, "test-token")
	teams := client.FetchTeams(context.Background())
	assert.Equals(t, len(teams), 2)
	assert.Equals(t, teams[0].ID, "t2")
	assert.Equals(t, teams[1].ID, "t1")
}

func TestFetchDegradesOnServerFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := directory.NewClient(log.NewTestLogger(t), server.URL, "test-token")
	assert.Nil(t, client.FetchUser(context.Background()))
	assert.Equals(t, len(client.FetchTeams(context.Background())), 0)
}

func TestSlugify(t *testing.T) {
	assert.Equals(t, directory.Slugify("Jane Doe"), "jane-doe")
	assert.Equals(t, directory.Slugify("  Multiple   Spaces  "), "-multiple-spaces-")
	assert.Equals(t, directory.Slugify("already-slugged"), "already-slugged")
}

func TestMerge(t *testing.T) {
	server := newDirectoryServer(t)
	defer server.Close()

	client := directory.NewClient(log.NewTestLogger(t), server.URL, "test-token")
	user := client.FetchUser(context.Background())
	teams := client.FetchTeams(context.Background())

	merged := directory.Merge(user, teams)
	assert.Equals(t, len(merged), 3)
	assert.Equals(t, merged[0].Slug, "jane-doe")
	assert.Equals(t, merged[0].IsPersonal, true)
	assert.Equals(t, merged[1].Name, "Alpha")
	assert.Equals(t, merged[2].Name, "Beta")
}

func TestMergePartialInputs(t *testing.T) {
	teams := []directory.Team{}
	merged := directory.Merge(nil, teams)
	assert.Equals(t, len(merged), 0)

	merged = directory.Merge(&directory.User{ID: "u1", Name: "Jane Doe"}, nil)
	assert.Equals(t, len(merged), 1)
	assert.Equals(t, merged[0].IsPersonal, true)
}
