package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"MITSAssistant/models"
	"MITSAssistant/pkg/app"
	"MITSAssistant/pkg/config"
	"MITSAssistant/pkg/scraper"
	"MITSAssistant/pkg/seed"
	"MITSAssistant/pkg/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

const pageHTML = `<html><head><title>Hostel - MITS Gwalior</title></head><body>
<p>MITS Gwalior provides separate hostels for boys and girls on campus.</p>
</body></html>`

type env struct {
	st   store.Store
	site *httptest.Server
}

func newEnv(t *testing.T) *env {
	t.Helper()
	site := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, pageHTML)
	}))
	t.Cleanup(site.Close)
	return &env{st: store.NewMemory(), site: site}
}

func (e *env) run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	open := func(ctx context.Context, verbose bool) (*app.App, error) {
		log := zap.NewNop()
		return &app.App{
			Config:  &config.Config{},
			Log:     log,
			Store:   e.st,
			Scraper: scraper.NewWithClient(e.site.Client(), log),
		}, nil
	}
	var out bytes.Buffer
	cmd := newRootCmd(open)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestScrapeAndList(t *testing.T) {
	e := newEnv(t)

	out, err := e.run(t, "scrape", e.site.URL+"/hostel")
	require.NoError(t, err)
	assert.Contains(t, out, "Hostel - MITS Gwalior")

	page, err := e.st.GetContent(context.Background(), e.site.URL+"/hostel")
	require.NoError(t, err)
	assert.Contains(t, page.Content, "separate hostels")

	out, err = e.run(t, "content", "list")
	require.NoError(t, err)
	assert.Contains(t, out, e.site.URL+"/hostel")
}

func TestScrapeRejectsBadURL(t *testing.T) {
	e := newEnv(t)
	_, err := e.run(t, "scrape", "ftp://example.com")
	assert.ErrorContains(t, err, "invalid url")
}

func TestRefreshUnknownURL(t *testing.T) {
	e := newEnv(t)
	_, err := e.run(t, "refresh", e.site.URL+"/hostel")
	assert.ErrorContains(t, err, "URL not found in content library")
}

func TestRefreshExisting(t *testing.T) {
	e := newEnv(t)
	u := e.site.URL + "/hostel"
	_, err := e.st.UpsertContent(context.Background(), models.ContentInput{URL: u, Title: "Old", Content: "stale"})
	require.NoError(t, err)

	out, err := e.run(t, "refresh", u)
	require.NoError(t, err)
	assert.Contains(t, out, "Refreshed")

	page, err := e.st.GetContent(context.Background(), u)
	require.NoError(t, err)
	assert.Equal(t, "Hostel - MITS Gwalior", page.Title)
}

func TestSeedOnlyOnce(t *testing.T) {
	e := newEnv(t)

	out, err := e.run(t, "seed")
	require.NoError(t, err)
	assert.Contains(t, out, fmt.Sprint(len(seed.Pages)))

	out, err = e.run(t, "seed")
	require.NoError(t, err)
	assert.Contains(t, out, "nothing seeded")
}

func TestListEmpty(t *testing.T) {
	out, err := newEnv(t).run(t, "content", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No content stored")
}

func TestHistoryFormats(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	sess, err := e.st.CreateSession(ctx)
	require.NoError(t, err)
	require.NoError(t, e.st.AppendMessage(ctx, &models.ChatMessage{SessionID: sess.ID, Role: models.RoleUser, Content: "hostels?"}))

	out, err := e.run(t, "history", sess.ID)
	require.NoError(t, err)
	var fromJSON []models.Message
	require.NoError(t, json.Unmarshal([]byte(out), &fromJSON))
	require.Len(t, fromJSON, 1)
	assert.Equal(t, "hostels?", fromJSON[0].Content)

	out, err = e.run(t, "history", sess.ID, "--format", "yaml")
	require.NoError(t, err)
	var fromYAML []models.Message
	require.NoError(t, yaml.Unmarshal([]byte(out), &fromYAML))
	require.Len(t, fromYAML, 1)
	assert.Equal(t, models.RoleUser, fromYAML[0].Role)

	_, err = e.run(t, "history", sess.ID, "-f", "xml")
	assert.ErrorContains(t, err, "unsupported format")
}
