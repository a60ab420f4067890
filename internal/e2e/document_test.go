package e2e

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixturePage = `<!DOCTYPE html>
<html><head><title>Fixture</title></head>
<body>
  <nav>
    <a href="/" data-testid="logo">Logo</a>
    <div class="hidden md:flex"><a href="/other" data-testid="desktop-link">Other</a></div>
    <a href="#contact" data-testid="anchor">Contact</a>
    <form method="get" action="/toggle" class="md:hidden">
      <input type="hidden" name="from" value="fixture">
      <button type="submit" name="n" value="%d" data-testid="toggle">Menu</button>
    </form>
  </nav>
  <p hidden data-testid="secret">Hidden paragraph</p>
  <div class="hidden"><span>Tucked away</span></div>
  <button type="button" data-testid="noop">Nothing</button>
  <button type="button" disabled data-testid="off">Off</button>
  <p>  Visible   copy </p>
</body></html>`

// requestLog records the request URIs a fixture server has answered.
type requestLog struct {
	mu   sync.Mutex
	uris []string
}

func (l *requestLog) add(uri string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.uris = append(l.uris, uri)
	return len(l.uris)
}

func (l *requestLog) all() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.uris...)
}

func newFixture(t *testing.T) (*httptest.Server, *requestLog) {
	t.Helper()
	hits := &requestLog{}
	site := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := hits.add(r.URL.RequestURI())
		w.Header().Set("Content-Type", "text/html")
		fmt.Fprintf(w, fixturePage, n)
	}))
	t.Cleanup(site.Close)
	return site, hits
}

func openSession(t *testing.T, site *httptest.Server, vp Viewport) Session {
	t.Helper()
	s, err := NewDocumentDriverWithClient(site.Client()).NewSession(context.Background(), vp)
	require.NoError(t, err)
	require.NoError(t, s.Goto(context.Background(), site.URL+"/"))
	return s
}

func TestDocumentVisibilityFollowsViewport(t *testing.T) {
	site, _ := newFixture(t)
	ctx := context.Background()

	desktop := openSession(t, site, DesktopViewport)
	st, err := desktop.Probe(ctx, "desktop-link")
	require.NoError(t, err)
	assert.True(t, st.Visible)
	st, _ = desktop.Probe(ctx, "toggle")
	assert.False(t, st.Visible)

	mobile := openSession(t, site, Viewport{Width: 375, Height: 667})
	st, _ = mobile.Probe(ctx, "desktop-link")
	assert.False(t, st.Visible)
	st, _ = mobile.Probe(ctx, "toggle")
	assert.True(t, st.Visible)
	assert.Equal(t, "Menu", st.Text)

	require.NoError(t, mobile.SetViewport(ctx, Viewport{Width: 768, Height: 1024}))
	st, _ = mobile.Probe(ctx, "desktop-link")
	assert.True(t, st.Visible)
}

func TestDocumentProbe(t *testing.T) {
	site, _ := newFixture(t)
	ctx := context.Background()
	s := openSession(t, site, DesktopViewport)

	st, err := s.Probe(ctx, "secret")
	require.NoError(t, err)
	assert.True(t, st.Found())
	assert.False(t, st.Visible)

	st, _ = s.Probe(ctx, "off")
	assert.False(t, st.Enabled)

	st, _ = s.Probe(ctx, "missing")
	assert.False(t, st.Found())

	states, err := s.Query(ctx, "button")
	require.NoError(t, err)
	assert.Len(t, states, 3)
	assert.Equal(t, 3, states[0].Count)
}

func TestDocumentTextVisible(t *testing.T) {
	site, _ := newFixture(t)
	ctx := context.Background()
	s := openSession(t, site, DesktopViewport)

	tests := []struct {
		text string
		want bool
	}{
		{"visible copy", true},
		{"VISIBLE COPY", true},
		{"Hidden paragraph", false},
		{"Tucked away", false},
		{"Fixture", false},
		{"not on the page", false},
	}
	for _, tt := range tests {
		got, err := s.TextVisible(ctx, tt.text)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, tt.text)
	}
}

func TestDocumentClick(t *testing.T) {
	site, hits := newFixture(t)
	ctx := context.Background()
	s := openSession(t, site, Viewport{Width: 375, Height: 667})

	require.NoError(t, s.Click(ctx, "anchor"))
	require.NoError(t, s.Click(ctx, "noop"))
	assert.Len(t, hits.all(), 1)

	require.NoError(t, s.Click(ctx, "toggle"))
	require.Len(t, hits.all(), 2)
	assert.Equal(t, "/toggle?from=fixture&n=1", hits.all()[1])

	loc, err := s.Location(ctx)
	require.NoError(t, err)
	assert.Equal(t, site.URL+"/toggle?from=fixture&n=1", loc)

	require.NoError(t, s.Click(ctx, "logo"))
	loc, _ = s.Location(ctx)
	assert.Equal(t, site.URL+"/", loc)

	assert.Error(t, s.Click(ctx, "desktop-link"), "hidden at this width")
	assert.Error(t, s.Click(ctx, "missing"))
}

func TestDocumentKeyboardFocus(t *testing.T) {
	site, _ := newFixture(t)
	ctx := context.Background()
	s := openSession(t, site, DesktopViewport)

	tag, err := s.FocusedTag(ctx)
	require.NoError(t, err)
	assert.Equal(t, "BODY", tag)

	// logo, desktop link, anchor, noop; the form is hidden and "off" disabled
	want := []string{"A", "A", "A", "BUTTON", "A"}
	for _, w := range want {
		require.NoError(t, s.Press(ctx, "Tab"))
		tag, _ = s.FocusedTag(ctx)
		assert.Equal(t, w, tag)
	}
}

func TestDocumentTitleAndTimeout(t *testing.T) {
	site, _ := newFixture(t)
	s := openSession(t, site, DesktopViewport)

	title, err := s.Title(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Fixture", title)

	blank, err := NewDocumentDriver(time.Second).NewSession(context.Background(), DesktopViewport)
	require.NoError(t, err)
	_, err = blank.Title(context.Background())
	assert.Error(t, err)
	loc, _ := blank.Location(context.Background())
	assert.Equal(t, "about:blank", loc)
}
