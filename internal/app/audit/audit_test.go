package audit

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInspectCleanPage(t *testing.T) {
	html := `<html><body><h1 data-testid="hero-title">Welcome</h1>
<button data-testid="a">Go</button><a data-testid="b" href="/">Home</a></body></html>`

	findings, err := Inspect("/", strings.NewReader(html))
	require.NoError(t, err)
	assert.Empty(t, findings)
	assert.NoError(t, Error(findings))
}

func TestInspectDuplicateLabels(t *testing.T) {
	html := `<h1>T</h1><a data-testid="nav-home" href="/">Home</a><a data-testid="nav-home" href="/">Home</a>`

	findings, err := Inspect("/", strings.NewReader(html))
	require.NoError(t, err)
	require.Len(t, findings, 1)
	assert.Equal(t, "nav-home", findings[0].Label)
	assert.Contains(t, findings[0].Problem, "2 occurrences")
}

func TestInspectButtons(t *testing.T) {
	html := `<h1>T</h1><button data-testid="off" disabled>Off</button><button></button>`

	findings, err := Inspect("/x", strings.NewReader(html))
	require.NoError(t, err)
	require.Len(t, findings, 2)
	assert.Equal(t, "off", findings[0].Label)
	assert.Equal(t, "button is disabled", findings[0].Problem)
	assert.Equal(t, "button[1]", findings[1].Label)
	assert.Equal(t, "button has no text", findings[1].Problem)
}

func TestInspectMissingHeading(t *testing.T) {
	findings, err := Inspect("/about", strings.NewReader(`<p>nothing</p>`))
	require.NoError(t, err)
	require.Len(t, findings, 1)
	assert.Equal(t, "/about: page has no h1", findings[0].String())

	err = Error(findings)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "page has no h1")
}
