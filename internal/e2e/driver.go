package e2e

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/FACorreiaa/go-nextapp/internal/pkg/config"
)

const labelAttr = "data-testid"

// ElementState is a snapshot of the first element matching a label or
// selector. Count is the number of matches.
type ElementState struct {
	Count   int
	Visible bool
	Enabled bool
	Text    string
}

func (s ElementState) Found() bool {
	return s.Count > 0
}

// Driver opens isolated browsing sessions.
type Driver interface {
	NewSession(ctx context.Context, viewport Viewport) (Session, error)
	Close() error
}

// Session is one browser tab. Methods never wait for elements to appear;
// the runner polls.
type Session interface {
	Goto(ctx context.Context, url string) error
	SetViewport(ctx context.Context, viewport Viewport) error
	Click(ctx context.Context, label string) error
	Press(ctx context.Context, key string) error
	ScrollToBottom(ctx context.Context) error
	Probe(ctx context.Context, label string) (ElementState, error)
	TextVisible(ctx context.Context, text string) (bool, error)
	Query(ctx context.Context, selector string) ([]ElementState, error)
	Location(ctx context.Context) (string, error)
	Title(ctx context.Context) (string, error)
	FocusedTag(ctx context.Context) (string, error)
	Close() error
}

// NewDriver builds the driver selected by cfg.Driver.
func NewDriver(cfg config.E2EConfig, logger *zap.Logger) (Driver, error) {
	switch cfg.Driver {
	case "playwright":
		return NewPlaywrightDriver(cfg.Headless, cfg.NavigationTimeout, logger)
	case "chromedp":
		return NewChromeDriver(cfg.Headless, logger), nil
	case "document":
		return NewDocumentDriver(cfg.NavigationTimeout), nil
	default:
		return nil, fmt.Errorf("unknown driver %q", cfg.Driver)
	}
}

func labelSelector(label string) string {
	return fmt.Sprintf("[%s=%q]", labelAttr, label)
}
