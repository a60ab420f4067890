package e2e

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/playwright-community/playwright-go"
	"go.uber.org/zap"
)

// probeTimeout bounds single Playwright reads so a detached element fails
// fast instead of blocking a poll round.
const probeTimeout = 1000.0

// PlaywrightDriver runs sessions in Chromium through the Playwright server.
type PlaywrightDriver struct {
	pw         *playwright.Playwright
	browser    playwright.Browser
	navTimeout float64
	logger     *zap.Logger
}

// NewPlaywrightDriver installs the Playwright browsers if needed and launches
// Chromium once; every session gets its own browser context.
func NewPlaywrightDriver(headless bool, navTimeout time.Duration, logger *zap.Logger) (*PlaywrightDriver, error) {
	opts := &playwright.RunOptions{
		Browsers: []string{"chromium"},
		Verbose:  false,
		Stdout:   io.Discard,
		Stderr:   io.Discard,
	}
	if err := playwright.Install(opts); err != nil {
		return nil, fmt.Errorf("failed to install playwright: %w", err)
	}
	pw, err := playwright.Run(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to start playwright: %w", err)
	}

	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: &headless,
	})
	if err != nil {
		_ = pw.Stop()
		return nil, fmt.Errorf("failed to launch browser: %w", err)
	}

	logger.Info("Playwright driver ready", zap.Bool("headless", headless), zap.String("version", browser.Version()))
	return &PlaywrightDriver{
		pw:         pw,
		browser:    browser,
		navTimeout: float64(navTimeout.Milliseconds()),
		logger:     logger,
	}, nil
}

func (d *PlaywrightDriver) NewSession(_ context.Context, viewport Viewport) (Session, error) {
	bctx, err := d.browser.NewContext(playwright.BrowserNewContextOptions{
		Viewport: &playwright.Size{
			Width:  viewport.Width,
			Height: viewport.Height,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create context: %w", err)
	}
	page, err := bctx.NewPage()
	if err != nil {
		_ = bctx.Close()
		return nil, fmt.Errorf("failed to create page: %w", err)
	}
	page.SetDefaultNavigationTimeout(d.navTimeout)
	page.SetDefaultTimeout(d.navTimeout)
	return &playwrightSession{context: bctx, page: page}, nil
}

func (d *PlaywrightDriver) Close() error {
	if err := d.browser.Close(); err != nil {
		d.logger.Warn("Failed to close browser", zap.Error(err))
	}
	return d.pw.Stop()
}

type playwrightSession struct {
	context playwright.BrowserContext
	page    playwright.Page
}

func (s *playwrightSession) Goto(_ context.Context, url string) error {
	waitUntil := playwright.WaitUntilState("load")
	if _, err := s.page.Goto(url, playwright.PageGotoOptions{WaitUntil: &waitUntil}); err != nil {
		return fmt.Errorf("navigation failed: %w", err)
	}
	return nil
}

func (s *playwrightSession) SetViewport(_ context.Context, viewport Viewport) error {
	return s.page.SetViewportSize(viewport.Width, viewport.Height)
}

func (s *playwrightSession) Click(_ context.Context, label string) error {
	if err := s.page.GetByTestId(label).Click(); err != nil {
		return fmt.Errorf("click failed: %w", err)
	}
	state := playwright.LoadState("load")
	if err := s.page.WaitForLoadState(playwright.PageWaitForLoadStateOptions{State: &state}); err != nil {
		return fmt.Errorf("wait after click failed: %w", err)
	}
	return nil
}

func (s *playwrightSession) Press(_ context.Context, key string) error {
	return s.page.Keyboard().Press(key)
}

func (s *playwrightSession) ScrollToBottom(_ context.Context) error {
	_, err := s.page.Evaluate("() => window.scrollTo(0, document.body.scrollHeight)")
	return err
}

func (s *playwrightSession) Probe(_ context.Context, label string) (ElementState, error) {
	states, err := s.inspect(s.page.GetByTestId(label), 1)
	if err != nil || len(states) == 0 {
		return ElementState{}, err
	}
	return states[0], nil
}

func (s *playwrightSession) Query(_ context.Context, selector string) ([]ElementState, error) {
	return s.inspect(s.page.Locator(selector), -1)
}

// inspect reads up to limit matches of loc (all when limit is negative).
// Every returned state carries the total match count.
func (s *playwrightSession) inspect(loc playwright.Locator, limit int) ([]ElementState, error) {
	count, err := loc.Count()
	if err != nil {
		return nil, err
	}
	n := count
	if limit >= 0 && limit < n {
		n = limit
	}
	timeout := probeTimeout
	states := make([]ElementState, 0, n)
	for i := 0; i < n; i++ {
		el := loc.Nth(i)
		visible, err := el.IsVisible()
		if err != nil {
			return nil, err
		}
		enabled, err := el.IsEnabled(playwright.LocatorIsEnabledOptions{Timeout: &timeout})
		if err != nil {
			return nil, err
		}
		text, err := el.TextContent(playwright.LocatorTextContentOptions{Timeout: &timeout})
		if err != nil {
			return nil, err
		}
		states = append(states, ElementState{
			Count:   count,
			Visible: visible,
			Enabled: enabled,
			Text:    normalizeText(text),
		})
	}
	return states, nil
}

func (s *playwrightSession) TextVisible(_ context.Context, text string) (bool, error) {
	loc := s.page.GetByText(text)
	count, err := loc.Count()
	if err != nil {
		return false, err
	}
	for i := 0; i < count; i++ {
		visible, err := loc.Nth(i).IsVisible()
		if err != nil {
			return false, err
		}
		if visible {
			return true, nil
		}
	}
	return false, nil
}

func (s *playwrightSession) Location(_ context.Context) (string, error) {
	return s.page.URL(), nil
}

func (s *playwrightSession) Title(_ context.Context) (string, error) {
	return s.page.Title()
}

func (s *playwrightSession) FocusedTag(_ context.Context) (string, error) {
	result, err := s.page.Evaluate("() => document.activeElement ? document.activeElement.tagName : 'BODY'")
	if err != nil {
		return "", err
	}
	tag, ok := result.(string)
	if !ok {
		return "", fmt.Errorf("unexpected focus result %T", result)
	}
	return tag, nil
}

func (s *playwrightSession) Close() error {
	_ = s.page.Close()
	return s.context.Close()
}
