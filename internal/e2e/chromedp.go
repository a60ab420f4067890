package e2e

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/chromedp/chromedp"
	"github.com/chromedp/chromedp/kb"
	"go.uber.org/zap"
)

// domQueryJS evaluates to a list of element snapshots for a selector.
const domQueryJS = `(() => {
  const visible = el => {
    const style = getComputedStyle(el);
    const rect = el.getBoundingClientRect();
    return style.display !== 'none' && style.visibility !== 'hidden' && rect.width > 0 && rect.height > 0;
  };
  return Array.from(document.querySelectorAll(%s)).map(el => ({
    visible: visible(el),
    enabled: !el.disabled,
    text: el.textContent || '',
  }));
})()`

// textVisibleJS looks for the innermost elements containing a text and
// reports whether any of them is rendered.
const textVisibleJS = `(() => {
  const needle = %s;
  const norm = s => (s || '').replace(/\s+/g, ' ').trim().toLowerCase();
  const has = el => norm(el.textContent).includes(needle);
  return Array.from(document.body.querySelectorAll('*'))
    .filter(el => has(el) && !Array.from(el.children).some(has))
    .some(el => {
      const style = getComputedStyle(el);
      const rect = el.getBoundingClientRect();
      return style.display !== 'none' && style.visibility !== 'hidden' && rect.width > 0 && rect.height > 0;
    });
})()`

var chromeKeys = map[string]string{
	"Tab":   kb.Tab,
	"Enter": kb.Enter,
}

// ChromeDriver runs sessions as tabs of one Chrome process over CDP.
type ChromeDriver struct {
	allocCtx context.Context
	cancel   context.CancelFunc
	logger   *zap.Logger
}

func NewChromeDriver(headless bool, logger *zap.Logger) *ChromeDriver {
	opts := []chromedp.ExecAllocatorOption{
		chromedp.NoFirstRun,
		chromedp.NoDefaultBrowserCheck,
		chromedp.DisableGPU,
		chromedp.NoSandbox, // Required for Docker environments
	}
	if headless {
		opts = append(opts, chromedp.Headless)
	}

	allocCtx, cancel := chromedp.NewExecAllocator(context.Background(), opts...)
	logger.Info("Chrome driver ready", zap.Bool("headless", headless))
	return &ChromeDriver{allocCtx: allocCtx, cancel: cancel, logger: logger}
}

// NewSession opens a tab. The first Run happens on the tab context itself so
// the tab outlives ctx.
func (d *ChromeDriver) NewSession(_ context.Context, viewport Viewport) (Session, error) {
	tabCtx, cancel := chromedp.NewContext(d.allocCtx)
	s := &chromeSession{ctx: tabCtx, cancel: cancel}
	if err := chromedp.Run(tabCtx, chromedp.EmulateViewport(int64(viewport.Width), int64(viewport.Height))); err != nil {
		cancel()
		return nil, fmt.Errorf("failed to open tab: %w", err)
	}
	return s, nil
}

func (d *ChromeDriver) Close() error {
	d.cancel()
	return nil
}

type chromeSession struct {
	ctx    context.Context
	cancel context.CancelFunc
}

// run executes actions in the tab, aborting when the caller's ctx ends.
func (s *chromeSession) run(ctx context.Context, actions ...chromedp.Action) error {
	runCtx, cancel := context.WithCancel(s.ctx)
	defer cancel()
	stop := context.AfterFunc(ctx, cancel)
	defer stop()
	return chromedp.Run(runCtx, actions...)
}

func (s *chromeSession) Goto(ctx context.Context, url string) error {
	if err := s.run(ctx, chromedp.Navigate(url), chromedp.WaitReady("body", chromedp.ByQuery)); err != nil {
		return fmt.Errorf("navigation failed: %w", err)
	}
	return nil
}

func (s *chromeSession) SetViewport(ctx context.Context, viewport Viewport) error {
	return s.run(ctx, chromedp.EmulateViewport(int64(viewport.Width), int64(viewport.Height)))
}

func (s *chromeSession) Click(ctx context.Context, label string) error {
	sel := labelSelector(label)
	if err := s.run(ctx, chromedp.Click(sel, chromedp.ByQuery), chromedp.WaitReady("body", chromedp.ByQuery)); err != nil {
		return fmt.Errorf("click failed: %w", err)
	}
	return nil
}

func (s *chromeSession) Press(ctx context.Context, key string) error {
	if mapped, ok := chromeKeys[key]; ok {
		key = mapped
	}
	return s.run(ctx, chromedp.KeyEvent(key))
}

func (s *chromeSession) ScrollToBottom(ctx context.Context) error {
	return s.run(ctx, chromedp.Evaluate(`window.scrollTo(0, document.body.scrollHeight)`, nil))
}

type domElement struct {
	Visible bool   `json:"visible"`
	Enabled bool   `json:"enabled"`
	Text    string `json:"text"`
}

func (s *chromeSession) Query(ctx context.Context, selector string) ([]ElementState, error) {
	quoted, err := json.Marshal(selector)
	if err != nil {
		return nil, err
	}
	var elements []domElement
	if err := s.run(ctx, chromedp.Evaluate(fmt.Sprintf(domQueryJS, quoted), &elements)); err != nil {
		return nil, err
	}
	states := make([]ElementState, 0, len(elements))
	for _, el := range elements {
		states = append(states, ElementState{
			Count:   len(elements),
			Visible: el.Visible,
			Enabled: el.Enabled,
			Text:    normalizeText(el.Text),
		})
	}
	return states, nil
}

func (s *chromeSession) Probe(ctx context.Context, label string) (ElementState, error) {
	states, err := s.Query(ctx, labelSelector(label))
	if err != nil || len(states) == 0 {
		return ElementState{}, err
	}
	return states[0], nil
}

func (s *chromeSession) TextVisible(ctx context.Context, text string) (bool, error) {
	needle, err := json.Marshal(foldText(text))
	if err != nil {
		return false, err
	}
	var visible bool
	if err := s.run(ctx, chromedp.Evaluate(fmt.Sprintf(textVisibleJS, needle), &visible)); err != nil {
		return false, err
	}
	return visible, nil
}

func (s *chromeSession) Location(ctx context.Context) (string, error) {
	var url string
	err := s.run(ctx, chromedp.Location(&url))
	return url, err
}

func (s *chromeSession) Title(ctx context.Context) (string, error) {
	var title string
	err := s.run(ctx, chromedp.Title(&title))
	return title, err
}

func (s *chromeSession) FocusedTag(ctx context.Context) (string, error) {
	var tag string
	err := s.run(ctx, chromedp.Evaluate(`document.activeElement ? document.activeElement.tagName : 'BODY'`, &tag))
	return tag, err
}

func (s *chromeSession) Close() error {
	s.cancel()
	return nil
}
