package e2e

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/FACorreiaa/go-nextapp/internal/pkg/config"
)

const (
	defaultAssertTimeout     = 5 * time.Second
	defaultNavigationTimeout = 30 * time.Second
	defaultPollInterval      = 100 * time.Millisecond
)

type Options struct {
	BaseURL           string
	AssertTimeout     time.Duration
	NavigationTimeout time.Duration
	PollInterval      time.Duration
	Parallelism       int
}

func OptionsFromConfig(cfg config.E2EConfig) Options {
	return Options{
		BaseURL:           cfg.BaseURL,
		AssertTimeout:     cfg.AssertTimeout,
		NavigationTimeout: cfg.NavigationTimeout,
		Parallelism:       cfg.Parallelism,
	}
}

// Runner executes scenarios against a site. Each scenario gets its own
// session; steps run in order and the first failing step ends the scenario.
type Runner struct {
	driver Driver
	opts   Options
	logger *zap.Logger
}

func NewRunner(driver Driver, opts Options, logger *zap.Logger) *Runner {
	if opts.AssertTimeout <= 0 {
		opts.AssertTimeout = defaultAssertTimeout
	}
	if opts.NavigationTimeout <= 0 {
		opts.NavigationTimeout = defaultNavigationTimeout
	}
	if opts.PollInterval <= 0 {
		opts.PollInterval = defaultPollInterval
	}
	if opts.Parallelism < 1 {
		opts.Parallelism = 1
	}
	opts.BaseURL = strings.TrimRight(opts.BaseURL, "/")
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{driver: driver, opts: opts, logger: logger}
}

// Run validates every scenario, then runs them with bounded parallelism.
// Scenario failures are reported in the Report; the error is reserved for
// invalid input.
func (r *Runner) Run(ctx context.Context, scenarios []Scenario) (*Report, error) {
	if len(scenarios) == 0 {
		return nil, errors.New("no scenarios to run")
	}
	for _, sc := range scenarios {
		if err := sc.Validate(); err != nil {
			return nil, err
		}
	}

	report := &Report{
		RunID:     uuid.New(),
		StartedAt: time.Now(),
		Results:   make([]Result, len(scenarios)),
	}
	log := r.logger.With(zap.String("run_id", report.RunID.String()))
	log.Info("Starting scenario run",
		zap.Int("scenarios", len(scenarios)),
		zap.Int("parallelism", r.opts.Parallelism),
		zap.String("base_url", r.opts.BaseURL))

	var g errgroup.Group
	g.SetLimit(r.opts.Parallelism)
	for i, sc := range scenarios {
		g.Go(func() error {
			report.Results[i] = r.runScenario(ctx, sc, log)
			return nil
		})
	}
	_ = g.Wait()

	report.finish()
	return report, nil
}

func (r *Runner) runScenario(ctx context.Context, sc Scenario, log *zap.Logger) Result {
	start := time.Now()
	result := Result{Scenario: sc.Name, Group: sc.Group}
	log = log.With(zap.String("scenario", sc.FullName()))

	session, err := r.driver.NewSession(ctx, DesktopViewport)
	if err != nil {
		result.Err = fmt.Errorf("%s: open session: %w", sc.FullName(), err)
		result.Duration = time.Since(start)
		log.Error("Failed to open session", zap.Error(err))
		return result
	}
	defer func() {
		if err := session.Close(); err != nil {
			log.Warn("Failed to close session", zap.Error(err))
		}
	}()

	for i, step := range sc.Steps {
		if err := r.runStep(ctx, session, step); err != nil {
			result.Err = &StepError{
				Scenario:    sc.FullName(),
				Step:        i + 1,
				Action:      step.Kind(),
				Expectation: step.Expectation(),
				Err:         err,
			}
			break
		}
	}

	result.Passed = result.Err == nil
	result.Duration = time.Since(start)
	if result.Passed {
		log.Info("Scenario passed", zap.Duration("duration", result.Duration))
	} else {
		log.Error("Scenario failed", zap.Duration("duration", result.Duration), zap.Error(result.Err))
	}
	return result
}

func (r *Runner) runStep(ctx context.Context, s Session, step Step) error {
	switch step.Kind() {
	case StepGoto:
		return r.navigate(ctx, func(ctx context.Context) error {
			return s.Goto(ctx, r.resolve(step.Goto))
		})
	case StepViewport:
		return s.SetViewport(ctx, *step.Viewport)
	case StepClick:
		if err := r.expectVisible(ctx, s, step.Click); err != nil {
			return err
		}
		return r.navigate(ctx, func(ctx context.Context) error {
			return s.Click(ctx, step.Click)
		})
	case StepPress:
		if err := s.Press(ctx, step.Press); err != nil {
			return fmt.Errorf("%w: press %s: %v", ErrAssertionFailure, step.Press, err)
		}
		return nil
	case StepScroll:
		if err := s.ScrollToBottom(ctx); err != nil {
			return fmt.Errorf("%w: scroll: %v", ErrAssertionFailure, err)
		}
		return nil
	case StepExpectVisible:
		return r.expectVisible(ctx, s, step.ExpectVisible)
	case StepExpectHidden:
		return r.expectHidden(ctx, s, step.ExpectHidden)
	case StepExpectEnabled:
		return r.expectEnabled(ctx, s, step.ExpectEnabled)
	case StepExpectText:
		return r.expectText(ctx, s, *step.ExpectText)
	case StepExpectTextVisible:
		return r.expectTextVisible(ctx, s, step.ExpectTextVisible)
	case StepExpectURL:
		return r.expectURL(ctx, s, step.ExpectURL)
	case StepExpectTitle:
		return r.expectTitle(ctx, s, step.ExpectTitle)
	case StepExpectFocus:
		return r.expectFocus(ctx, s, step.ExpectFocus)
	case StepExpectEach:
		return r.expectEach(ctx, s, *step.ExpectEach)
	}
	return fmt.Errorf("unsupported step %q", step.Kind())
}

func (r *Runner) resolve(target string) string {
	if strings.HasPrefix(target, "http://") || strings.HasPrefix(target, "https://") {
		return target
	}
	if !strings.HasPrefix(target, "/") {
		target = "/" + target
	}
	return r.opts.BaseURL + target
}

// navigate runs a page load within the navigation timeout.
func (r *Runner) navigate(ctx context.Context, load func(context.Context) error) error {
	navCtx, cancel := context.WithTimeout(ctx, r.opts.NavigationTimeout)
	defer cancel()
	if err := load(navCtx); err != nil {
		return fmt.Errorf("%w: %v", ErrNavigationTimeout, err)
	}
	return nil
}

// eventually polls check until it succeeds or the assertion window closes,
// returning the last failure.
func (r *Runner) eventually(ctx context.Context, check func(context.Context) error) error {
	waitCtx, cancel := context.WithTimeout(ctx, r.opts.AssertTimeout)
	defer cancel()

	ticker := time.NewTicker(r.opts.PollInterval)
	defer ticker.Stop()
	for {
		err := check(waitCtx)
		if err == nil {
			return nil
		}
		select {
		case <-waitCtx.Done():
			return err
		case <-ticker.C:
		}
	}
}

// probeUnique reads a label and rejects labels matching several elements.
func probeUnique(ctx context.Context, s Session, label string) (ElementState, error) {
	st, err := s.Probe(ctx, label)
	if err != nil {
		return st, fmt.Errorf("%w: %s: %v", ErrElementNotFound, label, err)
	}
	if st.Count > 1 {
		return st, fmt.Errorf("%w: label %q matches %d elements", ErrAssertionFailure, label, st.Count)
	}
	return st, nil
}

func (r *Runner) expectVisible(ctx context.Context, s Session, label string) error {
	return r.eventually(ctx, func(ctx context.Context) error {
		st, err := probeUnique(ctx, s, label)
		switch {
		case err != nil:
			return err
		case !st.Found():
			return fmt.Errorf("%w: no element labeled %q", ErrElementNotFound, label)
		case !st.Visible:
			return fmt.Errorf("%w: %q is not visible", ErrElementNotFound, label)
		}
		return nil
	})
}

func (r *Runner) expectHidden(ctx context.Context, s Session, label string) error {
	return r.eventually(ctx, func(ctx context.Context) error {
		st, err := probeUnique(ctx, s, label)
		if err != nil {
			return err
		}
		if st.Found() && st.Visible {
			return fmt.Errorf("%w: %q is still visible", ErrAssertionFailure, label)
		}
		return nil
	})
}

func (r *Runner) expectEnabled(ctx context.Context, s Session, label string) error {
	return r.eventually(ctx, func(ctx context.Context) error {
		st, err := probeUnique(ctx, s, label)
		switch {
		case err != nil:
			return err
		case !st.Found():
			return fmt.Errorf("%w: no element labeled %q", ErrElementNotFound, label)
		case !st.Enabled:
			return fmt.Errorf("%w: %q is disabled", ErrAssertionFailure, label)
		}
		return nil
	})
}

func (r *Runner) expectText(ctx context.Context, s Session, want TextExpectation) error {
	needle := normalizeText(want.Contains)
	return r.eventually(ctx, func(ctx context.Context) error {
		st, err := probeUnique(ctx, s, want.Label)
		switch {
		case err != nil:
			return err
		case !st.Found():
			return fmt.Errorf("%w: no element labeled %q", ErrElementNotFound, want.Label)
		case !strings.Contains(st.Text, needle):
			return fmt.Errorf("%w: %q has text %q, want it to contain %q", ErrAssertionFailure, want.Label, st.Text, needle)
		}
		return nil
	})
}

func (r *Runner) expectTextVisible(ctx context.Context, s Session, text string) error {
	return r.eventually(ctx, func(ctx context.Context) error {
		visible, err := s.TextVisible(ctx, text)
		if err != nil {
			return fmt.Errorf("%w: text %q: %v", ErrElementNotFound, text, err)
		}
		if !visible {
			return fmt.Errorf("%w: no visible element contains %q", ErrElementNotFound, text)
		}
		return nil
	})
}

func (r *Runner) expectURL(ctx context.Context, s Session, wantPath string) error {
	return r.eventually(ctx, func(ctx context.Context) error {
		location, err := s.Location(ctx)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrNavigationTimeout, err)
		}
		u, err := url.Parse(location)
		if err != nil {
			return fmt.Errorf("%w: invalid location %q", ErrNavigationTimeout, location)
		}
		path := u.Path
		if path == "" {
			path = "/"
		}
		if path != wantPath {
			return fmt.Errorf("%w: at %s, want %s", ErrNavigationTimeout, path, wantPath)
		}
		return nil
	})
}

func (r *Runner) expectTitle(ctx context.Context, s Session, want string) error {
	return r.eventually(ctx, func(ctx context.Context) error {
		title, err := s.Title(ctx)
		if err != nil {
			return fmt.Errorf("%w: title: %v", ErrAssertionFailure, err)
		}
		if !strings.Contains(title, want) {
			return fmt.Errorf("%w: title %q does not contain %q", ErrAssertionFailure, title, want)
		}
		return nil
	})
}

func (r *Runner) expectFocus(ctx context.Context, s Session, tags []string) error {
	return r.eventually(ctx, func(ctx context.Context) error {
		tag, err := s.FocusedTag(ctx)
		if err != nil {
			return fmt.Errorf("%w: focus: %v", ErrAssertionFailure, err)
		}
		if !slices.ContainsFunc(tags, func(t string) bool { return strings.EqualFold(t, tag) }) {
			return fmt.Errorf("%w: focus is on %s, want one of %s", ErrAssertionFailure, tag, strings.Join(tags, ", "))
		}
		return nil
	})
}

func (r *Runner) expectEach(ctx context.Context, s Session, want EachExpectation) error {
	return r.eventually(ctx, func(ctx context.Context) error {
		states, err := s.Query(ctx, want.Selector)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrAssertionFailure, want.Selector, err)
		}
		if len(states) < want.Min {
			return fmt.Errorf("%w: %d elements match %q, want at least %d", ErrAssertionFailure, len(states), want.Selector, want.Min)
		}
		for i, st := range states {
			switch {
			case want.Visible && !st.Visible:
				return fmt.Errorf("%w: %s[%d] is not visible", ErrAssertionFailure, want.Selector, i)
			case want.Enabled && !st.Enabled:
				return fmt.Errorf("%w: %s[%d] is disabled", ErrAssertionFailure, want.Selector, i)
			case want.HasText && st.Text == "":
				return fmt.Errorf("%w: %s[%d] has no text", ErrAssertionFailure, want.Selector, i)
			}
		}
		return nil
	})
}
