package htmltree

import (
	"context"
	"fmt"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/phanxgames/a11ykit"
)

const defaultCaptureTimeout = 30 * time.Second

// CaptureOptions configures Capture.
type CaptureOptions struct {
	// ControlURL is the DevTools websocket of a running browser. Empty
	// launches a local headless Chrome.
	ControlURL string
	// Timeout bounds navigation and DOM serialization. Zero means 30s.
	Timeout time.Duration
}

// Capture loads pageURL in a browser, serializes the rendered DOM and parses
// it with Parse. Unlike fetching the raw HTML, scripts have already run.
func Capture(ctx context.Context, pageURL string, opts CaptureOptions) (*a11ykit.Node, error) {
	wsURL := opts.ControlURL
	if wsURL == "" {
		l := launcher.New().Headless(true)
		defer func() {
			l.Kill()
			l.Cleanup()
		}()
		u, err := l.Launch()
		if err != nil {
			return nil, fmt.Errorf("a11ykit/htmltree: launch browser: %w", err)
		}
		wsURL = u
	}

	b := rod.New().ControlURL(wsURL)
	if err := b.Connect(); err != nil {
		return nil, fmt.Errorf("a11ykit/htmltree: connect browser: %w", err)
	}
	defer b.Close()

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultCaptureTimeout
	}
	navCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	page, err := b.Context(navCtx).Page(proto.TargetCreateTarget{URL: pageURL})
	if err != nil {
		return nil, fmt.Errorf("a11ykit/htmltree: open %s: %w", pageURL, err)
	}
	defer page.Close()

	if err := page.WaitLoad(); err != nil {
		return nil, fmt.Errorf("a11ykit/htmltree: load %s: %w", pageURL, err)
	}
	res, err := page.Eval(`() => document.documentElement.outerHTML`)
	if err != nil {
		return nil, fmt.Errorf("a11ykit/htmltree: get DOM: %w", err)
	}
	return ParseString(res.Value.Str())
}
