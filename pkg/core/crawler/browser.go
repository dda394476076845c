package crawler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

const tier2Deadline = 20 * time.Second

// BrowserPool owns a single long-lived headless browser instance and
// hands out scoped page leases. One pool-held browser amortizes launch
// cost across crawls; every page is acquired and released per crawl with
// guaranteed release on every exit path.
type BrowserPool struct {
	mu      sync.Mutex
	browser *rod.Browser
}

// NewBrowserPool returns an empty pool; the underlying browser process is
// launched lazily on first use.
func NewBrowserPool() *BrowserPool {
	return &BrowserPool{}
}

// ensureStarted launches the browser if it isn't already connected, or
// reconnects if the previous connection went stale.
func (p *BrowserPool) ensureStarted() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.browser != nil {
		if _, err := p.browser.Version(); err == nil {
			return nil
		}
		_ = p.browser.Close()
		p.browser = nil
	}

	controlURL, err := launcher.New().Headless(true).Launch()
	if err != nil {
		return fmt.Errorf("failed to launch headless browser: %w", err)
	}

	browser := rod.New().ControlURL(controlURL)
	if err := browser.Connect(); err != nil {
		return fmt.Errorf("failed to connect to headless browser: %w", err)
	}

	p.browser = browser
	return nil
}

// Close shuts down the underlying browser process, if any.
func (p *BrowserPool) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.browser == nil {
		return nil
	}
	err := p.browser.Close()
	p.browser = nil
	return err
}

// renderedHTML navigates to url in a scoped page, waits for DOM content
// to settle, and returns the rendered HTML. The page is always closed on
// return, success or failure.
func (p *BrowserPool) renderedHTML(ctx context.Context, url string) (string, error) {
	if err := p.ensureStarted(); err != nil {
		return "", err
	}

	navCtx, cancel := context.WithTimeout(ctx, tier2Deadline)
	defer cancel()

	p.mu.Lock()
	browser := p.browser
	p.mu.Unlock()

	page, err := browser.Context(navCtx).Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", fmt.Errorf("failed to open page: %w", err)
	}
	defer page.Close()

	if err := page.Timeout(tier2Deadline).Navigate(url); err != nil {
		return "", fmt.Errorf("navigation failed: %w", err)
	}

	if err := page.Timeout(tier2Deadline).WaitDOMStable(300*time.Millisecond, 0); err != nil {
		// DOM-stability is best-effort; a slow page still yields usable
		// rendered HTML, so this is not treated as a hard navigation failure.
	}

	html, err := page.HTML()
	if err != nil {
		return "", fmt.Errorf("failed to read rendered HTML: %w", err)
	}

	return html, nil
}
