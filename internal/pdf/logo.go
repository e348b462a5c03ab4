package pdf

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/h2non/filetype"
	"github.com/h2non/filetype/matchers"
	"github.com/hashicorp/go-retryablehttp"
	"go.uber.org/zap"
)

const (
	logoFetchAttempts = 3
	logoFetchBaseWait = 500 * time.Millisecond
	logoMaxBytes      = 2 << 20
)

// AssetResolver fetches the company logo ahead of the render pass so the
// layout core stays free of I/O. Resolution is best-effort: any failure
// degrades to "no logo" and is only logged.
type AssetResolver struct {
	client *retryablehttp.Client
	log    *zap.Logger
}

// NewAssetResolver builds a resolver with bounded retry: three attempts with
// a linearly increasing delay between them.
func NewAssetResolver(log *zap.Logger) *AssetResolver {
	c := retryablehttp.NewClient()
	c.RetryMax = logoFetchAttempts - 1
	c.RetryWaitMin = logoFetchBaseWait
	c.RetryWaitMax = logoFetchBaseWait * logoFetchAttempts
	c.Backoff = linearBackoff
	c.Logger = nil
	return &AssetResolver{client: c, log: log}
}

// linearBackoff waits base x attempt between tries.
func linearBackoff(min, max time.Duration, attemptNum int, resp *http.Response) time.Duration {
	d := min * time.Duration(attemptNum+1)
	if d > max {
		return max
	}
	return d
}

// Resolve returns the decoded logo for the company, or nil when none could
// be obtained. When the profile has no logo URL configured, a generated
// avatar keyed by the company name is fetched instead.
func (r *AssetResolver) Resolve(ctx context.Context, companyName, logoURL string) *LogoAsset {
	target := logoURL
	if target == "" {
		target = avatarURL(companyName)
	}

	data, err := r.fetch(ctx, target)
	if err != nil {
		r.log.Warn("logo fetch failed, rendering without logo",
			zap.String("url", target), zap.Error(err))
		return nil
	}

	format, err := sniffImageFormat(data)
	if err != nil {
		r.log.Warn("logo has unsupported image format, rendering without logo",
			zap.String("url", target), zap.Error(err))
		return nil
	}
	return &LogoAsset{Data: data, Format: format}
}

func (r *AssetResolver) fetch(ctx context.Context, target string) ([]byte, error) {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("build logo request: %w", err)
	}
	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch logo: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetch logo: unexpected status %d", resp.StatusCode)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, logoMaxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read logo body: %w", err)
	}
	if len(data) > logoMaxBytes {
		return nil, fmt.Errorf("fetch logo: body exceeds %d bytes", logoMaxBytes)
	}
	return data, nil
}

// sniffImageFormat checks the magic bytes and maps them onto the two raster
// formats the document surface can embed.
func sniffImageFormat(data []byte) (string, error) {
	kind, err := filetype.Match(data)
	if err != nil {
		return "", err
	}
	switch kind {
	case matchers.TypePng:
		return "PNG", nil
	case matchers.TypeJpeg:
		return "JPG", nil
	}
	return "", fmt.Errorf("unsupported image type %q", kind.Extension)
}

// avatarURL builds the fallback generated-avatar location for a company
// with no configured logo.
func avatarURL(companyName string) string {
	return "https://ui-avatars.com/api/?format=png&size=128&name=" + url.QueryEscape(companyName)
}
