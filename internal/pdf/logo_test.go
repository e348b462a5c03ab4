package pdf

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var pngMagic = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 0, 0, 0, 0}
var jpegMagic = []byte{0xFF, 0xD8, 0xFF, 0xE0, 0, 0, 0, 0}

func fastResolver(t *testing.T) *AssetResolver {
	t.Helper()
	r := NewAssetResolver(zap.NewNop())
	r.client.RetryWaitMin = time.Millisecond
	r.client.RetryWaitMax = 5 * time.Millisecond
	return r
}

func TestResolveLogoPNG(t *testing.T) {
	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.Write(pngMagic)
	}))
	defer srv.Close()

	asset := fastResolver(t).Resolve(context.Background(), "Acme", srv.URL+"/logo.png")
	require.NotNil(t, asset)
	assert.Equal(t, "PNG", asset.Format)
	assert.Equal(t, 1, requests, "a successful fetch must not retry")
}

func TestResolveLogoJPEG(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(jpegMagic)
	}))
	defer srv.Close()

	asset := fastResolver(t).Resolve(context.Background(), "Acme", srv.URL)
	require.NotNil(t, asset)
	assert.Equal(t, "JPG", asset.Format)
}

// All three attempts failing degrades to "no logo", never to an error.
func TestResolveLogoRetriesThenDegrades(t *testing.T) {
	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	asset := fastResolver(t).Resolve(context.Background(), "Acme", srv.URL)
	assert.Nil(t, asset)
	assert.Equal(t, logoFetchAttempts, requests)
}

func TestResolveLogoUnsupportedFormat(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("GIF89a\x00\x00\x00\x00\x00"))
	}))
	defer srv.Close()

	asset := fastResolver(t).Resolve(context.Background(), "Acme", srv.URL)
	assert.Nil(t, asset, "non PNG/JPEG content must degrade to no logo")
}

func TestLinearBackoff(t *testing.T) {
	base := 100 * time.Millisecond
	assert.Equal(t, base, linearBackoff(base, time.Second, 0, nil))
	assert.Equal(t, 2*base, linearBackoff(base, time.Second, 1, nil))
	assert.Equal(t, 3*base, linearBackoff(base, time.Second, 2, nil))
	// Capped at max.
	assert.Equal(t, 250*time.Millisecond, linearBackoff(base, 250*time.Millisecond, 9, nil))
}

func TestAvatarURLFallback(t *testing.T) {
	u := avatarURL("Acme & Co")
	assert.True(t, strings.HasPrefix(u, "https://ui-avatars.com/api/"))
	assert.Contains(t, u, "Acme+%26+Co")
}

// A body over the size cap degrades to "no logo" even when its magic
// bytes look fine.
func TestResolveLogoOversizeDegrades(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(pngMagic)
		w.Write(make([]byte, logoMaxBytes))
	}))
	defer srv.Close()

	asset := fastResolver(t).Resolve(context.Background(), "Acme", srv.URL)
	assert.Nil(t, asset)
}
