// Package fonts resolves typefaces for rendering. Resolution degrades through
// a fixed chain and never fails: a caller always receives a usable font.Face.
package fonts

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/flopp/go-findfont"
	"github.com/golang/freetype/truetype"
	"github.com/rs/zerolog"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"server/internal/storage"
)

// Weight selects a face from the built-in family.
type Weight string

const (
	WeightBold     Weight = "bold"
	WeightSemiBold Weight = "semibold"
)

// primaryURLs and altURLs are the hosted Montserrat files tried before any
// system font.
var primaryURLs = map[Weight]string{
	WeightBold:     "https://raw.githubusercontent.com/googlefonts/Montserrat/main/fonts/ttf/Montserrat-Bold.ttf",
	WeightSemiBold: "https://raw.githubusercontent.com/googlefonts/Montserrat/main/fonts/ttf/Montserrat-SemiBold.ttf",
}

var altURLs = map[Weight]string{
	WeightBold:     "https://cdn.jsdelivr.net/fontsource/fonts/montserrat@latest/latin-700-normal.ttf",
	WeightSemiBold: "https://cdn.jsdelivr.net/fontsource/fonts/montserrat@latest/latin-600-normal.ttf",
}

// systemFontNames are looked up via the platform font directories when every
// remote source is unreachable.
var systemFontNames = []string{
	"DejaVuSans-Bold.ttf",
	"LiberationSans-Bold.ttf",
}

const maxFontBytes = 16 << 20

// Resolver downloads, caches and parses TrueType fonts. Parsed fonts are held
// in memory keyed by source URL; raw files are cached through the store so
// restarts do not re-download.
type Resolver struct {
	client  *http.Client
	log     zerolog.Logger
	store   *storage.FileStore
	primary map[Weight]string
	alt     map[Weight]string

	mu     sync.Mutex
	locks  map[string]*sync.Mutex
	parsed map[string]*truetype.Font
}

// NewResolver creates a Resolver backed by store. A nil store disables the
// on-disk cache but keeps the in-memory one.
func NewResolver(store *storage.FileStore, timeout time.Duration, log zerolog.Logger) *Resolver {
	r := &Resolver{
		client:  &http.Client{Timeout: timeout},
		log:     log,
		store:   store,
		primary: map[Weight]string{},
		alt:     map[Weight]string{},
		locks:   map[string]*sync.Mutex{},
		parsed:  map[string]*truetype.Font{},
	}
	for w, url := range primaryURLs {
		r.primary[w] = url
	}
	for w, url := range altURLs {
		r.alt[w] = url
	}
	return r
}

// SetRemote replaces the hosted sources for a weight. Empty strings keep the
// current URL. Call before serving traffic; the maps are not locked.
func (r *Resolver) SetRemote(weight Weight, primaryURL, altURL string) {
	if primaryURL != "" {
		r.primary[weight] = primaryURL
	}
	if altURL != "" {
		r.alt[weight] = altURL
	}
}

// Face returns a face at the requested pixel size. A non-empty customURL is
// tried first, then the hosted family, then system fonts. The builtin bitmap
// face is the last resort so rendering proceeds even fully offline.
func (r *Resolver) Face(ctx context.Context, customURL string, weight Weight, size float64) font.Face {
	urls := make([]string, 0, 3)
	if customURL != "" {
		urls = append(urls, customURL)
	}
	urls = append(urls, r.primary[weight], r.alt[weight])

	for _, url := range urls {
		if url == "" {
			continue
		}
		f, err := r.font(ctx, url)
		if err != nil {
			r.log.Warn().Err(err).Str("url", url).Msg("font source unavailable")
			continue
		}
		return truetype.NewFace(f, &truetype.Options{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingFull,
		})
	}

	if f := r.systemFont(); f != nil {
		return truetype.NewFace(f, &truetype.Options{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingFull,
		})
	}

	r.log.Warn().Msg("no TrueType font available, using builtin bitmap face")
	return basicfont.Face7x13
}

// font returns the parsed font for a URL, populating both cache tiers at most
// once per URL even under concurrent callers.
func (r *Resolver) font(ctx context.Context, url string) (*truetype.Font, error) {
	r.mu.Lock()
	if f, ok := r.parsed[url]; ok {
		r.mu.Unlock()
		return f, nil
	}
	lock, ok := r.locks[url]
	if !ok {
		lock = &sync.Mutex{}
		r.locks[url] = lock
	}
	r.mu.Unlock()

	lock.Lock()
	defer lock.Unlock()

	r.mu.Lock()
	if f, ok := r.parsed[url]; ok {
		r.mu.Unlock()
		return f, nil
	}
	r.mu.Unlock()

	data, err := r.fetchBytes(ctx, url)
	if err != nil {
		return nil, err
	}
	f, err := truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("fonts: parse %s: %w", url, err)
	}

	r.mu.Lock()
	r.parsed[url] = f
	r.mu.Unlock()
	return f, nil
}

// fetchBytes consults the on-disk cache before going to the network. Cache
// keys are content addressed by URL so distinct custom fonts never collide.
func (r *Resolver) fetchBytes(ctx context.Context, url string) ([]byte, error) {
	key := cacheKey(url)
	if r.store != nil {
		if data, err := r.store.Read(ctx, key); err == nil {
			return data, nil
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("fonts: build request: %w", err)
	}
	// Some font CDNs reject requests without a browser user agent.
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fonts: download: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fonts: download %s: status %d", url, resp.StatusCode)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxFontBytes))
	if err != nil {
		return nil, fmt.Errorf("fonts: download body: %w", err)
	}

	if r.store != nil {
		if _, err := r.store.Write(ctx, key, data); err != nil {
			r.log.Warn().Err(err).Msg("font cache write failed")
		}
	}
	return data, nil
}

// systemFont scans the platform font directories for a known sans face.
func (r *Resolver) systemFont() *truetype.Font {
	for _, name := range systemFontNames {
		path, err := findfont.Find(name)
		if err != nil {
			continue
		}

		r.mu.Lock()
		if f, ok := r.parsed[path]; ok {
			r.mu.Unlock()
			return f
		}
		r.mu.Unlock()

		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		f, err := truetype.Parse(data)
		if err != nil {
			r.log.Warn().Err(err).Str("path", path).Msg("system font unusable")
			continue
		}

		r.mu.Lock()
		r.parsed[path] = f
		r.mu.Unlock()
		return f
	}
	return nil
}

func cacheKey(url string) string {
	sum := sha256.Sum256([]byte(url))
	return hex.EncodeToString(sum[:]) + ".ttf"
}
