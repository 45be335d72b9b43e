package fonts

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"server/internal/storage"
)

// pointRemotes redirects the hosted font URLs at a test server so no test
// touches the real CDNs.
func pointRemotes(r *Resolver, base string) {
	r.SetRemote(WeightBold, base+"/primary-bold.ttf", base+"/alt-bold.ttf")
	r.SetRemote(WeightSemiBold, base+"/primary-semibold.ttf", base+"/alt-semibold.ttf")
}

func newTestResolver(t *testing.T) *Resolver {
	t.Helper()
	store, err := storage.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore() error = %v", err)
	}
	return NewResolver(store, 2*time.Second, zerolog.Nop())
}

func TestFaceNeverNil(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	r := newTestResolver(t)
	pointRemotes(r, srv.URL)
	face := r.Face(context.Background(), srv.URL+"/custom.ttf", WeightBold, 48)
	if face == nil {
		t.Fatalf("Face() = nil, want a usable fallback face")
	}
}

func TestFaceDownloadsEachURLOnce(t *testing.T) {
	var hits int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&hits, 1)
		// 200 with junk bytes: cacheable download, unparseable font.
		w.Write([]byte("not a truetype file"))
	}))
	defer srv.Close()

	r := newTestResolver(t)
	pointRemotes(r, srv.URL)
	ctx := context.Background()
	r.Face(ctx, srv.URL+"/custom.ttf", WeightBold, 48)
	first := atomic.LoadInt64(&hits)
	if first != 3 {
		t.Fatalf("first resolution made %d requests, want 3 (custom, primary, alt)", first)
	}

	// Every URL is now in the on-disk cache, so a second resolution must not
	// touch the network at all.
	r.Face(ctx, srv.URL+"/custom.ttf", WeightBold, 48)
	if again := atomic.LoadInt64(&hits); again != first {
		t.Fatalf("second resolution made %d extra requests, want 0", again-first)
	}
}

func TestFontSingleFlight(t *testing.T) {
	var hits int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&hits, 1)
		time.Sleep(50 * time.Millisecond)
		w.Write([]byte("junk"))
	}))
	defer srv.Close()

	r := newTestResolver(t)
	url := srv.URL + "/shared.ttf"

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.font(context.Background(), url)
		}()
	}
	wg.Wait()

	if got := atomic.LoadInt64(&hits); got != 1 {
		t.Fatalf("concurrent resolution made %d requests, want 1", got)
	}
}

func TestCacheKeyDistinguishesURLs(t *testing.T) {
	a := cacheKey("https://example.com/a.ttf")
	b := cacheKey("https://example.com/b.ttf")
	if a == b {
		t.Fatalf("cacheKey collided for distinct URLs")
	}
}
