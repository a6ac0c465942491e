package translit

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	svcerr "github.com/indictext/lipi/internal/errors"
	"github.com/indictext/lipi/internal/script"
)

// fakeBackend records the arguments of the last call.
type fakeBackend struct {
	src, tgt, text string
	out            string
	err            error
}

func (f *fakeBackend) Transliterate(_ context.Context, src, tgt, text string) (string, error) {
	f.src, f.tgt, f.text = src, tgt, text
	return f.out, f.err
}

func newTestResolver(b Backend) *Resolver {
	return NewResolver(b, script.NewClassifier(script.DefaultCatalog()))
}

func TestResolveNoBackendConfigured(t *testing.T) {
	r := newTestResolver(nil)

	_, err := r.Resolve(context.Background(), "Devanagari", "Tamil", "नमस्ते")
	if svcerr.CodeOf(err) != svcerr.CodeTranslitUnavailable {
		t.Fatalf("expected TRANSLIT_UNAVAILABLE, got %v", err)
	}
}

func TestResolveUpgradesSentinelHint(t *testing.T) {
	b := &fakeBackend{out: "namaste"}
	r := newTestResolver(b)

	out, err := r.Resolve(context.Background(), script.ISO, "Tamil", "नमस्ते")
	if err != nil {
		t.Fatal(err)
	}
	if out != "namaste" {
		t.Errorf("backend output must pass through unchanged, got %q", out)
	}
	if b.src != "Devanagari" {
		t.Errorf("expected upgraded source Devanagari, got %q", b.src)
	}
	if b.tgt != "Tamil" || b.text != "नमस्ते" {
		t.Errorf("target and text must be delegated verbatim, got %q %q", b.tgt, b.text)
	}
}

func TestResolveSentinelStaysForLatinText(t *testing.T) {
	b := &fakeBackend{out: "x"}
	r := newTestResolver(b)

	if _, err := r.Resolve(context.Background(), script.ISO, "Devanagari", "namaste"); err != nil {
		t.Fatal(err)
	}
	if b.src != script.ISO {
		t.Errorf("Latin text must keep the ISO hint, got %q", b.src)
	}
}

func TestResolveSameScriptUpgrade(t *testing.T) {
	// "ISO" hint with Tamil text targeting Tamil: the backend receives a
	// same-script call, which is its concern, not ours.
	b := &fakeBackend{out: "வணக்கம்"}
	r := newTestResolver(b)

	if _, err := r.Resolve(context.Background(), script.ISO, "Tamil", "வணக்கம்"); err != nil {
		t.Fatal(err)
	}
	if b.src != "Tamil" || b.tgt != "Tamil" {
		t.Errorf("expected (Tamil, Tamil), got (%q, %q)", b.src, b.tgt)
	}
}

func TestResolveNeverOverridesExplicitHint(t *testing.T) {
	// Even a wrong explicit hint wins over detection.
	b := &fakeBackend{out: "x"}
	r := newTestResolver(b)

	if _, err := r.Resolve(context.Background(), "Kannada", "Tamil", "नमस्ते"); err != nil {
		t.Fatal(err)
	}
	if b.src != "Kannada" {
		t.Errorf("explicit hint must not be overridden, got %q", b.src)
	}
}

func TestResolveWrapsBackendFailure(t *testing.T) {
	backendErr := errors.New("unsupported script pair")
	r := newTestResolver(&fakeBackend{err: backendErr})

	_, err := r.Resolve(context.Background(), "Devanagari", "Tamil", "नमस्ते")
	if svcerr.CodeOf(err) != svcerr.CodeTranslitFailed {
		t.Fatalf("expected TRANSLIT_FAILED, got %v", err)
	}
	if !errors.Is(err, backendErr) {
		t.Errorf("expected wrapped backend error, got %v", err)
	}
}

func TestClientRoundTrip(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("source") != "Devanagari" || q.Get("target") != "Tamil" {
			t.Errorf("unexpected query %v", q)
		}
		if q.Get("text") != "नमस्ते" {
			t.Errorf("unexpected text %q", q.Get("text"))
		}
		w.Write([]byte("நமஸ்தே"))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second)
	out, err := c.Transliterate(context.Background(), "Devanagari", "Tamil", "नमस्ते")
	if err != nil {
		t.Fatal(err)
	}
	if out != "நமஸ்தே" {
		t.Errorf("unexpected output %q", out)
	}
}

func TestClientErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "unknown script: Klingon", http.StatusBadRequest)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second)
	_, err := c.Transliterate(context.Background(), "Klingon", "Tamil", "x")
	if err == nil {
		t.Fatal("expected error for 400 response")
	}
}
