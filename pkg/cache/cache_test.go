package cache

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"
)

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()
	defer c.Close()

	if err := c.Set(ctx, "key", []byte("value"), time.Hour); err != nil {
		t.Errorf("Set error: %v", err)
	}
	data, hit, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit || data != nil {
		t.Error("NullCache should never hit")
	}
	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete error: %v", err)
	}
}

func TestFileCache(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}

	if _, hit, _ := c.Get(ctx, "missing"); hit {
		t.Error("unexpected hit for missing key")
	}

	if err := c.Set(ctx, "box", []byte("<svg/>"), time.Hour); err != nil {
		t.Fatalf("Set: %v", err)
	}
	data, hit, err := c.Get(ctx, "box")
	if err != nil || !hit {
		t.Fatalf("Get = %v, %v", hit, err)
	}
	if string(data) != "<svg/>" {
		t.Errorf("data = %q", data)
	}

	if err := c.Delete(ctx, "box"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "box"); hit {
		t.Error("hit after Delete")
	}
	if err := c.Delete(ctx, "box"); err != nil {
		t.Errorf("Delete of absent key: %v", err)
	}
}

func TestFileCacheExpiry(t *testing.T) {
	ctx := context.Background()
	c, _ := NewFileCache(t.TempDir())

	if err := c.Set(ctx, "short", []byte("x"), time.Nanosecond); err != nil {
		t.Fatal(err)
	}
	time.Sleep(time.Millisecond)
	if _, hit, _ := c.Get(ctx, "short"); hit {
		t.Error("expired entry returned")
	}
	if _, err := os.Stat(c.path("short")); !os.IsNotExist(err) {
		t.Error("expired entry not removed")
	}

	if err := c.Set(ctx, "forever", []byte("x"), 0); err != nil {
		t.Fatal(err)
	}
	if _, hit, _ := c.Get(ctx, "forever"); !hit {
		t.Error("zero ttl should not expire")
	}
}

func TestFileCacheCorruptEntry(t *testing.T) {
	ctx := context.Background()
	c, _ := NewFileCache(t.TempDir())
	_ = c.Set(ctx, "k", []byte("x"), 0)

	if err := os.WriteFile(c.path("k"), []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, hit, err := c.Get(ctx, "k"); hit || err != nil {
		t.Errorf("corrupt entry: hit=%v err=%v", hit, err)
	}
}

func TestFileCacheClear(t *testing.T) {
	ctx := context.Background()
	c, _ := NewFileCache(t.TempDir())
	_ = c.Set(ctx, "a", []byte("1"), 0)
	_ = c.Set(ctx, "b", []byte("2"), 0)

	if err := c.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	for _, k := range []string{"a", "b"} {
		if _, hit, _ := c.Get(ctx, k); hit {
			t.Errorf("%s survived Clear", k)
		}
	}
	if _, err := os.Stat(c.Dir()); err != nil {
		t.Errorf("root missing after Clear: %v", err)
	}
}

func TestFetch(t *testing.T) {
	ctx := context.Background()
	c, _ := NewFileCache(t.TempDir())

	calls := 0
	render := func() ([]byte, error) {
		calls++
		return []byte("png"), nil
	}

	for i := 0; i < 2; i++ {
		data, hit, err := Fetch(ctx, c, "k", "artifact", 0, render)
		if err != nil || string(data) != "png" {
			t.Fatalf("Fetch = %q, %v", data, err)
		}
		if hit != (i == 1) {
			t.Errorf("call %d: hit = %v", i, hit)
		}
	}
	if calls != 1 {
		t.Errorf("render called %d times, want 1", calls)
	}

	boom := errors.New("boom")
	if _, _, err := Fetch(ctx, c, "other", "artifact", 0, func() ([]byte, error) { return nil, boom }); !errors.Is(err, boom) {
		t.Errorf("Fetch error = %v", err)
	}
	if _, hit, _ := c.Get(ctx, "other"); hit {
		t.Error("failed render should not be cached")
	}
}

func TestHash(t *testing.T) {
	h1 := Hash([]byte("hello"))
	if h1 != Hash([]byte("hello")) {
		t.Error("Hash should be deterministic")
	}
	if h1 == Hash([]byte("world")) {
		t.Error("Different inputs should produce different hashes")
	}
	if len(h1) != 64 {
		t.Errorf("Hash length should be 64, got %d", len(h1))
	}
}

func TestDefaultKeyer(t *testing.T) {
	k := NewDefaultKeyer()

	svg := k.ArtifactKey("Option", ArtifactKeyOpts{Kind: "interface", Format: "svg", Methods: true})
	png := k.ArtifactKey("Option", ArtifactKeyOpts{Kind: "interface", Format: "png", Methods: true})
	if svg == png {
		t.Error("format should change the key")
	}
	noMethods := k.ArtifactKey("Option", ArtifactKeyOpts{Kind: "interface", Format: "svg"})
	if svg == noMethods {
		t.Error("section toggles should change the key")
	}
	if svg != k.ArtifactKey("Option", ArtifactKeyOpts{Kind: "interface", Format: "svg", Methods: true}) {
		t.Error("ArtifactKey should be deterministic")
	}

	if got := k.CatalogKey([]byte("x")); got != "catalog:"+Hash([]byte("x")) {
		t.Errorf("CatalogKey = %s", got)
	}
}

func TestArtifactKeyFields(t *testing.T) {
	k := NewDefaultKeyer()
	base := ArtifactKeyOpts{Kind: "class", Format: "svg", Attributes: true, Methods: true, Notes: true, Padding: 10, TextHeight: 10, Margin: 10}

	tests := []struct {
		name   string
		change func(*ArtifactKeyOpts)
	}{
		{"padding", func(o *ArtifactKeyOpts) { o.Padding = 4 }},
		{"text height", func(o *ArtifactKeyOpts) { o.TextHeight = 12 }},
		{"margin", func(o *ArtifactKeyOpts) { o.Margin = 50 }},
		{"width", func(o *ArtifactKeyOpts) { o.Width = 200 }},
		{"scale", func(o *ArtifactKeyOpts) { o.Scale = 3 }},
		{"kind", func(o *ArtifactKeyOpts) { o.Kind = "interface" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := base
			tt.change(&o)
			if k.ArtifactKey("Widget", o) == k.ArtifactKey("Widget", base) {
				t.Errorf("%s should change the key", tt.name)
			}
		})
	}
}

func TestScopedKeyerSeparatesScopes(t *testing.T) {
	opts := ArtifactKeyOpts{Format: "svg"}
	a := NewScopedKeyer(nil, Hash([]byte("old()"))[:16]+":")
	b := NewScopedKeyer(nil, Hash([]byte("renamed()"))[:16]+":")
	if a.ArtifactKey("Widget", opts) == b.ArtifactKey("Widget", opts) {
		t.Error("different catalog content should give different keys")
	}
}

func TestScopedKeyer(t *testing.T) {
	scoped := NewScopedKeyer(nil, "cli2:")
	inner := NewDefaultKeyer()

	opts := ArtifactKeyOpts{Format: "svg"}
	if got, want := scoped.ArtifactKey("Parser", opts), "cli2:"+inner.ArtifactKey("Parser", opts); got != want {
		t.Errorf("ArtifactKey = %s, want %s", got, want)
	}
	if got := scoped.CatalogKey([]byte("x")); got != "cli2:"+inner.CatalogKey([]byte("x")) {
		t.Errorf("CatalogKey = %s", got)
	}
}
