package audio

import (
	"errors"
	"io"
	"sync"
	"testing"
)

type stubDecoder struct {
	name string
}

func (d *stubDecoder) Decode(io.Reader) (Source, error) {
	return newSilentSource(44100, 2, 100), nil
}

type failingDecoder struct{}

func (failingDecoder) Decode(io.Reader) (Source, error) {
	return nil, errors.New("decode failed")
}

func TestNewRegistry(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	if reg == nil {
		t.Fatal("NewRegistry() returned nil")
	}
	if reg.codecs == nil {
		t.Error("codecs map not initialized")
	}
	if reg.mtx == nil {
		t.Error("mutex not initialized")
	}
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	wav := &stubDecoder{name: "wav"}
	mp3 := &stubDecoder{name: "mp3"}
	reg.Register("wav", wav)
	reg.Register("mp3", mp3)

	cases := []struct {
		format string
		want   Decoder
		wantOK bool
	}{
		{"wav", wav, true},
		{"mp3", mp3, true},
		{"flac", nil, false},
		{"", nil, false},
	}

	for _, tc := range cases {
		got, ok := reg.Get(tc.format)
		if ok != tc.wantOK {
			t.Errorf("Get(%q) ok = %v, want %v", tc.format, ok, tc.wantOK)
		}
		if tc.wantOK && got != tc.want {
			t.Errorf("Get(%q) returned wrong decoder", tc.format)
		}
	}
}

func TestRegistry_Overwrite(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	first := &stubDecoder{name: "first"}
	second := &stubDecoder{name: "second"}

	reg.Register("wav", first)
	reg.Register("wav", second)

	got, ok := reg.Get("wav")
	if !ok {
		t.Fatal("Get() failed after overwrite")
	}
	if got != second {
		t.Error("Get() did not return the most recent registration")
	}
}

func TestRegistry_Formats(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	if got := reg.Formats(); len(got) != 0 {
		t.Errorf("Formats() on empty registry = %v, want empty", got)
	}

	reg.Register("wav", &stubDecoder{})
	reg.Register("ogg", &stubDecoder{})
	reg.Register("bad", failingDecoder{})

	formats := reg.Formats()
	if len(formats) != 3 {
		t.Fatalf("Formats() returned %d entries, want 3", len(formats))
	}
	seen := make(map[string]bool, len(formats))
	for _, f := range formats {
		seen[f] = true
	}
	for _, want := range []string{"wav", "ogg", "bad"} {
		if !seen[want] {
			t.Errorf("Formats() missing %q", want)
		}
	}
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	dec := &stubDecoder{name: "test"}

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			reg.Register("format", dec)
		}()
		go func() {
			defer wg.Done()
			_, _ = reg.Get("format")
		}()
	}
	wg.Wait()

	got, ok := reg.Get("format")
	if !ok {
		t.Fatal("Get() failed after concurrent registration")
	}
	if got != dec {
		t.Error("Get() returned wrong decoder after concurrent registration")
	}
}

func BenchmarkRegistry_Register(b *testing.B) {
	reg := NewRegistry()
	dec := &stubDecoder{}

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		reg.Register("wav", dec)
	}
}

func BenchmarkRegistry_Get(b *testing.B) {
	reg := NewRegistry()
	reg.Register("wav", &stubDecoder{})

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = reg.Get("wav")
	}
}

func BenchmarkRegistry_ConcurrentRegisterGet(b *testing.B) {
	reg := NewRegistry()
	dec := &stubDecoder{}

	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			if i%2 == 0 {
				reg.Register("wav", dec)
			} else {
				_, _ = reg.Get("wav")
			}
			i++
		}
	})
}
