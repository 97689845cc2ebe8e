package ebitenhost

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/phanxgames/colorific"
)

func TestShotName(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"hello", "s_hello.png"},
		{"after-spawn", "s_after-spawn.png"},
		{"frame.01", "s_frame.01.png"},
		{"has spaces", "s_has_spaces.png"},
		{"path/to/thing", "s_path_to_thing.png"},
		{"back\\slash", "s_back_slash.png"},
		{"special!@#$%", "s_special_____.png"},
		{"héllo", "s_h_llo.png"},
		{"", "s_shot.png"},
		{"   ", "s_shot.png"},
		{"MixedCase123", "s_MixedCase123.png"},
	}
	for _, tt := range tests {
		if got := shotName("s", tt.in); got != tt.want {
			t.Errorf("shotName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestUnpremultiply(t *testing.T) {
	src := []byte{
		255, 0, 0, 255, // opaque red
		64, 32, 0, 128, // half-alpha orange
		0, 0, 0, 0, // transparent
	}
	dst := make([]byte, len(src))
	unpremultiply(dst, src)

	want := []byte{255, 0, 0, 255, 127, 63, 0, 128, 0, 0, 0, 0}
	for i := range want {
		if dst[i] != want[i] {
			t.Errorf("dst[%d] = %d, want %d", i, dst[i], want[i])
		}
	}
}

func TestSavePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shot.png")
	img := image.NewNRGBA(image.Rect(0, 0, 4, 3))
	if err := savePNG(path, img); err != nil {
		t.Fatalf("savePNG: %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	got, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := got.Bounds(); b.Dx() != 4 || b.Dy() != 3 {
		t.Errorf("bounds = %v, want 4x3", b)
	}
}

func TestSavePNGBadDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "shot.png")
	if err := savePNG(path, image.NewNRGBA(image.Rect(0, 0, 1, 1))); err == nil {
		t.Error("expected error for missing directory")
	}
}

func TestScreenshotQueue(t *testing.T) {
	s := &screenshotter{}
	s.Queue("a")
	s.Queue("b")
	if len(s.queue) != 2 || s.queue[0] != "a" || s.queue[1] != "b" {
		t.Errorf("queue = %v, want [a b]", s.queue)
	}
}

func TestFrameDelta(t *testing.T) {
	tests := []struct {
		in    time.Duration
		limit float64
		want  float64
	}{
		{16 * time.Millisecond, 0, 0.016},
		{0, 0, 0},
		{-time.Second, 0, 0},
		{5 * time.Second, 0, 5},
		{5 * time.Second, 0.25, 0.25},
		{16 * time.Millisecond, 0.25, 0.016},
	}
	for _, tt := range tests {
		if got := frameDelta(tt.in, tt.limit); got != tt.want {
			t.Errorf("frameDelta(%v, %g) = %f, want %f", tt.in, tt.limit, got, tt.want)
		}
	}
}

func TestCentroidFan(t *testing.T) {
	star := colorific.StarPoints(10, 10, 8, 4, nil)
	verts, inds := buildCentroidFan(star, colorific.ColorWhite, nil, nil)
	if len(verts) != len(star)+1 {
		t.Fatalf("verts = %d, want %d", len(verts), len(star)+1)
	}
	if len(inds) != 3*len(star) {
		t.Fatalf("inds = %d, want %d", len(inds), 3*len(star))
	}
	if verts[0].DstX != 10 || verts[0].DstY != 10 {
		t.Errorf("centroid = (%f, %f), want (10, 10)", verts[0].DstX, verts[0].DstY)
	}
	// last triangle closes the outline back to the first point
	last := inds[len(inds)-3:]
	if last[0] != 0 || last[1] != uint16(len(star)) || last[2] != 1 {
		t.Errorf("last triangle = %v", last)
	}
	for _, i := range inds {
		if int(i) >= len(verts) {
			t.Fatalf("index %d out of range", i)
		}
	}
}

func TestCentroidFanDegenerate(t *testing.T) {
	verts, inds := buildCentroidFan([]colorific.Vec2{{X: 0, Y: 0}, {X: 1, Y: 1}}, colorific.ColorWhite, nil, nil)
	if len(verts) != 0 || len(inds) != 0 {
		t.Errorf("got %d verts %d inds, want none", len(verts), len(inds))
	}
}
