package drop

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"
	"testing/fstest"
)

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}
	img.Set(0, 0, color.NRGBA{R: 0x20, G: 0x40, B: 0x80, A: 0xff})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestFSImageLoader(t *testing.T) {
	fsys := fstest.MapFS{
		"bucket.png": {Data: encodePNG(t, 64, 32)},
		"broken.png": {Data: []byte("not a png")},
	}
	l := NewFSImageLoader(fsys)

	tex, err := l.LoadTexture("bucket.png")
	if err != nil {
		t.Fatal(err)
	}
	if b := tex.Bounds(); b.Dx() != 64 || b.Dy() != 32 {
		t.Errorf("size = %dx%d, want 64x32", b.Dx(), b.Dy())
	}
	l.ReleaseTexture(tex)
	l.ReleaseTexture(nil)

	tests := []struct {
		name string
		want string
	}{
		{"missing.png", "open missing.png"},
		{"broken.png", "decode broken.png"},
	}
	for _, tt := range tests {
		_, err := l.LoadTexture(tt.name)
		if err == nil || !strings.Contains(err.Error(), tt.want) {
			t.Errorf("LoadTexture(%q) error = %v, want containing %q", tt.name, err, tt.want)
		}
	}
}

func TestLoadAssets(t *testing.T) {
	images := newFakeImages()
	audio := newFakeAudio()
	a, err := LoadAssets(DefaultAssetNames(), images, audio)
	if err != nil {
		t.Fatal(err)
	}
	if a.Background == nil || a.Bucket == nil || a.Drop == nil {
		t.Error("textures not loaded")
	}
	if a.DropSound != audio.sound || a.Music != audio.music {
		t.Error("audio not loaded")
	}
	want := []string{"background.png", "bucket.png", "drop.png"}
	if strings.Join(images.loaded, ",") != strings.Join(want, ",") {
		t.Errorf("loaded = %v, want %v", images.loaded, want)
	}
}

func TestLoadAssetsReleasesOnFailure(t *testing.T) {
	images := newFakeImages()
	audio := newFakeAudio()
	audio.fail["music.mp3"] = true

	_, err := LoadAssets(DefaultAssetNames(), images, audio)
	if !errors.Is(err, ErrAssetLoad) {
		t.Fatalf("error = %v, want ErrAssetLoad", err)
	}
	if !strings.Contains(err.Error(), "music.mp3") {
		t.Errorf("error %q does not name the asset", err)
	}
	if images.released != 3 {
		t.Errorf("released %d textures, want 3", images.released)
	}
	if !audio.sound.closed {
		t.Error("drop sound not closed after partial load")
	}
}

func TestAssetsReleaseIdempotent(t *testing.T) {
	images := newFakeImages()
	audio := newFakeAudio()
	a, err := LoadAssets(DefaultAssetNames(), images, audio)
	if err != nil {
		t.Fatal(err)
	}
	if err := a.Release(); err != nil {
		t.Fatal(err)
	}
	if err := a.Release(); err != nil {
		t.Fatal(err)
	}
	if images.released != 3 {
		t.Errorf("released %d textures, want 3", images.released)
	}
	if !audio.music.closed {
		t.Error("music not closed")
	}
}
