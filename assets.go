package drop

import (
	"errors"
	"fmt"
	"image"
	_ "image/png" // register PNG decoder
	"io/fs"

	"github.com/hajimehoshi/ebiten/v2"
)

// ErrAssetLoad is wrapped by every error LoadAssets returns.
var ErrAssetLoad = errors.New("asset load failed")

// ImageLoader loads textures by asset name.
type ImageLoader interface {
	LoadTexture(name string) (Texture, error)
	ReleaseTexture(tex Texture)
}

// FSImageLoader decodes images from a filesystem.
type FSImageLoader struct {
	fsys fs.FS
}

// NewFSImageLoader returns an ImageLoader reading from fsys.
func NewFSImageLoader(fsys fs.FS) *FSImageLoader {
	return &FSImageLoader{fsys: fsys}
}

// LoadTexture decodes name and uploads it as an ebiten.Image.
func (l *FSImageLoader) LoadTexture(name string) (Texture, error) {
	f, err := l.fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", name, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	return ebiten.NewImageFromImage(img), nil
}

// ReleaseTexture frees the GPU memory held by tex.
func (l *FSImageLoader) ReleaseTexture(tex Texture) {
	if tex != nil {
		tex.Deallocate()
	}
}

// AssetNames lists the file names of every asset the game loads.
type AssetNames struct {
	Background string `toml:"background"`
	Bucket     string `toml:"bucket"`
	Drop       string `toml:"drop"`
	DropSound  string `toml:"drop_sound"`
	Music      string `toml:"music"`
}

// DefaultAssetNames returns the stock asset file names.
func DefaultAssetNames() AssetNames {
	return AssetNames{
		Background: "background.png",
		Bucket:     "bucket.png",
		Drop:       "drop.png",
		DropSound:  "drop.mp3",
		Music:      "music.mp3",
	}
}

// Assets holds the shared resources loaded once at startup.
type Assets struct {
	Background Texture
	Bucket     Texture
	Drop       Texture
	DropSound  Sound
	Music      Music

	images ImageLoader
}

// LoadAssets loads every asset in names. On failure, anything already loaded
// is released and the returned error wraps ErrAssetLoad.
func LoadAssets(names AssetNames, images ImageLoader, sounds AudioLoader) (*Assets, error) {
	a := &Assets{images: images}

	textures := []struct {
		name string
		dst  *Texture
	}{
		{names.Background, &a.Background},
		{names.Bucket, &a.Bucket},
		{names.Drop, &a.Drop},
	}
	for _, t := range textures {
		tex, err := images.LoadTexture(t.name)
		if err != nil {
			a.Release()
			return nil, fmt.Errorf("%w: texture %s: %w", ErrAssetLoad, t.name, err)
		}
		*t.dst = tex
	}

	snd, err := sounds.LoadSound(names.DropSound)
	if err != nil {
		a.Release()
		return nil, fmt.Errorf("%w: sound %s: %w", ErrAssetLoad, names.DropSound, err)
	}
	a.DropSound = snd

	mus, err := sounds.LoadMusic(names.Music)
	if err != nil {
		a.Release()
		return nil, fmt.Errorf("%w: music %s: %w", ErrAssetLoad, names.Music, err)
	}
	a.Music = mus

	return a, nil
}

// Release frees every loaded resource. Safe to call more than once.
func (a *Assets) Release() error {
	for _, tex := range []*Texture{&a.Background, &a.Bucket, &a.Drop} {
		if *tex != nil {
			a.images.ReleaseTexture(*tex)
			*tex = nil
		}
	}
	var errs []error
	if a.DropSound != nil {
		errs = append(errs, a.DropSound.Close())
		a.DropSound = nil
	}
	if a.Music != nil {
		errs = append(errs, a.Music.Close())
		a.Music = nil
	}
	return errors.Join(errs...)
}
