package drop

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"go.uber.org/zap"
)

// AudioLoader loads one-shot sounds and streamed music by asset name.
type AudioLoader interface {
	LoadSound(name string) (Sound, error)
	LoadMusic(name string) (Music, error)
}

// Sound is a short effect. Play is fire-and-forget; overlapping plays mix.
type Sound interface {
	Play()
	Close() error
}

// Music is a streamed track. Looping and volume take effect on the next
// Play, or immediately when already playing where the backend allows it.
type Music interface {
	SetLooping(loop bool)
	SetVolume(v float64)
	Play()
	Close() error
}

const defaultSampleRate = 44100

// EbitenAudio decodes MP3 assets from a filesystem into Ebitengine's audio
// context.
type EbitenAudio struct {
	ctx  *audio.Context
	fsys fs.FS
	log  *zap.Logger
}

// NewEbitenAudio returns an AudioLoader reading from fsys. The process-wide
// audio context is created at sampleRate on first use and reused afterwards.
func NewEbitenAudio(fsys fs.FS, sampleRate int, log *zap.Logger) *EbitenAudio {
	if sampleRate <= 0 {
		sampleRate = defaultSampleRate
	}
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(sampleRate)
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &EbitenAudio{ctx: ctx, fsys: fsys, log: log}
}

// decode reads and decodes an MP3 asset into a seekable PCM stream.
func (a *EbitenAudio) decode(name string) (*mp3.Stream, error) {
	data, err := fs.ReadFile(a.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	stream, err := mp3.DecodeF32(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	return stream, nil
}

// LoadSound fully decodes name so each Play can start a fresh player.
func (a *EbitenAudio) LoadSound(name string) (Sound, error) {
	stream, err := a.decode(name)
	if err != nil {
		return nil, err
	}
	pcm, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	return &ebitenSound{ctx: a.ctx, pcm: pcm}, nil
}

// LoadMusic decodes name as a stream. The player is built on Play so that
// SetLooping can choose between a plain and an infinitely looping source.
func (a *EbitenAudio) LoadMusic(name string) (Music, error) {
	stream, err := a.decode(name)
	if err != nil {
		return nil, err
	}
	return &ebitenMusic{ctx: a.ctx, name: name, stream: stream, volume: 1, log: a.log}, nil
}

// ebitenSound plays decoded PCM through a new player per Play.
type ebitenSound struct {
	ctx     *audio.Context
	pcm     []byte
	players []*audio.Player
	closed  bool
}

func (s *ebitenSound) Play() {
	if s.closed {
		return
	}
	s.prune()
	p := s.ctx.NewPlayerF32FromBytes(s.pcm)
	p.Play()
	s.players = append(s.players, p)
}

// prune closes players that finished playing.
func (s *ebitenSound) prune() {
	n := 0
	for _, p := range s.players {
		if p.IsPlaying() {
			s.players[n] = p
			n++
			continue
		}
		_ = p.Close()
	}
	clear(s.players[n:])
	s.players = s.players[:n]
}

func (s *ebitenSound) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	var firstErr error
	for _, p := range s.players {
		if err := p.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	s.players = nil
	s.pcm = nil
	return firstErr
}

// ebitenMusic streams a decoded track, optionally looping forever.
type ebitenMusic struct {
	ctx     *audio.Context
	name    string
	stream  *mp3.Stream
	player  *audio.Player
	looping bool
	volume  float64
	log     *zap.Logger
}

func (m *ebitenMusic) SetLooping(loop bool) {
	m.looping = loop
}

func (m *ebitenMusic) SetVolume(v float64) {
	m.volume = clamp01(v)
	if m.player != nil {
		m.player.SetVolume(m.volume)
	}
}

func (m *ebitenMusic) Play() {
	if m.stream == nil {
		return
	}
	if m.player == nil {
		var src io.Reader = m.stream
		if m.looping {
			src = audio.NewInfiniteLoopF32(m.stream, m.stream.Length())
		}
		p, err := m.ctx.NewPlayerF32(src)
		if err != nil {
			m.log.Warn("music player", zap.String("asset", m.name), zap.Error(err))
			return
		}
		m.player = p
	}
	m.player.SetVolume(m.volume)
	m.player.Play()
}

func (m *ebitenMusic) Close() error {
	m.stream = nil
	if m.player == nil {
		return nil
	}
	err := m.player.Close()
	m.player = nil
	return err
}
