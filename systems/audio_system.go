package systems

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"

	"crypthack/ecs"
	"crypthack/generation"
)

// AudioSystem plays short cues for generation progress and optional background music
type AudioSystem struct {
	audioContext *audio.Context
	bgmPlayer    *audio.Player
	bgmFile      *os.File
	volume       float64
	sampleRate   int
	muted        bool

	cues map[string][]byte
}

// NewAudioSystem creates an audio system. Only one may exist per process.
func NewAudioSystem(sampleRate int) *AudioSystem {
	return &AudioSystem{
		audioContext: audio.NewContext(sampleRate),
		volume:       0.5,
		sampleRate:   sampleRate,
		cues: map[string][]byte{
			"room":     synthTone(660, 0.06, sampleRate),
			"dead_end": synthTone(330, 0.04, sampleRate),
			"restart":  synthTone(110, 0.25, sampleRate),
			"playing":  synthTone(880, 0.3, sampleRate),
		},
	}
}

// Initialize subscribes the cues to generation events
func (s *AudioSystem) Initialize(world *ecs.World) {
	world.GetEventManager().Subscribe(EventGenerationStep, func(e ecs.Event) {
		switch e.(GenerationStepEvent).Outcome {
		case generation.OutcomeRoom:
			s.PlayCue("room")
		case generation.OutcomeDeadEnd:
			s.PlayCue("dead_end")
		case generation.OutcomeRestarted:
			s.PlayCue("restart")
		}
	})
	world.GetEventManager().Subscribe(EventPhaseChanged, func(e ecs.Event) {
		if e.(PhaseChangedEvent).To == generation.PhasePlaying {
			s.PlayCue("playing")
		}
	})
}

// PlayCue plays a synthesized cue by name. Unknown names are ignored.
func (s *AudioSystem) PlayCue(name string) {
	pcm, ok := s.cues[name]
	if !ok || s.muted {
		return
	}
	player := s.audioContext.NewPlayerFromBytes(pcm)
	player.SetVolume(s.volume)
	player.Play()
}

// SetMuted silences cues and pauses background music
func (s *AudioSystem) SetMuted(muted bool) {
	s.muted = muted
	if s.bgmPlayer == nil {
		return
	}
	if muted {
		s.bgmPlayer.Pause()
	} else {
		s.bgmPlayer.Play()
	}
}

// Muted reports whether audio is silenced
func (s *AudioSystem) Muted() bool {
	return s.muted
}

// PlayBGM loops an mp3 or ogg file as background music
func (s *AudioSystem) PlayBGM(path string) error {
	s.StopBGM()

	var decode func(io.Reader) (io.ReadSeeker, int64, error)
	switch {
	case strings.HasSuffix(path, ".mp3"):
		decode = func(r io.Reader) (io.ReadSeeker, int64, error) {
			stream, err := mp3.DecodeWithSampleRate(s.sampleRate, r)
			if err != nil {
				return nil, 0, err
			}
			return stream, stream.Length(), nil
		}
	case strings.HasSuffix(path, ".ogg"):
		decode = func(r io.Reader) (io.ReadSeeker, int64, error) {
			stream, err := vorbis.DecodeWithSampleRate(s.sampleRate, r)
			if err != nil {
				return nil, 0, err
			}
			return stream, stream.Length(), nil
		}
	default:
		return fmt.Errorf("unsupported audio format: %s", path)
	}

	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open audio file: %w", err)
	}
	stream, length, err := decode(file)
	if err != nil {
		file.Close()
		return fmt.Errorf("failed to decode audio file: %w", err)
	}

	player, err := s.audioContext.NewPlayer(audio.NewInfiniteLoop(stream, length))
	if err != nil {
		file.Close()
		return fmt.Errorf("failed to create audio player: %w", err)
	}

	s.bgmFile = file
	s.bgmPlayer = player
	s.bgmPlayer.SetVolume(s.volume)
	if !s.muted {
		s.bgmPlayer.Play()
	}
	return nil
}

// StopBGM stops the background music
func (s *AudioSystem) StopBGM() {
	if s.bgmPlayer != nil {
		s.bgmPlayer.Close()
		s.bgmPlayer = nil
	}
	if s.bgmFile != nil {
		s.bgmFile.Close()
		s.bgmFile = nil
	}
}

// Close releases the background music
func (s *AudioSystem) Close() {
	s.StopBGM()
}

// synthTone renders a sine wave with a linear fade out as 16 bit stereo
// little endian PCM, the format audio.Context players expect
func synthTone(freq, seconds float64, sampleRate int) []byte {
	frames := int(seconds * float64(sampleRate))
	pcm := make([]byte, frames*4)
	for i := 0; i < frames; i++ {
		fade := 1 - float64(i)/float64(frames)
		v := math.Sin(2*math.Pi*freq*float64(i)/float64(sampleRate)) * fade * 0.3
		sample := uint16(int16(v * math.MaxInt16))
		binary.LittleEndian.PutUint16(pcm[i*4:], sample)
		binary.LittleEndian.PutUint16(pcm[i*4+2:], sample)
	}
	return pcm
}
