package game

import (
	"fmt"
	"io"
	"math"
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/oto/v2"
)

const (
	SampleRate   = 44100
	ChannelCount = 2
	BitDepth     = 0 // 32-bit float (oto.FormatFloat32LE)
)

// SoundKind identifies different sound effects.
type SoundKind int

const (
	SoundFirework SoundKind = iota
	SoundTheme
	SoundRegenerate
)

// AudioSystem manages procedural sound effects and the ambient pad.
type AudioSystem struct {
	ctx       *oto.Context
	ready     chan struct{}
	padPlayer oto.Player
}

var globalAudio *AudioSystem

// activeBursts limits simultaneous firework sounds to avoid speaker clipping.
var activeBursts int32
var burstVariantCounter uint64

var sfxVolume float64 = 0.5
var padVolume float64 = 0.06

// InitAudio initializes the audio system.
func InitAudio() error {
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, BitDepth)
	if err != nil {
		return fmt.Errorf("audio context: %w", err)
	}
	globalAudio = &AudioSystem{ctx: ctx, ready: ready}
	return nil
}

func audioReady() bool {
	if globalAudio == nil {
		return false
	}
	select {
	case <-globalAudio.ready:
		return true
	default:
		return false
	}
}

// PlaySound plays a procedurally generated sound effect. It is a no-op
// until the device is ready or when audio is disabled.
func PlaySound(kind SoundKind) {
	if !audioReady() {
		return
	}
	// Limit simultaneous bursts to 3.
	if kind == SoundFirework {
		if atomic.LoadInt32(&activeBursts) >= 3 {
			return
		}
		atomic.AddInt32(&activeBursts, 1)
	}
	samples := generateSound(kind)
	if len(samples) == 0 {
		if kind == SoundFirework {
			atomic.AddInt32(&activeBursts, -1)
		}
		return
	}
	go func() {
		if kind == SoundFirework {
			defer atomic.AddInt32(&activeBursts, -1)
		}
		reader := &soundReader{data: samples}
		player := globalAudio.ctx.NewPlayer(reader)
		player.SetVolume(sfxVolume)
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		player.Close()
	}()
}

type soundReader struct {
	data []byte
	pos  int
}

func (r *soundReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}

// putStereoF32 writes a [-1,1] sample as float32 LE to both stereo channels at frame i.
func putStereoF32(buf []byte, i int, sample float64) {
	v := math.Float32bits(float32(sample))
	buf[i*8] = byte(v)
	buf[i*8+1] = byte(v >> 8)
	buf[i*8+2] = byte(v >> 16)
	buf[i*8+3] = byte(v >> 24)
	buf[i*8+4] = byte(v)
	buf[i*8+5] = byte(v >> 8)
	buf[i*8+6] = byte(v >> 16)
	buf[i*8+7] = byte(v >> 24)
}

// softSat applies gentle tanh-like saturation.
func softSat(x float64) float64 {
	if x > 1.0 {
		return 1.0 - 0.5/(x)
	}
	if x < -1.0 {
		return -1.0 + 0.5/(-x)
	}
	return x - x*x*x/3.0
}

// adsr returns an envelope at normalized progress [0,1].
// attack/decay/release are fractions of the total duration.
func adsr(progress, attack, decay, sustain, release float64) float64 {
	switch {
	case progress < attack:
		return progress / attack
	case progress < attack+decay:
		return 1.0 - (progress-attack)/decay*(1.0-sustain)
	case progress < 1.0-release:
		return sustain
	default:
		return sustain * (1.0 - (progress-(1.0-release))/release)
	}
}

// fm returns an FM-synthesized sample.
// carrier: base frequency, modRatio: modulator/carrier ratio, modIdx: modulation depth.
func fm(t, carrier, modRatio, modIdx float64) float64 {
	mod := math.Sin(2 * math.Pi * carrier * modRatio * t)
	return math.Sin(2*math.Pi*carrier*t + modIdx*mod)
}

// lcg advances an LCG seed and returns a noise sample in [-1,1].
func lcg(seed *uint64) float64 {
	*seed = *seed*6364136223846793005 + 1442695040888963407
	return float64(int64(*seed>>33)-int64(1<<30)) / float64(1<<30)
}

// makeBuf allocates a stereo float32 buffer for n samples.
func makeBuf(n int) []byte { return make([]byte, n*8) }

// ---- Sound effects -------------------------------------------------------

func generateSound(kind SoundKind) []byte {
	switch kind {
	case SoundFirework:
		return genFirework()
	case SoundTheme:
		return genChime()
	case SoundRegenerate:
		return genSweep()
	}
	return nil
}

// genFirework: rising whistle into a crackling burst.
func genFirework() []byte {
	whistle := int(0.22 * SampleRate)
	burst := int(0.45 * SampleRate)
	n := whistle + burst
	buf := makeBuf(n)
	seed := atomic.AddUint64(&burstVariantCounter, 1) ^ uint64(time.Now().UnixNano())
	phase := 0.0
	lp := 0.0
	for i := 0; i < n; i++ {
		var s float64
		if i < whistle {
			p := float64(i) / float64(whistle)
			freq := 900 + 1700*p
			phase += 2 * math.Pi * freq / SampleRate
			s = math.Sin(phase) * 0.18 * p
		} else {
			p := float64(i-whistle) / float64(burst)
			raw := lcg(&seed)
			lp = lp*0.8 + raw*0.2
			// Sparse crackle on top of a decaying noise body.
			crackle := 0.0
			if lcg(&seed) > 0.96 {
				crackle = lcg(&seed) * 0.6
			}
			s = (lp*0.7 + crackle) * math.Exp(-p*5.5)
			if p < 0.03 {
				s += lcg(&seed) * (1 - p/0.03) * 0.8
			}
		}
		putStereoF32(buf, i, softSat(s*0.9))
	}
	return buf
}

// genChime: short ascending FM bell arpeggio.
func genChime() []byte {
	freqs := []float64{659.25, 783.99, 987.77} // E5 G5 B5
	noteLen := SampleRate * 60 / 1000
	tail := int(0.2 * SampleRate)
	total := len(freqs)*noteLen + tail
	mix := make([]float64, total)

	for fi, freq := range freqs {
		start := fi * noteLen
		dur := total - start
		for j := 0; j < dur; j++ {
			t := float64(start+j) / SampleRate
			np := float64(j) / float64(dur)
			env := adsr(np, 0.004, 0.5, 0.05, 0.4)
			mix[start+j] += fm(t, freq, 3.5, 4.0*env) * env * 0.3
		}
	}
	buf := makeBuf(total)
	for i, s := range mix {
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genSweep: descending FM swoosh for a freshly built skyline.
func genSweep() []byte {
	n := int(0.5 * SampleRate)
	buf := makeBuf(n)
	phase := 0.0
	for i := 0; i < n; i++ {
		p := float64(i) / float64(n)
		freq := 440 * math.Pow(0.25, p)
		phase += 2 * math.Pi * freq / SampleRate
		env := adsr(p, 0.05, 0.3, 0.5, 0.4)
		mod := math.Sin(phase*1.5) * 2.0 * env
		s := math.Sin(phase+mod) * env * 0.3
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// ---- Ambient pad ---------------------------------------------------------

type padReader struct {
	t     float64
	chord int
}

// Am7, Fmaj7, Cmaj7, G
var padChords = [][]float64{
	{110.0, 130.8, 164.8, 196.0},
	{87.3, 110.0, 130.8, 164.8},
	{130.8, 164.8, 196.0, 246.9},
	{98.0, 123.5, 146.8, 196.0},
}

const padChordLen = 8.0 // seconds per chord

// fmPad returns a slowly detuned FM pad sample for a chord.
func fmPad(t float64, chord []float64, env float64) float64 {
	s := 0.0
	detunes := [4]float64{-0.004, -0.001, 0.002, 0.005}
	for _, freq := range chord {
		for _, d := range detunes {
			f := freq * (1 + d)
			vib := 1 + 0.003*math.Sin(2*math.Pi*(0.23+f*0.0007)*t)
			s += fm(t, f*vib, 1.45, 0.75*env) * 0.048
		}
	}
	return softSat(s)
}

func (m *padReader) Read(p []byte) (int, error) {
	samples := len(p) / 8
	for i := 0; i < samples; i++ {
		m.chord = int(m.t/padChordLen) % len(padChords)
		// Swell within each chord.
		local := math.Mod(m.t, padChordLen) / padChordLen
		env := 0.6 + 0.4*math.Sin(math.Pi*local)
		putStereoF32(p, i, fmPad(m.t, padChords[m.chord], env))
		m.t += 1.0 / SampleRate
	}
	return samples * 8, nil
}

// StartAmbient loops the background pad.
func StartAmbient() {
	if !audioReady() {
		return
	}
	if globalAudio.padPlayer != nil {
		globalAudio.padPlayer.Close()
	}
	player := globalAudio.ctx.NewPlayer(&padReader{})
	player.SetVolume(padVolume)
	globalAudio.padPlayer = player
	player.Play()
}

// StopAudio closes the pad player.
func StopAudio() {
	if globalAudio == nil || globalAudio.padPlayer == nil {
		return
	}
	globalAudio.padPlayer.Close()
	globalAudio.padPlayer = nil
}
