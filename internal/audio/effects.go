package audio

import (
	"math/rand"
	"time"

	"github.com/gopxl/beep"
)

// Effect names the touch feedback sounds. Each theme picks from a subset of
// these on touch.
const (
	EffectPop     = "pop"
	EffectChime   = "chime"
	EffectBubbles = "bubbles"
	EffectTwinkle = "twinkle"
	EffectWhoosh  = "whoosh"
	EffectDing    = "ding"
	EffectBoing   = "boing"
	EffectBells   = "bells"
	EffectWater   = "water"
	EffectBirds   = "birds"
	EffectWind    = "wind"
	EffectRain    = "rain"
	EffectHarp    = "harp"
	EffectMeow    = "meow"
	EffectWoof    = "woof"
	EffectMoo     = "moo"
	EffectWhale   = "whale"
	EffectThunder = "thunder"
)

// chord plays several enveloped tones of the same duration, each offset by
// the stagger, mixed into one stream.
func chord(freqs []float64, duration, stagger time.Duration, vol float64, rate beep.SampleRate) beep.Streamer {
	streams := make([]beep.Streamer, 0, len(freqs))
	for i, f := range freqs {
		streams = append(streams, delayed(tone(f, duration, vol, rate), time.Duration(i)*stagger, rate))
	}
	return beep.Mix(streams...)
}

// glide is a frequency sweep shaped with a short attack and a tail release.
func glide(startFreq, endFreq float64, duration time.Duration, vol float64, rate beep.SampleRate) beep.Streamer {
	sw := NewSweep(startFreq, endFreq, duration, rate)
	shaped := NewEnvelope(sw, duration, 10*time.Millisecond, duration/3, rate)
	return newVolume(shaped, vol)
}

func popSound(rate beep.SampleRate) beep.Streamer {
	return glide(400, 100, 100*time.Millisecond, 0.3, rate)
}

func chimeSound(rate beep.SampleRate) beep.Streamer {
	return chord([]float64{523.25, 659.25, 783.99}, 800*time.Millisecond, 50*time.Millisecond, 0.15, rate)
}

func bubblesSound(rate beep.SampleRate) beep.Streamer {
	return chord([]float64{600, 800, 1000}, 150*time.Millisecond, 80*time.Millisecond, 0.1, rate)
}

func twinkleSound(rate beep.SampleRate) beep.Streamer {
	return chord([]float64{880, 1100, 880, 660}, 200*time.Millisecond, 100*time.Millisecond, 0.12, rate)
}

func whooshSound(rate beep.SampleRate) beep.Streamer {
	duration := 300 * time.Millisecond
	osc := NewOscillator(200, duration, WaveSaw, rate)
	shaped := NewEnvelope(osc, duration, 20*time.Millisecond, duration/2, rate)
	return newVolume(shaped, 0.1)
}

func dingSound(rate beep.SampleRate) beep.Streamer {
	return tone(880, 500*time.Millisecond, 0.2, rate)
}

func boingSound(rate beep.SampleRate) beep.Streamer {
	return beep.Seq(
		glide(150, 400, 100*time.Millisecond, 0.2, rate),
		glide(400, 200, 200*time.Millisecond, 0.2, rate),
	)
}

func bellsSound(rate beep.SampleRate) beep.Streamer {
	return chord([]float64{523.25, 587.33, 659.25, 783.99}, 400*time.Millisecond, 150*time.Millisecond, 0.12, rate)
}

func waterSound(rate beep.SampleRate) beep.Streamer {
	freqs := make([]float64, 5)
	for i := range freqs {
		freqs[i] = 300 + rand.Float64()*200
	}
	return chord(freqs, 200*time.Millisecond, 100*time.Millisecond, 0.08, rate)
}

func birdsSound(rate beep.SampleRate) beep.Streamer {
	return chord([]float64{1200, 1400, 1200, 1000, 1200}, 100*time.Millisecond, 80*time.Millisecond, 0.08, rate)
}

func windSound(rate beep.SampleRate) beep.Streamer {
	duration := 500 * time.Millisecond
	noise := NewOscillator(0, duration, WaveNoise, rate)
	shaped := NewEnvelope(noise, duration, 100*time.Millisecond, 300*time.Millisecond, rate)
	return newVolume(shaped, 0.1)
}

func rainSound(rate beep.SampleRate) beep.Streamer {
	freqs := make([]float64, 8)
	for i := range freqs {
		freqs[i] = 2000 + rand.Float64()*1000
	}
	return chord(freqs, 50*time.Millisecond, 50*time.Millisecond, 0.03, rate)
}

func harpSound(rate beep.SampleRate) beep.Streamer {
	return chord([]float64{261.63, 329.63, 392, 523.25}, 600*time.Millisecond, 100*time.Millisecond, 0.12, rate)
}

func meowSound(rate beep.SampleRate) beep.Streamer {
	return glide(700, 500, 300*time.Millisecond, 0.15, rate)
}

func woofSound(rate beep.SampleRate) beep.Streamer {
	return glide(200, 150, 150*time.Millisecond, 0.2, rate)
}

func mooSound(rate beep.SampleRate) beep.Streamer {
	return glide(150, 120, 500*time.Millisecond, 0.15, rate)
}

func whaleSound(rate beep.SampleRate) beep.Streamer {
	return beep.Seq(
		glide(100, 200, 500*time.Millisecond, 0.1, rate),
		glide(200, 80, 500*time.Millisecond, 0.1, rate),
	)
}

func thunderSound(rate beep.SampleRate) beep.Streamer {
	duration := 800 * time.Millisecond
	noise := NewOscillator(0, duration, WaveNoise, rate)
	shaped := NewEnvelope(noise, duration, 10*time.Millisecond, 700*time.Millisecond, rate)
	return newVolume(shaped, 0.2)
}

var effectBuilders = map[string]func(beep.SampleRate) beep.Streamer{
	EffectPop:     popSound,
	EffectChime:   chimeSound,
	EffectBubbles: bubblesSound,
	EffectTwinkle: twinkleSound,
	EffectWhoosh:  whooshSound,
	EffectDing:    dingSound,
	EffectBoing:   boingSound,
	EffectBells:   bellsSound,
	EffectWater:   waterSound,
	EffectWind:    windSound,
	EffectBirds:   birdsSound,
	EffectRain:    rainSound,
	EffectHarp:    harpSound,
	EffectMeow:    meowSound,
	EffectWoof:    woofSound,
	EffectMoo:     mooSound,
	EffectWhale:   whaleSound,
	EffectThunder: thunderSound,
}

// BuildEffect returns a freshly built streamer for the named effect, or nil
// for an unknown name. Streamers are single use.
func BuildEffect(name string, rate beep.SampleRate) beep.Streamer {
	builder, ok := effectBuilders[name]
	if !ok {
		return nil
	}
	return builder(rate)
}

// EffectNames lists every known effect name.
func EffectNames() []string {
	names := make([]string, 0, len(effectBuilders))
	for name := range effectBuilders {
		names = append(names, name)
	}
	return names
}
