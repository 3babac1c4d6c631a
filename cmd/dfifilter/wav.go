package main

import (
	"fmt"
	"math"
	"os"

	"github.com/cwbudde/algo-ctrl/dsp/core"
	"github.com/cwbudde/algo-ctrl/dsp/limit"
	"github.com/cwbudde/algo-ctrl/dsp/scale"
	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	log "github.com/sirupsen/logrus"
)

// wavPCMFormat is the WAVE_FORMAT_PCM audio format tag.
const wavPCMFormat = 1

// pcmOffset returns the value PCM silence is stored at. 8-bit WAV samples
// are unsigned, every wider depth is signed.
func pcmOffset(bitDepth int) float64 {
	if bitDepth == 8 {
		return math.Ldexp(1, 7)
	}
	return 0
}

// applyWAV filters inPath into outPath. Every channel gets its own filter
// instance; peak limits the output relative to full scale.
func applyWAV(inPath, outPath string, cfg designConfig, peak float64) error {
	clip := limit.NewLimiter(peak, -peak)
	if err := clip.Validate(); err != nil || !(peak > 0) || peak > 1 {
		return fmt.Errorf("limit %g: must be in (0, 1]", peak)
	}

	in, err := os.Open(inPath)
	if err != nil {
		return fmt.Errorf("failed to open input file: %w", err)
	}
	defer in.Close()

	decoder := wav.NewDecoder(in)
	if !decoder.IsValidFile() {
		return fmt.Errorf("invalid WAV file: %s", inPath)
	}

	pcm, err := decoder.FullPCMBuffer()
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", inPath, err)
	}

	channels := pcm.Format.NumChannels
	rate := pcm.Format.SampleRate
	bitDepth := int(decoder.BitDepth)
	if channels <= 0 || bitDepth <= 0 {
		return fmt.Errorf("unsupported WAV format: %d channels, %d bit", channels, bitDepth)
	}

	log.WithFields(log.Fields{
		"file":     inPath,
		"rate":     rate,
		"channels": channels,
		"bits":     bitDepth,
		"frames":   len(pcm.Data) / channels,
		"limitDB":  core.LinearToDB(peak),
	}).Info("filtering")

	filters := make([]sampleFilter, channels)
	for ch := range filters {
		if filters[ch], err = cfg.build(float64(rate)); err != nil {
			return err
		}
	}

	fullScale := math.Ldexp(1, bitDepth-1)
	offset := pcmOffset(bitDepth)
	frames := len(pcm.Data) / channels
	block := cfg.loop(float64(rate)).BlockSize

	var buf []float64
	clipped := 0
	for ch, f := range filters {
		for start := 0; start < frames; start += block {
			n := min(block, frames-start)
			buf = core.EnsureLen(buf, n)
			for i := range buf {
				buf[i] = float64(pcm.Data[(start+i)*channels+ch]) - offset
			}

			scale.ScaleBlock(buf, buf, fullScale, -fullScale, 1, -1)
			f.ProcessBlock(buf)
			for i, v := range buf {
				buf[i] = clip.Do(v)
				if buf[i] != v {
					clipped++
				}
			}
			scale.ScaleBlock(buf, buf, 1, -1, fullScale, -fullScale)

			for i, v := range buf {
				pcm.Data[(start+i)*channels+ch] = int(limit.Clamp(math.Round(v), -fullScale, fullScale-1) + offset)
			}
		}
	}

	if clipped > 0 {
		log.WithField("samples", clipped).Warn("output limited")
	}

	return writeWAV(outPath, pcm, rate, bitDepth, channels)
}

func writeWAV(path string, pcm *audio.IntBuffer, rate, bitDepth, channels int) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	enc := wav.NewEncoder(out, rate, bitDepth, channels, wavPCMFormat)
	if err := enc.Write(pcm); err != nil {
		_ = out.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := enc.Close(); err != nil {
		_ = out.Close()
		return fmt.Errorf("failed to finalize %s: %w", path, err)
	}

	log.WithField("file", path).Info("written")
	return out.Close()
}
