package imbe

import (
	"sync"

	"github.com/go-imbe/imbe/internal/bitparse"
	"github.com/go-imbe/imbe/internal/coef"
	"github.com/go-imbe/imbe/internal/enhance"
	"github.com/go-imbe/imbe/internal/gain"
	"github.com/go-imbe/imbe/internal/prevstate"
	"github.com/go-imbe/imbe/internal/spectral"
	"github.com/go-imbe/imbe/internal/unvoiced"
	"github.com/go-imbe/imbe/internal/voiced"
	"github.com/go-imbe/imbe/internal/window"
)

// Decoder reconstructs a stream of IMBE frames into 8kHz PCM audio. It owns
// the only state that survives between frames; create one with NewDecoder
// per independent audio channel.
type Decoder struct {
	cfg  Config
	prev *prevstate.Frame
	warm bool
}

// NewDecoder builds a Decoder in the Cold state (spec.md §4.11).
func NewDecoder(cfg Config) *Decoder {
	return &Decoder{
		cfg:  cfg.withDefaults(),
		prev: prevstate.Cold(),
	}
}

// Warm reports whether the decoder has completed at least one normal
// synthesis. Repeat and silence frames never clear this.
func (d *Decoder) Warm() bool {
	return d.warm
}

// Decode reconstructs one 20ms, 160-sample PCM frame from the given bit
// chunks and FEC error counts (spec.md §4.11 Frame driver).
func (d *Decoder) Decode(chunks Chunks, errs ErrorCounts) ([]float32, FrameStatus, error) {
	if !validChunks(chunks) {
		return nil, StatusNormal, ErrInvalidChunkWidth
	}

	bc := bitparse.Chunks(chunks)
	ec := enhance.ErrorCounts(errs)
	errState := enhance.NewErrors(ec, d.prev.ErrRate)

	boot := bitparse.ClassifyBootstrap(bc)

	switch {
	case boot.Kind == bitparse.BootstrapSilence:
		d.prev.ErrRate = errState.Rate
		d.cfg.Logger.Debug("silence frame", "kind", "bootstrap")
		return make([]float32, FrameSamples), StatusSilence, nil

	case boot.Kind == bitparse.BootstrapInvalid:
		d.cfg.Logger.Debug("repeat frame", "kind", "bootstrap-invalid")
		return d.repeat(), StatusRepeat, nil

	case errState.ShouldRepeat():
		d.cfg.Logger.Debug("repeat frame", "kind", "error-rate", "err_rate", errState.Rate)
		return d.repeat(), StatusRepeat, nil

	case errState.ShouldMute():
		d.prev.ErrRate = errState.Rate
		d.cfg.Logger.Info("muting frame", "err_rate", errState.Rate)
		return make([]float32, FrameSamples), StatusSilence, nil
	}

	params := bitparse.NewBaseParams(boot.Period)
	descrambled := bitparse.Descramble(bc, params)

	g := gain.New(descrambled.GainIndex, descrambled.Amps, params.Harmonics)
	coefs := coef.New(g, descrambled.Amps, params.Harmonics)

	spectrals := spectral.New(coefs, d.prev.Params.Harmonics, d.prev.SpectralAt, params.Harmonics)

	energy := enhance.NewFrameEnergy(spectrals, params.Fundamental, d.prev.Energy)
	enhanced := enhance.NewEnhancedSpectrals(spectrals, params.Fundamental, energy)

	voice := descrambled.Voice
	tau := enhance.Smooth(enhanced, &voice, errState, energy, d.prev.AmpThresh)

	curUnvoiced := unvoiced.New(params.Harmonics, params.Fundamental, voice, enhanced, window.Energy(), d.cfg.RNG)

	phaseBase := voiced.NewPhaseBase(d.prev.Params.Fundamental, params.Fundamental, d.prev.PhaseBase)
	phase := voiced.NewPhase(params.Harmonics, d.prev.Params.Harmonics, voice, phaseBase, d.cfg.RNG)

	synth := voiced.NewSynthesizer(
		params.Fundamental, d.prev.Params.Fundamental,
		params.Harmonics, d.prev.Params.Harmonics,
		voice, d.prev.Voice,
		enhanced, prevstate.EnhancedView{F: d.prev},
		phase, d.prev.Phase,
	)

	samples := d.combine(d.prev.UnvoicedDFT, curUnvoiced, synth)

	next := &prevstate.Frame{
		Params:      params,
		Voice:       voice,
		ErrRate:     errState.Rate,
		Energy:      energy.SE,
		AmpThresh:   tau,
		UnvoicedDFT: curUnvoiced,
		PhaseBase:   phaseBase,
		Phase:       phase,
	}
	for l := 1; l <= params.Harmonics; l++ {
		next.Spectrals[l-1] = spectrals.Get(l)
		next.Enhanced[l-1] = enhanced.Get(l)
	}
	d.prev = next
	d.warm = true

	return samples, StatusNormal, nil
}

// repeat reconstructs a frame purely from the previous frame's parameters,
// voicing, and enhanced spectrum: phase still advances and unvoiced noise
// still redraws, but PrevFrame is left untouched (spec.md §4.11 Repeat
// path).
func (d *Decoder) repeat() []float32 {
	p := d.prev

	unv := unvoiced.New(p.Params.Harmonics, p.Params.Fundamental, p.Voice, prevstate.EnhancedView{F: p}, window.Energy(), d.cfg.RNG)

	phaseBase := voiced.NewPhaseBase(p.Params.Fundamental, p.Params.Fundamental, p.PhaseBase)
	phase := voiced.NewPhase(p.Params.Harmonics, p.Params.Harmonics, p.Voice, phaseBase, d.cfg.RNG)

	synth := voiced.NewSynthesizer(
		p.Params.Fundamental, p.Params.Fundamental,
		p.Params.Harmonics, p.Params.Harmonics,
		p.Voice, p.Voice,
		prevstate.EnhancedView{F: p}, prevstate.EnhancedView{F: p},
		phase, p.Phase,
	)

	return d.combine(p.UnvoicedDFT, unv, synth)
}

// combine evaluates the WOLA combiner over all 160 samples, fanning the
// work out across d.cfg.Workers goroutines (spec.md §4.10, §5).
func (d *Decoder) combine(prevIDFT, curIDFT voiced.UnvoicedIDFT, synth voiced.Synthesizer) []float32 {
	out := make([]float32, FrameSamples)

	workers := d.cfg.Workers
	if FrameSamples%workers != 0 {
		workers = 1
	}
	chunkSize := FrameSamples / workers

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		start := w * chunkSize
		end := start + chunkSize
		go func(start, end int) {
			defer wg.Done()
			for n := start; n < end; n++ {
				out[n] = voiced.Combine(n, prevIDFT, curIDFT, synth)
			}
		}(start, end)
	}
	wg.Wait()

	return out
}
