// Package generation drives the multi-phase script-generation lifecycle. The
// manager agent is asked for a complete two-video content package; per video,
// the visual agent can then be asked for storyboard frames. Neither call is
// cancellable once sent; "cancellation" is only ever last-write-wins on the
// locally held result.
package generation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"studio/internal/domain"
	"studio/internal/infra"
	"studio/internal/normalize"
	"studio/internal/providers/agent"
	"studio/internal/store"
)

// Generation phases, in the order they appear. These are human-readable
// labels for the in-flight request, not durable states.
const (
	PhaseIdle           = "Idle"
	PhaseResearching    = "Researching..."
	PhaseWritingScripts = "Writing scripts..."
	PhaseComplete       = "Complete!"
	PhaseFailed         = "Failed"
)

// The two user-facing failure messages. Raw transport errors are never shown.
const (
	msgGenerationFailed = "Generation failed"
	msgNoData           = "Agent returned no data. Please try again."
	msgVisualFailed     = "Visual generation failed"
)

// DefaultReleaseDelay keeps the Complete/Failed label visible before the
// trigger re-enables. Cosmetic only; data correctness does not depend on it.
const DefaultReleaseDelay = 1500 * time.Millisecond

var (
	// ErrBusy reports that a generation is already in flight.
	ErrBusy = errors.New("generation already in flight")
	// ErrNoProductName reports the unmet generation precondition. The
	// orchestrator state is untouched when this is returned.
	ErrNoProductName = errors.New("product name is not configured")
	// ErrNoSuchVideo reports a visual request for a video that does not exist.
	ErrNoSuchVideo = errors.New("no such video")
)

// Invoker is the slice of the agent client the orchestrator needs.
type Invoker interface {
	Invoke(ctx context.Context, promptText, agentID string) (*agent.InvokeResult, error)
}

// Options configures an Orchestrator.
type Options struct {
	Agents         Invoker
	Settings       *store.SettingsStore
	History        *store.HistoryStore
	Logger         infra.Logger
	ManagerAgentID string
	VisualAgentID  string
	// ReleaseDelay overrides DefaultReleaseDelay; tests shorten it.
	ReleaseDelay time.Duration
}

// Orchestrator sequences agent calls and owns the visible generation state.
type Orchestrator struct {
	agents         Invoker
	settings       *store.SettingsStore
	history        *store.HistoryStore
	logger         infra.Logger
	managerAgentID string
	visualAgentID  string
	releaseDelay   time.Duration

	mu           sync.Mutex
	phase        string
	busy         bool
	activeAgent  string
	errMsg       string
	result       *domain.GenerationResult
	visual       *domain.VisualPackage
	visualAssets []string
	visualBusy   bool
	visualSeq    uint64
}

// Snapshot is a point-in-time copy of the orchestrator's visible state.
type Snapshot struct {
	Phase         string
	Busy          bool
	ActiveAgentID string
	ErrorMessage  string
	Result        *domain.GenerationResult
	Visual        *domain.VisualPackage
	VisualAssets  []string
	VisualBusy    bool
}

// New constructs an Orchestrator.
func New(opts Options) *Orchestrator {
	delay := opts.ReleaseDelay
	if delay <= 0 {
		delay = DefaultReleaseDelay
	}
	return &Orchestrator{
		agents:         opts.Agents,
		settings:       opts.Settings,
		history:        opts.History,
		logger:         opts.Logger,
		managerAgentID: opts.ManagerAgentID,
		visualAgentID:  opts.VisualAgentID,
		releaseDelay:   delay,
		phase:          PhaseIdle,
		visualAssets:   []string{},
	}
}

// Snapshot returns the current visible state.
func (o *Orchestrator) Snapshot() Snapshot {
	o.mu.Lock()
	defer o.mu.Unlock()
	return Snapshot{
		Phase:         o.phase,
		Busy:          o.busy,
		ActiveAgentID: o.activeAgent,
		ErrorMessage:  o.errMsg,
		Result:        o.result,
		Visual:        o.visual,
		VisualAssets:  o.visualAssets,
		VisualBusy:    o.visualBusy,
	}
}

// Generate starts the manager-agent flow and returns immediately. It is a
// no-op without a configured product name and refuses to overlap itself; the
// call runs to settlement in the background with no way to abort it.
func (o *Orchestrator) Generate() error {
	settings := o.settings.Current()

	o.mu.Lock()
	if o.busy {
		o.mu.Unlock()
		return ErrBusy
	}
	if strings.TrimSpace(settings.ProductName) == "" {
		o.mu.Unlock()
		return ErrNoProductName
	}
	o.busy = true
	o.phase = PhaseResearching
	o.errMsg = ""
	o.activeAgent = o.managerAgentID
	o.mu.Unlock()

	go o.runGeneration(settings)
	return nil
}

func (o *Orchestrator) runGeneration(settings domain.Settings) {
	prompt := ManagerPrompt(settings)

	// The agent call is a single atomic request; this label is purely a
	// progress hint for the caller.
	o.mu.Lock()
	o.phase = PhaseWritingScripts
	o.mu.Unlock()

	res, err := o.agents.Invoke(context.Background(), prompt, o.managerAgentID)

	o.mu.Lock()
	o.activeAgent = ""
	switch {
	case err != nil:
		o.phase = PhaseFailed
		o.errMsg = msgGenerationFailed
		o.mu.Unlock()
		o.logger.Error().Err(err).Msg("generation: manager invocation failed")
	default:
		payload, ok := res.Result()
		if !ok {
			o.phase = PhaseFailed
			o.errMsg = msgNoData
			o.mu.Unlock()
			o.logger.Warn().Msg("generation: manager returned empty success")
			break
		}
		result := normalize.GenerationResult(payload)
		o.result = &result
		o.phase = PhaseComplete
		o.mu.Unlock()

		// Recorded even when the agent produced zero videos; the log is a
		// record of attempts that settled successfully, not of usable output.
		o.history.Prepend(domain.NewHistoryEntry(settings.ProductName, result))
		o.logger.Info().Int("videos", len(result.Videos)).Msg("generation: package complete")
	}

	time.AfterFunc(o.releaseDelay, func() {
		o.mu.Lock()
		o.busy = false
		o.mu.Unlock()
	})
}

// GenerateVisuals starts the visual-agent flow for the video at index in the
// current result. It is independent of the manager flow's busy flag. Starting
// a new visual call supersedes any outstanding one: the older response is
// discarded when it eventually arrives.
func (o *Orchestrator) GenerateVisuals(videoIndex int) error {
	o.mu.Lock()
	if o.result == nil || videoIndex < 0 || videoIndex >= len(o.result.Videos) {
		o.mu.Unlock()
		return ErrNoSuchVideo
	}
	video := o.result.Videos[videoIndex]
	o.visualSeq++
	seq := o.visualSeq
	o.visualBusy = true
	o.visual = nil
	o.visualAssets = []string{}
	o.activeAgent = o.visualAgentID
	o.mu.Unlock()

	go o.runVisuals(seq, video)
	return nil
}

func (o *Orchestrator) runVisuals(seq uint64, video domain.VideoScript) {
	res, err := o.agents.Invoke(context.Background(), VisualPrompt(video), o.visualAgentID)

	o.mu.Lock()
	defer o.mu.Unlock()
	if seq != o.visualSeq {
		// A newer visual request took over while this one was in flight.
		o.logger.Debug().Uint64("seq", seq).Msg("generation: stale visual response dropped")
		return
	}
	o.activeAgent = ""
	o.visualBusy = false

	if err != nil {
		o.errMsg = msgVisualFailed
		o.logger.Error().Err(err).Msg("generation: visual invocation failed")
		return
	}

	// Artifact files ride a side channel and are kept even when the agent's
	// structured body is unusable.
	o.visualAssets = res.ArtifactURLs()
	if payload, ok := res.Result(); ok {
		pkg := normalize.VisualPackage(payload, video.VideoNumber, video.Title)
		pkg.AssetURLs = o.visualAssets
		o.visual = &pkg
	}
}

// ManagerPrompt renders settings into the manager agent's task description.
// This text is the entire contract with the agent; there is no structured
// request schema.
func ManagerPrompt(s domain.Settings) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Create a 2-video viral content package for the SaaS product %q", s.ProductName)
	if s.ProductURL != "" {
		fmt.Fprintf(&b, " (%s)", s.ProductURL)
	}
	b.WriteString(".\n")
	fmt.Fprintf(&b, "Key features: %s.\n", joinOr(s.KeyFeatures, "N/A"))
	fmt.Fprintf(&b, "Target audience: %s.\n", defaultStr(s.TargetAudience, "general SaaS users"))
	fmt.Fprintf(&b, "Brand voice: %s.\n", defaultStr(s.BrandVoice, "professional"))
	fmt.Fprintf(&b, "Content pillars to focus on: %s.\n", joinOr(s.ContentPillars, "Features"))
	fmt.Fprintf(&b, "Platform targets: %s.", joinOr(s.PlatformTargets, "TikTok"))
	return b.String()
}

// VisualPrompt renders one video script into the visual agent's task
// description.
func VisualPrompt(v domain.VideoScript) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Generate visual storyboard frames and a thumbnail for Video %d: %q.\n", v.VideoNumber, v.Title)
	fmt.Fprintf(&b, "Hook: %s\n", v.Hook)
	fmt.Fprintf(&b, "Platform: %s\n", defaultStr(v.PlatformTarget, "TikTok"))
	fmt.Fprintf(&b, "Aspect ratio: %s\n", defaultStr(v.AspectRatio, "9:16"))
	b.WriteString("Scenes:\n")
	for _, s := range v.Scenes {
		fmt.Fprintf(&b, "Scene %d: %s - Text overlay: %q - B-roll: %s\n", s.SceneNumber, s.VisualDescription, s.TextOverlay, s.BRollCue)
	}
	b.WriteString("Create eye-catching visuals that match the viral short-form video style.")
	return b.String()
}

func joinOr(items []string, fallback string) string {
	if len(items) == 0 {
		return fallback
	}
	return strings.Join(items, ", ")
}

func defaultStr(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}
