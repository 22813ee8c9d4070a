package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"studio/internal/domain"
	"studio/pkg/zip"
)

// Export streams the current content package as a zip: the full result as
// JSON plus one plain-text shooting script per video.
func (a *App) Export(w http.ResponseWriter, r *http.Request) {
	snap := a.Generator.Snapshot()
	if snap.Result == nil {
		a.error(w, http.StatusNotFound, "not_found", "nothing generated yet")
		return
	}

	data, err := json.MarshalIndent(snap.Result, "", "  ")
	if err != nil {
		a.error(w, http.StatusInternalServerError, "internal", "failed to build export")
		return
	}
	entries := []zip.Entry{{Name: "package.json", Data: data}}
	for _, v := range snap.Result.Videos {
		entries = append(entries, zip.Entry{
			Name: fmt.Sprintf("video-%d-script.txt", v.VideoNumber),
			Data: []byte(renderScript(v)),
		})
	}

	archive, err := zip.Archive(entries)
	if err != nil {
		a.Logger.Error().Err(err).Msg("export: archive failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to build export")
		return
	}

	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", `attachment; filename="content-package.zip"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(archive)
}

// renderScript lays one video out as a plain-text shooting script.
func renderScript(v domain.VideoScript) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Video %d: %s\n", v.VideoNumber, v.Title)
	if v.TopicTag != "" {
		fmt.Fprintf(&b, "Topic: %s\n", v.TopicTag)
	}
	fmt.Fprintf(&b, "Hook: %s\n", v.Hook)
	fmt.Fprintf(&b, "Platform: %s | Aspect: %s | Duration: %ds\n", v.PlatformTarget, v.AspectRatio, v.TotalDurationSeconds)
	b.WriteString("\n")
	for _, s := range v.Scenes {
		fmt.Fprintf(&b, "Scene %d (%ds)\n", s.SceneNumber, s.DurationSeconds)
		fmt.Fprintf(&b, "  Voiceover: %s\n", s.VoiceoverText)
		fmt.Fprintf(&b, "  Visual: %s\n", s.VisualDescription)
		if s.TextOverlay != "" {
			fmt.Fprintf(&b, "  Overlay: %q\n", s.TextOverlay)
		}
		if s.BRollCue != "" {
			fmt.Fprintf(&b, "  B-roll: %s\n", s.BRollCue)
		}
		if s.Transition != "" || s.CameraDirection != "" {
			fmt.Fprintf(&b, "  Transition: %s | Camera: %s\n", s.Transition, s.CameraDirection)
		}
		b.WriteString("\n")
	}
	if v.MusicDirection.Style != "" {
		fmt.Fprintf(&b, "Music: %s, %s BPM, %s\n", v.MusicDirection.Style, v.MusicDirection.BPM, v.MusicDirection.EnergyProgression)
	}
	if v.CTA.Text != "" {
		fmt.Fprintf(&b, "CTA: %q (%s)\n", v.CTA.Text, v.CTA.Timing)
	}
	return b.String()
}
