// Package normalize coerces the loosely typed JSON the generative agents
// return into fully populated domain records. The agents are not guaranteed
// to honor their output schema, so normalization is total: any JSON value,
// including null, primitives, and deeply wrong shapes, yields a complete
// record with zero values in place of missing or malformed fields. Fields are
// defaulted independently; one bad field never poisons its siblings.
package normalize

import "studio/internal/domain"

// GenerationResult normalizes a manager-agent payload. The research summary
// stays nil only when the field is entirely absent or JSON null; a
// present-but-malformed summary is defaulted per sub-field instead.
func GenerationResult(v any) domain.GenerationResult {
	m := asMap(v)
	out := domain.GenerationResult{
		Videos:                     videoScripts(m["videos"]),
		ContentStrategyNotes:       str(m, "content_strategy_notes"),
		VisualStyleRecommendations: str(m, "visual_style_recommendations"),
	}
	if raw, ok := m["research_summary"]; ok && raw != nil {
		rs := researchSummary(raw)
		out.ResearchSummary = &rs
	}
	return out
}

// VisualPackage normalizes a visual-agent payload for a single video. The
// agent is expected to echo the video's ordinal and title; when it does not,
// the caller-supplied values are used so the package stays attributable.
func VisualPackage(v any, videoNumber int, videoTitle string) domain.VisualPackage {
	m := asMap(v)
	out := domain.VisualPackage{
		VideoNumber:          videoNumber,
		VideoTitle:           videoTitle,
		ThumbnailDescription: str(m, "thumbnail_description"),
		SceneFrames:          sceneFrames(m["scene_frames"]),
		OverallDirection:     str(m, "overall_visual_direction"),
		AssetURLs:            []string{},
	}
	if n := integer(m, "video_number"); n != 0 {
		out.VideoNumber = n
	}
	if t := str(m, "video_title"); t != "" {
		out.VideoTitle = t
	}
	return out
}

func researchSummary(v any) domain.ResearchSummary {
	m := asMap(v)
	return domain.ResearchSummary{
		KeyFindings:      stringSlice(m, "key_findings"),
		AnglesUsed:       stringSlice(m, "angles_used"),
		DataSourcesCount: nonNegative(integer(m, "data_sources_count")),
	}
}

func videoScripts(v any) []domain.VideoScript {
	items := asSlice(v)
	out := make([]domain.VideoScript, 0, len(items))
	for _, item := range items {
		out = append(out, videoScript(item))
	}
	return out
}

func videoScript(v any) domain.VideoScript {
	m := asMap(v)
	return domain.VideoScript{
		VideoNumber:          integer(m, "video_number"),
		Title:                str(m, "title"),
		TopicTag:             str(m, "topic_tag"),
		Hook:                 str(m, "hook"),
		TotalDurationSeconds: integer(m, "total_duration_seconds"),
		PlatformTarget:       str(m, "platform_target"),
		AspectRatio:          str(m, "aspect_ratio"),
		Scenes:               scenes(m["scenes"]),
		MusicDirection:       musicDirection(m["music_direction"]),
		CTA:                  callToAction(m["cta"]),
	}
}

func scenes(v any) []domain.Scene {
	items := asSlice(v)
	out := make([]domain.Scene, 0, len(items))
	for _, item := range items {
		m := asMap(item)
		out = append(out, domain.Scene{
			SceneNumber:       integer(m, "scene_number"),
			DurationSeconds:   integer(m, "duration_seconds"),
			VoiceoverText:     str(m, "voiceover_text"),
			VisualDescription: str(m, "visual_description"),
			TextOverlay:       str(m, "text_overlay"),
			BRollCue:          str(m, "b_roll_cue"),
			Transition:        str(m, "transition"),
			CameraDirection:   str(m, "camera_direction"),
		})
	}
	return out
}

func sceneFrames(v any) []domain.SceneFrame {
	items := asSlice(v)
	out := make([]domain.SceneFrame, 0, len(items))
	for _, item := range items {
		m := asMap(item)
		out = append(out, domain.SceneFrame{
			SceneNumber:      integer(m, "scene_number"),
			FrameDescription: str(m, "frame_description"),
			StyleNotes:       str(m, "visual_style_notes"),
		})
	}
	return out
}

func musicDirection(v any) domain.MusicDirection {
	m := asMap(v)
	return domain.MusicDirection{
		Style:             str(m, "style"),
		BPM:               str(m, "bpm"),
		EnergyProgression: str(m, "energy_progression"),
	}
}

func callToAction(v any) domain.CallToAction {
	m := asMap(v)
	return domain.CallToAction{
		Text:      str(m, "text"),
		Placement: str(m, "placement"),
		Timing:    str(m, "timing"),
	}
}

func nonNegative(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
