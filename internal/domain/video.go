package domain

// Scene is one segment of a short-form video script. Every field carries an
// explicit zero value rather than being optional so consumers never branch on
// presence.
type Scene struct {
	SceneNumber       int    `json:"scene_number"`
	DurationSeconds   int    `json:"duration_seconds"`
	VoiceoverText     string `json:"voiceover_text"`
	VisualDescription string `json:"visual_description"`
	TextOverlay       string `json:"text_overlay"`
	BRollCue          string `json:"b_roll_cue"`
	Transition        string `json:"transition"`
	CameraDirection   string `json:"camera_direction"`
}

// MusicDirection describes the audio treatment for a video.
type MusicDirection struct {
	Style             string `json:"style"`
	BPM               string `json:"bpm"`
	EnergyProgression string `json:"energy_progression"`
}

// CallToAction describes where and when the CTA appears.
type CallToAction struct {
	Text      string `json:"text"`
	Placement string `json:"placement"`
	Timing    string `json:"timing"`
}

// VideoScript is one generated short-form video.
type VideoScript struct {
	VideoNumber          int            `json:"video_number"`
	Title                string         `json:"title"`
	TopicTag             string         `json:"topic_tag"`
	Hook                 string         `json:"hook"`
	TotalDurationSeconds int            `json:"total_duration_seconds"`
	PlatformTarget       string         `json:"platform_target"`
	AspectRatio          string         `json:"aspect_ratio"`
	Scenes               []Scene        `json:"scenes"`
	MusicDirection       MusicDirection `json:"music_direction"`
	CTA                  CallToAction   `json:"cta"`
}

// ResearchSummary aggregates the manager agent's research step.
type ResearchSummary struct {
	KeyFindings      []string `json:"key_findings"`
	AnglesUsed       []string `json:"angles_used"`
	DataSourcesCount int      `json:"data_sources_count"`
}

// GenerationResult is the normalized output of one manager-agent call. The
// research summary is nil only when the agent omitted the field entirely.
type GenerationResult struct {
	ResearchSummary            *ResearchSummary `json:"research_summary"`
	Videos                     []VideoScript    `json:"videos"`
	ContentStrategyNotes       string           `json:"content_strategy_notes"`
	VisualStyleRecommendations string           `json:"visual_style_recommendations"`
}

// SceneFrame is one storyboard frame produced by the visual agent.
type SceneFrame struct {
	SceneNumber      int    `json:"scene_number"`
	FrameDescription string `json:"frame_description"`
	StyleNotes       string `json:"visual_style_notes"`
}

// VisualPackage is the normalized output of one visual-agent call for a
// single video. AssetURLs come from the invocation's artifact side channel,
// not from the agent's structured JSON body.
type VisualPackage struct {
	VideoNumber          int          `json:"video_number"`
	VideoTitle           string       `json:"video_title"`
	ThumbnailDescription string       `json:"thumbnail_description"`
	SceneFrames          []SceneFrame `json:"scene_frames"`
	OverallDirection     string       `json:"overall_visual_direction"`
	AssetURLs            []string     `json:"asset_urls"`
}
