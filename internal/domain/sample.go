package domain

// Sample data shown when the caller asks for the demo view instead of live
// state. It doubles as realistic fixture data in tests.

// SampleVideos returns a fully populated two-video package.
func SampleVideos() []VideoScript {
	return []VideoScript{
		{
			VideoNumber:          1,
			Title:                "You Do NOT Need a Developer to Build Your App",
			TopicTag:             "#NoCode",
			Hook:                 "What if I told you that you could build a full app in 10 minutes with zero code?",
			TotalDurationSeconds: 42,
			PlatformTarget:       "TikTok",
			AspectRatio:          "9:16",
			Scenes: []Scene{
				{SceneNumber: 1, DurationSeconds: 5, VoiceoverText: "What if I told you that you could build a full app in 10 minutes with zero code?", VisualDescription: "Person staring at complex code on screen, then pushing laptop away", TextOverlay: "ZERO CODE NEEDED", BRollCue: "Time-lapse of frustrated coding session", Transition: "Quick zoom", CameraDirection: "Close-up on face, dramatic pull back"},
				{SceneNumber: 2, DurationSeconds: 8, VoiceoverText: "Emergent lets you describe your app idea in plain English and AI builds it for you.", VisualDescription: "Clean Emergent interface with text prompt being typed", TextOverlay: "Just Describe It", BRollCue: "Screen recording of Emergent builder", Transition: "Slide left", CameraDirection: "Screen capture showing prompt to app flow"},
				{SceneNumber: 3, DurationSeconds: 10, VoiceoverText: "No frameworks. No debugging. No hiring a dev team. Just your idea turned into a real working app.", VisualDescription: "Split screen: left shows traditional dev process, right shows Emergent one-step flow", TextOverlay: "Idea to App. Instantly.", BRollCue: "Side-by-side comparison animation", Transition: "Morph", CameraDirection: "Wide shot comparison"},
				{SceneNumber: 4, DurationSeconds: 7, VoiceoverText: "Thousands of founders are already building with Emergent. Why are you still waiting?", VisualDescription: "Montage of different app types built with Emergent", TextOverlay: "BUILD YOURS NOW", BRollCue: "Rapid app showcase montage", Transition: "Wipe", CameraDirection: "Quick cuts between apps"},
			},
			MusicDirection: MusicDirection{Style: "Electronic / Trap beat", BPM: "115", EnergyProgression: "Low to High build with drop at Scene 3"},
			CTA:            CallToAction{Text: "Try Emergent free at emergent.sh", Placement: "Bottom third + pinned comment", Timing: "Last 5 seconds"},
		},
		{
			VideoNumber:          2,
			Title:                "Stop Paying Developers $150/hr for Simple Apps",
			TopicTag:             "#StartupHacks",
			Hook:                 "You are burning cash on developers for apps that AI can build in minutes.",
			TotalDurationSeconds: 36,
			PlatformTarget:       "Instagram Reels",
			AspectRatio:          "9:16",
			Scenes: []Scene{
				{SceneNumber: 1, DurationSeconds: 4, VoiceoverText: "You are burning cash on developers for apps that AI can build in minutes.", VisualDescription: "Money flying out of wallet with developer invoice", TextOverlay: "$150/HR FOR THIS?", BRollCue: "Stack of invoices being tossed", Transition: "Shake effect", CameraDirection: "Top-down dramatic reveal"},
				{SceneNumber: 2, DurationSeconds: 8, VoiceoverText: "Emergent is an AI app builder. Describe what you want, and watch it come to life. No code. No waiting weeks.", VisualDescription: "Emergent interface building an app in real-time", TextOverlay: "AI Builds It For You", BRollCue: "Product demo with live generation", Transition: "Smooth slide", CameraDirection: "Screen recording with highlights"},
				{SceneNumber: 3, DurationSeconds: 6, VoiceoverText: "From idea to launch in one afternoon. That is the Emergent difference.", VisualDescription: "Before/after timeline: 6 weeks vs 1 afternoon", TextOverlay: "6 Weeks vs 1 Afternoon", BRollCue: "Animated timeline comparison", Transition: "Pop zoom", CameraDirection: "Clean infographic animation"},
			},
			MusicDirection: MusicDirection{Style: "Upbeat electronic", BPM: "120", EnergyProgression: "Medium to High"},
			CTA:            CallToAction{Text: "Link in bio - emergent.sh", Placement: "End card overlay", Timing: "Last 4 seconds"},
		},
	}
}

// SampleResearch returns the research summary paired with SampleVideos.
func SampleResearch() *ResearchSummary {
	return &ResearchSummary{
		KeyFindings: []string{
			"No-code app market projected to reach $65B by 2027",
			"AI-assisted development reduces time-to-market by 80%",
			"72% of entrepreneurs say lack of technical skills is their biggest barrier",
			"Short-form video content drives 3x more SaaS signups than blog posts",
			"Emergent enables full app creation from natural language descriptions",
		},
		AnglesUsed:       []string{"Cost savings vs hiring devs", "Speed to market", "Democratizing app development"},
		DataSourcesCount: 15,
	}
}

// SampleHistory returns two canned history entries.
func SampleHistory() []HistoryEntry {
	videos := SampleVideos()
	return []HistoryEntry{
		{
			ID:                         "hist_001",
			Timestamp:                  "2026-02-20T14:30:00Z",
			ProductName:                "Emergent",
			Videos:                     videos,
			ResearchSummary:            SampleResearch(),
			ContentStrategyNotes:       "Lead with the cost/time pain point of traditional development. Show the contrast between weeks of dev work and minutes with Emergent. Target founders and solopreneurs who feel blocked by technical barriers.",
			VisualStyleRecommendations: "Use bold, high-contrast text overlays on dark backgrounds. Show actual product UI for credibility. Quick cuts to match the energetic no-code builder vibe.",
		},
		{
			ID:                         "hist_002",
			Timestamp:                  "2026-02-19T09:15:00Z",
			ProductName:                "Emergent",
			Videos:                     videos[:1],
			ResearchSummary:            SampleResearch(),
			ContentStrategyNotes:       "Test the \"you don't need a developer\" angle against the \"save money\" angle. Both resonate strongly with the solopreneur audience.",
			VisualStyleRecommendations: "Split-screen before/after comparisons work well. Show the traditional dev process vs the Emergent one-prompt flow.",
		},
	}
}
