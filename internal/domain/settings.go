package domain

// Settings is the product profile used to build agent prompts. A non-empty
// ProductName is the precondition for generation.
type Settings struct {
	ProductName     string   `json:"productName"`
	ProductURL      string   `json:"productUrl"`
	KeyFeatures     []string `json:"keyFeatures"`
	TargetAudience  string   `json:"targetAudience"`
	BrandVoice      string   `json:"brandVoice"`
	ContentPillars  []string `json:"contentPillars"`
	PlatformTargets []string `json:"platformTargets"`
}

// AllPillars and AllPlatforms enumerate the tags the product profile may
// select from.
var (
	AllPillars   = []string{"Features", "Testimonials", "Trends", "Use Cases", "Problem-Solution"}
	AllPlatforms = []string{"TikTok", "Instagram Reels", "YouTube Shorts"}
)

// DefaultSettings seeds the settings slot on first start.
func DefaultSettings() Settings {
	return Settings{
		ProductName:     "Emergent",
		ProductURL:      "https://emergent.sh",
		KeyFeatures:     []string{"AI-powered app builder", "No coding required", "Visual interface", "Rapid app development"},
		TargetAudience:  "Non-technical entrepreneurs, startup founders, small business owners, and teams looking to build apps without developers",
		BrandVoice:      "Empowering, modern, accessible, bold",
		ContentPillars:  []string{"Features", "Use Cases", "Problem-Solution"},
		PlatformTargets: []string{"TikTok", "Instagram Reels", "YouTube Shorts"},
	}
}
