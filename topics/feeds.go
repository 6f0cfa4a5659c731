package topics

// FeedConfig represents the configuration for a single RSS feed
type FeedConfig struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// FeedPresets maps friendly keys to feeds whose items make good story
// prompts.
var FeedPresets = map[string]FeedConfig{
	"nosleep": {
		Name: "r/nosleep",
		URL:  "https://www.reddit.com/r/nosleep/.rss",
	},
	"shortscary": {
		Name: "r/shortscarystories",
		URL:  "https://www.reddit.com/r/shortscarystories/.rss",
	},
	"writing": {
		Name: "r/WritingPrompts",
		URL:  "https://www.reddit.com/r/WritingPrompts/.rss",
	},
	"hn": {
		Name: "Hacker News",
		URL:  "https://hnrss.org/newest",
	},
}

// DefaultFeedPreset is used when no feed is requested.
const DefaultFeedPreset = "writing"

// ResolveFeedURL maps a preset key to its URL; anything else is treated
// as a URL already.
func ResolveFeedURL(feed string) string {
	if preset, ok := FeedPresets[feed]; ok {
		return preset.URL
	}
	return feed
}
