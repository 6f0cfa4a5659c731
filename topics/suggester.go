package topics

import (
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"clipforge/types"

	readability "github.com/go-shiori/go-readability"
	"github.com/mmcdole/gofeed"
)

const (
	workerCount      = 5
	extractorTimeout = 30 * time.Second
	defaultCount     = 10
	maxExcerptRunes  = 280
)

// Suggester turns feed items into ready-to-use generation prompts.
type Suggester struct {
	parser *gofeed.Parser
}

// NewSuggester builds a suggester with a fresh feed parser.
func NewSuggester() *Suggester {
	return &Suggester{parser: gofeed.NewParser()}
}

// Suggest fetches a feed and returns up to maxCount prompt suggestions.
// An empty feed argument selects the default preset; maxCount <= 0 uses
// the default count. Items whose page content cannot be extracted still
// yield a title-only prompt.
func (s *Suggester) Suggest(feed string, maxCount int) ([]*types.TopicSuggestion, error) {
	if feed == "" {
		feed = DefaultFeedPreset
	}
	if maxCount <= 0 {
		maxCount = defaultCount
	}
	feedURL := ResolveFeedURL(feed)

	parsed, err := s.parser.ParseURL(feedURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch feed: %w", err)
	}

	count := len(parsed.Items)
	if count > maxCount {
		count = maxCount
	}

	suggestions := make([]*types.TopicSuggestion, 0, count)
	for i := 0; i < count; i++ {
		item := parsed.Items[i]
		id := item.GUID
		if id == "" && item.Link != "" {
			id = types.GenerateID(item.Link)
		}
		suggestions = append(suggestions, &types.TopicSuggestion{
			ID:        id,
			Title:     item.Title,
			SourceURL: item.Link,
			FetchedAt: time.Now(),
		})
	}

	enrichAll(suggestions)
	return suggestions, nil
}

// enrichAll extracts page content for all suggestions using a worker pool.
func enrichAll(suggestions []*types.TopicSuggestion) {
	var wg sync.WaitGroup
	queue := make(chan *types.TopicSuggestion, len(suggestions))

	for i := 0; i < workerCount; i++ {
		go func(workerID int) {
			for s := range queue {
				if err := enrich(s); err != nil {
					log.Printf("[Worker %d] Failed to enrich %s: %v", workerID, s.SourceURL, err)
					s.Prompt = buildPrompt(s.Title, "")
				}
				wg.Done()
			}
		}(i)
	}

	for _, s := range suggestions {
		wg.Add(1)
		queue <- s
	}

	wg.Wait()
	close(queue)
}

func enrich(s *types.TopicSuggestion) error {
	if s.SourceURL == "" {
		return fmt.Errorf("suggestion URL is empty")
	}

	article, err := readability.FromURL(s.SourceURL, extractorTimeout)
	if err != nil {
		return fmt.Errorf("readability extraction failed: %w", err)
	}

	excerpt := article.Excerpt
	if excerpt == "" {
		excerpt = article.TextContent
	}
	s.Prompt = buildPrompt(s.Title, excerpt)
	return nil
}

// buildPrompt phrases a feed item as a generation prompt.
func buildPrompt(title, excerpt string) string {
	prompt := strings.TrimSpace(title)
	excerpt = strings.TrimSpace(excerpt)
	if excerpt != "" {
		runes := []rune(excerpt)
		if len(runes) > maxExcerptRunes {
			excerpt = string(runes[:maxExcerptRunes]) + "..."
		}
		prompt = prompt + ". " + excerpt
	}
	return "Raconte une histoire courte inspirée de : " + prompt
}
