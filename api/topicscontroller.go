package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"clipforge/topics"
)

// RegisterTopicRoutes registers prompt suggestion endpoints.
func RegisterTopicRoutes(r *gin.Engine, suggester *topics.Suggester) {
	g := r.Group("/api/topics")
	g.GET("/suggest", handleSuggestTopics(suggester))
	g.GET("/feeds", handleListFeeds)
}

func handleSuggestTopics(suggester *topics.Suggester) gin.HandlerFunc {
	return func(c *gin.Context) {
		count := 0
		if raw := c.Query("count"); raw != "" {
			if v, err := strconv.Atoi(raw); err == nil {
				count = v
			}
		}

		suggestions, err := suggester.Suggest(c.Query("feed"), count)
		if err != nil {
			respondWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"suggestions": suggestions})
	}
}

func handleListFeeds(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"presets": topics.FeedPresets,
		"default": topics.DefaultFeedPreset,
	})
}
