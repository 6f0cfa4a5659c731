package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"clipforge/pipeline"
	"clipforge/tts"
)

// RegisterVoiceRoutes registers the voice catalog endpoint.
func RegisterVoiceRoutes(r *gin.Engine, speech pipeline.SpeechSynthesizer) {
	g := r.Group("/api/voices")
	g.GET("/available", handleAvailableVoices(speech))
}

func handleAvailableVoices(speech pipeline.SpeechSynthesizer) gin.HandlerFunc {
	return func(c *gin.Context) {
		voices, err := speech.Voices(c.Request.Context())
		if err != nil {
			respondWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"voices":  voices,
			"default": tts.PickNarratorVoice(voices),
		})
	}
}
