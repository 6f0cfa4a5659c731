package api

import (
	"github.com/gin-gonic/gin"

	"clipforge/pipeline"
	"clipforge/topics"
)

// NewRouter constructs a Gin engine with registered routes.
func NewRouter(p *pipeline.Pipeline, store pipeline.DocumentStore, speech pipeline.SpeechSynthesizer, suggester *topics.Suggester) *gin.Engine {
	r := gin.New()
	// Minimal middleware: recovery; logger optional to reduce verbosity
	r.Use(gin.Recovery())

	// Register resource routers
	RegisterVideoRoutes(r, p, store)
	RegisterVoiceRoutes(r, speech)
	RegisterTopicRoutes(r, suggester)
	RegisterHealthRoutes(r)
	return r
}
