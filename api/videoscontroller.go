package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"clipforge/pipeline"
	"clipforge/types"
)

// RegisterVideoRoutes registers the generation endpoints.
func RegisterVideoRoutes(r *gin.Engine, p *pipeline.Pipeline, store pipeline.DocumentStore) {
	g := r.Group("/api")
	g.GET("/", handleBanner)
	g.POST("/generate-script", handleGenerateScript(p))
	g.POST("/generate-images", handleGenerateImages(p))
	g.POST("/generate-voice", handleGenerateVoice(p))
	g.POST("/create-video-project", handleCreateProject(p))
	g.POST("/assemble-video", handleAssembleVideo(p))
	g.POST("/create-complete-video", handleCompleteVideo(p))
	g.GET("/project/:id", handleGetProject(store))
}

func handleBanner(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service": "clipforge",
		"message": "short-form video generation API",
	})
}

func handleGenerateScript(p *pipeline.Pipeline) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.GenerationRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"kind": string(pipeline.KindInvalidInput), "detail": err.Error()})
			return
		}

		script, err := p.GenerateScript(c.Request.Context(), req.Prompt, req.Duration)
		if err != nil {
			respondWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, script)
	}
}

func handleGenerateImages(p *pipeline.Pipeline) gin.HandlerFunc {
	return func(c *gin.Context) {
		scriptID := c.Query("script_id")
		if scriptID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"kind": string(pipeline.KindInvalidInput), "detail": "script_id is required"})
			return
		}

		results, err := p.GenerateImages(c.Request.Context(), scriptID)
		if err != nil {
			respondWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"script_id": scriptID, "scenes": results})
	}
}

func handleGenerateVoice(p *pipeline.Pipeline) gin.HandlerFunc {
	return func(c *gin.Context) {
		scriptID := c.Query("script_id")
		if scriptID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"kind": string(pipeline.KindInvalidInput), "detail": "script_id is required"})
			return
		}

		narration, err := p.GenerateVoice(c.Request.Context(), scriptID, c.Query("voice_id"))
		if err != nil {
			respondWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, narration)
	}
}

func handleCreateProject(p *pipeline.Pipeline) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.GenerationRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"kind": string(pipeline.KindInvalidInput), "detail": err.Error()})
			return
		}

		project, err := p.CreateProject(c.Request.Context(), req.Prompt, req.Duration)
		if err != nil {
			respondWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, project)
	}
}

func handleAssembleVideo(p *pipeline.Pipeline) gin.HandlerFunc {
	return func(c *gin.Context) {
		projectID := c.Query("project_id")
		if projectID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"kind": string(pipeline.KindInvalidInput), "detail": "project_id is required"})
			return
		}

		rendered, err := p.AssembleVideo(c.Request.Context(), projectID)
		if err != nil {
			respondWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, rendered)
	}
}

func handleCompleteVideo(p *pipeline.Pipeline) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.GenerationRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"kind": string(pipeline.KindInvalidInput), "detail": err.Error()})
			return
		}

		project, rendered, err := p.Run(c.Request.Context(), req)
		if err != nil {
			respondWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"project": project, "video": rendered})
	}
}

// ProjectBundle is the full artifact view of one project.
type ProjectBundle struct {
	Project   *types.VideoProject     `json:"project"`
	Script    *types.GeneratedScript  `json:"script,omitempty"`
	Images    []*types.GeneratedImage `json:"images,omitempty"`
	Narration *types.Narration        `json:"narration,omitempty"`
	Video     *types.RenderedVideo    `json:"video,omitempty"`
}

func handleGetProject(store pipeline.DocumentStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		project, err := store.GetProject(ctx, c.Param("id"))
		if err != nil {
			respondWithError(c, err)
			return
		}

		bundle := ProjectBundle{Project: project}
		if project.ScriptID != "" {
			if script, err := store.GetScript(ctx, project.ScriptID); err == nil {
				bundle.Script = script
			}
		}
		if len(project.ImageIDs) > 0 {
			if images, err := store.GetImages(ctx, project.ImageIDs); err == nil {
				bundle.Images = images
			}
		}
		if project.NarrationID != "" {
			if narration, err := store.GetNarration(ctx, project.NarrationID); err == nil {
				bundle.Narration = narration
			}
		}
		if project.VideoID != "" {
			if video, err := store.GetVideo(ctx, project.VideoID); err == nil {
				bundle.Video = video
			}
		}
		c.JSON(http.StatusOK, bundle)
	}
}
