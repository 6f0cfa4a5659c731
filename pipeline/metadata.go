package pipeline

import (
	"fmt"
	"strings"

	"clipforge/types"
)

// PublishMetadata derives a platform title and description from the
// project's prompt and its narrated script.
func PublishMetadata(project *types.VideoProject, script *types.GeneratedScript) (title, description string) {
	title = strings.TrimSpace(project.OriginalPrompt)
	if title == "" {
		title = "Histoire courte"
	}
	if len(title) > 100 {
		title = title[:97] + "..."
	}

	hook := script.ScriptText
	if len(hook) > 200 {
		hook = hook[:197] + "..."
	}
	description = fmt.Sprintf(
		"%s\n\n"+
			"#shorts #histoire #story",
		hook,
	)
	return title, description
}
