package script

import "strings"

// Parse splits a model reply into the narration text and its scene list.
//
// The expected shape is "Script: ..." followed by "Scènes:" with numbered
// lines. Replies that ignore the format are kept whole as the script, with
// scenes derived by pairing consecutive sentences.
func Parse(response string) (scriptText string, scenes []string) {
	if strings.Contains(response, "Script:") {
		parts := strings.SplitN(response, "Scènes:", 2)
		scriptText = strings.TrimSpace(strings.Replace(parts[0], "Script:", "", 1))

		if len(parts) > 1 {
			for _, line := range strings.Split(parts[1], "\n") {
				line = strings.TrimSpace(line)
				if line == "" {
					continue
				}
				if desc, ok := stripSceneNumber(line); ok {
					scenes = append(scenes, desc)
				}
			}
		}
		return scriptText, scenes
	}

	// Free-form reply: keep it all and pair sentences into scenes.
	scriptText = strings.TrimSpace(response)
	sentences := strings.Split(scriptText, ".")
	for i := 0; i < len(sentences); i += 2 {
		hi := i + 2
		if hi > len(sentences) {
			hi = len(sentences)
		}
		scene := strings.TrimSpace(strings.Join(sentences[i:hi], ". "))
		if scene != "" {
			scenes = append(scenes, scene)
		}
	}
	return scriptText, scenes
}

// stripSceneNumber removes a leading "N." marker from a scene line.
func stripSceneNumber(line string) (string, bool) {
	for i := 1; i <= 9; i++ {
		prefix := string(rune('0'+i)) + "."
		if strings.HasPrefix(line, prefix) {
			return strings.TrimSpace(strings.TrimPrefix(line, prefix)), true
		}
	}
	return "", false
}
