package tts

import "strings"

// PickNarratorVoice chooses a default narration voice from the available
// pool. Preference order: a voice named Nicolas, then any French-labelled
// voice, then any male-labelled voice, then the first voice offered.
// Returns an empty string when the pool is empty.
func PickNarratorVoice(voices []Voice) string {
	if len(voices) == 0 {
		return ""
	}

	var french, male string
	for _, v := range voices {
		if strings.EqualFold(v.Name, "nicolas") {
			return v.VoiceID
		}
		lang := strings.ToLower(v.Labels["language"])
		accent := strings.ToLower(v.Labels["accent"])
		if french == "" && (strings.Contains(lang, "fr") || strings.Contains(accent, "french")) {
			french = v.VoiceID
		}
		if male == "" && strings.EqualFold(v.Labels["gender"], "male") {
			male = v.VoiceID
		}
	}
	if french != "" {
		return french
	}
	if male != "" {
		return male
	}
	return voices[0].VoiceID
}
