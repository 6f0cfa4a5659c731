package tts

import "testing"

func TestPickNarratorVoicePrefersNicolas(t *testing.T) {
	voices := []Voice{
		{VoiceID: "v1", Name: "Rachel", Labels: map[string]string{"gender": "female"}},
		{VoiceID: "v2", Name: "Nicolas", Labels: map[string]string{"gender": "male"}},
		{VoiceID: "v3", Name: "Antoine", Labels: map[string]string{"language": "fr"}},
	}
	if got := PickNarratorVoice(voices); got != "v2" {
		t.Errorf("PickNarratorVoice = %q, want v2", got)
	}
}

func TestPickNarratorVoiceFallsBackToFrench(t *testing.T) {
	voices := []Voice{
		{VoiceID: "v1", Name: "Rachel", Labels: map[string]string{"gender": "female"}},
		{VoiceID: "v2", Name: "Sam", Labels: map[string]string{"gender": "male"}},
		{VoiceID: "v3", Name: "Antoine", Labels: map[string]string{"accent": "french", "gender": "male"}},
	}
	if got := PickNarratorVoice(voices); got != "v3" {
		t.Errorf("PickNarratorVoice = %q, want v3", got)
	}
}

func TestPickNarratorVoiceFallsBackToMale(t *testing.T) {
	voices := []Voice{
		{VoiceID: "v1", Name: "Rachel", Labels: map[string]string{"gender": "female"}},
		{VoiceID: "v2", Name: "Sam", Labels: map[string]string{"gender": "male"}},
	}
	if got := PickNarratorVoice(voices); got != "v2" {
		t.Errorf("PickNarratorVoice = %q, want v2", got)
	}
}

func TestPickNarratorVoiceLastResortFirst(t *testing.T) {
	voices := []Voice{
		{VoiceID: "v1", Name: "Rachel"},
		{VoiceID: "v2", Name: "Ana"},
	}
	if got := PickNarratorVoice(voices); got != "v1" {
		t.Errorf("PickNarratorVoice = %q, want v1", got)
	}
}

func TestPickNarratorVoiceEmptyPool(t *testing.T) {
	if got := PickNarratorVoice(nil); got != "" {
		t.Errorf("PickNarratorVoice(nil) = %q, want empty", got)
	}
}
