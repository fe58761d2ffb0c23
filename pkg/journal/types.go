// Package journal defines the baby journal entry model.
package journal

import (
	"fmt"
	"strings"
)

// Type tags what an entry records and which form steps apply to it.
type Type string

const (
	// TypeNote is a free-text observation.
	TypeNote Type = "note"
	// TypeGrowth carries weight/height/head measurements.
	TypeGrowth Type = "growth"
	// TypeMilestone marks developmental milestones.
	TypeMilestone Type = "milestone"
	// TypeMedia attaches photos, documents, or audio clips.
	TypeMedia Type = "media"
)

// AllTypes returns the list of supported entry types.
func AllTypes() []Type {
	return []Type{
		TypeNote,
		TypeGrowth,
		TypeMilestone,
		TypeMedia,
	}
}

// ParseType converts a string to a Type or returns an error for unknown values.
func ParseType(raw string) (Type, error) {
	t := Type(strings.ToLower(strings.TrimSpace(raw)))
	for _, candidate := range AllTypes() {
		if candidate == t {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("journal: unknown entry type %q", raw)
}

// Mood is the baby's recorded disposition for the day.
type Mood string

const (
	MoodUnset Mood = ""
	MoodHappy Mood = "happy"
	MoodCalm  Mood = "calm"
	MoodTired Mood = "tired"
	MoodFussy Mood = "fussy"
	MoodSick  Mood = "sick"
)

// AllMoods returns the selectable moods, not including unset.
func AllMoods() []Mood {
	return []Mood{
		MoodHappy,
		MoodCalm,
		MoodTired,
		MoodFussy,
		MoodSick,
	}
}

// ParseMood converts a string to a Mood. Empty input means unset.
func ParseMood(raw string) (Mood, error) {
	m := Mood(strings.ToLower(strings.TrimSpace(raw)))
	if m == MoodUnset {
		return MoodUnset, nil
	}
	for _, candidate := range AllMoods() {
		if candidate == m {
			return candidate, nil
		}
	}
	return MoodUnset, fmt.Errorf("journal: unknown mood %q", raw)
}

// MediaKind identifies the flavor of an attached media item.
type MediaKind string

const (
	MediaImage    MediaKind = "image"
	MediaDocument MediaKind = "document"
	MediaAudio    MediaKind = "audio"
)

// ParseMediaKind converts a string to a MediaKind.
func ParseMediaKind(raw string) (MediaKind, error) {
	k := MediaKind(strings.ToLower(strings.TrimSpace(raw)))
	switch k {
	case MediaImage, MediaDocument, MediaAudio:
		return k, nil
	}
	return "", fmt.Errorf("journal: unknown media kind %q", raw)
}
