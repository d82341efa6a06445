// Package script parses the inline marker grammar that the scripting stage
// produces and the audio, avatar, and broll stages consume:
//
//	segment := "[" kind (":" text)? "]"
//	kind    := "AVATAR" | "VO" | "BROLL"
//
// Anything outside a segment is implicit voiceover narration. Markers are
// case-sensitive. Parse and Render are exact inverses, so a script survives a
// split/re-join round trip byte for byte.
package script

import (
	"strings"

	"github.com/showforge/showforge/pkg/models"
)

// Kind labels a script segment.
type Kind string

const (
	KindAvatar Kind = "AVATAR"
	KindVO     Kind = "VO"
	KindBroll  Kind = "BROLL"

	// KindNarration is unmarked text between segments; it is spoken as
	// voiceover.
	KindNarration Kind = ""
)

// Segment is one parsed piece of a script.
type Segment struct {
	Kind Kind
	Text string

	// HasText distinguishes "[VO: x]" and "[VO:]" from the bare "[VO]" so
	// Render reproduces the source exactly.
	HasText bool
}

var markerKinds = []Kind{KindAvatar, KindVO, KindBroll}

// Parse scans a script left to right into segments. A "[" that does not open
// a well-formed marker is ordinary narration text.
func Parse(s string) []Segment {
	var segments []Segment
	var narration strings.Builder

	flush := func() {
		if narration.Len() > 0 {
			segments = append(segments, Segment{Kind: KindNarration, Text: narration.String()})
			narration.Reset()
		}
	}

	for i := 0; i < len(s); {
		if s[i] == '[' {
			if seg, width, ok := parseMarker(s[i:]); ok {
				flush()
				segments = append(segments, seg)
				i += width
				continue
			}
		}
		narration.WriteByte(s[i])
		i++
	}
	flush()
	return segments
}

// parseMarker tries to read one marker at the start of s (which begins with
// '['). Returns the segment and the number of bytes consumed.
func parseMarker(s string) (Segment, int, bool) {
	for _, kind := range markerKinds {
		rest := s[1:]
		if !strings.HasPrefix(rest, string(kind)) {
			continue
		}
		rest = rest[len(kind):]
		if strings.HasPrefix(rest, "]") {
			return Segment{Kind: kind}, 1 + len(kind) + 1, true
		}
		if strings.HasPrefix(rest, ":") {
			end := strings.IndexByte(rest, ']')
			if end < 0 {
				break
			}
			text := rest[1:end]
			return Segment{Kind: kind, Text: text, HasText: true}, 1 + len(kind) + end + 1, true
		}
	}
	return Segment{}, 0, false
}

// Render is the inverse of Parse.
func Render(segments []Segment) string {
	var b strings.Builder
	for _, seg := range segments {
		if seg.Kind == KindNarration {
			b.WriteString(seg.Text)
			continue
		}
		b.WriteByte('[')
		b.WriteString(string(seg.Kind))
		if seg.HasText {
			b.WriteByte(':')
			b.WriteString(seg.Text)
		}
		b.WriteByte(']')
	}
	return b.String()
}

// AvatarText concatenates avatar segment text in order, newline separated.
func AvatarText(segments []Segment) string {
	return joinKind(segments, func(seg Segment) bool { return seg.Kind == KindAvatar })
}

// VoiceoverText concatenates explicit VO segments and implicit narration in
// order, newline separated. Whitespace-only narration between markers is
// dropped.
func VoiceoverText(segments []Segment) string {
	return joinKind(segments, func(seg Segment) bool {
		return seg.Kind == KindVO || seg.Kind == KindNarration
	})
}

// BrollCues returns the b-roll prompt of each BROLL segment in order.
func BrollCues(segments []Segment) []string {
	var cues []string
	for _, seg := range segments {
		if seg.Kind == KindBroll && strings.TrimSpace(seg.Text) != "" {
			cues = append(cues, strings.TrimSpace(seg.Text))
		}
	}
	return cues
}

func joinKind(segments []Segment, match func(Segment) bool) string {
	var parts []string
	for _, seg := range segments {
		if !match(seg) {
			continue
		}
		if text := strings.TrimSpace(seg.Text); text != "" {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, "\n")
}

// Spoken pace used for duration estimates.
const (
	wordsPerMinute = 150.0
	secondsPerChar = 0.080
)

// SpokenSeconds estimates speech duration at 150 words per minute.
func SpokenSeconds(text string) float64 {
	return float64(WordCount(text)) / wordsPerMinute * 60
}

// CueSeconds estimates a b-roll cue's screen time at 80 ms per character.
func CueSeconds(cue string) float64 {
	return float64(len(cue)) * secondsPerChar
}

// WordCount counts whitespace-separated words.
func WordCount(text string) int {
	return len(strings.Fields(text))
}

// Analyze derives the scripting stage's metadata record from a script.
func Analyze(scriptText string) models.ScriptMetadata {
	segments := Parse(scriptText)

	avatar := AvatarText(segments)
	vo := VoiceoverText(segments)
	cues := BrollCues(segments)

	spoken := avatar
	if vo != "" {
		if spoken != "" {
			spoken += "\n"
		}
		spoken += vo
	}

	md := models.ScriptMetadata{
		WordCount:    WordCount(spoken),
		EstDurationS: SpokenSeconds(spoken),
		BrollCues:    len(cues),
	}
	for _, seg := range segments {
		if strings.TrimSpace(seg.Text) == "" {
			continue
		}
		switch seg.Kind {
		case KindAvatar:
			md.AvatarSegments++
		case KindVO, KindNarration:
			md.VoiceoverParts++
		}
	}
	return md
}
