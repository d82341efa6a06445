package script

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_SegmentKinds(t *testing.T) {
	segments := Parse("[AVATAR: Welcome back!] Today we cover caching. [VO: Let us dig in.][BROLL: server racks]")

	require.Len(t, segments, 4)
	assert.Equal(t, Segment{Kind: KindAvatar, Text: " Welcome back!", HasText: true}, segments[0])
	assert.Equal(t, Segment{Kind: KindNarration, Text: " Today we cover caching. "}, segments[1])
	assert.Equal(t, Segment{Kind: KindVO, Text: " Let us dig in.", HasText: true}, segments[2])
	assert.Equal(t, Segment{Kind: KindBroll, Text: " server racks", HasText: true}, segments[3])
}

func TestParse_UnmarkedTextIsNarration(t *testing.T) {
	segments := Parse("Just a plain script with no markers.")

	require.Len(t, segments, 1)
	assert.Equal(t, KindNarration, segments[0].Kind)
	assert.Equal(t, "Just a plain script with no markers.", segments[0].Text)
}

func TestParse_MalformedMarkers(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"unknown kind", "[CUT: something]"},
		{"lowercase kind", "[vo: text]"},
		{"unterminated", "[VO: never closed"},
		{"stray bracket", "cost was [30] dollars"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			segments := Parse(tt.input)
			require.Len(t, segments, 1)
			assert.Equal(t, KindNarration, segments[0].Kind)
			assert.Equal(t, tt.input, segments[0].Text)
		})
	}
}

func TestParse_BareAndEmptyMarkers(t *testing.T) {
	segments := Parse("[VO][VO:]")

	require.Len(t, segments, 2)
	assert.Equal(t, Segment{Kind: KindVO}, segments[0])
	assert.Equal(t, Segment{Kind: KindVO, Text: "", HasText: true}, segments[1])
}

func TestRender_RoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"[AVATAR: Hi] narration [VO: voice] [BROLL: drone shot of city]",
		"[VO][VO:][AVATAR]",
		"leading text [BROLL: clip] trailing text",
		"broken [VO: no close and [AVATAR: ok]",
		"nested [VO: contains [brackets] sort of]",
	}

	for _, in := range inputs {
		assert.Equal(t, in, Render(Parse(in)), "round trip for %q", in)
	}
}

func TestExtraction(t *testing.T) {
	script := "[AVATAR: Hello viewers.] Narrated intro. [VO: Main point one.] [BROLL: rain on window] [AVATAR: Outro.] [BROLL: sunset timelapse]"
	segments := Parse(script)

	assert.Equal(t, "Hello viewers.\nOutro.", AvatarText(segments))
	assert.Equal(t, "Narrated intro.\nMain point one.", VoiceoverText(segments))
	assert.Equal(t, []string{"rain on window", "sunset timelapse"}, BrollCues(segments))
}

func TestExtraction_WhitespaceNarrationDropped(t *testing.T) {
	segments := Parse("[AVATAR: A] [VO: B]")

	// The single space between markers is not voiceover content.
	assert.Equal(t, "B", VoiceoverText(segments))
}

func TestBrollCues_EmptyCueSkipped(t *testing.T) {
	assert.Nil(t, BrollCues(Parse("[BROLL][BROLL: ]")))
}

func TestTimings(t *testing.T) {
	// 150 words per minute: 150 words take 60 seconds.
	words := make([]byte, 0, 300)
	for i := 0; i < 150; i++ {
		words = append(words, 'w', ' ')
	}
	assert.InDelta(t, 60.0, SpokenSeconds(string(words)), 0.001)

	// 80 ms per character.
	assert.InDelta(t, 0.8, CueSeconds("ten chars."), 0.001)
	assert.Zero(t, CueSeconds(""))
}

func TestAnalyze(t *testing.T) {
	md := Analyze("[AVATAR: one two three] four five [VO: six] [BROLL: a cue]")

	assert.Equal(t, 6, md.WordCount)
	assert.Equal(t, 1, md.AvatarSegments)
	assert.Equal(t, 2, md.VoiceoverParts)
	assert.Equal(t, 1, md.BrollCues)
	assert.InDelta(t, 6.0/150.0*60, md.EstDurationS, 0.001)
}
