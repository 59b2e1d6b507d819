package ai

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildSystemPromptDeterministic(t *testing.T) {
	a := BuildSystemPrompt("B1", "career-goals", "present perfect", "conversation")
	b := BuildSystemPrompt("B1", "career-goals", "present perfect", "conversation")
	assert.Equal(t, a, b)
}

func TestBuildSystemPromptGrammarFocus(t *testing.T) {
	p := BuildSystemPrompt("A2", "travel-plans", "past simple", "conversation")
	assert.Contains(t, p, "Grammar focus: past simple.")
	assert.NotContains(t, p, "one high-impact mistake")

	p = BuildSystemPrompt("A2", "travel-plans", "", "conversation")
	assert.Contains(t, p, "Correct only one high-impact mistake per turn.")
	assert.NotContains(t, p, "Grammar focus:")
}

func TestBuildSystemPromptChallengeLevels(t *testing.T) {
	cases := map[string]string{
		"A1": "about A2",
		"A2": "about B1",
		"B1": "about B2",
		"B2": "about C1",
		"C1": "about C2",
	}
	for level, want := range cases {
		p := BuildSystemPrompt(level, "introductions", "", "conversation")
		assert.Contains(t, p, want, "level %s", level)
	}

	p := BuildSystemPrompt("C2", "nuance-and-tone", "", "conversation")
	assert.Contains(t, p, "idiomatic C2-level language")
	assert.NotContains(t, p, "roughly one level above")

	p = BuildSystemPrompt("X9", "introductions", "", "conversation")
	assert.Contains(t, p, "slightly above the student's current level")
}

func TestBuildSystemPromptModes(t *testing.T) {
	conv := BuildSystemPrompt("A1", "introductions", "", "conversation")
	assert.Contains(t, conv, "finish with a question")
	assert.NotContains(t, conv, "translation drill")

	lesson := BuildSystemPrompt("A1", "introductions", "", "lesson")
	assert.Contains(t, lesson, "translation drill")
	assert.Contains(t, lesson, "Evaluate the previous translation")
	assert.NotContains(t, lesson, "finish with a question")
}

func TestBuildSystemPromptJSONInstruction(t *testing.T) {
	for _, mode := range []string{"conversation", "lesson"} {
		p := BuildSystemPrompt("B2", "business-talks", "", mode)
		if !strings.Contains(p, "strict JSON object with keys: reply, tip") {
			t.Fatalf("mode %s prompt misses JSON instruction:\n%s", mode, p)
		}
	}
}
