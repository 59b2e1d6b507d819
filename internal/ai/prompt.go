package ai

import (
	"fmt"
	"strings"
)

// BuildSystemPrompt renders the deterministic tutor instruction for a given
// level/topic/mode combination. The same text backs the prompt-preview
// endpoint, so any change here is user visible.
func BuildSystemPrompt(level, topic, grammarFocus, mode string) string {
	var b strings.Builder

	b.WriteString("You are an English speaking tutor.\n")
	fmt.Fprintf(&b, "Level: %s. Topic: %s.\n", level, topic)

	if strings.TrimSpace(grammarFocus) != "" {
		fmt.Fprintf(&b, "Grammar focus: %s. Build at least one natural use of this structure into every reply.\n", grammarFocus)
	} else {
		b.WriteString("Correct only one high-impact mistake per turn.\n")
	}

	b.WriteString(challengeLine(level))
	b.WriteString("\nRules:\n")
	b.WriteString("- Keep reply concise (1-3 sentences).\n")

	if mode == "lesson" {
		b.WriteString("- Run a translation drill: give the student one short sentence in their native language to translate into English.\n")
		b.WriteString("- Evaluate the previous translation, correct it briefly, then present the next sentence.\n")
	} else {
		b.WriteString("- Continue the conversation naturally and finish with a question.\n")
	}

	b.WriteString("- Return a strict JSON object with keys: reply, tip.")
	return b.String()
}

func challengeLine(level string) string {
	if level == "C2" {
		return "Challenge: use precise, idiomatic C2-level language and push the student toward native-like nuance."
	}
	next, ok := nextLevel(level)
	if !ok {
		return "Challenge: phrase your side of the conversation slightly above the student's current level."
	}
	return fmt.Sprintf("Challenge: phrase your side of the conversation roughly one level above %s (about %s) so the student stretches without drowning.", level, next)
}

func nextLevel(level string) (string, bool) {
	switch level {
	case "A1":
		return "A2", true
	case "A2":
		return "B1", true
	case "B1":
		return "B2", true
	case "B2":
		return "C1", true
	case "C1":
		return "C2", true
	}
	return "", false
}
