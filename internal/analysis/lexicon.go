// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Lumimood Labs

package analysis

import (
	"math"
	"strings"
	"unicode"

	"github.com/lumimood/moodcore/models"
)

// Fixed keyword lexicons backing the local analysis tier. The tier is the
// system's safety net: it must stay a pure function of its input, so the
// sets are compiled in and never loaded from anywhere at runtime.
var positiveWords = wordSet(
	"happy", "joy", "joyful", "glad", "grateful", "gratitude", "thankful",
	"love", "loved", "wonderful", "great", "good", "nice", "calm",
	"peaceful", "relaxed", "relieved", "hopeful", "hope", "excited",
	"proud", "success", "successful", "progress", "growth", "energized",
	"energetic", "fun", "enjoy", "enjoyed", "laugh", "laughed", "smile",
	"smiled", "warm", "cozy", "content", "satisfied", "accomplished",
	"confident", "optimistic", "blessed", "amazing", "awesome",
	"beautiful", "sunshine", "delighted", "cheerful", "bright", "free",
)

var negativeWords = wordSet(
	"sad", "unhappy", "depressed", "depressing", "anxious", "anxiety",
	"stress", "stressed", "angry", "anger", "mad", "furious", "upset",
	"disappointed", "frustrated", "frustrating", "lonely", "alone",
	"isolated", "afraid", "scared", "fear", "worried", "worry", "nervous",
	"tired", "exhausted", "drained", "bored", "hopeless", "helpless",
	"overwhelmed", "crying", "cried", "tears", "terrible", "awful",
	"horrible", "hate", "hated", "miserable", "gloomy", "regret",
	"guilty", "ashamed", "hurt", "pain", "painful", "lost", "numb",
)

var stressWords = wordSet(
	"stress", "stressed", "pressure", "anxious", "anxiety", "overwhelmed",
	"deadline", "deadlines", "exam", "exams", "overtime", "insomnia",
	"sleepless", "headache", "migraine", "panic", "burnout", "swamped",
)

func wordSet(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// segmentText tokenizes journal text for lexicon matching. Space-delimited
// scripts are lowercased and split on non-letter boundaries; CJK ideographs
// carry meaning per character and are emitted as single-rune tokens, which
// keeps the tier usable for unsegmented scripts without any dictionary.
func segmentText(text string) []string {
	var tokens []string
	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}
	}

	for _, r := range strings.ToLower(text) {
		switch {
		case unicode.Is(unicode.Han, r) || unicode.Is(unicode.Hiragana, r) || unicode.Is(unicode.Katakana, r):
			flush()
			tokens = append(tokens, string(r))
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '\'':
			current.WriteRune(r)
		default:
			flush()
		}
	}
	flush()

	return tokens
}

// scoreLocally derives a sentiment/stress pair from token lexicon hits.
//
//	sentiment = (pos - neg) / (pos + neg), 0.0 when both counts are zero
//	stress    = round(stressHits*2.5 + neg*0.8), minus 2 when sentiment > 0.3
//
// Both values are clamped to their documented ranges; identical input
// always yields identical output.
func scoreLocally(words []string) models.Score {
	var pos, neg, stressHits int
	for _, w := range words {
		if _, ok := positiveWords[w]; ok {
			pos++
		}
		if _, ok := negativeWords[w]; ok {
			neg++
		}
		if _, ok := stressWords[w]; ok {
			stressHits++
		}
	}

	score := 0.0
	if total := pos + neg; total > 0 {
		score = math.Round(float64(pos-neg)/float64(total)*100) / 100
		score = clampSentiment(score)
	}

	stress := int(math.Round(float64(stressHits)*2.5 + float64(neg)*0.8))
	stress = clampStress(stress)
	if score > 0.3 {
		stress = max(stress-2, 0)
	}

	return models.Score{Sentiment: score, Stress: stress}
}

// LocalScore runs the deterministic keyword heuristic over text. Exposed
// for callers (e.g. chat message tracking) that want a cheap local score
// without the tier ladder or feedback generation.
func LocalScore(text string) models.Score {
	return scoreLocally(segmentText(text))
}

func clampSentiment(v float64) float64 {
	return math.Max(-1.0, math.Min(1.0, v))
}

func clampStress(v int) int {
	return max(0, min(10, v))
}
