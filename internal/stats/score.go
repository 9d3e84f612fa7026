// Package stats contains typing test scoring and reporting.
package stats

import (
	"math"
	"strings"
	"time"

	"github.com/verte-zerg/typespeed/internal/model"
)

// Score computes results for typed against reference after elapsed time.
//
// WPM counts every typed word, correct or not. Accuracy compares the
// trimmed input character by character with the reference, spaces
// included, while mistakes compare word by word; the two can disagree.
func Score(reference, typed string, elapsed time.Duration) model.Results {
	if elapsed < 0 {
		elapsed = 0
	}
	trimmed := strings.TrimSpace(typed)
	typedWords := strings.Fields(trimmed)
	return model.Results{
		Elapsed:        elapsed,
		ElapsedSeconds: elapsed.Seconds(),
		WPM:            grossWPM(len(typedWords), elapsed),
		Accuracy:       charAccuracy(reference, trimmed),
		Mistakes:       wordMistakes(strings.Split(reference, " "), typedWords),
	}
}

// Live drops the fields that are hidden while a session is running.
func Live(r model.Results) model.LiveMetrics {
	return model.LiveMetrics{
		ElapsedSeconds: r.ElapsedSeconds,
		WPM:            r.WPM,
		Accuracy:       r.Accuracy,
	}
}

func grossWPM(words int, elapsed time.Duration) int {
	minutes := elapsed.Minutes()
	if minutes <= 0 {
		return 0
	}
	return int(math.Round(float64(words) / minutes))
}

func charAccuracy(reference, typed string) int {
	typedRunes := []rune(typed)
	if len(typedRunes) == 0 {
		return 0
	}
	refRunes := []rune(reference)
	matching := 0
	for i, r := range typedRunes {
		if i < len(refRunes) && refRunes[i] == r {
			matching++
		}
	}
	return int(math.Round(100 * float64(matching) / float64(len(typedRunes))))
}

func wordMistakes(referenceWords, typedWords []string) int {
	mistakes := 0
	for i, word := range typedWords {
		if i >= len(referenceWords) || referenceWords[i] != word {
			mistakes++
		}
	}
	return mistakes
}
