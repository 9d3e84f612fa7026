package stats

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/typespeed/internal/model"
)

func TestScore(t *testing.T) {
	tests := []struct {
		name      string
		reference string
		typed     string
		elapsed   time.Duration
		want      model.Results
	}{
		{
			name:      "empty input",
			reference: "the quick brown",
			typed:     "",
			elapsed:   10 * time.Second,
			want:      model.Results{Elapsed: 10 * time.Second, ElapsedSeconds: 10},
		},
		{
			name:      "whitespace only input",
			reference: "the quick brown",
			typed:     "   \t ",
			elapsed:   10 * time.Second,
			want:      model.Results{Elapsed: 10 * time.Second, ElapsedSeconds: 10},
		},
		{
			name:      "exact match over one minute",
			reference: "the quick brown",
			typed:     "the quick brown",
			elapsed:   time.Minute,
			want:      model.Results{Elapsed: time.Minute, ElapsedSeconds: 60, WPM: 3, Accuracy: 100},
		},
		{
			name:      "single substituted character",
			reference: "abcde",
			typed:     "abcXe",
			elapsed:   30 * time.Second,
			want:      model.Results{Elapsed: 30 * time.Second, ElapsedSeconds: 30, WPM: 2, Accuracy: 80, Mistakes: 1},
		},
		{
			name:      "not started",
			reference: "the quick brown",
			typed:     "the",
			elapsed:   0,
			want:      model.Results{WPM: 0, Accuracy: 100},
		},
		{
			name:      "negative elapsed clamps",
			reference: "the",
			typed:     "the",
			elapsed:   -time.Second,
			want:      model.Results{Accuracy: 100},
		},
		{
			name:      "typed beyond reference",
			reference: "ab",
			typed:     "ab cd",
			elapsed:   time.Minute,
			want:      model.Results{Elapsed: time.Minute, ElapsedSeconds: 60, WPM: 2, Accuracy: 40, Mistakes: 1},
		},
		{
			name:      "leading whitespace is trimmed",
			reference: "go fast",
			typed:     "  go fast  ",
			elapsed:   30 * time.Second,
			want:      model.Results{Elapsed: 30 * time.Second, ElapsedSeconds: 30, WPM: 4, Accuracy: 100},
		},
		{
			name:      "wpm rounds half up",
			reference: "a b c",
			typed:     "a",
			elapsed:   40 * time.Second,
			want:      model.Results{Elapsed: 40 * time.Second, ElapsedSeconds: 40, WPM: 2, Accuracy: 100},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Score(tt.reference, tt.typed, tt.elapsed)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestScoreWordMismatch(t *testing.T) {
	got := Score("the quick brown", "the slow brown", time.Minute)
	assert.Equal(t, 1, got.Mistakes)
	assert.Less(t, got.Accuracy, 100)
	assert.Equal(t, 3, got.WPM)
}

func TestScoreAccuracyAndMistakesDisagree(t *testing.T) {
	// A doubled space shifts every later character but not the words.
	got := Score("one two", "one  two", time.Minute)
	assert.Equal(t, 0, got.Mistakes)
	assert.Equal(t, 50, got.Accuracy)
}

func TestScoreCountsRunesNotBytes(t *testing.T) {
	got := Score("héllo", "héllo", time.Minute)
	assert.Equal(t, 100, got.Accuracy)
	assert.Equal(t, 0, got.Mistakes)
}

func TestLive(t *testing.T) {
	live := Live(model.Results{ElapsedSeconds: 12.5, WPM: 40, Accuracy: 97, Mistakes: 3})
	assert.Equal(t, model.LiveMetrics{ElapsedSeconds: 12.5, WPM: 40, Accuracy: 97}, live)
}

func TestRenderResults(t *testing.T) {
	var buf bytes.Buffer
	err := RenderResults(&buf, model.Results{ElapsedSeconds: 29.6, WPM: 41, Accuracy: 96, Mistakes: 2})
	require.NoError(t, err)
	want := "Metric   Value\n" +
		"Time (s)    30\n" +
		"WPM         41\n" +
		"Accuracy   96%\n" +
		"Mistakes     2\n"
	assert.Equal(t, want, buf.String())
}

func TestFormatters(t *testing.T) {
	assert.Equal(t, "0", FormatSeconds(0.4))
	assert.Equal(t, "3", FormatSeconds(2.5))
	assert.Equal(t, "87%", FormatAccuracy(87))
}
