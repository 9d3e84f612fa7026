package wordlist

var builtinPools = [][]string{
	{
		"the", "quick", "brown", "fox", "jumps", "over", "lazy", "dog", "sun", "rises",
		"in", "east", "happy", "people", "work", "together", "to", "build", "better", "world",
	},
	{
		"rain", "falls", "gently", "on", "green", "fields", "birds", "sing", "sweet", "songs",
		"trees", "sway", "wind", "blows", "softly", "clouds", "drift", "sky", "blue", "calm",
	},
	{
		"time", "flies", "when", "you", "are", "having", "fun", "life", "moves", "fast",
		"days", "pass", "nights", "grow", "long", "stars", "shine", "moon", "glows", "peace",
	},
	{
		"cats", "chase", "mice", "dogs", "bark", "loud", "fish", "swim", "deep", "waters",
		"birds", "fly", "high", "above", "trees", "grow", "tall", "hills", "stand", "firm",
	},
	{
		"love", "brings", "joy", "hearts", "beat", "strong", "hope", "lifts", "spirits", "high",
		"dreams", "guide", "us", "forward", "light", "shines", "bright", "path", "clear", "now",
	},
}

// Builtin returns a copy of the built-in word pools.
func Builtin() [][]string {
	return clonePools(builtinPools)
}

func clonePools(pools [][]string) [][]string {
	out := make([][]string, len(pools))
	for i, pool := range pools {
		out[i] = append([]string(nil), pool...)
	}
	return out
}
