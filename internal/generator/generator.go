// Package generator builds typing text sequences.
package generator

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/verte-zerg/typespeed/internal/wordlist"
)

// DefaultWords is the number of words in a generated paragraph.
const DefaultWords = 20

var (
	// ErrInvalidArgument is returned when the word count cannot be satisfied.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNoPools is returned when there is nothing to draw from.
	ErrNoPools = errors.New("no word pools")
)

// Generator produces randomized typing text.
type Generator struct {
	rnd *rand.Rand
}

// New returns a Generator seeded with the current time.
func New() *Generator {
	return NewWithSeed(time.Now().UnixNano())
}

// NewWithSeed returns a Generator with a fixed seed.
func NewWithSeed(seed int64) *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(seed))}
}

// Generate picks one pool uniformly, shuffles a copy of it and joins the
// first count words with single spaces. The count must not exceed the
// smallest pool so the outcome never depends on which pool was drawn.
func (g *Generator) Generate(pools [][]string, count int) (string, error) {
	words, err := g.Words(pools, count)
	if err != nil {
		return "", err
	}
	return strings.Join(words, " "), nil
}

// Words is Generate without the final join.
func (g *Generator) Words(pools [][]string, count int) ([]string, error) {
	if err := CheckCount(pools, count); err != nil {
		return nil, err
	}
	pool := pools[g.rnd.Intn(len(pools))]
	shuffled := append([]string(nil), pool...)
	g.rnd.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled[:count], nil
}

// CheckCount validates a word count against a pool set.
func CheckCount(pools [][]string, count int) error {
	if len(pools) == 0 {
		return ErrNoPools
	}
	if count <= 0 {
		return fmt.Errorf("%w: word count must be > 0, got %d", ErrInvalidArgument, count)
	}
	if limit := wordlist.MinPoolSize(pools); count > limit {
		return fmt.Errorf("%w: word count %d exceeds pool size %d", ErrInvalidArgument, count, limit)
	}
	return nil
}
