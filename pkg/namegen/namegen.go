// Package namegen generates unique node ids and placeholder titles for
// freshly created outline lines. New lines get a proper noun rather than
// an empty string so the outline stays readable before the user types
// anything.
package namegen

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"sync"
	"time"
)

// firstNames is the pool of placeholder titles.
var firstNames = []string{
	"Ingrid", "Astrid", "Bjorn", "Clara", "Dagny", "Elias", "Freya",
	"Gustav", "Hanna", "Ivar", "Johanna", "Klaus", "Liv", "Magnus",
	"Nora", "Oskar", "Petra", "Ragnar", "Sigrid", "Tobias", "Ulla",
	"Viktor", "Wilma", "Yngve", "Zelda",
}

// Generator produces unique ids and random placeholder titles. Safe for
// concurrent use.
type Generator struct {
	mu      sync.Mutex
	rng     *rand.Rand
	counter uint64
	epoch   string
}

// New creates a generator seeded from the current time.
func New() *Generator {
	now := time.Now()
	seed := rand.NewPCG(uint64(now.UnixNano()), uint64(now.Unix()))
	return &Generator{
		rng:   rand.New(seed),
		epoch: strconv.FormatInt(now.UnixMilli(), 36),
	}
}

// NewID returns a fresh id, unique within this process run: a millisecond
// epoch captured at construction plus a monotonic counter.
func (g *Generator) NewID() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.counter++
	return fmt.Sprintf("n_%s_%s", g.epoch, strconv.FormatUint(g.counter, 36))
}

// NewTitle returns a random placeholder title.
func (g *Generator) NewTitle() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return firstNames[g.rng.IntN(len(firstNames))]
}
