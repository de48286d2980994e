package tui

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/snake-village/internal/core"
)

// particle is a short-lived spark drawn around eaten food. Positions are in
// board cells.
type particle struct {
	x, y   float64
	vx, vy float64
	life   int
}

// Particles is a small cosmetic particle system advanced once per game tick.
type Particles struct {
	rng   *rand.Rand
	items []particle
}

const (
	burstSize    = 10
	particleLife = 6
)

// NewParticles creates an empty particle system.
func NewParticles(seed int64) *Particles {
	return &Particles{rng: rand.New(rand.NewSource(seed))}
}

// Burst spawns sparks radiating from cell (cx, cy).
func (p *Particles) Burst(cx, cy int) {
	for i := 0; i < burstSize; i++ {
		angle := p.rng.Float64() * 2 * math.Pi
		speed := 0.4 + p.rng.Float64()*0.6
		p.items = append(p.items, particle{
			x:    float64(cx),
			y:    float64(cy),
			vx:   math.Cos(angle) * speed,
			vy:   math.Sin(angle) * speed,
			life: particleLife - p.rng.Intn(3),
		})
	}
}

// Step moves every particle and drops the expired ones.
func (p *Particles) Step() {
	alive := p.items[:0]
	for _, it := range p.items {
		it.x += it.vx
		it.y += it.vy
		it.life--
		if it.life > 0 {
			alive = append(alive, it)
		}
	}
	p.items = alive
}

// Clear removes all particles.
func (p *Particles) Clear() {
	p.items = p.items[:0]
}

// Len returns the number of live particles.
func (p *Particles) Len() int {
	return len(p.items)
}

// Draw plots particles that fall inside a cols x rows board. plot receives
// the cell and a rune that fades with the particle's remaining life.
func (p *Particles) Draw(cols, rows int, plot func(cx, cy int, r rune)) {
	for _, it := range p.items {
		cx, cy := int(math.Round(it.x)), int(math.Round(it.y))
		if !core.NewRect(0, 0, cols, rows).Contains(cx, cy) {
			continue
		}
		r := '·'
		if it.life > particleLife/2 {
			r = '*'
		}
		plot(cx, cy, r)
	}
}
