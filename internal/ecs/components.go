package ecs

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Health represents entity health with iframe
type Health struct {
	Current int
	Max     int
	Iframe  float32 // seconds of invincibility left (0 = can be hit)
}

// TakeDamage applies damage if not invincible, returns true if dead
func (h *Health) TakeDamage(amount int) bool {
	if h.Iframe > 0 {
		return false
	}
	h.Current -= amount
	return h.Current <= 0
}

// IsAlive returns true if health > 0
func (h *Health) IsAlive() bool {
	return h.Current > 0
}

// Target is an optional point an enemy steers toward
type Target struct {
	Point mgl32.Vec3
	Valid bool
}

// Set points the target at p
func (t *Target) Set(p mgl32.Vec3) {
	t.Point = p
	t.Valid = true
}

// Clear drops the target
func (t *Target) Clear() {
	t.Point = mgl32.Vec3{}
	t.Valid = false
}

// Has reports whether a target is set
func (t Target) Has() bool {
	return t.Valid
}

// Facing is the heading in radians, 0 along +x, counter-clockwise
type Facing struct {
	Angle float32
}

// AI represents enemy pursuit behavior
type AI struct {
	DetectRadius    float32
	DisengageRadius float32
	ContactDamage   int
}

// Bullet represents bullet-specific data
type Bullet struct {
	Damage    int
	Increment float32 // dropoff rate growth per tick
}

// Player represents player-specific data
type Player struct {
	Iframes       float32
	ShootInterval float32

	// Timers (seconds)
	ShootCooldown float32
}

// CanShoot returns true once the shoot cooldown has run out
func (p Player) CanShoot() bool {
	return p.ShootCooldown <= 0
}
