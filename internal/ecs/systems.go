package ecs

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/younwookim/ranger/internal/domain/physics"
)

// InputState holds input for the current frame
type InputState struct {
	Left, Right, Up, Down bool
	Shoot                 bool
	Cursor                mgl32.Vec3 // world coordinates
}

// ClearCollisions resets the per-tick collided flags
func ClearCollisions(w *World) {
	clear(w.Collided)
}

// UpdateTimers counts down all time-based timers
func UpdateTimers(w *World, dt float32) {
	for id, h := range w.Health {
		if h.Iframe > 0 {
			h.Iframe = math32.Max(0, h.Iframe-dt)
			w.Health[id] = h
		}
	}

	for id := range w.IsPlayer {
		player := w.PlayerData[id]
		if player.ShootCooldown > 0 {
			player.ShootCooldown = math32.Max(0, player.ShootCooldown-dt)
			w.PlayerData[id] = player
		}
	}
}

// UpdatePlayerInput turns the held direction keys into this tick's movement
// and turns the player toward the cursor
func UpdatePlayerInput(w *World, input InputState, dt float32) {
	id := w.PlayerID
	if id == 0 {
		return
	}

	var dir mgl32.Vec3
	if input.Up {
		dir[1]++
	}
	if input.Down {
		dir[1]--
	}
	if input.Left {
		dir[0]--
	}
	if input.Right {
		dir[0]++
	}

	motion := w.Motion[id]
	motion.Movement = dir.Mul(motion.Speed * dt)
	w.Motion[id] = motion

	w.Facing[id] = Facing{Angle: physics.Angle(w.Position[id], input.Cursor)}
}

// ShootAtCursor fires a bullet from the player toward the cursor when the
// shoot button is held and the cooldown has run out
func ShootAtCursor(w *World, input InputState, cfg BulletConfig) (EntityID, bool) {
	id := w.PlayerID
	if id == 0 || !input.Shoot {
		return 0, false
	}

	player := w.PlayerData[id]
	if !player.CanShoot() {
		return 0, false
	}

	bullet := w.CreateBullet(w.Position[id], input.Cursor, cfg)
	player.ShootCooldown = player.ShootInterval
	w.PlayerData[id] = player

	return bullet, true
}

// UpdateEnemyAI acquires or drops the player as target and steers toward it.
// An enemy picks the player up inside DetectRadius and keeps following until
// the player gets further away than DisengageRadius.
func UpdateEnemyAI(w *World, dt float32) {
	playerPos, hasPlayer := w.Position[w.PlayerID]

	for id := range w.IsEnemy {
		pos := w.Position[id]
		ai := w.AI[id]
		target := w.Target[id]
		motion := w.Motion[id]

		if hasPlayer {
			dist := playerPos.Sub(pos).Len()
			switch {
			case target.Has() && dist > ai.DisengageRadius:
				target.Clear()
			case target.Has() || dist <= ai.DetectRadius:
				target.Set(playerPos)
			}
		} else {
			target.Clear()
		}

		if target.Has() {
			motion.SteerTowards(pos, target.Point, dt)
			w.Facing[id] = Facing{Angle: physics.Angle(pos, target.Point)}
		} else {
			motion.Stop()
		}

		w.Target[id] = target
		w.Motion[id] = motion
	}
}

// UpdateBulletDropoff decelerates every bullet in flight
func UpdateBulletDropoff(w *World, dt float32) {
	for id := range w.IsBullet {
		motion := w.Motion[id]
		dropoff := w.Dropoff[id]
		dropoff.Apply(&motion, dt, w.BulletData[id].Increment)
		w.Motion[id] = motion
		w.Dropoff[id] = dropoff
	}
}

// RemoveStoppedBullets despawns bullets whose speed ran out
func RemoveStoppedBullets(w *World) int {
	removed := 0
	for _, id := range sortedIDs(w.IsBullet) {
		if w.Motion[id].Speed > 0 {
			continue
		}
		w.DestroyEntity(id)
		removed++
	}
	return removed
}

// BulletHit records a bullet stopped by an enemy or an obstacle
type BulletHit struct {
	Bullet EntityID
	Target EntityID
	Damage int
	Killed bool
}

// DetectBulletHits sweeps every bullet along this tick's movement. The first
// enemy or obstacle the path enters stops the bullet; enemies take
// its damage. Dead enemies are left for RemoveDeadEnemies.
func DetectBulletHits(w *World) []BulletHit {
	var hits []BulletHit
	candidates := append(sortedIDs(w.IsEnemy), sortedIDs(w.IsObstacle)...)

	for _, id := range sortedIDs(w.IsBullet) {
		pos := w.Position[id]
		next := pos.Add(w.Motion[id].Movement)
		bulletBox := w.Box[id].At(pos)

		var hitID EntityID
		best := math32.Inf(1)
		for _, other := range candidates {
			box := w.Box[other].At(w.Position[other])
			entry, ok := bulletBox.MinkowskiDifference(box).SegmentEntry(pos, next)
			if ok && entry < best {
				best = entry
				hitID = other
			}
		}
		if hitID == 0 {
			continue
		}

		hit := BulletHit{Bullet: id, Target: hitID}
		if _, ok := w.IsEnemy[hitID]; ok {
			health := w.Health[hitID]
			hit.Damage = w.BulletData[id].Damage
			hit.Killed = health.TakeDamage(hit.Damage)
			w.Health[hitID] = health
		}
		w.Collided[hitID] = true

		hits = append(hits, hit)
		w.DestroyEntity(id)
	}

	return hits
}

// ContactPair is a pair of entities whose boxes touched this tick
type ContactPair struct {
	A, B EntityID
}

// PhysicsResult summarizes one physics pass
type PhysicsResult struct {
	Contacts           []ContactPair
	SkippedMovingPairs int
}

// UpdatePhysics runs the collision pass over the player, enemies and
// obstacles, then writes the resolved positions back. Bullets are moved by
// MoveBullets instead.
func UpdatePhysics(w *World, bounds physics.Bounds) PhysicsResult {
	ids := make([]EntityID, 0, len(w.Box))
	for _, id := range sortedIDs(w.Box) {
		if _, ok := w.IsBullet[id]; ok {
			continue
		}
		ids = append(ids, id)
	}

	reg := physics.NewRegistry(len(ids))
	for _, id := range ids {
		box := w.Box[id].At(w.Position[id])
		if _, ok := w.IsObstacle[id]; ok {
			reg.AddFixed(box)
			continue
		}
		reg.Add(box, w.Motion[id])
	}

	res := physics.Step(reg, bounds)

	for h, id := range ids {
		w.Position[id] = res.Positions[h]
		if res.Report.Collided[h] {
			w.Collided[id] = true
		}
	}
	SyncBoxes(w)

	result := PhysicsResult{SkippedMovingPairs: res.Report.SkippedMovingPairs}
	for _, c := range res.Report.Contacts {
		result.Contacts = append(result.Contacts, ContactPair{A: ids[c.A], B: ids[c.B]})
	}
	return result
}

// MoveBullets integrates bullet movement
func MoveBullets(w *World) {
	for id := range w.IsBullet {
		w.Position[id] = physics.Integrate(w.Position[id], w.Motion[id].Movement, mgl32.Vec3{})
		box := w.Box[id]
		box.Center = w.Position[id]
		w.Box[id] = box
	}
}

// SyncBoxes moves every box to its entity's position
func SyncBoxes(w *World) {
	for id, box := range w.Box {
		box.Center = w.Position[id]
		w.Box[id] = box
	}
}

// RemoveEscapedBullets despawns bullets entirely outside the bounds
func RemoveEscapedBullets(w *World, bounds physics.Bounds) int {
	removed := 0
	for _, id := range sortedIDs(w.IsBullet) {
		pos := w.Position[id]
		box := w.Box[id]
		outX := bounds.HalfWidth > 0 && math32.Abs(pos.X()) > bounds.HalfWidth+box.HalfWidth
		outY := bounds.HalfHeight > 0 && math32.Abs(pos.Y()) > bounds.HalfHeight+box.HalfHeight
		if !outX && !outY {
			continue
		}
		w.DestroyEntity(id)
		removed++
	}
	return removed
}

// ApplyContactDamage hurts the player for every enemy touching it, either as
// a resolver contact or an overlap left by two movers. A landed hit starts the
// player's i-frames. Returns the damage dealt.
func ApplyContactDamage(w *World, contacts []ContactPair) int {
	playerID := w.PlayerID
	if playerID == 0 {
		return 0
	}

	touching := make(map[EntityID]struct{})
	for _, c := range contacts {
		switch playerID {
		case c.A:
			touching[c.B] = struct{}{}
		case c.B:
			touching[c.A] = struct{}{}
		}
	}
	playerBox := w.Box[playerID]
	for id := range w.IsEnemy {
		if w.Box[id].Overlaps(playerBox) {
			touching[id] = struct{}{}
		}
	}

	dealt := 0
	for _, id := range sortedIDs(touching) {
		if _, ok := w.IsEnemy[id]; !ok {
			continue
		}
		health := w.Health[playerID]
		if health.Iframe > 0 {
			break
		}
		damage := w.AI[id].ContactDamage
		health.TakeDamage(damage)
		health.Iframe = w.PlayerData[playerID].Iframes
		w.Health[playerID] = health
		w.Collided[playerID] = true
		dealt += damage
	}
	return dealt
}

// RemoveDeadEnemies despawns enemies without health left
func RemoveDeadEnemies(w *World) []EntityID {
	var dead []EntityID
	for _, id := range sortedIDs(w.IsEnemy) {
		health := w.Health[id]
		if health.IsAlive() {
			continue
		}
		w.DestroyEntity(id)
		dead = append(dead, id)
	}
	return dead
}

// PlayerDead reports whether the player has run out of health
func PlayerDead(w *World) bool {
	if w.PlayerID == 0 {
		return false
	}
	health := w.Health[w.PlayerID]
	return !health.IsAlive()
}
