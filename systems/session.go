package systems

import (
	"log"
	"sort"

	"github.com/automoto/bunnyhop/components"
	cfg "github.com/automoto/bunnyhop/config"
	"github.com/automoto/bunnyhop/registry"
	"github.com/automoto/bunnyhop/shared/leveldata"
	"github.com/automoto/bunnyhop/systems/factory"
	"github.com/yohamta/donburi/ecs"
)

// GetSession returns the session singleton, or nil before one is created.
func GetSession(ecs *ecs.ECS) *components.SessionData {
	entry, ok := components.Session.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Session.Get(entry)
}

// StartSession moves the session into Running: the score resets, the
// registry is emptied, the starting platforms are installed and the player
// is placed at its spawn point.
func StartSession(ecs *ecs.ECS, layout *leveldata.Layout) {
	session := GetSession(ecs)
	if session == nil {
		factory.CreateSession(ecs, 1, 0)
		session = GetSession(ecs)
	}
	if layout == nil {
		layout = leveldata.Default()
	}

	for _, entry := range registry.All(ecs.World) {
		registry.MarkDead(entry)
	}
	registry.PurgeDead(ecs.World)
	registry.Setup(ecs.World, cfg.World.Width, cfg.World.Height)

	session.State = cfg.SessionRunning
	session.EndReason = cfg.EndNone
	session.Score = 0
	session.NewHighScore = false
	session.Tick = 0
	session.Now = 0
	session.MobTimer = 0
	DrainSFX(ecs)

	for _, pt := range layout.Platforms {
		newPlatform(ecs, pt.X, pt.Y, pt.Variant)
	}
	player := factory.CreatePlayer(ecs, layout.PlayerSpawn.X, layout.PlayerSpawn.Y)
	session.Player = player.Entity()

	UpdateRenderList(ecs)
}

// UpdateSimulation runs one tick of a running session. Input must already be
// sampled. An end condition raised mid-tick lets the tick finish, so the
// final frame still gets its purge and render snapshot.
func UpdateSimulation(ecs *ecs.ECS) {
	session := GetSession(ecs)
	if session == nil || session.State != cfg.SessionRunning {
		return
	}
	session.Tick++
	session.Now += session.Step

	UpdateControls(ecs)
	UpdatePlayer(ecs)
	UpdateMobs(ecs)
	UpdatePowerups(ecs)
	UpdateCollisions(ecs)
	UpdateSpawner(ecs)
	registry.PurgeDead(ecs.World)
	UpdateRenderList(ecs)
}

// EndSession moves a running session to Ended. Later calls keep the first reason.
func EndSession(ecs *ecs.ECS, reason cfg.EndReason) {
	session := GetSession(ecs)
	if session == nil || session.State != cfg.SessionRunning {
		return
	}
	session.State = cfg.SessionEnded
	session.EndReason = reason
	log.Printf("Session ended after %d ticks: %s, score %d", session.Tick, reason, session.Score)
}

// FinishSession compares the final score with the high score and saves a
// new record. A failed save keeps the in-memory record and returns the error.
func FinishSession(ecs *ecs.ECS, store HighScoreStore) (bool, error) {
	session := GetSession(ecs)
	if session == nil || session.Score <= session.HighScore {
		return false, nil
	}
	session.HighScore = session.Score
	session.NewHighScore = true
	if store == nil {
		return true, nil
	}
	return true, store.Save(session.Score)
}

// UpdateRenderList snapshots every live entity ordered by layer, then by
// insertion order within a layer.
func UpdateRenderList(ecs *ecs.ECS) {
	session := GetSession(ecs)
	if session == nil {
		return
	}
	list := session.RenderList[:0]
	for _, entry := range registry.All(ecs.World) {
		ent := components.Entity.Get(entry)
		sprite := components.Sprite.Get(entry)
		list = append(list, components.RenderItem{
			Kind:   ent.Kind,
			Sprite: sprite.ID,
			FlipX:  sprite.FlipX,
			Dest:   *components.Bounds.Get(entry),
			Layer:  ent.Layer,
		})
	}
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].Layer < list[j].Layer
	})
	session.RenderList = list
}
