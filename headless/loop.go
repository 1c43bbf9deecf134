// Package headless drives sessions without a window: paced in real time for
// front ends that draw elsewhere, or as fast as possible for batch runs.
package headless

import (
	"log"
	"sync"
	"time"

	"github.com/automoto/bunnyhop/components"
	cfg "github.com/automoto/bunnyhop/config"
	"github.com/automoto/bunnyhop/systems"
	"github.com/yohamta/donburi/ecs"
)

// InputSource reports the actions held for the coming tick.
type InputSource func(e *ecs.ECS) [cfg.ActionCount]bool

type Loop struct {
	ecs      *ecs.ECS
	input    InputSource
	method   components.InputMethod
	tickRate int
	onTick   func(e *ecs.ECS)
	stopChan chan struct{}
	stopOnce sync.Once
}

func NewLoop(e *ecs.ECS, input InputSource, method components.InputMethod, tickRate int) *Loop {
	return &Loop{
		ecs:      e,
		input:    input,
		method:   method,
		tickRate: tickRate,
		stopChan: make(chan struct{}),
	}
}

// OnTick registers a callback run after every simulated tick.
func (l *Loop) OnTick(fn func(e *ecs.ECS)) {
	l.onTick = fn
}

// Step samples input and advances one tick. Returns false once the session
// is no longer running.
func (l *Loop) Step() bool {
	session := systems.GetSession(l.ecs)
	if session == nil || session.State != cfg.SessionRunning {
		return false
	}
	var held [cfg.ActionCount]bool
	if l.input != nil {
		held = l.input(l.ecs)
	}
	systems.SampleInput(l.ecs, held, l.method)
	systems.UpdateSimulation(l.ecs)
	if l.onTick != nil {
		l.onTick(l.ecs)
	}
	return session.State == cfg.SessionRunning
}

// Run ticks at the loop's rate until the session ends or Stop is called.
func (l *Loop) Run() {
	ticker := time.NewTicker(time.Second / time.Duration(l.tickRate))
	defer ticker.Stop()

	log.Printf("Game loop started at %d ticks/second", l.tickRate)

	for {
		select {
		case <-l.stopChan:
			log.Println("Game loop stopped")
			return
		case <-ticker.C:
			if !l.Step() {
				return
			}
		}
	}
}

func (l *Loop) Stop() {
	l.stopOnce.Do(func() { close(l.stopChan) })
}
