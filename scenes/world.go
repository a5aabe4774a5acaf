package scenes

import (
	"sync"

	"github.com/automoto/mobspawn/assets"
	"github.com/automoto/mobspawn/components"
	cfg "github.com/automoto/mobspawn/config"
	"github.com/automoto/mobspawn/logger"
	"github.com/automoto/mobspawn/systems"
	"github.com/automoto/mobspawn/systems/factory"
	"github.com/automoto/mobspawn/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// MobScene is the arena where mobs are spawned, damaged and despawned
type MobScene struct {
	ecs  *ecs.ECS
	once sync.Once
}

func NewMobScene() *MobScene {
	return &MobScene{}
}

func (ms *MobScene) Update() {
	ms.once.Do(ms.configure)
	ms.ecs.Update()
}

func (ms *MobScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(cfg.Background)

	if ms.ecs == nil {
		return
	}
	ms.ecs.Draw(screen)
}

func (ms *MobScene) configure() {
	ecs := NewMobECS()

	hud, err := ui.NewHUDUI()
	if err != nil {
		logger.L().Warn("overlay disabled", zap.Error(err))
	} else {
		ecs.AddSystem(hud.Update)
		ecs.AddRenderer(cfg.LayerOverlay, hud.Draw)
	}

	loadSpriteSheet(ecs.World)
	ms.ecs = ecs
}

// NewMobECS builds the world with its singletons, lifecycle subscriptions and
// the per-tick system order. Structural changes only happen in
// UpdateLifecycle; everything after it reads a settled graph.
func NewMobECS() *ecs.ECS {
	ecs := ecs.NewECS(donburi.NewWorld())

	factory.CreateCamera(ecs.World)
	factory.CreateArenaSpace(ecs.World)
	systems.RegisterLifecycle(ecs.World)

	ecs.AddSystem(systems.UpdateClock)
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateSettings)
	ecs.AddSystem(systems.UpdateLifecycle)
	ecs.AddSystem(systems.UpdateAnimations)
	ecs.AddSystem(systems.UpdateEffects)
	ecs.AddSystem(systems.UpdateHealthBars)

	ecs.AddRenderer(cfg.LayerWorld, systems.DrawMobs)
	ecs.AddRenderer(cfg.LayerWorld, systems.DrawHealthBars)
	ecs.AddRenderer(cfg.LayerWorld, systems.DrawNameTags)
	ecs.AddRenderer(cfg.LayerWorld, systems.DrawHitboxes)

	return ecs
}

// loadSpriteSheet stores the mob sheet as a singleton. Without it mobs still
// spawn and draw as plain rectangles.
func loadSpriteSheet(w donburi.World) {
	sheet, layout, err := assets.LoadSpriteSheet()
	if err != nil {
		logger.L().Error("sprite sheet unavailable", zap.String("path", cfg.Atlas.SheetPath), zap.Error(err))
		return
	}
	entry := w.Entry(w.Create(components.SpriteSheet))
	components.SpriteSheet.SetValue(entry, components.SpriteSheetData{Image: sheet, Layout: layout})
}
