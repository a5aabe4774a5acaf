package ui

import (
	"bytes"
	"fmt"

	cfg "github.com/automoto/mobspawn/config"
	"github.com/automoto/mobspawn/systems"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font/gofont/goregular"
)

// HUDUI is the diagnostics overlay drawn over the arena: live mob count,
// frame rates and the control help line.
type HUDUI struct {
	UI *ebitenui.UI

	countLabel *widget.Label
	rateLabel  *widget.Label
	helpLabel  *widget.Label

	normalFace text.Face
	smallFace  text.Face
}

// NewHUDUI creates the overlay with ebitenui
func NewHUDUI() (*HUDUI, error) {
	hud := &HUDUI{}
	if err := hud.loadFonts(); err != nil {
		return nil, err
	}
	hud.buildUI()
	return hud, nil
}

func (hud *HUDUI) loadFonts() error {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return fmt.Errorf("load overlay font: %w", err)
	}

	hud.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   cfg.UI.FontSize,
	}
	hud.smallFace = &text.GoTextFace{
		Source: fontSource,
		Size:   cfg.UI.FontSize * 0.8,
	}
	return nil
}

func (hud *HUDUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.UI.PanelColor)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(cfg.UI.Padding)),
			widget.RowLayoutOpts.Spacing(2),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionStart,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)

	labelColor := &widget.LabelColor{Idle: cfg.UI.TextColor}
	hud.countLabel = widget.NewLabel(widget.LabelOpts.Text(CountText(0), &hud.normalFace, labelColor))
	hud.rateLabel = widget.NewLabel(widget.LabelOpts.Text(RateText(0, 0), &hud.smallFace, labelColor))
	hud.helpLabel = widget.NewLabel(widget.LabelOpts.Text(cfg.UI.HelpText, &hud.smallFace, labelColor))

	panel.AddChild(hud.countLabel)
	panel.AddChild(hud.rateLabel)
	panel.AddChild(hud.helpLabel)
	rootContainer.AddChild(panel)

	hud.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

// Update refreshes the labels from the world. Runs as the last system so the
// count reflects this tick's spawns and despawns.
func (hud *HUDUI) Update(ecs *ecs.ECS) {
	if !systems.GetOrCreateSettings(ecs.World).ShowOverlay {
		return
	}
	hud.countLabel.Label = CountText(systems.CountMobs(ecs.World))
	hud.rateLabel.Label = RateText(ebiten.ActualTPS(), ebiten.ActualFPS())
	hud.UI.Update()
}

// Draw renders the overlay when it is enabled
func (hud *HUDUI) Draw(ecs *ecs.ECS, screen *ebiten.Image) {
	if !systems.GetOrCreateSettings(ecs.World).ShowOverlay {
		return
	}
	hud.UI.Draw(screen)
}

func CountText(count int) string {
	if count == 1 {
		return "1 mob"
	}
	return fmt.Sprintf("%d mobs", count)
}

func RateText(tps, fps float64) string {
	return fmt.Sprintf("TPS %.0f  FPS %.0f", tps, fps)
}
