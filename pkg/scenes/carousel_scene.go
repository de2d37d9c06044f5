package scenes

import (
	"fmt"
	"image/color"
	"log"
	"time"

	"github.com/gonewx/carousel/pkg/config"
	"github.com/gonewx/carousel/pkg/ecs"
	"github.com/gonewx/carousel/pkg/entities"
	"github.com/gonewx/carousel/pkg/game"
	"github.com/gonewx/carousel/pkg/slide"
	"github.com/gonewx/carousel/pkg/systems"
	"github.com/gonewx/carousel/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

var backgroundColor = color.RGBA{R: 24, G: 26, B: 33, A: 255}

// KeyInput 键盘输入抽象
type KeyInput interface {
	IsKeyJustPressed(key ebiten.Key) bool
}

// CarouselScene 轮播场景
//
// 将实体、系统与 slide.Controller 连接在一起：
// InputSystem 把鼠标/触摸轮询结果作为 DOM 事件分发到视口，
// 控制器通过视口订阅手势，通过滑动层驱动平移与过渡。
type CarouselScene struct {
	entityManager *ecs.EntityManager
	carousel      *entities.Carousel
	controller    *slide.Controller
	stateManager  *game.StateManager // 可为 nil（不记录状态）

	layoutSystem     *systems.LayoutSystem
	inputSystem      *systems.InputSystem
	transitionSystem *systems.TransitionSystem
	renderSystem     *systems.RenderSystem

	keys KeyInput

	// diagnostics 在左上角显示控制器状态
	diagnostics bool

	// 等待应用到视口的窗口尺寸
	pendingWidth, pendingHeight int
	hasPendingResize            bool
}

// NewCarouselScene 使用 Ebitengine 输入创建场景
func NewCarouselScene(cfg *config.CarouselConfig, stateManager *game.StateManager) (*CarouselScene, error) {
	input := utils.EbitenInput{}
	return NewCarouselSceneWithInput(cfg, stateManager, input, input)
}

// NewCarouselSceneWithInput 使用指定输入创建场景（测试时注入 mock）
//
// 参数：
//   - cfg: 轮播配置（已通过 Validate）
//   - stateManager: 状态管理器，可为 nil
//   - pointer: 鼠标/触摸输入
//   - keys: 键盘输入
//
// 返回：
//   - *CarouselScene: 已完成初始吸附的场景
//   - error: 实体创建或控制器初始化失败
func NewCarouselSceneWithInput(cfg *config.CarouselConfig, stateManager *game.StateManager, pointer systems.PointerInput, keys KeyInput) (*CarouselScene, error) {
	em := ecs.NewEntityManager()

	carousel, err := entities.NewCarousel(em, cfg, float64(cfg.Window.Width), float64(cfg.Window.Height))
	if err != nil {
		return nil, fmt.Errorf("create carousel entities: %w", err)
	}

	s := &CarouselScene{
		entityManager:    em,
		carousel:         carousel,
		stateManager:     stateManager,
		layoutSystem:     systems.NewLayoutSystem(em),
		inputSystem:      systems.NewInputSystemWithInput(carousel.Viewport, pointer),
		transitionSystem: systems.NewTransitionSystem(em),
		renderSystem:     systems.NewRenderSystem(em, cfg.Carousel.ActiveClass),
		keys:             keys,
		diagnostics:      cfg.Carousel.Diagnostics,
	}

	// 控制器初始化前先完成一次布局，offsetLeft/offsetWidth 才有值
	s.layoutSystem.Update(0)

	slideCount := len(carousel.SlideIDs)
	initialIndex := 0
	if stateManager != nil {
		initialIndex = stateManager.RestoreIndex(slideCount)
	}

	controller, err := slide.New(carousel.Layer, carousel.Viewport,
		slide.WithSensitivity(cfg.Carousel.Sensitivity),
		slide.WithThreshold(cfg.Carousel.Threshold),
		slide.WithDebounceWindow(time.Duration(cfg.Carousel.DebounceMS)*time.Millisecond),
		slide.WithActiveClass(cfg.Carousel.ActiveClass),
		slide.WithInitialIndex(initialIndex),
		slide.WithDiagnostics(cfg.Carousel.Diagnostics),
		slide.WithOnChange(func(idx slide.Index) {
			if stateManager != nil {
				stateManager.SetActiveIndex(idx.Active, slideCount)
			}
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("create slide controller: %w", err)
	}
	if _, err := controller.Init(); err != nil {
		return nil, fmt.Errorf("init slide controller: %w", err)
	}
	s.controller = controller

	log.Printf("[CarouselScene] 场景创建完成: %d 张幻灯片, 起始索引 %d", slideCount, initialIndex)
	return s, nil
}

// Controller 返回轮播控制器
func (s *CarouselScene) Controller() *slide.Controller {
	return s.controller
}

// Carousel 返回轮播实体
func (s *CarouselScene) Carousel() *entities.Carousel {
	return s.carousel
}

// Resize 记录新的窗口尺寸，下一次 Update 时应用
func (s *CarouselScene) Resize(width, height int) {
	s.pendingWidth, s.pendingHeight = width, height
	s.hasPendingResize = true
}

// Update 更新场景
//
// 顺序：视口尺寸 → 布局 → 输入事件 → 键盘导航 → 防抖计时 → 过渡动画
func (s *CarouselScene) Update(deltaTime float64) {
	if s.hasPendingResize {
		s.carousel.Viewport.Resize(float64(s.pendingWidth), float64(s.pendingHeight))
		s.hasPendingResize = false
	}

	s.layoutSystem.Update(deltaTime)
	s.inputSystem.Update()
	s.updateKeyboard()
	s.controller.Update(deltaTime)
	s.transitionSystem.Update(deltaTime)
}

func (s *CarouselScene) updateKeyboard() {
	if s.keys == nil {
		return
	}
	var err error
	switch {
	case s.keys.IsKeyJustPressed(ebiten.KeyArrowRight):
		err = s.controller.GoNext()
	case s.keys.IsKeyJustPressed(ebiten.KeyArrowLeft):
		err = s.controller.GoPrev()
	}
	if err != nil {
		log.Printf("[CarouselScene] 键盘导航失败: %v", err)
	}
}

// Draw 绘制场景
func (s *CarouselScene) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	s.renderSystem.Draw(screen)

	if s.diagnostics {
		idx := s.controller.Index()
		d := s.controller.Distance()
		ebitenutil.DebugPrint(screen, fmt.Sprintf("state: %s\nindex: %d/%d\nfinal: %.1f\nmove: %.1f\nmovement: %.1f\nTPS: %.0f",
			s.controller.State(), idx.Active, len(s.carousel.SlideIDs), d.FinalPosition, d.MovePosition, d.Movement, ebiten.ActualTPS()))
	}
}

// SaveOnExit 保存当前幻灯片索引
func (s *CarouselScene) SaveOnExit() bool {
	if s.stateManager == nil || !s.stateManager.IsDirty() {
		return true
	}
	if err := s.stateManager.Save(); err != nil {
		log.Printf("[CarouselScene] 保存状态失败: %v", err)
		return false
	}
	return true
}

// Destroy 取消控制器的全部订阅
func (s *CarouselScene) Destroy() {
	s.controller.Destroy()
}
