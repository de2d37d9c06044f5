// Package app 提供应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"io"
	"log"

	"github.com/gonewx/carousel/pkg/config"
	"github.com/gonewx/carousel/pkg/embedded"
	"github.com/gonewx/carousel/pkg/game"
	"github.com/gonewx/carousel/pkg/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// DefaultConfigPath 嵌入的默认配置
const DefaultConfigPath = "assets/config/carousel.yaml"

// fallbackSlideCount 配置中没有幻灯片时生成的数量
const fallbackSlideCount = 5

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 外部配置文件路径，为空则使用嵌入的默认配置
	ConfigPath string
	// Slides 大于 0 时忽略配置中的幻灯片，生成指定数量的编号幻灯片
	Slides int
}

// App 是应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager   *game.SceneManager
	stateManager   *game.StateManager
	carouselConfig *config.CarouselConfig
	verbose        bool
}

// NewApp 创建并初始化应用
//
// 使用嵌入配置时，调用此函数前必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	carouselConfig, err := LoadConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("配置加载失败: %w", err)
	}
	log.Printf("[App] 配置加载完成: %d 张幻灯片", len(carouselConfig.Slides))

	// gdata 不可用时以降级模式运行
	stateManager, err := game.NewStateManager(game.OpenStore(game.AppName))
	if err != nil {
		return nil, fmt.Errorf("状态管理器初始化失败: %w", err)
	}

	scene, err := scenes.NewCarouselScene(carouselConfig, stateManager)
	if err != nil {
		return nil, fmt.Errorf("轮播场景创建失败: %w", err)
	}

	sceneManager := game.NewSceneManager()
	sceneManager.SwitchTo(scene)

	return &App{
		sceneManager:   sceneManager,
		stateManager:   stateManager,
		carouselConfig: carouselConfig,
		verbose:        cfg.Verbose,
	}, nil
}

// LoadConfig 按启动参数解析轮播配置
//
// 优先级：ConfigPath 指定的文件 > 嵌入的默认配置；
// Slides > 0 时覆盖配置中的幻灯片列表，列表为空时生成默认幻灯片。
func LoadConfig(cfg Config) (*config.CarouselConfig, error) {
	var (
		carouselConfig *config.CarouselConfig
		err            error
	)
	if cfg.ConfigPath != "" {
		carouselConfig, err = config.LoadCarouselConfig(cfg.ConfigPath)
		if err != nil {
			return nil, err
		}
		log.Printf("[Config] 加载配置文件: %s", cfg.ConfigPath)
	} else {
		var data []byte
		data, err = embedded.ReadFile(DefaultConfigPath)
		if err != nil {
			return nil, fmt.Errorf("读取嵌入配置失败: %w", err)
		}
		carouselConfig, err = config.ParseCarouselConfig(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", DefaultConfigPath, err)
		}
	}

	switch {
	case cfg.Slides > 0:
		carouselConfig.Slides = config.DefaultSlides(cfg.Slides)
	case len(carouselConfig.Slides) == 0:
		carouselConfig.Slides = config.DefaultSlides(fallbackSlideCount)
	}
	return carouselConfig, nil
}

// Update 更新逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 窗口关闭时保存状态后退出
	if ebiten.IsWindowBeingClosed() {
		a.SaveOnExit()
		return ebiten.Termination
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		fullscreen := !ebiten.IsFullscreen()
		ebiten.SetFullscreen(fullscreen)
		a.stateManager.SetFullscreen(fullscreen)
		log.Printf("[App] Fullscreen: %v", fullscreen)
	}

	deltaTime := 1.0 / float64(ebiten.TPS())
	a.sceneManager.Update(deltaTime)
	return nil
}

// Draw 绘制画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// Layout 使用窗口的实际尺寸作为逻辑尺寸
// 尺寸变化会转发给当前场景，由轮播控制器重新计算几何
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	a.sceneManager.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

// SaveOnExit 保存场景与应用状态
func (a *App) SaveOnExit() {
	a.sceneManager.SaveOnExit()
	if a.stateManager.IsDirty() {
		if err := a.stateManager.Save(); err != nil {
			log.Printf("[App] 保存状态失败: %v", err)
		}
	}
}

// WindowConfig 返回窗口配置
func (a *App) WindowConfig() config.WindowConfig {
	return a.carouselConfig.Window
}

// StartFullscreen 上次退出时是否处于全屏
func (a *App) StartFullscreen() bool {
	return a.stateManager.GetState().Fullscreen
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
