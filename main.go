// 轮播演示程序
//
// 用法：
//
//	go run . --verbose
//	go run . --config=carousel.yaml
//	go run . --slides=8
package main

import (
	"errors"
	"flag"
	"log"

	"github.com/gonewx/carousel/pkg/app"
	"github.com/gonewx/carousel/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	configPath = flag.String("config", "", "配置文件路径（为空使用内置配置）")
	verbose    = flag.Bool("verbose", false, "详细日志")
	slides     = flag.Int("slides", 0, "生成指定数量的编号幻灯片（覆盖配置）")
)

func main() {
	flag.Parse()

	// 初始化嵌入资源，assetsFS 在 embed.go 中声明
	embedded.Init(assetsFS)

	carouselApp, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		ConfigPath: *configPath,
		Slides:     *slides,
	})
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}

	window := carouselApp.WindowConfig()
	ebiten.SetWindowSize(window.Width, window.Height)
	ebiten.SetWindowTitle(window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetFullscreen(carouselApp.StartFullscreen())

	if err := ebiten.RunGame(carouselApp); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
