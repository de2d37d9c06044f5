// cmd/check_config/main.go
// 校验轮播配置，并打印指定视口尺寸下各幻灯片的吸附位置
//
// 用法：
//
//	go run ./cmd/check_config --config=assets/config/carousel.yaml --width=1280 --height=720
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/gonewx/carousel/pkg/config"
	"github.com/gonewx/carousel/pkg/ecs"
	"github.com/gonewx/carousel/pkg/entities"
	"github.com/gonewx/carousel/pkg/slide"
	"github.com/gonewx/carousel/pkg/systems"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99"))
	dimStyle    = lipgloss.NewStyle().Faint(true)
	activeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

var (
	configPath = flag.String("config", "assets/config/carousel.yaml", "配置文件路径")
	width      = flag.Float64("width", 0, "视口宽度（默认使用配置的窗口宽度）")
	height     = flag.Float64("height", 0, "视口高度（默认使用配置的窗口高度）")
	slides     = flag.Int("slides", 0, "生成指定数量的编号幻灯片（覆盖配置）")
)

func main() {
	flag.Parse()

	cfg, err := config.LoadCarouselConfig(*configPath)
	if err != nil {
		fmt.Printf("❌ 配置无效: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("✅ 配置有效: %s\n", *configPath)

	if *slides > 0 {
		cfg.Slides = config.DefaultSlides(*slides)
	}
	w, h := *width, *height
	if w <= 0 {
		w = float64(cfg.Window.Width)
	}
	if h <= 0 {
		h = float64(cfg.Window.Height)
	}

	em := ecs.NewEntityManager()
	carousel, err := entities.NewCarousel(em, cfg, w, h)
	if err != nil {
		fmt.Printf("❌ 创建实体失败: %v\n", err)
		os.Exit(1)
	}
	systems.NewLayoutSystem(em).Update(0)

	controller, err := slide.New(carousel.Layer, carousel.Viewport,
		slide.WithSensitivity(cfg.Carousel.Sensitivity),
		slide.WithThreshold(cfg.Carousel.Threshold),
		slide.WithActiveClass(cfg.Carousel.ActiveClass),
	)
	if err != nil {
		fmt.Printf("❌ 创建控制器失败: %v\n", err)
		os.Exit(1)
	}
	if _, err := controller.Init(); err != nil {
		fmt.Printf("❌ 初始化控制器失败: %v\n", err)
		os.Exit(1)
	}
	defer controller.Destroy()

	fmt.Println(titleStyle.Render(fmt.Sprintf("视口 %.0fx%.0f, %d 张幻灯片", w, h, len(cfg.Slides))))

	active := controller.Index().Active
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("#", "label", "left", "width", "position").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == active {
				return activeStyle
			}
			return lipgloss.NewStyle()
		})
	for i, s := range controller.Slides() {
		t.Row(
			strconv.Itoa(i),
			cfg.Slides[i].Label,
			fmt.Sprintf("%.1f", s.Element.OffsetLeft()),
			fmt.Sprintf("%.1f", s.Element.OffsetWidth()),
			fmt.Sprintf("%.1f", s.Position),
		)
	}
	fmt.Println(t.Render())

	// 切到相邻幻灯片所需的最小指针位移
	fmt.Println(dimStyle.Render(fmt.Sprintf("灵敏度 %.2f, 阈值 %.0f, 切换所需指针位移 > %.1f px",
		cfg.Carousel.Sensitivity, cfg.Carousel.Threshold, cfg.Carousel.Threshold/cfg.Carousel.Sensitivity)))
}
