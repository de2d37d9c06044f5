package entities

import (
	"strings"
	"testing"

	"github.com/gonewx/carousel/pkg/components"
	"github.com/gonewx/carousel/pkg/config"
	"github.com/gonewx/carousel/pkg/ecs"
)

func testConfig(n int) *config.CarouselConfig {
	cfg := config.DefaultCarouselConfig()
	cfg.Slides = config.DefaultSlides(n)
	return cfg
}

// TestNewCarousel 测试实体及组件创建
func TestNewCarousel(t *testing.T) {
	em := ecs.NewEntityManager()
	cfg := testConfig(3)
	cfg.Layout.TransitionMS = 250

	c, err := NewCarousel(em, cfg, 800, 600)
	if err != nil {
		t.Fatalf("NewCarousel() error: %v", err)
	}

	if len(c.SlideIDs) != 3 {
		t.Fatalf("expected 3 slides, got %d", len(c.SlideIDs))
	}
	for i, id := range c.SlideIDs {
		card, ok := ecs.GetComponent[*components.CardComponent](em, id)
		if !ok {
			t.Fatalf("slide %d missing CardComponent", i)
		}
		if card.Label != cfg.Slides[i].Label {
			t.Errorf("slide %d label = %q, want %q", i, card.Label, cfg.Slides[i].Label)
		}
		if !ecs.HasComponent[*components.ClassComponent](em, id) {
			t.Errorf("slide %d missing ClassComponent", i)
		}
	}

	vp, ok := ecs.GetComponent[*components.ViewportComponent](em, c.ViewportID)
	if !ok || vp.Width != 800 || vp.Height != 600 {
		t.Errorf("unexpected viewport %+v", vp)
	}

	layer, ok := ecs.GetComponent[*components.LayerComponent](em, c.LayerID)
	if !ok {
		t.Fatal("layer missing LayerComponent")
	}
	if layer.Gap != cfg.Layout.Gap || layer.CardWidthRatio != cfg.Layout.CardWidthRatio {
		t.Errorf("unexpected layer %+v", layer)
	}

	tr, ok := ecs.GetComponent[*components.TransformComponent](em, c.LayerID)
	if !ok {
		t.Fatal("layer missing TransformComponent")
	}
	if tr.Duration != 0.25 {
		t.Errorf("Duration = %v, want 0.25", tr.Duration)
	}
	if tr.Easing == nil {
		t.Error("expected easing to be set")
	}
	if tr.TransitionEnabled {
		t.Error("transition should start disabled")
	}

	if c.Viewport.OffsetWidth() != 800 {
		t.Errorf("Viewport.OffsetWidth() = %v, want 800", c.Viewport.OffsetWidth())
	}
	if got := len(c.Layer.Children()); got != 3 {
		t.Errorf("Layer.Children() = %d, want 3", got)
	}
}

func TestNewCarouselErrors(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*config.CarouselConfig)
		errContains string
	}{
		{
			name:        "unknown easing",
			mutate:      func(c *config.CarouselConfig) { c.Layout.Easing = "bounce" },
			errContains: "easing",
		},
		{
			name: "bad color",
			mutate: func(c *config.CarouselConfig) {
				c.Slides = []config.SlideConfig{{Label: "x", Color: "red"}}
			},
			errContains: "slide #0",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig(2)
			tt.mutate(cfg)
			_, err := NewCarousel(ecs.NewEntityManager(), cfg, 800, 600)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.errContains) {
				t.Errorf("error %q does not contain %q", err, tt.errContains)
			}
		})
	}
}

// TestNewCarouselEmpty 测试没有幻灯片时仍可创建
func TestNewCarouselEmpty(t *testing.T) {
	c, err := NewCarousel(ecs.NewEntityManager(), testConfig(0), 800, 600)
	if err != nil {
		t.Fatalf("NewCarousel() error: %v", err)
	}
	if len(c.Layer.Children()) != 0 {
		t.Errorf("expected no children, got %d", len(c.Layer.Children()))
	}
}
