package renderer

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/SickDinner/Uho-sub001/components"
)

func TestSpriteTint(t *testing.T) {
	tests := []struct {
		name   string
		sprite components.Sprite
		want   rl.Color
	}{
		{"explicit tint wins", components.Sprite{Kind: components.SpriteCircle, Tint: rl.Red}, rl.Red},
		{"circle fallback", components.Sprite{Kind: components.SpriteCircle}, rl.SkyBlue},
		{"box fallback", components.Sprite{Kind: components.SpriteBox}, rl.Beige},
		{"diamond fallback", components.Sprite{Kind: components.SpriteDiamond}, rl.Gold},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SpriteTint(tt.sprite); got != tt.want {
				t.Errorf("SpriteTint(%v) = %v, want %v", tt.sprite, got, tt.want)
			}
		})
	}
}
