package system

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestInputSystem_ScreenToWorld(t *testing.T) {
	sys := NewInputSystem(1280, 720)

	tests := []struct {
		name     string
		x, y     int
		expected mgl32.Vec3
	}{
		{"center", 640, 360, mgl32.Vec3{0, 0, 0}},
		{"top left", 0, 0, mgl32.Vec3{-640, 360, 0}},
		{"bottom right", 1280, 720, mgl32.Vec3{640, -360, 0}},
		{"above center", 640, 260, mgl32.Vec3{0, 100, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sys.ScreenToWorld(tt.x, tt.y))
		})
	}
}

func TestWorldToScreen_InvertsScreenToWorld(t *testing.T) {
	sys := NewInputSystem(320, 240)

	for _, p := range [][2]int{{0, 0}, {160, 120}, {17, 203}, {320, 240}} {
		x, y := WorldToScreen(sys.ScreenToWorld(p[0], p[1]), 320, 240)
		assert.Equal(t, float64(p[0]), x)
		assert.Equal(t, float64(p[1]), y)
	}
}
