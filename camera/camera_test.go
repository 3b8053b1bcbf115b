package camera

import (
	"math"
	"testing"
)

func TestNew(t *testing.T) {
	cam := New(1280, 720, 2560, 1440)

	// Should be centered on world
	if cam.X != 1280 || cam.Y != 720 {
		t.Errorf("expected camera at (1280, 720), got (%f, %f)", cam.X, cam.Y)
	}
	if cam.Zoom != 1.0 {
		t.Errorf("expected zoom 1.0, got %f", cam.Zoom)
	}
}

func TestWorldToScreenCentered(t *testing.T) {
	cam := New(1280, 720, 2560, 1440)

	// Camera center should map to screen center
	sx, sy := cam.WorldToScreen(1280, 720)
	if math.Abs(float64(sx-640)) > 0.01 || math.Abs(float64(sy-360)) > 0.01 {
		t.Errorf("expected screen center (640, 360), got (%f, %f)", sx, sy)
	}
}

func TestScreenToWorldRoundtrip(t *testing.T) {
	cam := New(1280, 720, 2560, 1440)

	// Test roundtrip at various positions
	testCases := []struct{ sx, sy float32 }{
		{640, 360},  // center
		{100, 100},  // top-left
		{1200, 600}, // near bottom-right
	}

	for _, tc := range testCases {
		wx, wy := cam.ScreenToWorld(tc.sx, tc.sy)
		sx, sy := cam.WorldToScreen(wx, wy)
		if math.Abs(float64(sx-tc.sx)) > 0.01 || math.Abs(float64(sy-tc.sy)) > 0.01 {
			t.Errorf("roundtrip failed: (%f,%f) -> (%f,%f) -> (%f,%f)",
				tc.sx, tc.sy, wx, wy, sx, sy)
		}
	}
}

func TestPanClampsAtWorldEdge(t *testing.T) {
	cam := New(1280, 720, 2560, 1440)

	// Pan far past the left edge; the viewport stops flush against it
	cam.Pan(-10000, 0)
	if cam.X != 640 {
		t.Errorf("expected X clamped to 640 (half viewport), got %f", cam.X)
	}

	cam.Pan(100000, 0)
	if cam.X != 2560-640 {
		t.Errorf("expected X clamped to %f, got %f", float32(2560-640), cam.X)
	}
}

func TestZoomClamp(t *testing.T) {
	cam := New(1280, 720, 2560, 1440)

	// MinZoom should be max(1280/2560, 720/1440) = max(0.5, 0.5) = 0.5
	if cam.MinZoom != 0.5 {
		t.Errorf("expected MinZoom 0.5, got %f", cam.MinZoom)
	}

	cam.SetZoom(0.1) // Below min
	if cam.Zoom != 0.5 {
		t.Errorf("expected zoom clamped to 0.5, got %f", cam.Zoom)
	}

	cam.SetZoom(10.0) // Above max
	if cam.Zoom != 4.0 {
		t.Errorf("expected zoom clamped to 4.0, got %f", cam.Zoom)
	}
}

func TestMinZoomPreventsDeadSpace(t *testing.T) {
	// Test with asymmetric world/viewport ratios
	cam := New(800, 600, 1600, 800)

	// MinZoom should be max(800/1600, 600/800) = max(0.5, 0.75) = 0.75
	if math.Abs(float64(cam.MinZoom-0.75)) > 0.001 {
		t.Errorf("expected MinZoom 0.75, got %f", cam.MinZoom)
	}

	// At min zoom, visible area should exactly fit world in limiting dimension
	cam.SetZoom(cam.MinZoom)
	visibleH := cam.ViewportH / cam.Zoom // 600 / 0.75 = 800 = worldH
	if math.Abs(float64(visibleH-cam.WorldH)) > 0.01 {
		t.Errorf("at min zoom, visible height %f should equal world height %f", visibleH, cam.WorldH)
	}
}

func TestZoomOutRecentersViewInWorld(t *testing.T) {
	cam := New(1280, 720, 2560, 1440)
	cam.Pan(100000, 100000) // park at the bottom-right corner

	// Zooming out widens the view; the center must move back so the
	// visible area stays inside the world.
	cam.SetZoom(cam.MinZoom)
	_, _, maxX, maxY := cam.VisibleWorldBounds()
	if maxX > 2560+0.01 || maxY > 1440+0.01 {
		t.Errorf("visible bounds (%f, %f) exceed the world after zoom out", maxX, maxY)
	}
}

func TestIsVisible(t *testing.T) {
	cam := New(1280, 720, 2560, 1440)

	// Camera centered at (1280, 720), viewport 1280x720
	// Visible range in world coords: (640, 360) to (1920, 1080)

	// Point at camera center should be visible
	if !cam.IsVisible(1280, 720, 10) {
		t.Error("center should be visible")
	}

	// Point far outside should not be visible
	if cam.IsVisible(2400, 1300, 10) {
		t.Error("far point should not be visible")
	}

	// Point near edge with large radius should be visible
	if !cam.IsVisible(600, 720, 100) {
		t.Error("edge point with large radius should be visible")
	}
}

func TestFollowApproachesTarget(t *testing.T) {
	cam := New(1280, 720, 2560, 1440)

	for i := 0; i < 300; i++ {
		cam.Follow(1500, 900, 0, 0, false, 1.0/60.0)
	}
	if math.Abs(float64(cam.X-1500)) > 1 || math.Abs(float64(cam.Y-900)) > 1 {
		t.Errorf("camera settled at (%f, %f), want near (1500, 900)", cam.X, cam.Y)
	}
}

func TestFollowLeadsMovingTarget(t *testing.T) {
	cam := New(1280, 720, 2560, 1440)

	// Following a body moving right, the camera settles ahead of it.
	for i := 0; i < 300; i++ {
		cam.Follow(1500, 720, 200, 0, true, 1.0/60.0)
	}
	if cam.X <= 1540 {
		t.Errorf("camera at %f, want leading the target past 1540", cam.X)
	}
}

func TestFollowClampsAtWorldEdge(t *testing.T) {
	cam := New(1280, 720, 2560, 1440)

	// Target in the world corner: the camera stops once the viewport
	// edge reaches the world edge.
	for i := 0; i < 300; i++ {
		cam.Follow(0, 0, 0, 0, false, 1.0/60.0)
	}
	if cam.X != 640 || cam.Y != 360 {
		t.Errorf("camera at (%f, %f), want clamped to (640, 360)", cam.X, cam.Y)
	}
}

func TestReset(t *testing.T) {
	cam := New(1280, 720, 2560, 1440)
	cam.Pan(300, 200)
	cam.SetZoom(2.5)

	cam.Reset()

	if cam.X != 1280 || cam.Y != 720 {
		t.Errorf("expected position (1280, 720), got (%f, %f)", cam.X, cam.Y)
	}
	if cam.Zoom != 1.0 {
		t.Errorf("expected zoom 1.0, got %f", cam.Zoom)
	}
}
