package gale

import (
	"math"
	"testing"
)

func TestNewSkySettled(t *testing.T) {
	day := NewSky(true)
	if day.SkyColor() != skyDay {
		t.Errorf("sky color = %v, want day palette", day.SkyColor())
	}
	night := NewSky(false)
	if night.SkyColor() != skyNight {
		t.Errorf("sky color = %v, want night palette", night.SkyColor())
	}
	if night.GroundColor() != groundNight {
		t.Errorf("ground color = %v, want night palette", night.GroundColor())
	}
}

func TestSkyTransitionConverges(t *testing.T) {
	s := NewSky(true)
	s.SetDay(false)
	if s.Day() {
		t.Error("mode should flip immediately")
	}
	// One tick in: mid-transition, between the palettes.
	s.Update(1.0 / 60)
	c := s.SkyColor()
	if c == skyDay || c == skyNight {
		t.Errorf("sky color = %v, want between palettes mid-transition", c)
	}
	// Run well past the duration.
	for i := 0; i < 120; i++ {
		s.Update(1.0 / 60)
	}
	got := s.SkyColor()
	if math.Abs(got.R-skyNight.R) > 1e-6 ||
		math.Abs(got.G-skyNight.G) > 1e-6 ||
		math.Abs(got.B-skyNight.B) > 1e-6 {
		t.Errorf("sky color = %v, want settled on night %v", got, skyNight)
	}
}

func TestSkySetDaySameModeIsNoOp(t *testing.T) {
	s := NewSky(true)
	s.SetDay(true)
	if s.tween != nil {
		t.Error("tween started for a mode the sky is already in")
	}
}

func TestSkyDraw(t *testing.T) {
	s := NewSky(true)
	rec := &Recorder{}
	s.Draw(rec)
	if got := rec.CountOp(OpFillPolygon); got != 2 {
		t.Fatalf("fills = %d, want 2 (sky and ground)", got)
	}
	if rec.Commands[0].Color != skyDay {
		t.Errorf("sky fill color = %v, want %v", rec.Commands[0].Color, skyDay)
	}
	if rec.Commands[1].Color != groundDay {
		t.Errorf("ground fill color = %v, want %v", rec.Commands[1].Color, groundDay)
	}
	// The ground band tops out at the ground line, inside the world.
	top := rec.Commands[1].Points[2].Y
	if top != groundTop {
		t.Errorf("ground top = %v, want %v", top, groundTop)
	}
}

func TestLerpColor(t *testing.T) {
	a := Color{0, 0, 0}
	b := Color{1, 0.5, 0}
	mid := lerpColor(a, b, 0.5)
	want := Color{0.5, 0.25, 0}
	if mid != want {
		t.Errorf("lerp = %v, want %v", mid, want)
	}
	if lerpColor(a, b, 0) != a || lerpColor(a, b, 1) != b {
		t.Error("lerp endpoints should return the inputs")
	}
}
