package colorific

import "testing"

func TestExplosionLifetime(t *testing.T) {
	e := NewExplosion(100, 100, 20, ColorRed)
	e.Tick(0.25)
	if e.Dead() {
		t.Fatal("dead at half time")
	}
	if e.Progress() != 0.5 {
		t.Errorf("Progress = %f, want 0.5", e.Progress())
	}
	e.Tick(0.25)
	if !e.Dead() {
		t.Error("alive after ExplosionDuration")
	}
	if e.Progress() != 1 {
		t.Errorf("Progress = %f, want 1", e.Progress())
	}
}

func TestExplosionRender(t *testing.T) {
	e := NewExplosion(100, 80, 20, ColorRed)
	e.Tick(0.25)

	s := &recordingSurface{}
	e.Render(s, 0)
	if len(s.calls) != 1 || s.calls[0].kind != "circle" {
		t.Fatalf("calls = %+v, want one circle", s.calls)
	}
	c := s.calls[0]
	if c.x != 100 || c.y != 80 {
		t.Errorf("centre = (%f, %f), want (100, 80)", c.x, c.y)
	}
	if c.w != 30 {
		t.Errorf("radius = %f, want 30", c.w)
	}
	if c.color.A != 0.5 || c.color.R != 1 {
		t.Errorf("color = %+v, want red at 0.5 alpha", c.color)
	}
}

func TestExplosionTickAfterDeath(t *testing.T) {
	e := NewExplosion(0, 0, 10, ColorWhite)
	e.Tick(1)
	e.Tick(1)
	if !e.Dead() || e.Progress() != 1 {
		t.Errorf("Dead = %v Progress = %f", e.Dead(), e.Progress())
	}
}

func TestScorePopup(t *testing.T) {
	p := NewScorePopup(50, 60, 42)
	if p.Layer() != scorePopupLayer {
		t.Errorf("Layer = %d, want %d", p.Layer(), scorePopupLayer)
	}

	s := &recordingSurface{}
	p.Render(s, 0)
	if !s.hasText("+42") || s.count("text") != 2 {
		t.Errorf("calls = %+v, want shadow and text +42", s.calls)
	}

	p.Tick(0.4)
	if p.Dead() {
		t.Fatal("dead at half time")
	}
	if p.dy >= 0 {
		t.Errorf("dy = %f, want the popup to rise", p.dy)
	}
	if p.alpha <= 0 || p.alpha >= 1 {
		t.Errorf("alpha = %f, want partially faded", p.alpha)
	}
	p.Tick(0.4)
	if !p.Dead() {
		t.Error("alive after its duration")
	}
}

func TestEffectsInManager(t *testing.T) {
	m := NewEntityManager()
	m.Add(NewExplosion(0, 0, 10, ColorWhite))
	m.Add(NewScorePopup(0, 0, 1))
	m.Refresh(0.1)
	if m.Len() != 2 {
		t.Fatalf("Len = %d, want 2", m.Len())
	}
	for i := 0; i < 10; i++ {
		m.Tick(0.1)
	}
	if m.Len() != 0 {
		t.Errorf("Len = %d, want 0 after both expired", m.Len())
	}
}
