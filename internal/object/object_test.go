package object

import (
	"math"
	"math/rand"
	"testing"

	"github.com/tomz197/skyraid/internal/loop/config"
)

func TestStoreFilterKeepsOrder(t *testing.T) {
	var s Store[int]
	s.Append(1, 2, 3, 4, 5, 6)
	s.Filter(func(v *int) bool { return *v%2 == 0 })

	got := s.Items()
	want := []int{2, 4, 6}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("items = %v, want %v", got, want)
		}
	}
}

func TestStoreCloneIsIndependent(t *testing.T) {
	var s Store[Bullet]
	s.Append(Bullet{ID: 1, Y: 100})
	c := s.Clone()
	c[0].Y = 0
	if s.At(0).Y != 100 {
		t.Fatal("mutating a clone changed the store")
	}
}

func TestCounterIsMonotonic(t *testing.T) {
	var ids IDs
	a := ids.Bullets.Next()
	b := ids.Bullets.Next()
	e := ids.Enemies.Next()
	if b <= a {
		t.Fatalf("ids not increasing: %d then %d", a, b)
	}
	if e != 0 {
		t.Fatalf("categories must count independently, got enemy id %d", e)
	}
}

func TestParticleUpdateByKind(t *testing.T) {
	spark := Particle{VX: 10, VY: 0, Size: 5, Life: 10, Kind: Spark, RotationSpeed: 3}
	spark.Update()
	if spark.X != 10 || spark.VY != 0.15 || math.Abs(spark.VX-9.8) > 1e-9 {
		t.Fatalf("spark physics wrong: %+v", spark)
	}
	if spark.Life != 9 || math.Abs(spark.Size-4.85) > 1e-9 || spark.Rotation != 3 {
		t.Fatalf("spark lifecycle wrong: %+v", spark)
	}

	smoke := Particle{Size: 10, Life: 10, Kind: Smoke}
	smoke.Update()
	if smoke.VY != -0.1 || math.Abs(smoke.Size-10.2) > 1e-9 {
		t.Fatalf("smoke should rise and grow: %+v", smoke)
	}
}

func TestParticleRemoval(t *testing.T) {
	dying := Particle{Size: 5, Life: 1, Kind: Fire}
	if !dying.Update() {
		t.Fatal("particle reaching life 0 must be removed")
	}
	tiny := Particle{Size: 0.51, Life: 50, Kind: Debris}
	if !tiny.Update() {
		t.Fatal("particle shrinking to <= 0.5 must be removed")
	}
}

func TestBurst(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	var ids Counter
	ps := Burst(rng, &ids, 10, 20, 5, Spark, "#123456")
	if len(ps) != 5 {
		t.Fatalf("len = %d, want 5", len(ps))
	}
	for i, p := range ps {
		if p.ID != uint64(i) {
			t.Errorf("particle %d has id %d", i, p.ID)
		}
		if p.Color != "#123456" || p.Kind != Spark || p.X != 10 || p.Y != 20 {
			t.Errorf("particle %d wrong: %+v", i, p)
		}
		if p.Life < 30 || p.Life >= 70 || p.Life != p.MaxLife {
			t.Errorf("particle %d life out of range: %f", i, p.Life)
		}
		if p.Size < 3 || p.Size >= 9 {
			t.Errorf("particle %d size out of range: %f", i, p.Size)
		}
	}

	smoke := Burst(rng, &ids, 0, 0, 20, Smoke, "")
	for _, p := range smoke {
		if p.Size < 8 || p.Size >= 20 {
			t.Errorf("smoke size out of range: %f", p.Size)
		}
		if p.Color == "" {
			t.Error("palette color expected")
		}
	}
}

func TestVolleySingle(t *testing.T) {
	var ids Counter
	bs := Volley(&ids, 300, false)
	if len(bs) != 1 {
		t.Fatalf("len = %d, want 1", len(bs))
	}
	b := bs[0]
	if b.X != 300 || b.Y != config.BulletSpawnY || b.Speed != 40 || b.VX != 0 {
		t.Fatalf("unexpected bullet %+v", b)
	}
}

func TestVolleySpread(t *testing.T) {
	var ids Counter
	bs := Volley(&ids, 300, true)
	if len(bs) != 7 {
		t.Fatalf("len = %d, want 7", len(bs))
	}
	for k, b := range bs {
		i := k - 3
		want := math.Sin(float64(i)*10*math.Pi/180) * 15
		if math.Abs(b.VX-want) > 1e-9 {
			t.Errorf("bullet %d vx = %f, want %f", i, b.VX, want)
		}
		if b.Speed != 15 {
			t.Errorf("bullet %d speed = %f, want 15", i, b.Speed)
		}
	}
}

func TestBulletLeavesField(t *testing.T) {
	b := Bullet{X: 300, Y: 10, Speed: 40}
	if !b.Update() {
		t.Fatal("bullet above -20 must be removed")
	}
	side := Bullet{X: 595, Y: 300, Speed: 15, VX: 6}
	if !side.Update() {
		t.Fatal("bullet past the right edge must be removed")
	}
	ok := Bullet{X: 300, Y: 300, Speed: 15}
	if ok.Update() {
		t.Fatal("bullet in the field must stay")
	}
}

func TestEnemyUpdate(t *testing.T) {
	e := Enemy{Y: 100, Speed: 5, Hit: true, Health: 2}
	if e.Update() {
		t.Fatal("enemy on the field must stay")
	}
	if e.Y != 105 || e.Hit {
		t.Fatalf("unexpected enemy state %+v", e)
	}
	low := Enemy{Y: 698, Speed: 3, Health: 2}
	if !low.Update() {
		t.Fatal("escaped enemy must be removed")
	}
}

func TestNewEnemyRanges(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	var ids Counter
	for i := 0; i < 200; i++ {
		e := NewEnemy(rng, &ids, 3)
		if e.X < 50 || e.X >= 550 || e.Y != -50 {
			t.Fatalf("bad position %+v", e)
		}
		if e.Speed < 3.5 || e.Speed >= 5.5 {
			t.Fatalf("speed %f outside level-3 range", e.Speed)
		}
		if e.Health != 2 || e.MaxHealth != 2 {
			t.Fatalf("health must start at 2: %+v", e)
		}
		if e.Size < 25 || e.Size >= 40 {
			t.Fatalf("size out of range: %f", e.Size)
		}
	}
}

func TestExplosionEasesAndExpires(t *testing.T) {
	var ids Counter
	e := NewExplosion(&ids, 1, 2, true)
	if e.MaxRadius != 80 || e.Life != 20 {
		t.Fatalf("unexpected explosion %+v", e)
	}
	e.Update()
	if e.Radius != 16 {
		t.Fatalf("radius after one tick = %f, want 16", e.Radius)
	}
	for i := 0; i < 18; i++ {
		if e.Update() {
			t.Fatalf("removed early at tick %d", i+2)
		}
	}
	if !e.Update() {
		t.Fatal("explosion must be removed when life reaches 0")
	}
	if e.Radius > e.MaxRadius {
		t.Fatal("radius overshot")
	}
}

func TestPowerUpFalls(t *testing.T) {
	p := PowerUp{Y: 100}
	if p.Update() || p.Y != 103 {
		t.Fatalf("unexpected power-up %+v", p)
	}
	p.Y = 697
	if !p.Update() {
		t.Fatal("power-up at the bottom must be removed")
	}
}

func TestPlayerMoveClamps(t *testing.T) {
	p := NewPlayer("")
	if p.Color != config.DefaultPlayerColor {
		t.Fatalf("default color = %s", p.Color)
	}
	for i := 0; i < 20; i++ {
		p.Move(-config.PlayerStep)
	}
	if p.X != 40 {
		t.Fatalf("x = %f, want 40", p.X)
	}
	for i := 0; i < 40; i++ {
		p.Move(config.PlayerStep)
	}
	if p.X != 560 {
		t.Fatalf("x = %f, want 560", p.X)
	}
}

func TestStep(t *testing.T) {
	var s Store[Explosion]
	s.Append(Explosion{Life: 1, MaxRadius: 10}, Explosion{Life: 5, MaxRadius: 10})
	Step[Explosion](&s)
	if s.Len() != 1 || s.At(0).Life != 4 {
		t.Fatalf("unexpected store after step: %+v", s.Items())
	}
}
