package universe

import (
	"math/rand"
	"sort"
	"testing"
)

func engineNames() (engineNames []string) {
	engineNames = make([]string, 0, len(Engines))
	for k := range Engines {
		engineNames = append(engineNames, k)
	}
	sort.Strings(engineNames)
	return
}

func TestAdvance_Rules(t *testing.T) {
	cases := []struct {
		name   string
		before []string
		after  []string
		moved  int
	}{
		{
			"falls straight down",
			[]string{"...", ".#.", "..."},
			[]string{"...", "...", ".#."},
			1,
		},
		{
			"prefers left when both diagonals are open",
			[]string{".#.", ".#."},
			[]string{"...", "##."},
			1,
		},
		{
			"slides right when left is blocked",
			[]string{".#.", "##."},
			[]string{"...", "###"},
			1,
		},
		{
			"left edge slides right",
			[]string{"#..", "#.."},
			[]string{"...", "##."},
			1,
		},
		{
			"right edge slides left",
			[]string{"..#", "..#"},
			[]string{"...", ".##"},
			1,
		},
		{
			"fully blocked stays",
			[]string{".#.", "###"},
			[]string{".#.", "###"},
			0,
		},
		{
			"blocked at the left edge stays",
			[]string{"#..", "##."},
			[]string{"#..", "##."},
			0,
		},
		{
			"single column falls together",
			[]string{"#", "#", "."},
			[]string{".", "#", "#"},
			2,
		},
		{
			"bottom row never moves",
			[]string{"...", "#.#"},
			[]string{"...", "#.#"},
			0,
		},
	}
	for _, e := range engineNames() {
		for _, c := range cases {
			t.Run(e+"/"+c.name, func(t *testing.T) {
				g := gridFrom(t, c.before...)
				moved := Engines[e](g)
				assertPicture(t, g, c.after...)
				if moved != c.moved {
					t.Errorf("expected %v moves, got %v", c.moved, moved)
				}
			})
		}
	}
}

func TestAdvance_ColumnFallsOneRowPerTick(t *testing.T) {
	for _, e := range engineNames() {
		t.Run(e, func(t *testing.T) {
			g := gridFrom(t,
				"..#..",
				"..#..",
				".....")
			Engines[e](g)
			assertPicture(t, g,
				".....",
				"..#..",
				"..#..")
			Engines[e](g)
			assertPicture(t, g,
				".....",
				".....",
				".##..")
		})
	}
}

func TestAdvance_SingleParticleScenario(t *testing.T) {
	g, err := NewGrid(3, 3)
	if err != nil {
		t.Fatal(err)
	}
	g.Toggle(1, 0)

	Advance(g)
	assertPicture(t, g, "...", ".#.", "...")
	Advance(g)
	assertPicture(t, g, "...", "...", ".#.")
	if moved := Advance(g); moved != 0 {
		t.Fatalf("particle on the bottom row moved")
	}
	assertPicture(t, g, "...", "...", ".#.")
}

func TestAdvance_SettledGridUnchanged(t *testing.T) {
	for _, e := range engineNames() {
		g := gridFrom(t,
			"....#....",
			"...###...",
			"..#####..",
			"#########")
		before := g.Area()
		if moved := Engines[e](g); moved != 0 {
			t.Fatalf("%v: settled grid moved %v particles", e, moved)
		}
		after := g.Area()
		for y := range before.Entities {
			for x := range before.Entities[y] {
				if before.Entities[y][x] != after.Entities[y][x] {
					t.Fatalf("%v: cell %v,%v changed on a settled grid", e, x, y)
				}
			}
		}
	}
}

func TestAdvance_MassConservation(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	for _, e := range engineNames() {
		for i := 0; i < 50; i++ {
			w, h := 1+rnd.Intn(20), 1+rnd.Intn(20)
			g, err := NewGrid(w, h)
			if err != nil {
				t.Fatal(err)
			}
			density := rnd.Float64()
			for y := 0; y < h; y++ {
				for x := 0; x < w; x++ {
					if rnd.Float64() < density {
						g.Toggle(x, y)
					}
				}
			}
			want := g.Particles()
			for step := 0; step < h+1; step++ {
				Engines[e](g)
				if got := g.Particles(); got != want {
					t.Fatalf("%v: %vx%v grid step %v: particles %v, want %v", e, w, h, step, got, want)
				}
			}
		}
	}
}

func TestAdvance_BottomRowImmobile(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	g, err := NewGrid(12, 6)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 40; i++ {
		g.Toggle(rnd.Intn(12), rnd.Intn(6))
	}
	for step := 0; step < 10; step++ {
		bottom := append([]Cell(nil), g.Area().Entities[5]...)
		Advance(g)
		for x, c := range bottom {
			if bool(c) && !g.Get(x, 5) {
				t.Fatalf("step %v: particle left the bottom row at column %v", step, x)
			}
		}
	}
}

func TestAdvance_EventuallySettles(t *testing.T) {
	for _, e := range engineNames() {
		g := gridFrom(t,
			"...####...",
			"...####...",
			"..........",
			"..........",
			"..........",
			"..........")
		steps := 0
		for Engines[e](g) > 0 {
			steps++
			if steps > 100 {
				t.Fatalf("%v: grid did not settle", e)
			}
		}
		if g.Particles() != 8 {
			t.Fatalf("%v: expected 8 particles, got %v", e, g.Particles())
		}
		if Engines[e](g) != 0 {
			t.Fatalf("%v: settled grid moved", e)
		}
	}
}
