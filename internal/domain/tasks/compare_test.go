package tasks

import (
	"sort"
	"testing"
)

func fixed(h, m int) *TimeOfDay {
	return &TimeOfDay{Hour: h, Minute: m}
}

func TestCompare_RequiredBeforeOptional(t *testing.T) {
	req := Task{Required: true, Priority: 1}
	opt := Task{Required: false, Priority: 5}

	if Compare(req, opt) >= 0 {
		t.Fatalf("expected required before optional regardless of priority")
	}
	if Compare(opt, req) <= 0 {
		t.Fatalf("expected optional after required")
	}
}

func TestCompare_PriorityDescending(t *testing.T) {
	hi := Task{Priority: 5}
	lo := Task{Priority: 2}

	if Compare(hi, lo) >= 0 {
		t.Fatalf("expected higher priority first")
	}
}

func TestCompare_FixedTimeBeforeFloating(t *testing.T) {
	withTime := Task{Priority: 3, ScheduledAt: fixed(16, 0)}
	floating := Task{Priority: 3}

	if Compare(withTime, floating) >= 0 {
		t.Fatalf("expected fixed-time task before floating task")
	}
}

func TestCompare_EarlierTimeFirst(t *testing.T) {
	early := Task{Priority: 3, ScheduledAt: fixed(8, 0)}
	late := Task{Priority: 3, ScheduledAt: fixed(9, 30)}

	if Compare(early, late) >= 0 {
		t.Fatalf("expected earlier fixed time first")
	}
	if Compare(late, early) <= 0 {
		t.Fatalf("expected later fixed time after")
	}
}

func TestCompare_FullTie(t *testing.T) {
	a := Task{Name: "a", Priority: 3, ScheduledAt: fixed(9, 0)}
	b := Task{Name: "b", Priority: 3, ScheduledAt: fixed(9, 0)}

	if Compare(a, b) != 0 {
		t.Fatalf("expected full tie to return 0 (SliceStable supplies insertion order)")
	}
}

func TestCompare_StableSortKeepsInsertionOrderOnTies(t *testing.T) {
	// Tres tareas empatadas en todas las claves: el orden de inserción debe
	// sobrevivir al sort estable.
	items := []Task{
		{Name: "primera", Priority: 3},
		{Name: "segunda", Priority: 3},
		{Name: "tercera", Priority: 3},
	}

	sort.SliceStable(items, func(i, j int) bool {
		return Compare(items[i], items[j]) < 0
	})

	want := []string{"primera", "segunda", "tercera"}
	for i, w := range want {
		if items[i].Name != w {
			t.Fatalf("position %d: expected %s, got %s", i, w, items[i].Name)
		}
	}
}

func TestParseTimeOfDay(t *testing.T) {
	cases := []struct {
		in      string
		want    int // minutos desde medianoche
		wantErr bool
	}{
		{"09:30", 570, false},
		{"00:00", 0, false},
		{"23:59", 1439, false},
		{" 08:15 ", 495, false},
		{"24:00", 0, true},
		{"12:60", 0, true},
		{"930", 0, true},
		{"ab:cd", 0, true},
		{"", 0, true},
	}

	for _, c := range cases {
		got, err := ParseTimeOfDay(c.in)
		if c.wantErr {
			if err == nil {
				t.Fatalf("ParseTimeOfDay(%q): expected error", c.in)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseTimeOfDay(%q): unexpected error %v", c.in, err)
		}
		if got.Minutes() != c.want {
			t.Fatalf("ParseTimeOfDay(%q) = %d minutes, want %d", c.in, got.Minutes(), c.want)
		}
	}
}

func TestTimeOfDay_String(t *testing.T) {
	if s := (TimeOfDay{Hour: 9, Minute: 5}).String(); s != "09:05" {
		t.Fatalf("expected 09:05, got %s", s)
	}
}
