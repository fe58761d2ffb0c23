package journal

import (
	"testing"
)

func TestParseType(t *testing.T) {
	if got, err := ParseType(" Growth "); err != nil || got != TypeGrowth {
		t.Fatalf("expected growth, got %q err %v", got, err)
	}
	if _, err := ParseType("nap"); err == nil {
		t.Fatalf("expected error for unknown type")
	}
}

func TestParseMood(t *testing.T) {
	if got, err := ParseMood(""); err != nil || got != MoodUnset {
		t.Fatalf("expected unset mood, got %q err %v", got, err)
	}
	if got, err := ParseMood("FUSSY"); err != nil || got != MoodFussy {
		t.Fatalf("expected fussy, got %q err %v", got, err)
	}
	if _, err := ParseMood("grumpy"); err == nil {
		t.Fatalf("expected error for unknown mood")
	}
}

func TestCloneIsDeep(t *testing.T) {
	d, _ := ParseDate("2024-06-01")
	e := New(d, TypeNote, TypeMilestone)
	e.Milestones = []string{"First smile"}
	e.Growth = &GrowthData{Weight: "7.2"}
	e.Media = []MediaItem{{Kind: MediaImage, URI: "file://a.jpg", Filename: "a.jpg"}}

	cp := e.Clone()
	cp.Milestones[0] = "changed"
	cp.Growth.Weight = "9.9"
	cp.Media[0].Filename = "b.jpg"
	cp.Types[0] = TypeMedia

	if e.Milestones[0] != "First smile" {
		t.Fatalf("milestones aliased after clone")
	}
	if e.Growth.Weight != "7.2" {
		t.Fatalf("growth aliased after clone")
	}
	if e.Media[0].Filename != "a.jpg" {
		t.Fatalf("media aliased after clone")
	}
	if e.Types[0] != TypeNote {
		t.Fatalf("types aliased after clone")
	}
}

func TestGrowthDataEmpty(t *testing.T) {
	var g *GrowthData
	if !g.Empty() {
		t.Fatalf("nil growth should be empty")
	}
	if !(&GrowthData{}).Empty() {
		t.Fatalf("zero growth should be empty")
	}
	if (&GrowthData{Height: "62"}).Empty() {
		t.Fatalf("growth with height should not be empty")
	}
}
