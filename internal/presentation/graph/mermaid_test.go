package graph

import (
	"strings"
	"testing"

	"github.com/aretw0/scenic/pkg/domain"
)

func TestGenerateMermaid(t *testing.T) {
	scenes := []domain.SceneInfo{
		{Name: "About", Edges: nil, HasBack: true},
		{Name: "Home", Edges: []string{"Settings"}, Initial: true},
		{Name: "Rate Us", DismissOnUse: true},
		{Name: "Settings", Edges: []string{"About", "Rate Us"}, Guarded: true},
	}

	out := GenerateMermaid(scenes, nil)

	if !strings.HasPrefix(out, "graph TD\n") {
		t.Fatalf("Expected mermaid header, got %q", out)
	}

	for _, want := range []string{
		`Home(("Home"))`,            // initial as circle
		`Settings[["Settings"]]`,    // guarded as subroutine
		`Rate_Us[/"Rate Us"/]`,      // dismissible as parallelogram, sanitized ID
		`About["About ↩"]`,          // back annotation
		"Home --> Settings",
		"Settings --> About",
		"Settings --> Rate_Us",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Missing %q in output:\n%s", want, out)
		}
	}
}

func TestGenerateMermaid_Overlay(t *testing.T) {
	scenes := []domain.SceneInfo{
		{Name: "Home", Edges: []string{"Settings"}},
		{Name: "Settings"},
	}
	out := GenerateMermaid(scenes, &Overlay{Visited: []string{"Home", "Settings"}, Current: "Settings"})

	if !strings.Contains(out, "class Home visited;") {
		t.Errorf("Expected visited class for Home:\n%s", out)
	}
	if !strings.Contains(out, "class Settings current;") {
		t.Errorf("Expected current class for Settings:\n%s", out)
	}
	if strings.Contains(out, "class Settings visited;") {
		t.Errorf("Current scene must not also be styled visited:\n%s", out)
	}
}
