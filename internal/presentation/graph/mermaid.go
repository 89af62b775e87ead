// Package graph renders scene graphs for humans.
package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/scenic/pkg/domain"
)

// Overlay carries dynamic traversal state to highlight on the diagram.
type Overlay struct {
	Visited []string
	Current string
}

// GenerateMermaid produces a Mermaid flowchart (graph TD) from the scene
// list. Semantic shapes:
//   - Initial: ((Circle))
//   - Dismissible: [/Parallelogram/]
//   - Guarded: [[Subroutine]]
//   - Default: [Rectangle]
//
// Scenes with a back action are annotated in their label; back-edges
// themselves exist only at traversal time and are not drawn. Overlay styles
// (visited/current) are applied when provided.
func GenerateMermaid(scenes []domain.SceneInfo, overlay *Overlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	for _, sc := range scenes {
		safeID := sanitizeID(sc.Name)

		opener, closer := "[", "]"
		switch {
		case sc.Initial:
			opener, closer = "((", "))"
		case sc.DismissOnUse:
			opener, closer = "[/", "/]"
		case sc.Guarded:
			opener, closer = "[[", "]]"
		}

		label := sc.Name
		if sc.HasBack {
			label += " ↩"
		}
		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", safeID, opener, label, closer))

		for _, dest := range sc.Edges {
			sb.WriteString(fmt.Sprintf("    %s --> %s\n", safeID, sanitizeID(dest)))
		}
	}

	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text for contrast regardless of theme.
		sb.WriteString("    classDef visited fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")
		for _, name := range overlay.Visited {
			if name == overlay.Current {
				continue
			}
			sb.WriteString(fmt.Sprintf("    class %s visited;\n", sanitizeID(name)))
		}
		if overlay.Current != "" {
			sb.WriteString(fmt.Sprintf("    class %s current;\n", sanitizeID(overlay.Current)))
		}
	}

	return sb.String()
}

// sanitizeID makes a scene name safe for use as a Mermaid node ID.
func sanitizeID(name string) string {
	var sb strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			sb.WriteRune(r)
		default:
			sb.WriteRune('_')
		}
	}
	return sb.String()
}
