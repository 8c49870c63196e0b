package safenorm

import "strings"

// pathRef tracks the JSON Pointer of the node being walked.
type pathRef struct {
	parts []string
}

func (p *pathRef) push(name string) {
	// escape '~' -> '~0', '/' -> '~1' per RFC6901
	esc := strings.ReplaceAll(strings.ReplaceAll(name, "~", "~0"), "/", "~1")
	p.parts = append(p.parts, esc)
}

func (p *pathRef) pop() {
	if n := len(p.parts); n > 0 {
		p.parts = p.parts[:n-1]
	}
}

func (p *pathRef) Pointer() string {
	if len(p.parts) == 0 {
		return "/"
	}
	return "/" + strings.Join(p.parts, "/")
}
