// Command bmeshinfo builds a mesh from a YAML description and reports on it.
//
// Usage:
//
//	bmeshinfo stats mesh.yaml
//	bmeshinfo stats --format yaml mesh.yaml
//	bmeshinfo check mesh.yaml
//	bmeshinfo version
//
// A description lists vertex positions and faces as vertex index lists,
// optionally with wire edges, attribute declarations, per-entity attribute
// values and removal steps:
//
//	vertices: [[0, 0, 0], [1, 0, 0], [1, 1, 0], [0, 1, 0]]
//	faces: [[0, 1, 2, 3]]
//	attributes:
//	  - {kind: loop, name: uv, type: float, dims: 2}
//	  - {kind: vertex, name: color, type: float, dims: 4}
//	values:
//	  - {kind: vertex, index: 0, name: color, value: "#ff8000"}
//	  - {kind: loop, index: 0, corner: 2, name: uv, value: [1, 1]}
//	remove:
//	  edges: [[2, 3]]
package main

import (
	"fmt"
	"os"
)

// Exit codes.
const (
	exitOK      = 0
	exitError   = 1
	exitCorrupt = 2
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "bmeshinfo:", err)
		return exitCode(err)
	}
	return exitOK
}
