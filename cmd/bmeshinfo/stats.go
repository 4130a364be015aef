package main

import (
	"fmt"
	"io"

	"github.com/gogpu/bmesh"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"
)

// report is the result of the stats command.
type report struct {
	Vertices   int              `yaml:"vertices"`
	Edges      int              `yaml:"edges"`
	Loops      int              `yaml:"loops"`
	Faces      int              `yaml:"faces"`
	Isolated   int              `yaml:"isolated_vertices"`
	EdgeKinds  edgeKinds        `yaml:"edge_classes"`
	Attributes []attributeEntry `yaml:"attributes,omitempty"`
}

// edgeKinds counts edges by the number of loops in their radial cycle.
type edgeKinds struct {
	Wire        int `yaml:"wire"`
	Boundary    int `yaml:"boundary"`
	Manifold    int `yaml:"manifold"`
	NonManifold int `yaml:"non_manifold"`
}

type attributeEntry struct {
	Kind         string `yaml:"kind"`
	Name         string `yaml:"name"`
	Type         string `yaml:"type"`
	Dimensions   int    `yaml:"dimensions"`
	VertexFormat string `yaml:"vertex_format,omitempty"`
	Size         uint64 `yaml:"size,omitempty"`
}

func newStatsCmd(opts *options) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "stats FILE",
		Short: "Print entity counts, edge classes and the attribute schema",
		Long: `Stats builds the mesh described in FILE, applies its removal steps and
reports entity counts, edges classified by the number of faces using them
(wire 0, boundary 1, manifold 2, non-manifold more) and the attribute
schema of every entity kind.

Attribute values that do not match their declaration are reset to the
default; run with --verbose to see each correction.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != "text" && format != "yaml" {
				return fmt.Errorf("unknown format %q (valid: text, yaml)", format)
			}
			d, err := readDescription(args[0])
			if err != nil {
				return err
			}
			l, err := d.build(true)
			if err != nil {
				return err
			}
			r := collect(l.mesh)
			if format == "yaml" {
				return writeYAML(cmd.OutOrStdout(), r)
			}
			tag, err := language.Parse(opts.lang)
			if err != nil {
				return fmt.Errorf("--lang: %w", err)
			}
			writeText(cmd.OutOrStdout(), message.NewPrinter(tag), r)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format: text or yaml")
	return cmd
}

func collect(m *bmesh.Mesh) report {
	r := report{
		Vertices: m.VertexCount(),
		Edges:    m.EdgeCount(),
		Loops:    m.LoopCount(),
		Faces:    m.FaceCount(),
	}
	for _, v := range m.AllVertices() {
		if v.Edge() == bmesh.NoEdge {
			r.Isolated++
		}
	}
	for id := range m.AllEdges() {
		switch n := len(m.EdgeLoops(id)); {
		case n == 0:
			r.EdgeKinds.Wire++
		case n == 1:
			r.EdgeKinds.Boundary++
		case n == 2:
			r.EdgeKinds.Manifold++
		default:
			r.EdgeKinds.NonManifold++
		}
	}
	for _, kind := range []bmesh.Kind{bmesh.VertexKind, bmesh.EdgeKind, bmesh.LoopKind, bmesh.FaceKind} {
		for _, def := range m.AttributeDefinitions(kind) {
			e := attributeEntry{
				Kind:       kind.String(),
				Name:       def.Name,
				Type:       def.Type.String(),
				Dimensions: def.Dimensions,
			}
			if vf, ok := def.VertexFormat(); ok {
				e.VertexFormat = vf.String()
				e.Size = vf.Size()
			}
			r.Attributes = append(r.Attributes, e)
		}
	}
	return r
}

func writeYAML(w io.Writer, r report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return err
	}
	return enc.Close()
}

func writeText(w io.Writer, p *message.Printer, r report) {
	rows := []struct {
		label string
		n     int
	}{
		{"vertices", r.Vertices},
		{"edges", r.Edges},
		{"loops", r.Loops},
		{"faces", r.Faces},
		{"isolated", r.Isolated},
	}
	for _, row := range rows {
		p.Fprintf(w, "%-14s %8d\n", row.label+":", row.n)
	}

	p.Fprintf(w, "\nedges by face count:\n")
	classes := []struct {
		label string
		n     int
	}{
		{"wire", r.EdgeKinds.Wire},
		{"boundary", r.EdgeKinds.Boundary},
		{"manifold", r.EdgeKinds.Manifold},
		{"non-manifold", r.EdgeKinds.NonManifold},
	}
	for _, c := range classes {
		p.Fprintf(w, "  %-12s %8d\n", c.label, c.n)
	}

	if len(r.Attributes) == 0 {
		return
	}
	p.Fprintf(w, "\nattributes:\n")
	for _, a := range r.Attributes {
		p.Fprintf(w, "  %-6s %s %s[%d]", a.Kind, a.Name, a.Type, a.Dimensions)
		if a.VertexFormat != "" {
			p.Fprintf(w, " (%s, %d bytes)", a.VertexFormat, a.Size)
		}
		p.Fprintln(w)
	}
}
