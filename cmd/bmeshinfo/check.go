package main

import (
	"fmt"
	"strings"

	"github.com/gogpu/bmesh/internal/parallel"
	"github.com/spf13/cobra"
)

// checkResult is the outcome of validating one file.
type checkResult struct {
	report     string
	violations int
	err        error
}

func newCheckCmd() *cobra.Command {
	var jobs int

	cmd := &cobra.Command{
		Use:   "check FILE...",
		Short: "Validate the meshes described in the given files",
		Long: `Check builds the mesh described in each FILE and verifies every disk,
radial and loop cycle and every attribute value against its schema.
Attribute values are not corrected first, so a mistyped value is reported.
Files are checked concurrently; reports are printed in argument order.

The exit status is 2 if any mesh is inconsistent.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pool := parallel.New(jobs)
			defer pool.Close()

			results := parallel.Map(pool, args, checkFile)

			out := cmd.OutOrStdout()
			var corrupt, violations int
			for _, r := range results {
				if r.err != nil {
					return r.err
				}
				fmt.Fprint(out, r.report)
				if r.violations > 0 {
					corrupt++
					violations += r.violations
				}
			}
			if corrupt > 0 {
				return fmt.Errorf("%w: %d of %d meshes (%d violations)", errCorrupt, corrupt, len(args), violations)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&jobs, "jobs", "j", 0, "number of files checked at once (default GOMAXPROCS)")
	return cmd
}

func checkFile(path string) checkResult {
	d, err := readDescription(path)
	if err != nil {
		return checkResult{err: err}
	}
	l, err := d.build(false)
	if err != nil {
		return checkResult{err: fmt.Errorf("%s: %w", path, err)}
	}

	err = l.mesh.Check()
	if err == nil {
		return checkResult{report: path + ": ok\n"}
	}

	var b strings.Builder
	var n int
	for _, e := range unwrapAll(err) {
		fmt.Fprintf(&b, "%s: %v\n", path, e)
		n++
	}
	return checkResult{report: b.String(), violations: n}
}

// unwrapAll flattens an errors.Join tree into its leaves.
func unwrapAll(err error) []error {
	if j, ok := err.(interface{ Unwrap() []error }); ok {
		var out []error
		for _, e := range j.Unwrap() {
			out = append(out, unwrapAll(e)...)
		}
		return out
	}
	if err == nil {
		return nil
	}
	return []error{err}
}
