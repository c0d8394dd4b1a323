// Package seqidx is the facade tying the on-disk artifacts together: it
// builds a compressed-text/suffix-array/string-B-tree/wavelet-tree set
// from an input FASTA-like file and answers substring queries against
// an already-built set (spec §1, §6).
package seqidx

import "fmt"

// Artifacts names the on-disk files making up one index over a given
// text at a given blocking factor d (spec §6). CompPath, SAPath,
// SBTPath and WTPath are derived from TextPath and D by ArtifactPaths;
// callers building sibling indices for several d values get one
// non-colliding Artifacts per d.
type Artifacts struct {
	TextPath string
	CompPath string
	SAPath   string
	SBTPath  string
	WTPath   string
	D        int
}

// ArtifactPaths derives the four artifact paths from the source text
// path and blocking factor. d == 1 keeps the historical unsuffixed
// names (.comp, .comp.sa, .comp.sbt, .comp.wt); d > 1 appends ".dN" to
// all four, including the compressed-text file itself, so that sibling
// builds for multiple d values (spec §5.2) each own their paths
// outright rather than racing to write a shared .comp file — the
// packed text's padding (symbols appended so its length is a multiple
// of d) differs per d, so the file content legitimately differs too.
func ArtifactPaths(textPath string, d int) Artifacts {
	suffix := ""
	if d != 1 {
		suffix = fmt.Sprintf(".d%d", d)
	}
	comp := textPath + ".comp" + suffix
	return Artifacts{
		TextPath: textPath,
		CompPath: comp,
		SAPath:   comp + ".sa",
		SBTPath:  comp + ".sbt",
		WTPath:   comp + ".wt",
		D:        d,
	}
}
