package engine

import (
	"fmt"
	"io"
)

// PrintStats dumps the counters of a finished search as "info string" lines.
func PrintStats(w io.Writer, algo Algorithm, st Stats) {
	fmt.Fprintf(w, "info string %s statistics:\n", algo)
	fmt.Fprintf(w, "info string   nodes: %d\n", st.Nodes)
	fmt.Fprintf(w, "info string   leaves: %d\n", st.Leaves)
	fmt.Fprintf(w, "info string   cutoffs: %d\n", st.Cutoffs)
	fmt.Fprintf(w, "info string   time: %s\n", st.Elapsed)
}
