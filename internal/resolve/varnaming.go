package resolve

import "fmt"

// VarNames holds the stable variable names the lowerer attaches to every
// term map belonging to one TriplesMap, assigned purely from the
// TriplesMap's index N and each PredicateObjectMap's index M within it —
// never from identifiers, so the same document always lowers to the same
// names.
type VarNames struct {
	Subject string // sm_N

	// Indexed by POM position M, then by position within that POM's
	// predicate/object/graph map lists. Objects covers ObjectMaps followed
	// by RefObjectMaps, in that order, so a join-derived object gets a
	// stable pom_N_M_om_K name too.
	Predicates [][]string // pom_N_M_pm_K
	Objects    [][]string // pom_N_M_om_K
	POMGraphs  [][]string // pom_N_M_gm_K

	SubjectGraphs []string // sm_N_gm_K
}

// assignVarNames computes the VarNames for the N-th TriplesMap in
// document order.
func assignVarNames(n int, poms int, pmCounts, omCounts, gmCounts []int, subjectGraphs int) VarNames {
	v := VarNames{
		Subject:    fmt.Sprintf("sm_%d", n),
		Predicates: make([][]string, poms),
		Objects:    make([][]string, poms),
		POMGraphs:  make([][]string, poms),
	}
	for k := 0; k < subjectGraphs; k++ {
		v.SubjectGraphs = append(v.SubjectGraphs, fmt.Sprintf("sm_%d_gm_%d", n, k))
	}
	for m := 0; m < poms; m++ {
		for k := 0; k < pmCounts[m]; k++ {
			v.Predicates[m] = append(v.Predicates[m], fmt.Sprintf("pom_%d_%d_pm_%d", n, m, k))
		}
		for k := 0; k < omCounts[m]; k++ {
			v.Objects[m] = append(v.Objects[m], fmt.Sprintf("pom_%d_%d_om_%d", n, m, k))
		}
		for k := 0; k < gmCounts[m]; k++ {
			v.POMGraphs[m] = append(v.POMGraphs[m], fmt.Sprintf("pom_%d_%d_gm_%d", n, m, k))
		}
	}
	return v
}
