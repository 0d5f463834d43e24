package topology

// Visible reports whether link l is usable by a coalition described as a
// membership predicate over operator indices. Public links are always
// visible; a private link requires every owner to be a member.
//
// The predicate form keeps this package free of any coalition
// representation: callers pass whatever membership test their coalition
// key supports (the coalition package passes a bitmask test).
func (l Link) Visible(member func(opIdx int) bool) bool {
	if l.Kind == Public {
		return true
	}
	for _, o := range l.Owners {
		if !member(o) {
			return false
		}
	}

	return true
}

// VisibleTo returns the links usable by the coalition whose members are
// listed by operator name: {all public links} ∪ {private links whose
// owners are all members}. Unknown names are ignored.
//
// Pure and deterministic: the result order follows Links order, and the
// function recomputes its answer on every call (a cheap filter over a
// fixed slice), holding no hidden state.
//
// Complexity: O(L) for L links.
func (t *Topology) VisibleTo(members []string) []Link {
	// Build the membership bitset once per call.
	in := make([]bool, len(t.Operators))
	for _, m := range members {
		if i, ok := t.opIndex[m]; ok {
			in[i] = true
		}
	}

	out := make([]Link, 0, len(t.Links))
	for _, l := range t.Links {
		if l.Visible(func(i int) bool { return in[i] }) {
			out = append(out, l)
		}
	}

	return out
}
