package nav

// InsertPolicy decides whether an insert request is accepted. It receives
// the current entries (read-only) and the candidate view. Rejected inserts
// are silent no-ops, like every other invalid mutation.
type InsertPolicy func(entries []StackEntry, view View) bool

// PermitAll accepts every insert. This is the default policy.
func PermitAll(entries []StackEntry, view View) bool {
	return true
}

// MaxDepthPolicy rejects inserts that would grow the stack beyond maxDepth
// entries. A maxDepth of zero or less behaves like PermitAll.
func MaxDepthPolicy(maxDepth int) InsertPolicy {
	return func(entries []StackEntry, view View) bool {
		if maxDepth <= 0 {
			return true
		}
		return len(entries) < maxDepth
	}
}

// RejectDuplicateTop rejects an insert whose identity matches the current
// top entry, preventing double-taps from pushing the same destination twice.
func RejectDuplicateTop(entries []StackEntry, view View) bool {
	if len(entries) == 0 {
		return true
	}
	return entries[len(entries)-1].Identity() != view.Identity()
}

// CombinePolicies accepts an insert only when every given policy accepts it.
func CombinePolicies(policies ...InsertPolicy) InsertPolicy {
	return func(entries []StackEntry, view View) bool {
		for _, policy := range policies {
			if policy != nil && !policy(entries, view) {
				return false
			}
		}
		return true
	}
}
