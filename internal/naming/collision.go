package naming

// CollisionResolver tracks target paths claimed by rename plans within one
// directory batch and consults the filesystem for pre-existing occupants.
// A target is taken when an earlier plan claimed it, or when a file already
// sits there that is not the source itself. The sequencer resolves a taken
// target by retrying with the next sequence index.
//
// One resolver is created per directory batch; recursive runs never share
// claims across directories.
type CollisionResolver struct {
	claimed map[string]string // target path → source path that claimed it
	exists  func(string) bool // filesystem existence check, injectable for tests
}

// NewCollisionResolver creates an empty resolver. exists must report whether
// a path currently exists on disk.
func NewCollisionResolver(exists func(string) bool) *CollisionResolver {
	return &CollisionResolver{
		claimed: make(map[string]string),
		exists:  exists,
	}
}

// Free reports whether source may claim target.
func (cr *CollisionResolver) Free(source, target string) bool {
	if owner, ok := cr.claimed[target]; ok {
		return owner == source
	}
	if target != source && cr.exists(target) {
		return false
	}
	return true
}

// Claim records target as owned by source. Callers check Free first;
// claiming an owned target overwrites the owner.
func (cr *CollisionResolver) Claim(source, target string) {
	cr.claimed[target] = source
}
