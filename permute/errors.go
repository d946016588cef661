package permute

import "github.com/katalvlaran/recursion/errs"

var (
	// ErrPrefixOutOfRange indicates prefixLen outside [0, len(items)].
	ErrPrefixOutOfRange = errs.New("permute", "prefix length out of range", errs.ErrInvalidArgument)

	// ErrTooLarge indicates a Collect request above MaxCollect free positions.
	ErrTooLarge = errs.New("permute", "too many permutations to collect", errs.ErrInvalidArgument)

	// ErrNilVisitor indicates a nil callback passed to Walk.
	ErrNilVisitor = errs.New("permute", "visitor must be non-nil", errs.ErrInvalidArgument)
)

const (
	methodPermutations = "Permutations"
	methodWalk         = "Walk"
	methodCollect      = "Collect"
	methodCount        = "Count"
)
