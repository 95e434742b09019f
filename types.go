package shapematch

// Direction selects which acceptance check recursive matches dispatch through.
// It is chosen once per top-level match and passed unchanged to every nested
// acceptor.
type Direction int

const (
	Encode Direction = iota // Outbound: declared value -> wire type.
	Decode                  // Inbound: wire type -> declared value.
)

func (d Direction) String() string {
	switch d {
	case Encode:
		return "encode"
	case Decode:
		return "decode"
	}
	return "unknown"
}

// DefaultMaxDepth bounds nested acceptor dispatch when MatchOpt.MaxDepth is zero.
const DefaultMaxDepth = 64

// MatchOpt bundles matching options.
type MatchOpt struct {
	// MaxDepth limits how many acceptors may be nested inside one another.
	// Zero selects DefaultMaxDepth; negative values are treated as zero.
	MaxDepth int
}

func resolveOpt(opts []MatchOpt) MatchOpt {
	var o MatchOpt
	if len(opts) > 0 {
		o = opts[0]
	}
	if o.MaxDepth <= 0 {
		o.MaxDepth = DefaultMaxDepth
	}
	return o
}
