// Package coding converts between Unicode text and the unpacked GSM 03.38
// 7-bit default alphabet, one byte per septet. Septet packing is left to the
// transport.
package coding

// UnmappablePolicy decides what the encoder does with a rune that is in
// neither table.
type UnmappablePolicy int

const (
	// UnmappableReplace writes the replacement character and carries on.
	UnmappableReplace UnmappablePolicy = iota + 1
	// UnmappableStrict fails on the first unmappable rune.
	UnmappableStrict
)

func (p UnmappablePolicy) String() string {
	switch p {
	case UnmappableReplace:
		return "replace"
	case UnmappableStrict:
		return "strict"
	default:
		return "unset"
	}
}

// NULPolicy decides how U+0000 is encoded.
type NULPolicy int

const (
	// NULKeep encodes every NUL as byte 0.
	NULKeep NULPolicy = iota
	// NULSpace turns a run of NULs into spaces unless the run is followed by
	// a form feed or reaches the end of the text. Some older SMS stacks
	// expect this.
	NULSpace
)

func (p NULPolicy) String() string {
	switch p {
	case NULKeep:
		return "keep"
	case NULSpace:
		return "space"
	default:
		return "unknown"
	}
}

const (
	nul            rune = 0x00
	formFeed       rune = '\f'
	commercialAt   rune = '@'
	carriageReturn byte = 0x0D
	space          byte = 0x20

	// DefaultReplacement is written for unmappable runes unless
	// Config.Replacement says otherwise.
	DefaultReplacement rune = '?'
)

// Config holds the encoder policies. Unmappable has no default and must be
// set.
type Config struct {
	Unmappable  UnmappablePolicy
	Replacement rune // zero means DefaultReplacement
	NUL         NULPolicy
}

// Codec encodes and decodes GSM 03.38 text. It holds no mutable state and is
// safe for concurrent use.
type Codec struct {
	unmappable  UnmappablePolicy
	replacement byte
	nul         NULPolicy
}

// NewCodec validates cfg and returns a Codec.
func NewCodec(cfg Config) (*Codec, error) {
	switch cfg.Unmappable {
	case UnmappableReplace, UnmappableStrict:
	default:
		return nil, ErrNoUnmappablePolicy
	}
	switch cfg.NUL {
	case NULKeep, NULSpace:
	default:
		return nil, ErrUnknownNULPolicy
	}

	replacement := cfg.Replacement
	if replacement == 0 {
		replacement = DefaultReplacement
	}
	// '@' would leave a trailing replacement indistinguishable from padding.
	if replacement == commercialAt {
		return nil, ErrInvalidReplacement
	}
	seq, table := LookupRune(replacement)
	if table != TableMain {
		return nil, ErrInvalidReplacement
	}

	return &Codec{
		unmappable:  cfg.Unmappable,
		replacement: seq.Bytes()[0],
		nul:         cfg.NUL,
	}, nil
}

// Config returns the configuration the codec was built with.
func (c *Codec) Config() Config {
	r, _ := MainRune(c.replacement)
	return Config{
		Unmappable:  c.unmappable,
		Replacement: r,
		NUL:         c.nul,
	}
}
