package coding

// encoder is the rune-at-a-time encoding state shared by Encode and the
// streaming transformer. Output accumulates in out.
//
// Under NULSpace a run of NULs cannot be written until the rune after it is
// known, so the run is only counted in nuls. A trailing '@' needs the same
// lookahead to decide on its carriage return, tracked by atPending.
type encoder struct {
	codec *Codec

	out       []byte
	pos       int
	nuls      int
	atPending bool
}

func newEncoder(c *Codec) *encoder {
	return &encoder{codec: c}
}

func (e *encoder) reset() {
	e.out = e.out[:0]
	e.pos = 0
	e.nuls = 0
	e.atPending = false
}

func (e *encoder) writeRune(r rune) error {
	if e.nuls > 0 {
		if r == nul {
			e.nuls++
			e.pos++
			return nil
		}
		e.releaseNULs(r == formFeed)
	} else if e.atPending {
		if r == nul && e.codec.nul == NULSpace {
			e.nuls = 1
			e.pos++
			return nil
		}
		e.atPending = false
	}

	if r == nul {
		if e.codec.nul == NULSpace {
			e.nuls = 1
		} else {
			e.out = append(e.out, 0)
		}
		e.pos++
		return nil
	}

	seq, table := LookupRune(r)
	switch table {
	case TableNone:
		if e.codec.unmappable == UnmappableStrict {
			return &UnmappableCharacterError{Rune: r, Position: e.pos}
		}
		e.out = append(e.out, e.codec.replacement)
	default:
		e.out = append(e.out, seq.Bytes()...)
		if r == commercialAt {
			e.atPending = true
		}
	}
	e.pos++
	return nil
}

// releaseNULs writes the pending NUL run as zero bytes when keep is set and
// as spaces otherwise. A pending '@' gets its carriage return only when the
// run stays zero.
func (e *encoder) releaseNULs(keep bool) {
	fill := space
	if keep {
		fill = 0
		if e.atPending {
			e.out = append(e.out, carriageReturn)
		}
	}
	e.atPending = false
	for ; e.nuls > 0; e.nuls-- {
		e.out = append(e.out, fill)
	}
}

// close ends the input. NULs reaching the end stay zero bytes.
func (e *encoder) close() {
	if e.nuls > 0 {
		e.releaseNULs(true)
		return
	}
	if e.atPending {
		e.out = append(e.out, carriageReturn)
		e.atPending = false
	}
}

// Encode converts text to unpacked GSM 03.38 bytes.
func (c *Codec) Encode(text string) ([]byte, error) {
	e := newEncoder(c)
	e.out = make([]byte, 0, len(text)+1)
	for _, r := range text {
		if err := e.writeRune(r); err != nil {
			return nil, err
		}
	}
	e.close()
	return e.out, nil
}

// EncodeRunes converts a rune slice to unpacked GSM 03.38 bytes.
func (c *Codec) EncodeRunes(runes []rune) ([]byte, error) {
	e := newEncoder(c)
	e.out = make([]byte, 0, len(runes)+1)
	for _, r := range runes {
		if err := e.writeRune(r); err != nil {
			return nil, err
		}
	}
	e.close()
	return e.out, nil
}
