package coding

import (
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

var _ encoding.Encoding = (*Codec)(nil)

// NewEncoder returns a streaming encoder from UTF-8 to GSM 03.38 bytes.
func (c *Codec) NewEncoder() *encoding.Encoder {
	return &encoding.Encoder{Transformer: &encodeTransformer{enc: newEncoder(c)}}
}

// NewDecoder returns a streaming decoder from GSM 03.38 bytes to UTF-8.
// String and Bytes return nothing on failure, but a Reader or Writer built
// on it may pass on the valid prefix before the *DecodeError.
func (c *Codec) NewDecoder() *encoding.Decoder {
	return &encoding.Decoder{Transformer: &decodeTransformer{}}
}

func (c *Codec) String() string {
	return "GSM 03.38"
}

// encodeTransformer implements transform.Transformer on top of encoder.
// Bytes the encoder has produced but dst had no room for wait in enc.out,
// starting at head.
type encodeTransformer struct {
	enc    *encoder
	head   int
	closed bool
}

func (t *encodeTransformer) Reset() {
	t.enc.reset()
	t.head = 0
	t.closed = false
}

func (t *encodeTransformer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for {
		n := copy(dst[nDst:], t.enc.out[t.head:])
		nDst += n
		t.head += n
		if t.head < len(t.enc.out) {
			return nDst, nSrc, transform.ErrShortDst
		}
		t.enc.out = t.enc.out[:0]
		t.head = 0

		if nSrc == len(src) {
			if atEOF && !t.closed {
				t.enc.close()
				t.closed = true
				continue
			}
			return nDst, nSrc, nil
		}

		r, size := rune(src[nSrc]), 1
		if r >= utf8.RuneSelf {
			r, size = utf8.DecodeRune(src[nSrc:])
			if size == 1 && !atEOF && !utf8.FullRune(src[nSrc:]) {
				return nDst, nSrc, transform.ErrShortSrc
			}
		}
		if err := t.enc.writeRune(r); err != nil {
			return nDst, nSrc, err
		}
		nSrc += size
	}
}

// decodeTransformer implements transform.Transformer for Decode. offset
// counts the bytes consumed by earlier calls so errors carry stream offsets.
type decodeTransformer struct {
	offset int
}

func (t *decodeTransformer) Reset() {
	t.offset = 0
}

func (t *decodeTransformer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	defer func() { t.offset += nSrc }()

	for nSrc < len(src) {
		if src[nSrc] == EscapePrefix && nSrc+1 == len(src) && !atEOF {
			return nDst, nSrc, transform.ErrShortSrc
		}
		r, n, derr := decodeAt(src, nSrc)
		if derr != nil {
			if de, ok := derr.(*DecodeError); ok {
				de.Offset += t.offset
			}
			return nDst, nSrc, derr
		}
		if nDst+utf8.RuneLen(r) > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += utf8.EncodeRune(dst[nDst:], r)
		nSrc += n
	}
	return nDst, nSrc, nil
}
