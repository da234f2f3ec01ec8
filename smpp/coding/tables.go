package coding

// EscapePrefix is the main table byte that selects the extension table for
// the byte following it. It has no character of its own.
const EscapePrefix byte = 0x1B

// Table identifies which GSM 03.38 table a rune is encoded through.
type Table int

const (
	TableNone Table = iota
	TableMain
	TableExtension
)

func (t Table) String() string {
	switch t {
	case TableMain:
		return "main"
	case TableExtension:
		return "extension"
	default:
		return "none"
	}
}

// noRune marks the escape slot of the main table.
const noRune rune = -1

// mainTable maps GSM 03.38 default alphabet codes (0x00–0x7F) to runes.
var mainTable = [128]rune{
	0x00: '@',
	0x01: '£',
	0x02: '$',
	0x03: '¥',
	0x04: 'è',
	0x05: 'é',
	0x06: 'ù',
	0x07: 'ì',
	0x08: 'ò',
	0x09: 'Ç',
	0x0A: '\n',
	0x0B: 'Ø',
	0x0C: 'ø',
	0x0D: '\r',
	0x0E: 'Å',
	0x0F: 'å',
	0x10: 'Δ',
	0x11: '_',
	0x12: 'Φ',
	0x13: 'Γ',
	0x14: 'Λ',
	0x15: 'Ω',
	0x16: 'Π',
	0x17: 'Ψ',
	0x18: 'Σ',
	0x19: 'Θ',
	0x1A: 'Ξ',
	0x1B: noRune,
	0x1C: 'Æ',
	0x1D: 'æ',
	0x1E: 'ß',
	0x1F: 'É',
	0x20: ' ',
	0x21: '!',
	0x22: '"',
	0x23: '#',
	0x24: '¤',
	0x25: '%',
	0x26: '&',
	0x27: '\'',
	0x28: '(',
	0x29: ')',
	0x2A: '*',
	0x2B: '+',
	0x2C: ',',
	0x2D: '-',
	0x2E: '.',
	0x2F: '/',
	0x30: '0',
	0x31: '1',
	0x32: '2',
	0x33: '3',
	0x34: '4',
	0x35: '5',
	0x36: '6',
	0x37: '7',
	0x38: '8',
	0x39: '9',
	0x3A: ':',
	0x3B: ';',
	0x3C: '<',
	0x3D: '=',
	0x3E: '>',
	0x3F: '?',
	0x40: '¡',
	0x41: 'A',
	0x42: 'B',
	0x43: 'C',
	0x44: 'D',
	0x45: 'E',
	0x46: 'F',
	0x47: 'G',
	0x48: 'H',
	0x49: 'I',
	0x4A: 'J',
	0x4B: 'K',
	0x4C: 'L',
	0x4D: 'M',
	0x4E: 'N',
	0x4F: 'O',
	0x50: 'P',
	0x51: 'Q',
	0x52: 'R',
	0x53: 'S',
	0x54: 'T',
	0x55: 'U',
	0x56: 'V',
	0x57: 'W',
	0x58: 'X',
	0x59: 'Y',
	0x5A: 'Z',
	0x5B: 'Ä',
	0x5C: 'Ö',
	0x5D: 'Ñ',
	0x5E: 'Ü',
	0x5F: '§',
	0x60: '¿',
	0x61: 'a',
	0x62: 'b',
	0x63: 'c',
	0x64: 'd',
	0x65: 'e',
	0x66: 'f',
	0x67: 'g',
	0x68: 'h',
	0x69: 'i',
	0x6A: 'j',
	0x6B: 'k',
	0x6C: 'l',
	0x6D: 'm',
	0x6E: 'n',
	0x6F: 'o',
	0x70: 'p',
	0x71: 'q',
	0x72: 'r',
	0x73: 's',
	0x74: 't',
	0x75: 'u',
	0x76: 'v',
	0x77: 'w',
	0x78: 'x',
	0x79: 'y',
	0x7A: 'z',
	0x7B: 'ä',
	0x7C: 'ö',
	0x7D: 'ñ',
	0x7E: 'ü',
	0x7F: 'à',
}

// extensionTable maps escape codes (following 0x1B) to runes.
var extensionTable = map[byte]rune{
	0x0A: '\f',
	0x14: '^',
	0x28: '{',
	0x29: '}',
	0x2F: '\\',
	0x3C: '[',
	0x3D: '~',
	0x3E: ']',
	0x40: '|',
	0x65: '€',
}

var (
	mainIndex      = indexMain()
	extensionIndex = indexExtension()
)

func indexMain() map[rune]byte {
	index := make(map[rune]byte, len(mainTable))
	for code, r := range mainTable {
		if r == noRune {
			continue
		}
		index[r] = byte(code)
	}
	return index
}

func indexExtension() map[rune]byte {
	index := make(map[rune]byte, len(extensionTable))
	for code, r := range extensionTable {
		index[r] = code
	}
	return index
}

// Sequence is the encoded form of a single rune: one byte for the main
// table, EscapePrefix followed by the escape code for the extension table.
type Sequence struct {
	b [2]byte
	n int
}

// Bytes returns the encoded bytes of the sequence.
func (s Sequence) Bytes() []byte {
	return s.b[:s.n]
}

// Len is the number of septets the sequence occupies.
func (s Sequence) Len() int {
	return s.n
}

// LookupRune returns the encoded sequence for r and the table it comes
// from. The extension table is consulted first. TableNone is returned when r
// cannot be represented.
func LookupRune(r rune) (Sequence, Table) {
	if code, ok := extensionIndex[r]; ok {
		return Sequence{b: [2]byte{EscapePrefix, code}, n: 2}, TableExtension
	}
	if b, ok := mainIndex[r]; ok {
		return Sequence{b: [2]byte{b}, n: 1}, TableMain
	}
	return Sequence{}, TableNone
}

// Representable reports which table r would be encoded through. NUL is
// reported as TableMain since the encoder writes it as byte 0.
func Representable(r rune) Table {
	if r == nul {
		return TableMain
	}
	_, table := LookupRune(r)
	return table
}

// MainRune returns the rune for a main table byte. The escape prefix and
// bytes above 0x7F have none.
func MainRune(b byte) (rune, bool) {
	if int(b) >= len(mainTable) {
		return 0, false
	}
	r := mainTable[b]
	if r == noRune {
		return 0, false
	}
	return r, true
}

// ExtensionRune returns the rune for an escape code.
func ExtensionRune(code byte) (rune, bool) {
	r, ok := extensionTable[code]
	return r, ok
}

// MainRunes returns every rune of the main table in code order.
func MainRunes() []rune {
	runes := make([]rune, 0, len(mainTable)-1)
	for _, r := range mainTable {
		if r != noRune {
			runes = append(runes, r)
		}
	}
	return runes
}

// ExtensionRunes returns every rune of the extension table in escape code
// order.
func ExtensionRunes() []rune {
	runes := make([]rune, 0, len(extensionTable))
	for code := 0; code < 0x80; code++ {
		if r, ok := extensionTable[byte(code)]; ok {
			runes = append(runes, r)
		}
	}
	return runes
}
