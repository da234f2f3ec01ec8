package coding

// Weigher returns the number of septets a rune occupies once encoded, or 0
// when it cannot be encoded.
type Weigher func(rune) int

// septetWeigher weighs runes by the table they are encoded through. NUL
// takes one septet under every policy.
var septetWeigher Weigher = func(r rune) int {
	switch Representable(r) {
	case TableMain:
		return 1
	case TableExtension:
		return 2
	default:
		return 0
	}
}

// Len sums the weight of every rune in input.
func (fn Weigher) Len(input string) (n int) {
	for _, point := range input {
		n += fn(point)
	}
	return n
}

// Analysis summarises how a text maps onto the GSM 03.38 tables.
type Analysis struct {
	Runes      int
	Septets    int
	Main       int
	Extension  int
	Unmappable []int // rune positions
}

// Encodable reports whether every rune is in one of the tables.
func (a Analysis) Encodable() bool {
	return len(a.Unmappable) == 0
}

// Analyze counts the runes of text per table and the septets they occupy
// before any policy is applied. Unmappable runes are left out of Septets; a
// carriage return added after a trailing '@' is not counted either.
func Analyze(text string) Analysis {
	var a Analysis
	for _, r := range text {
		switch Representable(r) {
		case TableMain:
			a.Main++
		case TableExtension:
			a.Extension++
		default:
			a.Unmappable = append(a.Unmappable, a.Runes)
		}
		a.Septets += septetWeigher(r)
		a.Runes++
	}
	return a
}

// Septets returns the number of septets text occupies, ignoring runes that
// cannot be encoded.
func Septets(text string) int {
	return septetWeigher.Len(text)
}
