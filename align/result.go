package align

import "strings"

// AsStrings renders the alignment as two gapped strings of equal length,
// one output symbol per operation per sequence, with gapChar standing in
// for the side that does not advance.
//
// gapChar must not already occur as a meaningful symbol in X or Y; on
// collision the rendering is ambiguous and the behavior unspecified
// (caller responsibility). Purely presentational: no scoring logic here.
func (r *Alignment) AsStrings(gapChar byte) (string, string) {
	var bx, by strings.Builder
	bx.Grow(len(r.Ops))
	by.Grow(len(r.Ops))

	i, j := r.XStart, r.YStart
	for _, op := range r.Ops {
		switch op {
		case Del:
			bx.WriteByte(r.X[i])
			by.WriteByte(gapChar)
			i++
		case Ins:
			bx.WriteByte(gapChar)
			by.WriteByte(r.Y[j])
			j++
		case Match, Subst:
			bx.WriteByte(r.X[i])
			by.WriteByte(r.Y[j])
			i++
			j++
		case None:
			// placeholder, consumes nothing
		}
	}

	return bx.String(), by.String()
}
