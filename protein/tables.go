package protein

// Default pKa values for the amino and carboxyl termini, applied when the
// terminal residue has no override in nTerminalPKa / cTerminalPKa.
const (
	nTermPKaDefault = 7.5
	cTermPKaDefault = 3.55
)

// chargeSign marks whether an ionizable group is protonated-positive or
// deprotonated-negative.
type chargeSign int8

const (
	positive chargeSign = iota
	negative
)

// sideChainPKa lists the ionizable side chains with their pKa and sign.
// Residues absent from the table carry no side-chain charge.
type sideChain struct {
	pKa  float64
	sign chargeSign
}

var sideChainPKa = map[byte]sideChain{
	'K': {10.0, positive},
	'R': {12.0, positive},
	'H': {5.98, positive},
	'D': {4.05, negative},
	'E': {4.45, negative},
	'C': {9.00, negative},
	'Y': {10.0, negative},
}

// nTerminalPKa overrides the amino-terminus pKa for specific first residues.
var nTerminalPKa = map[byte]float64{
	'A': 7.59,
	'M': 7.00,
	'S': 6.93,
	'P': 8.36,
	'T': 6.82,
	'V': 7.44,
	'E': 7.70,
}

// cTerminalPKa overrides the carboxyl-terminus pKa for specific last residues.
var cTerminalPKa = map[byte]float64{
	'D': 4.55,
	'E': 4.75,
}
