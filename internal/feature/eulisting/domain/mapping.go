// Package domain holds the static knowledge the EU listing resolver works with:
// exchange suffix conventions and the hand-curated US -> EU ticker table.
package domain

import (
	"sort"
	"strings"
)

// German exchange suffixes, in the order variants are generated.
const (
	SuffixXetra     = ".DE"
	SuffixFrankfurt = ".F"
	SuffixMunich    = ".MU"
	SuffixStuttgart = ".SG"
)

// EUSuffixes are the exchange suffixes that identify a German listing.
var EUSuffixes = []string{SuffixXetra, SuffixFrankfurt, SuffixMunich, SuffixStuttgart}

// HasEUSuffix reports whether symbol ends in one of EUSuffixes (case-insensitive).
func HasEUSuffix(symbol string) bool {
	s := strings.ToUpper(symbol)
	for _, suf := range EUSuffixes {
		if strings.HasSuffix(s, suf) && len(s) > len(suf) {
			return true
		}
	}
	return false
}

// KnownMappings is an immutable table from US ticker to EU candidates, highest confidence first.
// The zero value is an empty table.
type KnownMappings struct {
	m map[string][]string
}

// NewKnownMappings copies table into an immutable KnownMappings. Keys and candidates are uppercased.
func NewKnownMappings(table map[string][]string) KnownMappings {
	m := make(map[string][]string, len(table))
	for us, eu := range table {
		cands := make([]string, 0, len(eu))
		for _, c := range eu {
			if c = strings.ToUpper(strings.TrimSpace(c)); c != "" {
				cands = append(cands, c)
			}
		}
		m[strings.ToUpper(strings.TrimSpace(us))] = cands
	}
	return KnownMappings{m: m}
}

// Lookup returns a copy of the candidates mapped to usSymbol, or nil.
func (k KnownMappings) Lookup(usSymbol string) []string {
	cands, ok := k.m[strings.ToUpper(usSymbol)]
	if !ok {
		return nil
	}
	out := make([]string, len(cands))
	copy(out, cands)
	return out
}

// Len returns the number of mapped US symbols.
func (k KnownMappings) Len() int { return len(k.m) }

// Entries returns a copy of the table, sorted by US symbol.
func (k KnownMappings) Entries() []Mapping {
	out := make([]Mapping, 0, len(k.m))
	for us := range k.m {
		out = append(out, Mapping{USSymbol: us, Candidates: k.Lookup(us)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].USSymbol < out[j].USSymbol })
	return out
}

// Mapping is one row of KnownMappings.
type Mapping struct {
	USSymbol   string
	Candidates []string
}

// DefaultMappings is the curated table for listings whose German ticker cannot be derived from
// the US symbol. It is built once at process start and never mutated.
var DefaultMappings = NewKnownMappings(map[string][]string{
	"AAPL":  {"APC.DE", "APC.F"},
	"ABNB":  {"6Z1.DE", "6Z1.F"},
	"BA":    {"BCO.DE", "BCO.F"},
	"BABA":  {"AHLA.DE", "AHLA.F"},
	"BAC":   {"NCB.DE", "NCB.F"},
	"BIDU":  {"B1C.DE", "B1C.F"},
	"CAT":   {"CAT1.DE", "CAT1.F"},
	"COIN":  {"1QZ.DE", "1QZ.F"},
	"CRM":   {"FOO.DE", "FOO.F"},
	"CRWD":  {"45C.DE", "45C.F"},
	"CVX":   {"CHV.DE", "CHV.F"},
	"DDOG":  {"3QD.DE", "3QD.F"},
	"DIS":   {"WDP.DE", "WDP.F"},
	"GOOG":  {"ABEC.DE", "ABEC.F"},
	"GOOGL": {"ABEA.DE", "ABEA.F"},
	"HD":    {"HDI.DE", "HDI.F"},
	"INTC":  {"INL.DE", "INL.F"},
	"JD":    {"013A.DE", "013A.F"},
	"JPM":   {"CMC.DE", "CMC.F"},
	"KO":    {"CCC3.DE", "CCC3.F"},
	"MA":    {"M4I.DE", "M4I.F"},
	"MCD":   {"MDO.DE", "MDO.F"},
	"META":  {"FB2A.DE", "FB2A.F"},
	"MSFT":  {"MSF.DE", "MSF.F"},
	"NET":   {"8CF.DE", "8CF.F"},
	"NFLX":  {"NFC.DE", "NFC.F"},
	"NVDA":  {"NVD.DE", "NVD.F"},
	"PLTR":  {"PTX.DE", "PTX.F"},
	"PYPL":  {"2PP.DE", "2PP.F"},
	"SBUX":  {"SRB.DE", "SRB.F"},
	"SHOP":  {"307.DE", "307.F"},
	"SNOW":  {"5Q5.DE", "5Q5.F"},
	"TSLA":  {"TL0.DE", "TL0.F"},
	"UBER":  {"UT8.DE", "UT8.F"},
	"V":     {"3V64.DE", "3V64.F"},
	"XOM":   {"XONA.DE", "XONA.F"},
})
