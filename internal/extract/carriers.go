package extract

import (
	"regexp"

	"github.com/dfrestrepo/guia-notify/constants"
)

// carrierPattern pairs a carrier with the regex that detects it in guide
// text. The table is evaluated in order and the first match wins; when two
// carrier names co-occur in one document, table order is the tie-break.
type carrierPattern struct {
	carrier constants.Carrier
	re      *regexp.Regexp
}

var carrierTable = []carrierPattern{
	{constants.Servientrega, regexp.MustCompile(`(?i)servi\s?entrega`)},
	{constants.Interrapidisima, regexp.MustCompile(`(?i)inter\s?rapid[ií]sima`)},
	{constants.Envia, regexp.MustCompile(`(?i)\benv[ií]a\b`)},
	{constants.Coordinadora, regexp.MustCompile(`(?i)coordinadora`)},
	{constants.Deprisa, regexp.MustCompile(`(?i)deprisa`)},
	{constants.TCC, regexp.MustCompile(`(?i)\bTCC\b`)},
}

// detectCarrier returns the first carrier whose pattern matches, or Unknown.
func detectCarrier(text string) constants.Carrier {
	for _, cp := range carrierTable {
		if cp.re.MatchString(text) {
			return cp.carrier
		}
	}
	return constants.UnknownCarrier
}

// hasCarrierToken reports whether any known carrier name appears at all.
func hasCarrierToken(text string) bool {
	return detectCarrier(text) != constants.UnknownCarrier
}
