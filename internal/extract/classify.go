package extract

import (
	"regexp"
	"strings"

	"github.com/dfrestrepo/guia-notify/constants"
)

// Alternate-format (chat export / screenshot) features. Each regex is one
// boolean feature; two or more firing, with no carrier token present,
// classifies the document as a chat rather than a guide.
var (
	reClockTime = regexp.MustCompile(`\b\d{1,2}:\d{2}(?:\s?[ap]\.?\s?m\.?)?`)
	reGreeting  = regexp.MustCompile(`(?i)\b(?:hola|buenos d[ií]as|buenas tardes|buenas noches|mucho gusto|c[oó]mo est[aá]s?)\b`)
	reChatHead  = regexp.MustCompile(`^\s*\+?57\s?3\d{2}`)

	// Street-type abbreviations common in Colombian addresses.
	reStreetToken = regexp.MustCompile(`(?i)\b(?:calle|cl|cll|carrera|cra|kr|kra|avenida|av|diagonal|dg|transversal|tv|manzana|mz)\b`)

	tickGlyphs = []string{"✓", "✔", "√"}
)

// hasTrackingToken reports whether any tracking-number-shaped token appears.
func hasTrackingToken(text string) bool {
	for _, tp := range trackingPatterns {
		if tp.re.MatchString(text) {
			return true
		}
	}
	return false
}

// alternateScore counts the chat-format features present in the text.
func alternateScore(text string) int {
	score := 0
	if reClockTime.MatchString(text) {
		score++
	}
	if reGreeting.MatchString(text) {
		score++
	}
	// High street-token density reads like a pasted conversation full of
	// addresses, not a single guide.
	if len(reStreetToken.FindAllStringIndex(text, 4)) >= 3 {
		score++
	}
	if reChatHead.MatchString(text) {
		score++
	}
	for _, g := range tickGlyphs {
		if strings.Contains(text, g) {
			score++
			break
		}
	}
	return score
}

// Classify tags raw document text as a carrier guide, an alternate chat
// format, or unknown. A carrier token plus a tracking-shaped token always
// wins over chat signals: a chat screenshot that quotes a carrier and a
// guide number will be classified as a guide. Known bias, kept on purpose.
func Classify(text string) constants.DocClass {
	if strings.TrimSpace(text) == "" {
		return constants.DocUnknown
	}
	carrier := hasCarrierToken(text)
	if carrier && hasTrackingToken(text) {
		return constants.DocCarrierGuide
	}
	if !carrier && alternateScore(text) >= 2 {
		return constants.DocChatFormat
	}
	return constants.DocUnknown
}
