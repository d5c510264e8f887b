package extract

import (
	"log/slog"
	"regexp"
	"strings"

	"github.com/dfrestrepo/guia-notify/constants"
	"github.com/dfrestrepo/guia-notify/internal/common"
	"github.com/dfrestrepo/guia-notify/internal/entity"
)

// Tracking-number patterns, tried in order, first match wins. Progressively
// looser: an explicit label, then any bare digit run, then a short letter
// prefix plus digits.
type trackingPattern struct {
	name string
	re   *regexp.Regexp
}

var trackingPatterns = []trackingPattern{
	{"labeled", regexp.MustCompile(`(?i)(?:gu[ií]a|tracking|rastreo|remesa|n[uú]mero|nro\.?)\s*[:#]?\s*([A-Za-z0-9]{8,20})\b`)},
	{"bare-digits", regexp.MustCompile(`\b(\d{10,15})\b`)},
	{"prefixed", regexp.MustCompile(`\b([A-Za-z]{2,3}\d{9,12})\b`)},
}

// reCustomerName: a recipient label followed by 2-4 capitalized words.
// No (?i) here; capitalization is the signal that words form a name. The
// inter-word separator must stay on the same line or the label of the next
// field would be swallowed into the name.
var reCustomerName = regexp.MustCompile(`(?:[Dd]estinatario|[Nn]ombre|[Cc]liente|[Rr]ecibe|[Ss]e[ñn]ora?|[Pp]ara)\s*[:.]?\s*((?:[A-ZÁÉÍÓÚÑ][a-záéíóúñü]+[ \t]+){1,3}[A-ZÁÉÍÓÚÑ][a-záéíóúñü]+)`)

// reAddressStart: a street-type abbreviation followed by a house number.
var reAddressStart = regexp.MustCompile(`(?i)\b(?:calle|cll|cl|carrera|cra|kra|kr|avenida|av|diagonal|dg|transversal|tv|manzana|mz)\.?\s*#?\s*\d+[A-Za-z]?(?:\s*(?:#|No\.?)\s*\d+[A-Za-z]?)?(?:\s*-\s*\d+)?`)

const (
	excerptCap    = 1000 // runes of source text retained for audit
	addressCap    = 50   // runes kept after the street-type match
	minNameFields = 1    // tracking number plus at least name or phone
)

// Extractor turns raw OCR/PDF text into a structured ShipmentRecord.
// Pure over its input; file reading and OCR happen upstream.
type Extractor struct {
	logger *slog.Logger
}

func NewExtractor(logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{logger: logger}
}

// Classify tags the text without extracting fields.
func (e *Extractor) Classify(text string) constants.DocClass {
	return Classify(Normalize(text))
}

// Extract parses a carrier-guide text into a ShipmentRecord.
//
// Returns common.ErrWrongDocumentFormat when the text reads as a chat
// export so the caller can route it to a different path instead of getting
// a misleading partial parse. Returns (nil, nil) when the text is the right
// kind but carries no usable shipment data.
func (e *Extractor) Extract(text string) (*entity.ShipmentRecord, error) {
	norm := Normalize(text)

	switch Classify(norm) {
	case constants.DocChatFormat:
		e.logger.Info("extract.rejected", "reason", "alternate_chat_format", "bytes", len(norm))
		return nil, common.ErrWrongDocumentFormat
	case constants.DocUnknown:
		e.logger.Debug("extract.skipped", "reason", "unknown_format", "bytes", len(norm))
		return nil, nil
	}

	rec := &entity.ShipmentRecord{
		Carrier:    detectCarrier(norm),
		RawExcerpt: capRunes(norm, excerptCap),
	}

	for _, tp := range trackingPatterns {
		if m := tp.re.FindStringSubmatch(norm); m != nil {
			rec.TrackingNumber = m[1]
			e.logger.Debug("extract.tracking", "pattern", tp.name)
			break
		}
	}

	if m := reCustomerName.FindStringSubmatch(norm); m != nil {
		rec.CustomerName = strings.TrimSpace(m[1])
	}
	if m := reColombianMobile.FindString(norm); m != "" {
		rec.CustomerPhone = NormalizePhone(m)
	}
	if loc := reAddressStart.FindStringIndex(norm); loc != nil {
		// The street-type match is kept whole; the cap budgets only the
		// runes that may follow it.
		addr := norm[loc[0]:loc[1]] + capRunes(norm[loc[1]:], addressCap)
		if i := strings.IndexByte(addr, '\n'); i >= 0 {
			addr = addr[:i]
		}
		rec.ShippingAddress = strings.TrimSpace(addr)
	}
	if muni, ok := lookupCity(foldAccents(norm)); ok {
		rec.City = muni.City
		rec.Department = muni.Department
	}

	// Validity gate: a record without a tracking number, or without at
	// least one way to find the customer, is useless downstream.
	if rec.TrackingNumber == "" || (rec.CustomerName == "" && rec.CustomerPhone == "") {
		e.logger.Info("extract.insufficient",
			"has_tracking", rec.TrackingNumber != "",
			"has_name", rec.CustomerName != "",
			"has_phone", rec.CustomerPhone != "",
		)
		return nil, nil
	}

	e.logger.Info("extract.ok",
		"carrier", string(rec.Carrier),
		"tracking_number", rec.TrackingNumber,
		"customer_name", rec.CustomerName,
		"customer_phone", common.MaskPhone(rec.CustomerPhone),
		"city", rec.City,
	)
	return rec, nil
}

func capRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
