package extract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dfrestrepo/guia-notify/constants"
	"github.com/dfrestrepo/guia-notify/internal/common"
)

const guideSample = `SERVIENTREGA
Guía: SV123456789
Destinatario: Juan Pérez
Teléfono: 3001234567
Ciudad: Bogotá
Dirección: Calle 45 # 12-34`

const chatSample = `+57 300 123 4567
Hola, buenos días
10:45 a. m. ✓
nos vemos en la tarde`

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		text string
		want constants.DocClass
	}{
		{"empty", "", constants.DocUnknown},
		{"whitespace only", "  \n\t ", constants.DocUnknown},
		{"carrier guide", guideSample, constants.DocCarrierGuide},
		{"chat export", chatSample, constants.DocChatFormat},
		{"plain invoice", "Factura de venta No tiene nada que ver", constants.DocUnknown},
		{
			// Carrier plus a guide number always outranks chat signals.
			"chat quoting a guide",
			"Hola ✓ 10:45 te lo mandamos por Servientrega guía: 1234567890",
			constants.DocCarrierGuide,
		},
		{
			// A carrier name alone, without any tracking-shaped token,
			// is not enough to call it a guide.
			"carrier mention without tracking",
			"el paquete va por Coordinadora",
			constants.DocUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(Normalize(tt.text)))
		})
	}
}

func TestExtractGuide(t *testing.T) {
	e := NewExtractor(nil)

	rec, err := e.Extract(guideSample)
	require.NoError(t, err)
	require.NotNil(t, rec)

	assert.Equal(t, constants.Servientrega, rec.Carrier)
	assert.Equal(t, "SV123456789", rec.TrackingNumber)
	assert.Equal(t, "Juan Pérez", rec.CustomerName)
	assert.Equal(t, "573001234567", rec.CustomerPhone)
	assert.Equal(t, "Calle 45 # 12-34", rec.ShippingAddress)
	assert.Equal(t, "Bogotá", rec.City)
	assert.Equal(t, "Cundinamarca", rec.Department)
	assert.NotEmpty(t, rec.RawExcerpt)
}

func TestExtractNameStopsAtLineEnd(t *testing.T) {
	e := NewExtractor(nil)

	// The next line starts with a capitalized label; the name must not
	// absorb it across the line break.
	text := "Coordinadora\nGuía: 1234567890\nRecibe: Ana María Gómez\nCiudad: Cali\nTel: 3105551234"
	rec, err := e.Extract(text)
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, "Ana María Gómez", rec.CustomerName)
}

func TestExtractChatFormatRejected(t *testing.T) {
	e := NewExtractor(nil)

	rec, err := e.Extract(chatSample)
	require.ErrorIs(t, err, common.ErrWrongDocumentFormat)
	assert.Nil(t, rec)
}

func TestExtractUnknownYieldsNothing(t *testing.T) {
	e := NewExtractor(nil)

	rec, err := e.Extract("Factura de venta por servicios varios")
	require.NoError(t, err)
	assert.Nil(t, rec)
}

func TestExtractInsufficientData(t *testing.T) {
	e := NewExtractor(nil)

	// Tracking number but neither name nor phone: useless downstream.
	rec, err := e.Extract("Servientrega guía: 1234567890")
	require.NoError(t, err)
	assert.Nil(t, rec)
}

func TestExtractExcerptCapped(t *testing.T) {
	e := NewExtractor(nil)

	padding := strings.Repeat("texto de relleno sin datos utiles\n", 60)
	rec, err := e.Extract(guideSample + "\n" + padding)
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, 1000, len([]rune(rec.RawExcerpt)))
}

func TestExtractAddressCapped(t *testing.T) {
	e := NewExtractor(nil)

	// The street-type match itself never counts against the cap; only
	// the tail after it does.
	longAddr := "Carrera 7 # 71-21 torre B oficina 1301 edificio avenida chile costado oriental"
	rec, err := e.Extract("Envía\nGuía: 9876543210\nDestinatario: Ana María\n" + longAddr)
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.True(t, strings.HasPrefix(rec.ShippingAddress, "Carrera 7 # 71-21"))
	assert.LessOrEqual(t, len([]rune(rec.ShippingAddress)), len([]rune("Carrera 7 # 71-21"))+50)
	assert.NotContains(t, rec.ShippingAddress, "oriental")
}

func TestDetectCarrierTieBreak(t *testing.T) {
	tests := []struct {
		name string
		text string
		want constants.Carrier
	}{
		{"single", "paquete por coordinadora", constants.Coordinadora},
		{"ocr split token", "SERVI ENTREGA S.A.", constants.Servientrega},
		{"accented", "inter rapidísima", constants.Interrapidisima},
		{"tcc word boundary", "transporte TCC nacional", constants.TCC},
		{"no carrier", "sin transportadora conocida", constants.UnknownCarrier},
		{
			// Two carriers in one text resolve by table order, not by
			// position in the text.
			"two carriers",
			"Coordinadora entrega lo que Servientrega recoge",
			constants.Servientrega,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, detectCarrier(tt.text))
		})
	}
}

func TestLookupCity(t *testing.T) {
	tests := []struct {
		text     string
		wantCity string
		wantDept string
		wantOK   bool
	}{
		{"envio a bogota centro", "Bogotá", "Cundinamarca", true},
		{"destino: medellin", "Medellín", "Antioquia", true},
		{"llega a santa marta pronto", "Santa Marta", "Magdalena", true},
		{"ciudad desconocida", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			muni, ok := lookupCity(tt.text)
			require.Equal(t, tt.wantOK, ok)
			if ok {
				assert.Equal(t, tt.wantCity, muni.City)
				assert.Equal(t, tt.wantDept, muni.Department)
			}
		})
	}
}
