package ocr

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRunner scripts responses per binary name and records invocations.
type fakeRunner struct {
	pdftotextOut string
	pdftotextErr error
	tesseractOut string
	tesseractErr error
	pdftoppmErr  error
	rendered     int // pages pdftoppm "produces"

	calls []string
}

func (f *fakeRunner) Run(_ context.Context, name string, args ...string) ([]byte, []byte, error) {
	f.calls = append(f.calls, name)
	switch name {
	case "pdftotext":
		return []byte(f.pdftotextOut), nil, f.pdftotextErr
	case "pdftoppm":
		if f.pdftoppmErr != nil {
			return nil, []byte("render failed"), f.pdftoppmErr
		}
		prefix := args[len(args)-1]
		for i := 1; i <= f.rendered; i++ {
			if err := os.WriteFile(prefix+"-"+string(rune('0'+i))+".png", []byte("png"), 0o644); err != nil {
				return nil, nil, err
			}
		}
		return nil, nil, nil
	case "tesseract":
		return []byte(f.tesseractOut), nil, f.tesseractErr
	default:
		return nil, nil, errors.New("unexpected binary " + name)
	}
}

func testSource(runner Runner) *Source {
	s := NewSource(Config{}, nil)
	s.runner = runner
	return s
}

func TestTextPDFWithTextLayer(t *testing.T) {
	richText := strings.Repeat("SERVIENTREGA guía de transporte nacional\n", 10) + "\fsegunda página"
	runner := &fakeRunner{pdftotextOut: richText}
	s := testSource(runner)

	res, err := s.Text(context.Background(), "/tmp/guia.pdf")
	require.NoError(t, err)

	assert.Equal(t, "pdf-text", res.Method)
	assert.Equal(t, 2, res.Pages)
	assert.Equal(t, richText, res.Text)
	assert.Equal(t, []string{"pdftotext"}, runner.calls)
}

func TestTextPDFThinLayerFallsBackToOCR(t *testing.T) {
	runner := &fakeRunner{
		pdftotextOut: "  \n ", // scanned PDF: nothing useful in the text layer
		rendered:     2,
		tesseractOut: "texto reconocido",
	}
	s := testSource(runner)

	res, err := s.Text(context.Background(), "/tmp/guia.pdf")
	require.NoError(t, err)

	assert.Equal(t, "pdf-ocr", res.Method)
	assert.Equal(t, 2, res.Pages)
	assert.Contains(t, res.Text, "texto reconocido")
	assert.NotEmpty(t, res.Warnings)
	assert.Equal(t, []string{"pdftotext", "pdftoppm", "tesseract", "tesseract"}, runner.calls)
}

func TestTextPDFRenderFailure(t *testing.T) {
	runner := &fakeRunner{
		pdftotextErr: errors.New("exit status 1"),
		pdftoppmErr:  errors.New("exit status 1"),
	}
	s := testSource(runner)

	_, err := s.Text(context.Background(), "/tmp/guia.pdf")
	assert.Error(t, err)
}

func TestTextImage(t *testing.T) {
	runner := &fakeRunner{tesseractOut: "guía 1234567890"}
	s := testSource(runner)

	res, err := s.Text(context.Background(), "/tmp/foto.jpg")
	require.NoError(t, err)

	assert.Equal(t, "image-ocr", res.Method)
	assert.Equal(t, 1, res.Pages)
	assert.Equal(t, "guía 1234567890", res.Text)
}

func TestTextUnsupportedExtension(t *testing.T) {
	s := testSource(&fakeRunner{})

	_, err := s.Text(context.Background(), "/tmp/archivo.docx")
	assert.Error(t, err)
}
