package pdfwriter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuild(t *testing.T) {
	out, err := Build([]string{"INVOICE MHD-0001", "Total: 26.00"})
	assert.NoError(t, err)

	body := string(out)
	assert.True(t, strings.HasPrefix(body, "%PDF-1.4"))
	assert.True(t, strings.HasSuffix(body, "%%EOF"))
	assert.Contains(t, body, "(INVOICE MHD-0001) Tj")
	assert.Contains(t, body, "T* (Total: 26.00) Tj")
}

func TestBuild_EmptyInput(t *testing.T) {
	out, err := Build(nil)
	assert.NoError(t, err)
	assert.Contains(t, string(out), "(Document) Tj")
}

func TestBuild_EscapesDelimiters(t *testing.T) {
	out, err := Build([]string{`Acme (Pvt) \ Co`})
	assert.NoError(t, err)
	assert.Contains(t, string(out), `(Acme \(Pvt\) \\ Co) Tj`)
}
