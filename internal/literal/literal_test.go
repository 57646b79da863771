package literal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePlain(t *testing.T) {
	p := Parse(`"PizzaComQueijo"`)
	assert.True(t, p.Valid)
	assert.Equal(t, "PizzaComQueijo", p.Value)
	assert.Empty(t, p.Language)
	assert.Empty(t, p.Datatype)
}

func TestParseLanguageTagged(t *testing.T) {
	p := Parse(`"PizzaComQueijo"@pt`)
	assert.True(t, p.Valid)
	assert.Equal(t, "PizzaComQueijo", p.Value)
	assert.Equal(t, "pt", p.Language)
}

func TestParseDatatyped(t *testing.T) {
	p := Parse(`"7"^^<http://www.w3.org/2001/XMLSchema#integer>`)
	assert.True(t, p.Valid)
	assert.Equal(t, "7", p.Value)
	assert.Equal(t, "<http://www.w3.org/2001/XMLSchema#integer>", p.Datatype)
}

func TestParseNotALiteral(t *testing.T) {
	p := Parse(`<http://ex/Veneziana>`)
	assert.False(t, p.Valid)
}

func TestParseIllFormed(t *testing.T) {
	p := Parse(`"unterminated`)
	assert.False(t, p.Valid)
}

func TestRoundTrip(t *testing.T) {
	cases := []Parts{
		{Value: "hello", Valid: true},
		{Value: "bonjour", Language: "fr", Valid: true},
		{Value: "7", Datatype: "xsd:integer", Valid: true},
	}
	for _, c := range cases {
		rendered := Render(c.Value, c.Language, c.Datatype)
		got := Parse(rendered)
		assert.Equal(t, c.Value, got.Value)
		assert.Equal(t, c.Language, got.Language)
		assert.Equal(t, c.Datatype, got.Datatype)
	}
}
