package diag

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errSample = errors.New("sample")

func TestDiagnostic(t *testing.T) {
	d := New(SeveritySyntax, errSample, 3, 14, "expected expression")

	assert.Equal(t, "3:14: syntax error: expected expression", d.Error())
	assert.ErrorIs(t, d, errSample)
	assert.Equal(t, "lexical error", SeverityLexical.String())
	assert.Equal(t, "error", Severity(0).String())
}

func TestList(t *testing.T) {
	var l List
	assert.NoError(t, l.Err())
	assert.Equal(t, 0, l.Len())
	assert.Equal(t, "no errors", l.Error())

	l.Add(New(SeverityLexical, errSample, 1, 1, "unterminated string"))
	require.Error(t, l.Err())
	assert.Equal(t, "1:1: lexical error: unterminated string", l.Error())

	other := errors.New("other")
	l.Add(New(SeveritySyntax, other, 2, 5, "invalid callee"))
	assert.Equal(t, 2, l.Len())
	assert.Equal(t, "2 errors:\n1:1: lexical error: unterminated string\n2:5: syntax error: invalid callee", l.Error())

	err := l.Err()
	assert.ErrorIs(t, err, errSample)
	assert.ErrorIs(t, err, other)

	var d *Diagnostic
	require.True(t, errors.As(err, &d))
	assert.Equal(t, 1, d.Line)
}
