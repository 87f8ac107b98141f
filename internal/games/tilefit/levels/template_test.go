package levels

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTemplate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"full newline grid", ".....\n.2b..\n.b1a.\n..aa.\n.....", "...../.2b../.b1a./..aa./....."},
		{"slash separated", "...../.2b../.b1a./..aa./.....", "...../.2b../.b1a./..aa./....."},
		{"abbreviated rows padded", "..1a./..aa.", "..1a./..aa./...../...../....."},
		{"short row padded", "..8", "..8../...../...../...../....."},
		{"surrounding blank lines", "\n  .....\n  ..1a.\n  ..aa.\n", "...../..1a./..aa./...../....."},
		{"empty", "", "...../...../...../...../....."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpl, err := ParseTemplate(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, tmpl.String())
		})
	}
}

func TestParseTemplateBadSize(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"too many rows", "...../...../...../...../...../....."},
		{"row too long", "......"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseTemplate(tt.input)
			var ve ValidationError
			require.True(t, errors.As(err, &ve), "expected ValidationError, got %v", err)
			assert.Equal(t, CodeBadSize, ve.Code)
		})
	}
}

func TestTemplateAt(t *testing.T) {
	tmpl, err := ParseTemplate("...../..1a.")
	require.NoError(t, err)

	assert.Equal(t, '1', tmpl.At(2, 1))
	assert.Equal(t, 'a', tmpl.At(3, 1))
	assert.Equal(t, Empty, tmpl.At(0, 0))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		grid string
		code string
	}{
		{"valid square", "..1a./..aa.", ""},
		{"valid mixed", "...../.2b../.b1a./..aa.", ""},
		{"no shapes", "..aa./..aa.", CodeNoShapes},
		{"cell mismatch", "..1a./..a..", CodeCellMismatch},
		{"corner used", "8", CodeCornerUsed},
		{"too many shapes", ".8888/8888./.....", CodeTooManyShapes},
		{"bad size", "......", CodeBadSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateString(tt.grid)
			if tt.code == "" {
				assert.NoError(t, err)
				return
			}
			var ve ValidationError
			require.True(t, errors.As(err, &ve), "expected ValidationError, got %v", err)
			assert.Equal(t, tt.code, ve.Code)
			assert.Contains(t, ve.Error(), "["+tt.code+"]")
		})
	}
}
