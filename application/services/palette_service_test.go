package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"colorboard/pkg/colors"
	pkgerrors "colorboard/pkg/errors"
)

type fakeCompleter struct {
	response string
	err      error
	lastUser string
}

func (c *fakeCompleter) Complete(ctx context.Context, system, user string) (string, error) {
	c.lastUser = user
	if c.err != nil {
		return "", c.err
	}
	return c.response, nil
}

func TestPaletteService_Generate(t *testing.T) {
	completer := &fakeCompleter{
		response: `{"colors": ["#FF6F61", "abc", "#00ff00", "#123456", "#fedcba"], "explanation": "warm"}`,
	}
	svc := NewPaletteService(completer, nil)

	result, err := svc.Generate(context.Background(), "a warm sunset")
	require.NoError(t, err)
	assert.Equal(t, []string{"#ff6f61", "#aabbcc", "#00ff00", "#123456", "#fedcba"}, result.Colors)
	assert.Equal(t, "warm", result.Explanation)
	assert.Equal(t, "a warm sunset", completer.lastUser)
}

func TestPaletteService_Generate_StripsCodeFences(t *testing.T) {
	completer := &fakeCompleter{
		response: "```json\n{\"colors\": [\"#111111\"], \"explanation\": \"x\"}\n```",
	}
	svc := NewPaletteService(completer, nil)

	result, err := svc.Generate(context.Background(), "noir")
	require.NoError(t, err)
	assert.Equal(t, []string{"#111111"}, result.Colors)
}

func TestPaletteService_Generate_NoModelFallsBackToRandom(t *testing.T) {
	svc := NewPaletteService(nil, nil)

	result, err := svc.Generate(context.Background(), "sunset over the sea")
	require.NoError(t, err)
	require.Len(t, result.Colors, PaletteSize)
	for _, hex := range result.Colors {
		normalized, err := colors.NormalizeHex(hex)
		require.NoError(t, err)
		assert.Equal(t, normalized, hex)
	}
	assert.NotEmpty(t, result.Explanation)
}

func TestPaletteService_Generate_ShortPrompt(t *testing.T) {
	svc := NewPaletteService(&fakeCompleter{}, nil)

	_, err := svc.Generate(context.Background(), "  a ")
	assert.True(t, pkgerrors.IsType(err, pkgerrors.ErrorTypeValidation))
}

func TestPaletteService_Generate_PromptTooLong(t *testing.T) {
	svc := NewPaletteService(&fakeCompleter{}, nil)

	_, err := svc.Generate(context.Background(), strings.Repeat("x", MaxPromptLength+1))
	assert.True(t, pkgerrors.IsType(err, pkgerrors.ErrorTypeTooLarge))
}

func TestPaletteService_Generate_MalformedUpstreamOutput(t *testing.T) {
	tests := []struct {
		name     string
		response string
	}{
		{"not json", "here are some lovely colors for you"},
		{"empty palette", `{"colors": [], "explanation": "x"}`},
		{"invalid hex", `{"colors": ["#zzzzzz"], "explanation": "x"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewPaletteService(&fakeCompleter{response: tt.response}, nil)
			_, err := svc.Generate(context.Background(), "sunset")
			assert.True(t, pkgerrors.IsType(err, pkgerrors.ErrorTypeUpstream), "got: %v", err)
		})
	}
}

func TestPaletteService_Generate_CompleterErrorPassesThrough(t *testing.T) {
	svc := NewPaletteService(&fakeCompleter{err: pkgerrors.NewTimeoutError("completion")}, nil)

	_, err := svc.Generate(context.Background(), "sunset")
	assert.True(t, pkgerrors.IsTimeout(err))
}

func TestStripCodeFences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no fence", `{"a":1}`, `{"a":1}`},
		{"plain fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"fence hugging braces", "```{\"a\":1}```", `{"a":1}`},
		{"surrounding whitespace", "  ```json\n{\"a\":1}\n```  ", `{"a":1}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripCodeFences(tt.in))
		})
	}
}
