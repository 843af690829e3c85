package service

import (
	"crypto/sha1"
	"encoding/hex"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestPrefix(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		in   string
		year int
		want string
	}{
		{name: "spaces", in: "Secretaria de Educação", year: 2025, want: "SECRETARIA-DE-EDUCAÇÃO-2025"},
		{name: "trim and collapse", in: "  escola   alfa\tbeta ", year: 2024, want: "ESCOLA-ALFA-BETA-2024"},
		{name: "single word", in: "sme", year: 2025, want: "SME-2025"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, Prefix(tt.in, tt.year))
		})
	}
}

func TestCodeGenerator_Code(t *testing.T) {
	t.Parallel()
	at := time.Date(2025, 3, 1, 10, 0, 0, 123456789, time.UTC)
	g := &CodeGenerator{now: func() time.Time { return at }}

	sum := sha1.Sum([]byte("SME-2025-4-" + "1740823200123456789"))
	want := "SME-2025-" + strings.ToUpper(hex.EncodeToString(sum[:])[:8])

	require.Equal(t, want, g.Code("SME-2025", 4))
	require.NotEqual(t, g.Code("SME-2025", 4), g.Code("SME-2025", 5))
}

func TestCodeGenerator_Generate(t *testing.T) {
	t.Parallel()
	g := NewCodeGenerator()
	format := regexp.MustCompile(`^ESCOLA-ALFA-2025-[0-9A-F]{8}$`)

	codes := g.Generate("ESCOLA-ALFA-2025", 1000)
	require.Len(t, codes, 1000)

	seen := make(map[string]struct{}, len(codes))
	for _, c := range codes {
		require.Regexp(t, format, c)
		_, dup := seen[c]
		require.False(t, dup, "duplicate code %s", c)
		seen[c] = struct{}{}
	}
}

func TestCodeGenerator_GenerateFrozenClock(t *testing.T) {
	t.Parallel()
	at := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	g := &CodeGenerator{now: func() time.Time { return at }}

	codes := g.Generate("SME-2025", 50)
	require.Len(t, codes, 50)
	for i, c := range codes {
		require.Equal(t, g.Code("SME-2025", i), c)
	}
}
