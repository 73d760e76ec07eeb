package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/claritypath/themedeck/internal/theme"
)

func TestBorderFor(t *testing.T) {
	tests := []struct {
		radius string
		want   lipgloss.Border
	}{
		{"2px", lipgloss.NormalBorder()},
		{"4px", lipgloss.NormalBorder()},
		{"12px", lipgloss.RoundedBorder()},
		{"16px", lipgloss.RoundedBorder()},
		{"bogus", lipgloss.NormalBorder()},
	}
	for _, tt := range tests {
		t.Run(tt.radius, func(t *testing.T) {
			assert.Equal(t, tt.want, BorderFor(tt.radius))
		})
	}
}

func TestElevatedBorder(t *testing.T) {
	base := lipgloss.RoundedBorder()
	assert.Equal(t, base, ElevatedBorder(base, "none"))
	assert.Equal(t, base, ElevatedBorder(base, ""))

	got := ElevatedBorder(base, "0 4px 16px rgba(0,0,0,0.1)")
	assert.Equal(t, "┃", got.Right)
	assert.Equal(t, "━", got.Bottom)
	assert.Equal(t, base.Left, got.Left)
}

func TestBuildFollowsStyle(t *testing.T) {
	clinical, err := theme.Resolve(theme.PaletteCalmProfessional, theme.StyleMinimalistClinical)
	require.NoError(t, err)
	card, err := theme.Resolve(theme.PaletteCalmProfessional, theme.StyleCleanCard)
	require.NoError(t, err)

	assert.Equal(t, lipgloss.NormalBorder(), Build(clinical).Corner)
	assert.Equal(t, lipgloss.RoundedBorder(), Build(card).Corner)
	assert.Equal(t, clinical, Build(clinical).Theme)
}

func TestIsBold(t *testing.T) {
	assert.False(t, IsBold(400))
	assert.False(t, IsBold(500))
	assert.True(t, IsBold(600))
	assert.True(t, IsBold(700))
}

func TestPixels(t *testing.T) {
	assert.Equal(t, 12, Pixels("12px"))
	assert.Equal(t, 0, Pixels("1rem"))
}
