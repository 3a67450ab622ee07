package shape

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFamily(t *testing.T) {
	tests := []struct {
		input string
		want  Family
	}{
		{"wide-flange", FamilyWideFlange},
		{"W", FamilyWideFlange},
		{"w", FamilyWideFlange},
		{"MC", FamilyCeeChannel},
		{"channel", FamilyCeeChannel},
		{"2L", FamilyDoubleAngle},
		{"HSS", FamilyHollowStructuralSection},
		{"round-hss", FamilyRoundHollowStructuralSection},
		{"PIPE", FamilyPipe},
		{" ST ", FamilyStructuralTee},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFamily(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseFamily("zed")
	assert.Error(t, err)
}

func TestFamiliesForCode(t *testing.T) {
	assert.Equal(t, []Family{FamilyHollowStructuralSection, FamilyRoundHollowStructuralSection}, FamiliesForCode("HSS"))
	assert.Equal(t, []Family{FamilyCeeChannel}, FamiliesForCode("MC"))
	assert.Empty(t, FamiliesForCode("X"))
}

func TestFamilyMetadataIsUnique(t *testing.T) {
	slugs := make(map[string]bool)
	tables := make(map[string]bool)
	for _, f := range AllFamilies() {
		assert.NotEmpty(t, f.Title())
		assert.NotEmpty(t, f.Codes())
		assert.False(t, slugs[f.Slug()], "duplicate slug %s", f.Slug())
		assert.False(t, tables[f.Table()], "duplicate table %s", f.Table())
		slugs[f.Slug()] = true
		tables[f.Table()] = true
	}
	assert.Len(t, AllFamilies(), 13)
}

func TestInvalidFamily(t *testing.T) {
	f := Family(NumFamilies)
	assert.False(t, f.Valid())
	assert.Empty(t, f.Slug())
	assert.Empty(t, f.Table())
	assert.Nil(t, f.Codes())
	assert.Nil(t, Rules(f).Properties())
}
