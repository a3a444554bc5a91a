package forge

import (
	"testing"

	"github.com/mupmc/mup/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionTag(t *testing.T) {
	tests := []struct {
		name      string
		minecraft string
		loader    string
		want      string
	}{
		{
			name:      "ideal version inside the 1.7-1.9 era repeats the minecraft version",
			minecraft: "1.9.4",
			loader:    "12.17.0.2317",
			want:      "1.9.4-12.17.0.2317-1.9.4",
		},
		{
			name:      "ideal version after the era uses the plain two-part tag",
			minecraft: "1.12.2",
			loader:    "14.23.5.2859",
			want:      "1.12.2-14.23.5.2859",
		},
		{
			name:      "ideal version before the era uses the plain two-part tag",
			minecraft: "1.6.4",
			loader:    "9.11.1.1345",
			want:      "1.6.4-9.11.1.1345",
		},
		{
			name:      "1.7.2 carries its mc172 suffix",
			minecraft: "1.7.2",
			loader:    "10.12.2.1161",
			want:      "1.7.2-10.12.2.1161-mc172",
		},
		{
			name:      "general version at the triple cutoff grows a .0 component",
			minecraft: "1.9",
			loader:    "12.16.1.1938",
			want:      "1.9-12.16.1.1938-1.9.0",
		},
		{
			name:      "general 1.10 build above the triple cutoff grows a .0 component",
			minecraft: "1.10",
			loader:    "12.18.1.2011",
			want:      "1.10-12.18.1.2011-1.10.0",
		},
		{
			name:      "general 1.9 build at the double cutoff repeats the minecraft version",
			minecraft: "1.9",
			loader:    "12.16.0.1885",
			want:      "1.9-12.16.0.1885-1.9",
		},
		{
			name:      "general version outside both cutoffs uses the plain two-part tag",
			minecraft: "1.11",
			loader:    "13.19.1.2189",
			want:      "1.11-13.19.1.2189",
		},
		{
			name:      "the 1.7.10 pre-release is its own special case",
			minecraft: "1.7.10_pre4",
			loader:    "10.12.2.1149",
			want:      "1.7.10_pre4-10.12.2.1149-prerelease",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tag, err := VersionTag(domain.MustGameVersion(tt.minecraft), tt.loader)
			require.NoError(t, err)
			assert.Equal(t, tt.want, tag)
		})
	}
}

func TestVersionTag_LowerCutoff(t *testing.T) {
	_, err := VersionTag(domain.MustGameVersion("1.2.5"), "who cares")
	require.ErrorIs(t, err, domain.ErrVersionNotFound)
}

func TestVersionTag_UpperCutoff(t *testing.T) {
	for _, minecraft := range []string{"1.20.2", "1.21.1"} {
		_, err := VersionTag(domain.MustGameVersion(minecraft), "49.0.3")
		require.ErrorIs(t, err, domain.ErrVersionNotFound, minecraft)
	}
}

func TestLatestPromotedVersion(t *testing.T) {
	promos := map[string]string{
		"1.19.2-latest":      "43.2.0",
		"1.19.2-recommended": "43.2.0",
		"1.20.1-latest":      "47.2.0",
		"1.12.2-latest":      "14.23.5.2859",
	}

	got, err := latestPromotedVersion(promos)
	require.NoError(t, err)
	assert.Equal(t, "1.20.1", got)
}

func TestLatestPromotedVersion_Empty(t *testing.T) {
	_, err := latestPromotedVersion(map[string]string{})
	require.Error(t, err)
}
