package domain

import (
	"strconv"
	"strings"

	goversion "github.com/hashicorp/go-version"
	"go.trai.ch/zerr"
)

// VersionKind classifies the shape of a Minecraft version string. The forge
// maven layout depends on this classification, so it mirrors the historical
// one: exactly three numeric components is "ideal", any other all-numeric
// dotted form is "general", and everything else (snapshots, pre-releases)
// is "complex".
type VersionKind int

const (
	VersionIdeal VersionKind = iota
	VersionGeneral
	VersionComplex
)

// GameVersion is a parsed Minecraft version. It is transient: only the
// loader resolvers use it to evaluate cutoff comparisons, it is never
// persisted.
type GameVersion struct {
	raw  string
	kind VersionKind
	nums []int
	ord  *goversion.Version
}

// ParseGameVersion parses a Minecraft version string. Any non-empty string
// parses; unrecognizable shapes come back as VersionComplex.
func ParseGameVersion(s string) (GameVersion, error) {
	if s == "" {
		return GameVersion{}, ErrInvalidGameVersion
	}

	v := GameVersion{raw: s}

	chunks := strings.Split(s, ".")
	nums := make([]int, 0, len(chunks))
	numeric := true
	for _, c := range chunks {
		n, err := strconv.Atoi(c)
		if err != nil || c == "" {
			numeric = false
			break
		}
		nums = append(nums, n)
	}

	switch {
	case numeric && len(nums) == 3:
		v.kind = VersionIdeal
		v.nums = nums
	case numeric:
		v.kind = VersionGeneral
		v.nums = nums
	default:
		v.kind = VersionComplex
		v.nums = leadingNumbers(s)
	}

	if ord, err := goversion.NewVersion(orderable(s)); err == nil {
		v.ord = ord
	}

	return v, nil
}

// MustGameVersion parses s and panics on failure. For static cutoffs.
func MustGameVersion(s string) GameVersion {
	v, err := ParseGameVersion(s)
	if err != nil {
		panic(err)
	}
	return v
}

func (v GameVersion) String() string { return v.raw }

// Kind returns the structural classification of the version.
func (v GameVersion) Kind() VersionKind { return v.kind }

// Minor returns the second numeric component, if one exists.
func (v GameVersion) Minor() (int, bool) {
	if len(v.nums) < 2 {
		return 0, false
	}
	return v.nums[1], true
}

// Patch returns the third numeric component, if one exists.
func (v GameVersion) Patch() (int, bool) {
	if len(v.nums) < 3 {
		return 0, false
	}
	return v.nums[2], true
}

// Compare orders two versions. Versions whose ordering cannot be determined
// numerically fall back to a raw string comparison.
func (v GameVersion) Compare(o GameVersion) int {
	if v.ord != nil && o.ord != nil {
		return v.ord.Compare(o.ord)
	}
	return strings.Compare(v.raw, o.raw)
}

// Before reports whether v orders strictly before o.
func (v GameVersion) Before(o GameVersion) bool { return v.Compare(o) < 0 }

// CompareBuilds orders two loader build strings such as "12.16.1.1938".
// Build strings that do not parse are reported as an error so cutoff
// comparisons never silently misorder.
func CompareBuilds(a, b string) (int, error) {
	av, err := goversion.NewVersion(a)
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, "unparseable loader build"), "build", a)
	}
	bv, err := goversion.NewVersion(b)
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, "unparseable loader build"), "build", b)
	}
	return av.Compare(bv), nil
}

// orderable strips a version string down to the longest numeric dotted
// prefix so snapshot suffixes do not defeat ordering entirely.
func orderable(s string) string {
	end := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= '0' && c <= '9' {
			end = i + 1
			continue
		}
		if c == '.' && end == i && i > 0 {
			continue
		}
		break
	}
	if end == 0 {
		return s
	}
	return strings.TrimSuffix(s[:end], ".")
}

func leadingNumbers(s string) []int {
	prefix := orderable(s)
	var nums []int
	for _, c := range strings.Split(prefix, ".") {
		n, err := strconv.Atoi(c)
		if err != nil {
			break
		}
		nums = append(nums, n)
	}
	return nums
}
