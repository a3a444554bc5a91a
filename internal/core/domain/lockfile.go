package domain

// Lockfile is the persisted source of truth for what is installed in a
// server directory: the loader configuration and the ordered list of
// installed artifacts.
type Lockfile struct {
	Loader    LoaderConfig `yaml:"loader"`
	Artifacts []Artifact   `yaml:"artifacts"`
}

// IsInitialized reports whether the lockfile describes a usable server: a
// concrete loader has been chosen and the Minecraft version parses as a
// plain, non-complex version.
func (l *Lockfile) IsInitialized() bool {
	if l.Loader.Name == LoaderNone || l.Loader.Name == "" {
		return false
	}

	v, err := ParseGameVersion(l.Loader.GameVersion)
	if err != nil {
		return false
	}
	return v.Kind() != VersionComplex
}

// Get returns the installed artifact matching id by canonical id or slug.
func (l *Lockfile) Get(id string) (*Artifact, bool) {
	for i := range l.Artifacts {
		if l.Artifacts[i].Matches(id) {
			return &l.Artifacts[i], true
		}
	}
	return nil, false
}
