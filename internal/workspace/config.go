package workspace

// Config is a chained builder controlling which passes the default
// pipeline registers and whether architecture-dependent passes run. It
// only records these choices for a caller that assembles a Pipeline;
// neither Workspace nor the cmd/loopnestc driver reads it (the driver
// registers its passes directly).
type Config struct {
	enabledPasses map[string]bool
	includeArch   bool
}

// NewConfig returns a Config with every pass disabled and no
// architecture pass included; call WithFeatureGate/WithArch to enable
// what's needed.
func NewConfig() Config {
	return Config{enabledPasses: make(map[string]bool)}
}

// WithFeatureGate enables or disables the named pass in the pipeline the
// caller assembles from this Config.
func (c Config) WithFeatureGate(passName string, enabled bool) Config {
	next := make(map[string]bool, len(c.enabledPasses)+1)
	for k, v := range c.enabledPasses {
		next[k] = v
	}
	next[passName] = enabled
	c.enabledPasses = next
	return c
}

// WithArch enables ArchInfoBuilder; meaningful only when the Workspace
// being built actually carries an Arch.
func (c Config) WithArch(include bool) Config {
	c.includeArch = include
	return c
}

// PassEnabled reports whether passName was enabled via WithFeatureGate.
func (c Config) PassEnabled(passName string) bool {
	return c.enabledPasses[passName]
}

// IncludeArch reports whether ArchInfoBuilder should be registered.
func (c Config) IncludeArch() bool {
	return c.includeArch
}
