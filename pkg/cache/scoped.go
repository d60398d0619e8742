package cache

// ScopedKeyer prefixes every key from an inner Keyer, so renderings from
// different catalogs sharing one backend never collide.
//
//	k := NewScopedKeyer(NewDefaultKeyer(), "cli2:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer wraps inner, or the default keyer when inner is nil.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

func (k *ScopedKeyer) ArtifactKey(name string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(name, opts)
}

func (k *ScopedKeyer) CatalogKey(source []byte) string {
	return k.prefix + k.inner.CatalogKey(source)
}
