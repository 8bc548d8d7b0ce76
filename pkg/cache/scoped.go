package cache

// ScopedKeyer prefixes every key of an inner Keyer. The API server uses one
// scope per theme so entries generated under different themes never mix.
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "theme:dungeon:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer wraps inner, or a DefaultKeyer when inner is nil.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

// TileMapKey returns the inner key with the scope prefix.
func (k *ScopedKeyer) TileMapKey(graphHash string, opts TileMapKeyOpts) string {
	return k.prefix + k.inner.TileMapKey(graphHash, opts)
}

// ArtifactKey returns the inner key with the scope prefix.
func (k *ScopedKeyer) ArtifactKey(tilemapHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(tilemapHash, opts)
}
