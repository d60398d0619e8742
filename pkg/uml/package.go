package uml

// Package is a folder-shaped container. Its size is given explicitly rather
// than computed from content, and it draws behind whatever the target
// already holds.
type Package struct {
	name      string
	Width     float64
	Height    float64
	NameWidth float64
}

// NewPackage creates a package symbol of the given outer size.
func NewPackage(name string, width, height float64) *Package {
	return &Package{name: name, Width: width, Height: height, NameWidth: DefaultNameWidth}
}

func (p *Package) Name() string { return p.name }
func (p *Package) Kind() Kind   { return KindPackage }

// Size reports the explicit package size.
func (p *Package) Size(Config) (float64, float64) {
	return p.Width, p.Height
}

// TabHeight is the height of the name tab.
func (p *Package) TabHeight(cfg Config) float64 {
	cfg = cfg.withDefaults()
	return cfg.TextHeight + cfg.Padding
}

// Insert draws the name tab, its title, the outer body and the inset inner
// rectangle, all placed before t's first existing child so previously drawn
// members stay on top.
func (p *Package) Insert(t Target, cfg Config) {
	cfg = cfg.withDefaults()
	pad, th := cfg.Padding, cfg.TextHeight

	addClass(t, "package")
	first := t.FirstChild()

	t.InsertBefore(rect(0, 0, p.NameWidth, th+pad, ClassOutline), first)
	t.InsertBefore(text(p.NameWidth/2, th+pad/2, ClassTitle, p.name), first)
	t.InsertBefore(rect(0, th+pad, p.Width, p.Height-th-pad, ClassOutline), first)
	t.InsertBefore(rect(pad, th+pad*2, p.Width-pad*2, p.Height-th-pad*3, ClassInner), first)
}
