package options

// FlagKind says where a flag takes its value from.
type FlagKind int

const (
	// BoolFlag takes no value.
	BoolFlag FlagKind = iota
	// InlineFlag takes its value after '=' in the same token.
	InlineFlag
	// NextFlag takes its value from the following token, or after '='.
	NextFlag
)

// Flag describes one recognized option.
type Flag struct {
	Name      string // Long name, without the leading "--".
	Shorthand string // Single letter alias, without the leading "-".
	Kind      FlagKind
	Usage     string // Help text; a back-quoted word names the value.
	Separator string // Joins the parts of a compound value, as in "WxH".
}

// flagDef binds a Flag to the code that applies it.
type flagDef struct {
	Flag
	apply func(p *parser, value string)
}

var flagDefs = []flagDef{
	{Flag{Name: "file", Shorthand: "f", Kind: NextFlag, Usage: "Write the rendered image to `FILE` instead of opening a window."},
		func(p *parser, v string) { p.opts.OutFile = v }},
	{Flag{Name: "dim", Kind: InlineFlag, Separator: "x", Usage: "Image dimensions in pixels, as `WxH`."},
		(*parser).dimensions},
	{Flag{Name: "bg", Kind: InlineFlag, Separator: "/", Usage: "Background color, as `R/G/B`."},
		(*parser).background},
	{Flag{Name: "warmup", Kind: InlineFlag, Usage: "Render `N` frames before writing the output file."},
		(*parser).warmup},
	{Flag{Name: "debug", Kind: InlineFlag, Separator: "/", Usage: "Enable debug output for the pixel at `X/Y`."},
		(*parser).debugPixel},
	{Flag{Name: "oneshot-geometry", Usage: "Resolve one proxy geometry per keypress."},
		func(p *parser, _ string) { p.opts.OneShotGeometry = true }},
	{Flag{Name: "oneshot-material", Usage: "Resolve one proxy material per keypress."},
		func(p *parser, _ string) { p.opts.OneShotMaterial = true }},
	{Flag{Name: "oneshot-debug", Usage: "Emit debug output for a single frame per keypress."},
		func(p *parser, _ string) { p.opts.OneShotDebug = true }},
	{Flag{Name: "proxy-resolution", Usage: "Log proxy geometry and material resolution."},
		func(p *parser, _ string) {
			p.opts.VerboseProxyGeometryResolution = true
			p.opts.VerboseProxyMaterialResolution = true
		}},
	{Flag{Name: "proxy-geometry", Usage: "Log proxy geometry resolution."},
		func(p *parser, _ string) { p.opts.VerboseProxyGeometryResolution = true }},
	{Flag{Name: "proxy-material", Usage: "Log proxy material resolution."},
		func(p *parser, _ string) { p.opts.VerboseProxyMaterialResolution = true }},
	{Flag{Name: "scene-decomposition", Usage: "Log scene decomposition."},
		func(p *parser, _ string) { p.opts.VerboseSceneDecomposition = true }},
	{Flag{Name: "texture-creation", Usage: "Log texture creation."},
		func(p *parser, _ string) { p.opts.VerboseTextureCreation = true }},
	{Flag{Name: "verbose", Usage: "Enable all of the logging options above."},
		func(p *parser, _ string) {
			p.opts.VerboseProxyGeometryResolution = true
			p.opts.VerboseProxyMaterialResolution = true
			p.opts.VerboseSceneDecomposition = true
			p.opts.VerboseTextureCreation = true
		}},
	{Flag{Name: "sort-proxies", Usage: "Sort proxies by camera distance before resolving them."},
		func(p *parser, _ string) { p.opts.SortProxies = true }},
	{Flag{Name: "sync", Usage: "Synchronize after each launch."},
		func(p *parser, _ string) { p.opts.Sync = true }},
	{Flag{Name: "face-forward", Usage: "Flip shading normals to face the incoming ray."},
		func(p *parser, _ string) { p.opts.FaceForward = true }},
}

// flagIndex maps "--name" and "-s" spellings to their definition.
var flagIndex = func() map[string]*flagDef {
	index := make(map[string]*flagDef, len(flagDefs)+1)
	for i := range flagDefs {
		def := &flagDefs[i]
		index["--"+def.Name] = def
		if def.Shorthand != "" {
			index["-"+def.Shorthand] = def
		}
	}
	return index
}()

// Flags returns the recognized options in usage order.
func Flags() []Flag {
	out := make([]Flag, len(flagDefs))
	for i, def := range flagDefs {
		out[i] = def.Flag
	}
	return out
}

// Lookup finds a flag by its long name, without dashes.
func Lookup(name string) (Flag, bool) {
	def, ok := flagIndex["--"+name]
	if !ok {
		return Flag{}, false
	}
	return def.Flag, true
}

// LookupArg finds the flag spelled exactly as arg, such as "-f" or "--file".
// An inline "=value" suffix does not match.
func LookupArg(arg string) (Flag, bool) {
	def, ok := flagIndex[arg]
	if !ok {
		return Flag{}, false
	}
	return def.Flag, true
}
