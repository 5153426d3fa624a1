package options

// Default image dimensions used when --dim is not given.
const (
	DefaultWidth  = 768
	DefaultHeight = 512
)

// Vec3 is a three component float vector, used for colors.
type Vec3 struct {
	X, Y, Z float32
}

// Int2 is a two component integer vector, used for pixel coordinates.
type Int2 struct {
	X, Y int
}

// Options holds everything the viewer reads from its command line.
//
// It is a plain value: two results of parsing the same arguments compare
// equal with ==.
type Options struct {
	Program   string // argv[0], exactly as given.
	SceneFile string // The scene to load. Required.
	OutFile   string // Image to write; empty means interactive display.

	Width  int
	Height int

	Background Vec3

	OneShotGeometry bool
	OneShotMaterial bool
	OneShotDebug    bool

	VerboseProxyGeometryResolution bool
	VerboseProxyMaterialResolution bool
	VerboseSceneDecomposition      bool
	VerboseTextureCreation         bool

	SortProxies bool
	Sync        bool
	FaceForward bool

	WarmupFrames int

	Debug      bool
	DebugPixel Int2
}

// Default returns the options used before any argument is applied.
func Default(program string) Options {
	return Options{
		Program: program,
		Width:   DefaultWidth,
		Height:  DefaultHeight,
	}
}

// Verbose reports whether any of the verbosity switches is on.
func (o Options) Verbose() bool {
	return o.VerboseProxyGeometryResolution ||
		o.VerboseProxyMaterialResolution ||
		o.VerboseSceneDecomposition ||
		o.VerboseTextureCreation
}

// Interactive reports whether the result is shown in a window rather than
// written to OutFile.
func (o Options) Interactive() bool {
	return o.OutFile == ""
}
