package options

import (
	"fmt"
	"strings"
)

// Diagnostic messages passed to a UsageFunc.
const (
	MsgMissingSceneFile = "missing scene file argument"
	MsgMissingFilename  = "missing filename argument"
	MsgBadDimensions    = "bad dimensions value"
	MsgBadBackground    = "bad background color value"
	MsgBadWarmup        = "bad warmup frame count value"
	MsgBadDebugPixel    = "bad debug pixel value"
)

// UsageFunc receives one call per problem found while parsing, in the order
// the problems are found. It may terminate the process; Parse itself never
// does.
type UsageFunc func(program, message string)

// parser is the state of a single Parse call.
type parser struct {
	opts  Options
	usage UsageFunc

	// accepted holds every --debug pixel that fitted the image size in force
	// when it was read, oldest first. A later --dim can still shrink the
	// image, so finish checks the last one again.
	accepted []Int2
}

// Parse builds Options from argv, where argv[0] is the program name.
//
// Flags and the scene file may appear in any order. Problems are reported
// through usage and parsing carries on; the returned Options holds every
// value that could be applied.
func Parse(argv []string, usage UsageFunc) Options {
	program := ""
	if len(argv) > 0 {
		program = argv[0]
		argv = argv[1:]
	}
	p := &parser{opts: Default(program), usage: usage}

	for i := 0; i < len(argv); i++ {
		arg := argv[i]
		name, value, hasValue := strings.Cut(arg, "=")
		def, ok := flagIndex[name]
		if !ok {
			p.positional(arg)
			continue
		}

		switch def.Kind {
		case BoolFlag:
			if hasValue {
				p.positional(arg)
				continue
			}
			def.apply(p, "")
		case InlineFlag:
			def.apply(p, value)
		case NextFlag:
			if !hasValue {
				if i+1 == len(argv) {
					p.report(MsgMissingFilename)
					continue
				}
				i++
				value = argv[i]
			}
			def.apply(p, value)
		}
	}

	p.finish()
	return p.opts
}

func (p *parser) report(message string) {
	if p.usage != nil {
		p.usage(p.opts.Program, message)
	}
}

func (p *parser) positional(arg string) {
	if p.opts.SceneFile != "" {
		p.report(fmt.Sprintf("unexpected argument %q", arg))
		return
	}
	p.opts.SceneFile = arg
}

func (p *parser) dimensions(value string) {
	width, height, ok := ParseDimensions(value)
	if !ok {
		p.report(MsgBadDimensions)
		return
	}
	p.opts.Width, p.opts.Height = width, height
}

func (p *parser) background(value string) {
	c, ok := ParseColor(value)
	if !ok {
		p.report(MsgBadBackground)
		return
	}
	p.opts.Background = c
}

func (p *parser) warmup(value string) {
	n, ok := ParseCount(value)
	if !ok {
		p.report(MsgBadWarmup)
		return
	}
	p.opts.WarmupFrames = n
}

func (p *parser) debugPixel(value string) {
	pixel, ok := ParsePixel(value)
	if !ok {
		p.report(MsgBadDebugPixel)
		return
	}
	if !pixel.Contains(p.opts.Width, p.opts.Height) {
		p.report(MsgBadDebugPixel)
		return
	}
	p.opts.DebugPixel = pixel
	p.opts.Debug = true
	p.accepted = append(p.accepted, pixel)
}

// restorePixel falls back to the newest earlier --debug pixel that fits the
// final image, or to no debug pixel at all.
func (p *parser) restorePixel() {
	p.opts.DebugPixel = Int2{}
	p.opts.Debug = false
	for i := len(p.accepted) - 2; i >= 0; i-- {
		if p.accepted[i].Contains(p.opts.Width, p.opts.Height) {
			p.opts.DebugPixel = p.accepted[i]
			p.opts.Debug = true
			return
		}
	}
}

// finish runs the checks that need the whole command line.
func (p *parser) finish() {
	if p.opts.Debug && !p.opts.DebugPixel.Contains(p.opts.Width, p.opts.Height) {
		p.report(MsgBadDebugPixel)
		p.restorePixel()
	}
	if p.opts.SceneFile == "" {
		p.report(MsgMissingSceneFile)
	}
}
