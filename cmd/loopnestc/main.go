// Command loopnestc parses a loop nest, optionally applies a transform
// script and an architecture description, runs the default analysis
// pipeline, and prints the resulting workspace.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"

	"loopnest/internal/arch"
	"loopnest/internal/errors"
	"loopnest/internal/loopir"
	"loopnest/internal/pass"
	"loopnest/internal/passes"
	"loopnest/internal/transform"
	"loopnest/internal/workspace"
)

const (
	exitOK             = 0
	exitParseError     = 1
	exitTransformError = 2
	exitPipelineError  = 3
)

func main() {
	os.Exit(run())
}

func run() int {
	nestPath := flag.String("nest", "", "path to a loop nest YAML file (required)")
	transformPath := flag.String("transform", "", "path to a transform script (optional)")
	archPath := flag.String("arch", "", "path to an architecture YAML file (optional)")
	outPath := flag.String("out", "", "output path; defaults to stdout")
	flag.Parse()

	if *nestPath == "" {
		color.Red("loopnestc: -nest is required")
		flag.Usage()
		return exitParseError
	}

	nest, code := loadNest(*nestPath)
	if code != exitOK {
		return code
	}

	nest, code = applyTransform(*transformPath, nest)
	if code != exitOK {
		return code
	}

	ws := workspace.New(nest)

	var a *arch.Arch
	if *archPath != "" {
		var code int
		a, code = loadArch(*archPath)
		if code != exitOK {
			return code
		}
		ws = ws.WithArch(a)
	}

	if code := runPipeline(ws, a); code != exitOK {
		return code
	}

	output := ws.Render()
	if *outPath == "" {
		fmt.Print(output)
		return exitOK
	}
	if err := os.WriteFile(*outPath, []byte(output), 0o644); err != nil {
		color.Red("loopnestc: writing %s: %s", *outPath, err)
		return exitPipelineError
	}
	color.Green("✓ wrote %s", *outPath)
	return exitOK
}

func loadNest(path string) (*loopir.LoopNest, int) {
	data, err := os.ReadFile(path)
	if err != nil {
		color.Red("loopnestc: reading %s: %s", path, err)
		return nil, exitParseError
	}
	nest, err := loopir.ParseYAML(data)
	if err != nil {
		reportError(path, string(data), err)
		return nil, exitParseError
	}
	return nest, exitOK
}

func loadArch(path string) (*arch.Arch, int) {
	data, err := os.ReadFile(path)
	if err != nil {
		color.Red("loopnestc: reading %s: %s", path, err)
		return nil, exitParseError
	}
	a, err := arch.ParseYAML(data)
	if err != nil {
		reportError(path, string(data), err)
		return nil, exitParseError
	}
	return a, exitOK
}

func applyTransform(path string, nest *loopir.LoopNest) (*loopir.LoopNest, int) {
	if path == "" {
		return nest, exitOK
	}
	data, err := os.ReadFile(path)
	if err != nil {
		color.Red("loopnestc: reading %s: %s", path, err)
		return nil, exitParseError
	}
	script, err := transform.ParseScript(string(data))
	if err != nil {
		reportError(path, string(data), err)
		return nil, exitParseError
	}
	next, err := transform.ApplyAll(script, nest)
	if err != nil {
		color.Red("loopnestc: applying transform script: %s", err)
		return nil, exitTransformError
	}
	return next, exitOK
}

// runPipeline registers the reference analyses in dependency order:
// MemAccessAnalysis before FreeDimAnalysis (the latter requires
// accessed_dims), and ArchInfoBuilder only when an Arch was supplied.
func runPipeline(ws *workspace.Workspace, a *arch.Arch) int {
	p := pass.NewPipeline().
		Register(passes.MemAccessAnalysis{}).
		Register(passes.NewFreeDimAnalysis(ws.LoopNest.IterNames()))
	if a != nil {
		p = p.Register(passes.NewArchInfoBuilder(a))
	}
	if err := p.Run(ws); err != nil {
		color.Red("loopnestc: pipeline: %s", err)
		return exitPipelineError
	}
	return exitOK
}

func reportError(path, source string, err error) {
	r := errors.NewReporter(path, source)
	fmt.Fprint(os.Stderr, r.Format(err))
}
