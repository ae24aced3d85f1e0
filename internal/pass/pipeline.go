package pass

import (
	"loopnest/internal/errors"
	"loopnest/internal/workspace"
)

// Pipeline is an ordered, feature-gated sequence of passes (spec.md
// §4.6). Register appends; Run executes registration order once,
// checking each pass's required features against the workspace's
// currently available set before running it.
type Pipeline struct {
	passes []Pass
	logger Logger
}

// NewPipeline returns an empty Pipeline logging to a ColorLogger.
func NewPipeline() *Pipeline {
	return &Pipeline{logger: NewColorLogger()}
}

// WithLogger overrides the pipeline's logger, returning p for chaining.
func (p *Pipeline) WithLogger(l Logger) *Pipeline {
	if l == nil {
		l = noopLogger{}
	}
	p.logger = l
	return p
}

// Register appends pass to the end of the pipeline.
func (p *Pipeline) Register(pass Pass) *Pipeline {
	p.passes = append(p.passes, pass)
	return p
}

// Run executes every registered pass in order against ws. It fails fast
// with *errors.MissingFeatureError on the first pass whose required
// features are not yet available, or with whatever error the pass
// itself returns; in both cases ws retains whatever properties earlier
// passes already attached.
func (p *Pipeline) Run(ws *workspace.Workspace) error {
	for _, pass := range p.passes {
		info := pass.Info()

		for _, feature := range info.RequiredFeatures {
			if !ws.HasFeature(feature) {
				err := &errors.MissingFeatureError{Pass: info.Name, Feature: feature}
				p.logger.PassFailed(info.Name, err)
				return err
			}
		}

		p.logger.PassStarted(info.Name)
		if err := run(pass, ws); err != nil {
			p.logger.PassFailed(info.Name, err)
			return err
		}

		for _, feature := range info.ProducedFeatures {
			ws.AddFeature(feature)
		}
		p.logger.PassSucceeded(info.Name, info.ProducedFeatures)
	}
	return nil
}
