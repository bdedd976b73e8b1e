package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// ErrStage indicates a rewrite stage failed to produce a buffer.
var ErrStage = errors.New("rewrite stage failed")

// Stage is one rewrite pass over the complete document buffer.
type Stage struct {
	Name  string
	Apply func(string) (string, error)
}

// pure adapts an infallible rewrite into a Stage.
func pure(name string, fn func(string) string) Stage {
	return Stage{
		Name:  name,
		Apply: func(s string) (string, error) { return fn(s), nil },
	}
}

// Pipeline folds a buffer through an ordered list of stages.
// Stages run strictly in sequence; each receives the complete output of the previous one.
type Pipeline struct {
	stages []Stage
	logger *slog.Logger
}

// New creates a Pipeline running stages in the given order.
func New(stages ...Stage) *Pipeline {
	return &Pipeline{stages: stages}
}

// WithLogger returns the pipeline configured to log per-stage timings at debug level.
func (p *Pipeline) WithLogger(logger *slog.Logger) *Pipeline {
	p.logger = logger
	return p
}

// Names returns the stage names in execution order.
func (p *Pipeline) Names() []string {
	names := make([]string, len(p.stages))
	for i, s := range p.stages {
		names[i] = s.Name
	}
	return names
}

// Run applies every stage in order and returns the final buffer.
// The context is checked between stages; a stage is never interrupted midway.
func (p *Pipeline) Run(ctx context.Context, text string) (string, error) {
	for _, stage := range p.stages {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		start := time.Now()
		out, err := stage.Apply(text)
		if err != nil {
			return "", fmt.Errorf("%w: %s: %v", ErrStage, stage.Name, err)
		}

		if p.logger != nil {
			p.logger.Debug("stage done",
				slog.String("stage", stage.Name),
				slog.Duration("took", time.Since(start)),
				slog.Int("bytes", len(out)),
			)
		}
		text = out
	}
	return text, nil
}

// taggingStages lists every rewrite that produces the intermediate tagged form.
// The order encodes the dependencies between constructs:
//   - escaping runs first so later stages can emit entities unharmed
//   - the boneyard is removed before notes are recognized
//   - escaped asterisks are neutralized before emphasis
//   - block constructs are recognized before the action catch-all
//   - dialogue interiors are tagged character, paren, then talk
//   - emphasis runs triple, double, single asterisk, then underscore
func taggingStages() []Stage {
	stages := []Stage{pure("normalize-text", normalizeText)}
	stages = append(stages, preEscapeStages()...)
	return append(stages,
		pure("forced-action-to", forceActionTo),
		pure("forced-action-caps", forceActionCaps),
		pure("boneyard", removeBoneyard),
		pure("bracket-notes", markBracketNotes),
		pure("centered", markCentered),
		pure("forced-transitions", markForcedTransitions),
		forcedSlugs,
		pure("escaped-asterisks", escapeAsterisks),
		pure("sections", markSections),
		pure("synopses", markSynopses),
		pure("line-comments", markLineComments),
		pure("left-transitions", markLeftTransitions),
		pure("right-transitions", markRightTransitions),
		pure("dialogue-blocks", markDialogueBlocks),
		pure("scene-headings", markSceneHeadings),
		pure("goldman-sluglines", markGoldmanSluglines),
		pure("characters", markCharacters),
		pure("parentheticals", markParentheticals),
		pure("talk", markTalk),
		pure("action", markAction),
		boldItalic,
		bold,
		italic,
		underline,
		pure("merge-action", mergeAction),
		pure("action-tabs", expandActionTabs),
		pure("merge-talk", mergeTalk),
	)
}

// Default returns the complete pipeline: every tagging stage followed by the
// mapping of intermediate tags onto the final markup.
func Default() *Pipeline {
	return New(append(taggingStages(), pure("markup", MapTags))...)
}

// Tagging returns the pipeline without the final mapping stage.
// Its output is the intermediate tagged form (<slug>, <dialogue>, <talk>, ...).
func Tagging() *Pipeline {
	return New(taggingStages()...)
}
