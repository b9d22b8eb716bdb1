package batch

import (
	"context"
	"fmt"

	"github.com/precomp/precomp/internal/core/domain"
	"github.com/precomp/precomp/internal/core/ports"
)

// Orchestrator drives the batch compile for a set of test contexts: it groups
// them by compile settings, decides staleness per group, conditionally runs
// the compiler, and rewires each referenced file to its generated output.
//
// Groups are processed strictly sequentially, in discovery order. The only
// state written is each referenced file's GeneratedFilePath, exactly once, by
// the group owning its settings.
type Orchestrator struct {
	resolver  *PropertyResolver
	mapper    *OutputMapper
	evaluator *StalenessEvaluator
	invoker   *Invoker

	fs     ports.FileSystem
	logger ports.Logger
	tracer ports.Tracer
}

// NewOrchestrator creates a new Orchestrator.
func NewOrchestrator(
	fs ports.FileSystem,
	runner ports.BatchCompileRunner,
	logger ports.Logger,
	tracer ports.Tracer,
) *Orchestrator {
	return &Orchestrator{
		resolver:  NewPropertyResolver(fs),
		mapper:    NewOutputMapper(logger),
		evaluator: NewStalenessEvaluator(),
		invoker:   NewInvoker(runner, logger),
		fs:        fs,
		logger:    logger,
		tracer:    tracer,
	}
}

// settingsGroup is the set of test contexts sharing one settings file.
type settingsGroup struct {
	settings *domain.CompileSettings
	contexts []*domain.TestContext
}

// Compile processes every settings group in turn. A compilation failure
// aborts the whole batch; contexts of the remaining groups are left
// untouched.
func (o *Orchestrator) Compile(ctx context.Context, contexts []*domain.TestContext) error {
	for _, group := range o.groupBySettings(contexts) {
		if err := o.compileGroup(ctx, group); err != nil {
			return err
		}
	}
	return nil
}

// groupBySettings buckets contexts by their settings group key, preserving
// discovery order. Contexts without compile settings have no compile step and
// are skipped entirely.
func (o *Orchestrator) groupBySettings(contexts []*domain.TestContext) []*settingsGroup {
	var groups []*settingsGroup
	index := make(map[domain.GroupKey]*settingsGroup)

	for _, tc := range contexts {
		if tc.Settings == nil {
			o.logger.Info(fmt.Sprintf("no compile settings for %s, skipping", tc.TestFile))
			continue
		}

		key := tc.Settings.GroupKey()
		group, ok := index[key]
		if !ok {
			group = &settingsGroup{settings: tc.Settings}
			index[key] = group
			groups = append(groups, group)
		}
		group.contexts = append(group.contexts, tc)
	}

	return groups
}

func (o *Orchestrator) compileGroup(ctx context.Context, group *settingsGroup) error {
	settings := group.settings

	ctx, span := o.tracer.Start(ctx, "compile "+settings.SettingsFile)
	defer span.End()

	infos, outputMap := o.gatherCompileInfos(group)
	_, _ = fmt.Fprintf(span, "%d tracked sources, %d mapped outputs\n", len(infos), outputMap.Len())

	if o.evaluator.NeedsCompile(settings, infos) {
		if err := o.invoker.Invoke(ctx, settings); err != nil {
			span.RecordError(err)
			return err
		}
	} else {
		o.logger.Info(fmt.Sprintf("sources for %s are up to date, skipping batch compile", settings.SettingsFile))
		span.Skipped()
	}

	// Link generated outputs even when the compile was skipped, so outputs
	// produced by earlier runs are still picked up.
	o.linkGeneratedOutputs(group, outputMap)
	return nil
}

// gatherCompileInfos resolves properties for the de-duplicated tracked
// sources of a group and builds the source-to-output map. The map only holds
// entries for output-expecting sources whose path could be derived; it is
// complete before the staleness decision and never modified afterwards.
func (o *Orchestrator) gatherCompileInfos(group *settingsGroup) ([]domain.SourceCompileInfo, *domain.PathMap) {
	settings := group.settings
	seen := make(map[string]bool)
	var infos []domain.SourceCompileInfo
	outputMap := domain.NewPathMap()

	for _, tc := range group.contexts {
		for _, ref := range tc.ReferencedFiles {
			if !settings.Matches(ref.Path) {
				continue
			}
			key := domain.NormalizePath(ref.Path)
			if seen[key] {
				continue
			}
			seen[key] = true

			info := domain.NewSourceCompileInfo(o.resolver.Resolve(ref.Path))

			outputPath := ""
			if !settings.ExpectsOutput(ref.Path) {
				info.HasOutput = false
			} else if out, ok := o.mapper.MapOutputPath(ref.Path, settings); ok {
				outputPath = out
				outputMap.Set(ref.Path, out)
			}

			info.Output = o.resolver.Resolve(outputPath)
			infos = append(infos, info)
		}
	}

	return infos, outputMap
}

// linkGeneratedOutputs re-checks each mapped output on disk and rewires the
// referenced files whose output is present. Files whose output is missing, or
// that never made it into the map, keep an unset generated path.
func (o *Orchestrator) linkGeneratedOutputs(group *settingsGroup, outputMap *domain.PathMap) {
	for _, tc := range group.contexts {
		for _, ref := range tc.ReferencedFiles {
			out, ok := outputMap.Get(ref.Path)
			if !ok {
				continue
			}

			if o.fs.Exists(out) {
				ref.GeneratedFilePath = out
				o.logger.Info(fmt.Sprintf("found generated path %s for %s", out, ref.Path))
			} else {
				o.logger.Warn(fmt.Sprintf("missing generated path %s for %s", out, ref.Path))
			}
		}
	}
}
