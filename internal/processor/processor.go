// Package processor runs the texture compression pipeline over a glTF
// document: classify textures, resolve the format plan, compress every
// texture for every target, and write one rewritten document per target.
package processor

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"

	"klafsa/internal/compressor"
	"klafsa/internal/document"
	"klafsa/internal/planner"
	"klafsa/internal/texture"
	"klafsa/pkg/imgutil"
)

// Run processes the document at opts.DocumentPath. Per-texture failures are
// logged and recorded in the summary; the returned error is non-nil only for
// startup failures (unreadable document, missing backend) and for output
// documents that could not be written.
func Run(ctx context.Context, opts Options) (Summary, error) {
	summary := Summary{}
	log := opts.Logger
	if log == nil {
		log = nopLogger{}
	}

	doc, err := document.Load(opts.DocumentPath)
	if err != nil {
		return summary, fmt.Errorf("load %s: %w", opts.DocumentPath, err)
	}

	workingDir, err := resolveWorkingDir(opts.DocumentPath)
	if err != nil {
		return summary, fmt.Errorf("resolve working directory: %w", err)
	}

	classes := Classify(doc)

	plan, err := planner.Resolve(opts.Request)
	if err != nil {
		return summary, err
	}
	summary.Plan = plan

	reg := opts.Registry
	if reg == nil {
		reg = compressor.NewRegistry(compressor.DefaultFactory(nil))
	}
	if err := reg.Prepare(plan); err != nil {
		return summary, err
	}

	outputs := make([]*document.Document, len(plan))
	for i := range plan {
		clone, err := doc.Clone()
		if err != nil {
			return summary, fmt.Errorf("clone document: %w", err)
		}
		outputs[i] = clone
	}

	summary.Total = len(doc.Textures) * len(plan)
	log.Info("Processing %d textures for %d target(s): %s", len(doc.Textures), len(plan), plan)

	r := &run{
		ctx:        ctx,
		log:        log,
		progress:   opts.Progress,
		registry:   reg,
		plan:       plan,
		outputs:    outputs,
		workingDir: workingDir,
		summary:    &summary,
		imageUsage: make(map[int]texture.UsageClass),
	}
	for i := range doc.Textures {
		r.processTexture(doc, i, classes[i])
	}

	var writeErrs []error
	for i, target := range plan {
		dst := OutputDocumentPath(opts.DocumentPath, target.Format, target.Container)
		if err := outputs[i].Save(dst); err != nil {
			log.Error("Failed to write glTF file %s: %v", dst, err)
			writeErrs = append(writeErrs, fmt.Errorf("write %s: %w", dst, err))
			continue
		}
		summary.Documents = append(summary.Documents, dst)
		log.Success("Wrote new glTF file at: %s", dst)
	}

	if err := ctx.Err(); err != nil {
		writeErrs = append(writeErrs, err)
	}
	return summary, errors.Join(writeErrs...)
}

func resolveWorkingDir(docPath string) (string, error) {
	abs, err := filepath.Abs(docPath)
	if err != nil {
		return os.Getwd()
	}
	return filepath.Dir(abs), nil
}

// run carries the state shared by every texture/target pair in one Run.
type run struct {
	ctx        context.Context
	log        Logger
	progress   ProgressFunc
	registry   *compressor.Registry
	plan       planner.FormatPlan
	outputs    []*document.Document
	workingDir string
	summary    *Summary
	imageUsage map[int]texture.UsageClass
}

func (r *run) processTexture(doc *document.Document, texIdx int, usage texture.UsageClass) {
	imgIdx, ok := doc.ImageForTexture(texIdx)
	if !ok {
		r.log.Warn("Texture %d has no image source", texIdx)
		r.finishAll(texIdx, usage, fmt.Sprintf("texture %d", texIdx), OutcomeSkippedUnsupported)
		return
	}
	img := doc.Images[imgIdx]

	if !img.IsExternal() {
		r.log.Warn("Cannot process embedded image %d (mime-type: %q)", imgIdx, img.MimeType)
		r.finishAll(texIdx, usage, fmt.Sprintf("image %d", imgIdx), OutcomeSkippedView)
		return
	}

	label := path.Base(img.URI)
	kind := imgutil.FromMimeOrExtension(img.MimeType, img.URI)
	if kind == imgutil.KindUnknown {
		r.log.Warn("Unsupported image format: %s (mime-type: %q)", img.URI, img.MimeType)
		r.finishAll(texIdx, usage, label, OutcomeSkippedUnsupported)
		return
	}

	r.checkSharedImage(imgIdx, texIdx, usage)

	src := uriToFile(img.URI)
	r.inspectSource(r.resolve(src), kind)
	r.log.Debug("Texture %d: %s (%s, %s)", texIdx, img.URI, kind, usage)

	for i, target := range r.plan {
		res := Result{
			Texture: texIdx,
			Target:  target,
			Usage:   usage,
			Source:  img.URI,
			Dest:    DestinationPath(img.URI, target.Format, target.Container),
		}

		if err := r.ctx.Err(); err != nil {
			res.Outcome, res.Err = OutcomeFailed, err
			r.finish(res, label)
			continue
		}

		res.Err = r.compress(res, src)
		if res.Err != nil {
			res.Outcome = OutcomeFailed
			r.log.Error("%s -> %s (%s): %v", res.Source, res.Dest, target, res.Err)
		} else {
			res.Outcome = OutcomeCompressed
			r.outputs[i].SetImageSource(imgIdx, res.Dest, target.Container.MimeType())
		}
		r.finish(res, label)
	}
}

func (r *run) compress(res Result, src string) error {
	dst := uriToFile(res.Dest)
	if err := os.MkdirAll(filepath.Dir(r.resolve(dst)), 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	c, ok := r.registry.Get(res.Target.Backend)
	if !ok {
		return fmt.Errorf("%w: %s not prepared", compressor.ErrBackendUnavailable, res.Target.Backend)
	}
	return c.Compress(r.ctx, compressor.Job{
		WorkingDir: r.workingDir,
		Source:     src,
		Dest:       dst,
		Usage:      res.Usage,
		Format:     res.Target.Format,
		Container:  res.Target.Container,
	})
}

// resolve returns the file a tool running in the working directory would
// open for p.
func (r *run) resolve(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(r.workingDir, p)
}

// checkSharedImage warns when textures with different usage classes point
// at one image. They share destination files, so the last texture wins.
func (r *run) checkSharedImage(imgIdx, texIdx int, usage texture.UsageClass) {
	prev, ok := r.imageUsage[imgIdx]
	if !ok {
		r.imageUsage[imgIdx] = usage
		return
	}
	if prev != usage {
		r.log.Warn("Image %d is used as %s and %s; texture %d's %s output replaces the other", imgIdx, prev, usage, texIdx, usage)
		r.imageUsage[imgIdx] = usage
	}
}

// inspectSource warns about source files whose content will not survive
// compression as the author expects. It never changes the outcome.
func (r *run) inspectSource(file string, declared imgutil.Kind) {
	sniffed, err := imgutil.SniffFile(file)
	if err != nil {
		r.log.Debug("Cannot read header of %s: %v", file, err)
		return
	}
	if sniffed != declared {
		r.log.Warn("%s is declared %s but its content looks like %s", file, declared, sniffed)
	}
	if sniffed != imgutil.KindJPEG {
		return
	}
	orientation, err := imgutil.Orientation(file)
	if err != nil {
		r.log.Debug("Cannot read EXIF of %s: %v", file, err)
		return
	}
	if orientation != imgutil.OrientationNormal {
		r.log.Warn("%s has EXIF orientation %d; compressed textures are stored unrotated", file, orientation)
	}
}

func (r *run) finishAll(texIdx int, usage texture.UsageClass, label string, outcome Outcome) {
	for _, target := range r.plan {
		r.finish(Result{Texture: texIdx, Target: target, Usage: usage, Outcome: outcome}, label)
	}
}

func (r *run) finish(res Result, label string) {
	r.summary.record(res)
	if r.progress != nil {
		r.progress(Progress{
			Completed: r.summary.Completed,
			Total:     r.summary.Total,
			Label:     label,
			Target:    res.Target,
			Outcome:   res.Outcome,
		})
	}
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})    {}
func (nopLogger) Success(string, ...interface{}) {}
func (nopLogger) Warn(string, ...interface{})    {}
func (nopLogger) Error(string, ...interface{})   {}
func (nopLogger) Debug(string, ...interface{})   {}
