package compressor

import (
	"context"

	"klafsa/internal/texture"
)

// kramEncoders maps each supported format to the kram encoder that handles
// it.
var kramEncoders = map[texture.CompressionFormat]string{
	texture.FormatAstc4x4:  "astcenc",
	texture.FormatAstc5x5:  "astcenc",
	texture.FormatAstc6x6:  "astcenc",
	texture.FormatAstc8x8:  "astcenc",
	texture.FormatBc1:      "bcenc",
	texture.FormatBc3:      "bcenc",
	texture.FormatBc4:      "bcenc",
	texture.FormatBc5:      "bcenc",
	texture.FormatBc7:      "bcenc",
	texture.FormatEtc2r:    "etcenc",
	texture.FormatEtc2rg:   "etcenc",
	texture.FormatEtc2rgb:  "etcenc",
	texture.FormatEtc2rgba: "etcenc",
}

// Kram wraps the kram encoder. It only writes KTX2.
type Kram struct {
	path string
}

// NewKram locates the kram executable.
func NewKram(look LookPath) (*Kram, error) {
	path, err := locate(texture.BackendKram, look)
	if err != nil {
		return nil, err
	}
	return &Kram{path: path}, nil
}

func (k *Kram) Backend() texture.Backend { return texture.BackendKram }

func (k *Kram) Supports(format texture.CompressionFormat, container texture.ContainerFormat) bool {
	return texture.BackendKram.Supports(format, container)
}

func (k *Kram) Compress(ctx context.Context, job Job) error {
	if err := checkSupport(k, job); err != nil {
		return err
	}
	return run(ctx, job.WorkingDir, k.path, KramArgs(job))
}

// KramArgs assembles the kram command line for job. job.Format must be one
// kram supports.
func KramArgs(job Job) []string {
	args := []string{
		"encode",
		"-input", job.Source,
		"-output", job.Dest,
		"-mipmin", "1",
		"-zstd", "0",
		"-format", job.Format.String(),
		"-encoder", kramEncoders[job.Format],
	}
	switch job.Usage {
	case texture.UsageSrgb:
		args = append(args, "-srgb")
	case texture.UsageNormalMap:
		args = append(args, "-normal")
		// Two-channel normals go to RRRG so ASTC's luminance-alpha mode applies.
		if job.Format.IsAstcBlock() {
			args = append(args, "-swizzle", "rrrg")
		}
	}
	return args
}
