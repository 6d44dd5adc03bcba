package compressor

import (
	"context"

	"klafsa/internal/texture"
)

// Toktx wraps the KTX-Software toktx tool. It only writes KTX2.
type Toktx struct {
	path string
}

// NewToktx locates the toktx executable.
func NewToktx(look LookPath) (*Toktx, error) {
	path, err := locate(texture.BackendToktx, look)
	if err != nil {
		return nil, err
	}
	return &Toktx{path: path}, nil
}

func (t *Toktx) Backend() texture.Backend { return texture.BackendToktx }

func (t *Toktx) Supports(format texture.CompressionFormat, container texture.ContainerFormat) bool {
	return texture.BackendToktx.Supports(format, container)
}

func (t *Toktx) Compress(ctx context.Context, job Job) error {
	if err := checkSupport(t, job); err != nil {
		return err
	}
	return run(ctx, job.WorkingDir, t.path, ToktxArgs(job))
}

// ToktxArgs assembles the toktx command line for job. The output file comes
// before the input, as toktx expects.
func ToktxArgs(job Job) []string {
	var args []string
	switch job.Usage {
	case texture.UsageSrgb:
		args = append(args, "--assign_oetf", "srgb")
	case texture.UsageLinear:
		args = append(args, "--assign_oetf", "linear", "--assign_primaries", "none")
	case texture.UsageNormalMap:
		args = append(args, "--normal_mode", "--assign_oetf", "linear")
	}
	args = append(args, "--2d", "--genmipmap", "--encode", job.Format.String(), "--t2")
	if job.Format != texture.FormatEtc1s {
		args = append(args, "--zcmp", "18")
	}
	return append(args, job.Dest, job.Source)
}
