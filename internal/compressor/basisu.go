package compressor

import (
	"context"

	"klafsa/internal/texture"
)

// Basisu wraps the basisu encoder, which writes ETC1S or UASTC into either
// container.
type Basisu struct {
	path string
}

// NewBasisu locates the basisu executable.
func NewBasisu(look LookPath) (*Basisu, error) {
	path, err := locate(texture.BackendBasisu, look)
	if err != nil {
		return nil, err
	}
	return &Basisu{path: path}, nil
}

func (b *Basisu) Backend() texture.Backend { return texture.BackendBasisu }

func (b *Basisu) Supports(format texture.CompressionFormat, container texture.ContainerFormat) bool {
	return texture.BackendBasisu.Supports(format, container)
}

func (b *Basisu) Compress(ctx context.Context, job Job) error {
	if err := checkSupport(b, job); err != nil {
		return err
	}
	return run(ctx, job.WorkingDir, b.path, BasisuArgs(job))
}

// BasisuArgs assembles the basisu command line for job.
func BasisuArgs(job Job) []string {
	args := []string{job.Source, "-output_file", job.Dest, "-mipmap", "-mip_fast"}
	if job.Format == texture.FormatUastc {
		args = append(args, "-uastc")
	}
	if job.Container == texture.ContainerKtx2 {
		args = append(args, "-ktx2")
	}
	switch job.Usage {
	case texture.UsageSrgb:
		args = append(args, "-mip_srgb")
	case texture.UsageLinear:
		args = append(args, "-linear", "-mip_linear")
	case texture.UsageNormalMap:
		args = append(args, "-normal_map", "-linear", "-mip_linear")
	}
	return args
}
