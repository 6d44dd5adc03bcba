package processor

import (
	"net/url"
	"path"
	"path/filepath"
	"strings"

	"klafsa/internal/texture"
)

// DestinationPath maps a source image URI to its compressed sibling:
// dir/name.ext becomes dir/<format>_<container>/name_<format>.<container ext>.
// URIs use forward slashes regardless of platform.
func DestinationPath(uri string, format texture.CompressionFormat, container texture.ContainerFormat) string {
	dir, base := path.Split(uri)
	name := strings.TrimSuffix(base, path.Ext(base))
	sub := format.String() + "_" + container.String()
	file := name + "_" + format.String() + "." + container.Extension()
	return path.Join(dir, sub, file)
}

// OutputDocumentPath maps the source document path to the document written
// for one target: dir/name.gltf becomes dir/name_<format>_<container>.gltf.
func OutputDocumentPath(docPath string, format texture.CompressionFormat, container texture.ContainerFormat) string {
	ext := filepath.Ext(docPath)
	stem := strings.TrimSuffix(docPath, ext)
	return stem + "_" + format.String() + "_" + container.String() + ext
}

// uriToFile turns a relative URI into a platform path, undoing percent
// encoding where it is valid.
func uriToFile(uri string) string {
	if unescaped, err := url.PathUnescape(uri); err == nil {
		uri = unescaped
	}
	return filepath.FromSlash(uri)
}
