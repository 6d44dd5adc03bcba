package imgutil

import (
	"io"
	"os"
	"strings"

	exif "github.com/dsoprea/go-exif/v3"
)

// OrientationNormal is the EXIF orientation for an image stored upright.
const OrientationNormal = 1

// Orientation returns the EXIF orientation tag of the file at path, or
// OrientationNormal when the file carries no EXIF data or no such tag.
func Orientation(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	return OrientationFromReadSeeker(f)
}

// OrientationFromReadSeeker reads the EXIF orientation from rs.
func OrientationFromReadSeeker(rs io.ReadSeeker) (int, error) {
	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return 0, err
	}

	tags, _, err := exif.GetFlatExifDataUniversalSearchWithReadSeeker(rs, nil, true)
	if err != nil {
		if errorsIsNoExif(err) {
			return OrientationNormal, nil
		}
		return 0, err
	}

	for _, tag := range tags {
		if tag.TagName != "Orientation" {
			continue
		}
		switch v := tag.Value.(type) {
		case []uint16:
			if len(v) > 0 {
				return int(v[0]), nil
			}
		case uint16:
			return int(v), nil
		}
	}
	return OrientationNormal, nil
}

func errorsIsNoExif(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(strings.ToLower(err.Error()), "no exif")
}
