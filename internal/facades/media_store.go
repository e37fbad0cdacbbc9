package facades

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-social-feed/internal/logger"
	"github.com/sbilibin2017/gw-social-feed/internal/models"
)

// ErrUnsupportedExtension is returned for files that are neither a known
// image nor a known video format.
var ErrUnsupportedExtension = errors.New("unsupported file extension")

var mediaTypesByExtension = map[string]string{
	".png":  models.MediaTypeImage,
	".jpg":  models.MediaTypeImage,
	".jpeg": models.MediaTypeImage,
	".gif":  models.MediaTypeImage,
	".webp": models.MediaTypeImage,
	".mp4":  models.MediaTypeVideo,
	".avi":  models.MediaTypeVideo,
	".mov":  models.MediaTypeVideo,
	".mkv":  models.MediaTypeVideo,
	".webm": models.MediaTypeVideo,
}

// ClassifyMediaType maps a file name to "image" or "video" by extension.
func ClassifyMediaType(fileName string) (string, error) {
	ext := strings.ToLower(filepath.Ext(fileName))
	mediaType, ok := mediaTypesByExtension[ext]
	if !ok {
		return "", ErrUnsupportedExtension
	}
	return mediaType, nil
}

// DiskMediaStoreFacade stores uploaded media on local disk and hands back
// opaque URLs. It stands in for an external media store: callers persist
// the returned URL unchanged and never interpret it.
type DiskMediaStoreFacade struct {
	dir     string
	baseURL string
}

// NewDiskMediaStoreFacade creates a facade writing into dir. Stored files
// are addressed as baseURL/<generated name>.
func NewDiskMediaStoreFacade(dir, baseURL string) (*DiskMediaStoreFacade, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating media directory: %w", err)
	}
	return &DiskMediaStoreFacade{
		dir:     dir,
		baseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}

// Save writes the media content to the store and returns its opaque URL
// together with the classified media type.
func (f *DiskMediaStoreFacade) Save(ctx context.Context, fileName string, content io.Reader) (url, fileType string, err error) {
	fileType, err = ClassifyMediaType(fileName)
	if err != nil {
		logger.Log.Errorw("rejected media file", "file_name", fileName, "error", err)
		return "", "", err
	}

	storedName := uuid.New().String() + strings.ToLower(filepath.Ext(fileName))
	path := filepath.Join(f.dir, storedName)

	dst, err := os.Create(path)
	if err != nil {
		logger.Log.Errorw("failed to create media file", "path", path, "error", err)
		return "", "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, content); err != nil {
		os.Remove(path)
		logger.Log.Errorw("failed to write media file", "path", path, "error", err)
		return "", "", err
	}

	url = f.baseURL + "/" + storedName

	logger.Log.Infow("media stored",
		"file_name", fileName,
		"url", url,
		"file_type", fileType,
	)

	return url, fileType, nil
}
