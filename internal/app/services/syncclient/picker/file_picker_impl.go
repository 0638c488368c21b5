package picker

import (
	"context"
	"errors"
	"fmt"
	"healthrecord-service/internal/app/contracts"
	"healthrecord-service/internal/app/services/syncclient"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

var ErrNotAnImage = errors.New("file is not a supported image")

var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".heic": true,
	".webp": true,
}

// FilePicker stands in for the device photo library on the command line. It
// picks the file at Path, an empty Path means the user canceled.
type FilePicker struct {
	Path string
}

func NewFilePicker(path string) contracts.ImagePicker {
	return &FilePicker{Path: path}
}

func (p *FilePicker) PickImage(ctx context.Context) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	if strings.TrimSpace(p.Path) == "" {
		return "", true, nil
	}

	absolutePath, err := filepath.Abs(p.Path)
	if err != nil {
		return "", false, err
	}

	if !imageExtensions[strings.ToLower(filepath.Ext(absolutePath))] {
		return "", false, fmt.Errorf("%s: %w", absolutePath, ErrNotAnImage)
	}

	file, err := os.Open(absolutePath)
	if err != nil {
		if errors.Is(err, fs.ErrPermission) {
			return "", false, fmt.Errorf("%s: %w", absolutePath, syncclient.ErrPermissionDenied)
		}
		return "", false, err
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return "", false, err
	}
	if info.IsDir() {
		return "", false, fmt.Errorf("%s: %w", absolutePath, ErrNotAnImage)
	}

	uri := url.URL{Scheme: "file", Path: filepath.ToSlash(absolutePath)}
	return uri.String(), false, nil
}
