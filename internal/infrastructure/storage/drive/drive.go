// Package drive downloads the source GEDCOM export from Google Drive using
// a service-account credential.
package drive

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"time"

	gdrive "google.golang.org/api/drive/v3"
	"google.golang.org/api/option"

	"github.com/baobabprince/HebrewFamilyTree/internal/infrastructure/monitoring/logging"
	"github.com/baobabprince/HebrewFamilyTree/pkg/errors"
)

// Downloader fetches files from Google Drive.
type Downloader struct {
	svc    *gdrive.Service
	logger logging.Logger
}

// NewDownloader builds a Downloader authenticated by the service-account
// JSON key at credentialsFile, with read-only Drive scope.
func NewDownloader(ctx context.Context, credentialsFile string, logger logging.Logger) (*Downloader, error) {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	if _, err := os.Stat(credentialsFile); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeDriveCredentials,
			"service account credentials file not readable")
	}
	svc, err := gdrive.NewService(ctx,
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(gdrive.DriveReadonlyScope),
	)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeDriveCredentials,
			"failed to build drive service")
	}
	return &Downloader{svc: svc, logger: logger}, nil
}

// Download streams the Drive file identified by fileID into destPath,
// creating parent directories as needed.  The file is written atomically:
// a partial download never replaces an existing copy.
func (d *Downloader) Download(ctx context.Context, fileID, destPath string) error {
	start := time.Now()

	resp, err := d.svc.Files.Get(fileID).Context(ctx).Download()
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeDriveDownloadFailed, "drive download failed")
	}
	defer resp.Body.Close()

	if err := os.MkdirAll(filepath.Dir(destPath), 0o755); err != nil {
		return errors.Wrap(err, errors.ErrCodeDriveDownloadFailed, "failed to create destination directory")
	}

	tmp, err := os.CreateTemp(filepath.Dir(destPath), ".download-*")
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeDriveDownloadFailed, "failed to create temp file")
	}
	defer os.Remove(tmp.Name())

	written, err := io.Copy(tmp, resp.Body)
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeDriveDownloadFailed, "failed to write downloaded file")
	}
	if err := os.Rename(tmp.Name(), destPath); err != nil {
		return errors.Wrap(err, errors.ErrCodeDriveDownloadFailed, "failed to move downloaded file into place")
	}

	d.logger.Info("downloaded file from drive",
		logging.String("file_id", fileID),
		logging.String("dest", destPath),
		logging.Int("bytes", int(written)),
		logging.Duration("took", time.Since(start)))
	return nil
}
