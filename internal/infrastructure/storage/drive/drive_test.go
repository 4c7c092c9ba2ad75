package drive

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baobabprince/HebrewFamilyTree/pkg/errors"
)

func TestNewDownloaderMissingCredentials(t *testing.T) {
	_, err := NewDownloader(context.Background(), "/no/such/credentials.json", nil)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeDriveCredentials))
}
