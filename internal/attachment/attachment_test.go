package attachment_test

import (
	"context"
	"errors"
	"salon/config"
	"salon/infras/otel/mocks"
	s3Mocks "salon/infras/s3/mocks"
	"salon/internal/attachment"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const pixelPNG = "data:image/png;base64,iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mNk+M9QDwADhgGAWjR9awAAAABJRU5ErkJggg=="

func newUploader(t *testing.T) (*s3Mocks.MockS3, attachment.Uploader) {
	t.Helper()

	ctrl := gomock.NewController(t)
	store := s3Mocks.NewMockS3(ctrl)

	cfg := &config.Config{}
	cfg.External.S3.Directory = "bookings"

	return store, attachment.New(store, cfg, mocks.NewOtel())
}

func TestUpload(t *testing.T) {
	store, uploader := newUploader(t)

	store.EXPECT().
		UploadFileBytes(gomock.Any(), "bookings", gomock.Any(), "image/png", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, fileName, _ string, data []byte) (string, error) {
			assert.True(t, strings.HasSuffix(fileName, ".png"))
			assert.Equal(t, "PNG", string(data[1:4]))

			return "https://cdn.example.com/bookings/" + fileName, nil
		})

	url, err := uploader.Upload(context.Background(), pixelPNG)

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "https://cdn.example.com/bookings/"))
}

func TestUploadRejectsNonDataURL(t *testing.T) {
	_, uploader := newUploader(t)

	_, err := uploader.Upload(context.Background(), "https://example.com/a.png")

	require.Error(t, err)
}

func TestUploadStoreError(t *testing.T) {
	store, uploader := newUploader(t)

	store.EXPECT().
		UploadFileBytes(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return("", errors.New("bucket missing"))

	_, err := uploader.Upload(context.Background(), pixelPNG)

	require.Error(t, err)
}

func TestDiscard(t *testing.T) {
	store, uploader := newUploader(t)

	const url = "https://cdn.example.com/bookings/a.png"

	store.EXPECT().GetObjectNameFromURL(url).Return("bookings/a.png")
	store.EXPECT().DeleteFile(gomock.Any(), "", "bookings/a.png").Return(nil)

	require.NoError(t, uploader.Discard(context.Background(), url))
}

func TestDiscardForeignURL(t *testing.T) {
	store, uploader := newUploader(t)

	store.EXPECT().GetObjectNameFromURL(gomock.Any()).Return("")

	err := uploader.Discard(context.Background(), "https://elsewhere.example.com/a.png")

	require.ErrorIs(t, err, attachment.ErrForeignURL)
}

func TestNewFromConfigDisabled(t *testing.T) {
	assert.Nil(t, attachment.NewFromConfig(&config.Config{}, mocks.NewOtel()))
}
