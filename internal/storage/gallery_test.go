package storage

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/require"
)

// mockS3 records calls instead of talking to a bucket.
type mockS3 struct {
	puts    []*s3.PutObjectInput
	deletes []*s3.DeleteObjectInput
}

func (m *mockS3) PutObject(_ context.Context, input *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	m.puts = append(m.puts, input)
	return &s3.PutObjectOutput{}, nil
}

func (m *mockS3) DeleteObject(_ context.Context, input *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	m.deletes = append(m.deletes, input)
	return &s3.DeleteObjectOutput{}, nil
}

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))))
	return buf.Bytes()
}

func TestGalleryUploadConvertsToWebP(t *testing.T) {
	mock := &mockS3{}
	store := NewGalleryStore(mock, "bella-gallery", "https://cdn.example.com/")

	key, url, err := store.Upload(context.Background(), 3, bytes.NewReader(pngBytes(t, 40, 30)))
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(key, "gallery/3/"))
	require.True(t, strings.HasSuffix(key, ".webp"))
	require.Equal(t, "https://cdn.example.com/"+key, url)

	require.Len(t, mock.puts, 1)
	require.Equal(t, "bella-gallery", *mock.puts[0].Bucket)
	require.Equal(t, "image/webp", *mock.puts[0].ContentType)
}

func TestGalleryUploadRejectsNonImage(t *testing.T) {
	mock := &mockS3{}
	store := NewGalleryStore(mock, "bella-gallery", "https://cdn.example.com")

	_, _, err := store.Upload(context.Background(), 3, strings.NewReader("not an image"))
	require.Error(t, err)
	require.Empty(t, mock.puts)
}

func TestGalleryDelete(t *testing.T) {
	mock := &mockS3{}
	store := NewGalleryStore(mock, "bella-gallery", "https://cdn.example.com")

	require.NoError(t, store.Delete(context.Background(), "gallery/3/abc.webp"))
	require.Len(t, mock.deletes, 1)
	require.Equal(t, "gallery/3/abc.webp", *mock.deletes[0].Key)
}

func TestShrinkBoundsLongEdge(t *testing.T) {
	big := image.NewRGBA(image.Rect(0, 0, 3200, 1600))
	small := shrink(big)

	b := small.Bounds()
	require.Equal(t, maxEdge, b.Dx())
	require.Equal(t, maxEdge/2, b.Dy())

	// Images within bounds pass through untouched.
	ok := image.NewRGBA(image.Rect(0, 0, 800, 600))
	require.Equal(t, ok, shrink(ok))
}
