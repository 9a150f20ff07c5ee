package storage

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/chai2010/webp"
	"github.com/google/uuid"
	"golang.org/x/image/draw"
)

// S3API is the subset of the S3 client the gallery needs.
type S3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

const (
	// maxEdge bounds the longer image edge; portfolio shots do not need
	// more than this for the public page.
	maxEdge = 1600

	webpQuality = 82
)

// GalleryStore converts uploads to bounded-size WebP and keeps them in an
// S3-compatible bucket under per-salon keys.
type GalleryStore struct {
	client        S3API
	bucket        string
	publicBaseURL string
}

func NewGalleryStore(client S3API, bucket, publicBaseURL string) *GalleryStore {
	return &GalleryStore{
		client:        client,
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}
}

// Upload decodes the image, scales it down when it exceeds maxEdge, re-encodes
// as WebP and writes it under gallery/<salonID>/<uuid>.webp. It returns the
// object key and the public URL.
func (g *GalleryStore) Upload(ctx context.Context, salonID uint, r io.Reader) (string, string, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return "", "", fmt.Errorf("gallery: decode image: %w", err)
	}

	src = shrink(src)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, src, &webp.Options{Quality: webpQuality}); err != nil {
		return "", "", fmt.Errorf("gallery: encode webp: %w", err)
	}

	key := fmt.Sprintf("gallery/%d/%s.webp", salonID, uuid.NewString())

	_, err = g.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(g.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(buf.Bytes()),
		ContentType: aws.String("image/webp"),
	})
	if err != nil {
		return "", "", fmt.Errorf("gallery: s3 put %s: %w", key, err)
	}

	return key, g.publicBaseURL + "/" + key, nil
}

// Delete removes the object; a missing key is not an error on S3, which is
// exactly what we want when the DB row outlived the object.
func (g *GalleryStore) Delete(ctx context.Context, objectKey string) error {
	_, err := g.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(g.bucket),
		Key:    aws.String(objectKey),
	})
	if err != nil {
		return fmt.Errorf("gallery: s3 delete %s: %w", objectKey, err)
	}
	return nil
}

func shrink(src image.Image) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()

	longer := w
	if h > longer {
		longer = h
	}
	if longer <= maxEdge {
		return src
	}

	scale := float64(maxEdge) / float64(longer)
	dst := image.NewRGBA(image.Rect(0, 0, int(float64(w)*scale), int(float64(h)*scale)))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}
