package storage

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"foodgram-backend/internal/config"
	apperrors "foodgram-backend/internal/errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStore(t *testing.T) {
	root := t.TempDir()
	store, err := NewLocalStore(root, "/media/")
	require.NoError(t, err)
	ctx := context.Background()

	url, err := store.Save(ctx, "recipes/abc.png", []byte("png-bytes"), "image/png")
	require.NoError(t, err)
	assert.Equal(t, "/media/recipes/abc.png", url)

	data, err := os.ReadFile(filepath.Join(root, "recipes", "abc.png"))
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))

	t.Run("names cannot escape the root", func(t *testing.T) {
		url, err := store.Save(ctx, "../../etc/evil.png", []byte("x"), "image/png")
		require.NoError(t, err)
		assert.Equal(t, "/media/etc/evil.png", url)
		_, err = os.Stat(filepath.Join(root, "etc", "evil.png"))
		assert.NoError(t, err)
	})

	t.Run("delete removes the file", func(t *testing.T) {
		require.NoError(t, store.Delete(ctx, url))
		_, err := os.Stat(filepath.Join(root, "recipes", "abc.png"))
		assert.True(t, errors.Is(err, os.ErrNotExist))
	})

	t.Run("delete of a missing file is not an error", func(t *testing.T) {
		assert.NoError(t, store.Delete(ctx, "/media/recipes/missing.png"))
	})

	t.Run("foreign urls are ignored", func(t *testing.T) {
		assert.NoError(t, store.Delete(ctx, "https://cdn.example.com/x.png"))
	})
}

type fakeS3 struct {
	puts    []*s3.PutObjectInput
	deletes []*s3.DeleteObjectInput
	err     error
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.puts = append(f.puts, in)
	return &s3.PutObjectOutput{}, f.err
}

func (f *fakeS3) DeleteObject(_ context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	f.deletes = append(f.deletes, in)
	return &s3.DeleteObjectOutput{}, f.err
}

func TestS3Store(t *testing.T) {
	ctx := context.Background()

	t.Run("save uploads and returns public url", func(t *testing.T) {
		client := &fakeS3{}
		store := newS3Store(client, S3Config{Bucket: "media", Region: "eu-west-1"})

		url, err := store.Save(ctx, "recipes/a.jpg", []byte("jpg"), "image/jpeg")
		require.NoError(t, err)
		assert.Equal(t, "https://media.s3.eu-west-1.amazonaws.com/recipes/a.jpg", url)

		require.Len(t, client.puts, 1)
		assert.Equal(t, "media", aws.ToString(client.puts[0].Bucket))
		assert.Equal(t, "recipes/a.jpg", aws.ToString(client.puts[0].Key))
		assert.Equal(t, "image/jpeg", aws.ToString(client.puts[0].ContentType))
		body, err := io.ReadAll(client.puts[0].Body)
		require.NoError(t, err)
		assert.Equal(t, "jpg", string(body))
	})

	t.Run("delete maps url back to key", func(t *testing.T) {
		client := &fakeS3{}
		store := newS3Store(client, S3Config{Bucket: "media", PublicURL: "http://minio:9000/media/"})

		require.NoError(t, store.Delete(ctx, "http://minio:9000/media/recipes/a.jpg"))
		require.Len(t, client.deletes, 1)
		assert.Equal(t, "recipes/a.jpg", aws.ToString(client.deletes[0].Key))

		require.NoError(t, store.Delete(ctx, "/media/recipes/a.jpg"))
		assert.Len(t, client.deletes, 1)
	})

	t.Run("upload failure is wrapped", func(t *testing.T) {
		store := newS3Store(&fakeS3{err: errors.New("denied")}, S3Config{Bucket: "media", Region: "us-east-1"})
		_, err := store.Save(ctx, "recipes/a.jpg", []byte("x"), "image/jpeg")
		assert.ErrorContains(t, err, "failed to upload image")
	})
}

func TestNew(t *testing.T) {
	t.Run("local", func(t *testing.T) {
		store, err := New(context.Background(), &config.Config{ImageStorage: "local", MediaRoot: t.TempDir(), MediaURL: "/media"})
		require.NoError(t, err)
		assert.IsType(t, &LocalStore{}, store)
	})

	t.Run("unknown backend", func(t *testing.T) {
		_, err := New(context.Background(), &config.Config{ImageStorage: "ftp"})
		assert.ErrorIs(t, err, apperrors.ErrUnknownImageStorage)
	})
}
