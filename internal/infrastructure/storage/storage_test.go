package storage

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shelter-backend/internal/config"
)

type fakeObjectStore struct {
	mu       sync.Mutex
	putErr   error
	rmErr    error
	uploaded map[string][]byte // key -> content seen at upload time
	removed  []string
	seenPath string
}

func newFakeObjectStore() *fakeObjectStore {
	return &fakeObjectStore{uploaded: map[string][]byte{}}
}

func (f *fakeObjectStore) FPutObject(_ context.Context, _, objectName, filePath string, _ minio.PutObjectOptions) (minio.UploadInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.seenPath = filePath
	if f.putErr != nil {
		return minio.UploadInfo{}, f.putErr
	}
	data, err := os.ReadFile(filePath)
	if err != nil {
		return minio.UploadInfo{}, err
	}
	f.uploaded[objectName] = data
	return minio.UploadInfo{Key: objectName, Size: int64(len(data))}, nil
}

func (f *fakeObjectStore) RemoveObject(_ context.Context, _, objectName string, _ minio.RemoveObjectOptions) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.removed = append(f.removed, objectName)
	return f.rmErr
}

func newTestStore(t *testing.T, client objectStore, maxBytes int64) (*MinIOImageStore, string) {
	t.Helper()
	dir := t.TempDir()
	store := newMinIOImageStore(client, "shelter", "http://localhost:9000/", config.StorageConfig{
		TempDir:        dir,
		MaxUploadBytes: maxBytes,
		ImageKeyPrefix: "animals",
	}, NewFSPool(2), nil)
	return store, dir
}

func dirEntries(t *testing.T, dir string) []os.DirEntry {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	return entries
}

func TestExtensionFromFilename(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		want     string
	}{
		{"simple", "dog.png", "png"},
		{"uppercase", "DOG.JPG", "jpg"},
		{"several dots", "my.best.dog.gif", "gif"},
		{"no dot", "dog", "jpeg"},
		{"trailing dot", "dog.", "jpeg"},
		{"empty", "", "jpeg"},
		{"dot in directory", "photos.v2/dog", "jpeg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtensionFromFilename(tt.filename))
		})
	}
}

func TestSaveImage_UploadsAndRemovesTempFile(t *testing.T) {
	client := newFakeObjectStore()
	store, dir := newTestStore(t, client, 0)

	url, err := store.SaveImage(context.Background(), strings.NewReader("fake-bytes"), "test_image.PNG")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(url, "http://localhost:9000/shelter/animals/"), url)
	assert.True(t, strings.HasSuffix(url, ".png"), url)

	key, ok := store.KeyFromURL(url)
	require.True(t, ok)
	assert.Equal(t, []byte("fake-bytes"), client.uploaded[key])

	assert.Equal(t, dir, filepath.Dir(client.seenPath))
	assert.Empty(t, dirEntries(t, dir), "temp file must be removed after upload")
}

func TestSaveImage_UniqueNames(t *testing.T) {
	store, _ := newTestStore(t, newFakeObjectStore(), 0)

	first, err := store.SaveImage(context.Background(), strings.NewReader("a"), "a.jpg")
	require.NoError(t, err)
	second, err := store.SaveImage(context.Background(), strings.NewReader("b"), "a.jpg")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestSaveImage_UploadFailureStillRemovesTempFile(t *testing.T) {
	client := newFakeObjectStore()
	client.putErr = errors.New("minio down")
	store, dir := newTestStore(t, client, 0)

	url, err := store.SaveImage(context.Background(), strings.NewReader("data"), "dog")
	require.Error(t, err)
	assert.Empty(t, url)
	assert.True(t, strings.HasSuffix(client.seenPath, ".jpeg"))
	assert.Empty(t, dirEntries(t, dir))
}

func TestSaveImage_TooLarge(t *testing.T) {
	client := newFakeObjectStore()
	store, dir := newTestStore(t, client, 4)

	_, err := store.SaveImage(context.Background(), strings.NewReader("12345"), "big.png")
	assert.ErrorIs(t, err, ErrImageTooLarge)
	assert.Empty(t, client.uploaded)
	assert.Empty(t, dirEntries(t, dir))
}

func TestSaveImage_CancelledContextStillCleansUp(t *testing.T) {
	client := newFakeObjectStore()
	store, dir := newTestStore(t, client, 0)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// upload may or may not fail depending on who observes ctx first;
	// the temp file must be gone either way
	_, _ = store.SaveImage(ctx, strings.NewReader("data"), "dog.png")
	assert.Empty(t, dirEntries(t, dir))
}

func TestDeleteImage(t *testing.T) {
	t.Run("removes object of this bucket", func(t *testing.T) {
		client := newFakeObjectStore()
		store, _ := newTestStore(t, client, 0)

		store.DeleteImage(context.Background(), "http://localhost:9000/shelter/animals/abc.png")
		assert.Equal(t, []string{"animals/abc.png"}, client.removed)
	})

	t.Run("ignores foreign urls", func(t *testing.T) {
		client := newFakeObjectStore()
		store, _ := newTestStore(t, client, 0)

		store.DeleteImage(context.Background(), "https://cdn.example.com/shelter/animals/abc.png")
		store.DeleteImage(context.Background(), "")
		assert.Empty(t, client.removed)
	})

	t.Run("swallows remove errors", func(t *testing.T) {
		client := newFakeObjectStore()
		client.rmErr = errors.New("boom")
		store, _ := newTestStore(t, client, 0)

		assert.NotPanics(t, func() {
			store.DeleteImage(context.Background(), store.PublicURL("animals/x.jpeg"))
		})
		assert.Equal(t, []string{"animals/x.jpeg"}, client.removed)
	})
}

func TestFSPool_BoundsConcurrency(t *testing.T) {
	const workers = 3
	pool := NewFSPool(workers)

	var running, peak int32
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = pool.Do(context.Background(), func() error {
				n := atomic.AddInt32(&running, 1)
				for {
					p := atomic.LoadInt32(&peak)
					if n <= p || atomic.CompareAndSwapInt32(&peak, p, n) {
						break
					}
				}
				time.Sleep(5 * time.Millisecond)
				atomic.AddInt32(&running, -1)
				return nil
			})
		}()
	}
	wg.Wait()

	assert.LessOrEqual(t, peak, int32(workers))
	assert.Greater(t, peak, int32(0))
}

func TestFSPool_PropagatesError(t *testing.T) {
	want := errors.New("disk full")
	err := NewFSPool(1).Do(context.Background(), func() error { return want })
	assert.ErrorIs(t, err, want)
}

func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, 0, color.RGBA{R: 200, A: 255})
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o600))
}

func imageSize(t *testing.T, path string) (int, int) {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	cfg, _, err := image.DecodeConfig(f)
	require.NoError(t, err)
	return cfg.Width, cfg.Height
}

func TestImageProcessor_Normalize(t *testing.T) {
	dir := t.TempDir()

	t.Run("shrinks oversized image", func(t *testing.T) {
		path := filepath.Join(dir, "big.png")
		writePNG(t, path, 400, 100)

		require.NoError(t, NewImageProcessor(200).Normalize(path))
		w, h := imageSize(t, path)
		assert.Equal(t, 200, w)
		assert.Equal(t, 50, h)
	})

	t.Run("keeps small image", func(t *testing.T) {
		path := filepath.Join(dir, "small.png")
		writePNG(t, path, 40, 30)

		require.NoError(t, NewImageProcessor(200).Normalize(path))
		w, h := imageSize(t, path)
		assert.Equal(t, 40, w)
		assert.Equal(t, 30, h)
	})

	t.Run("rejects non images", func(t *testing.T) {
		path := filepath.Join(dir, "notes.png")
		require.NoError(t, os.WriteFile(path, []byte("not an image"), 0o600))

		assert.ErrorIs(t, NewImageProcessor(200).Normalize(path), ErrInvalidImage)
	})
}

func TestSaveImage_WithProcessorRejectsGarbage(t *testing.T) {
	client := newFakeObjectStore()
	dir := t.TempDir()
	store := newMinIOImageStore(client, "shelter", "http://localhost:9000", config.StorageConfig{TempDir: dir}, NewFSPool(1), NewImageProcessor(100))

	_, err := store.SaveImage(context.Background(), strings.NewReader("garbage"), "x.png")
	assert.ErrorIs(t, err, ErrInvalidImage)
	assert.Empty(t, client.uploaded)
	assert.Empty(t, dirEntries(t, dir))
}
