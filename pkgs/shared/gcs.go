package shared

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"cloud.google.com/go/storage"
)

var (
	storageClient *storage.Client
	clientOnce    sync.Once
	clientErr     error
)

func getStorageClient(ctx context.Context) (*storage.Client, error) {
	clientOnce.Do(func() {
		storageClient, clientErr = storage.NewClient(ctx)
	})
	if clientErr != nil {
		return nil, fmt.Errorf("storage.NewClient: %w", clientErr)
	}
	return storageClient, nil
}

// ParseGCSURI splits gs://bucket/path/to/object into bucket and object name.
func ParseGCSURI(uri string) (bucket, object string, err error) {
	rest, ok := strings.CutPrefix(uri, "gs://")
	if !ok {
		return "", "", fmt.Errorf("not a gs:// URI: %q", uri)
	}
	bucket, object, ok = strings.Cut(rest, "/")
	if !ok || bucket == "" || object == "" {
		return "", "", fmt.Errorf("GCS URI must name a bucket and an object: %q", uri)
	}
	return bucket, object, nil
}

func GetFileFromGCS(ctx context.Context, GCSBucketName, objectName string) ([]byte, error) {
	client, err := getStorageClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get GCS client: %w", err)
	}

	readCtx, cancel := context.WithTimeout(ctx, time.Second*50)
	defer cancel()

	obj := client.Bucket(GCSBucketName).Object(objectName)
	rc, err := obj.NewReader(readCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to create reader for object %s: %w", objectName, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("failed to read object content for %s: %w", objectName, err)
	}

	return data, nil
}
