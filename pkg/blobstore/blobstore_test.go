package blobstore

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type fakeS3 struct {
	puts []s3.PutObjectInput
	body string
	err  error
}

func (f *fakeS3) PutObject(ctx context.Context, input *s3.PutObjectInput, opts ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	b, _ := io.ReadAll(input.Body)
	f.body = string(b)
	f.puts = append(f.puts, *input)
	return &s3.PutObjectOutput{}, nil
}

func TestUploadReturnsPathStyleURL(t *testing.T) {
	fake := &fakeS3{}
	store := &S3Store{
		cfg:    Config{Endpoint: "https://minio.local:9000", Bucket: "osca", Region: "us-east-1"},
		client: fake,
	}

	url, err := store.Upload(context.Background(), "availments/m1/doc.pdf", "application/pdf", strings.NewReader("content"))
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
	if url != "https://minio.local:9000/osca/availments/m1/doc.pdf" {
		t.Errorf("url = %q, want path-style endpoint URL", url)
	}
	if len(fake.puts) != 1 {
		t.Fatalf("puts = %d, want 1", len(fake.puts))
	}
	if got := *fake.puts[0].Key; got != "availments/m1/doc.pdf" {
		t.Errorf("key = %q", got)
	}
	if got := *fake.puts[0].ContentType; got != "application/pdf" {
		t.Errorf("contentType = %q", got)
	}
	if fake.body != "content" {
		t.Errorf("body = %q, want %q", fake.body, "content")
	}
}

func TestURLVirtualHostedWithoutEndpoint(t *testing.T) {
	store := &S3Store{cfg: Config{Bucket: "osca", Region: "ap-southeast-1"}}

	got := store.URL("members/m1/photo.jpg")
	want := "https://osca.s3.ap-southeast-1.amazonaws.com/members/m1/photo.jpg"
	if got != want {
		t.Errorf("URL = %q, want %q", got, want)
	}
}
