package blobstore

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	sc "github.com/dmitrijs2005/noteapp/internal/server/config"
)

func newTestStore() *S3Store {
	cfg := &sc.Config{
		S3Region:       "us-east-1",
		S3RootUser:     "minioadmin",
		S3RootPassword: "minioadmin",
		S3BaseEndpoint: "http://127.0.0.1:9000",
		S3Bucket:       "note-images",
	}
	return NewS3Store(cfg)
}

func stubClients(t *testing.T) {
	t.Helper()

	origLoad := loadDefaultAWSConfig
	origNewS3 := newS3ClientFromConfig
	origNewPre := newS3PresignClient
	origPut := putObject
	origPresignGet := presignGetObject
	t.Cleanup(func() {
		loadDefaultAWSConfig = origLoad
		newS3ClientFromConfig = origNewS3
		newS3PresignClient = origNewPre
		putObject = origPut
		presignGetObject = origPresignGet
	})

	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, nil
	}
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return &s3.Client{}
	}
	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return &s3.PresignClient{}
	}
}

func Test_getClient_AppliesConfig(t *testing.T) {
	store := newTestStore()
	stubClients(t)

	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		if len(optFns) == 0 {
			t.Fatalf("expected config options")
		}
		var lo awsconfig.LoadOptions
		for _, fn := range optFns {
			if err := fn(&lo); err != nil {
				t.Fatalf("load options fn error: %v", err)
			}
		}
		if lo.Region != "us-east-1" {
			t.Fatalf("region not applied: %q", lo.Region)
		}
		return aws.Config{}, nil
	}

	var capturedBaseEndpoint string
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		var opts s3.Options
		for _, fn := range optFns {
			fn(&opts)
		}
		if opts.BaseEndpoint == nil {
			t.Fatalf("BaseEndpoint not set")
		}
		capturedBaseEndpoint = *opts.BaseEndpoint
		return &s3.Client{}
	}

	client, err := store.getClient(context.Background())
	if err != nil {
		t.Fatalf("getClient err: %v", err)
	}
	if client == nil {
		t.Fatalf("nil client")
	}
	if capturedBaseEndpoint != "http://127.0.0.1:9000" {
		t.Fatalf("BaseEndpoint mismatch: %q", capturedBaseEndpoint)
	}
}

func Test_getClient_LoadError(t *testing.T) {
	store := newTestStore()
	stubClients(t)

	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, errors.New("load-fail")
	}

	_, err := store.getClient(context.Background())
	if err == nil || err.Error() != "load-fail" {
		t.Fatalf("expected load-fail, got %v", err)
	}
}

func TestUpload_SendsObject(t *testing.T) {
	store := newTestStore()
	stubClients(t)

	var captured *s3.PutObjectInput
	putObject = func(c *s3.Client, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
		captured = in
		return &s3.PutObjectOutput{}, nil
	}

	err := store.Upload(context.Background(), "u1/123-cat.jpg", []byte{0xFF, 0xD8}, "image/jpeg")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if captured == nil {
		t.Fatalf("PutObject not called")
	}
	if *captured.Bucket != "note-images" || *captured.Key != "u1/123-cat.jpg" {
		t.Fatalf("unexpected bucket/key: %v/%v", *captured.Bucket, *captured.Key)
	}
	if *captured.ContentType != "image/jpeg" {
		t.Fatalf("unexpected content type: %v", *captured.ContentType)
	}
	body, err := io.ReadAll(captured.Body)
	if err != nil {
		t.Fatalf("reading body: %v", err)
	}
	if len(body) != 2 || body[0] != 0xFF || body[1] != 0xD8 {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestUpload_PutError(t *testing.T) {
	store := newTestStore()
	stubClients(t)

	putObject = func(c *s3.Client, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
		return nil, errors.New("put-fail")
	}

	err := store.Upload(context.Background(), "k", []byte("x"), "image/jpeg")
	if err == nil || err.Error() != "put-fail" {
		t.Fatalf("expected put-fail, got %v", err)
	}
}

func TestPresignGet_ReturnsURL(t *testing.T) {
	store := newTestStore()
	stubClients(t)

	var capturedExpires time.Duration
	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		var opts s3.PresignOptions
		for _, fn := range optFns {
			fn(&opts)
		}
		capturedExpires = opts.Expires
		if *in.Bucket != "note-images" || *in.Key != "u1/123-cat.jpg" {
			t.Fatalf("unexpected bucket/key: %v/%v", *in.Bucket, *in.Key)
		}
		return &v4.PresignedHTTPRequest{URL: "https://signed.example/u1/123-cat.jpg"}, nil
	}

	url, err := store.PresignGet(context.Background(), "u1/123-cat.jpg", time.Hour)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if url != "https://signed.example/u1/123-cat.jpg" {
		t.Fatalf("unexpected url: %q", url)
	}
	if capturedExpires != time.Hour {
		t.Fatalf("expiry not applied: %v", capturedExpires)
	}
}

func TestPresignGet_Error(t *testing.T) {
	store := newTestStore()
	stubClients(t)

	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return nil, errors.New("presign-fail")
	}

	_, err := store.PresignGet(context.Background(), "k", time.Hour)
	if err == nil || err.Error() != "presign-fail" {
		t.Fatalf("expected presign-fail, got %v", err)
	}
}
