package storage

import (
	"fmt"
	"io"
	"path"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
)

// S3Uploader stores media in an S3 bucket under
// <prefix>/videos and <prefix>/thumbnails.
type S3Uploader struct {
	uploader *s3manager.Uploader
	client   *s3.S3
	bucket   string
	prefix   string
}

// S3Options configures the S3 uploader.
type S3Options struct {
	Region          string
	Bucket          string
	Prefix          string
	AccessKeyID     string
	SecretAccessKey string
}

// NewS3Uploader creates an S3-backed uploader.
func NewS3Uploader(opts S3Options) (*S3Uploader, error) {
	sess, err := session.NewSession(&aws.Config{
		Region:      aws.String(opts.Region),
		Credentials: credentials.NewStaticCredentials(opts.AccessKeyID, opts.SecretAccessKey, ""),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS session: %w", err)
	}
	return &S3Uploader{
		uploader: s3manager.NewUploader(sess),
		client:   s3.New(sess),
		bucket:   opts.Bucket,
		prefix:   opts.Prefix,
	}, nil
}

func (u *S3Uploader) key(kind Kind, name string) string {
	return path.Join(u.prefix, string(kind), name)
}

// Save streams the file to S3 under a unique key.
func (u *S3Uploader) Save(kind Kind, originalName string, r io.Reader) (string, error) {
	name := uniqueName(originalName)
	_, err := u.uploader.Upload(&s3manager.UploadInput{
		Bucket: aws.String(u.bucket),
		Key:    aws.String(u.key(kind, name)),
		Body:   r,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}
	return name, nil
}

// Remove deletes the stored object.
func (u *S3Uploader) Remove(kind Kind, storedName string) error {
	_, err := u.client.DeleteObject(&s3.DeleteObjectInput{
		Bucket: aws.String(u.bucket),
		Key:    aws.String(u.key(kind, storedName)),
	})
	if err != nil {
		return fmt.Errorf("failed to delete from S3: %w", err)
	}
	return nil
}
