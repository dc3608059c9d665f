package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"path"
	"strings"
	"time"

	"Smart-Fridge-Backend/domain"
	"Smart-Fridge-Backend/internal/utils"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gabriel-vasile/mimetype"
	"github.com/gofiber/fiber/v2/log"
)

const maxUploadSize = 5 << 20

var AllowImage = []string{"image/jpeg", "image/png", "image/webp", "image/gif"}

type (
	AwsS3 interface {
		UploadFile(fileName string, file *multipart.FileHeader, folder string, allowed ...string) (string, error)
		UpdateFile(objectKey string, file *multipart.FileHeader, allowed ...string) (string, error)
		DeleteFile(objectKey string) error
		GetObjectKeyFromLink(link string) string
		GetPublicLinkKey(objectKey string) string
	}

	awsS3 struct {
		client *s3.Client
		bucket string
		region string
	}
)

func NewAwsS3() AwsS3 {
	bucket := utils.GetConfig("AWS_S3_BUCKET")
	region := utils.GetConfig("AWS_S3_REGION")

	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(region)}
	if key := utils.GetConfig("AWS_ACCESS_KEY"); key != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(key, utils.GetConfig("AWS_SECRET_KEY"), ""),
		))
	}

	cfg, err := awsconfig.LoadDefaultConfig(context.Background(), opts...)
	if err != nil {
		log.Errorf("unable to load AWS config for S3: %v", err)
		return &awsS3{bucket: bucket, region: region}
	}

	return &awsS3{
		client: s3.NewFromConfig(cfg),
		bucket: bucket,
		region: region,
	}
}

func (a *awsS3) UploadFile(fileName string, file *multipart.FileHeader, folder string, allowed ...string) (string, error) {
	data, contentType, err := readUpload(file, allowed...)
	if err != nil {
		return "", err
	}
	ext := ""
	if m := mimetype.Lookup(contentType); m != nil {
		ext = m.Extension()
	}
	objectKey := path.Join(folder, fmt.Sprintf("%s-%d%s", fileName, time.Now().UnixNano(), ext))
	return objectKey, a.put(objectKey, data, contentType)
}

func (a *awsS3) UpdateFile(objectKey string, file *multipart.FileHeader, allowed ...string) (string, error) {
	data, contentType, err := readUpload(file, allowed...)
	if err != nil {
		return "", err
	}
	return objectKey, a.put(objectKey, data, contentType)
}

func (a *awsS3) DeleteFile(objectKey string) error {
	if a.client == nil || a.bucket == "" {
		return domain.ErrStorageNotConfigured
	}
	_, err := a.client.DeleteObject(context.Background(), &s3.DeleteObjectInput{
		Bucket: aws.String(a.bucket),
		Key:    aws.String(objectKey),
	})
	return err
}

func (a *awsS3) GetObjectKeyFromLink(link string) string {
	return objectKeyFromLink(a.bucket, a.region, link)
}

func (a *awsS3) GetPublicLinkKey(objectKey string) string {
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", a.bucket, a.region, objectKey)
}

func (a *awsS3) put(objectKey string, data []byte, contentType string) error {
	if a.client == nil || a.bucket == "" {
		return domain.ErrStorageNotConfigured
	}
	_, err := a.client.PutObject(context.Background(), &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(objectKey),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("failed to upload to S3: %w", err)
	}
	return nil
}

func readUpload(file *multipart.FileHeader, allowed ...string) ([]byte, string, error) {
	if file == nil {
		return nil, "", domain.ErrInvalidImageFormat
	}
	if file.Size > maxUploadSize {
		return nil, "", fmt.Errorf("%w: file larger than %d bytes", domain.ErrInvalidImageFormat, maxUploadSize)
	}
	f, err := file.Open()
	if err != nil {
		return nil, "", err
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxUploadSize+1))
	if err != nil {
		return nil, "", err
	}
	contentType, err := DetectContentType(data, allowed...)
	if err != nil {
		return nil, "", err
	}
	return data, contentType, nil
}

// DetectContentType sniffs data and rejects anything outside allowed. An
// empty allow-list accepts every type.
func DetectContentType(data []byte, allowed ...string) (string, error) {
	mtype := mimetype.Detect(data)
	if len(allowed) > 0 && !mimetype.EqualsAny(mtype.String(), allowed...) {
		return "", fmt.Errorf("%w: %s", domain.ErrInvalidImageFormat, mtype.String())
	}
	return strings.SplitN(mtype.String(), ";", 2)[0], nil
}

func objectKeyFromLink(bucket, region, link string) string {
	prefix := fmt.Sprintf("https://%s.s3.%s.amazonaws.com/", bucket, region)
	if bucket == "" || !strings.HasPrefix(link, prefix) {
		return ""
	}
	return strings.TrimPrefix(link, prefix)
}
