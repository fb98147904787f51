package packs

import (
	"context"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/npillmayer/typefont/core"
)

// S3Fetcher retrieves corpus documents from an AWS S3 bucket. Credentials
// are taken from the usual AWS configuration channels.
type S3Fetcher struct {
	Bucket     string // bucket holding the corpus
	Region     string // AWS region of the bucket
	downloader *s3manager.Downloader
}

// Init sets up the AWS session. Fetch calls Init on first use if the
// client did not.
func (f *S3Fetcher) Init() error {
	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(f.Region),
	})
	if err != nil {
		return core.WrapError(err, core.ELOAD, "cannot set up AWS session")
	}
	f.downloader = s3manager.NewDownloader(sess)
	return nil
}

// Fetch downloads the document stored under name.
func (f *S3Fetcher) Fetch(ctx context.Context, name string) ([]byte, error) {
	if f.downloader == nil {
		if err := f.Init(); err != nil {
			return nil, err
		}
	}
	buf := aws.NewWriteAtBuffer([]byte{})
	_, err := f.downloader.DownloadWithContext(ctx, buf, &s3.GetObjectInput{
		Bucket: aws.String(f.Bucket),
		Key:    aws.String(name),
	})
	if err != nil {
		return nil, core.LoadError(err, f.Where(name))
	}
	return buf.Bytes(), nil
}

// Where returns the object URL of a document.
func (f *S3Fetcher) Where(name string) string {
	return "s3://" + f.Bucket + "/" + name
}
