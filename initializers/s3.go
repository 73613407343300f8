package initializers

import (
	"context"

	log "github.com/sirupsen/logrus"
	"ims-backend/config"
	s3client "ims-backend/s3"
)

func InitS3() {
	if config.Conf.S3.Endpoint == "" {
		log.Info("s3 is not configured, resume storage disabled")
		return
	}
	client, err := s3client.NewClient()
	if err != nil {
		log.WithError(err).Error("failed to initialize s3 client")
		return
	}
	if err = client.MakeBucket(context.Background()); err != nil {
		log.WithError(err).Error("failed to ensure s3 bucket")
		return
	}
	s3client.Instance = client
	log.Info("s3 client initialized")
}
