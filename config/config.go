package config

import (
	"github.com/gotify/configor"
)

var Conf *Configuration

type Configuration struct {
	App struct {
		ListenAddr string `default:"" env:"APP_HOST"`
		Port       int    `default:"8080"  env:"APP_PORT"`
	}
	Database struct {
		Host           string `default:"127.0.0.1" env:"DB_HOST"`
		Port           string `default:"5432" env:"DB_PORT"`
		Name           string `default:"ims" env:"DB_NAME"`
		User           string `default:"postgres" env:"DB_USER"`
		Password       string `default:"postgres" env:"DB_PASSWORD"`
		MigrateOnStart *bool  `default:"true" env:"DB_MIGRATE_ON_START"`
		DebugMode      *bool  `default:"false" env:"DB_DEBUG_MODE"`
	}
	Auth struct {
		JWTSecret             string `default:"change-me" env:"AUTH_JWT_SECRET"`
		JWTExpireInSec        int    `default:"3600" env:"AUTH_JWT_EXPIRE_SEC"`
		JWTRefreshExpireInSec int    `default:"86400" env:"AUTH_JWT_REFRESH_EXPIRE_SEC"`
	}
	Smtp struct {
		User       string `default:"" env:"SMTP_USER"`
		Password   string `default:"" env:"SMTP_PASSWORD"`
		Host       string `default:"" env:"SMTP_HOST"`
		Port       string `default:"" env:"SMTP_PORT"`
		TLSEnabled *bool  `default:"true" env:"SMTP_TLS_ENABLED"`
	}
	Email struct {
		From        string `default:"no-reply@ims.local" env:"EMAIL_FROM"`
		CompanyName string `default:"IMS" env:"EMAIL_COMPANY_NAME"`
	}
	Notify struct {
		QueueSize int `default:"256" env:"NOTIFY_QUEUE_SIZE"`
		Workers   int `default:"4" env:"NOTIFY_WORKERS"`
	}
	Throttle struct {
		FeedbackDailyLimit    int `default:"20" env:"THROTTLE_FEEDBACK_DAILY_LIMIT"`
		ApplicationDailyLimit int `default:"10" env:"THROTTLE_APPLICATION_DAILY_LIMIT"`
	}
	Redis struct {
		Addr     string `default:"" env:"REDIS_ADDR"`
		Password string `default:"" env:"REDIS_PASSWORD"`
		DB       int    `default:"0" env:"REDIS_DB"`
	}
	S3 struct {
		Endpoint        string `default:"" env:"S3_ENDPOINT"`
		AccessKeyID     string `default:"" env:"S3_ACCESS_KEY_ID"`
		SecretAccessKey string `default:"" env:"S3_SECRET_ACCESS_KEY"`
		BucketName      string `default:"ims-resumes" env:"S3_BUCKET_NAME"`
		UseSSL          *bool  `default:"false" env:"S3_USE_SSL"`
	}
}

func configFiles() []string {
	return []string{"config.yml"}
}

func InitConfig() {
	if Conf != nil {
		return
	}
	conf := new(Configuration)
	err := configor.New(&configor.Config{}).Load(conf, configFiles()...)
	if err != nil {
		panic(err)
	}
	Conf = conf
}
