package initializers

import (
	"context"

	"ims-backend/config"
	"ims-backend/fiberlog"
	accounthandler "ims-backend/lib/account"
	applicationhandler "ims-backend/lib/application"
	"ims-backend/lib/email"
	xlsexport "ims-backend/lib/export/xls"
	feedbackhandler "ims-backend/lib/feedback"
	filestorage "ims-backend/lib/file-storage"
	jobhandler "ims-backend/lib/job"
	"ims-backend/lib/notify"
	"ims-backend/lib/reminder"
	roundhandler "ims-backend/lib/round"
	statisticshandler "ims-backend/lib/statistics"
	"ims-backend/lib/throttle"
	"ims-backend/models"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitS3()
	InitSmtp()
	email.NewHandler(config.Conf.Smtp.Host, config.Conf.Smtp.Port,
		config.Conf.Smtp.User, config.Conf.Smtp.Password,
		config.Conf.Email.From, config.Conf.Email.CompanyName)
	notify.NewHandler(ctx, config.Conf.Notify.Workers, config.Conf.Notify.QueueSize)
	throttle.NewHandler(InitRedis(), map[models.ThrottleScope]int{
		models.ThrottleScopeFeedback:       config.Conf.Throttle.FeedbackDailyLimit,
		models.ThrottleScopeJobApplication: config.Conf.Throttle.ApplicationDailyLimit,
	})
	accounthandler.NewHandler()
	jobhandler.NewHandler()
	applicationhandler.NewHandler()
	roundhandler.NewHandler()
	feedbackhandler.NewHandler()
	statisticshandler.NewHandler()
	filestorage.NewHandler()
	xlsexport.NewHandler()
	go initWorkers(ctx)
}

func initWorkers(ctx context.Context) {
	// daily digest of upcoming interviews for interviewers
	reminder.StartWorker(ctx)
}
