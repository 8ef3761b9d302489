package main

import (
	"context"
	"os"
	"os/signal"

	"go.uber.org/zap"
	"max.ks1230/expense-analyzer/internal/clients/cache"
	"max.ks1230/expense-analyzer/internal/clients/kafka"
	"max.ks1230/expense-analyzer/internal/config"
	"max.ks1230/expense-analyzer/internal/entity/rules"
	"max.ks1230/expense-analyzer/internal/logger"
	"max.ks1230/expense-analyzer/internal/model/aggregate"
	"max.ks1230/expense-analyzer/internal/model/analysis"
	"max.ks1230/expense-analyzer/internal/model/classify"
	"max.ks1230/expense-analyzer/internal/model/report"
	"max.ks1230/expense-analyzer/internal/model/storage"
	"max.ks1230/expense-analyzer/internal/server"
)

func main() {
	logger.Info("server init - start")

	conf, err := config.New()
	if err != nil {
		logger.Fatal("failed to init config", zap.Error(err))
	}

	ruleSet, err := rules.Load(conf.App().RulesFile())
	if err != nil {
		logger.Fatal("failed to load category rules", zap.Error(err))
	}

	var reporter *report.Reporter
	if conf.Kafka().Enabled() {
		publisher, err := kafka.NewProducer(conf.Kafka())
		if err != nil {
			logger.Fatal("failed to init kafka producer", zap.Error(err))
		}
		defer publisher.Close()
		reporter = report.NewReporter(conf.App(), publisher)
	} else {
		reporter = report.NewReporter(conf.App(), nil)
	}

	bucket := aggregate.ParseBucket(conf.App().PeriodBucket())
	pipeline := analysis.NewPipeline(classify.New(ruleSet), reporter, bucket)

	srv := newServer(conf, pipeline)
	logger.Info("server init - end")

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	go srv.Serve()
	<-ctx.Done()
	srv.Shutdown()
}

func newServer(conf *config.Service, pipeline *analysis.Pipeline) *server.Server {
	datasets := storage.NewInMemStorage()

	if !conf.Memcached().Enabled() {
		return server.New(conf.Server(), pipeline, datasets, nil)
	}

	mc, err := cache.NewMemcache(conf.Memcached())
	if err != nil {
		logger.Fatal("failed to init memcached", zap.Error(err))
	}
	return server.New(conf.Server(), pipeline, datasets, mc)
}
