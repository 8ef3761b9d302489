package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"
	"max.ks1230/expense-analyzer/internal/clients/kafka"
	"max.ks1230/expense-analyzer/internal/config"
	"max.ks1230/expense-analyzer/internal/entity/rules"
	"max.ks1230/expense-analyzer/internal/logger"
	"max.ks1230/expense-analyzer/internal/model/aggregate"
	"max.ks1230/expense-analyzer/internal/model/analysis"
	"max.ks1230/expense-analyzer/internal/model/classify"
	"max.ks1230/expense-analyzer/internal/model/export"
	"max.ks1230/expense-analyzer/internal/model/ingest"
	"max.ks1230/expense-analyzer/internal/model/report"
)

func main() {
	if len(os.Args) < 2 {
		logger.Fatal("usage: analyzer <statement.csv> [output-dir]")
	}
	statementPath := os.Args[1]
	outputDir := "."
	if len(os.Args) > 2 {
		outputDir = os.Args[2]
	}

	conf, err := config.New()
	if err != nil {
		logger.Fatal("failed to init config", zap.Error(err))
	}

	ruleSet, err := rules.Load(conf.App().RulesFile())
	if err != nil {
		logger.Fatal("failed to load category rules", zap.Error(err))
	}

	var publisher *kafka.Producer
	if conf.Kafka().Enabled() {
		publisher, err = kafka.NewProducer(conf.Kafka())
		if err != nil {
			logger.Fatal("failed to init kafka producer", zap.Error(err))
		}
		defer publisher.Close()
	}

	reporter := newReporter(conf, publisher)
	bucket := aggregate.ParseBucket(conf.App().PeriodBucket())
	pipeline := analysis.NewPipeline(classify.New(ruleSet), reporter, bucket)

	f, err := os.Open(statementPath)
	if err != nil {
		logger.Fatal("failed to open statement", zap.Error(err))
	}
	defer f.Close()

	res, err := ingest.ReadCSV(f)
	if err != nil {
		logger.Fatal("failed to import statement", zap.Error(err))
	}

	sum, advice := pipeline.Run(context.Background(), res.Records, res.Income)

	for _, a := range advice {
		fmt.Println("- " + a)
	}

	if err = export.WriteSummary(outputDir, sum); err != nil {
		logger.Fatal("failed to export summary", zap.Error(err))
	}
	logger.Info("summary exported", zap.String("dir", outputDir))
}

// newReporter keeps the fire-and-forget contract when no broker is
// configured: a nil publisher simply disables the chart hand-off.
func newReporter(conf *config.Service, publisher *kafka.Producer) *report.Reporter {
	if publisher == nil {
		return report.NewReporter(conf.App(), nil)
	}
	return report.NewReporter(conf.App(), publisher)
}
