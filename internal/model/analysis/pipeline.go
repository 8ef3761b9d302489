package analysis

import (
	"context"
	"time"

	"github.com/opentracing/opentracing-go"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"max.ks1230/expense-analyzer/internal/entity/expense"
	"max.ks1230/expense-analyzer/internal/entity/summary"
	"max.ks1230/expense-analyzer/internal/logger"
	"max.ks1230/expense-analyzer/internal/model/aggregate"
)

type classifier interface {
	ClassifyAll(recs []expense.Record) []expense.Record
}

type reporter interface {
	Report(ctx context.Context, s *summary.Summary) []string
}

// Pipeline runs the linear flow: classify, aggregate, report.
// Ingestion stays at the call site since the two binaries read their
// input differently.
type Pipeline struct {
	classifier classifier
	reporter   reporter
	bucket     aggregate.Bucket
}

func NewPipeline(classifier classifier, reporter reporter, bucket aggregate.Bucket) *Pipeline {
	return &Pipeline{
		classifier: classifier,
		reporter:   reporter,
		bucket:     bucket,
	}
}

// Run classifies the records, folds them into a Summary and derives
// advice. Income is the statement's deposit total, zero when the input
// carries none. Empty input yields a zero-valued summary and no advice.
func (p *Pipeline) Run(ctx context.Context, recs []expense.Record, income decimal.Decimal) (*summary.Summary, []string) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "pipelineRun")
	defer span.Finish()
	span.SetTag("records", len(recs))

	start := time.Now()

	classified := p.classifier.ClassifyAll(recs)
	sum := aggregate.Build(classified, p.bucket)
	sum.Income = income
	advice := p.reporter.Report(ctx, sum)

	observeRun(time.Since(start))
	logger.Info("pipeline run complete",
		zap.Int("records", sum.Count),
		zap.String("total", sum.Total.String()),
		zap.Int("advice", len(advice)),
	)
	return sum, advice
}
