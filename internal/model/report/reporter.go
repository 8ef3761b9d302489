package report

import (
	"context"
	"fmt"
	"strings"

	"github.com/opentracing/opentracing-go"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"max.ks1230/expense-analyzer/internal/entity/expense"
	"max.ks1230/expense-analyzer/internal/entity/summary"
	"max.ks1230/expense-analyzer/internal/logger"
)

type chartPublisher interface {
	PublishSummary(ctx context.Context, s *summary.Summary) error
}

type config interface {
	NonEssentialShare() float64
	SpikeFactor() float64
	ConcentrationShare() float64
	IncomeShare() float64
	TopMerchants() int
}

// Reporter turns a Summary into ordered advice strings and hands the
// summary to the external charting collaborator. The publish is
// fire-and-forget: failures are logged and never propagated.
type Reporter struct {
	publisher          chartPublisher
	nonEssentialShare  decimal.Decimal
	spikeFactor        decimal.Decimal
	concentrationShare decimal.Decimal
	incomeShare        decimal.Decimal
	topMerchants       int
}

func NewReporter(cfg config, publisher chartPublisher) *Reporter {
	return &Reporter{
		publisher:          publisher,
		nonEssentialShare:  decimal.NewFromFloat(cfg.NonEssentialShare()),
		spikeFactor:        decimal.NewFromFloat(cfg.SpikeFactor()),
		concentrationShare: decimal.NewFromFloat(cfg.ConcentrationShare()),
		incomeShare:        decimal.NewFromFloat(cfg.IncomeShare()),
		topMerchants:       cfg.TopMerchants(),
	}
}

// Report generates advice for the summary. An empty or all-zero summary
// yields no advice and nothing is published.
func (r *Reporter) Report(ctx context.Context, s *summary.Summary) []string {
	span, ctx := opentracing.StartSpanFromContext(ctx, "report")
	defer span.Finish()

	if s.Empty() || s.Total.IsZero() {
		return nil
	}

	advice := make([]string, 0)
	if a, ok := r.nonEssentialAdvice(s); ok {
		advice = append(advice, a)
	}
	if a, ok := r.topMerchantAdvice(s); ok {
		advice = append(advice, a)
	}
	if a, ok := r.spikePeriodsAdvice(s); ok {
		advice = append(advice, a)
	}
	if a, ok := r.concentrationAdvice(s); ok {
		advice = append(advice, a)
	}
	advice = append(advice, r.incomeAdvice(s)...)

	r.publish(ctx, s)
	return advice
}

func (r *Reporter) nonEssentialAdvice(s *summary.Summary) (string, bool) {
	nonEssential := s.TotalByCategory[expense.NonEssential]
	share := nonEssential.Div(s.Total)
	if !share.GreaterThan(r.nonEssentialShare) {
		return "", false
	}
	return fmt.Sprintf(
		"Non-essential spending makes up %s%% of your total, above the %s%% mark. "+
			"It might be time to cut down on non-essential spending.",
		formatPercent(share), formatPercent(r.nonEssentialShare),
	), true
}

func (r *Reporter) topMerchantAdvice(s *summary.Summary) (string, bool) {
	top := s.TopMerchants(1)
	if len(top) == 0 {
		return "", false
	}
	return fmt.Sprintf(
		"Your top expense is '%s' with a total expenditure of %s. "+
			"Consider reviewing these expenses to identify potential savings.",
		top[0].Merchant, top[0].Amount.StringFixed(2),
	), true
}

func (r *Reporter) spikePeriodsAdvice(s *summary.Summary) (string, bool) {
	periods := s.Periods()
	if len(periods) < 2 {
		return "", false
	}
	average := s.Total.Div(decimal.NewFromInt(int64(len(periods))))
	threshold := average.Mul(r.spikeFactor)

	spikes := make([]string, 0)
	for _, p := range periods {
		if s.TotalByPeriod[p].GreaterThan(threshold) {
			spikes = append(spikes, p)
		}
	}
	if len(spikes) == 0 {
		return "", false
	}
	return fmt.Sprintf(
		"Your spending in %s is significantly higher than average. "+
			"Evaluate your expenses during these periods.",
		strings.Join(spikes, ", "),
	), true
}

// incomeAdvice mirrors the statement-level budgeting insights: both
// rules stay silent when the statement carries no deposits.
func (r *Reporter) incomeAdvice(s *summary.Summary) []string {
	if !s.Income.IsPositive() {
		return nil
	}

	if s.Total.GreaterThan(s.Income) {
		return []string{
			"Your expenses exceed your income. Consider setting up an emergency fund " +
				"and reviewing your spending habits.",
		}
	}
	if s.Total.GreaterThan(s.Income.Mul(r.incomeShare)) {
		return []string{fmt.Sprintf(
			"Your expenses exceed %s%% of your income. It might be time to review "+
				"your budgeting and consider cutting down on non-essential spending.",
			formatPercent(r.incomeShare),
		)}
	}
	return nil
}

func (r *Reporter) concentrationAdvice(s *summary.Summary) (string, bool) {
	if len(s.TotalByMerchant) <= r.topMerchants {
		return "", false
	}
	topTotal := decimal.Zero
	for _, m := range s.TopMerchants(r.topMerchants) {
		topTotal = topTotal.Add(m.Amount)
	}
	if !topTotal.Div(s.Total).GreaterThan(r.concentrationShare) {
		return "", false
	}
	return fmt.Sprintf(
		"More than %s%% of your expenses are concentrated in your top %d merchants. "+
			"Consider diversifying your spending or optimizing these key areas.",
		formatPercent(r.concentrationShare), r.topMerchants,
	), true
}

func (r *Reporter) publish(ctx context.Context, s *summary.Summary) {
	if r.publisher == nil {
		return
	}
	if err := r.publisher.PublishSummary(ctx, s); err != nil {
		logger.Error("failed to publish summary for charting", zap.Error(err))
	}
}

func formatPercent(share decimal.Decimal) string {
	return share.Mul(decimal.NewFromInt(100)).StringFixed(0)
}
