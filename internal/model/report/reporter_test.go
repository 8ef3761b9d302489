package report

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/gojuno/minimock/v3"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"max.ks1230/expense-analyzer/internal/entity/expense"
	"max.ks1230/expense-analyzer/internal/entity/summary"
	"max.ks1230/expense-analyzer/internal/model/aggregate"
	"max.ks1230/expense-analyzer/internal/model/report/mock"
)

type stubConfig struct {
	share  float64
	spike  float64
	conc   float64
	income float64
	top    int
}

func (c stubConfig) NonEssentialShare() float64  { return c.share }
func (c stubConfig) SpikeFactor() float64        { return c.spike }
func (c stubConfig) ConcentrationShare() float64 { return c.conc }
func (c stubConfig) IncomeShare() float64        { return c.income }
func (c stubConfig) TopMerchants() int           { return c.top }

func defaultConfig() stubConfig {
	return stubConfig{share: 0.3, spike: 1.5, conc: 0.8, income: 0.8, top: 10}
}

func build(recs ...expense.Record) *summary.Summary {
	return aggregate.Build(recs, aggregate.BucketMonth)
}

func withIncome(s *summary.Summary, income int64) *summary.Summary {
	s.Income = decimal.NewFromInt(income)
	return s
}

func rec(date time.Time, amount int64, desc string, cat expense.Category) expense.Record {
	return expense.Record{Date: date, Amount: decimal.NewFromInt(amount), Description: desc, Category: cat}
}

var march = time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)

func Test_OnReport_ShouldAdviseWhenNonEssentialShareExceedsLimit(t *testing.T) {
	m := minimock.NewController(t)
	publisher := mock.NewChartPublisherMock(m)
	publisher.PublishSummaryMock.Return(nil)

	reporter := NewReporter(defaultConfig(), publisher)
	advice := reporter.Report(context.Background(), build(
		rec(march, 69, "rent", expense.Essential),
		rec(march, 31, "coffee", expense.NonEssential),
	))

	assert.NotEmpty(t, advice)
	assert.Contains(t, advice[0], "Non-essential spending makes up 31% of your total")
}

func Test_OnReport_ShouldStaySilentAtExactShareLimit(t *testing.T) {
	m := minimock.NewController(t)
	publisher := mock.NewChartPublisherMock(m)
	publisher.PublishSummaryMock.Return(nil)

	reporter := NewReporter(defaultConfig(), publisher)
	advice := reporter.Report(context.Background(), build(
		rec(march, 70, "rent", expense.Essential),
		rec(march, 30, "coffee", expense.NonEssential),
	))

	for _, a := range advice {
		assert.NotContains(t, a, "Non-essential spending")
	}
}

func Test_OnReport_ShouldNameTopMerchant(t *testing.T) {
	m := minimock.NewController(t)
	publisher := mock.NewChartPublisherMock(m)
	publisher.PublishSummaryMock.Return(nil)

	reporter := NewReporter(defaultConfig(), publisher)
	advice := reporter.Report(context.Background(), build(
		rec(march, 500, "rent", expense.Essential),
		rec(march, 20, "coffee", expense.NonEssential),
	))

	assert.True(t, anyContains(advice, "Your top expense is 'rent'", "500.00"))
}

func Test_OnReport_ShouldFlagSpikeMonths(t *testing.T) {
	m := minimock.NewController(t)
	publisher := mock.NewChartPublisherMock(m)
	publisher.PublishSummaryMock.Return(nil)

	jan := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	feb := time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)
	mar := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	reporter := NewReporter(defaultConfig(), publisher)
	advice := reporter.Report(context.Background(), build(
		rec(jan, 100, "rent", expense.Essential),
		rec(feb, 100, "rent", expense.Essential),
		rec(mar, 400, "rent", expense.Essential),
	))

	assert.True(t, anyContains(advice, "2024-03", "significantly higher"))
	assert.False(t, anyContains(advice, "2024-01"))
}

func Test_OnReport_ShouldFlagMerchantConcentration(t *testing.T) {
	m := minimock.NewController(t)
	publisher := mock.NewChartPublisherMock(m)
	publisher.PublishSummaryMock.Return(nil)

	cfg := defaultConfig()
	cfg.top = 2

	reporter := NewReporter(cfg, publisher)
	advice := reporter.Report(context.Background(), build(
		rec(march, 45, "rent", expense.Essential),
		rec(march, 45, "grocery", expense.Essential),
		rec(march, 10, "coffee", expense.NonEssential),
	))

	assert.True(t, anyContains(advice, "More than 80%", "top 2 merchants"))
}

func Test_OnReport_ShouldReturnNoAdviceAndSkipPublishForEmptySummary(t *testing.T) {
	m := minimock.NewController(t)
	publisher := mock.NewChartPublisherMock(m)

	reporter := NewReporter(defaultConfig(), publisher)
	advice := reporter.Report(context.Background(), build())

	assert.Empty(t, advice)
	assert.Equal(t, uint64(0), publisher.PublishSummaryAfterCounter())
}

func Test_OnReport_ShouldReturnNoAdviceAndSkipPublishForZeroTotal(t *testing.T) {
	m := minimock.NewController(t)
	publisher := mock.NewChartPublisherMock(m)

	sum := summary.New()
	sum.Count = 2
	sum.TotalByMerchant["refund"] = decimal.Zero

	reporter := NewReporter(defaultConfig(), publisher)
	advice := reporter.Report(context.Background(), sum)

	assert.Empty(t, advice)
	assert.Equal(t, uint64(0), publisher.PublishSummaryAfterCounter())
}

func Test_OnReport_ShouldAdviseWhenExpensesExceedIncomeShare(t *testing.T) {
	m := minimock.NewController(t)
	publisher := mock.NewChartPublisherMock(m)
	publisher.PublishSummaryMock.Return(nil)

	reporter := NewReporter(defaultConfig(), publisher)
	advice := reporter.Report(context.Background(), withIncome(build(
		rec(march, 850, "rent", expense.Essential),
	), 1000))

	assert.True(t, anyContains(advice, "exceed 80% of your income"))
	assert.False(t, anyContains(advice, "exceed your income"))
}

func Test_OnReport_ShouldAdviseWhenExpensesExceedIncome(t *testing.T) {
	m := minimock.NewController(t)
	publisher := mock.NewChartPublisherMock(m)
	publisher.PublishSummaryMock.Return(nil)

	reporter := NewReporter(defaultConfig(), publisher)
	advice := reporter.Report(context.Background(), withIncome(build(
		rec(march, 1200, "rent", expense.Essential),
	), 1000))

	assert.True(t, anyContains(advice, "expenses exceed your income", "emergency fund"))
	assert.False(t, anyContains(advice, "80% of your income"))
}

func Test_OnReport_ShouldStaySilentAtExactIncomeShareLimit(t *testing.T) {
	m := minimock.NewController(t)
	publisher := mock.NewChartPublisherMock(m)
	publisher.PublishSummaryMock.Return(nil)

	reporter := NewReporter(defaultConfig(), publisher)
	advice := reporter.Report(context.Background(), withIncome(build(
		rec(march, 800, "rent", expense.Essential),
	), 1000))

	assert.False(t, anyContains(advice, "income"))
}

func Test_OnReport_ShouldSkipIncomeAdviceWithoutDeposits(t *testing.T) {
	m := minimock.NewController(t)
	publisher := mock.NewChartPublisherMock(m)
	publisher.PublishSummaryMock.Return(nil)

	reporter := NewReporter(defaultConfig(), publisher)
	advice := reporter.Report(context.Background(), build(
		rec(march, 1200, "rent", expense.Essential),
	))

	assert.False(t, anyContains(advice, "income"))
}

func Test_OnReport_ShouldToleratePublisherFailure(t *testing.T) {
	m := minimock.NewController(t)
	publisher := mock.NewChartPublisherMock(m)
	publisher.PublishSummaryMock.Return(errors.New("broker down"))

	reporter := NewReporter(defaultConfig(), publisher)
	advice := reporter.Report(context.Background(), build(
		rec(march, 500, "rent", expense.Essential),
	))

	assert.NotEmpty(t, advice)
	assert.Equal(t, uint64(1), publisher.PublishSummaryAfterCounter())
}

func Test_OnReport_ShouldPublishSummaryOnce(t *testing.T) {
	m := minimock.NewController(t)
	publisher := mock.NewChartPublisherMock(m)

	var published *summary.Summary
	publisher.PublishSummaryMock.
		Inspect(func(_ context.Context, s *summary.Summary) {
			published = s
		}).
		Return(nil)

	reporter := NewReporter(defaultConfig(), publisher)
	reporter.Report(context.Background(), build(
		rec(march, 100, "rent", expense.Essential),
	))

	assert.Equal(t, uint64(1), publisher.PublishSummaryAfterCounter())
	assert.NotNil(t, published)
	assert.True(t, decimal.NewFromInt(100).Equal(published.Total))
}

func anyContains(advice []string, parts ...string) bool {
	for _, a := range advice {
		all := true
		for _, p := range parts {
			if !strings.Contains(a, p) {
				all = false
				break
			}
		}
		if all {
			return true
		}
	}
	return false
}
