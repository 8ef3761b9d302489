package config

const (
	defaultNonEssentialShare = 0.3
	defaultSpikeFactor       = 1.5
	defaultConcentration     = 0.8
	defaultIncomeShare       = 0.8
	defaultTopMerchants      = 10
)

type AppConfig struct {
	RulesFileName           string  `yaml:"rules-file"`
	NonEssentialShareLimit  float64 `yaml:"non-essential-share-limit"`
	MonthlySpikeFactor      float64 `yaml:"monthly-spike-factor"`
	ConcentrationShareLimit float64 `yaml:"concentration-share-limit"`
	IncomeShareLimit        float64 `yaml:"income-share-limit"`
	PeriodBucketName        string  `yaml:"period-bucket"`
	TopMerchantsCount       int     `yaml:"top-merchants"`
}

func (s *AppConfig) RulesFile() string {
	return s.RulesFileName
}

func (s *AppConfig) NonEssentialShare() float64 {
	if s.NonEssentialShareLimit <= 0 {
		return defaultNonEssentialShare
	}
	return s.NonEssentialShareLimit
}

func (s *AppConfig) SpikeFactor() float64 {
	if s.MonthlySpikeFactor <= 0 {
		return defaultSpikeFactor
	}
	return s.MonthlySpikeFactor
}

func (s *AppConfig) ConcentrationShare() float64 {
	if s.ConcentrationShareLimit <= 0 {
		return defaultConcentration
	}
	return s.ConcentrationShareLimit
}

func (s *AppConfig) IncomeShare() float64 {
	if s.IncomeShareLimit <= 0 {
		return defaultIncomeShare
	}
	return s.IncomeShareLimit
}

func (s *AppConfig) PeriodBucket() string {
	return s.PeriodBucketName
}

func (s *AppConfig) TopMerchants() int {
	if s.TopMerchantsCount <= 0 {
		return defaultTopMerchants
	}
	return s.TopMerchantsCount
}
