package scoring

import "math"

// DefaultTermMonths — стандартный срок ипотеки (30 лет).
const DefaultTermMonths = 360

// Input — каноническая форма входных данных для расчета готовности.
// Все три внешних формы запросов приводятся к ней адаптерами.
type Input struct {
	AnnualIncome  float64
	MonthlyDebt   float64
	DownPayment   float64
	LoanAmount    float64
	AnnualRate    float64
	CreditScore   int
	PropertyPrice float64

	// StressLevel всегда в диапазоне [1,5]; для анкетной формы
	// выводится из Confidence и факторов стабильности.
	StressLevel int

	// Расширенные поля анкетной формы. Confidence == 0 означает,
	// что поле не передавалось, и связанные правила не применяются.
	Confidence    int
	JobStability  string
	LifeStability string
	Timeline      string
	Location      string
}

// QuestionnaireResponses — форма ответов пошаговой анкеты.
type QuestionnaireResponses struct {
	Income        float64
	Savings       float64
	MonthlyDebt   float64
	CreditScore   string
	TargetPrice   float64
	Confidence    int
	JobStability  string
	LifeStability string
	Location      string
	Timeline      string
}

var creditRangeMidpoints = map[string]int{
	"300-579": 440,
	"580-669": 625,
	"670-739": 705,
	"740-799": 770,
	"800-850": 825,
}

var jobStressMultiplier = map[string]float64{
	"Very Unstable": 1.5,
	"Unstable":      1.2,
	"Stable":        1.0,
	"Very Stable":   0.8,
}

var lifeStressMultiplier = map[string]float64{
	"In Flux":         1.4,
	"Somewhat Stable": 1.1,
	"Stable":          1.0,
	"Very Stable":     0.9,
}

// CreditScoreFromRange переводит диапазон кредитного рейтинга в среднюю точку.
func CreditScoreFromRange(creditRange string) int {
	if midpoint, ok := creditRangeMidpoints[creditRange]; ok {
		return midpoint
	}
	return 705
}

// CreditRangeForScore возвращает диапазон для числового рейтинга (legacy-форма).
func CreditRangeForScore(score int) string {
	switch {
	case score >= 740:
		return "740+"
	case score >= 700:
		return "700-739"
	case score >= 660:
		return "660-699"
	case score >= 620:
		return "620-659"
	default:
		return "<620"
	}
}

// InterestRateForCredit возвращает ставку по ипотеке для кредитного рейтинга.
func InterestRateForCredit(score int) float64 {
	switch {
	case score >= 740:
		return 0.065
	case score >= 700:
		return 0.07
	case score >= 660:
		return 0.075
	case score >= 620:
		return 0.08
	default:
		return 0.09
	}
}

// StressFromFactors выводит уровень стресса [1,5] из уверенности
// и факторов стабильности.
func StressFromFactors(confidence int, jobStability, lifeStability string) int {
	// Уверенность 1-10 инвертируется в стресс 1-5.
	stress := math.Round(float64(11-confidence) / 2)

	jobMultiplier, ok := jobStressMultiplier[jobStability]
	if !ok {
		jobMultiplier = 1.0
	}
	lifeMultiplier, ok := lifeStressMultiplier[lifeStability]
	if !ok {
		lifeMultiplier = 1.0
	}

	stress = math.Round(stress * jobMultiplier * lifeMultiplier)

	if stress < 1 {
		return 1
	}
	if stress > 5 {
		return 5
	}
	return int(stress)
}

// ToInput приводит ответы анкеты к канонической форме с дефолтами анкеты.
func (r QuestionnaireResponses) ToInput() Input {
	confidence := r.Confidence
	if confidence == 0 {
		confidence = 5
	}
	jobStability := r.JobStability
	if jobStability == "" {
		jobStability = "Stable"
	}
	lifeStability := r.LifeStability
	if lifeStability == "" {
		lifeStability = "Stable"
	}
	timeline := r.Timeline
	if timeline == "" {
		timeline = "6-12 months"
	}

	creditScore := CreditScoreFromRange(r.CreditScore)

	return Input{
		AnnualIncome:  r.Income,
		MonthlyDebt:   r.MonthlyDebt,
		DownPayment:   r.Savings,
		LoanAmount:    r.TargetPrice - r.Savings,
		AnnualRate:    InterestRateForCredit(creditScore),
		CreditScore:   creditScore,
		PropertyPrice: r.TargetPrice,
		StressLevel:   StressFromFactors(confidence, jobStability, lifeStability),
		Confidence:    confidence,
		JobStability:  jobStability,
		LifeStability: lifeStability,
		Timeline:      timeline,
		Location:      r.Location,
	}
}
