package coach

import (
	"math"
	"strconv"
	"strings"
)

type Persona string

const (
	PersonaAnalyst   Persona = "analyst"
	PersonaOptimist  Persona = "optimist"
	PersonaNavigator Persona = "navigator"
)

type Topic string

const (
	TopicCredit         Topic = "credit"
	TopicSavings        Topic = "savings"
	TopicBudget         Topic = "budget"
	TopicTimeline       Topic = "timeline"
	TopicStress         Topic = "stress"
	TopicDebt           Topic = "debt"
	TopicGettingStarted Topic = "getting_started"
	TopicImprovement    Topic = "improvement"
	TopicGeneral        Topic = "general"
)

// Context — данные оценки, подставляемые в шаблоны ответов.
type Context struct {
	TotalScore     int
	FinancialScore int
	EmotionalScore int
	Income         float64
	Savings        float64
	TargetPrice    float64
}

var topicKeywords = []struct {
	topic    Topic
	keywords []string
}{
	{TopicCredit, []string{"credit"}},
	{TopicSavings, []string{"save", "saving", "down payment"}},
	{TopicBudget, []string{"budget", "money", "afford"}},
	{TopicTimeline, []string{"ready", "when", "timeline"}},
	{TopicStress, []string{"stress", "nervous", "worried"}},
	{TopicDebt, []string{"debt", "loan", "payment"}},
	{TopicGettingStarted, []string{"start", "begin", "first"}},
	{TopicImprovement, []string{"improve", "better", "increase"}},
}

// ClassifyTopic определяет тему вопроса по ключевым словам.
// Порядок проверки фиксирован, первая совпавшая тема выигрывает.
func ClassifyTopic(message string) Topic {
	lower := strings.ToLower(message)

	for _, entry := range topicKeywords {
		for _, keyword := range entry.keywords {
			if strings.Contains(lower, keyword) {
				return entry.topic
			}
		}
	}

	return TopicGeneral
}

type templateKey struct {
	persona Persona
	topic   Topic
}

// Таблица персона × тема. Плейсхолдеры заполняются из Context.
var responseTemplates = map[templateKey]string{
	{PersonaAnalyst, TopicCredit}:   "Credit score drives your rate: 740+ gets ~6.5% APR, 700-739 ~7%, 660-699 ~7.5%. Pay every bill on time and keep utilization under 30%. Your financial score of {financial} suggests the fastest win is here.",
	{PersonaOptimist, TopicCredit}:  "Your credit score is your financial reputation, and you have the power to improve it! Set up autopay for your bills and every on-time payment becomes a small victory.",
	{PersonaNavigator, TopicCredit}: "Credit plan: this week, pull your reports from all three bureaus and dispute errors. This month, set up autopay and bring card utilization under 30%. Re-check your score in 90 days.",

	{PersonaAnalyst, TopicSavings}:   "Down payment math: 20% of ${targetPrice} is ${target20}. You have ${savings}, so the gap is ${gap}. At $1,000/month that gap closes in a predictable number of months - set the transfer up today.",
	{PersonaOptimist, TopicSavings}:  "Every dollar you set aside is progress! You are at ${savings} already - celebrate that, then keep building toward the ${target20} that avoids PMI. Small consistent actions create big results.",
	{PersonaNavigator, TopicSavings}: "Savings roadmap: track expenses for two weeks, cut three recurring costs, and automate a transfer on payday. Current ${savings}, target ${target20}. First milestone: $5,000 more.",

	{PersonaAnalyst, TopicBudget}:   "With ${monthlyIncome}/month gross, the 28% rule caps housing at ${maxMonthly}/month including taxes and insurance. Your financial score ({financial}) tells you how much slack you really have.",
	{PersonaOptimist, TopicBudget}:  "Let's dream responsibly! Around ${maxMonthly}/month keeps housing comfortable on your income, and staying inside that range means money left for life, fun, and building wealth.",
	{PersonaNavigator, TopicBudget}: "Budget steps: cap housing at ${maxMonthly}/month, then add ~1.5% of home value per year for taxes and 1% for maintenance. Live on that test budget for three months before you buy.",

	{PersonaAnalyst, TopicTimeline}:   "At {score} points you are either ready (80+), three to six months out (65+), or in foundation-building mode. Emotional readiness is {emotional}; buyers who rush report far more regret.",
	{PersonaOptimist, TopicTimeline}:  "Your score of {score} shows the work you have already done! Whether you buy next month or next year, you are on the path - keep taking one step at a time.",
	{PersonaNavigator, TopicTimeline}: "Timeline: with {score} points, map the next 90 days. Ready (80+): get pre-approved and tour homes. Close (65+): fix your top two recommendations, re-assess. Otherwise: build the foundation first.",

	{PersonaAnalyst, TopicStress}:   "Your emotional readiness is {emotional}/100. Job stability and life stability matter most for a 30-year commitment - buyers with low emotional readiness have much higher regret rates. Listen to that data.",
	{PersonaOptimist, TopicStress}:  "Take a deep breath - what you are feeling is completely normal. Nervousness means you are taking this seriously. You do not need to feel 100% certain, just more excited than scared.",
	{PersonaNavigator, TopicStress}: "Work through it methodically: is your job secure for 12+ months, are big life changes off the table for two years, are you more excited than anxious? If most answers are no, wait and build stability.",

	{PersonaAnalyst, TopicDebt}:     "DTI bands: under 28% is excellent, 29-36% acceptable, 37-43% risky, above that you will not get good rates. Every $100/month of debt you eliminate frees roughly $25k of buying power.",
	{PersonaOptimist, TopicDebt}:    "Debt is not a life sentence - it is a challenge you can beat! Every payment toward principal is a win. You are moving from 'in debt' to 'debt-free', and that momentum counts.",
	{PersonaNavigator, TopicDebt}:   "Debt plan: list every balance with its rate, pick avalanche (highest rate first) or snowball (smallest first), and roll each finished payment into the next. Get DTI under 36% before you shop.",

	{PersonaAnalyst, TopicGettingStarted}:   "Starting point at {score}: above 80, call three lenders for pre-approval quotes this week. Below that, pull your credit report today and attack your weakest sub-score first.",
	{PersonaOptimist, TopicGettingStarted}:  "Welcome to the journey! Your score of {score} is a starting point, not a verdict. Pick one action from your plan and do it today - progress over perfection!",
	{PersonaNavigator, TopicGettingStarted}: "Roadmap: this week, complete the first recommendation on your list and set up a tracker. This month, finish the top two. In 90 days, re-take the assessment and plan the next phase.",

	{PersonaAnalyst, TopicImprovement}:   "Current: {score} total, {financial} financial, {emotional} emotional. Improving the weaker axis by 10 points moves the total about 7. Target {score}+10 within 90 days.",
	{PersonaOptimist, TopicImprovement}:  "Asking how to improve is the best sign! Your weaker score has the most room to grow, which means small wins there create big results. What motivates you most? Start there.",
	{PersonaNavigator, TopicImprovement}: "30-day sprint: week one, a quick win from your recommendations plus a progress tracker. Weeks two and three, the core work. Week four, measure and plan the next sprint. Goal: {score}+10.",

	{PersonaAnalyst, TopicGeneral}:   "Your readiness score of {score} is our baseline. Ask about credit, down payment, DTI, affordability, or timelines and I will give you the numbers and a concrete plan.",
	{PersonaOptimist, TopicGeneral}:  "I am here to support you! With a score of {score} you are on your way. Whether you feel excited, stuck, or unsure about timing, let's find the next step together.",
	{PersonaNavigator, TopicGeneral}: "Your score of {score} tells me where you are; now let's chart where you are going. I can break your plan into steps, set milestones, and track progress. What should we focus on?",
}

// Respond строит детерминированный ответ коуча: тема по ключевым
// словам, затем шаблон из таблицы персона × тема.
func Respond(message string, persona Persona, ctx Context) string {
	topic := ClassifyTopic(message)
	return ResponseFor(persona, topic, ctx)
}

// ResponseFor возвращает заполненный шаблон для персоны и темы.
// Неизвестная персона трактуется как navigator.
func ResponseFor(persona Persona, topic Topic, ctx Context) string {
	template, ok := responseTemplates[templateKey{persona, topic}]
	if !ok {
		template, ok = responseTemplates[templateKey{PersonaNavigator, topic}]
		if !ok {
			template = responseTemplates[templateKey{PersonaNavigator, TopicGeneral}]
		}
	}

	return fillTemplate(template, ctx)
}

func fillTemplate(template string, ctx Context) string {
	monthlyIncome := ctx.Income / 12
	target20 := ctx.TargetPrice * 0.2
	gap := math.Max(0, target20-ctx.Savings)

	replacer := strings.NewReplacer(
		"{score}", strconv.Itoa(ctx.TotalScore),
		"{financial}", strconv.Itoa(ctx.FinancialScore),
		"{emotional}", strconv.Itoa(ctx.EmotionalScore),
		"{monthlyIncome}", formatAmount(monthlyIncome),
		"{maxMonthly}", formatAmount(monthlyIncome*0.28),
		"{targetPrice}", formatAmount(ctx.TargetPrice),
		"{target20}", formatAmount(target20),
		"{savings}", formatAmount(ctx.Savings),
		"{gap}", formatAmount(gap),
	)

	return replacer.Replace(template)
}

func formatAmount(amount float64) string {
	digits := strconv.Itoa(int(math.Round(amount)))

	var out []byte
	for i, d := range []byte(digits) {
		if i > 0 && (len(digits)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, d)
	}

	return string(out)
}
