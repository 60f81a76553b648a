// Package catalog defines the static questionnaire: the ordered list of
// lifestyle questions, their input modalities, categories, and linear
// emission factors. The catalog is fixed at process start and immutable.
package catalog

// Category is the grouping dimension for emissions totals.
type Category string

// The four fixed categories, in display order.
const (
	CategoryTransportation Category = "transportation"
	CategoryHome           Category = "home"
	CategoryFood           Category = "food"
	CategoryConsumption    Category = "consumption"
)

// Categories returns the fixed category order used for breakdowns and
// tie-breaking.
func Categories() []Category {
	return []Category{
		CategoryTransportation,
		CategoryHome,
		CategoryFood,
		CategoryConsumption,
	}
}

// InputKind identifies how a question collects its raw value.
type InputKind int

const (
	// InputSingleChoice presents a fixed set of options.
	InputSingleChoice InputKind = iota
	// InputNumeric accepts a free-form non-negative number.
	InputNumeric
	// InputSlider accepts a number within a bounded range.
	InputSlider
)

// String returns a human-readable name for the InputKind.
func (k InputKind) String() string {
	switch k {
	case InputSingleChoice:
		return "singleChoice"
	case InputNumeric:
		return "number"
	case InputSlider:
		return "slider"
	default:
		return "unknown"
	}
}

// Option is one selectable value of a single-choice question.
type Option struct {
	Label string
	Value string
	Icon  string
}

// Question describes one catalog entry. Exactly one of EmissionFactor or a
// discrete lookup table (held by the scoring engine, keyed by question ID)
// determines how a raw value becomes emissions.
type Question struct {
	ID             string
	Prompt         string
	Kind           InputKind
	Category       Category
	Unit           string
	EmissionFactor float64 // kg CO2e per unit, for linear-factor questions
	Min            float64 // slider lower bound
	Max            float64 // slider upper bound
	Options        []Option
}

// Question IDs, referenced by the scoring engine's dependency rules.
const (
	QuestionCarUsage    = "car_usage"
	QuestionCarType     = "car_type"
	QuestionFlights     = "flights"
	QuestionElectricity = "electricity"
	QuestionRenewable   = "renewable_energy"
	QuestionDiet        = "diet"
	QuestionFoodWaste   = "food_waste"
	QuestionShopping    = "shopping"
)

// questions is the fixed eight-entry catalog.
var questions = []Question{
	{
		ID:             QuestionCarUsage,
		Prompt:         "How many kilometers do you drive weekly?",
		Kind:           InputNumeric,
		Category:       CategoryTransportation,
		Unit:           "km",
		EmissionFactor: 0.2, // kg CO2 per km (average)
	},
	{
		ID:       QuestionCarType,
		Prompt:   "What type of car do you drive?",
		Kind:     InputSingleChoice,
		Category: CategoryTransportation,
		Options: []Option{
			{Label: "Electric Vehicle", Value: "electric", Icon: "⚡"},
			{Label: "Hybrid", Value: "hybrid", Icon: "🔋"},
			{Label: "Petrol/Gasoline", Value: "petrol", Icon: "⛽"},
			{Label: "Diesel", Value: "diesel", Icon: "🛢️"},
			{Label: "I don't drive", Value: "none", Icon: "🚶"},
		},
	},
	{
		ID:             QuestionFlights,
		Prompt:         "How many flights do you take per year?",
		Kind:           InputNumeric,
		Category:       CategoryTransportation,
		EmissionFactor: 200, // kg CO2 per flight (average)
	},
	{
		ID:             QuestionElectricity,
		Prompt:         "What is your monthly electricity consumption?",
		Kind:           InputNumeric,
		Category:       CategoryHome,
		Unit:           "kWh",
		EmissionFactor: 0.5, // kg CO2 per kWh (varies by region)
	},
	{
		ID:       QuestionRenewable,
		Prompt:   "Do you use renewable energy at home?",
		Kind:     InputSingleChoice,
		Category: CategoryHome,
		Options: []Option{
			{Label: "Yes, 100% renewable", Value: "full", Icon: "🌱"},
			{Label: "Partially", Value: "partial", Icon: "🌿"},
			{Label: "No", Value: "none", Icon: "🏭"},
		},
	},
	{
		ID:       QuestionDiet,
		Prompt:   "What best describes your diet?",
		Kind:     InputSingleChoice,
		Category: CategoryFood,
		Options: []Option{
			{Label: "Vegan", Value: "vegan", Icon: "🥦"},
			{Label: "Vegetarian", Value: "vegetarian", Icon: "🥗"},
			{Label: "Pescatarian", Value: "pescatarian", Icon: "🐟"},
			{Label: "Omnivore (low meat)", Value: "low_meat", Icon: "🥩"},
			{Label: "Omnivore (high meat)", Value: "high_meat", Icon: "🍖"},
		},
	},
	{
		ID:       QuestionFoodWaste,
		Prompt:   "How much food do you throw away weekly?",
		Kind:     InputSingleChoice,
		Category: CategoryFood,
		Options: []Option{
			{Label: "Almost none", Value: "none", Icon: "✅"},
			{Label: "A little", Value: "little", Icon: "🥫"},
			{Label: "Moderate amount", Value: "moderate", Icon: "🗑️"},
			{Label: "Significant amount", Value: "high", Icon: "❌"},
		},
	},
	{
		ID:       QuestionShopping,
		Prompt:   "How often do you buy new clothes or electronics?",
		Kind:     InputSingleChoice,
		Category: CategoryConsumption,
		Options: []Option{
			{Label: "Rarely", Value: "rarely", Icon: "🧵"},
			{Label: "Occasionally", Value: "occasionally", Icon: "👕"},
			{Label: "Regularly", Value: "regularly", Icon: "🛍️"},
			{Label: "Frequently", Value: "frequently", Icon: "💻"},
		},
	},
}

// Questions returns the ordered question catalog. Callers must not mutate
// the returned slice.
func Questions() []Question {
	return questions
}

// Count returns the number of catalog questions.
func Count() int {
	return len(questions)
}

// ByID returns the question with the given ID.
func ByID(id string) (Question, bool) {
	for _, q := range questions {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}

// CategoryOf returns the category of the question with the given ID.
func CategoryOf(id string) (Category, bool) {
	q, ok := ByID(id)
	if !ok {
		return "", false
	}
	return q.Category, true
}
