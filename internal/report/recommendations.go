package report

import "github.com/ecobuddy/ecobuddy/internal/catalog"

// ActionPlan holds the tiered recommendations for one category.
type ActionPlan struct {
	Immediate []string `json:"immediate"`
	ShortTerm []string `json:"shortTerm"`
	LongTerm  []string `json:"longTerm"`
	Tips      []string `json:"tips"`
}

// actionPlans are the fixed per-category recommendation tables surfaced in
// the generated report.
var actionPlans = map[string]ActionPlan{
	string(catalog.CategoryTransportation): {
		Immediate: []string{
			"Walk or bike for trips under 2 miles",
			"Combine multiple errands into one trip",
			"Use public transportation when available",
			"Practice eco-driving: smooth acceleration, maintain steady speeds",
		},
		ShortTerm: []string{
			"Consider carpooling or ride-sharing for regular commutes",
			"Work from home 1-2 days per week if possible",
			"Plan vacations closer to home to reduce air travel",
			"Maintain your vehicle regularly for optimal fuel efficiency",
		},
		LongTerm: []string{
			"Consider purchasing a hybrid or electric vehicle",
			"Move closer to work or choose jobs with shorter commutes",
			"Advocate for better public transportation in your area",
		},
		Tips: []string{
			"Every gallon of gasoline saved prevents 20 lbs of CO₂",
			"Air travel produces ~0.5 kg CO₂ per mile per passenger",
			"Electric vehicles can reduce transport emissions by 60-70%",
		},
	},
	string(catalog.CategoryHome): {
		Immediate: []string{
			"Switch to LED bulbs (use 75% less energy)",
			"Unplug electronics when not in use",
			"Lower thermostat by 2°F in winter, raise by 2°F in summer",
			"Use cold water for washing clothes when possible",
		},
		ShortTerm: []string{
			"Install a programmable thermostat",
			"Seal air leaks around windows and doors",
			"Replace old appliances with ENERGY STAR certified models",
			"Switch to a renewable energy provider",
		},
		LongTerm: []string{
			"Install solar panels or solar water heating",
			"Upgrade home insulation and windows",
			"Consider heat pump installation for heating/cooling",
			"Install smart home energy management systems",
		},
		Tips: []string{
			"Heating and cooling account for ~40% of home energy use",
			"Solar panels can reduce home emissions by 80%+",
			"Proper insulation can cut energy bills by 15-20%",
		},
	},
	string(catalog.CategoryFood): {
		Immediate: []string{
			"Reduce meat consumption by 1-2 meals per week",
			"Buy local produce when seasonally available",
			"Plan meals to reduce food waste",
			"Compost organic waste instead of throwing away",
		},
		ShortTerm: []string{
			"Start a small herb or vegetable garden",
			"Buy from farmers markets or local producers",
			"Learn to preserve seasonal foods",
			"Choose organic options for the 'Dirty Dozen' produce",
		},
		LongTerm: []string{
			"Transition to a more plant-based diet",
			"Install rainwater collection for garden irrigation",
			"Support regenerative agriculture practices",
			"Consider joining or starting a community garden",
		},
		Tips: []string{
			"Beef production creates ~60kg CO₂ per kg of meat",
			"Food waste accounts for ~8% of global emissions",
			"Local food can reduce transport emissions by 90%",
		},
	},
	string(catalog.CategoryConsumption): {
		Immediate: []string{
			"Buy only what you need - practice mindful consumption",
			"Choose products with minimal packaging",
			"Repair items instead of replacing them",
			"Buy quality items that last longer",
		},
		ShortTerm: []string{
			"Shop at thrift stores and consignment shops",
			"Learn basic repair skills (sewing, basic electronics)",
			"Choose multi-purpose items to reduce overall purchases",
			"Support companies with strong sustainability practices",
		},
		LongTerm: []string{
			"Embrace minimalism and reduce overall possessions",
			"Invest in high-quality, durable goods",
			"Support circular economy initiatives",
			"Advocate for right-to-repair legislation",
		},
		Tips: []string{
			"The average American discards 80 lbs of clothing annually",
			"Extending clothing life by 9 months reduces emissions by 30%",
			"Buying used can reduce environmental impact by 80%",
		},
	},
}

// PlanFor returns the action plan for a category, falling back to the
// consumption plan for unknown names.
func PlanFor(category string) ActionPlan {
	if plan, ok := actionPlans[category]; ok {
		return plan
	}
	return actionPlans[string(catalog.CategoryConsumption)]
}

// reductionTips are the short tips shown alongside the analytics view for the
// highest-emitting category.
var reductionTips = map[string][]string{
	string(catalog.CategoryTransportation): {
		"Consider using public transportation or carpooling",
		"Walk or bike for short distances",
		"If possible, switch to an electric or hybrid vehicle",
		"Combine errands to reduce trips",
	},
	string(catalog.CategoryHome): {
		"Switch to LED light bulbs",
		"Improve home insulation",
		"Use energy-efficient appliances",
		"Consider renewable energy sources",
	},
	string(catalog.CategoryFood): {
		"Reduce meat consumption",
		"Buy local and seasonal produce",
		"Minimize food waste",
		"Grow your own vegetables if possible",
	},
	string(catalog.CategoryConsumption): {
		"Buy second-hand items when possible",
		"Repair instead of replace",
		"Choose products with minimal packaging",
		"Invest in quality items that last longer",
	},
}

// Tips returns the reduction tips for a category.
func Tips(category string) []string {
	if tips, ok := reductionTips[category]; ok {
		return tips
	}
	return []string{"No specific tips available"}
}
