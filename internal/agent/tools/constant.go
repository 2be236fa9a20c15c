package tools

import "regexp"

// Registry names of the environment tools.
const (
	WeatherToolName  = "weather"
	CurrencyToolName = "currency_converter"
	BookingToolName  = "booking"
)

type forecast struct {
	summary string
	tempC   int
}

var weatherTable = map[string]forecast{
	"paris":      {"Partly cloudy with light showers possible", 18},
	"tokyo":      {"Clear skies, humid in the afternoon", 24},
	"costa rica": {"Warm and humid with afternoon rain showers", 27},
	"bali":       {"Sunny with a sea breeze", 30},
	"new york":   {"Crisp and sunny", 15},
	"london":     {"Overcast with intermittent drizzle", 14},
	"rome":       {"Sunny and dry", 23},
	"barcelona":  {"Sunny with a light breeze", 22},
	"kyoto":      {"Mild and clear", 20},
	"bangkok":    {"Hot with scattered thunderstorms", 33},
	"iceland":    {"Windy with low cloud", 7},
	"peru":       {"Cool mornings, sunny afternoons in the Andes", 16},
	"santorini":  {"Sunny and windy", 25},
	"sydney":     {"Bright with occasional cloud", 21},
	"lisbon":     {"Sunny with Atlantic breeze", 21},
	"marrakech":  {"Hot and dry", 31},
}

type currency struct {
	code   string
	name   string
	perUSD float64
}

var currencyTable = map[string]currency{
	"paris":      {"EUR", "euro", 0.92},
	"rome":       {"EUR", "euro", 0.92},
	"barcelona":  {"EUR", "euro", 0.92},
	"lisbon":     {"EUR", "euro", 0.92},
	"santorini":  {"EUR", "euro", 0.92},
	"tokyo":      {"JPY", "Japanese yen", 151.0},
	"kyoto":      {"JPY", "Japanese yen", 151.0},
	"costa rica": {"CRC", "Costa Rican colon", 515.0},
	"bali":       {"IDR", "Indonesian rupiah", 15800.0},
	"new york":   {"USD", "US dollar", 1.0},
	"london":     {"GBP", "British pound", 0.79},
	"bangkok":    {"THB", "Thai baht", 36.5},
	"iceland":    {"ISK", "Icelandic krona", 138.0},
	"peru":       {"PEN", "Peruvian sol", 3.75},
	"sydney":     {"AUD", "Australian dollar", 1.52},
	"marrakech":  {"MAD", "Moroccan dirham", 10.0},
}

// bookingKinds is matched in order; the first keyword found as a whole word
// (plural allowed) names the booking.
var bookingKinds = compileBookingKinds([]struct{ keyword, kind string }{
	{"flight", "Flight"},
	{"hotel", "Hotel reservation"},
	{"hostel", "Hostel bed"},
	{"tour", "Guided tour"},
	{"restaurant", "Restaurant table"},
	{"car", "Car rental"},
})

type bookingKind struct {
	match *regexp.Regexp
	kind  string
}

func compileBookingKinds(in []struct{ keyword, kind string }) []bookingKind {
	out := make([]bookingKind, len(in))
	for i, b := range in {
		out[i] = bookingKind{
			match: regexp.MustCompile(`\b` + regexp.QuoteMeta(b.keyword) + `s?\b`),
			kind:  b.kind,
		}
	}
	return out
}
