package review

import "strconv"

// Error cause codes as flagged in the dataset's error column
const (
	CauseFiscalCalendarConfusion = 1
	CausePeriodShift             = 2
	CauseRoundingFormatting      = 3
	CauseAmbiguousInterpretation = 4
	CauseNonAnswerRefusal        = 5
)

var causeNames = map[int]string{
	CauseFiscalCalendarConfusion: "Fiscal vs Calendar Period Confusion",
	CausePeriodShift:             "Period Shift",
	CauseRoundingFormatting:      "Rounding / Formatting",
	CauseAmbiguousInterpretation: "Ambiguous Interpretation",
	CauseNonAnswerRefusal:        "Non-Answer / Refusal",
}

// CauseName maps a numeric error code to its fixed name
func CauseName(code int) (string, bool) {
	name, ok := causeNames[code]
	return name, ok
}

// ValidCauseCode reports whether code is one of the five known causes
func ValidCauseCode(code int) bool {
	_, ok := causeNames[code]
	return ok
}

// CauseOrder returns the five cause names in code order. The renderer stacks
// distribution bars in this order.
func CauseOrder() []string {
	names := make([]string, 0, len(causeNames))
	for code := CauseFiscalCalendarConfusion; code <= CauseNonAnswerRefusal; code++ {
		names = append(names, causeNames[code])
	}
	return names
}

// CauseDescriptions returns the static cause table keyed by the string form
// of each code ("1".."5"), as the analysis report embeds it
func CauseDescriptions() map[string]string {
	out := make(map[string]string, len(causeNames))
	for code, name := range causeNames {
		out[strconv.Itoa(code)] = name
	}
	return out
}
