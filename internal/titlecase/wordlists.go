package titlecase

// Static word classification lists. Built once at package init and never
// mutated afterwards; safe for concurrent readers.

var articles = newSet("a", "an", "the")

// Coordinating conjunctions (FANBOYS).
var coordConjunctions = newSet("and", "but", "for", "nor", "or", "so", "yet")

var subordConjunctions = newSet(
	"after", "although", "as", "because", "before", "how", "if", "lest",
	"once", "since", "than", "that", "though", "till", "unless", "until",
	"when", "whenever", "where", "whereas", "wherever", "whether", "while",
	"why",
)

// Prepositions, partitioned by letter count. The style rules only ever
// combine membership with a length threshold, so the partition keeps the
// tables reviewable against the style guides they came from.
var (
	prepositions2 = []string{
		"at", "by", "en", "in", "of", "on", "re", "to", "up",
	}
	prepositions3 = []string{
		"ere", "for", "mid", "off", "out", "per", "pro", "qua", "via",
	}
	prepositions4 = []string{
		"amid", "anti", "atop", "down", "from", "into", "like", "near",
		"next", "onto", "over", "past", "plus", "sans", "save", "than",
		"till", "unto", "upon", "with",
	}
	prepositions5plus = []string{
		"aboard", "about", "above", "across", "after", "against", "along",
		"alongside", "amidst", "among", "amongst", "around", "astride",
		"barring", "before", "behind", "below", "beneath", "beside",
		"besides", "between", "beyond", "circa", "concerning", "despite",
		"during", "except", "excepting", "excluding", "failing", "following",
		"inside", "minus", "notwithstanding", "opposite", "outside",
		"pending", "regarding", "respecting", "round", "since", "through",
		"throughout", "toward", "towards", "under", "underneath", "unlike",
		"until", "versus", "within", "without", "worth",
	}
)

var prepositions = func() map[string]struct{} {
	m := make(map[string]struct{})
	for _, group := range [][]string{
		prepositions2, prepositions3, prepositions4, prepositions5plus,
	} {
		for _, w := range group {
			m[w] = struct{}{}
		}
	}
	return m
}()

// New York Times overrides. The explicit lists win over the length default.
var (
	nytLowercase = newSet(
		"a", "and", "as", "at", "but", "by", "en", "for", "if", "in", "of",
		"on", "or", "the", "to", "v.", "vs.", "via",
	)
	nytCapitalize = newSet("no", "nor", "not", "off", "out", "so", "up")
)

func newSet(words ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}

func inSet(set map[string]struct{}, w string) bool {
	_, ok := set[w]
	return ok
}
