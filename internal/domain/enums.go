package domain

// QueryKind is the route a query takes after classification.
type QueryKind string

const (
	QueryKindPlainWord QueryKind = "PLAIN_WORD"
	QueryKindFoodTerm  QueryKind = "FOOD_TERM"
	QueryKindFormula   QueryKind = "FORMULA"
)

func (k QueryKind) String() string { return string(k) }

func (k QueryKind) IsValid() bool {
	switch k {
	case QueryKindPlainWord, QueryKindFoodTerm, QueryKindFormula:
		return true
	}
	return false
}

// ResultKind tags which payload of a LookupResult is populated.
type ResultKind string

const (
	ResultKindEmpty       ResultKind = "EMPTY"
	ResultKindFormula     ResultKind = "FORMULA"
	ResultKindRecipe      ResultKind = "RECIPE"
	ResultKindDefinitions ResultKind = "DEFINITIONS"
	ResultKindError       ResultKind = "ERROR"
)

func (k ResultKind) String() string { return string(k) }

func (k ResultKind) IsValid() bool {
	switch k {
	case ResultKindEmpty, ResultKindFormula, ResultKindRecipe, ResultKindDefinitions, ResultKindError:
		return true
	}
	return false
}
