package spoonacular

// searchResponse is the body of GET /recipes/complexSearch.
type searchResponse struct {
	Results      []apiRecipe `json:"results"`
	TotalResults int         `json:"totalResults"`
}

// apiRecipe is a search hit expanded with addRecipeInformation=true.
// Instructions is a pointer because the API sends null for recipes without them.
type apiRecipe struct {
	ID                  int             `json:"id"`
	Title               string          `json:"title"`
	Instructions        *string         `json:"instructions"`
	ExtendedIngredients []apiIngredient `json:"extendedIngredients"`
}

type apiIngredient struct {
	Original string `json:"original"`
}
