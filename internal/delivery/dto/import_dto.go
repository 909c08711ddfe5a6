package dto

type ImportFailure struct {
	Index  int               `json:"index"`
	Errors map[string]string `json:"errors"`
}

type ImportResult struct {
	Total    int             `json:"total"`
	Imported int             `json:"imported"`
	Failed   []ImportFailure `json:"failed"`
}
