package domain

// Transaction is one persisted expense record. It is write-once: the pipeline
// assigns a fresh id at write time and no update or delete path exists.
// Amount is kept as the raw text the model (or the user) produced; no currency
// normalization is applied.
type Transaction struct {
	ID              string `json:"id" dynamodbav:"id"`
	Date            string `json:"date" dynamodbav:"date"` // YYYY-MM-DD
	Amount          string `json:"amount" dynamodbav:"amount"`
	Store           string `json:"store" dynamodbav:"store"`
	OriginalMessage string `json:"original_message" dynamodbav:"original_message"`
}
