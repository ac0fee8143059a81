package dtos

// GraphQLResponse ist der Antwort-Umschlag: bei Erfolg nur "data", im
// Fehlerfall nur "errors". Fehler sind Daten, kein Transportfehler —
// der HTTP-Status bleibt 200, außer bei unerwarteten internen Fehlern.
type GraphQLResponse struct {
	Data   any            `json:"data,omitempty"`
	Errors []GraphQLError `json:"errors,omitempty"`
}

type GraphQLError struct {
	Message    string           `json:"message"`
	Extensions *ErrorExtensions `json:"extensions,omitempty"`
}

// ErrorExtensions trägt die maschinenlesbaren Zusatzinformationen eines Fehlers.
type ErrorExtensions struct {
	Code      int    `json:"code"`
	Type      string `json:"type"`
	RequestID string `json:"request_id,omitempty"`
	Details   []any  `json:"details,omitempty"`
}

func NewDataResponse(field string, result any) GraphQLResponse {
	return GraphQLResponse{
		Data: map[string]any{field: result},
	}
}
