package graphql_dto

// GraphQLRequest ist der eingehende Rumpf des Operation-Endpoints. "query"
// trägt das Operationsdokument, "operationName" wählt bei Mehrdeutigkeit die
// auszuführende Operation, "variables" die typisierten Argumente.
type GraphQLRequest struct {
	Query         string         `json:"query"`
	OperationName string         `json:"operationName,omitempty"`
	Variables     map[string]any `json:"variables,omitempty"`
}
