package graphql_handlers

import (
	"testing"

	graphql_dto "github.com/Xenn-00/projekt-tafel/internal/dtos/graphql-dto"
	"github.com/stretchr/testify/assert"
)

func resolve(t *testing.T, req graphql_dto.GraphQLRequest) (Operation, bool) {
	t.Helper()
	return ResolveOperation(&req)
}

func TestResolveOperation_OperationNameWins(t *testing.T) {
	op, ok := resolve(t, graphql_dto.GraphQLRequest{
		Query:         "query GetTasks { tasks { id } }",
		OperationName: "CreateTask",
	})

	assert.True(t, ok)
	assert.Equal(t, OpCreateTask, op)
}

func TestResolveOperation_DeclaredDocumentName(t *testing.T) {
	op, ok := resolve(t, graphql_dto.GraphQLRequest{
		Query: "query GetTaskStatistics($projectId: ID) { taskStatistics(projectId: $projectId) { total } }",
	})

	assert.True(t, ok)
	assert.Equal(t, OpTaskStatistics, op)
}

func TestResolveOperation_MutationKeyword(t *testing.T) {
	op, ok := resolve(t, graphql_dto.GraphQLRequest{
		Query: "mutation UpdateTask($id: ID!, $input: UpdateTaskInput!) { updateTask(id: $id, input: $input) { id } }",
	})

	assert.True(t, ok)
	assert.Equal(t, OpUpdateTask, op)
}

func TestResolveOperation_AnonymousDocumentFirstField(t *testing.T) {
	op, ok := resolve(t, graphql_dto.GraphQLRequest{
		Query: "{ departments { id name } }",
	})

	assert.True(t, ok)
	assert.Equal(t, OpDepartments, op)
}

func TestResolveOperation_AnonymousMutation(t *testing.T) {
	op, ok := resolve(t, graphql_dto.GraphQLRequest{
		Query: "mutation { logTime(input: $input) { id } }",
	})

	assert.True(t, ok)
	assert.Equal(t, OpLogTime, op)
}

func TestResolveOperation_LeadingCommentSkipped(t *testing.T) {
	op, ok := resolve(t, graphql_dto.GraphQLRequest{
		Query: "# Dashboard-Abfrage\nquery GetUsers { users { id } }",
	})

	assert.True(t, ok)
	assert.Equal(t, OpUsers, op)
}

func TestResolveOperation_ExactMatchOnly(t *testing.T) {
	// kein Substring-Matching: ein ähnlicher Name ist unbekannt
	_, ok := resolve(t, graphql_dto.GraphQLRequest{
		Query: "query GetTasksWithExtras { tasks { id } }",
	})
	assert.False(t, ok)

	_, ok = resolve(t, graphql_dto.GraphQLRequest{
		OperationName: "createTaskFast",
	})
	assert.False(t, ok)
}

func TestResolveOperation_NameInVariablesDoesNotRoute(t *testing.T) {
	// ein Operationsname im Variableninhalt darf den Dispatch nicht lenken
	_, ok := resolve(t, graphql_dto.GraphQLRequest{
		Query: "query SearchEverything { search }",
		Variables: map[string]any{
			"search": "CreateTask",
		},
	})

	assert.False(t, ok)
}

func TestResolveOperation_EmptyDocument(t *testing.T) {
	_, ok := resolve(t, graphql_dto.GraphQLRequest{})
	assert.False(t, ok)
}
