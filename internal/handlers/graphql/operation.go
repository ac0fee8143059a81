package graphql_handlers

import (
	graphql_dto "github.com/Xenn-00/projekt-tafel/internal/dtos/graphql-dto"
)

// Operation ist die aufgezählte Menge der unterstützten Abfragen und
// Mutationen. Dispatch läuft ausschließlich über exakte Namens-Lookups,
// niemals über Substring-Vergleiche im Dokument.
type Operation int

const (
	OpUnknown Operation = iota
	OpTasks
	OpTask
	OpProjects
	OpProject
	OpUsers
	OpUser
	OpDepartments
	OpDepartment
	OpTaskStatistics
	OpCreateTask
	OpUpdateTask
	OpDeleteTask
	OpCreateComment
	OpLogTime
)

// Field ist der Schlüssel, unter dem das Ergebnis im "data"-Objekt erscheint.
func (op Operation) Field() string {
	switch op {
	case OpTasks:
		return "tasks"
	case OpTask:
		return "task"
	case OpProjects:
		return "projects"
	case OpProject:
		return "project"
	case OpUsers:
		return "users"
	case OpUser:
		return "user"
	case OpDepartments:
		return "departments"
	case OpDepartment:
		return "department"
	case OpTaskStatistics:
		return "taskStatistics"
	case OpCreateTask:
		return "createTask"
	case OpUpdateTask:
		return "updateTask"
	case OpDeleteTask:
		return "deleteTask"
	case OpCreateComment:
		return "createComment"
	case OpLogTime:
		return "logTime"
	default:
		return ""
	}
}

// operationNames kennt beide Schreibweisen: den deklarierten Dokumentnamen
// des Dashboards (GetTasks, CreateTask, ...) und den nackten Feldnamen.
var operationNames = map[string]Operation{
	"tasks":          OpTasks,
	"GetTasks":       OpTasks,
	"task":           OpTask,
	"GetTask":        OpTask,
	"projects":       OpProjects,
	"GetProjects":    OpProjects,
	"project":        OpProject,
	"GetProject":     OpProject,
	"users":          OpUsers,
	"GetUsers":       OpUsers,
	"user":           OpUser,
	"GetUser":        OpUser,
	"departments":    OpDepartments,
	"GetDepartments": OpDepartments,
	"department":     OpDepartment,
	"GetDepartment":  OpDepartment,

	"taskStatistics":    OpTaskStatistics,
	"GetTaskStatistics": OpTaskStatistics,

	"createTask":    OpCreateTask,
	"CreateTask":    OpCreateTask,
	"updateTask":    OpUpdateTask,
	"UpdateTask":    OpUpdateTask,
	"deleteTask":    OpDeleteTask,
	"DeleteTask":    OpDeleteTask,
	"createComment": OpCreateComment,
	"CreateComment": OpCreateComment,
	"logTime":       OpLogTime,
	"LogTime":       OpLogTime,
}

// ResolveOperation bestimmt die Operation einer Anfrage. Ein expliziter
// operationName hat Vorrang, sonst zählt der im Dokument deklarierte Name
// bzw. bei anonymen Dokumenten das erste Feld der obersten Ebene.
func ResolveOperation(req *graphql_dto.GraphQLRequest) (Operation, bool) {
	name := req.OperationName
	if name == "" {
		name = operationNameFromDocument(req.Query)
	}
	op, ok := operationNames[name]
	return op, ok
}

// operationNameFromDocument liest die ersten Token eines GraphQL-Dokuments:
//
//	query GetTasks($a: b) { ... }   -> "GetTasks"
//	mutation { createTask(...) }    -> "createTask"
//	{ tasks { id } }                -> "tasks"
func operationNameFromDocument(doc string) string {
	toks := lexTokens(doc, 4)
	if len(toks) == 0 {
		return ""
	}

	i := 0
	if toks[0] == "query" || toks[0] == "mutation" {
		i++
		if i < len(toks) && isIdent(toks[i]) {
			return toks[i]
		}
	}
	// anonym: erstes Feld nach der öffnenden Klammer
	for ; i < len(toks); i++ {
		if toks[i] == "{" {
			if i+1 < len(toks) && isIdent(toks[i+1]) {
				return toks[i+1]
			}
			return ""
		}
	}
	return ""
}

// lexTokens zerlegt den Dokumentanfang in höchstens max Token: Bezeichner
// oder einzelne Satzzeichen. Kommas, Whitespace und #-Kommentare sind
// Füllmaterial.
func lexTokens(doc string, max int) []string {
	var toks []string
	runes := []rune(doc)
	for i := 0; i < len(runes) && len(toks) < max; {
		r := runes[i]
		switch {
		case r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == ',':
			i++
		case r == '#':
			for i < len(runes) && runes[i] != '\n' {
				i++
			}
		case isIdentRune(r, true):
			start := i
			for i < len(runes) && isIdentRune(runes[i], false) {
				i++
			}
			toks = append(toks, string(runes[start:i]))
		default:
			toks = append(toks, string(r))
			i++
		}
	}
	return toks
}

func isIdentRune(r rune, first bool) bool {
	if r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
		return true
	}
	return !first && r >= '0' && r <= '9'
}

func isIdent(tok string) bool {
	if tok == "" {
		return false
	}
	return isIdentRune([]rune(tok)[0], true)
}
