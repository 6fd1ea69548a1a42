package repository

import (
	"fmt"
	"strings"

	"github.com/trashtrack/trashtrack-api/internal/dto"
)

// buildPatchUpdate renders an UPDATE writing exactly the patched columns. Column names come from a
// dto.PatchSchema whitelist; every value is a bind parameter.
func buildPatchUpdate(table, idColumn string, id int64, patch dto.Patch) (string, []interface{}) {
	assignments := make([]string, 0, patch.Len())
	args := make([]interface{}, 0, patch.Len()+1)
	for _, field := range patch.Fields {
		args = append(args, field.Value)
		assignments = append(assignments, fmt.Sprintf("%s = $%d", field.Column, len(args)))
	}
	args = append(args, id)
	query := fmt.Sprintf("UPDATE %s SET %s WHERE %s = $%d", table, strings.Join(assignments, ", "), idColumn, len(args))
	return query, args
}
